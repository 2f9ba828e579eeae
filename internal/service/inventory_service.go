package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Digga-coder/POS-FRECUENZY/internal/dto"
	"github.com/Digga-coder/POS-FRECUENZY/internal/model"
	"github.com/Digga-coder/POS-FRECUENZY/internal/repository"

	"github.com/google/uuid"
)

// InventoryService is the admin-side product lifecycle. Every stock-affecting
// mutation appends a movement log; orders and existing logs are never cleaned
// up on delete (they keep denormalized product names).
type InventoryService interface {
	CreateProduct(ctx context.Context, req dto.CreateProductRequest, actor string) (*dto.ProductResponse, error)
	UpdateProduct(ctx context.Context, id int, req dto.UpdateProductRequest, actor string) (*dto.ProductResponse, error)
	DeleteProduct(ctx context.Context, id int) error
	ListStockLogs(ctx context.Context, filter dto.StockLogFilter) ([]dto.StockLogResponse, error)
}

type inventoryService struct {
	products  repository.ProductRepository
	stockLogs repository.StockLogRepository
}

func NewInventoryService(products repository.ProductRepository, stockLogs repository.StockLogRepository) InventoryService {
	return &inventoryService{products: products, stockLogs: stockLogs}
}

func (s *inventoryService) CreateProduct(ctx context.Context, req dto.CreateProductRequest, actor string) (*dto.ProductResponse, error) {
	p := &model.Product{
		CategoryID:    req.CategoryID,
		Name:          req.Name,
		Price:         req.Price,
		Cost:          req.Cost,
		StockCurrent:  req.StockCurrent,
		IsMixer:       req.IsMixer,
		RequiresMixer: req.RequiresMixer,
	}
	if req.StockMinimum != nil {
		p.StockMinimum = *req.StockMinimum
	}
	if err := s.products.Create(ctx, p); err != nil {
		return nil, err
	}

	// Initial stock is recorded as a restock movement.
	if err := s.stockLogs.Create(ctx, &model.StockLog{
		ID:             uuid.New(),
		Date:           time.Now().UTC(),
		ProductName:    p.Name,
		QuantityChange: p.StockCurrent,
		Reason:         model.ReasonRestock,
		User:           actor,
	}); err != nil {
		return nil, err
	}

	resp := toProductResponse(p)
	return &resp, nil
}

func (s *inventoryService) UpdateProduct(ctx context.Context, id int, req dto.UpdateProductRequest, actor string) (*dto.ProductResponse, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find product %d: %w", id, err)
	}

	previousStock := p.StockCurrent

	p.CategoryID = req.CategoryID
	p.Name = req.Name
	p.Price = req.Price
	p.Cost = req.Cost
	p.StockCurrent = req.StockCurrent
	p.IsMixer = req.IsMixer
	p.RequiresMixer = req.RequiresMixer
	if req.StockMinimum != nil {
		p.StockMinimum = *req.StockMinimum
	}

	if err := s.products.Update(ctx, p); err != nil {
		return nil, err
	}

	// Zero-delta edits produce no movement log.
	if delta := p.StockCurrent - previousStock; delta != 0 {
		if err := s.stockLogs.Create(ctx, &model.StockLog{
			ID:             uuid.New(),
			Date:           time.Now().UTC(),
			ProductName:    p.Name,
			QuantityChange: delta,
			Reason:         model.ReasonManualAdjustment,
			User:           actor,
		}); err != nil {
			return nil, err
		}
	}

	resp := toProductResponse(p)
	return &resp, nil
}

func (s *inventoryService) DeleteProduct(ctx context.Context, id int) error {
	return s.products.Delete(ctx, id)
}

func (s *inventoryService) ListStockLogs(ctx context.Context, filter dto.StockLogFilter) ([]dto.StockLogResponse, error) {
	logs, err := s.stockLogs.List(ctx, repository.StockLogFilter{Date: filter.Date, Limit: filter.Limit})
	if err != nil {
		return nil, err
	}
	return stockLogsToResponses(logs), nil
}
