package service

import (
	"context"

	"github.com/Digga-coder/POS-FRECUENZY/internal/dto"
	"github.com/Digga-coder/POS-FRECUENZY/internal/model"
	"github.com/Digga-coder/POS-FRECUENZY/internal/repository"
	"github.com/Digga-coder/POS-FRECUENZY/internal/seed"

	"github.com/rs/zerolog/log"
)

// CatalogService serves the read-mostly product grid and owns the one-time
// seeding of the fixed catalog.
type CatalogService interface {
	// EnsureSeeded inserts the fixed catalog when the products table is
	// empty. Called once at startup; a failure here is fatal.
	EnsureSeeded(ctx context.Context) error
	ListCategories(ctx context.Context) ([]dto.CategoryResponse, error)
	ListProducts(ctx context.Context) ([]dto.ProductResponse, error)
	ListMixers(ctx context.Context) ([]dto.ProductResponse, error)
}

type catalogService struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
}

func NewCatalogService(products repository.ProductRepository, categories repository.CategoryRepository) CatalogService {
	return &catalogService{products: products, categories: categories}
}

func (s *catalogService) EnsureSeeded(ctx context.Context) error {
	if err := s.categories.UpsertAll(ctx, seed.Categories); err != nil {
		return err
	}
	n, err := s.products.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	for i := range seed.Products {
		p := seed.Products[i]
		if err := s.products.Create(ctx, &p); err != nil {
			return err
		}
	}
	// The seed rows carry explicit ids, which leave the sequence behind;
	// without this, admin-created products would eventually collide.
	if err := s.products.SyncIDSequence(ctx); err != nil {
		return err
	}
	log.Info().Int("products", len(seed.Products)).Msg("seeded initial catalog")
	return nil
}

func (s *catalogService) ListCategories(ctx context.Context) ([]dto.CategoryResponse, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.CategoryResponse, len(categories))
	for i, c := range categories {
		resp[i] = dto.CategoryResponse{ID: c.ID, Name: c.Name, ColorHex: c.ColorHex}
	}
	return resp, nil
}

func (s *catalogService) ListProducts(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

func (s *catalogService) ListMixers(ctx context.Context) ([]dto.ProductResponse, error) {
	mixers, err := s.products.ListMixers(ctx)
	if err != nil {
		return nil, err
	}
	return toProductResponses(mixers), nil
}

func toProductResponses(products []model.Product) []dto.ProductResponse {
	resp := make([]dto.ProductResponse, len(products))
	for i, p := range products {
		resp[i] = toProductResponse(&p)
	}
	return resp
}

func toProductResponse(p *model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:            p.ID,
		CategoryID:    p.CategoryID,
		Name:          p.Name,
		Price:         p.Price,
		Cost:          p.Cost,
		StockCurrent:  p.StockCurrent,
		StockMinimum:  p.StockMinimum,
		IsMixer:       p.IsMixer,
		RequiresMixer: p.RequiresMixer,
	}
}
