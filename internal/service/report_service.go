package service

import (
	"context"
	"time"

	"github.com/Digga-coder/POS-FRECUENZY/internal/dto"
	"github.com/Digga-coder/POS-FRECUENZY/internal/repository"

	"github.com/shopspring/decimal"
)

// ReportService derives read-only daily aggregates. No caching: every call
// hits the store, matching the dashboard's refresh-on-view behavior.
type ReportService interface {
	Daily(ctx context.Context, filter dto.DailyReportFilter) (*dto.DailyReportResponse, error)
	ListOrders(ctx context.Context, filter dto.OrderFilter) ([]dto.OrderResponse, error)
}

type reportService struct {
	orders    repository.OrderRepository
	stockLogs repository.StockLogRepository
}

func NewReportService(orders repository.OrderRepository, stockLogs repository.StockLogRepository) ReportService {
	return &reportService{orders: orders, stockLogs: stockLogs}
}

func (s *reportService) Daily(ctx context.Context, filter dto.DailyReportFilter) (*dto.DailyReportResponse, error) {
	date := filter.Date
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}

	revenue, orderCount, err := s.orders.SumTotalByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	rev, err := decimal.NewFromString(revenue)
	if err != nil {
		rev = decimal.Zero
	}

	movements, err := s.stockLogs.CountByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	return &dto.DailyReportResponse{
		Date:          date,
		Revenue:       rev,
		OrderCount:    orderCount,
		MovementCount: movements,
	}, nil
}

func (s *reportService) ListOrders(ctx context.Context, filter dto.OrderFilter) ([]dto.OrderResponse, error) {
	orders, err := s.orders.List(ctx, repository.OrderFilter{Date: filter.Date, Limit: filter.Limit})
	if err != nil {
		return nil, err
	}
	resp := make([]dto.OrderResponse, len(orders))
	for i := range orders {
		resp[i] = orderToResponse(&orders[i])
	}
	return resp, nil
}
