package repository

import (
	"context"

	"github.com/Digga-coder/POS-FRECUENZY/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderFilter narrows order listings. Date is a YYYY-MM-DD calendar day;
// empty means no date filter.
type OrderFilter struct {
	Date  string
	Limit int
}

type OrderRepository interface {
	Create(ctx context.Context, o *model.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Order, error)
	List(ctx context.Context, filter OrderFilter) ([]model.Order, error)
	SumTotalByDate(ctx context.Context, date string) (string, int64, error)
}

type orderRepo struct{ db *gorm.DB }

func NewOrderRepository(db *gorm.DB) OrderRepository { return &orderRepo{db: db} }

func (r *orderRepo) Create(ctx context.Context, o *model.Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *orderRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).First(&o, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) List(ctx context.Context, filter OrderFilter) ([]model.Order, error) {
	limit := filter.Limit
	if limit < 1 || limit > 2000 {
		limit = 2000
	}
	q := r.db.WithContext(ctx).Model(&model.Order{})
	if filter.Date != "" {
		q = q.Where("DATE(created_at) = ?", filter.Date)
	}
	var orders []model.Order
	err := q.Order("created_at DESC").Limit(limit).Find(&orders).Error
	return orders, err
}

// SumTotalByDate returns the day's revenue and order count in one query.
func (r *orderRepo) SumTotalByDate(ctx context.Context, date string) (string, int64, error) {
	var row struct {
		Revenue string
		Count   int64
	}
	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Select("COALESCE(SUM(total_amount), 0)::text AS revenue, COUNT(*) AS count").
		Where("DATE(created_at) = ?", date).
		Scan(&row).Error
	return row.Revenue, row.Count, err
}
