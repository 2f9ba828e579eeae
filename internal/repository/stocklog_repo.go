package repository

import (
	"context"

	"github.com/Digga-coder/POS-FRECUENZY/internal/model"

	"gorm.io/gorm"
)

// StockLogFilter narrows stock log listings by calendar day.
type StockLogFilter struct {
	Date  string
	Limit int
}

type StockLogRepository interface {
	Create(ctx context.Context, l *model.StockLog) error
	List(ctx context.Context, filter StockLogFilter) ([]model.StockLog, error)
	CountByDate(ctx context.Context, date string) (int64, error)
}

type stockLogRepo struct{ db *gorm.DB }

func NewStockLogRepository(db *gorm.DB) StockLogRepository { return &stockLogRepo{db: db} }

func (r *stockLogRepo) Create(ctx context.Context, l *model.StockLog) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *stockLogRepo) List(ctx context.Context, filter StockLogFilter) ([]model.StockLog, error) {
	limit := filter.Limit
	if limit < 1 || limit > 500 {
		limit = 200
	}
	q := r.db.WithContext(ctx).Model(&model.StockLog{})
	if filter.Date != "" {
		q = q.Where("DATE(date) = ?", filter.Date)
	}
	var logs []model.StockLog
	err := q.Order("date DESC").Limit(limit).Find(&logs).Error
	return logs, err
}

func (r *stockLogRepo) CountByDate(ctx context.Context, date string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.StockLog{}).
		Where("DATE(date) = ?", date).Count(&n).Error
	return n, err
}
