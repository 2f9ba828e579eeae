package repository

import (
	"context"

	"github.com/Digga-coder/POS-FRECUENZY/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WaiterRepository interface {
	Create(ctx context.Context, w *model.Waiter) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Waiter, error)
	// FindByUsername resolves the first case-insensitive match. Username
	// uniqueness is not enforced at the schema level.
	FindByUsername(ctx context.Context, username string) (*model.Waiter, error)
	List(ctx context.Context) ([]model.Waiter, error)
	Update(ctx context.Context, w *model.Waiter) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type waiterRepo struct{ db *gorm.DB }

func NewWaiterRepository(db *gorm.DB) WaiterRepository { return &waiterRepo{db: db} }

func (r *waiterRepo) Create(ctx context.Context, w *model.Waiter) error {
	return r.db.WithContext(ctx).Create(w).Error
}

func (r *waiterRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Waiter, error) {
	var w model.Waiter
	err := r.db.WithContext(ctx).First(&w, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *waiterRepo) FindByUsername(ctx context.Context, username string) (*model.Waiter, error) {
	var w model.Waiter
	err := r.db.WithContext(ctx).
		Where("LOWER(username) = LOWER(?)", username).
		Order("created_at ASC").
		First(&w).Error
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *waiterRepo) List(ctx context.Context) ([]model.Waiter, error) {
	var waiters []model.Waiter
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&waiters).Error
	return waiters, err
}

func (r *waiterRepo) Update(ctx context.Context, w *model.Waiter) error {
	return r.db.WithContext(ctx).Save(w).Error
}

func (r *waiterRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Waiter{}, "id = ?", id).Error
}
