package repository

import (
	"context"

	"github.com/Digga-coder/POS-FRECUENZY/internal/model"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	List(ctx context.Context) ([]model.Category, error)
	UpsertAll(ctx context.Context, categories []model.Category) error
}

type categoryRepo struct{ db *gorm.DB }

func NewCategoryRepository(db *gorm.DB) CategoryRepository { return &categoryRepo{db: db} }

func (r *categoryRepo) List(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	err := r.db.WithContext(ctx).Order("id ASC").Find(&categories).Error
	return categories, err
}

// UpsertAll keeps the fixed seed list idempotent across restarts.
func (r *categoryRepo) UpsertAll(ctx context.Context, categories []model.Category) error {
	for i := range categories {
		if err := r.db.WithContext(ctx).Save(&categories[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
