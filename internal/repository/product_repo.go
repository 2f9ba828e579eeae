package repository

import (
	"context"

	"github.com/Digga-coder/POS-FRECUENZY/internal/model"

	"gorm.io/gorm"
)

// ProductRepository defines the data access contract for products.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) error
	FindByID(ctx context.Context, id int) (*model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
	ListMixers(ctx context.Context) ([]model.Product, error)
	Update(ctx context.Context, p *model.Product) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int64, error)

	// DecrementStock applies a single-statement relative update so the
	// process never does a read-modify-write on stock_current.
	DecrementStock(ctx context.Context, id int, units int) error

	// SyncIDSequence advances the id sequence past the highest existing
	// row. Explicit-id inserts (the seed catalog) do not move the
	// sequence on their own, and a stale sequence makes later
	// auto-assigned ids collide with seeded ones.
	SyncIDSequence(ctx context.Context) error
}

type productRepo struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository { return &productRepo{db: db} }

func (r *productRepo) Create(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepo) FindByID(ctx context.Context, id int) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) List(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).Order("id ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) ListMixers(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).Where("is_mixer = true").Order("id ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) Update(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productRepo) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&model.Product{}, id).Error
}

func (r *productRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).Count(&n).Error
	return n, err
}

func (r *productRepo) DecrementStock(ctx context.Context, id int, units int) error {
	return r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", id).
		Update("stock_current", gorm.Expr("stock_current - ?", units)).Error
}

func (r *productRepo) SyncIDSequence(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Exec("SELECT setval(pg_get_serial_sequence('products','id'), (SELECT MAX(id) FROM products))").Error
}
