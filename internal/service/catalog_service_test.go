package service

import (
	"context"
	"testing"

	"github.com/Digga-coder/POS-FRECUENZY/internal/dto"
	"github.com/Digga-coder/POS-FRECUENZY/internal/model"
	"github.com/Digga-coder/POS-FRECUENZY/internal/seed"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureSeededPopulatesEmptyCatalog(t *testing.T) {
	ctx := context.Background()
	products := newStubProductRepo()
	categories := &stubCategoryRepo{}
	svc := NewCatalogService(products, categories)

	require.NoError(t, svc.EnsureSeeded(ctx))

	cats, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, cats, len(seed.Categories))

	list, err := svc.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, list, len(seed.Products))
}

func TestEnsureSeededSkipsNonEmptyCatalog(t *testing.T) {
	ctx := context.Background()
	products := newStubProductRepo(model.Product{ID: 1, Name: "Custom"})
	svc := NewCatalogService(products, &stubCategoryRepo{})

	require.NoError(t, svc.EnsureSeeded(ctx))

	// Existing catalog untouched: no seed rows added
	list, err := svc.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Custom", list[0].Name)
}

func TestEnsureSeededIsIdempotent(t *testing.T) {
	ctx := context.Background()
	products := newStubProductRepo()
	svc := NewCatalogService(products, &stubCategoryRepo{})

	require.NoError(t, svc.EnsureSeeded(ctx))
	require.NoError(t, svc.EnsureSeeded(ctx))

	list, err := svc.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, list, len(seed.Products))
}

func TestEnsureSeededAdvancesProductIDSequence(t *testing.T) {
	ctx := context.Background()
	products := newStubProductRepo()
	require.NoError(t, NewCatalogService(products, &stubCategoryRepo{}).EnsureSeeded(ctx))

	// Admin creates omit the id; the assigned id must land above the
	// explicit seed range, never back at 1.
	inv := NewInventoryService(products, &stubStockLogRepo{})
	resp, err := inv.CreateProduct(ctx, dto.CreateProductRequest{
		CategoryID:   2,
		Name:         "Estrella Galicia",
		Price:        decimal.RequireFromString("4.50"),
		Cost:         decimal.RequireFromString("0.9"),
		StockCurrent: 10,
	}, "Admin")
	require.NoError(t, err)
	assert.Greater(t, resp.ID, 999)
}

func TestListMixersOnlyReturnsMixerTagged(t *testing.T) {
	ctx := context.Background()
	products := newStubProductRepo(seed.Products...)
	svc := NewCatalogService(products, &stubCategoryRepo{})

	mixers, err := svc.ListMixers(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, mixers)
	names := make([]string, 0, len(mixers))
	for _, m := range mixers {
		assert.True(t, m.IsMixer, m.Name)
		names = append(names, m.Name)
	}
	// The neat-serve pseudo-mixer rides along with the sodas
	assert.Contains(t, names, "Solo / Hielo")
	assert.NotContains(t, names, "Beefeater")
}
