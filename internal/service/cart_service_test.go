package service

import (
	"context"
	"testing"

	"github.com/Digga-coder/POS-FRECUENZY/internal/dto"
	"github.com/Digga-coder/POS-FRECUENZY/internal/seed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartFixture(t *testing.T) (CartService, *memCartStore, *stubProductRepo) {
	t.Helper()
	products := newStubProductRepo(seed.Products...)
	store := newMemCartStore()
	return NewCartService(store, products), store, products
}

func intPtr(i int) *int { return &i }

func TestCartAddItem(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newCartFixture(t)

	// Heineken, no mixer needed
	resp, err := svc.AddItem(ctx, "w1", dto.AddCartItemRequest{ProductID: 201})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Heineken", resp.Items[0].Product.Name)
	assert.Equal(t, "4.00", resp.Total.StringFixed(2))

	// Beefeater paired with Coca-Cola: one line, sum of both prices
	resp, err = svc.AddItem(ctx, "w1", dto.AddCartItemRequest{ProductID: 101, MixerID: intPtr(401)})
	require.NoError(t, err)
	require.Len(t, resp.Items, 2)
	line := resp.Items[1]
	require.NotNil(t, line.Mixer)
	assert.Equal(t, "Coca-Cola", line.Mixer.Name)
	assert.Equal(t, "11.00", line.TotalPrice.StringFixed(2))
	assert.Equal(t, "15.00", resp.Total.StringFixed(2))
}

func TestCartAddItemLinesAreIndependent(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newCartFixture(t)

	first, err := svc.AddItem(ctx, "w1", dto.AddCartItemRequest{ProductID: 201})
	require.NoError(t, err)
	second, err := svc.AddItem(ctx, "w1", dto.AddCartItemRequest{ProductID: 201})
	require.NoError(t, err)

	// Same product twice produces two lines with distinct ids, not a
	// quantity bump.
	require.Len(t, second.Items, 2)
	assert.NotEqual(t, first.Items[0].UniqueID, second.Items[1].UniqueID)
	assert.Equal(t, 1, second.Items[0].Quantity)
	assert.Equal(t, 1, second.Items[1].Quantity)
}

func TestCartAddItemOutOfStock(t *testing.T) {
	ctx := context.Background()
	products := newStubProductRepo(seed.Products...)
	products.products[201].StockCurrent = 0
	store := newMemCartStore()
	svc := NewCartService(store, products)

	_, err := svc.AddItem(ctx, "w1", dto.AddCartItemRequest{ProductID: 201})
	assert.ErrorIs(t, err, ErrOutOfStock)

	// Cart untouched by the rejected add
	resp, err := svc.Get(ctx, "w1")
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
}

func TestCartAddItemMixerOutOfStock(t *testing.T) {
	ctx := context.Background()
	products := newStubProductRepo(seed.Products...)
	products.products[401].StockCurrent = 0
	svc := NewCartService(newMemCartStore(), products)

	_, err := svc.AddItem(ctx, "w1", dto.AddCartItemRequest{ProductID: 101, MixerID: intPtr(401)})
	assert.ErrorIs(t, err, ErrOutOfStock)
}

func TestCartAddItemMixerRequired(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newCartFixture(t)

	// Beefeater requires a mixer; adding it bare is rejected
	_, err := svc.AddItem(ctx, "w1", dto.AddCartItemRequest{ProductID: 101})
	assert.ErrorIs(t, err, ErrMixerRequired)

	// "Solo / Hielo" satisfies the pairing without changing the price
	resp, err := svc.AddItem(ctx, "w1", dto.AddCartItemRequest{ProductID: 101, MixerID: intPtr(999)})
	require.NoError(t, err)
	assert.Equal(t, "8.00", resp.Total.StringFixed(2))
}

func TestCartAddItemNotAMixer(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newCartFixture(t)

	// Heineken is not mixer-tagged
	_, err := svc.AddItem(ctx, "w1", dto.AddCartItemRequest{ProductID: 101, MixerID: intPtr(201)})
	assert.ErrorIs(t, err, ErrNotAMixer)
}

func TestCartRemoveItem(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newCartFixture(t)

	resp, err := svc.AddItem(ctx, "w1", dto.AddCartItemRequest{ProductID: 201})
	require.NoError(t, err)
	resp, err = svc.AddItem(ctx, "w1", dto.AddCartItemRequest{ProductID: 301})
	require.NoError(t, err)

	removed, err := svc.RemoveItem(ctx, "w1", resp.Items[0].UniqueID)
	require.NoError(t, err)
	require.Len(t, removed.Items, 1)
	assert.Equal(t, "Mojito", removed.Items[0].Product.Name)
	assert.Equal(t, "10.00", removed.Total.StringFixed(2))
}

func TestCartRemoveItemUnknownIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newCartFixture(t)

	_, err := svc.AddItem(ctx, "w1", dto.AddCartItemRequest{ProductID: 201})
	require.NoError(t, err)

	resp, err := svc.RemoveItem(ctx, "w1", "does-not-exist")
	require.NoError(t, err)
	assert.Len(t, resp.Items, 1)
}

func TestCartIsolationBetweenWaiters(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newCartFixture(t)

	_, err := svc.AddItem(ctx, "w1", dto.AddCartItemRequest{ProductID: 201})
	require.NoError(t, err)

	other, err := svc.Get(ctx, "w2")
	require.NoError(t, err)
	assert.Empty(t, other.Items)
}

func TestCartClear(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newCartFixture(t)

	_, err := svc.AddItem(ctx, "w1", dto.AddCartItemRequest{ProductID: 201})
	require.NoError(t, err)
	require.NoError(t, svc.Clear(ctx, "w1"))

	resp, err := svc.Get(ctx, "w1")
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
	assert.True(t, resp.Total.IsZero())
}
