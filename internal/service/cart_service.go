package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Digga-coder/POS-FRECUENZY/internal/dto"
	"github.com/Digga-coder/POS-FRECUENZY/internal/model"
	"github.com/Digga-coder/POS-FRECUENZY/internal/repository"
)

var (
	// ErrOutOfStock rejects an add when the product or mixer shows no stock.
	// The cart is left unchanged.
	ErrOutOfStock = errors.New("out of stock")
	// ErrMixerRequired rejects a direct add of a spirit that needs a mixer.
	ErrMixerRequired = errors.New("product requires a mixer")
	// ErrNotAMixer rejects a pairing whose second product is not mixer-tagged.
	ErrNotAMixer = errors.New("selected product is not a mixer")
)

// CartService accumulates selected products into a per-waiter cart. Product
// and mixer data are snapshotted at add time: later stock or price changes do
// not retroactively affect an open cart.
type CartService interface {
	Get(ctx context.Context, waiterID string) (*dto.CartResponse, error)
	AddItem(ctx context.Context, waiterID string, req dto.AddCartItemRequest) (*dto.CartResponse, error)
	RemoveItem(ctx context.Context, waiterID, uniqueID string) (*dto.CartResponse, error)
	Clear(ctx context.Context, waiterID string) error
}

type cartService struct {
	store    repository.CartStore
	products repository.ProductRepository
}

func NewCartService(store repository.CartStore, products repository.ProductRepository) CartService {
	return &cartService{store: store, products: products}
}

func (s *cartService) Get(ctx context.Context, waiterID string) (*dto.CartResponse, error) {
	cart, err := s.store.Get(ctx, waiterID)
	if err != nil {
		return nil, err
	}
	return cartToResponse(cart), nil
}

func (s *cartService) AddItem(ctx context.Context, waiterID string, req dto.AddCartItemRequest) (*dto.CartResponse, error) {
	product, err := s.products.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("product %d: %w", req.ProductID, err)
	}
	if product.StockCurrent <= 0 {
		return nil, ErrOutOfStock
	}

	var mixer *model.Product
	if req.MixerID != nil {
		mixer, err = s.products.FindByID(ctx, *req.MixerID)
		if err != nil {
			return nil, fmt.Errorf("mixer %d: %w", *req.MixerID, err)
		}
		if !mixer.IsMixer {
			return nil, ErrNotAMixer
		}
		if mixer.StockCurrent <= 0 {
			return nil, ErrOutOfStock
		}
	} else if product.RequiresMixer {
		return nil, ErrMixerRequired
	}

	cart, err := s.store.Get(ctx, waiterID)
	if err != nil {
		return nil, err
	}
	cart.Items = append(cart.Items, model.NewCartItem(product, mixer))
	if err := s.store.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cartToResponse(cart), nil
}

func (s *cartService) RemoveItem(ctx context.Context, waiterID, uniqueID string) (*dto.CartResponse, error) {
	cart, err := s.store.Get(ctx, waiterID)
	if err != nil {
		return nil, err
	}
	// No-op when the id is absent.
	for i, item := range cart.Items {
		if item.UniqueID == uniqueID {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			if err := s.store.Save(ctx, cart); err != nil {
				return nil, err
			}
			break
		}
	}
	return cartToResponse(cart), nil
}

func (s *cartService) Clear(ctx context.Context, waiterID string) error {
	return s.store.Clear(ctx, waiterID)
}

func cartToResponse(cart *model.Cart) *dto.CartResponse {
	items := cart.Items
	if items == nil {
		items = []model.CartItem{}
	}
	return &dto.CartResponse{Items: items, Total: cart.Total()}
}
