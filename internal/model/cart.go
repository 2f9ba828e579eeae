package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductSnapshot is the subset of Product frozen into a cart line at add
// time. Later catalog or stock changes never retroactively affect an open
// cart or a stored order.
type ProductSnapshot struct {
	ID    int             `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// CartItem is one line of a waiter's open cart. Quantity is always 1: the
// touch UI adds one line per tap, and checkout decrements stock by 1 per line
// regardless of this field.
type CartItem struct {
	UniqueID   string           `json:"unique_id"`
	Product    ProductSnapshot  `json:"product"`
	Mixer      *ProductSnapshot `json:"mixer,omitempty"`
	Quantity   int              `json:"quantity"`
	TotalPrice decimal.Decimal  `json:"total_price"`
}

// NewCartItem freezes product (and optional mixer) into a new cart line.
func NewCartItem(product *Product, mixer *Product) CartItem {
	item := CartItem{
		UniqueID: uuid.NewString(),
		Product: ProductSnapshot{
			ID:    product.ID,
			Name:  product.Name,
			Price: product.Price,
		},
		Quantity:   1,
		TotalPrice: product.Price,
	}
	if mixer != nil {
		item.Mixer = &ProductSnapshot{
			ID:    mixer.ID,
			Name:  mixer.Name,
			Price: mixer.Price,
		}
		item.TotalPrice = product.Price.Add(mixer.Price)
	}
	return item
}

// Cart is the transient per-waiter item list, stored in Redis only.
type Cart struct {
	WaiterID string     `json:"waiter_id"`
	Items    []CartItem `json:"items"`
}

// Total sums the line totals.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.TotalPrice)
	}
	return total
}
