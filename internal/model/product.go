package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a sellable item or a mixer. IsMixer and RequiresMixer are
// independent flags: a product may have both false (sold as-is), and the
// catalog carries a zero-price "Solo / Hielo" pseudo-mixer so spirits can be
// served neat through the same pairing flow.
type Product struct {
	ID           int             `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryID   int             `gorm:"not null;index" json:"category_id"`
	Name         string          `gorm:"not null;index" json:"name"`
	Price        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Cost         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"cost"`
	StockCurrent int             `gorm:"not null;default:0" json:"stock_current"`
	// StockMinimum triggers the low-stock alert job when a sale crosses it.
	StockMinimum  int       `gorm:"not null;default:5" json:"stock_minimum"`
	IsMixer       bool      `gorm:"not null;default:false" json:"is_mixer"`
	RequiresMixer bool      `gorm:"not null;default:false" json:"requires_mixer"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Product) TableName() string { return "products" }
