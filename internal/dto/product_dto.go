package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateProductRequest struct {
	CategoryID    int             `json:"category_id"    validate:"required,min=1"`
	Name          string          `json:"name"           validate:"required,min=1,max=120"`
	Price         decimal.Decimal `json:"price"          validate:"min=0"`
	Cost          decimal.Decimal `json:"cost"           validate:"min=0"`
	StockCurrent  int             `json:"stock_current"  validate:"min=0"`
	StockMinimum  *int            `json:"stock_minimum"  validate:"omitempty,min=0"`
	IsMixer       bool            `json:"is_mixer"`
	RequiresMixer bool            `json:"requires_mixer"`
}

// UpdateProductRequest carries the full editable field set; the admin form
// always submits every field, so there are no partial-update semantics.
type UpdateProductRequest struct {
	CategoryID    int             `json:"category_id"    validate:"required,min=1"`
	Name          string          `json:"name"           validate:"required,min=1,max=120"`
	Price         decimal.Decimal `json:"price"          validate:"min=0"`
	Cost          decimal.Decimal `json:"cost"           validate:"min=0"`
	StockCurrent  int             `json:"stock_current"  validate:"min=0"`
	StockMinimum  *int            `json:"stock_minimum"  validate:"omitempty,min=0"`
	IsMixer       bool            `json:"is_mixer"`
	RequiresMixer bool            `json:"requires_mixer"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductResponse struct {
	ID            int             `json:"id"`
	CategoryID    int             `json:"category_id"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	Cost          decimal.Decimal `json:"cost"`
	StockCurrent  int             `json:"stock_current"`
	StockMinimum  int             `json:"stock_minimum"`
	IsMixer       bool            `json:"is_mixer"`
	RequiresMixer bool            `json:"requires_mixer"`
}

type CategoryResponse struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	ColorHex string `json:"color_hex"`
}
