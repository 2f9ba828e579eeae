package dto

import (
	"github.com/Digga-coder/POS-FRECUENZY/internal/model"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type AddCartItemRequest struct {
	ProductID int  `json:"product_id" validate:"required,min=1"`
	MixerID   *int `json:"mixer_id"   validate:"omitempty,min=1"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CartResponse struct {
	Items []model.CartItem `json:"items"`
	Total decimal.Decimal  `json:"total"`
}
