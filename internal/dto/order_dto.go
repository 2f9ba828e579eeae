package dto

import (
	"github.com/Digga-coder/POS-FRECUENZY/internal/model"

	"github.com/shopspring/decimal"
)

// ─── Filter / List ──────────────────────────────────────────────────────────

// OrderFilter is bound from the query string of GET /v1/orders.
type OrderFilter struct {
	Date  string `form:"date"               validate:"omitempty,datetime=2006-01-02"` // empty = all
	Limit int    `form:"limit,default=2000" validate:"min=1,max=2000"`
}

type StockLogFilter struct {
	Date  string `form:"date"              validate:"omitempty,datetime=2006-01-02"`
	Limit int    `form:"limit,default=200" validate:"min=1,max=500"`
}

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CheckoutRequest triggers the checkout transaction for the caller's cart.
// When Confirm is false the server answers with the method-specific prompt and
// performs no side effects; the terminal re-submits with Confirm=true after
// the operator accepts.
type CheckoutRequest struct {
	PaymentMethod string `json:"payment_method" validate:"required,oneof=cash ticket_normal ticket_vip invitation"`
	Confirm       bool   `json:"confirm"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// CheckoutPrompt is returned when confirmation is still pending.
type CheckoutPrompt struct {
	ConfirmationRequired bool            `json:"confirmation_required"`
	Prompt               string          `json:"prompt"`
	Amount               decimal.Decimal `json:"amount"`
}

type OrderResponse struct {
	ID            string           `json:"id"`
	WaiterID      string           `json:"waiter_id"`
	WaiterName    string           `json:"waiter_name"`
	TotalAmount   decimal.Decimal  `json:"total_amount"`
	PaymentMethod string           `json:"payment_method"`
	Items         []model.CartItem `json:"items"`
	CreatedAt     string           `json:"created_at"`
}

// CheckoutResponse carries the stored order plus the freshly re-read recent
// stock logs, so the terminal reconciles concurrent external movements.
type CheckoutResponse struct {
	Order      OrderResponse      `json:"order"`
	RecentLogs []StockLogResponse `json:"recent_logs"`
}

type StockLogResponse struct {
	ID             string `json:"id"`
	Date           string `json:"date"`
	ProductName    string `json:"product_name"`
	QuantityChange int    `json:"quantity_change"`
	Reason         string `json:"reason"`
	User           string `json:"user"`
}
