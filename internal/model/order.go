package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment method tags. Ticket and invitation checkouts record a zero total
// while still consuming stock: revenue accounting is deliberately decoupled
// from inventory accounting.
const (
	PaymentCash         = "cash"
	PaymentTicketNormal = "ticket_normal"
	PaymentTicketVIP    = "ticket_vip"
	PaymentInvitation   = "invitation"
)

// ZeroAmountMethod reports whether a payment method records total_amount = 0.
func ZeroAmountMethod(method string) bool {
	switch method {
	case PaymentTicketNormal, PaymentTicketVIP, PaymentInvitation:
		return true
	}
	return false
}

// OrderItems stores the cart line snapshots embedded in the order row as
// JSONB. Orders are immutable, so the snapshots never need joining back to
// the products table.
type OrderItems []CartItem

func (o OrderItems) Value() (driver.Value, error) {
	return json.Marshal(o)
}

func (o *OrderItems) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, o)
	case string:
		return json.Unmarshal([]byte(v), o)
	case nil:
		*o = nil
		return nil
	}
	return errors.New("order items: unsupported scan type")
}

// Order is a completed checkout. Immutable once created: no edit or void path.
type Order struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	WaiterID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"waiter_id"`
	WaiterName    string          `gorm:"not null" json:"waiter_name"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_amount"`
	PaymentMethod string          `gorm:"type:varchar(20);not null" json:"payment_method"`
	Items         OrderItems      `gorm:"type:jsonb;not null" json:"items"`
	CreatedAt     time.Time       `gorm:"index" json:"created_at"`
}

func (Order) TableName() string { return "orders" }
