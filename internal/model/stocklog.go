package model

import (
	"time"

	"github.com/google/uuid"
)

// Stock movement reasons.
const (
	ReasonSale             = "sale"
	ReasonRestock          = "restock"
	ReasonManualAdjustment = "manual_adjustment"
)

// StockLog is one append-only inventory movement. Product names are
// denormalized so deleting a product leaves its history readable.
type StockLog struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Date           time.Time `gorm:"not null;index" json:"date"`
	ProductName    string    `gorm:"not null" json:"product_name"`
	QuantityChange int       `gorm:"not null" json:"quantity_change"`
	Reason         string    `gorm:"type:varchar(20);not null" json:"reason"`
	User           string    `gorm:"not null" json:"user"`
}

func (StockLog) TableName() string { return "stock_logs" }
