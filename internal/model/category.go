package model

// Category classifies sellable products on the waiter grid.
// The list is seeded once at startup and has no mutation endpoints.
type Category struct {
	ID       int    `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"uniqueIndex;not null" json:"name"`
	ColorHex string `gorm:"not null" json:"color_hex"`
}

func (Category) TableName() string { return "categories" }
