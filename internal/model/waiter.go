package model

import (
	"time"

	"github.com/google/uuid"
)

// Waiter is a floor-staff account. Passwords are stored and compared as
// plaintext: terminals share short numeric PINs and the threat model stops at
// the venue door. Username uniqueness is not enforced; login resolves the
// first case-insensitive match.
type Waiter struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Username  string    `gorm:"not null;index" json:"username"`
	Password  string    `gorm:"not null" json:"-"`
	Active    bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Waiter) TableName() string { return "waiters" }
