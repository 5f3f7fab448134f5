package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	PaymentMethodCash  = "cash"
	PaymentMethodPayOS = "payos"
)

// Payment records settlement of a booking. The unique index on BookingID
// enforces at most one payment per booking no matter which path records it.
type Payment struct {
	gorm.Model
	BookingID   uint      `gorm:"uniqueIndex;not null"`
	Method      string    `gorm:"not null"`
	Reference   string    `gorm:"not null"` // internal receipt reference
	PaymentDate time.Time `gorm:"not null"`
	Amount      uint      `gorm:"not null"`
}
