package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking occupies the half-open interval [CheckIn, CheckOut) on a room.
// Two live bookings on the same room must never overlap.
type Booking struct {
	gorm.Model
	UserID   uint      `gorm:"not null;index"`
	RoomID   uint      `gorm:"not null;index"`
	Room     Room      `gorm:"foreignKey:RoomID"`
	CheckIn  time.Time `gorm:"not null"`
	CheckOut time.Time `gorm:"not null"`
	Total    uint      `gorm:"not null"`
}
