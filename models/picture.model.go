package models

import "gorm.io/gorm"

// Picture is a hotel image reference
type Picture struct {
	gorm.Model
	HotelID uint   `gorm:"not null;index"`
	URL     string `gorm:"not null"`
}

// RoomPicture is a room image reference
type RoomPicture struct {
	gorm.Model
	RoomID uint   `gorm:"not null;index"`
	URL    string `gorm:"not null"`
}
