package models

import "gorm.io/gorm"

type Room struct {
	gorm.Model
	HotelID       uint   `gorm:"not null;index"`
	RoomType      string `gorm:"not null"`
	PricePerNight uint   `gorm:"not null"`
}
