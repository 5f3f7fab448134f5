package models

import "gorm.io/gorm"

type Review struct {
	gorm.Model
	RoomID  uint   `gorm:"not null;index"`
	UserID  uint   `gorm:"not null"`
	User    User   `gorm:"foreignKey:UserID"`
	Rating  int    `gorm:"not null;check:rating >= 1 AND rating <= 5"` // 1–5 rating
	Comment string `gorm:"type:text;default:''"`
}
