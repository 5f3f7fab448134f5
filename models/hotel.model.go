package models

import "gorm.io/gorm"

type Hotel struct {
	gorm.Model
	Name    string `gorm:"not null"`
	Address string `gorm:"not null"` // city is the last comma-separated segment
}
