package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Name     string `gorm:"default:''"`
	Email    string `gorm:"unique;not null"`
	Password string `gorm:"not null" json:"-"`
	Phone    string `gorm:"default:''"`
}
