package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name           string     `gorm:"not null" json:"name"`
	Email          string     `gorm:"unique;not null" json:"email"`
	Mobile         string     `json:"mobile"`
	Password       string     `gorm:"not null" json:"-"`
	Role           string     `gorm:"default:staff" json:"role"`
	OTP            string     `gorm:"-" json:"-"`
	OTPGeneratedAt *time.Time `gorm:"-" json:"-"`
}
