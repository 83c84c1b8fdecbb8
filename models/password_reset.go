package models

import (
	"time"

	"gorm.io/gorm"
)

// PasswordReset holds a short-lived OTP issued for a forgot-password request.
type PasswordReset struct {
	gorm.Model
	UserID    uint      `gorm:"index;not null" json:"userId"`
	OTP       string    `gorm:"not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
	Used      bool      `gorm:"default:false" json:"used"`
}
