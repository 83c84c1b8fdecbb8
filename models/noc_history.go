package models

import "gorm.io/gorm"

type NOCHistory struct {
	gorm.Model
	BookingID uint   `gorm:"index;not null" json:"bookingId"`
	ClientID  string `gorm:"not null" json:"clientId"`
	GrantedBy uint   `gorm:"not null" json:"grantedBy"`
	Remarks   string `json:"remarks"`
	Status    string `gorm:"default:Granted" json:"status"`
}

// TableName to override the default table name
func (NOCHistory) TableName() string {
	return "noc_history"
}
