package models

import (
	"time"

	"gorm.io/gorm"
)

// PaymentHistory is the denormalized reporting copy of a reconciliation
// event. Write-once; never consulted for financial truth.
type PaymentHistory struct {
	gorm.Model
	BookingID      uint      `gorm:"index;not null" json:"bookingId"`
	EMIID          uint      `gorm:"index;not null" json:"emiId"`
	InstallmentNo  string    `gorm:"not null" json:"installmentNo"`
	ClientID       string    `json:"clientId"`
	MobileNo       string    `json:"mobileNo"`
	InstallmentAmt float64   `json:"installmentAmt"`
	AmtReceived    float64   `gorm:"not null" json:"amtReceived"`
	Interest       float64   `json:"interest"`
	UTR            string    `json:"utr"`
	BankDetails    string    `json:"bankDetails"`
	ReceivingDate  time.Time `gorm:"index;not null" json:"receivingDate"`
	CreatedBy      uint      `gorm:"not null" json:"createdBy"`
}

// TableName to override the default table name
func (PaymentHistory) TableName() string {
	return "PaymentHistory"
}
