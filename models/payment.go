package models

import "gorm.io/gorm"

const (
	PaymentType1 = "Payment Type 1"
	PaymentType2 = "Payment Type 2"
)

// Payment records money received against one of the booking's two upfront
// tranches, independent of the EMI schedule.
type Payment struct {
	gorm.Model
	BookingID           uint    `gorm:"index;not null" json:"bookingId"`
	PaymentType         string  `gorm:"not null" json:"paymentType"`
	TotalReceived       float64 `gorm:"not null" json:"totalReceived"`
	TodayReceiving      float64 `gorm:"not null" json:"todayReceiving"`
	BalanceAmount       float64 `gorm:"not null" json:"balanceAmount"`
	PaymentBy           string  `gorm:"not null" json:"paymentBy"`
	ChequeTransactionNo string  `json:"chequeTransactionNo"`
	CreatedBy           uint    `gorm:"not null" json:"createdBy"`
}
