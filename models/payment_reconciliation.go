package models

import (
	"time"

	"gorm.io/gorm"
)

// PaymentReconciliation is one immutable ledger entry recording money applied
// against an installment. The ledger is the source of truth for received
// amounts; installment fields are a cached derivation of it.
type PaymentReconciliation struct {
	gorm.Model
	BookingID        uint       `gorm:"index;not null" json:"bookingId"`
	EMIID            uint       `gorm:"index;not null" json:"emiId"`
	InstallmentNo    string     `gorm:"index;not null" json:"installmentNo"`
	TodayReceiving   float64    `gorm:"not null" json:"todayReceiving"`
	InterestReceived float64    `json:"interestReceived"`
	Interest         float64    `json:"interest"`
	UTR              string     `json:"utr"`
	BankDetail       string     `json:"bankDetail"`
	ReceivedDate     time.Time  `gorm:"not null" json:"receivedDate"`
	IsSubInstallment bool       `gorm:"default:false" json:"isSubInstallment"`
	ParentDueDate    *time.Time `json:"parentDueDate,omitempty"`
	CreatedBy        uint       `gorm:"not null" json:"createdBy"`
}
