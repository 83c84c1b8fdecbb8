package models

import (
	"time"

	"gorm.io/gorm"
)

// EMI is the installment schedule for one booking. The schedule is created on
// the booking's Payment Type 1 amount and owns its installments wholesale:
// updates replace the full installment list.
type EMI struct {
	gorm.Model
	BookingID    uint          `gorm:"uniqueIndex;not null" json:"bookingId"`
	Installments []Installment `gorm:"foreignKey:EMIID" json:"installments"`
	CreatedBy    uint          `gorm:"not null" json:"createdBy"`
	UpdatedBy    uint          `json:"updatedBy"`
}

// Installment is one scheduled obligation inside an EMI schedule.
//
// Base installments carry numeric InstallmentNo strings ("1", "2", ...); a
// sub-installment created for a shortfall uses "<parentNo>-sub" and points
// back at its parent through ParentNo. Amount is the working obligation and
// shrinks when a partial payment collapses the installment; OriginalAmount
// never changes and is the basis for interest accrual.
type Installment struct {
	ID                    uint       `gorm:"primaryKey" json:"id"`
	EMIID                 uint       `gorm:"index;not null" json:"emiId"`
	InstallmentNo         string     `gorm:"not null" json:"installmentNo"`
	Amount                float64    `gorm:"not null" json:"amount"`
	OriginalAmount        float64    `gorm:"not null" json:"originalAmount"`
	DueDate               *time.Time `json:"dueDate"`
	TotalReceived         float64    `json:"totalReceived"`
	Balance               float64    `json:"balance"`
	Interest              float64    `json:"interest"`
	TotalInterestReceived float64    `json:"totalInterestReceived"`
	Paid                  bool       `gorm:"default:false" json:"paid"`
	IsSubInstallment      bool       `gorm:"default:false" json:"isSubInstallment"`
	ParentNo              string     `json:"parentNo,omitempty"`
	ParentDueDate         *time.Time `json:"parentDueDate,omitempty"`
	CommitmentDate        *time.Time `json:"commitmentDate,omitempty"`
	Position              int        `json:"-"`
	CreatedAt             time.Time  `json:"createdAt"`
	UpdatedAt             time.Time  `json:"updatedAt"`
}
