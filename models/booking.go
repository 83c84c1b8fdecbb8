package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	BookingStatusPending  = "pending"
	BookingStatusActive   = "active"
	BookingStatusRejected = "rejected"
)

type Booking struct {
	gorm.Model
	ProjectName        string     `gorm:"not null" json:"projectName"`
	ProjectType        string     `gorm:"not null" json:"projectType"`
	ClientName         string     `gorm:"not null" json:"clientName"`
	Mobile             string     `gorm:"not null" json:"mobile"`
	SalesExecutiveName string     `gorm:"not null" json:"salesExecutiveName"`
	Unit               string     `gorm:"not null" json:"unit"`
	Tower              string     `gorm:"default:N/A" json:"tower"`
	PaymentType1       float64    `gorm:"not null" json:"paymentType1"`
	PaymentType2       float64    `gorm:"not null" json:"paymentType2"`
	TotalDealCost      float64    `gorm:"not null" json:"totalDealCost"`
	AadharNumber       string     `json:"aadharNumber"`
	PanNumber          string     `json:"panNumber"`
	Status             string     `gorm:"default:pending" json:"status"`
	Remark             string     `json:"remark"`
	TaskID             string     `gorm:"uniqueIndex;not null" json:"taskId"`
	CreatedBy          uint       `gorm:"not null" json:"createdBy"`
	NOCGranted         bool       `gorm:"default:false" json:"nocGranted"`
	NOCGrantedOn       *time.Time `json:"nocGrantedOn,omitempty"`
	NOCGrantedBy       *uint      `json:"nocGrantedBy,omitempty"`
	NOCRemarks         string     `json:"nocRemarks"`
	ProceedToNoDue     bool       `gorm:"default:false" json:"proceedToNoDue"`
}
