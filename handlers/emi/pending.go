package emi

import (
	"net/http"
	"sort"
	"time"

	"github.com/vikasverma4851/Neoteric-backend/finance"
	"github.com/vikasverma4851/Neoteric-backend/models"
	"github.com/vikasverma4851/Neoteric-backend/utils"

	"github.com/gin-gonic/gin"
)

type pendingInstallment struct {
	BookingID       uint       `json:"bookingId"`
	ClientID        string     `json:"clientId"`
	ClientName      string     `json:"clientName"`
	MobileNo        string     `json:"mobileNo"`
	ProjectName     string     `json:"projectName"`
	InstallmentNo   string     `json:"installmentNo"`
	InstallmentAmt  float64    `json:"installmentAmt"`
	AmtReceived     float64    `json:"amtReceived"`
	Balance         float64    `json:"balance"`
	DueDate         *time.Time `json:"dueDate"`
	DueDays         int        `json:"dueDays"`
	Interest        float64    `json:"interest"`
	InterestRecd    float64    `json:"interestReceived"`
	InterestBalance float64    `json:"interestBalance"`
	Status          string     `json:"status"`
}

// ListPendingInstallments is the cross-booking view of every unpaid
// installment, derived from persisted schedules and ledgers the same way the
// single-booking read path is. Filterable by due-date range and a free-text
// search over client identity.
func ListPendingInstallments(c *gin.Context) {
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")
	searchTerm := c.Query("searchTerm")

	bookingQuery := utils.DB.Model(&models.Booking{})
	if searchTerm != "" {
		like := "%" + searchTerm + "%"
		bookingQuery = bookingQuery.Where(
			"client_name LIKE ? OR mobile LIKE ? OR task_id LIKE ?", like, like, like)
	}

	var bookings []models.Booking
	if err := bookingQuery.Find(&bookings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while fetching bookings."})
		return
	}

	var from, to *time.Time
	if startDate != "" {
		if d, err := time.Parse("2006-01-02", startDate); err == nil {
			from = &d
		}
	}
	if endDate != "" {
		if d, err := time.Parse("2006-01-02", endDate); err == nil {
			end := d.Add(24*time.Hour - time.Nanosecond)
			to = &end
		}
	}

	now := time.Now()
	result := make([]pendingInstallment, 0)

	for _, booking := range bookings {
		var emi models.EMI
		if err := utils.DB.Preload("Installments").Where("booking_id = ?", booking.ID).First(&emi).Error; err != nil {
			continue
		}
		var ledger []models.PaymentReconciliation
		utils.DB.Where("emi_id = ?", emi.ID).Find(&ledger)

		for _, d := range finance.DeriveSchedule(emi.Installments, ledger, now) {
			if d.Paid {
				continue
			}
			due := d.DueDate
			if due == nil {
				due = d.ParentDueDate
			}
			if from != nil && (due == nil || due.Before(*from)) {
				continue
			}
			if to != nil && (due == nil || due.After(*to)) {
				continue
			}
			result = append(result, pendingInstallment{
				BookingID:       booking.ID,
				ClientID:        booking.TaskID,
				ClientName:      booking.ClientName,
				MobileNo:        booking.Mobile,
				ProjectName:     booking.ProjectName,
				InstallmentNo:   d.InstallmentNo,
				InstallmentAmt:  d.Amount,
				AmtReceived:     d.TotalReceived,
				Balance:         d.Balance,
				DueDate:         due,
				DueDays:         d.DueDays,
				Interest:        d.Interest,
				InterestRecd:    d.TotalInterestReceived,
				InterestBalance: d.InterestBalance,
				Status:          "Pending",
			})
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].ProjectName != result[j].ProjectName {
			return result[i].ProjectName < result[j].ProjectName
		}
		if result[i].ClientID != result[j].ClientID {
			return result[i].ClientID < result[j].ClientID
		}
		di, dj := result[i].DueDate, result[j].DueDate
		if di == nil || dj == nil {
			return dj == nil && di != nil
		}
		return di.Before(*dj)
	})

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(result),
		"data":    result,
	})
}
