package noc

import (
	"log"
	"net/http"
	"time"

	"github.com/vikasverma4851/Neoteric-backend/finance"
	"github.com/vikasverma4851/Neoteric-backend/handlers/auth"
	"github.com/vikasverma4851/Neoteric-backend/models"
	"github.com/vikasverma4851/Neoteric-backend/utils"

	"github.com/gin-gonic/gin"
)

// GrantNOC marks a booking's no-dues clearance. Outstanding installment
// balances are computed from the derived schedule and reported, but a grant
// with pending dues is allowed (force grant), matching staff workflow.
func GrantNOC(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found in context"})
		return
	}

	var input struct {
		BookingID uint   `json:"bookingId"`
		Remarks   string `json:"remarks"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.BookingID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Booking ID is required."})
		return
	}

	var booking models.Booking
	if err := utils.DB.First(&booking, input.BookingID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Booking not found"})
		return
	}

	if booking.NOCGranted {
		c.JSON(http.StatusBadRequest, gin.H{"message": "NOC already granted for this booking."})
		return
	}

	pendingAmount := 0.0
	var emi models.EMI
	if err := utils.DB.Preload("Installments").Where("booking_id = ?", booking.ID).First(&emi).Error; err == nil {
		var ledger []models.PaymentReconciliation
		utils.DB.Where("emi_id = ?", emi.ID).Find(&ledger)
		for _, d := range finance.DeriveSchedule(emi.Installments, ledger, time.Now()) {
			if !d.Paid {
				pendingAmount += d.Balance
			}
		}
	}

	if pendingAmount > 0 {
		log.Printf("NOC granted with pending amount: %.2f", pendingAmount)
	}

	now := time.Now()
	booking.NOCGranted = true
	booking.NOCGrantedOn = &now
	booking.NOCGrantedBy = &user.ID
	booking.NOCRemarks = input.Remarks
	if err := utils.DB.Save(&booking).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to grant NOC"})
		return
	}

	record := models.NOCHistory{
		BookingID: booking.ID,
		ClientID:  booking.ClientName,
		GrantedBy: user.ID,
		Remarks:   input.Remarks,
		Status:    "Granted",
	}
	if err := utils.DB.Create(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to record NOC history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "NOC granted successfully",
		"pendingAmount": pendingAmount,
	})
}

// GetNOCHistory lists NOC grants, optionally filtered by clientId or bookingId.
func GetNOCHistory(c *gin.Context) {
	query := utils.DB.Order("created_at DESC")

	if clientID := c.Query("clientId"); clientID != "" {
		query = query.Where("client_id = ?", clientID)
	}
	if bookingID := c.Query("bookingId"); bookingID != "" {
		query = query.Where("booking_id = ?", bookingID)
	}

	var history []models.NOCHistory
	if err := query.Find(&history).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch NOC history"})
		return
	}

	c.JSON(http.StatusOK, history)
}
