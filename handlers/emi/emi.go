package emi

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/vikasverma4851/Neoteric-backend/finance"
	"github.com/vikasverma4851/Neoteric-backend/handlers/auth"
	"github.com/vikasverma4851/Neoteric-backend/models"
	"github.com/vikasverma4851/Neoteric-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type installmentInput struct {
	InstallmentNo    string     `json:"installmentNo"`
	Amount           float64    `json:"amount"`
	DueDate          *time.Time `json:"dueDate"`
	IsSubInstallment bool       `json:"isSubInstallment"`
	ParentDueDate    *time.Time `json:"parentDueDate"`
	CommitmentDate   *time.Time `json:"commitmentDate"`
}

func toInstallments(inputs []installmentInput) []models.Installment {
	installments := make([]models.Installment, 0, len(inputs))
	for _, in := range inputs {
		installments = append(installments, models.Installment{
			InstallmentNo:    in.InstallmentNo,
			Amount:           in.Amount,
			OriginalAmount:   in.Amount,
			Balance:          in.Amount,
			DueDate:          in.DueDate,
			IsSubInstallment: in.IsSubInstallment,
			ParentDueDate:    in.ParentDueDate,
			CommitmentDate:   in.CommitmentDate,
		})
	}
	return installments
}

// initialInterest stamps each installment's starting interest figure: accrual
// from the due date to now for base installments, and from the parent's
// latest payment date (or parentDueDate) to the committed date for subs.
func initialInterest(installments []models.Installment, agg map[string]finance.Aggregates, now time.Time) {
	for i := range installments {
		inst := &installments[i]
		if inst.IsSubInstallment {
			start := finance.SubInterestStart(*inst, installments, agg, nil)
			inst.Interest = finance.Interest(inst.OriginalAmount, start, inst.CommitmentDate)
		} else {
			inst.Interest = finance.Interest(inst.OriginalAmount, inst.DueDate, &now)
		}
	}
}

func respondFinanceError(c *gin.Context, err error) {
	var ve *finance.ValidationError
	var ne *finance.NotFoundError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"message": ve.Message})
	case errors.As(err, &ne):
		c.JSON(http.StatusNotFound, gin.H{"message": ne.Message})
	default:
		log.Printf("EMI handler error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
	}
}

// CreateEMI creates the installment schedule for a booking on its Payment
// Type 1 amount. Requires Payment Type 2 to be fully received or zero.
func CreateEMI(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found in context"})
		return
	}

	var input struct {
		BookingID    uint               `json:"bookingId"`
		Installments []installmentInput `json:"installments"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.BookingID == 0 || len(input.Installments) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing or invalid data for EMI creation."})
		return
	}

	unlock := lockBooking(input.BookingID)
	defer unlock()

	var booking models.Booking
	if err := utils.DB.First(&booking, input.BookingID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Booking not found."})
		return
	}

	// Check eligibility: Payment Type 2 must be fully received or zero
	if booking.PaymentType2 != 0 {
		var totalType2 float64
		utils.DB.Model(&models.Payment{}).
			Where("booking_id = ? AND payment_type = ?", booking.ID, models.PaymentType2).
			Select("COALESCE(SUM(today_receiving), 0)").Scan(&totalType2)
		if totalType2 < booking.PaymentType2 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Cannot create EMI. Payment Type 2 is not fully received."})
			return
		}
	}

	var existing models.EMI
	if err := utils.DB.Where("booking_id = ?", booking.ID).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "EMI already exists for this booking."})
		return
	}

	installments := toInstallments(input.Installments)
	if err := finance.ValidateInstallments(installments, booking.PaymentType1); err != nil {
		respondFinanceError(c, err)
		return
	}
	initialInterest(installments, map[string]finance.Aggregates{}, time.Now())
	finance.SortInstallments(installments)

	emi := models.EMI{
		BookingID:    booking.ID,
		Installments: installments,
		CreatedBy:    user.ID,
	}
	if err := utils.DB.Create(&emi).Error; err != nil {
		log.Printf("Error creating EMI: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while creating EMI."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "EMI created successfully on Payment Type 1.",
		"emi":     emi,
	})
}

// UpdateEMI fully replaces a schedule's installment list. Not a merge:
// installments absent from the new list are removed.
func UpdateEMI(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found in context"})
		return
	}

	var input struct {
		EMIID        uint               `json:"emiId"`
		Installments []installmentInput `json:"installments"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.EMIID == 0 || len(input.Installments) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid data for EMI update."})
		return
	}

	var emi models.EMI
	if err := utils.DB.First(&emi, input.EMIID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "EMI record not found."})
		return
	}

	unlock := lockBooking(emi.BookingID)
	defer unlock()

	var booking models.Booking
	if err := utils.DB.First(&booking, emi.BookingID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Booking not found for this EMI."})
		return
	}

	installments := toInstallments(input.Installments)
	if err := finance.ValidateInstallments(installments, booking.PaymentType1); err != nil {
		respondFinanceError(c, err)
		return
	}

	var ledger []models.PaymentReconciliation
	utils.DB.Where("emi_id = ?", emi.ID).Find(&ledger)
	initialInterest(installments, finance.AggregateLedger(ledger), time.Now())
	finance.SortInstallments(installments)

	err := utils.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("emi_id = ?", emi.ID).Delete(&models.Installment{}).Error; err != nil {
			return err
		}
		for i := range installments {
			installments[i].ID = 0
			installments[i].EMIID = emi.ID
		}
		if err := tx.Create(&installments).Error; err != nil {
			return err
		}
		return tx.Model(&emi).Update("updated_by", user.ID).Error
	})
	if err != nil {
		log.Printf("Error updating EMI: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while updating EMI."})
		return
	}

	emi.Installments = installments
	emi.UpdatedBy = user.ID
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "EMI updated successfully.",
		"emi":     emi,
	})
}

// GetEMIByBookingID is the read path: it reconstructs totals, balances,
// interest and due-day figures from the persisted schedule plus the ledger,
// without touching stored state.
func GetEMIByBookingID(c *gin.Context) {
	bookingID := c.Param("bookingId")

	var emi models.EMI
	if err := utils.DB.Preload("Installments").Where("booking_id = ?", bookingID).First(&emi).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "EMI not found for this booking."})
		return
	}

	var ledger []models.PaymentReconciliation
	if err := utils.DB.Where("emi_id = ?", emi.ID).Find(&ledger).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while fetching EMI."})
		return
	}

	derived := finance.DeriveSchedule(emi.Installments, ledger, time.Now())

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"emi": gin.H{
			"id":           emi.ID,
			"bookingId":    emi.BookingID,
			"createdBy":    emi.CreatedBy,
			"updatedBy":    emi.UpdatedBy,
			"createdAt":    emi.CreatedAt,
			"updatedAt":    emi.UpdatedAt,
			"installments": derived,
		},
	})
}

// ListReconciliations returns the ledger for one schedule, newest received
// date first.
func ListReconciliations(c *gin.Context) {
	emiID := c.Param("emiId")

	var emi models.EMI
	if err := utils.DB.First(&emi, emiID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "EMI record not found."})
		return
	}

	var records []models.PaymentReconciliation
	if err := utils.DB.Where("emi_id = ?", emi.ID).Order("received_date DESC").Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while fetching reconciliations."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(records),
		"data":    records,
	})
}
