package emi

import (
	"fmt"
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

type reconciliationInput struct {
	InstallmentNo    string     `json:"installmentNo"`
	TodayReceiving   *float64   `json:"todayReceiving"`
	InterestReceived *float64   `json:"interestReceived"`
	UTR              string     `json:"utr"`
	BankDetail       string     `json:"bankDetail"`
	ReceivedDate     *time.Time `json:"receivedDate"`
	IsSubInstallment bool       `json:"isSubInstallment"`
	ParentDueDate    *time.Time `json:"parentDueDate"`
	CommitmentDate   *time.Time `json:"commitmentDate"`
}

// Reconcile applies one batch of payment entries against a booking's
// schedule. The batch is all-or-nothing: every entry is validated and applied
// to an in-memory copy first, and only a fully clean batch is persisted, in a
// single transaction, under the booking's lock.
func Reconcile(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found in context"})
		return
	}

	var input struct {
		BookingID              uint                  `json:"bookingId"`
		PaymentReconciliations []reconciliationInput `json:"paymentReconciliations"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.BookingID == 0 || len(input.PaymentReconciliations) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid reconciliation data."})
		return
	}

	unlock := lockBooking(input.BookingID)
	defer unlock()

	var booking models.Booking
	if err := utils.DB.First(&booking, input.BookingID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Booking not found."})
		return
	}

	var emi models.EMI
	if err := utils.DB.Preload("Installments").Where("booking_id = ?", booking.ID).First(&emi).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "EMI not found for this booking."})
		return
	}

	var ledger []models.PaymentReconciliation
	if err := utils.DB.Where("emi_id = ?", emi.ID).Find(&ledger).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error during payment reconciliation."})
		return
	}

	batch := finance.NewBatch(emi.Installments, ledger)
	records := make([]models.PaymentReconciliation, 0, len(input.PaymentReconciliations))
	history := make([]models.PaymentHistory, 0, len(input.PaymentReconciliations))

	for _, in := range input.PaymentReconciliations {
		if in.InstallmentNo == "" || in.TodayReceiving == nil || in.InterestReceived == nil || in.ReceivedDate == nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": fmt.Sprintf("Incomplete payment reconciliation data for installment %s.", in.InstallmentNo),
			})
			return
		}

		applied, err := batch.Apply(finance.Entry{
			InstallmentNo:    in.InstallmentNo,
			TodayReceiving:   *in.TodayReceiving,
			InterestReceived: *in.InterestReceived,
			ReceivedDate:     *in.ReceivedDate,
			UTR:              in.UTR,
			BankDetail:       in.BankDetail,
			IsSubInstallment: in.IsSubInstallment,
			ParentDueDate:    in.ParentDueDate,
			CommitmentDate:   in.CommitmentDate,
		})
		if err != nil {
			respondFinanceError(c, err)
			return
		}

		parentDueDate := in.ParentDueDate
		if parentDueDate == nil {
			parentDueDate = applied.Installment.ParentDueDate
		}

		records = append(records, models.PaymentReconciliation{
			BookingID:        booking.ID,
			EMIID:            emi.ID,
			InstallmentNo:    in.InstallmentNo,
			TodayReceiving:   *in.TodayReceiving,
			InterestReceived: *in.InterestReceived,
			Interest:         applied.Interest,
			UTR:              in.UTR,
			BankDetail:       in.BankDetail,
			ReceivedDate:     *in.ReceivedDate,
			IsSubInstallment: applied.Installment.IsSubInstallment,
			ParentDueDate:    parentDueDate,
			CreatedBy:        user.ID,
		})
		history = append(history, models.PaymentHistory{
			BookingID:      booking.ID,
			EMIID:          emi.ID,
			InstallmentNo:  in.InstallmentNo,
			ClientID:       booking.TaskID,
			MobileNo:       booking.Mobile,
			InstallmentAmt: applied.Installment.Amount,
			AmtReceived:    *in.TodayReceiving,
			Interest:       applied.Interest,
			UTR:            in.UTR,
			BankDetails:    in.BankDetail,
			ReceivingDate:  *in.ReceivedDate,
			CreatedBy:      user.ID,
		})
	}

	installments := batch.Installments()
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
		if err := tx.Create(&records).Error; err != nil {
			return err
		}
		if err := tx.Create(&history).Error; err != nil {
			return err
		}
		return tx.Model(&emi).Update("updated_by", user.ID).Error
	})
	if err != nil {
		log.Printf("Error during payment reconciliation: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error during payment reconciliation."})
		return
	}

	emi.Installments = installments
	c.JSON(http.StatusCreated, gin.H{
		"success":                true,
		"message":                "Payment reconciliation recorded successfully.",
		"paymentReconciliations": records,
		"emi":                    emi,
	})
}
