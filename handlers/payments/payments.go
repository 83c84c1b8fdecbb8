package payments

import (
	"net/http"

	"github.com/vikasverma4851/Neoteric-backend/handlers/auth"
	"github.com/vikasverma4851/Neoteric-backend/models"
	"github.com/vikasverma4851/Neoteric-backend/utils"

	"github.com/gin-gonic/gin"
)

// ReceivePayment records money against one of the booking's two upfront
// tranches. These payments are kept apart from the EMI ledger; fully
// receiving Payment Type 2 is what makes a booking eligible for EMI creation.
func ReceivePayment(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found in context"})
		return
	}

	var input struct {
		BookingID           uint     `json:"bookingId"`
		PaymentType         string   `json:"paymentType"`
		TodayReceiving      *float64 `json:"todayReceiving"`
		PaymentBy           string   `json:"paymentBy"`
		ChequeTransactionNo string   `json:"chequeTransactionNo"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payment data."})
		return
	}
	if input.BookingID == 0 || input.PaymentType == "" || input.TodayReceiving == nil || input.PaymentBy == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields."})
		return
	}
	if *input.TodayReceiving <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Amount receiving must be positive."})
		return
	}
	if input.PaymentType != models.PaymentType1 && input.PaymentType != models.PaymentType2 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Payment type must be Payment Type 1 or Payment Type 2."})
		return
	}

	var booking models.Booking
	if err := utils.DB.First(&booking, input.BookingID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Booking not found."})
		return
	}

	paymentTypeAmount := booking.PaymentType1
	if input.PaymentType == models.PaymentType2 {
		paymentTypeAmount = booking.PaymentType2
	}

	var previouslyReceived float64
	utils.DB.Model(&models.Payment{}).
		Where("booking_id = ? AND payment_type = ?", booking.ID, input.PaymentType).
		Select("COALESCE(SUM(today_receiving), 0)").Scan(&previouslyReceived)

	newTotalReceived := previouslyReceived + *input.TodayReceiving
	newBalanceAmount := paymentTypeAmount - newTotalReceived
	if newBalanceAmount < 0 {
		newBalanceAmount = 0
	}

	payment := models.Payment{
		BookingID:           booking.ID,
		PaymentType:         input.PaymentType,
		TodayReceiving:      *input.TodayReceiving,
		TotalReceived:       newTotalReceived,
		BalanceAmount:       newBalanceAmount,
		PaymentBy:           input.PaymentBy,
		ChequeTransactionNo: input.ChequeTransactionNo,
		CreatedBy:           user.ID,
	}

	if err := utils.DB.Create(&payment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error receiving payment."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Payment recorded successfully.",
		"payment": payment,
	})
}

func GetAllPayments(c *gin.Context) {
	var payments []models.Payment
	if err := utils.DB.Order("created_at DESC").Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch payments."})
		return
	}
	c.JSON(http.StatusOK, payments)
}

func GetPaymentsByBooking(c *gin.Context) {
	var payments []models.Payment
	if err := utils.DB.Where("booking_id = ?", c.Param("bookingId")).
		Order("created_at DESC").Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch payments."})
		return
	}
	c.JSON(http.StatusOK, payments)
}

// type2FullyReceived reports whether the booking's Payment Type 2 tranche is
// fully received (or zero).
func type2FullyReceived(booking models.Booking) bool {
	if booking.PaymentType2 == 0 {
		return true
	}
	var totalReceived float64
	utils.DB.Model(&models.Payment{}).
		Where("booking_id = ? AND payment_type = ?", booking.ID, models.PaymentType2).
		Select("COALESCE(SUM(today_receiving), 0)").Scan(&totalReceived)
	return totalReceived >= booking.PaymentType2
}

// GetFullyReceivedPaymentType2 lists EMI-eligible bookings: Payment Type 2
// fully received or zero, and no EMI created yet.
func GetFullyReceivedPaymentType2(c *gin.Context) {
	var withEMI []uint
	utils.DB.Model(&models.EMI{}).Distinct().Pluck("booking_id", &withEMI)

	query := utils.DB.Model(&models.Booking{})
	if len(withEMI) > 0 {
		query = query.Where("id NOT IN ?", withEMI)
	}

	var bookings []models.Booking
	if err := query.Find(&bookings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while fetching fully received Payment Type 2 bookings"})
		return
	}

	fullyReceived := make([]models.Booking, 0)
	for _, booking := range bookings {
		if type2FullyReceived(booking) {
			fullyReceived = append(fullyReceived, booking)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(fullyReceived),
		"data":    fullyReceived,
	})
}

// GetFullyReceivedPaymentType2WithEMI lists bookings whose Payment Type 2 is
// fully received (or zero) and which already have an EMI schedule.
func GetFullyReceivedPaymentType2WithEMI(c *gin.Context) {
	var withEMI []uint
	utils.DB.Model(&models.EMI{}).Distinct().Pluck("booking_id", &withEMI)

	fullyReceived := make([]models.Booking, 0)
	if len(withEMI) > 0 {
		var bookings []models.Booking
		if err := utils.DB.Where("id IN ?", withEMI).Find(&bookings).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while fetching fully received Payment Type 2 bookings with EMI created"})
			return
		}
		for _, booking := range bookings {
			if type2FullyReceived(booking) {
				fullyReceived = append(fullyReceived, booking)
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(fullyReceived),
		"data":    fullyReceived,
	})
}
