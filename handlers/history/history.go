package history

import (
	"net/http"
	"time"

	"github.com/vikasverma4851/Neoteric-backend/models"
	"github.com/vikasverma4851/Neoteric-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetPaymentHistory lists the denormalized payment audit trail, newest
// receiving date first, filterable by date range and a free-text search over
// client id, mobile, UTR, bank details, and matching bookings.
func GetPaymentHistory(c *gin.Context) {
	query := utils.DB.Model(&models.PaymentHistory{})

	if startDate := c.Query("startDate"); startDate != "" {
		if d, err := time.Parse("2006-01-02", startDate); err == nil {
			query = query.Where("receiving_date >= ?", d)
		}
	}
	if endDate := c.Query("endDate"); endDate != "" {
		if d, err := time.Parse("2006-01-02", endDate); err == nil {
			query = query.Where("receiving_date <= ?", d.Add(24*time.Hour-time.Nanosecond))
		}
	}

	if searchTerm := c.Query("searchTerm"); searchTerm != "" {
		like := "%" + searchTerm + "%"

		var bookingIDs []uint
		utils.DB.Model(&models.Booking{}).
			Where("task_id LIKE ? OR client_name LIKE ? OR mobile LIKE ?", like, like, like).
			Pluck("id", &bookingIDs)

		if len(bookingIDs) > 0 {
			query = query.Where(
				"client_id LIKE ? OR mobile_no LIKE ? OR utr LIKE ? OR bank_details LIKE ? OR booking_id IN ?",
				like, like, like, like, bookingIDs)
		} else {
			query = query.Where(
				"client_id LIKE ? OR mobile_no LIKE ? OR utr LIKE ? OR bank_details LIKE ?",
				like, like, like, like)
		}
	}

	var records []models.PaymentHistory
	if err := query.Order("receiving_date DESC").Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error fetching payment history."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(records),
		"data":    records,
	})
}
