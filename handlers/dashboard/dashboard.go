package dashboard

import (
	"net/http"
	"time"

	"github.com/vikasverma4851/Neoteric-backend/models"
	"github.com/vikasverma4851/Neoteric-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetDashboardStats aggregates booking counts and tranche totals. Payment
// Type 1 received comes from the reconciliation ledger (EMI payments land
// there); Payment Type 2 from the tranche payment table.
func GetDashboardStats(c *gin.Context) {
	now := time.Now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var totalActiveBookings, newBookingsThisMonth, totalBookings int64
	utils.DB.Model(&models.Booking{}).Where("status = ?", models.BookingStatusActive).Count(&totalActiveBookings)
	utils.DB.Model(&models.Booking{}).Where("created_at >= ?", startOfMonth).Count(&newBookingsThisMonth)
	utils.DB.Model(&models.Booking{}).Count(&totalBookings)

	var type1Deal, type2Deal float64
	utils.DB.Model(&models.Booking{}).Select("COALESCE(SUM(payment_type1), 0)").Scan(&type1Deal)
	utils.DB.Model(&models.Booking{}).Select("COALESCE(SUM(payment_type2), 0)").Scan(&type2Deal)

	var type1Received float64
	utils.DB.Model(&models.PaymentReconciliation{}).
		Select("COALESCE(SUM(today_receiving), 0)").Scan(&type1Received)

	var type2Received float64
	utils.DB.Model(&models.Payment{}).
		Where("payment_type = ?", models.PaymentType2).
		Select("COALESCE(SUM(today_receiving), 0)").Scan(&type2Received)

	c.JSON(http.StatusOK, gin.H{
		"totalActiveBookings":  totalActiveBookings,
		"newBookingsThisMonth": newBookingsThisMonth,
		"totalBookings":        totalBookings,
		"paymentType1": gin.H{
			"totalDeal":     type1Deal,
			"totalReceived": type1Received,
			"pending":       type1Deal - type1Received,
		},
		"paymentType2": gin.H{
			"totalDeal":     type2Deal,
			"totalReceived": type2Received,
			"pending":       type2Deal - type2Received,
		},
	})
}
