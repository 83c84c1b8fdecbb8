package reports

import (
	"net/http"
	"strings"
	"time"

	"github.com/vikasverma4851/Neoteric-backend/models"
	"github.com/vikasverma4851/Neoteric-backend/utils"

	"github.com/gin-gonic/gin"
)

type projectReportRow struct {
	ProjectName   string  `json:"projectName"`
	TotalTarget   float64 `json:"totalTarget"`
	TotalReceived float64 `json:"totalReceived"`
	TotalBalance  float64 `json:"totalBalance"`
}

// GetProjectReport aggregates, per project, the target (sum of Payment Type 1
// for bookings with an EMI) against money received through reconciliation
// entries in the requested date window.
func GetProjectReport(c *gin.Context) {
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")
	searchTerm := strings.ToLower(strings.TrimSpace(c.Query("searchTerm")))

	var projects []models.Project
	if err := utils.DB.Find(&projects).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while generating project report."})
		return
	}

	var withEMI []uint
	utils.DB.Model(&models.EMI{}).Distinct().Pluck("booking_id", &withEMI)
	if len(withEMI) == 0 {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": []projectReportRow{}})
		return
	}

	var bookings []models.Booking
	if err := utils.DB.Where("id IN ?", withEMI).Find(&bookings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while generating project report."})
		return
	}

	reconQuery := utils.DB.Model(&models.PaymentReconciliation{})
	if startDate != "" {
		if d, err := time.Parse("2006-01-02", startDate); err == nil {
			reconQuery = reconQuery.Where("received_date >= ?", d)
		}
	}
	if endDate != "" {
		if d, err := time.Parse("2006-01-02", endDate); err == nil {
			reconQuery = reconQuery.Where("received_date <= ?", d.Add(24*time.Hour-time.Nanosecond))
		}
	}
	var recons []models.PaymentReconciliation
	reconQuery.Find(&recons)

	receivedByBooking := make(map[uint]float64)
	for _, r := range recons {
		receivedByBooking[r.BookingID] += r.TodayReceiving
	}

	report := make([]projectReportRow, 0)
	for _, project := range projects {
		name := strings.ToLower(strings.TrimSpace(project.Name))
		var target, received float64
		matched := false
		for _, b := range bookings {
			if strings.ToLower(strings.TrimSpace(b.ProjectName)) != name {
				continue
			}
			matched = true
			target += b.PaymentType1
			received += receivedByBooking[b.ID]
		}
		if !matched {
			continue
		}
		if searchTerm != "" && !strings.Contains(name, searchTerm) {
			continue
		}
		report = append(report, projectReportRow{
			ProjectName:   project.Name,
			TotalTarget:   target,
			TotalReceived: received,
			TotalBalance:  target - received,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    report,
	})
}
