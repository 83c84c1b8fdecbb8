package bookings

import (
	"net/http"

	"github.com/vikasverma4851/Neoteric-backend/handlers/auth"
	"github.com/vikasverma4851/Neoteric-backend/models"
	"github.com/vikasverma4851/Neoteric-backend/utils"

	"github.com/gin-gonic/gin"
)

type bookingInput struct {
	ProjectName        string  `json:"projectName"`
	ProjectType        string  `json:"projectType"`
	ClientName         string  `json:"clientName"`
	Mobile             string  `json:"mobile"`
	SalesExecutiveName string  `json:"salesExecutiveName"`
	Unit               string  `json:"unit"`
	Tower              string  `json:"tower"`
	PaymentType1       float64 `json:"paymentType1"`
	PaymentType2       float64 `json:"paymentType2"`
	TotalDealCost      float64 `json:"totalDealCost"`
	AadharNumber       string  `json:"aadharNumber"`
	PanNumber          string  `json:"panNumber"`
	TaskID             string  `json:"taskId"`
	Remark             string  `json:"remark"`
}

func CreateBooking(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found in context"})
		return
	}

	var input bookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid booking data."})
		return
	}

	if input.ProjectName == "" || input.ClientName == "" || input.Mobile == "" || input.Unit == "" || input.TaskID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required booking fields."})
		return
	}
	if input.PaymentType1 < 0 || input.PaymentType2 < 0 || input.TotalDealCost <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Booking amounts must be positive."})
		return
	}

	var existing models.Booking
	if err := utils.DB.Where("task_id = ?", input.TaskID).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "A booking with this task ID already exists."})
		return
	}

	tower := input.Tower
	if tower == "" {
		tower = "N/A"
	}

	booking := models.Booking{
		ProjectName:        input.ProjectName,
		ProjectType:        input.ProjectType,
		ClientName:         input.ClientName,
		Mobile:             input.Mobile,
		SalesExecutiveName: input.SalesExecutiveName,
		Unit:               input.Unit,
		Tower:              tower,
		PaymentType1:       input.PaymentType1,
		PaymentType2:       input.PaymentType2,
		TotalDealCost:      input.TotalDealCost,
		AadharNumber:       input.AadharNumber,
		PanNumber:          input.PanNumber,
		TaskID:             input.TaskID,
		Remark:             input.Remark,
		Status:             models.BookingStatusPending,
		CreatedBy:          user.ID,
	}

	if err := utils.DB.Create(&booking).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while creating booking."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Booking created successfully.",
		"booking": booking,
	})
}

func GetAllBookings(c *gin.Context) {
	query := utils.DB.Order("created_at DESC")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if searchTerm := c.Query("searchTerm"); searchTerm != "" {
		like := "%" + searchTerm + "%"
		query = query.Where("task_id LIKE ? OR client_name LIKE ? OR mobile LIKE ?", like, like, like)
	}

	var bookings []models.Booking
	if err := query.Find(&bookings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while fetching bookings."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(bookings),
		"data":    bookings,
	})
}

func UpdateBookingStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status"`
		Remark string `json:"remark"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status data."})
		return
	}

	switch input.Status {
	case models.BookingStatusPending, models.BookingStatusActive, models.BookingStatusRejected:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"message": "Status must be one of pending, active, rejected."})
		return
	}

	var booking models.Booking
	if err := utils.DB.First(&booking, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Booking not found."})
		return
	}

	booking.Status = input.Status
	if input.Remark != "" {
		booking.Remark = input.Remark
	}
	if err := utils.DB.Save(&booking).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while updating booking status."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Booking status updated.",
		"booking": booking,
	})
}

func UpdateBooking(c *gin.Context) {
	var booking models.Booking
	if err := utils.DB.First(&booking, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Booking not found."})
		return
	}

	var input bookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid booking data."})
		return
	}

	updates := map[string]interface{}{}
	if input.ProjectName != "" {
		updates["project_name"] = input.ProjectName
	}
	if input.ProjectType != "" {
		updates["project_type"] = input.ProjectType
	}
	if input.ClientName != "" {
		updates["client_name"] = input.ClientName
	}
	if input.Mobile != "" {
		updates["mobile"] = input.Mobile
	}
	if input.SalesExecutiveName != "" {
		updates["sales_executive_name"] = input.SalesExecutiveName
	}
	if input.Unit != "" {
		updates["unit"] = input.Unit
	}
	if input.Tower != "" {
		updates["tower"] = input.Tower
	}
	if input.PaymentType1 > 0 {
		updates["payment_type1"] = input.PaymentType1
	}
	if input.PaymentType2 > 0 {
		updates["payment_type2"] = input.PaymentType2
	}
	if input.TotalDealCost > 0 {
		updates["total_deal_cost"] = input.TotalDealCost
	}
	if input.Remark != "" {
		updates["remark"] = input.Remark
	}

	if err := utils.DB.Model(&booking).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while updating booking."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Booking updated successfully.",
		"booking": booking,
	})
}

func DeleteBooking(c *gin.Context) {
	var booking models.Booking
	if err := utils.DB.First(&booking, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Booking not found."})
		return
	}

	var emi models.EMI
	if err := utils.DB.Where("booking_id = ?", booking.ID).First(&emi).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Cannot delete a booking with an EMI schedule."})
		return
	}

	if err := utils.DB.Delete(&booking).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while deleting booking."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Booking deleted successfully.",
	})
}
