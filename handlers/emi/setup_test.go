package emi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/vikasverma4851/Neoteric-backend/models"
	"github.com/vikasverma4851/Neoteric-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTest opens a fresh in-memory database, seeds a staff user and an
// active booking, and returns a router with the EMI routes mounted behind a
// stub auth middleware.
func setupTest(t *testing.T) (*gin.Engine, models.Booking) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	utils.DB = db

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Booking{},
		&models.Payment{},
		&models.EMI{},
		&models.Installment{},
		&models.PaymentReconciliation{},
		&models.PaymentHistory{},
	))

	user := models.User{Name: "Staff One", Email: "staff@neoteric.local", Password: "x", Role: "staff"}
	require.NoError(t, db.Create(&user).Error)

	booking := models.Booking{
		ProjectName:        "Green Meadows",
		ProjectType:        "Residential",
		ClientName:         "Asha Verma",
		Mobile:             "9876543210",
		SalesExecutiveName: "R. Gupta",
		Unit:               "A-101",
		PaymentType1:       100000,
		PaymentType2:       0,
		TotalDealCost:      150000,
		TaskID:             "TASK-001",
		Status:             models.BookingStatusActive,
		CreatedBy:          user.ID,
	}
	require.NoError(t, db.Create(&booking).Error)

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("user", user) })
	r.POST("/api/emi/create", CreateEMI)
	r.POST("/api/emi/update", UpdateEMI)
	r.GET("/api/emi/by-booking/:bookingId", GetEMIByBookingID)
	r.GET("/api/emi/reconciliations/:emiId", ListReconciliations)
	r.GET("/api/emi/pending-installments", ListPendingInstallments)
	r.POST("/api/payment-reconciliation/reconcile", Reconcile)

	return r, booking
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// createSchedule posts a simple two-installment schedule and returns the EMI id.
func createSchedule(t *testing.T, r *gin.Engine, bookingID uint) uint {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/emi/create", gin.H{
		"bookingId": bookingID,
		"installments": []gin.H{
			{"installmentNo": "1", "amount": 1000, "dueDate": day(2024, 1, 1)},
			{"installmentNo": "2", "amount": 2000, "dueDate": day(2024, 2, 1)},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var emi models.EMI
	require.NoError(t, utils.DB.Where("booking_id = ?", bookingID).First(&emi).Error)
	return emi.ID
}
