package main

import (
	"log"
	"os"
	"time"

	"github.com/vikasverma4851/Neoteric-backend/handlers/auth"
	"github.com/vikasverma4851/Neoteric-backend/handlers/bookings"
	"github.com/vikasverma4851/Neoteric-backend/handlers/dashboard"
	"github.com/vikasverma4851/Neoteric-backend/handlers/emi"
	"github.com/vikasverma4851/Neoteric-backend/handlers/history"
	"github.com/vikasverma4851/Neoteric-backend/handlers/noc"
	"github.com/vikasverma4851/Neoteric-backend/handlers/payments"
	"github.com/vikasverma4851/Neoteric-backend/handlers/projects"
	"github.com/vikasverma4851/Neoteric-backend/handlers/reports"
	"github.com/vikasverma4851/Neoteric-backend/migrations"
	"github.com/vikasverma4851/Neoteric-backend/seed"
	"github.com/vikasverma4851/Neoteric-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading .env file:", err)
	}
}

func main() {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{os.Getenv("FRONTEND_ORIGIN")},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	utils.ConnectDatabase()

	migrations.MigrateAll()

	// Seed Initial Data
	if err := seed.SeedAdminUser(); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	r.POST("/api/users/login", auth.Login)
	r.POST("/api/users/register", auth.Register)
	r.POST("/api/users/forgot-password", auth.ForgotPassword)
	r.POST("/api/users/reset-password", auth.ResetPassword)

	protected := r.Group("/api")
	protected.Use(auth.AuthMiddleware())
	{
		protected.POST("/bookings", bookings.CreateBooking)
		protected.GET("/bookings", bookings.GetAllBookings)
		protected.PATCH("/bookings/:id/status", bookings.UpdateBookingStatus)
		protected.PUT("/bookings/:id", bookings.UpdateBooking)
		protected.DELETE("/bookings/:id", bookings.DeleteBooking)

		protected.POST("/payments/receive", payments.ReceivePayment)
		protected.GET("/payments", payments.GetAllPayments)
		protected.GET("/payments/by-booking/:bookingId", payments.GetPaymentsByBooking)
		protected.GET("/payments/fully-received-type2", payments.GetFullyReceivedPaymentType2)
		protected.GET("/payments/fully-received-type2-with-emi", payments.GetFullyReceivedPaymentType2WithEMI)

		protected.POST("/emi/create", emi.CreateEMI)
		protected.POST("/emi/update", emi.UpdateEMI)
		protected.GET("/emi/by-booking/:bookingId", emi.GetEMIByBookingID)
		protected.GET("/emi/reconciliations/:emiId", emi.ListReconciliations)
		protected.GET("/emi/pending-installments", emi.ListPendingInstallments)

		protected.POST("/payment-reconciliation/reconcile", emi.Reconcile)

		protected.GET("/payment-history", history.GetPaymentHistory)

		protected.POST("/noc/grant", noc.GrantNOC)
		protected.GET("/noc/history", noc.GetNOCHistory)

		protected.GET("/dashboard/stats", dashboard.GetDashboardStats)

		protected.POST("/projects", projects.CreateProject)
		protected.GET("/projects", projects.GetAllProjects)
		protected.PUT("/projects/:id", projects.UpdateProject)
		protected.DELETE("/projects/:id", projects.DeleteProject)

		protected.GET("/reports/projects", reports.GetProjectReport)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
