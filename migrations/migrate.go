package migrations

import (
	"github.com/vikasverma4851/Neoteric-backend/models"
	"github.com/vikasverma4851/Neoteric-backend/utils"
)

func MigrateAll() {
	utils.DB.AutoMigrate(
		&models.User{},
		&models.PasswordReset{},
		&models.Project{},
		&models.Booking{},
		&models.Payment{},
		&models.EMI{},
		&models.Installment{},
		&models.PaymentReconciliation{},
		&models.PaymentHistory{},
		&models.NOCHistory{},
	)
}
