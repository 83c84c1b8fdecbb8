package utils

import (
	"log"
	"os"

	"gopkg.in/gomail.v2"
)

// SendOTPEmail sends a password-reset OTP to the user's email address
func SendOTPEmail(email string, otp string) {
	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_SENDER"))
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Password Reset Request")
	m.SetBody("text/plain", "Your OTP code is: "+otp)

	d := gomail.NewDialer(
		os.Getenv("SMTP_HOST"),
		465,
		os.Getenv("SMTP_USER"),
		os.Getenv("SMTP_PASS"),
	)

	if err := d.DialAndSend(m); err != nil {
		log.Printf("Failed to send OTP email to %s: %v", email, err)
		return
	}

	log.Printf("OTP email successfully sent to %s", email)
}
