package utils

import (
	"fmt"
	"net/smtp"

	"hbook/config"
)

// SendBookingConfirmationEmail sends an email notification after a booking is created
func SendBookingConfirmationEmail(email, userName, roomType, checkIn, checkOut string, total uint) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password // App password

	to := []string{email}

	subject := "Subject: Booking Confirmation\nMIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n\n"

	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 600px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px; box-shadow: 0 2px 8px rgba(0, 0, 0, 0.1);">
					<h2 style="color: #333333; text-align: center;">Booking Confirmed!</h2>
					<p style="font-size: 16px; color: #555555;">Dear %s,</p>
					<p style="font-size: 16px; color: #555555;">Your room has been reserved:</p>
					<h3 style="text-align: center; color: #4CAF50; margin: 20px 0;">%s</h3>
					<p style="font-size: 14px; color: #666666; text-align: center;">Check-in: %s &mdash; Check-out: %s</p>
					<p style="font-size: 14px; color: #666666; text-align: center;">Total: %d</p>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 30px;">Thank you for booking with us.</p>
				</div>
			</body>
		</html>
	`, userName, roomType, checkIn, checkOut, total)

	message := []byte(subject + "\n" + body)
	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, message)
	if err != nil {
		fmt.Println("Error sending booking confirmation email:", err)
		return err
	}

	fmt.Println("Booking confirmation email sent successfully to", email)
	return nil
}
