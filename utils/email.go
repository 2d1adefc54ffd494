package utils

import (
	"fmt"
	"log"

	"github.com/aromabeans/coffee-feedback/config"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail sends an email using SendGrid. Used by the auth flows for OTP
// delivery and password resets.
func SendEmail(toName, toEmail, subject, textContent, htmlContent string) error {
	apiKey := config.SendGridAPIKey
	if apiKey == "" {
		return fmt.Errorf("SENDGRID_API_KEY is not set in environment variables")
	}

	from := mail.NewEmail("Aroma Beans Coffee", "no-reply@aromabeans.coffee")
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, textContent, htmlContent)
	client := sendgrid.NewSendClient(apiKey)

	response, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", toEmail, err)
		return err
	}

	if response.StatusCode >= 400 {
		log.Printf("SendGrid API Error: Status Code %d, Body: %s", response.StatusCode, response.Body)
		return fmt.Errorf("failed to send email, status code: %d", response.StatusCode)
	}

	return nil
}
