package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"os"
	"path/filepath"
)

type OrderEmailData struct {
	Name        string
	OrderNumber string
	TotalAmount float64
	Message     string
}

func SendEmail(emailTo string, emailSubject string, data OrderEmailData, templatePath string) error {

	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return fmt.Errorf("template parse error: %w", err)
	}

	var body bytes.Buffer
	err = tmpl.Execute(&body, data)
	if err != nil {
		return fmt.Errorf("template execution error: %w", err)
	}

	message := fmt.Sprintf(
		"From: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n%s",
		os.Getenv("FROM_EMAIL"),
		emailSubject,
		body.String(),
	)

	auth := smtp.PlainAuth(
		"",
		os.Getenv("FROM_EMAIL"),
		os.Getenv("FROM_EMAIL_PASSWORD"),
		os.Getenv("FROM_EMAIL_SMTP"),
	)

	err = smtp.SendMail(os.Getenv("SMTP_ADDRESS"), auth, os.Getenv("FROM_EMAIL"), []string{emailTo}, []byte(message))
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// SendOrderConfirmation mails the customer a receipt for a placed order.
func SendOrderConfirmation(emailTo, name, orderNumber string, totalAmount float64) error {
	emailData := OrderEmailData{
		Name:        name,
		OrderNumber: orderNumber,
		TotalAmount: totalAmount,
		Message:     "Thank you for your order! We are preparing it for delivery.",
	}

	templatePath := filepath.Join("templates", "order_confirmation.html")
	return SendEmail(emailTo, "Order Confirmation", emailData, templatePath)
}
