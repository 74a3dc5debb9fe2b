package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// OrderConfirmationEmailData holds data for the purchase confirmation email.
type OrderConfirmationEmailData struct {
	Email        string
	CustomerName string
	OrderID      int64
	ShowName     string
	ShowDate     string
	ShowPrice    float64
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendOrderConfirmation(ctx context.Context, data *OrderConfirmationEmailData) error
}
