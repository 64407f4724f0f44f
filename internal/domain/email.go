package domain

import "context"

// Mailer sends a single message.
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// EmailService sends operator notifications.
type EmailService interface {
	SendOrphanAlert(ctx context.Context, to string, data *OrphanAlertEmailData) error
}

// OrphanAlertEmailData holds data for the orphan user alert.
type OrphanAlertEmailData struct {
	UserID     int64
	UserName   string
	EventTitle string
	Stage      string
	Cause      string
	RecordedAt string
}
