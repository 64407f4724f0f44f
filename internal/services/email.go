package services

import (
	"context"
	"fmt"
	"log/slog"

	"eventdesk/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.EmailService {
	if logger == nil {
		logger = slog.Default()
	}
	return &emailService{mailer: mailer, renderer: renderer, logger: logger}
}

// SendOrphanAlert sends the "orphan_alert" template to the operator address.
func (s *emailService) SendOrphanAlert(ctx context.Context, to string, data *domain.OrphanAlertEmailData) error {
	if data == nil {
		return fmt.Errorf("orphan alert data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("orphan_alert", data)
	if err != nil {
		return fmt.Errorf("failed to render orphan_alert template: %w", err)
	}
	if err := s.mailer.Send(ctx, to, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send orphan alert: %w", err)
	}
	s.logger.InfoContext(ctx, "orphan alert sent", "to", to, "user_id", data.UserID)
	return nil
}
