package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"eventdesk/internal/domain"
)

// OrphanReporter keeps track of users left behind by failed event writes. It
// writes them to the ledger and alerts an operator, when either is
// configured. Failures are logged and never surface to the submitter.
type OrphanReporter struct {
	repo    domain.OrphanRepository
	email   domain.EmailService
	alertTo string
	logger  *slog.Logger
}

var _ domain.OrphanRecorder = (*OrphanReporter)(nil)

// NewOrphanReporter builds a reporter. repo and email may be nil.
func NewOrphanReporter(repo domain.OrphanRepository, email domain.EmailService, alertTo string, logger *slog.Logger) *OrphanReporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &OrphanReporter{repo: repo, email: email, alertTo: alertTo, logger: logger.With("component", "orphans")}
}

func (r *OrphanReporter) RecordOrphan(ctx context.Context, o *domain.OrphanUser) {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.RecordedAt.IsZero() {
		o.RecordedAt = time.Now()
	}
	r.logger.WarnContext(ctx, "orphan user recorded", "orphan_id", o.ID, "user_id", o.UserID, "stage", o.Stage, "cause", o.Cause)

	if r.repo != nil {
		if err := r.repo.Create(ctx, o); err != nil {
			r.logger.ErrorContext(ctx, "failed to store orphan user", "orphan_id", o.ID, "err", err)
		}
	}
	if r.email != nil && r.alertTo != "" {
		err := r.email.SendOrphanAlert(ctx, r.alertTo, &domain.OrphanAlertEmailData{
			UserID:     o.UserID,
			UserName:   o.UserName,
			EventTitle: o.EventTitle,
			Stage:      string(o.Stage),
			Cause:      o.Cause,
			RecordedAt: o.RecordedAt.UTC().Format(time.RFC3339),
		})
		if err != nil {
			r.logger.ErrorContext(ctx, "failed to send orphan alert", "orphan_id", o.ID, "err", err)
		}
	}
}

// List returns a page of the ledger and the ledger's total size. Without a
// ledger it returns an empty page.
func (r *OrphanReporter) List(ctx context.Context, params domain.PaginationParams) ([]*domain.OrphanUser, int, error) {
	if r.repo == nil {
		return []*domain.OrphanUser{}, 0, nil
	}
	return r.repo.List(ctx, params)
}
