package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventdesk/internal/domain"
)

type fakeOrphanRepo struct {
	created []*domain.OrphanUser
	err     error
}

func (f *fakeOrphanRepo) Create(_ context.Context, o *domain.OrphanUser) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, o)
	return nil
}

func (f *fakeOrphanRepo) List(_ context.Context, params domain.PaginationParams) ([]*domain.OrphanUser, int, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	return f.created, len(f.created), nil
}

type fakeEmailService struct {
	to   string
	data *domain.OrphanAlertEmailData
	err  error
}

func (f *fakeEmailService) SendOrphanAlert(_ context.Context, to string, data *domain.OrphanAlertEmailData) error {
	f.to, f.data = to, data
	return f.err
}

func TestOrphanReporter_RecordOrphan(t *testing.T) {
	repo := &fakeOrphanRepo{}
	email := &fakeEmailService{}
	r := NewOrphanReporter(repo, email, "oncall@example.com", discardLogger())

	r.RecordOrphan(context.Background(), &domain.OrphanUser{
		UserID:     42,
		UserName:   "Ana",
		EventTitle: "Jazz Night",
		Stage:      domain.StageCreateOrUpdateEvent,
		Cause:      "status 500",
		RecordedAt: time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC),
	})

	require.Len(t, repo.created, 1)
	assert.NotEmpty(t, repo.created[0].ID)
	assert.Equal(t, "oncall@example.com", email.to)
	require.NotNil(t, email.data)
	assert.Equal(t, int64(42), email.data.UserID)
	assert.Equal(t, "create-or-update-event", email.data.Stage)
	assert.Equal(t, "2026-05-01T10:00:00Z", email.data.RecordedAt)

	items, total, err := r.List(context.Background(), domain.PaginationParams{Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, items, 1)
}

func TestOrphanReporter_FailuresAreSwallowed(t *testing.T) {
	repo := &fakeOrphanRepo{err: errors.New("db down")}
	email := &fakeEmailService{err: errors.New("ses down")}
	r := NewOrphanReporter(repo, email, "oncall@example.com", discardLogger())

	assert.NotPanics(t, func() {
		r.RecordOrphan(context.Background(), &domain.OrphanUser{UserID: 1})
	})
	assert.NotNil(t, email.data)
}

func TestOrphanReporter_WithoutLedgerOrAlerts(t *testing.T) {
	email := &fakeEmailService{}
	r := NewOrphanReporter(nil, email, "", discardLogger())
	o := &domain.OrphanUser{UserID: 1}

	r.RecordOrphan(context.Background(), o)
	assert.Nil(t, email.data)
	assert.False(t, o.RecordedAt.IsZero())

	items, total, err := r.List(context.Background(), domain.PaginationParams{Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, items)
}
