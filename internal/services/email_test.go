package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventdesk/internal/domain"
)

type fakeMailer struct {
	to, subject, html, text string
	err                     error
}

func (m *fakeMailer) Send(_ context.Context, to, subject, html, text string) error {
	m.to, m.subject, m.html, m.text = to, subject, html, text
	return m.err
}

type fakeRenderer struct {
	name string
	err  error
}

func (r *fakeRenderer) Render(name string, _ any) (string, string, string, error) {
	r.name = name
	if r.err != nil {
		return "", "", "", r.err
	}
	return "subject", "<p>html</p>", "text", nil
}

func TestEmailService_SendOrphanAlert(t *testing.T) {
	mailer := &fakeMailer{}
	renderer := &fakeRenderer{}
	svc := NewEmailService(mailer, renderer, discardLogger())

	err := svc.SendOrphanAlert(context.Background(), "oncall@example.com", &domain.OrphanAlertEmailData{UserID: 1})
	require.NoError(t, err)
	assert.Equal(t, "orphan_alert", renderer.name)
	assert.Equal(t, "oncall@example.com", mailer.to)
	assert.Equal(t, "subject", mailer.subject)
	assert.Equal(t, "text", mailer.text)
}

func TestEmailService_SendOrphanAlertErrors(t *testing.T) {
	tests := []struct {
		name     string
		data     *domain.OrphanAlertEmailData
		mailer   *fakeMailer
		renderer *fakeRenderer
		wantErr  string
	}{
		{"nil data", nil, &fakeMailer{}, &fakeRenderer{}, "orphan alert data is nil"},
		{"render failure", &domain.OrphanAlertEmailData{}, &fakeMailer{}, &fakeRenderer{err: errors.New("bad template")}, "failed to render"},
		{"send failure", &domain.OrphanAlertEmailData{}, &fakeMailer{err: errors.New("ses down")}, &fakeRenderer{}, "failed to send"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewEmailService(tt.mailer, tt.renderer, discardLogger()).SendOrphanAlert(context.Background(), "a@example.com", tt.data)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
