package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"eventdesk/internal/domain"
)

const (
	toastDurationMS       = 5000
	deleteToastDurationMS = 3000
)

func successNotification(description string) domain.Notification {
	return domain.Notification{Title: "Success", Description: description, Status: domain.StatusSuccess, DurationMS: toastDurationMS}
}

func errorNotification(description string) domain.Notification {
	return domain.Notification{Title: "Error", Description: description, Status: domain.StatusError, DurationMS: toastDurationMS}
}

// failureDescription is the user-facing text for a failed stage.
func failureDescription(stage domain.Stage, err error, update bool) string {
	switch stage {
	case domain.StageResolveCategories:
		var cf *domain.CategoryCreationFailedError
		if errors.As(err, &cf) {
			return fmt.Sprintf("Failed to create category %q.", cf.Name)
		}
		return "Failed to create categories."
	case domain.StageCreateUser:
		return "Failed to create user."
	case domain.StageCreateOrUpdateEvent:
		if update {
			return "Failed to update event."
		}
		return "Failed to create event."
	case domain.StageDeleteEvent:
		return "There was an error deleting the event."
	}
	return "Something went wrong."
}

// Inbox is a Notifier that keeps notifications until they are drained.
type Inbox struct {
	mu    sync.Mutex
	items []domain.Notification
}

func NewInbox() *Inbox { return &Inbox{} }

func (i *Inbox) Notify(_ context.Context, n domain.Notification) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.items = append(i.items, n)
}

// Drain returns and forgets every pending notification.
func (i *Inbox) Drain() []domain.Notification {
	i.mu.Lock()
	defer i.mu.Unlock()
	out := i.items
	i.items = nil
	return out
}

type discardNotifier struct{}

func (discardNotifier) Notify(context.Context, domain.Notification) {}

func notifierOrDiscard(n domain.Notifier) domain.Notifier {
	if n == nil {
		return discardNotifier{}
	}
	return n
}
