package domain

import "context"

// NotificationStatus is the severity shown to the user.
type NotificationStatus string

const (
	StatusSuccess NotificationStatus = "success"
	StatusError   NotificationStatus = "error"
)

// Notification is a transient, user-visible message.
// swagger:model Notification
type Notification struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Status      NotificationStatus `json:"status"`
	DurationMS  int                `json:"duration"`
}

// Notifier receives notifications emitted by the pipeline and the view.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// Navigation tells the caller where to go after an operation.
type Navigation string

const (
	NavigateNone    Navigation = ""
	NavigateListing Navigation = "listing"
)
