package controllers

import (
	"context"

	"eventdesk/internal/domain"
	"eventdesk/internal/services"
)

// EventLister loads the events page.
type EventLister interface {
	LoadListing(ctx context.Context) (*services.Listing, error)
}

// AuthoringOpener starts add-event sessions.
type AuthoringOpener interface {
	NewAuthoring(ctx context.Context, listing *services.Listing, notifier domain.Notifier) *services.Authoring
}

// EventOpener loads event pages.
type EventOpener interface {
	OpenEvent(ctx context.Context, eventID int64, listing *services.Listing, notifier domain.Notifier) (*services.EventView, error)
}

// AuthoringSession is an open add-event view.
type AuthoringSession interface {
	Draft() *services.Draft
	Snapshot() *services.CategorySnapshot
	AddCategory(name string) error
	Submit(ctx context.Context) (services.Result, error)
}

// EventPage is an open event page.
type EventPage interface {
	Event() domain.Event
	Author() domain.User
	Categories() []domain.Category
	Snapshot() *services.CategorySnapshot
	State() services.ViewState
	EditDraft() *services.EditDraft
	BeginEdit() (*services.EditDraft, error)
	CancelEdit() error
	Save(ctx context.Context) (domain.Event, error)
	RequestDelete() error
	CancelDelete() error
	ConfirmDelete(ctx context.Context) (services.Result, error)
	Close()
}

var (
	_ EventLister      = (*services.EventDesk)(nil)
	_ AuthoringOpener  = (*services.EventDesk)(nil)
	_ EventOpener      = (*services.EventDesk)(nil)
	_ AuthoringSession = (*services.Authoring)(nil)
	_ EventPage        = (*services.EventView)(nil)
)
