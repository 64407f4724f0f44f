package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"eventdesk/internal/domain"
)

// EventDesk opens the views a presentation layer drives: the listing, the
// authoring form and the page of a persisted event.
type EventDesk struct {
	users          domain.UserGateway
	categories     domain.CategoryGateway
	events         domain.EventGateway
	pipeline       *SubmissionPipeline
	logger         *slog.Logger
	contextTimeout time.Duration
}

func NewEventDesk(users domain.UserGateway, categories domain.CategoryGateway, events domain.EventGateway, pipeline *SubmissionPipeline, logger *slog.Logger, timeout time.Duration) *EventDesk {
	if logger == nil {
		logger = slog.Default()
	}
	return &EventDesk{
		users:          users,
		categories:     categories,
		events:         events,
		pipeline:       pipeline,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (d *EventDesk) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if d.contextTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d.contextTimeout)
}

// LoadListing fetches events and categories for the events page.
func (d *EventDesk) LoadListing(ctx context.Context) (*Listing, error) {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()

	events, err := d.events.ListEvents(ctx)
	if err != nil {
		return nil, &domain.LoadError{Resource: "events", Err: err}
	}
	categories, err := d.categories.ListCategories(ctx)
	if err != nil {
		return nil, &domain.LoadError{Resource: "categories", Err: err}
	}
	return NewListing(events, categories), nil
}

// Authoring is the add-event view: a draft plus the category snapshot it
// resolves against.
type Authoring struct {
	draft    *Draft
	snapshot *CategorySnapshot
	listing  *Listing
	pipeline *SubmissionPipeline
	notifier domain.Notifier
}

// NewAuthoring opens the add-event view. A failed category fetch is reported
// to notifier and leaves the snapshot empty. When listing is set, a created
// event is added to it. listing and notifier may be nil.
func (d *EventDesk) NewAuthoring(ctx context.Context, listing *Listing, notifier domain.Notifier) *Authoring {
	notifier = notifierOrDiscard(notifier)
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()

	categories, err := d.categories.ListCategories(ctx)
	if err != nil {
		d.logger.ErrorContext(ctx, "failed to fetch categories", "err", err)
		notifier.Notify(ctx, errorNotification("Failed to fetch categories."))
		categories = nil
	}
	return &Authoring{
		draft:    NewDraft(),
		snapshot: NewCategorySnapshot(categories),
		listing:  listing,
		pipeline: d.pipeline,
		notifier: notifier,
	}
}

func (a *Authoring) Draft() *Draft { return a.draft }

func (a *Authoring) Snapshot() *CategorySnapshot { return a.snapshot }

func (a *Authoring) AddCategory(name string) error {
	return a.draft.AddCategory(name, a.snapshot)
}

// Submit runs the create flow for the draft.
func (a *Authoring) Submit(ctx context.Context) (Result, error) {
	res, err := a.pipeline.Create(ctx, a.draft, a.snapshot, a.notifier)
	if err != nil {
		return Result{}, err
	}
	if a.listing != nil {
		a.listing.Add(res.Event)
	}
	return res, nil
}

// OpenEvent loads an event page. The event, every category it references and
// its author must exist; otherwise a *domain.LoadError is returned and no
// view is opened. listing and notifier may be nil.
func (d *EventDesk) OpenEvent(ctx context.Context, eventID int64, listing *Listing, notifier domain.Notifier) (*EventView, error) {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()

	event, err := d.events.GetEvent(ctx, eventID)
	if err != nil {
		return nil, &domain.LoadError{Resource: "event", ID: eventID, Err: err}
	}
	users, err := d.users.ListUsers(ctx)
	if err != nil {
		return nil, &domain.LoadError{Resource: "users", Err: err}
	}
	categories, err := d.categories.ListCategories(ctx)
	if err != nil {
		return nil, &domain.LoadError{Resource: "categories", Err: err}
	}

	for _, id := range event.CategoryIDs {
		if _, ok := domain.FindCategory(categories, id); !ok {
			return nil, &domain.LoadError{Resource: "category", ID: id, Err: domain.ErrNotFound}
		}
	}
	author, ok := domain.FindUser(users, event.CreatedBy)
	if !ok {
		return nil, &domain.LoadError{Resource: "user", ID: event.CreatedBy, Err: domain.ErrNotFound}
	}

	return NewEventView(event, author, NewCategorySnapshot(categories), d.pipeline, listing, notifier, d.logger), nil
}

// IsNotFound reports whether err is a load or remote not-found.
func IsNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
