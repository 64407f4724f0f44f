package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"eventdesk/internal/domain"
)

// Result is a successful pipeline outcome.
type Result struct {
	Event    domain.Event      `json:"event"`
	Navigate domain.Navigation `json:"navigate,omitempty"`
}

// SubmissionPipeline turns drafts into remote writes: categories are
// resolved, then the author is created, then the event is written. There is
// no rollback: a user created before a failed event write is left behind and
// reported to the orphan recorder.
type SubmissionPipeline struct {
	users          domain.UserGateway
	events         domain.EventGateway
	resolver       *CategoryResolver
	orphans        domain.OrphanRecorder
	logger         *slog.Logger
	contextTimeout time.Duration
	now            func() time.Time
}

// NewSubmissionPipeline builds a pipeline. orphans may be nil.
func NewSubmissionPipeline(users domain.UserGateway, events domain.EventGateway, resolver *CategoryResolver, orphans domain.OrphanRecorder, logger *slog.Logger, timeout time.Duration) *SubmissionPipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &SubmissionPipeline{
		users:          users,
		events:         events,
		resolver:       resolver,
		orphans:        orphans,
		logger:         logger,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

func (p *SubmissionPipeline) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.contextTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, p.contextTimeout)
}

// Create submits an authoring draft. On success the draft is reset and the
// caller is told to navigate to the listing; on any failure the draft keeps
// its fields. A second Create on the same draft while one is in flight
// returns domain.ErrSubmissionInProgress without side effects.
func (p *SubmissionPipeline) Create(ctx context.Context, draft *Draft, snapshot *CategorySnapshot, notifier domain.Notifier) (Result, error) {
	notifier = notifierOrDiscard(notifier)
	if !draft.beginSubmit() {
		return Result{}, domain.ErrSubmissionInProgress
	}
	defer draft.endSubmit()

	form := draft.Form()
	if err := form.validate(); err != nil {
		return Result{}, err
	}

	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	resolved, err := p.resolver.Resolve(ctx, snapshot, form.Categories.Stubs())
	if err != nil {
		return Result{}, p.fail(ctx, notifier, domain.StageResolveCategories, err, false)
	}
	categoryIDs := resolvedIDs(resolved)
	p.logger.DebugContext(ctx, "categories resolved", "ids", categoryIDs)

	user, err := p.users.CreateUser(ctx, *domain.NewUser(form.Author.Name, form.Author.UserImage))
	if err != nil {
		return Result{}, p.fail(ctx, notifier, domain.StageCreateUser, err, false)
	}
	p.logger.DebugContext(ctx, "user created", "user_id", user.ID)

	event, err := p.events.CreateEvent(ctx, domain.Event{
		CreatedBy:   user.ID,
		Title:       form.Event.Title,
		Description: form.Event.Description,
		Image:       form.Event.Image,
		Location:    form.Event.Location,
		StartTime:   form.Event.StartTime,
		EndTime:     form.Event.EndTime,
		CategoryIDs: categoryIDs,
	})
	if err != nil {
		stageErr := p.fail(ctx, notifier, domain.StageCreateOrUpdateEvent, err, false)
		p.recordOrphan(ctx, user, form.Event.Title, categoryIDs, err)
		return Result{}, stageErr
	}

	draft.Reset()
	notifier.Notify(ctx, successNotification("Event created successfully!"))
	p.logger.InfoContext(ctx, "event created", "event_id", event.ID, "user_id", user.ID)
	return Result{Event: event, Navigate: domain.NavigateListing}, nil
}

// Update submits an edit draft against the loaded event. createdBy and the
// fields the edit form does not expose are kept from loaded. The returned
// event is the server's response. If ctx is cancelled by the caller the bare
// context error is returned and no notification is raised.
func (p *SubmissionPipeline) Update(ctx context.Context, loaded domain.Event, edit *EditDraft, snapshot *CategorySnapshot, notifier domain.Notifier) (domain.Event, error) {
	if !edit.beginSubmit() {
		return domain.Event{}, domain.ErrSubmissionInProgress
	}
	defer edit.endSubmit()
	return p.update(ctx, loaded, edit, snapshot, notifier)
}

// update runs the update flow for an edit draft the caller already claimed.
func (p *SubmissionPipeline) update(ctx context.Context, loaded domain.Event, edit *EditDraft, snapshot *CategorySnapshot, notifier domain.Notifier) (domain.Event, error) {
	notifier = notifierOrDiscard(notifier)
	form := edit.Form()
	if err := form.validate(); err != nil {
		return domain.Event{}, err
	}

	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	resolved, err := p.resolver.Resolve(ctx, snapshot, form.Categories.Stubs())
	if err != nil {
		if callerCancelled(ctx) {
			return domain.Event{}, p.cancelled(ctx, "update", loaded.ID)
		}
		return domain.Event{}, p.fail(ctx, notifier, domain.StageResolveCategories, err, true)
	}

	updated, err := p.events.UpdateEvent(ctx, form.mergeInto(loaded, resolvedIDs(resolved)))
	if err != nil {
		if callerCancelled(ctx) {
			return domain.Event{}, p.cancelled(ctx, "update", loaded.ID)
		}
		return domain.Event{}, p.fail(ctx, notifier, domain.StageCreateOrUpdateEvent, err, true)
	}

	notifier.Notify(ctx, successNotification("Event updated."))
	p.logger.InfoContext(ctx, "event updated", "event_id", updated.ID)
	return updated, nil
}

// Delete removes the event remotely. Cancellation by the caller is handled
// as in Update.
func (p *SubmissionPipeline) Delete(ctx context.Context, eventID int64, notifier domain.Notifier) error {
	notifier = notifierOrDiscard(notifier)
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	if err := p.events.DeleteEvent(ctx, eventID); err != nil {
		if callerCancelled(ctx) {
			return p.cancelled(ctx, "delete", eventID)
		}
		stageErr := p.fail(ctx, discardNotifier{}, domain.StageDeleteEvent, err, false)
		notifier.Notify(ctx, domain.Notification{
			Title:       "Error.",
			Description: failureDescription(domain.StageDeleteEvent, err, false),
			Status:      domain.StatusError,
			DurationMS:  deleteToastDurationMS,
		})
		return stageErr
	}
	notifier.Notify(ctx, domain.Notification{
		Title:       "Event deleted.",
		Description: "The event has been deleted successfully.",
		Status:      domain.StatusSuccess,
		DurationMS:  deleteToastDurationMS,
	})
	p.logger.InfoContext(ctx, "event deleted", "event_id", eventID)
	return nil
}

func (p *SubmissionPipeline) fail(ctx context.Context, notifier domain.Notifier, stage domain.Stage, err error, update bool) error {
	p.logger.ErrorContext(ctx, "submission failed", "stage", stage, "err", err)
	notifier.Notify(ctx, errorNotification(failureDescription(stage, err, update)))
	return &domain.StageError{Stage: stage, Err: err}
}

// callerCancelled reports whether ctx was cancelled rather than timed out.
func callerCancelled(ctx context.Context) bool {
	return errors.Is(ctx.Err(), context.Canceled)
}

func (p *SubmissionPipeline) cancelled(ctx context.Context, op string, eventID int64) error {
	p.logger.InfoContext(ctx, op+" cancelled", "event_id", eventID)
	return ctx.Err()
}

func (p *SubmissionPipeline) recordOrphan(ctx context.Context, user domain.User, title string, categoryIDs []int64, cause error) {
	p.logger.WarnContext(ctx, "user left without an event", "user_id", user.ID, "title", title)
	if p.orphans == nil {
		return
	}
	// The submission ctx may be the reason the event write failed.
	p.orphans.RecordOrphan(context.WithoutCancel(ctx), &domain.OrphanUser{
		UserID:      user.ID,
		UserName:    user.Name,
		EventTitle:  title,
		Stage:       domain.StageCreateOrUpdateEvent,
		Cause:       cause.Error(),
		CategoryIDs: categoryIDs,
		RecordedAt:  p.now(),
	})
}

func resolvedIDs(resolved []domain.Resolved) []int64 {
	ids := make([]int64, 0, len(resolved))
	seen := make(map[int64]struct{}, len(resolved))
	for _, r := range resolved {
		if _, ok := seen[r.ID]; ok {
			continue
		}
		seen[r.ID] = struct{}{}
		ids = append(ids, r.ID)
	}
	return ids
}
