package services

import (
	"context"
	"log/slog"
	"sync"

	"eventdesk/internal/domain"
)

// ViewMode is the main mode of an event view.
type ViewMode string

const (
	ModeViewing ViewMode = "viewing"
	ModeEditing ViewMode = "editing"
)

// ViewState is a snapshot of an EventView's state machine. The delete
// confirmation is an overlay on ModeViewing.
type ViewState struct {
	Mode             ViewMode `json:"mode"`
	ConfirmingDelete bool     `json:"confirmingDelete"`
	Saving           bool     `json:"saving"`
	Deleting         bool     `json:"deleting"`
	Closed           bool     `json:"closed"`
}

// EventView governs a persisted event's page: read-only display, in-place
// editing and delete confirmation.
type EventView struct {
	mu               sync.Mutex
	event            domain.Event
	author           domain.User
	snapshot         *CategorySnapshot
	mode             ViewMode
	confirmingDelete bool
	edit             *EditDraft
	editGen          uint64
	cancelSave       context.CancelFunc
	cancelDelete     context.CancelFunc
	closed           bool

	pipeline *SubmissionPipeline
	listing  *Listing
	notifier domain.Notifier
	logger   *slog.Logger
}

// NewEventView opens a view in ModeViewing. listing and notifier may be nil.
func NewEventView(event domain.Event, author domain.User, snapshot *CategorySnapshot, pipeline *SubmissionPipeline, listing *Listing, notifier domain.Notifier, logger *slog.Logger) *EventView {
	if logger == nil {
		logger = slog.Default()
	}
	return &EventView{
		event:    event.Clone(),
		author:   author,
		snapshot: snapshot,
		mode:     ModeViewing,
		pipeline: pipeline,
		listing:  listing,
		notifier: notifierOrDiscard(notifier),
		logger:   logger.With("event_id", event.ID),
	}
}

// Event returns a copy of the displayed event.
func (v *EventView) Event() domain.Event {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.event.Clone()
}

func (v *EventView) Author() domain.User {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.author
}

// Categories returns the displayed event's categories in id order of the event.
func (v *EventView) Categories() []domain.Category {
	ev := v.Event()
	out := make([]domain.Category, 0, len(ev.CategoryIDs))
	for _, id := range ev.CategoryIDs {
		if c, ok := v.snapshot.ByID(id); ok {
			out = append(out, c)
		}
	}
	return out
}

func (v *EventView) Snapshot() *CategorySnapshot { return v.snapshot }

func (v *EventView) State() ViewState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return ViewState{
		Mode:             v.mode,
		ConfirmingDelete: v.confirmingDelete,
		Saving:           v.edit != nil && v.edit.Submitting(),
		Deleting:         v.cancelDelete != nil,
		Closed:           v.closed,
	}
}

// EditDraft returns the active edit draft, or nil outside ModeEditing.
func (v *EventView) EditDraft() *EditDraft {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.edit
}

// BeginEdit moves Viewing -> Editing with a deep copy of the displayed event.
func (v *EventView) BeginEdit() (*EditDraft, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return nil, domain.ErrViewClosed
	}
	if v.mode != ModeViewing || v.confirmingDelete {
		return nil, domain.ErrInvalidTransition
	}
	v.edit = newEditDraft(v.event, v.snapshot)
	v.editGen++
	v.mode = ModeEditing
	v.logger.Debug("edit started")
	return v.edit, nil
}

// CancelEdit discards the edit draft and returns to Viewing without a
// network call. An in-flight save is cancelled.
func (v *EventView) CancelEdit() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return domain.ErrViewClosed
	}
	if v.mode != ModeEditing {
		return domain.ErrInvalidTransition
	}
	if v.cancelSave != nil {
		v.cancelSave()
		v.cancelSave = nil
	}
	v.edit = nil
	v.editGen++
	v.mode = ModeViewing
	v.logger.Debug("edit cancelled")
	return nil
}

// Save runs the update flow. On success the displayed event becomes the
// server's response and the view returns to Viewing; on failure the view
// stays in Editing with the draft intact. If the edit was cancelled while the
// update was in flight, the context error is returned without a notification;
// should the update still have succeeded, the server's response is displayed.
func (v *EventView) Save(ctx context.Context) (domain.Event, error) {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return domain.Event{}, domain.ErrViewClosed
	}
	if v.mode != ModeEditing {
		v.mu.Unlock()
		return domain.Event{}, domain.ErrInvalidTransition
	}
	edit := v.edit
	if !edit.beginSubmit() {
		v.mu.Unlock()
		return domain.Event{}, domain.ErrSubmissionInProgress
	}
	gen := v.editGen
	loaded := v.event.Clone()
	saveCtx, cancel := context.WithCancel(ctx)
	v.cancelSave = cancel
	v.mu.Unlock()

	updated, err := v.pipeline.update(saveCtx, loaded, edit, v.snapshot, v.notifier)
	edit.endSubmit()
	cancel()

	v.mu.Lock()
	defer v.mu.Unlock()
	current := v.editGen == gen
	if current {
		v.cancelSave = nil
	}
	if err != nil {
		return domain.Event{}, err
	}
	v.event = updated.Clone()
	if v.listing != nil {
		v.listing.Replace(updated)
	}
	if current {
		v.edit = nil
		v.editGen++
		v.mode = ModeViewing
	}
	return updated.Clone(), nil
}

// RequestDelete opens the delete confirmation over Viewing.
func (v *EventView) RequestDelete() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return domain.ErrViewClosed
	}
	if v.mode != ModeViewing {
		return domain.ErrInvalidTransition
	}
	v.confirmingDelete = true
	return nil
}

// CancelDelete closes the confirmation without a network call. An in-flight
// delete is cancelled.
func (v *EventView) CancelDelete() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return domain.ErrViewClosed
	}
	if !v.confirmingDelete {
		return domain.ErrInvalidTransition
	}
	if v.cancelDelete != nil {
		v.cancelDelete()
	}
	v.confirmingDelete = false
	return nil
}

// ConfirmDelete deletes the event. On success the view closes, the event is
// dropped from the listing and the caller is told to navigate to it. On
// failure the view returns to Viewing with the event unchanged.
func (v *EventView) ConfirmDelete(ctx context.Context) (Result, error) {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return Result{}, domain.ErrViewClosed
	}
	if !v.confirmingDelete {
		v.mu.Unlock()
		return Result{}, domain.ErrInvalidTransition
	}
	if v.cancelDelete != nil {
		v.mu.Unlock()
		return Result{}, domain.ErrSubmissionInProgress
	}
	id := v.event.ID
	delCtx, cancel := context.WithCancel(ctx)
	v.cancelDelete = cancel
	v.mu.Unlock()

	err := v.pipeline.Delete(delCtx, id, v.notifier)
	cancel()

	v.mu.Lock()
	defer v.mu.Unlock()
	v.cancelDelete = nil
	v.confirmingDelete = false
	if err != nil {
		return Result{}, err
	}
	v.closed = true
	v.event = domain.Event{}
	if v.listing != nil {
		v.listing.Remove(id)
	}
	v.logger.DebugContext(ctx, "view closed after delete")
	return Result{Navigate: domain.NavigateListing}, nil
}

// Close discards the view and cancels anything in flight.
func (v *EventView) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.cancelSave != nil {
		v.cancelSave()
		v.cancelSave = nil
	}
	if v.cancelDelete != nil {
		v.cancelDelete()
	}
	v.edit = nil
	v.closed = true
}
