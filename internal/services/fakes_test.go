package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"

	"eventdesk/internal/domain"
)

// fakeRemote is an in-memory users/categories/events API. errs maps an
// operation name (e.g. "CreateUser", "CreateCategory:music") to the error it
// returns; calls records every operation in order.
type fakeRemote struct {
	mu         sync.Mutex
	users      []domain.User
	categories []domain.Category
	events     []domain.Event
	nextID     int64
	errs       map[string]error
	calls      []string

	// onList runs inside ListCategories, before the list is returned.
	onList func(r *fakeRemote)
	// block, when set, is waited on by UpdateEvent and DeleteEvent.
	block chan struct{}
}

var (
	_ domain.UserGateway     = (*fakeRemote)(nil)
	_ domain.CategoryGateway = (*fakeRemote)(nil)
	_ domain.EventGateway    = (*fakeRemote)(nil)
)

func newFakeRemote() *fakeRemote {
	return &fakeRemote{nextID: 100, errs: map[string]error{}}
}

func (f *fakeRemote) record(op string, keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, op)
	for _, k := range append([]string{op}, keys...) {
		if err, ok := f.errs[k]; ok {
			return err
		}
	}
	return nil
}

func (f *fakeRemote) count(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == op {
			n++
		}
	}
	return n
}

func (f *fakeRemote) callLog() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.calls)
}

func (f *fakeRemote) id() int64 {
	f.nextID++
	return f.nextID
}

func (f *fakeRemote) ListUsers(context.Context) ([]domain.User, error) {
	if err := f.record("ListUsers"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.users), nil
}

func (f *fakeRemote) CreateUser(_ context.Context, u domain.User) (domain.User, error) {
	if err := f.record("CreateUser"); err != nil {
		return domain.User{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	u.ID = f.id()
	f.users = append(f.users, u)
	return u, nil
}

func (f *fakeRemote) ListCategories(context.Context) ([]domain.Category, error) {
	if err := f.record("ListCategories"); err != nil {
		return nil, err
	}
	if f.onList != nil {
		f.onList(f)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.categories), nil
}

func (f *fakeRemote) CreateCategory(_ context.Context, name string) (domain.Category, error) {
	if err := f.record("CreateCategory", "CreateCategory:"+domain.FoldName(name)); err != nil {
		return domain.Category{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	c := domain.Category{ID: f.id(), Name: name}
	f.categories = append(f.categories, c)
	return c, nil
}

func (f *fakeRemote) addCategory(name string) domain.Category {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := domain.Category{ID: f.id(), Name: name}
	f.categories = append(f.categories, c)
	return c
}

func (f *fakeRemote) createdCategoryNames() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var names []string
	for _, c := range f.categories {
		names = append(names, c.Name)
	}
	return names
}

func (f *fakeRemote) ListEvents(context.Context) ([]domain.Event, error) {
	if err := f.record("ListEvents"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Event, 0, len(f.events))
	for _, e := range f.events {
		out = append(out, e.Clone())
	}
	return out, nil
}

func (f *fakeRemote) GetEvent(_ context.Context, id int64) (domain.Event, error) {
	if err := f.record("GetEvent"); err != nil {
		return domain.Event{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.events {
		if e.ID == id {
			return e.Clone(), nil
		}
	}
	return domain.Event{}, fmt.Errorf("GET /events/%d: %w", id, domain.ErrNotFound)
}

func (f *fakeRemote) CreateEvent(_ context.Context, e domain.Event) (domain.Event, error) {
	if err := f.record("CreateEvent"); err != nil {
		return domain.Event{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	e.ID = f.id()
	f.events = append(f.events, e.Clone())
	return e, nil
}

func (f *fakeRemote) UpdateEvent(ctx context.Context, e domain.Event) (domain.Event, error) {
	if err := f.wait(ctx); err != nil {
		return domain.Event{}, err
	}
	if err := f.record("UpdateEvent"); err != nil {
		return domain.Event{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.events {
		if f.events[i].ID == e.ID {
			f.events[i] = e.Clone()
			return e, nil
		}
	}
	return domain.Event{}, domain.ErrNotFound
}

func (f *fakeRemote) DeleteEvent(ctx context.Context, id int64) error {
	if err := f.wait(ctx); err != nil {
		return err
	}
	if err := f.record("DeleteEvent"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.events {
		if f.events[i].ID == id {
			f.events = slices.Delete(f.events, i, i+1)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeRemote) wait(ctx context.Context) error {
	if f.block == nil {
		return nil
	}
	select {
	case <-f.block:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type fakeOrphans struct {
	mu      sync.Mutex
	orphans []*domain.OrphanUser
	ctxErrs []error
}

func (f *fakeOrphans) RecordOrphan(ctx context.Context, o *domain.OrphanUser) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.orphans = append(f.orphans, o)
	f.ctxErrs = append(f.ctxErrs, ctx.Err())
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustTime(s string) domain.Timestamp {
	ts, err := domain.ParseTimestamp(s)
	if err != nil {
		panic(err)
	}
	return ts
}

func newTestPipeline(remote *fakeRemote, orphans domain.OrphanRecorder) *SubmissionPipeline {
	logger := discardLogger()
	resolver := NewCategoryResolver(remote, logger)
	return NewSubmissionPipeline(remote, remote, resolver, orphans, logger, 0)
}

// fillDraft sets every required field of d.
func fillDraft(d *Draft) {
	d.SetTitle("Jazz Night")
	d.SetDescription("Live quartet")
	d.SetImage("https://img.example.com/jazz.png")
	d.SetLocation("Blue Room")
	d.SetStartTime(mustTime("2026-05-01T20:00"))
	d.SetEndTime(mustTime("2026-05-01T23:00"))
	d.SetAuthorName("Ana")
	d.SetAuthorImage("https://img.example.com/ana.png")
}
