package services

import (
	"strconv"
	"sync"

	"eventdesk/internal/domain"
)

// EditForm is a point-in-time copy of an EditDraft.
type EditForm struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Image       string           `json:"image"`
	StartTime   domain.Timestamp `json:"startTime"`
	EndTime     domain.Timestamp `json:"endTime"`
	Categories  domain.StubSet   `json:"categories"`
	Submitting  bool             `json:"submitting"`
}

// EditDraft is the mutable copy of a displayed event while it is edited.
// Changes never reach the displayed event until an update succeeds.
type EditDraft struct {
	mu         sync.Mutex
	event      domain.Event
	categories domain.StubSet
	submitting bool
}

func newEditDraft(event domain.Event, snapshot *CategorySnapshot) *EditDraft {
	d := &EditDraft{event: event.Clone()}
	for _, id := range event.CategoryIDs {
		if c, ok := snapshot.ByID(id); ok {
			d.categories.Add(domain.ResolvedFrom(c))
			continue
		}
		d.categories.Add(domain.Resolved{ID: id, Name: strconv.FormatInt(id, 10)})
	}
	return d
}

func (d *EditDraft) SetTitle(v string)       { d.set(func() { d.event.Title = v }) }
func (d *EditDraft) SetDescription(v string) { d.set(func() { d.event.Description = v }) }
func (d *EditDraft) SetImage(v string)       { d.set(func() { d.event.Image = v }) }
func (d *EditDraft) SetStartTime(v domain.Timestamp) {
	d.set(func() { d.event.StartTime = v })
}
func (d *EditDraft) SetEndTime(v domain.Timestamp) {
	d.set(func() { d.event.EndTime = v })
}

func (d *EditDraft) set(f func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	f()
}

func (d *EditDraft) AddCategory(name string, snapshot *CategorySnapshot) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return addCategory(&d.categories, name, snapshot)
}

func (d *EditDraft) RemoveCategory(name string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.categories.Remove(name)
}

func (d *EditDraft) Form() EditForm {
	d.mu.Lock()
	defer d.mu.Unlock()
	return EditForm{
		Title:       d.event.Title,
		Description: d.event.Description,
		Image:       d.event.Image,
		StartTime:   d.event.StartTime,
		EndTime:     d.event.EndTime,
		Categories:  domain.NewStubSet(d.categories.Stubs()...),
		Submitting:  d.submitting,
	}
}

func (d *EditDraft) Submitting() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.submitting
}

func (d *EditDraft) beginSubmit() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.submitting {
		return false
	}
	d.submitting = true
	return true
}

func (d *EditDraft) endSubmit() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.submitting = false
}

func (f EditForm) validate() error {
	return firstError(
		validateCategories(f.Categories.Len()),
		validateRequired(f.Title, "title"),
		validateRequired(f.Description, "description"),
		validateImageURL(f.Image, "image"),
		validateTimeSet(f.StartTime, "startTime"),
		validateTimeSet(f.EndTime, "endTime"),
	)
}

// mergeInto overlays the fields the edit form exposes onto loaded; every
// other field of loaded is kept.
func (f EditForm) mergeInto(loaded domain.Event, categoryIDs []int64) domain.Event {
	merged := loaded.Clone()
	merged.Title = f.Title
	merged.Description = f.Description
	merged.Image = f.Image
	merged.StartTime = f.StartTime
	merged.EndTime = f.EndTime
	merged.CategoryIDs = categoryIDs
	return merged
}
