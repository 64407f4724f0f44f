package services

import (
	"strings"
	"sync"

	"eventdesk/internal/domain"
)

// EventFields are the event form fields of an authoring draft.
type EventFields struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Image       string           `json:"image"`
	Location    string           `json:"location"`
	StartTime   domain.Timestamp `json:"startTime"`
	EndTime     domain.Timestamp `json:"endTime"`
}

// AuthorFields are the author form fields of an authoring draft.
type AuthorFields struct {
	Name      string `json:"name"`
	UserImage string `json:"userImage"`
}

// DraftForm is a point-in-time copy of a Draft.
type DraftForm struct {
	Event      EventFields    `json:"event"`
	Author     AuthorFields   `json:"author"`
	Categories domain.StubSet `json:"categories"`
	Submitting bool           `json:"submitting"`
}

// Draft holds the in-progress fields of an event being authored.
// It is created when the authoring view opens and dropped when it closes.
type Draft struct {
	mu         sync.Mutex
	event      EventFields
	author     AuthorFields
	categories domain.StubSet
	submitting bool
}

func NewDraft() *Draft {
	return &Draft{}
}

func (d *Draft) SetTitle(v string)       { d.set(func() { d.event.Title = v }) }
func (d *Draft) SetDescription(v string) { d.set(func() { d.event.Description = v }) }
func (d *Draft) SetImage(v string)       { d.set(func() { d.event.Image = v }) }
func (d *Draft) SetLocation(v string)    { d.set(func() { d.event.Location = v }) }
func (d *Draft) SetStartTime(v domain.Timestamp) {
	d.set(func() { d.event.StartTime = v })
}
func (d *Draft) SetEndTime(v domain.Timestamp) {
	d.set(func() { d.event.EndTime = v })
}
func (d *Draft) SetAuthorName(v string)  { d.set(func() { d.author.Name = v }) }
func (d *Draft) SetAuthorImage(v string) { d.set(func() { d.author.UserImage = v }) }

func (d *Draft) set(f func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	f()
}

// AddCategory selects a category by name. See addCategory.
func (d *Draft) AddCategory(name string, snapshot *CategorySnapshot) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return addCategory(&d.categories, name, snapshot)
}

func (d *Draft) RemoveCategory(name string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.categories.Remove(name)
}

// Form returns a copy of the current fields.
func (d *Draft) Form() DraftForm {
	d.mu.Lock()
	defer d.mu.Unlock()
	return DraftForm{
		Event:      d.event,
		Author:     d.author,
		Categories: domain.NewStubSet(d.categories.Stubs()...),
		Submitting: d.submitting,
	}
}

// Reset clears every field to its initial empty value.
func (d *Draft) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.event = EventFields{}
	d.author = AuthorFields{}
	d.categories = domain.StubSet{}
}

// beginSubmit marks the draft in flight; false if it already was.
func (d *Draft) beginSubmit() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.submitting {
		return false
	}
	d.submitting = true
	return true
}

func (d *Draft) endSubmit() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.submitting = false
}

// addCategory adds name to set: a canonical category with the same name is
// added as Resolved, anything else as Unresolved. Names already selected are
// ignored.
func addCategory(set *domain.StubSet, name string, snapshot *CategorySnapshot) error {
	if strings.TrimSpace(name) == "" {
		return domain.NewValidationError("category", "category name is required")
	}
	if snapshot != nil {
		if c, ok := snapshot.Lookup(name); ok {
			set.Add(domain.ResolvedFrom(c))
			return nil
		}
	}
	set.Add(domain.Unresolved{Name: name})
	return nil
}

func (f DraftForm) validate() error {
	return firstError(
		validateCategories(f.Categories.Len()),
		validateRequired(f.Event.Title, "title"),
		validateRequired(f.Event.Description, "description"),
		validateImageURL(f.Event.Image, "image"),
		validateRequired(f.Event.Location, "location"),
		validateTimeSet(f.Event.StartTime, "startTime"),
		validateTimeSet(f.Event.EndTime, "endTime"),
		validateRequired(f.Author.Name, "name"),
		validateImageURL(f.Author.UserImage, "userImage"),
	)
}
