package services

import (
	"strings"
	"sync"

	"eventdesk/internal/domain"
)

// Listing is the event collection shown on the events page, together with
// the categories it was fetched with.
type Listing struct {
	mu         sync.RWMutex
	events     []domain.Event
	categories *CategorySnapshot
}

func NewListing(events []domain.Event, categories []domain.Category) *Listing {
	l := &Listing{categories: NewCategorySnapshot(categories)}
	for _, e := range events {
		l.events = append(l.events, e.Clone())
	}
	return l
}

func (l *Listing) Events() []domain.Event {
	return l.Filter(nil, "")
}

func (l *Listing) Categories() []domain.Category {
	return l.categories.All()
}

// Filter keeps events that carry categoryID (nil matches all) and whose title
// contains search, case-insensitively.
func (l *Listing) Filter(categoryID *int64, search string) []domain.Event {
	l.mu.RLock()
	defer l.mu.RUnlock()
	needle := strings.ToLower(search)
	out := make([]domain.Event, 0, len(l.events))
	for _, e := range l.events {
		if categoryID != nil && !e.HasCategory(*categoryID) {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(e.Title), needle) {
			continue
		}
		out = append(out, e.Clone())
	}
	return out
}

// CategoryNames returns the display names of e's categories; unknown ids are skipped.
func (l *Listing) CategoryNames(e domain.Event) []string {
	names := make([]string, 0, len(e.CategoryIDs))
	for _, id := range e.CategoryIDs {
		if c, ok := l.categories.ByID(id); ok {
			names = append(names, c.Name)
		}
	}
	return names
}

func (l *Listing) Add(e domain.Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, e.Clone())
}

// Replace swaps in e for the event with the same id, if held.
func (l *Listing) Replace(e domain.Event) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.events {
		if l.events[i].ID == e.ID {
			l.events[i] = e.Clone()
			return true
		}
	}
	return false
}

func (l *Listing) Remove(id int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.events {
		if l.events[i].ID == id {
			l.events = append(l.events[:i], l.events[i+1:]...)
			return true
		}
	}
	return false
}
