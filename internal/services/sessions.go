package services

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"eventdesk/internal/domain"
)

type sessionEntry[T any] struct {
	value    T
	lastSeen time.Time
}

// SessionStore holds open views for the HTTP layer, keyed by random ids.
// Entries idle for longer than the TTL are dropped on the next Put or Get and
// handed to the evict callback.
type SessionStore[T any] struct {
	mu      sync.Mutex
	items   map[uuid.UUID]*sessionEntry[T]
	ttl     time.Duration
	onEvict func(T)
	now     func() time.Time
}

// NewSessionStore returns a store expiring entries after ttl of inactivity.
// A ttl <= 0 disables expiry. onEvict may be nil.
func NewSessionStore[T any](ttl time.Duration, onEvict func(T)) *SessionStore[T] {
	return &SessionStore[T]{
		items:   make(map[uuid.UUID]*sessionEntry[T]),
		ttl:     ttl,
		onEvict: onEvict,
		now:     time.Now,
	}
}

func (s *SessionStore[T]) Put(v T) uuid.UUID {
	id := uuid.New()
	s.mu.Lock()
	now := s.now()
	expired := s.sweepLocked(now)
	s.items[id] = &sessionEntry[T]{value: v, lastSeen: now}
	s.mu.Unlock()
	s.evict(expired)
	return id
}

// Get parses rawID and returns the stored value or domain.ErrSessionNotFound.
// A hit counts as activity.
func (s *SessionStore[T]) Get(rawID string) (T, error) {
	var zero T
	id, err := uuid.Parse(rawID)
	if err != nil {
		return zero, domain.ErrSessionNotFound
	}
	s.mu.Lock()
	now := s.now()
	expired := s.sweepLocked(now)
	e, ok := s.items[id]
	if ok {
		e.lastSeen = now
	}
	s.mu.Unlock()
	s.evict(expired)
	if !ok {
		return zero, domain.ErrSessionNotFound
	}
	return e.value, nil
}

func (s *SessionStore[T]) Delete(rawID string) (T, error) {
	var zero T
	id, err := uuid.Parse(rawID)
	if err != nil {
		return zero, domain.ErrSessionNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.items[id]
	if !ok {
		return zero, domain.ErrSessionNotFound
	}
	delete(s.items, id)
	return e.value, nil
}

func (s *SessionStore[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// sweepLocked removes expired entries and returns their values.
func (s *SessionStore[T]) sweepLocked(now time.Time) []T {
	if s.ttl <= 0 {
		return nil
	}
	var expired []T
	for id, e := range s.items {
		if now.Sub(e.lastSeen) > s.ttl {
			delete(s.items, id)
			expired = append(expired, e.value)
		}
	}
	return expired
}

// evict runs outside the store lock; callbacks may take locks of their own.
func (s *SessionStore[T]) evict(values []T) {
	if s.onEvict == nil {
		return
	}
	for _, v := range values {
		s.onEvict(v)
	}
}
