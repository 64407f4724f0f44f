package domain

import "encoding/json"

// Stub is a draft reference to a category: either Resolved (known to exist
// remotely) or Unresolved (typed by the user, not yet known to exist).
// The set of implementations is closed.
type Stub interface {
	StubName() string
	isStub()
}

// Resolved is a stub that carries a server-assigned id.
type Resolved struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Unresolved is a stub that only carries a name.
type Unresolved struct {
	Name string `json:"name"`
}

func (r Resolved) StubName() string   { return r.Name }
func (u Unresolved) StubName() string { return u.Name }
func (Resolved) isStub()              {}
func (Unresolved) isStub()            {}

// ResolvedFrom returns the Resolved stub for a persisted category.
func ResolvedFrom(c Category) Resolved {
	return Resolved{ID: c.ID, Name: c.Name}
}

// StubSet is an ordered set of stubs, unique by case-insensitive name.
// The zero value is an empty set.
type StubSet struct {
	stubs []Stub
}

// NewStubSet builds a set from stubs; later duplicates by name are dropped.
func NewStubSet(stubs ...Stub) StubSet {
	var s StubSet
	for _, st := range stubs {
		s.Add(st)
	}
	return s
}

// Add appends stub unless a stub with the same name is already present.
func (s *StubSet) Add(stub Stub) bool {
	if stub == nil || s.Contains(stub.StubName()) {
		return false
	}
	s.stubs = append(s.stubs, stub)
	return true
}

// Remove drops the stub with the given name.
func (s *StubSet) Remove(name string) bool {
	key := FoldName(name)
	for i, st := range s.stubs {
		if FoldName(st.StubName()) == key {
			s.stubs = append(s.stubs[:i:i], s.stubs[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether a stub with the given name is present.
func (s StubSet) Contains(name string) bool {
	key := FoldName(name)
	for _, st := range s.stubs {
		if FoldName(st.StubName()) == key {
			return true
		}
	}
	return false
}

func (s StubSet) Len() int { return len(s.stubs) }

// Stubs returns a copy of the stubs in insertion order.
func (s StubSet) Stubs() []Stub {
	out := make([]Stub, len(s.stubs))
	copy(out, s.stubs)
	return out
}

// Names returns the stub names in insertion order.
func (s StubSet) Names() []string {
	out := make([]string, len(s.stubs))
	for i, st := range s.stubs {
		out[i] = st.StubName()
	}
	return out
}

func (s StubSet) MarshalJSON() ([]byte, error) {
	if s.stubs == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.stubs)
}
