package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across layers.
var (
	ErrNotFound             = errors.New("not found")
	ErrConflict             = errors.New("conflict")
	ErrRemoteStatus         = errors.New("remote call failed")
	ErrSubmissionInProgress = errors.New("submission already in progress")
	ErrInvalidTransition    = errors.New("invalid transition")
	ErrViewClosed           = errors.New("view is closed")
	ErrSessionNotFound      = errors.New("session not found")
)

// Stage identifies the pipeline step a remote failure is attributed to.
type Stage string

const (
	StageResolveCategories   Stage = "resolve-categories"
	StageCreateUser          Stage = "create-user"
	StageCreateOrUpdateEvent Stage = "create-or-update-event"
	StageDeleteEvent         Stage = "delete-event"
)

// ValidationError is a local failure that never reaches the network.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// NewValidationError returns a ValidationError for field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// CategoryCreationFailedError reports the category whose create call failed.
type CategoryCreationFailedError struct {
	Name string
	Err  error
}

func (e *CategoryCreationFailedError) Error() string {
	return fmt.Sprintf("create category %q: %v", e.Name, e.Err)
}

func (e *CategoryCreationFailedError) Unwrap() error { return e.Err }

// StageError is a remote failure attributed to a pipeline stage.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// LoadError is a failure while loading the data a view depends on.
type LoadError struct {
	Resource string
	ID       int64
	Err      error
}

func (e *LoadError) Error() string {
	if e.ID != 0 {
		return fmt.Sprintf("load %s %d: %v", e.Resource, e.ID, e.Err)
	}
	return fmt.Sprintf("load %s: %v", e.Resource, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// StageOf returns the stage of a StageError in err's chain.
func StageOf(err error) (Stage, bool) {
	var se *StageError
	if errors.As(err, &se) {
		return se.Stage, true
	}
	return "", false
}
