package helpers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"eventdesk/internal/domain"
)

// Error codes for API error responses. Use these with WriteJSONError.
const (
	ErrCodeBadRequest        = "bad_request"
	ErrCodeNotFound          = "not_found"
	ErrCodeConflict          = "conflict"
	ErrCodeInvalidTransition = "invalid_transition"
	ErrCodeRemoteFailed      = "remote_failed"
	ErrCodeCancelled         = "cancelled"
	ErrCodeInternalError     = "internal_error"
)

// APIError is the error object in the standardized API response envelope.
// Stage is set when a submission failed at a remote step.
// swagger:model APIError
type APIError struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Stage   domain.Stage `json:"stage,omitempty"`
}

// APIResponse is the standardized envelope for all API responses.
// On success: Data is set, Error is nil. On error: Data is nil, Error is set.
// Notifications carries the toasts raised while handling the request.
// swagger:model APIResponse
type APIResponse struct {
	Data          any                   `json:"data"`
	Error         *APIError             `json:"error"`
	Notifications []domain.Notification `json:"notifications,omitempty"`
}

// WriteJSONSuccess sets Content-Type to application/json, writes statusCode, and
// encodes an APIResponse with the given data and error set to nil.
func WriteJSONSuccess(w http.ResponseWriter, statusCode int, data any, notifications ...domain.Notification) {
	writeJSON(w, statusCode, APIResponse{Data: data, Notifications: notifications})
}

// WriteJSONError sets Content-Type to application/json, writes statusCode, and
// encodes an APIResponse with data nil and the given error code and message.
func WriteJSONError(w http.ResponseWriter, statusCode int, code, message string, notifications ...domain.Notification) {
	writeJSON(w, statusCode, APIResponse{
		Error:         &APIError{Code: code, Message: message},
		Notifications: notifications,
	})
}

// WriteDomainError maps err onto a status code and error code and writes it.
// It returns the status written.
func WriteDomainError(w http.ResponseWriter, err error, notifications ...domain.Notification) int {
	status, apiErr := classify(err)
	writeJSON(w, status, APIResponse{Error: apiErr, Notifications: notifications})
	return status
}

func classify(err error) (int, *APIError) {
	apiErr := &APIError{Message: err.Error()}

	var verr *domain.ValidationError
	var stageErr *domain.StageError
	switch {
	case errors.As(err, &verr):
		apiErr.Code = ErrCodeBadRequest
		return http.StatusBadRequest, apiErr
	case errors.Is(err, domain.ErrSubmissionInProgress):
		apiErr.Code = ErrCodeConflict
		return http.StatusConflict, apiErr
	case errors.Is(err, domain.ErrInvalidTransition), errors.Is(err, domain.ErrViewClosed):
		apiErr.Code = ErrCodeInvalidTransition
		return http.StatusConflict, apiErr
	case errors.Is(err, context.Canceled):
		apiErr.Code = ErrCodeCancelled
		return http.StatusConflict, apiErr
	case errors.As(err, &stageErr):
		apiErr.Code = ErrCodeRemoteFailed
		apiErr.Stage = stageErr.Stage
		return http.StatusBadGateway, apiErr
	case errors.Is(err, domain.ErrSessionNotFound), errors.Is(err, domain.ErrNotFound):
		apiErr.Code = ErrCodeNotFound
		return http.StatusNotFound, apiErr
	case errors.Is(err, domain.ErrRemoteStatus):
		apiErr.Code = ErrCodeRemoteFailed
		return http.StatusBadGateway, apiErr
	}
	apiErr.Code = ErrCodeInternalError
	return http.StatusInternalServerError, apiErr
}

func writeJSON(w http.ResponseWriter, statusCode int, body APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}
