package services

import (
	"net/url"
	"strings"

	"eventdesk/internal/domain"
)

// validateRequired reports an empty (after trimming) value.
func validateRequired(value, field string) error {
	if strings.TrimSpace(value) == "" {
		return domain.NewValidationError(field, field+" is required")
	}
	return nil
}

func validateTimeSet(t domain.Timestamp, field string) error {
	if t.IsZero() {
		return domain.NewValidationError(field, field+" is required")
	}
	return nil
}

// validateImageURL requires an absolute http(s) URL.
func validateImageURL(value, field string) error {
	if err := validateRequired(value, field); err != nil {
		return err
	}
	u, err := url.ParseRequestURI(strings.TrimSpace(value))
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return domain.NewValidationError(field, field+" must be an http(s) URL")
	}
	return nil
}

func validateCategories(n int) error {
	if n == 0 {
		return domain.NewValidationError("categories", "category required")
	}
	return nil
}

// firstError returns the first non-nil error.
func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
