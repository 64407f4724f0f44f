package controllers

import (
	"strings"

	"eventdesk/internal/domain"
	"eventdesk/internal/services"
)

// UpdateDraftRequest is the request body for PATCH /drafts/{draftID}. All
// fields are optional; omitted fields are unchanged. Required fields are
// checked on submit, not here.
type UpdateDraftRequest struct {
	Title       *string           `json:"title"`
	Description *string           `json:"description"`
	Image       *string           `json:"image"`
	Location    *string           `json:"location"`
	StartTime   *domain.Timestamp `json:"startTime"`
	EndTime     *domain.Timestamp `json:"endTime"`
	Name        *string           `json:"name"`
	UserImage   *string           `json:"userImage"`
}

func (u UpdateDraftRequest) apply(d *services.Draft) {
	if u.Title != nil {
		d.SetTitle(*u.Title)
	}
	if u.Description != nil {
		d.SetDescription(*u.Description)
	}
	if u.Image != nil {
		d.SetImage(*u.Image)
	}
	if u.Location != nil {
		d.SetLocation(*u.Location)
	}
	if u.StartTime != nil {
		d.SetStartTime(*u.StartTime)
	}
	if u.EndTime != nil {
		d.SetEndTime(*u.EndTime)
	}
	if u.Name != nil {
		d.SetAuthorName(*u.Name)
	}
	if u.UserImage != nil {
		d.SetAuthorImage(*u.UserImage)
	}
}

// UpdateEditDraftRequest is the request body for PATCH /views/{viewID}/draft.
// Location and author are not editable.
type UpdateEditDraftRequest struct {
	Title       *string           `json:"title"`
	Description *string           `json:"description"`
	Image       *string           `json:"image"`
	StartTime   *domain.Timestamp `json:"startTime"`
	EndTime     *domain.Timestamp `json:"endTime"`
}

func (u UpdateEditDraftRequest) apply(d *services.EditDraft) {
	if u.Title != nil {
		d.SetTitle(*u.Title)
	}
	if u.Description != nil {
		d.SetDescription(*u.Description)
	}
	if u.Image != nil {
		d.SetImage(*u.Image)
	}
	if u.StartTime != nil {
		d.SetStartTime(*u.StartTime)
	}
	if u.EndTime != nil {
		d.SetEndTime(*u.EndTime)
	}
}

// AddCategoryRequest is the request body for adding a category to a draft.
type AddCategoryRequest struct {
	Name string `json:"name"`
}

// Validate implements Validator.
func (a AddCategoryRequest) Validate() []string {
	if strings.TrimSpace(a.Name) == "" {
		return []string{"name is required"}
	}
	return nil
}
