package controllers

import (
	"log/slog"
	"net/http"
	"strconv"

	"eventdesk/internal/delivery/http/helpers"
	"eventdesk/internal/domain"
	"eventdesk/internal/services"
)

// ViewSession is an open event page and the notifications it raised.
type ViewSession struct {
	View  EventPage
	Inbox *services.Inbox
}

// ViewResponse is the state of an event page session. Draft is set while editing.
type ViewResponse struct {
	ID         string             `json:"id"`
	Event      domain.Event       `json:"event"`
	Author     domain.User        `json:"author"`
	Categories []domain.Category  `json:"categories"`
	State      services.ViewState `json:"state"`
	Draft      *services.EditForm `json:"draft,omitempty"`
}

// ViewSuccessResponse is the success response envelope for view endpoints.
type ViewSuccessResponse struct {
	Data          ViewResponse          `json:"data"`
	Error         *helpers.APIError     `json:"error"`
	Notifications []domain.Notification `json:"notifications,omitempty"`
}

// DeleteSuccessResponse is the success response envelope for POST /views/{viewID}/delete/confirm.
type DeleteSuccessResponse struct {
	Data          services.Result       `json:"data"`
	Error         *helpers.APIError     `json:"error"`
	Notifications []domain.Notification `json:"notifications,omitempty"`
}

type ViewController struct {
	Logger *slog.Logger
	Desk   EventOpener
	Views  *services.SessionStore[*ViewSession]
}

func NewViewController(logger *slog.Logger, desk EventOpener, views *services.SessionStore[*ViewSession]) *ViewController {
	return &ViewController{Logger: logger, Desk: desk, Views: views}
}

func viewResponse(id string, s *ViewSession) ViewResponse {
	resp := ViewResponse{
		ID:         id,
		Event:      s.View.Event(),
		Author:     s.View.Author(),
		Categories: s.View.Categories(),
		State:      s.View.State(),
	}
	if edit := s.View.EditDraft(); edit != nil {
		form := edit.Form()
		resp.Draft = &form
	}
	return resp
}

func (c *ViewController) session(w http.ResponseWriter, r *http.Request) (string, *ViewSession, bool) {
	id := r.PathValue("viewID")
	s, err := c.Views.Get(id)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "view not found")
		return "", nil, false
	}
	return id, s, true
}

func (c *ViewController) fail(w http.ResponseWriter, r *http.Request, s *ViewSession, err error) {
	var notes []domain.Notification
	if s != nil {
		notes = s.Inbox.Drain()
	}
	if status := helpers.WriteDomainError(w, err, notes...); status >= http.StatusInternalServerError {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	}
}

// OpenView godoc
// @Summary Open an event page
// @Description Loads the event, its author and its categories. Any of them missing fails with 404.
// @Tags views
// @Produce json
// @Param eventID path int true "Event ID"
// @Success 201 {object} controllers.ViewSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 502 {object} helpers.APIResponse "error.code: remote_failed"
// @Router /events/{eventID}/view [post]
func (c *ViewController) OpenView(w http.ResponseWriter, r *http.Request) {
	eventID, err := strconv.ParseInt(r.PathValue("eventID"), 10, 64)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "eventID must be an integer")
		return
	}
	inbox := services.NewInbox()
	view, err := c.Desk.OpenEvent(r.Context(), eventID, nil, inbox)
	if err != nil {
		c.fail(w, r, nil, err)
		return
	}
	s := &ViewSession{View: view, Inbox: inbox}
	id := c.Views.Put(s)
	helpers.WriteJSONSuccess(w, http.StatusCreated, viewResponse(id.String(), s))
}

// GetView godoc
// @Summary Get an event page session
// @Tags views
// @Produce json
// @Param viewID path string true "View ID (UUID)"
// @Success 200 {object} controllers.ViewSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /views/{viewID} [get]
func (c *ViewController) GetView(w http.ResponseWriter, r *http.Request) {
	id, s, ok := c.session(w, r)
	if !ok {
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, viewResponse(id, s), s.Inbox.Drain()...)
}

// CloseView godoc
// @Summary Close an event page session
// @Tags views
// @Param viewID path string true "View ID (UUID)"
// @Success 204
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /views/{viewID} [delete]
func (c *ViewController) CloseView(w http.ResponseWriter, r *http.Request) {
	s, err := c.Views.Delete(r.PathValue("viewID"))
	if err != nil {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "view not found")
		return
	}
	s.View.Close()
	w.WriteHeader(http.StatusNoContent)
}

// BeginEdit godoc
// @Summary Enter edit mode
// @Tags views
// @Produce json
// @Param viewID path string true "View ID (UUID)"
// @Success 200 {object} controllers.ViewSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: invalid_transition"
// @Router /views/{viewID}/edit [post]
func (c *ViewController) BeginEdit(w http.ResponseWriter, r *http.Request) {
	id, s, ok := c.session(w, r)
	if !ok {
		return
	}
	if _, err := s.View.BeginEdit(); err != nil {
		c.fail(w, r, s, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, viewResponse(id, s))
}

// editDraft returns the active edit draft or writes a 409.
func (c *ViewController) editDraft(w http.ResponseWriter, r *http.Request, s *ViewSession) (*services.EditDraft, bool) {
	edit := s.View.EditDraft()
	if edit == nil {
		c.fail(w, r, s, domain.ErrInvalidTransition)
		return nil, false
	}
	return edit, true
}

// UpdateEditDraft godoc
// @Summary Set edit draft fields
// @Tags views
// @Accept json
// @Produce json
// @Param viewID path string true "View ID (UUID)"
// @Param fields body UpdateEditDraftRequest true "Fields to set"
// @Success 200 {object} controllers.ViewSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: invalid_transition"
// @Router /views/{viewID}/draft [patch]
func (c *ViewController) UpdateEditDraft(w http.ResponseWriter, r *http.Request) {
	id, s, ok := c.session(w, r)
	if !ok {
		return
	}
	edit, ok := c.editDraft(w, r, s)
	if !ok {
		return
	}
	var req UpdateEditDraftRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	req.apply(edit)
	helpers.WriteJSONSuccess(w, http.StatusOK, viewResponse(id, s))
}

// AddEditCategory godoc
// @Summary Select a category while editing
// @Tags views
// @Accept json
// @Produce json
// @Param viewID path string true "View ID (UUID)"
// @Param category body AddCategoryRequest true "Category name"
// @Success 200 {object} controllers.ViewSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: invalid_transition"
// @Router /views/{viewID}/draft/categories [post]
func (c *ViewController) AddEditCategory(w http.ResponseWriter, r *http.Request) {
	id, s, ok := c.session(w, r)
	if !ok {
		return
	}
	edit, ok := c.editDraft(w, r, s)
	if !ok {
		return
	}
	var req AddCategoryRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := edit.AddCategory(req.Name, s.View.Snapshot()); err != nil {
		c.fail(w, r, s, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, viewResponse(id, s))
}

// RemoveEditCategory godoc
// @Summary Deselect a category while editing
// @Tags views
// @Produce json
// @Param viewID path string true "View ID (UUID)"
// @Param name path string true "Category name (case-insensitive)"
// @Success 200 {object} controllers.ViewSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: invalid_transition"
// @Router /views/{viewID}/draft/categories/{name} [delete]
func (c *ViewController) RemoveEditCategory(w http.ResponseWriter, r *http.Request) {
	id, s, ok := c.session(w, r)
	if !ok {
		return
	}
	edit, ok := c.editDraft(w, r, s)
	if !ok {
		return
	}
	if !edit.RemoveCategory(r.PathValue("name")) {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "category not selected")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, viewResponse(id, s))
}

// SaveEdit godoc
// @Summary Save the edit
// @Description Resolves categories and updates the event. On failure the view stays in edit mode with the draft intact.
// @Tags views
// @Produce json
// @Param viewID path string true "View ID (UUID)"
// @Success 200 {object} controllers.ViewSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict, invalid_transition or cancelled"
// @Failure 502 {object} helpers.APIResponse "error.code: remote_failed"
// @Router /views/{viewID}/save [post]
func (c *ViewController) SaveEdit(w http.ResponseWriter, r *http.Request) {
	id, s, ok := c.session(w, r)
	if !ok {
		return
	}
	if _, err := s.View.Save(r.Context()); err != nil {
		c.fail(w, r, s, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, viewResponse(id, s), s.Inbox.Drain()...)
}

// CancelEdit godoc
// @Summary Leave edit mode without saving
// @Tags views
// @Produce json
// @Param viewID path string true "View ID (UUID)"
// @Success 200 {object} controllers.ViewSuccessResponse
// @Failure 409 {object} helpers.APIResponse "error.code: invalid_transition"
// @Router /views/{viewID}/cancel [post]
func (c *ViewController) CancelEdit(w http.ResponseWriter, r *http.Request) {
	id, s, ok := c.session(w, r)
	if !ok {
		return
	}
	if err := s.View.CancelEdit(); err != nil {
		c.fail(w, r, s, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, viewResponse(id, s))
}

// RequestDelete godoc
// @Summary Ask for delete confirmation
// @Tags views
// @Produce json
// @Param viewID path string true "View ID (UUID)"
// @Success 200 {object} controllers.ViewSuccessResponse
// @Failure 409 {object} helpers.APIResponse "error.code: invalid_transition"
// @Router /views/{viewID}/delete [post]
func (c *ViewController) RequestDelete(w http.ResponseWriter, r *http.Request) {
	id, s, ok := c.session(w, r)
	if !ok {
		return
	}
	if err := s.View.RequestDelete(); err != nil {
		c.fail(w, r, s, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, viewResponse(id, s))
}

// CancelDelete godoc
// @Summary Dismiss the delete confirmation
// @Tags views
// @Produce json
// @Param viewID path string true "View ID (UUID)"
// @Success 200 {object} controllers.ViewSuccessResponse
// @Failure 409 {object} helpers.APIResponse "error.code: invalid_transition"
// @Router /views/{viewID}/delete/cancel [post]
func (c *ViewController) CancelDelete(w http.ResponseWriter, r *http.Request) {
	id, s, ok := c.session(w, r)
	if !ok {
		return
	}
	if err := s.View.CancelDelete(); err != nil {
		c.fail(w, r, s, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, viewResponse(id, s))
}

// ConfirmDelete godoc
// @Summary Delete the event
// @Description On success the session is closed and data.navigate is "listing". On failure the view returns to read-only mode.
// @Tags views
// @Produce json
// @Param viewID path string true "View ID (UUID)"
// @Success 200 {object} controllers.DeleteSuccessResponse
// @Failure 409 {object} helpers.APIResponse "error.code: invalid_transition or cancelled"
// @Failure 502 {object} helpers.APIResponse "error.code: remote_failed"
// @Router /views/{viewID}/delete/confirm [post]
func (c *ViewController) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	id, s, ok := c.session(w, r)
	if !ok {
		return
	}
	res, err := s.View.ConfirmDelete(r.Context())
	if err != nil {
		c.fail(w, r, s, err)
		return
	}
	_, _ = c.Views.Delete(id)
	helpers.WriteJSONSuccess(w, http.StatusOK, res, s.Inbox.Drain()...)
}
