package controllers

import (
	"log/slog"
	"net/http"

	"eventdesk/internal/delivery/http/helpers"
	"eventdesk/internal/domain"
	"eventdesk/internal/services"
)

// DraftSession is an open add-event view and the notifications it raised.
type DraftSession struct {
	Authoring AuthoringSession
	Inbox     *services.Inbox
}

// DraftResponse is the state of an authoring session.
type DraftResponse struct {
	ID         string             `json:"id"`
	Form       services.DraftForm `json:"form"`
	Categories []domain.Category  `json:"categories"`
}

// DraftSuccessResponse is the success response envelope for draft endpoints.
type DraftSuccessResponse struct {
	Data          DraftResponse         `json:"data"`
	Error         *helpers.APIError     `json:"error"`
	Notifications []domain.Notification `json:"notifications,omitempty"`
}

// SubmitSuccessResponse is the success response envelope for POST /drafts/{draftID}/submit (201).
type SubmitSuccessResponse struct {
	Data          services.Result       `json:"data"`
	Error         *helpers.APIError     `json:"error"`
	Notifications []domain.Notification `json:"notifications,omitempty"`
}

type DraftController struct {
	Logger *slog.Logger
	Desk   AuthoringOpener
	Drafts *services.SessionStore[*DraftSession]
}

func NewDraftController(logger *slog.Logger, desk AuthoringOpener, drafts *services.SessionStore[*DraftSession]) *DraftController {
	return &DraftController{Logger: logger, Desk: desk, Drafts: drafts}
}

func draftResponse(id string, s *DraftSession) DraftResponse {
	return DraftResponse{ID: id, Form: s.Authoring.Draft().Form(), Categories: s.Authoring.Snapshot().All()}
}

// session loads the draft named by the path or writes a 404.
func (c *DraftController) session(w http.ResponseWriter, r *http.Request) (string, *DraftSession, bool) {
	id := r.PathValue("draftID")
	s, err := c.Drafts.Get(id)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "draft not found")
		return "", nil, false
	}
	return id, s, true
}

func (c *DraftController) fail(w http.ResponseWriter, r *http.Request, s *DraftSession, err error) {
	if status := helpers.WriteDomainError(w, err, s.Inbox.Drain()...); status >= http.StatusInternalServerError {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	}
}

// OpenDraft godoc
// @Summary Open an authoring session
// @Description Starts an empty draft. If categories cannot be fetched the draft opens anyway with no known categories and an error notification.
// @Tags drafts
// @Produce json
// @Success 201 {object} controllers.DraftSuccessResponse
// @Router /drafts [post]
func (c *DraftController) OpenDraft(w http.ResponseWriter, r *http.Request) {
	inbox := services.NewInbox()
	s := &DraftSession{Authoring: c.Desk.NewAuthoring(r.Context(), nil, inbox), Inbox: inbox}
	id := c.Drafts.Put(s)
	helpers.WriteJSONSuccess(w, http.StatusCreated, draftResponse(id.String(), s), inbox.Drain()...)
}

// GetDraft godoc
// @Summary Get an authoring session
// @Tags drafts
// @Produce json
// @Param draftID path string true "Draft ID (UUID)"
// @Success 200 {object} controllers.DraftSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /drafts/{draftID} [get]
func (c *DraftController) GetDraft(w http.ResponseWriter, r *http.Request) {
	id, s, ok := c.session(w, r)
	if !ok {
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, draftResponse(id, s), s.Inbox.Drain()...)
}

// UpdateDraft godoc
// @Summary Set draft fields
// @Tags drafts
// @Accept json
// @Produce json
// @Param draftID path string true "Draft ID (UUID)"
// @Param fields body UpdateDraftRequest true "Fields to set"
// @Success 200 {object} controllers.DraftSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /drafts/{draftID} [patch]
func (c *DraftController) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	id, s, ok := c.session(w, r)
	if !ok {
		return
	}
	var req UpdateDraftRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	req.apply(s.Authoring.Draft())
	helpers.WriteJSONSuccess(w, http.StatusOK, draftResponse(id, s))
}

// AddDraftCategory godoc
// @Summary Select a category
// @Description Adds a known category by case-insensitive name, or a new one to be created on submit.
// @Tags drafts
// @Accept json
// @Produce json
// @Param draftID path string true "Draft ID (UUID)"
// @Param category body AddCategoryRequest true "Category name"
// @Success 200 {object} controllers.DraftSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /drafts/{draftID}/categories [post]
func (c *DraftController) AddDraftCategory(w http.ResponseWriter, r *http.Request) {
	id, s, ok := c.session(w, r)
	if !ok {
		return
	}
	var req AddCategoryRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := s.Authoring.AddCategory(req.Name); err != nil {
		c.fail(w, r, s, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, draftResponse(id, s))
}

// RemoveDraftCategory godoc
// @Summary Deselect a category
// @Tags drafts
// @Produce json
// @Param draftID path string true "Draft ID (UUID)"
// @Param name path string true "Category name (case-insensitive)"
// @Success 200 {object} controllers.DraftSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /drafts/{draftID}/categories/{name} [delete]
func (c *DraftController) RemoveDraftCategory(w http.ResponseWriter, r *http.Request) {
	id, s, ok := c.session(w, r)
	if !ok {
		return
	}
	if !s.Authoring.Draft().RemoveCategory(r.PathValue("name")) {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "category not selected")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, draftResponse(id, s))
}

// SubmitDraft godoc
// @Summary Submit a draft
// @Description Resolves categories, creates the author, then creates the event. The session is closed on success; on failure the draft is kept and error.stage names the failed step.
// @Tags drafts
// @Produce json
// @Param draftID path string true "Draft ID (UUID)"
// @Success 201 {object} controllers.SubmitSuccessResponse "data.navigate is \"listing\""
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 502 {object} helpers.APIResponse "error.code: remote_failed"
// @Router /drafts/{draftID}/submit [post]
func (c *DraftController) SubmitDraft(w http.ResponseWriter, r *http.Request) {
	id, s, ok := c.session(w, r)
	if !ok {
		return
	}
	res, err := s.Authoring.Submit(r.Context())
	if err != nil {
		c.fail(w, r, s, err)
		return
	}
	_, _ = c.Drafts.Delete(id)
	helpers.WriteJSONSuccess(w, http.StatusCreated, res, s.Inbox.Drain()...)
}

// DiscardDraft godoc
// @Summary Close an authoring session
// @Tags drafts
// @Param draftID path string true "Draft ID (UUID)"
// @Success 204
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /drafts/{draftID} [delete]
func (c *DraftController) DiscardDraft(w http.ResponseWriter, r *http.Request) {
	if _, err := c.Drafts.Delete(r.PathValue("draftID")); err != nil {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "draft not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
