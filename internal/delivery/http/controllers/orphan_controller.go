package controllers

import (
	"context"
	"log/slog"
	"net/http"

	"eventdesk/internal/delivery/http/helpers"
	"eventdesk/internal/domain"
)

// OrphanLister lists users left behind by failed submissions.
type OrphanLister interface {
	List(ctx context.Context, params domain.PaginationParams) ([]*domain.OrphanUser, int, error)
}

// ListOrphansResponse is the response body for GET /orphans.
type ListOrphansResponse struct {
	Items      []*domain.OrphanUser   `json:"items"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// ListOrphansSuccessResponse is the success response envelope for GET /orphans (200).
type ListOrphansSuccessResponse struct {
	Data  ListOrphansResponse `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

type OrphanController struct {
	Logger  *slog.Logger
	Orphans OrphanLister
}

func NewOrphanController(logger *slog.Logger, orphans OrphanLister) *OrphanController {
	return &OrphanController{Logger: logger, Orphans: orphans}
}

// ListOrphans godoc
// @Summary List orphaned users
// @Description Users created by submissions whose event write failed, newest first. Empty when the ledger is disabled.
// @Tags orphans
// @Produce json
// @Param page query int false "Page (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.ListOrphansSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /orphans [get]
func (c *OrphanController) ListOrphans(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	items, total, err := c.Orphans.List(r.Context(), params)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ListOrphansResponse{
		Items:      items,
		Pagination: helpers.NewPaginationMeta(params.Page, params.PageSize, total),
	})
}
