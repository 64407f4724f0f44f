package controllers

import (
	"log/slog"
	"net/http"
	"strconv"

	"eventdesk/internal/delivery/http/helpers"
	"eventdesk/internal/domain"
)

// EventSummary is one row of the events page.
type EventSummary struct {
	domain.Event
	CategoryNames []string `json:"categoryNames"`
}

// ListingResponse is the response body for GET /events.
type ListingResponse struct {
	Events     []EventSummary    `json:"events"`
	Categories []domain.Category `json:"categories"`
}

// ListingSuccessResponse is the success response envelope for GET /events (200).
type ListingSuccessResponse struct {
	Data  ListingResponse   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type ListingController struct {
	Logger *slog.Logger
	Desk   EventLister
}

func NewListingController(logger *slog.Logger, desk EventLister) *ListingController {
	return &ListingController{Logger: logger, Desk: desk}
}

// ListEvents godoc
// @Summary List events
// @Description Events with their category names, optionally filtered by category id and a case-insensitive title search.
// @Tags events
// @Produce json
// @Param category query int false "Category ID"
// @Param q query string false "Title search"
// @Success 200 {object} controllers.ListingSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 502 {object} helpers.APIResponse "error.code: remote_failed"
// @Router /events [get]
func (c *ListingController) ListEvents(w http.ResponseWriter, r *http.Request) {
	var categoryID *int64
	if s := r.URL.Query().Get("category"); s != "" {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "category must be an integer id")
			return
		}
		categoryID = &id
	}

	listing, err := c.Desk.LoadListing(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusBadGateway, helpers.ErrCodeRemoteFailed, err.Error())
		return
	}

	events := listing.Filter(categoryID, r.URL.Query().Get("q"))
	resp := ListingResponse{Events: make([]EventSummary, 0, len(events)), Categories: listing.Categories()}
	for _, e := range events {
		resp.Events = append(resp.Events, EventSummary{Event: e, CategoryNames: listing.CategoryNames(e)})
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, resp)
}
