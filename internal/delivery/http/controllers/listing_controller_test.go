package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventdesk/internal/delivery/http/helpers"
	"eventdesk/internal/domain"
	"eventdesk/internal/services"
)

type fakeEventLister struct {
	listing *services.Listing
	err     error
	calls   int
}

func (f *fakeEventLister) LoadListing(context.Context) (*services.Listing, error) {
	f.calls++
	return f.listing, f.err
}

func TestListingController_ListEvents(t *testing.T) {
	categories := []domain.Category{{ID: 1, Name: "Jazz"}, {ID: 2, Name: "Sports"}}
	events := []domain.Event{
		{ID: 10, Title: "Jazz Night", CategoryIDs: []int64{1}},
		{ID: 11, Title: "Jazz Brunch", CategoryIDs: []int64{1, 2}},
		{ID: 12, Title: "Derby", CategoryIDs: []int64{2}},
	}

	tests := []struct {
		name    string
		query   string
		wantIDs []int64
	}{
		{"all", "", []int64{10, 11, 12}},
		{"by category", "?category=2", []int64{11, 12}},
		{"by title", "?q=JAZZ", []int64{10, 11}},
		{"both", "?category=2&q=jazz", []int64{11}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewListingController(testLogger, &fakeEventLister{listing: services.NewListing(events, categories)})

			rr := httptest.NewRecorder()
			c.ListEvents(rr, httptest.NewRequest(http.MethodGet, "/events"+tt.query, nil))

			require.Equal(t, http.StatusOK, rr.Code)
			var resp ListingSuccessResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			var ids []int64
			for _, e := range resp.Data.Events {
				ids = append(ids, e.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, categories, resp.Data.Categories)
		})
	}
}

func TestListingController_CategoryNames(t *testing.T) {
	listing := services.NewListing(
		[]domain.Event{{ID: 11, Title: "Jazz Brunch", CategoryIDs: []int64{1, 2}}},
		[]domain.Category{{ID: 1, Name: "Jazz"}, {ID: 2, Name: "Sports"}},
	)
	c := NewListingController(testLogger, &fakeEventLister{listing: listing})

	rr := httptest.NewRecorder()
	c.ListEvents(rr, httptest.NewRequest(http.MethodGet, "/events", nil))

	var resp ListingSuccessResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Len(t, resp.Data.Events, 1)
	assert.Equal(t, []string{"Jazz", "Sports"}, resp.Data.Events[0].CategoryNames)
}

func TestListingController_Errors(t *testing.T) {
	t.Run("bad category id", func(t *testing.T) {
		lister := &fakeEventLister{}
		c := NewListingController(testLogger, lister)

		rr := httptest.NewRecorder()
		c.ListEvents(rr, httptest.NewRequest(http.MethodGet, "/events?category=jazz", nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), helpers.ErrCodeBadRequest)
		assert.Zero(t, lister.calls)
	})

	t.Run("load failure", func(t *testing.T) {
		lister := &fakeEventLister{err: &domain.LoadError{Resource: "events", Err: fmt.Errorf("GET /events: %w", domain.ErrRemoteStatus)}}
		c := NewListingController(testLogger, lister)

		rr := httptest.NewRecorder()
		c.ListEvents(rr, httptest.NewRequest(http.MethodGet, "/events", nil))

		assert.Equal(t, http.StatusBadGateway, rr.Code)
		assert.Contains(t, rr.Body.String(), helpers.ErrCodeRemoteFailed)
	})
}
