package restapi

import (
	"context"
	"fmt"
	"net/http"

	"eventdesk/internal/domain"
)

func eventPath(id int64) string {
	return fmt.Sprintf("/events/%d", id)
}

func (c *Client) ListEvents(ctx context.Context) ([]domain.Event, error) {
	var events []domain.Event
	if err := c.do(ctx, http.MethodGet, "/events", nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *Client) GetEvent(ctx context.Context, id int64) (domain.Event, error) {
	var event domain.Event
	if err := c.do(ctx, http.MethodGet, eventPath(id), nil, &event); err != nil {
		return domain.Event{}, err
	}
	return event, nil
}

// CreateEvent posts the event without its id.
func (c *Client) CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	event.ID = 0
	var created domain.Event
	if err := c.do(ctx, http.MethodPost, "/events", event, &created); err != nil {
		return domain.Event{}, err
	}
	return created, nil
}

// UpdateEvent replaces the stored event with the given one.
func (c *Client) UpdateEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	var updated domain.Event
	if err := c.do(ctx, http.MethodPut, eventPath(event.ID), event, &updated); err != nil {
		return domain.Event{}, err
	}
	return updated, nil
}

func (c *Client) DeleteEvent(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, eventPath(id), nil, nil)
}
