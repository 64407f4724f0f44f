package domain

import (
	"context"
	"time"
)

// OrphanUser is a user created by a submission whose event write never
// succeeded. Nothing references it remotely.
// swagger:model OrphanUser
type OrphanUser struct {
	ID          string    `json:"id"`
	UserID      int64     `json:"user_id"`
	UserName    string    `json:"user_name"`
	EventTitle  string    `json:"event_title"`
	Stage       Stage     `json:"stage"`
	Cause       string    `json:"cause"`
	CategoryIDs []int64   `json:"category_ids"`
	RecordedAt  time.Time `json:"recorded_at"`
}

// OrphanRecorder is told about orphans as they happen.
type OrphanRecorder interface {
	RecordOrphan(ctx context.Context, orphan *OrphanUser)
}

// OrphanRepository stores orphans for later cleanup.
type OrphanRepository interface {
	Create(ctx context.Context, orphan *OrphanUser) error
	List(ctx context.Context, params PaginationParams) ([]*OrphanUser, int, error)
}
