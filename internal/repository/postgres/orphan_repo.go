package postgres

import (
	"context"
	"database/sql"

	"eventdesk/internal/domain"

	"github.com/lib/pq"
)

type orphanRepository struct {
	DB *sql.DB
}

// NewOrphanRepository returns a domain.OrphanRepository implemented with Postgres.
func NewOrphanRepository(db *sql.DB) domain.OrphanRepository {
	return &orphanRepository{DB: db}
}

func (r *orphanRepository) Create(ctx context.Context, o *domain.OrphanUser) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO orphan_users (id, user_id, user_name, event_title, stage, cause, category_ids, recorded_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		o.ID, o.UserID, o.UserName, o.EventTitle, string(o.Stage), o.Cause, pq.Array(o.CategoryIDs), o.RecordedAt)
	return err
}

// List returns orphans newest first together with the total count.
func (r *orphanRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.OrphanUser, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM orphan_users`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, user_id, user_name, event_title, stage, cause, category_ids, recorded_at
		 FROM orphan_users
		 ORDER BY recorded_at DESC
		 LIMIT $1 OFFSET $2`, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orphans := []*domain.OrphanUser{}
	for rows.Next() {
		var (
			o     domain.OrphanUser
			stage string
			ids   pq.Int64Array
		)
		if err := rows.Scan(&o.ID, &o.UserID, &o.UserName, &o.EventTitle, &stage, &o.Cause, &ids, &o.RecordedAt); err != nil {
			return nil, 0, err
		}
		o.Stage = domain.Stage(stage)
		o.CategoryIDs = []int64(ids)
		orphans = append(orphans, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return orphans, total, nil
}
