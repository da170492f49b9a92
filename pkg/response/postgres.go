package response

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
)

const (
	insertQuery = `
INSERT INTO responses (customer_id, email, score, category, record_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`

	reportQuery = `
SELECT
    count(*) FILTER (WHERE category = 'Promoter'),
    count(*) FILTER (WHERE category = 'Passive'),
    count(*) FILTER (WHERE category = 'Detractor')
FROM responses
WHERE created_at >= $1`
)

// DB is the subset of *pgxpool.Pool the repository uses.
type DB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repository stores survey responses in the responses table.
type Repository struct {
	db DB
}

// NewRepository creates a repository over conn.
func NewRepository(conn DB) *Repository {
	return &Repository{db: conn}
}

// Record inserts a response and returns its row ID.
func (r *Repository) Record(ctx context.Context, resp Response) (int64, error) {
	var record *string
	if resp.RecordID != "" {
		record = &resp.RecordID
	}

	var id int64
	err := r.db.QueryRow(ctx, insertQuery,
		resp.CustomerID, resp.Email, resp.Score, string(resp.Category), record, resp.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, errors.Join(ErrQueryFailed, err)
	}
	return id, nil
}

// Report counts responses recorded at or after since.
// A zero since covers every response.
func (r *Repository) Report(ctx context.Context, since time.Time) (Report, error) {
	var (
		rep                  Report
		promo, pass, detract int64
	)
	if err := r.db.QueryRow(ctx, reportQuery, since.UTC()).Scan(&promo, &pass, &detract); err != nil {
		return rep, errors.Join(ErrQueryFailed, err)
	}
	rep.Promoters, rep.Passives, rep.Detractors = int(promo), int(pass), int(detract)
	return rep, nil
}
