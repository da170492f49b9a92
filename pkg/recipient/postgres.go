package recipient

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrymomot/npsmail/pkg/db"
	"github.com/dmitrymomot/npsmail/pkg/survey"
)

// DefaultSurveyAfterDays is how long after installation a customer is surveyed.
const DefaultSurveyAfterDays = 7

const (
	dueQuery = `
SELECT customer_id, name, email, install_date
FROM customers
WHERE nps_survey_sent = false
  AND install_date <= CURRENT_DATE - $1::int
ORDER BY install_date, customer_id`

	markSurveyedQuery = `
UPDATE customers
SET nps_survey_sent = true, nps_survey_sent_at = now()
WHERE customer_id = ANY($1)`

	upsertQuery = `
INSERT INTO customers (customer_id, name, email, install_date)
VALUES ($1, $2, $3, $4)
ON CONFLICT (customer_id) DO UPDATE
SET name = EXCLUDED.name, email = EXCLUDED.email, install_date = EXCLUDED.install_date`
)

// DB is the subset of *pgxpool.Pool the repository uses.
type DB interface {
	db.TxBeginner
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Repository reads and updates survey recipients in the customers table.
type Repository struct {
	db DB
}

// NewRepository creates a repository over conn.
func NewRepository(conn DB) *Repository {
	return &Repository{db: conn}
}

// Due returns customers installed at least afterDays ago who were not surveyed yet,
// oldest installation first.
func (r *Repository) Due(ctx context.Context, afterDays int) ([]survey.Recipient, error) {
	rows, err := r.db.Query(ctx, dueQuery, max(afterDays, 0))
	if err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}
	defer rows.Close()

	var out []survey.Recipient
	for rows.Next() {
		var (
			rec         survey.Recipient
			name        *string
			installDate *time.Time
		)
		if err := rows.Scan(&rec.ID, &name, &rec.Email, &installDate); err != nil {
			return nil, errors.Join(ErrQueryFailed, err)
		}
		if name != nil {
			rec.Name = *name
		}
		if installDate != nil {
			rec.InstallDate = installDate.Format(time.DateOnly)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}

	return out, nil
}

// MarkSurveyed flags the given customers as surveyed. It returns the number
// of rows updated.
func (r *Repository) MarkSurveyed(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	tag, err := r.db.Exec(ctx, markSurveyedQuery, ids)
	if err != nil {
		return 0, errors.Join(ErrQueryFailed, err)
	}
	return tag.RowsAffected(), nil
}

// Import upserts recipients into the customers table in one transaction.
// An empty install date is stored as NULL.
func (r *Repository) Import(ctx context.Context, recipients []survey.Recipient) error {
	err := db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		for _, rec := range recipients {
			installDate, err := parseDate(rec.InstallDate)
			if err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, upsertQuery, rec.ID, nullable(rec.Name), rec.Email, installDate); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return errors.Join(ErrQueryFailed, err)
	}
	return nil
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
