// README: Quota store backed by PostgreSQL (lazy daily reset in one statement).
package quota

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store handles ai_quota persistence.
type Store struct {
	db *pgxpool.Pool
}

// NewStore returns a Store backed by the given connection pool.
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Consume atomically checks the daily allowance and deducts one generation.
// The counter is reset to limit when last_reset_day is behind today.
// Returns ErrQuotaExhausted when 0 rows are updated (quota spent or user
// absent).
func (s *Store) Consume(ctx context.Context, uid string, limit int) error {
	today := time.Now().Format("2006-01-02")

	tag, err := s.db.Exec(ctx, `
		UPDATE ai_quota SET
			remaining = CASE WHEN last_reset_day != $1 THEN $2 - 1 ELSE remaining - 1 END,
			last_reset_day = $1
		WHERE uid = $3 AND (last_reset_day < $1 OR remaining > 0)
	`, today, limit, uid)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrQuotaExhausted
	}
	return nil
}

// EnsureUser inserts a fresh ai_quota row for uid with the full daily
// allowance. An existing row is left untouched.
func (s *Store) EnsureUser(ctx context.Context, uid string, limit int) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO ai_quota (uid, remaining, last_reset_day)
		VALUES ($1, $2, $3)
		ON CONFLICT (uid) DO NOTHING
	`, uid, limit, time.Now().Format("2006-01-02"))
	return err
}

// Remaining reports the allowance left for uid today. A missing row counts
// as a full allowance; a stale row counts as reset.
func (s *Store) Remaining(ctx context.Context, uid string, limit int) (int, error) {
	today := time.Now().Format("2006-01-02")

	var remaining int
	var lastReset string
	err := s.db.QueryRow(ctx,
		`SELECT remaining, last_reset_day FROM ai_quota WHERE uid = $1`, uid,
	).Scan(&remaining, &lastReset)
	if errors.Is(err, pgx.ErrNoRows) {
		// No row yet: nothing consumed.
		return limit, nil
	}
	if err != nil {
		return 0, err
	}
	if lastReset != today {
		return limit, nil
	}
	return remaining, nil
}
