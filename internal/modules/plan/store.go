// README: Plan store backed by PostgreSQL.
package plan

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

const planColumns = `
	id, user_id, title, destination,
	to_char(start_date, 'YYYY-MM-DD'),
	to_char(end_date, 'YYYY-MM-DD'),
	budget, travelers, preferences, itinerary, created_at, updated_at`

func (s *Store) Create(ctx context.Context, p *Plan) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO travel_plans (
			id, user_id, title, destination, start_date, end_date,
			budget, travelers, preferences, itinerary, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5::date, $6::date,
			$7, $8, $9, $10, $11, $12
		)`,
		p.ID, p.UserID, p.Title, p.Destination, p.StartDate, p.EndDate,
		p.Budget, p.Travelers, p.Preferences, []byte(p.Itinerary), p.CreatedAt, p.UpdatedAt,
	)
	return err
}

func (s *Store) Get(ctx context.Context, id, userID string) (*Plan, error) {
	row := s.db.QueryRow(ctx, `
		SELECT `+planColumns+`
		FROM travel_plans
		WHERE id = $1 AND user_id = $2`, id, userID,
	)

	var p Plan
	var itinerary []byte
	err := row.Scan(
		&p.ID, &p.UserID, &p.Title, &p.Destination,
		&p.StartDate, &p.EndDate,
		&p.Budget, &p.Travelers, &p.Preferences, &itinerary, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	p.Itinerary = itinerary
	return &p, nil
}

func (s *Store) ListByUser(ctx context.Context, userID string) ([]*Plan, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+planColumns+`
		FROM travel_plans
		WHERE user_id = $1
		ORDER BY created_at DESC`, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plans []*Plan
	for rows.Next() {
		var p Plan
		var itinerary []byte
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.Title, &p.Destination,
			&p.StartDate, &p.EndDate,
			&p.Budget, &p.Travelers, &p.Preferences, &itinerary, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		p.Itinerary = itinerary
		plans = append(plans, &p)
	}
	return plans, rows.Err()
}

// Update patches the editable fields; nil command fields keep their current
// value.
func (s *Store) Update(ctx context.Context, id, userID string, cmd UpdateCommand) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE travel_plans SET
			title = COALESCE($3, title),
			budget = COALESCE($4, budget),
			travelers = COALESCE($5, travelers),
			preferences = COALESCE($6, preferences),
			updated_at = NOW()
		WHERE id = $1 AND user_id = $2`,
		id, userID, cmd.Title, cmd.Budget, cmd.Travelers, cmd.Preferences,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id, userID string) error {
	tag, err := s.db.Exec(ctx, `
		DELETE FROM travel_plans WHERE id = $1 AND user_id = $2`, id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
