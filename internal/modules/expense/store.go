// README: Expense store backed by PostgreSQL.
package expense

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"lushu/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

const expenseColumns = `
	id, plan_id, user_id, category, description,
	amount, currency, to_char(spent_on, 'YYYY-MM-DD'), created_at`

func (s *Store) Create(ctx context.Context, e *Expense) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO expenses (
			id, plan_id, user_id, category, description,
			amount, currency, spent_on, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8::date, $9)`,
		e.ID, e.PlanID, e.UserID, e.Category, e.Description,
		e.Amount.Amount, e.Amount.Currency, e.Date, e.CreatedAt,
	)
	return err
}

func (s *Store) Get(ctx context.Context, id, userID string) (*Expense, error) {
	row := s.db.QueryRow(ctx, `
		SELECT `+expenseColumns+`
		FROM expenses
		WHERE id = $1 AND user_id = $2`, id, userID,
	)
	e, err := scanExpense(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return e, err
}

func (s *Store) ListByPlan(ctx context.Context, planID, userID string) ([]*Expense, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+expenseColumns+`
		FROM expenses
		WHERE plan_id = $1 AND user_id = $2
		ORDER BY spent_on DESC, created_at DESC`, planID, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []*Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

// Update patches the editable fields; nil command fields keep their current
// value.
func (s *Store) Update(ctx context.Context, id, userID string, cmd UpdateCommand) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE expenses SET
			category = COALESCE($3, category),
			description = COALESCE($4, description),
			amount = COALESCE($5, amount),
			spent_on = COALESCE($6::date, spent_on)
		WHERE id = $1 AND user_id = $2`,
		id, userID, cmd.Category, cmd.Description, cmd.Amount, cmd.Date,
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
		DELETE FROM expenses WHERE id = $1 AND user_id = $2`, id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanExpense(row pgx.Row) (*Expense, error) {
	var e Expense
	var amount int64
	var currency string
	err := row.Scan(
		&e.ID, &e.PlanID, &e.UserID, &e.Category, &e.Description,
		&amount, &currency, &e.Date, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.Amount = types.Money{Amount: amount, Currency: currency}
	return &e, nil
}
