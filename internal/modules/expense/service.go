// README: Expense business logic: validation, ownership and summaries.
package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Plans is the slice of the plan module the expense service needs: it only
// checks that the target plan exists and belongs to the caller.
type Plans interface {
	Exists(ctx context.Context, planID, userID string) error
}

type Service struct {
	store *Store
	plans Plans
}

func NewService(store *Store, plans Plans) *Service {
	return &Service{store: store, plans: plans}
}

func (s *Service) Add(ctx context.Context, userID string, e *Expense) (*Expense, error) {
	e.UserID = userID
	if e.Amount.Currency == "" {
		e.Amount.Currency = "CNY"
	}
	if err := validate(e); err != nil {
		return nil, err
	}
	if err := s.plans.Exists(ctx, e.PlanID, userID); err != nil {
		return nil, fmt.Errorf("check plan: %w", err)
	}

	e.ID = uuid.NewString()
	e.CreatedAt = time.Now().UTC()
	if err := s.store.Create(ctx, e); err != nil {
		return nil, fmt.Errorf("create expense: %w", err)
	}
	return e, nil
}

func (s *Service) List(ctx context.Context, planID, userID string) ([]*Expense, error) {
	if err := s.plans.Exists(ctx, planID, userID); err != nil {
		return nil, fmt.Errorf("check plan: %w", err)
	}
	return s.store.ListByPlan(ctx, planID, userID)
}

func (s *Service) Update(ctx context.Context, id, userID string, cmd UpdateCommand) (*Expense, error) {
	if id == "" || userID == "" {
		return nil, ErrBadRequest
	}
	if err := validateUpdate(cmd); err != nil {
		return nil, err
	}
	if err := s.store.Update(ctx, id, userID, cmd); err != nil {
		return nil, err
	}
	return s.store.Get(ctx, id, userID)
}

func (s *Service) Delete(ctx context.Context, id, userID string) error {
	return s.store.Delete(ctx, id, userID)
}

// Summarize returns the per-category totals for one plan.
func (s *Service) Summarize(ctx context.Context, planID, userID string) (Summary, error) {
	expenses, err := s.List(ctx, planID, userID)
	if err != nil {
		return Summary{}, err
	}
	return summarize(expenses), nil
}
