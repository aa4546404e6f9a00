package quota

import "context"

// Service orchestrates the daily plan-generation allowance.
type Service struct {
	store *Store
	limit int
}

// NewService creates a Service backed by the given Store. limit <= 0 falls
// back to DefaultDailyLimit.
func NewService(store *Store, limit int) *Service {
	if limit <= 0 {
		limit = DefaultDailyLimit
	}
	return &Service{store: store, limit: limit}
}

// Consume deducts one generation from the user's daily allowance.
// If the user row does not exist yet it is initialised and the deduction is
// retried once. Returns ErrQuotaExhausted when today's allowance is spent.
func (s *Service) Consume(ctx context.Context, uid string) error {
	err := s.store.Consume(ctx, uid, s.limit)
	if err != ErrQuotaExhausted {
		return err
	}

	// Row may be missing: try to create it, then retry the deduction once.
	if initErr := s.store.EnsureUser(ctx, uid, s.limit); initErr != nil {
		return initErr
	}
	return s.store.Consume(ctx, uid, s.limit)
}

// Remaining reports how many generations the user has left today.
func (s *Service) Remaining(ctx context.Context, uid string) (int, error) {
	return s.store.Remaining(ctx, uid, s.limit)
}
