// README: Plan service: validate, spend quota, generate via LLM, persist.
package plan

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"lushu/internal/ai"
)

// Generator is the slice of the AI provider this module needs.
type Generator interface {
	GenerateItinerary(ctx context.Context, req ai.PlanRequest) (*ai.TravelPlan, error)
}

// Quota guards how many generations a user may run per day.
type Quota interface {
	Consume(ctx context.Context, uid string) error
}

type Service struct {
	store     *Store
	generator Generator
	quota     Quota
}

func NewService(store *Store, generator Generator, quota Quota) *Service {
	return &Service{store: store, generator: generator, quota: quota}
}

// Generate runs the full pipeline for one plan: request validation, quota
// deduction, LLM generation, normalization (inside the provider) and
// persistence.
func (s *Service) Generate(ctx context.Context, userID string, req ai.PlanRequest) (*Plan, error) {
	if userID == "" {
		return nil, ErrBadRequest
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if s.quota != nil {
		if err := s.quota.Consume(ctx, userID); err != nil {
			return nil, err
		}
	}

	tp, err := s.generator.GenerateItinerary(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("generate itinerary: %w", err)
	}

	itinerary, err := json.Marshal(tp.Itinerary)
	if err != nil {
		return nil, fmt.Errorf("encode itinerary: %w", err)
	}

	now := time.Now()
	p := &Plan{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       tp.Title,
		Destination: req.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Budget:      req.Budget,
		Travelers:   req.Travelers,
		Preferences: req.Preferences,
		Itinerary:   itinerary,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	// The model sometimes omits the title; fall back to a generic one.
	if p.Title == "" {
		p.Title = req.Destination + "之旅"
	}

	if err := s.store.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, id, userID string) (*Plan, error) {
	if id == "" || userID == "" {
		return nil, ErrBadRequest
	}
	return s.store.Get(ctx, id, userID)
}

func (s *Service) List(ctx context.Context, userID string) ([]*Plan, error) {
	if userID == "" {
		return nil, ErrBadRequest
	}
	return s.store.ListByUser(ctx, userID)
}

func (s *Service) Update(ctx context.Context, id, userID string, cmd UpdateCommand) (*Plan, error) {
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
	if id == "" || userID == "" {
		return ErrBadRequest
	}
	return s.store.Delete(ctx, id, userID)
}

// Exists reports whether the plan belongs to the user; it returns
// ErrNotFound otherwise. Other modules use it as an ownership check.
func (s *Service) Exists(ctx context.Context, id, userID string) error {
	if id == "" || userID == "" {
		return ErrBadRequest
	}
	_, err := s.store.Get(ctx, id, userID)
	return err
}
