package ai

import (
	"context"

	"lushu/internal/voice"
)

// Provider defines the contract for the LLM backends. Both implementations
// return already-normalized structured results; callers never see raw model
// text.
type Provider interface {
	// ParseTravelFields extracts trip parameters from a voice transcript.
	ParseTravelFields(ctx context.Context, transcript string) (voice.TravelFields, error)

	// GenerateItinerary produces a full day-by-day travel plan for the
	// given request.
	GenerateItinerary(ctx context.Context, req PlanRequest) (*TravelPlan, error)
}
