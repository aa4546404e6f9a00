// README: Travel plan aggregate and request validation.
package plan

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"lushu/internal/ai"
)

var (
	ErrNotFound   = errors.New("plan not found")
	ErrBadRequest = errors.New("bad request")
)

// Plan is the persisted travel plan: the confirmed trip parameters plus the
// generated itinerary document.
type Plan struct {
	ID          string          `json:"id"`
	UserID      string          `json:"userId"`
	Title       string          `json:"title"`
	Destination string          `json:"destination"`
	StartDate   string          `json:"startDate"`
	EndDate     string          `json:"endDate"`
	Budget      int             `json:"budget"`
	Travelers   int             `json:"travelers"`
	Preferences string          `json:"preferences"`
	Itinerary   json.RawMessage `json:"itinerary"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// UpdateCommand carries the editable fields; nil means "leave unchanged".
type UpdateCommand struct {
	Title       *string `json:"title"`
	Budget      *int    `json:"budget"`
	Travelers   *int    `json:"travelers"`
	Preferences *string `json:"preferences"`
}

const dateLayout = "2006-01-02"

// Budget and traveler bounds match the voice extractor's sanity range.
const (
	minBudget    = 100
	maxBudget    = 1_000_000
	minTravelers = 1
	maxTravelers = 20
)

// validateRequest checks a generation request before any LLM call is made.
func validateRequest(req ai.PlanRequest) error {
	if req.Destination == "" {
		return fmt.Errorf("%w: destination is required", ErrBadRequest)
	}
	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return fmt.Errorf("%w: invalid startDate", ErrBadRequest)
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return fmt.Errorf("%w: invalid endDate", ErrBadRequest)
	}
	if end.Before(start) {
		return fmt.Errorf("%w: endDate before startDate", ErrBadRequest)
	}
	if req.Budget < minBudget || req.Budget > maxBudget {
		return fmt.Errorf("%w: budget out of range", ErrBadRequest)
	}
	if req.Travelers < minTravelers || req.Travelers > maxTravelers {
		return fmt.Errorf("%w: travelers out of range", ErrBadRequest)
	}
	return nil
}

func validateUpdate(cmd UpdateCommand) error {
	if cmd.Title != nil && *cmd.Title == "" {
		return fmt.Errorf("%w: title cannot be empty", ErrBadRequest)
	}
	if cmd.Budget != nil && (*cmd.Budget < minBudget || *cmd.Budget > maxBudget) {
		return fmt.Errorf("%w: budget out of range", ErrBadRequest)
	}
	if cmd.Travelers != nil && (*cmd.Travelers < minTravelers || *cmd.Travelers > maxTravelers) {
		return fmt.Errorf("%w: travelers out of range", ErrBadRequest)
	}
	return nil
}
