// README: Expense record, category summary and validation.
package expense

import (
	"errors"
	"fmt"
	"time"

	"lushu/internal/types"
)

var (
	ErrNotFound   = errors.New("expense not found")
	ErrBadRequest = errors.New("bad request")
)

// Expense is one spend entry attached to a travel plan.
type Expense struct {
	ID          string      `json:"id"`
	PlanID      string      `json:"planId"`
	UserID      string      `json:"userId"`
	Category    string      `json:"category"`
	Description string      `json:"description"`
	Amount      types.Money `json:"amount"`
	Date        string      `json:"date"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// Summary is the per-category rollup for one plan.
type Summary struct {
	Total      int64            `json:"total"`
	ByCategory map[string]int64 `json:"byCategory"`
}

// UpdateCommand carries the editable fields; nil means "leave unchanged".
type UpdateCommand struct {
	Category    *string `json:"category"`
	Description *string `json:"description"`
	Amount      *int64  `json:"amount"`
	Date        *string `json:"date"`
}

const dateLayout = "2006-01-02"

func validate(e *Expense) error {
	if e.PlanID == "" {
		return fmt.Errorf("%w: planId is required", ErrBadRequest)
	}
	if e.Category == "" {
		return fmt.Errorf("%w: category is required", ErrBadRequest)
	}
	if e.Amount.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrBadRequest)
	}
	if _, err := time.Parse(dateLayout, e.Date); err != nil {
		return fmt.Errorf("%w: invalid date", ErrBadRequest)
	}
	return nil
}

func validateUpdate(cmd UpdateCommand) error {
	if cmd.Category != nil && *cmd.Category == "" {
		return fmt.Errorf("%w: category cannot be empty", ErrBadRequest)
	}
	if cmd.Amount != nil && *cmd.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrBadRequest)
	}
	if cmd.Date != nil {
		if _, err := time.Parse(dateLayout, *cmd.Date); err != nil {
			return fmt.Errorf("%w: invalid date", ErrBadRequest)
		}
	}
	return nil
}

// summarize rolls expenses up into per-category totals plus a grand total.
func summarize(expenses []*Expense) Summary {
	sum := Summary{ByCategory: make(map[string]int64)}
	for _, e := range expenses {
		sum.ByCategory[e.Category] += e.Amount.Amount
		sum.Total += e.Amount.Amount
	}
	return sum
}
