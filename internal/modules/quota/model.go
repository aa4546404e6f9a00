package quota

import "errors"

// ErrQuotaExhausted is returned when a user has no plan generations left
// for the current day.
var ErrQuotaExhausted = errors.New("daily generation quota exhausted")

// DefaultDailyLimit is the number of LLM plan generations granted per day.
const DefaultDailyLimit = 10
