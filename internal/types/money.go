// README: Common money value object used across modules.
package types

// Money is an integer amount in the smallest display unit (whole yuan for
// CNY; the product does not track cents).
type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// CNY builds a Money in the default currency.
func CNY(amount int64) Money {
	return Money{Amount: amount, Currency: "CNY"}
}
