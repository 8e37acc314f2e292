package models

// Account represents a bank account owned by the backend. The balance
// is always an integer count of minor units (cents), never a floating
// value.
type Account struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	CurrencyID   int64  `json:"currency_id"`
	BalanceCents int64  `json:"balance_cents"`
}
