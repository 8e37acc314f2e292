package models

// Currency represents a supported currency as reported by the backend.
// Identity is the numeric ID; Code is a short uppercase string used
// only for display and grouping (e.g. "ARS", "USD").
type Currency struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
}
