package models

// Member is a prepaid bus-membership account. Balance is the single source
// of truth for spending power; it only moves through payments and trips.
type Member struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Contact string  `json:"contact"`
	Balance float64 `json:"balance"`
}
