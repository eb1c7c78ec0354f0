package models

// Trip is an append-only fare deduction record.
type Trip struct {
	ID          int64   `json:"id"`
	MemberID    int64   `json:"member_id"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	ConductorID string  `json:"conductor_id"`
}
