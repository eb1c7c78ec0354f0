package models

// Payment is an append-only recharge record.
type Payment struct {
	ID            int64   `json:"id"`
	MemberID      int64   `json:"member_id"`
	Amount        float64 `json:"amount"`
	ReceiptNumber string  `json:"receipt_number"`
	Date          string  `json:"date"`
}
