package utils

import (
	"strconv"
	"time"
)

// NewReceiptNumber builds a time-derived receipt number ("REC-<unix millis>").
// Uniqueness is best-effort only; two recharges in the same millisecond share
// a number, which the ledger tolerates.
func NewReceiptNumber(now time.Time) string {
	return "REC-" + strconv.FormatInt(now.UnixMilli(), 10)
}
