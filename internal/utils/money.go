package utils

import (
	"fmt"
	"math"
)

// FormatMoney keeps consistent decimal formatting for currency fields.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// RoundMoney snaps a float to two fraction digits so repeated debits do not
// accumulate binary-representation dust in the stored balance.
func RoundMoney(amount float64) float64 {
	return math.Round(amount*100) / 100
}
