package entity

import "fmt"

// Monetary values are stored as integers in the smallest currency unit.
// Display formatting lives here so logs and API responses agree.

// AmountToString converts a smallest-unit amount to a decimal string
// For example:
// - 1015 becomes "10.15"
// - 1000 becomes "10.00"
func AmountToString(amount int64) string {
	isNegative := amount < 0
	if isNegative {
		amount = -amount
	}

	units := amount / 100
	cents := amount % 100

	if isNegative {
		return fmt.Sprintf("-%d.%02d", units, cents)
	}
	return fmt.Sprintf("%d.%02d", units, cents)
}
