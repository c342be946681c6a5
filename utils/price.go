package utils

import (
	"strings"

	"github.com/shopspring/decimal"

	"evently/internal/status"
)

// ParsePrice parses user-entered price text into a non-negative amount.
// The record contract stores prices as float64.
func ParsePrice(s string) (float64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, &status.ValidationError{Message: "Price must be a number"}
	}
	if d.IsNegative() {
		return 0, &status.ValidationError{Message: "Price must not be negative"}
	}

	f, _ := d.Float64()
	return f, nil
}
