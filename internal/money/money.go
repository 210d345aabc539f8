// Package money formats and rounds integer currency amounts.
package money

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Symbol is the fixed currency prefix. There is no locale configuration.
const Symbol = "₹"

// Format renders an amount as the symbol followed by the integer value.
func Format(amount int64) string {
	return Symbol + strconv.FormatInt(amount, 10)
}

// RoundHalfUp rounds a float product to the nearest integer, halves away
// from zero. The float is taken at its shortest exact representation so
// binary artefacts such as 136.49999999999997 round down, matching
// the browser's Math.round for non-negative values.
func RoundHalfUp(v float64) int64 {
	return decimal.NewFromFloat(v).Round(0).IntPart()
}
