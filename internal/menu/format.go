package menu

import (
	"fmt"
	"math"
)

// FormatPrice renders an amount as a display string like "$12.50" or
// "-$3.00". Rounding to two decimals happens only here, never in stored
// values, so repeated quantity changes cannot accumulate rounding error.
func FormatPrice(amount float64) string {
	rounded := math.Round(amount*100) / 100
	if rounded < 0 {
		return fmt.Sprintf("-$%.2f", -rounded)
	}
	return fmt.Sprintf("$%.2f", rounded)
}

// FormatDelta renders an option's price delta with an explicit sign, the
// way it appears next to an option label ("+$2.00"). Zero deltas render
// empty since they carry no information.
func FormatDelta(delta float64) string {
	if delta == 0 {
		return ""
	}
	if delta > 0 {
		return "+" + FormatPrice(delta)
	}
	return FormatPrice(delta)
}
