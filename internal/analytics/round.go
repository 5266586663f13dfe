// Package analytics turns training sessions and grades into the series the
// dashboard plots: period-bucketed hours, their target line, and score
// progress against a baseline.
//
// Every function here is a pure transform of its arguments. Anything that
// depends on the wall clock takes "now" explicitly.
package analytics

import "github.com/shopspring/decimal"

// Round1 rounds v to one decimal place, half away from zero.
//
// Every hours or score aggregate leaving this package goes through Round1 so
// that totals never drift from their displayed parts.
func Round1(v float64) float64 {
	return decimal.NewFromFloat(v).Round(1).InexactFloat64()
}
