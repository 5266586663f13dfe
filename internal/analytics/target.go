package analytics

import (
	"fmt"
	"strconv"

	"github.com/guttosm/trainpulse/internal/domain/models"
)

// WorkingDaysPerMonth approximates the training days in a month when
// spreading the monthly target over a daily series.
const WorkingDaysPerMonth = 22

// ResolveTarget derives the comparison line for sel from the stored monthly
// hours target.
//
// Day series compare against a per-working-day share of the monthly target;
// grouped series are bucketed by month and compare against it unchanged.
func ResolveTarget(sel PeriodSelector, monthlyTarget float64) models.Target {
	if sel.Grouped() {
		return models.Target{
			Value: monthlyTarget,
			Label: fmt.Sprintf("Meta: %sh/mês", formatNumber(monthlyTarget)),
		}
	}
	daily := Round1(monthlyTarget / WorkingDaysPerMonth)
	return models.Target{
		Value: daily,
		Label: fmt.Sprintf("Meta: %sh/dia", formatNumber(daily)),
	}
}

// formatNumber prints 5.5 as "5.5" and 120 as "120".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
