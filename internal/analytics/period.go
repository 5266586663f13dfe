package analytics

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/guttosm/trainpulse/internal/domain/models"
)

// ErrInvalidFilter is returned for tokens the filter-option generator never emits.
var ErrInvalidFilter = errors.New("invalid period filter")

// Granularity identifies the grouping of a PeriodSelector.
type Granularity int

const (
	GranularityDay Granularity = iota
	GranularityQuarter
	GranularitySemester
	GranularityYear
)

const (
	dayPrefix     = "day:"
	tokenQuarter  = "quarter"
	tokenSemester = "semester"
	tokenYear     = "year"

	// optionMonths is how many months (current included) the generator offers.
	optionMonths = 12
)

// PeriodSelector is the decoded period filter. Month is only meaningful for
// GranularityDay and holds "YYYY-MM"; an empty Month selects the most recent
// days that carry data.
type PeriodSelector struct {
	Granularity Granularity
	Month       string
}

// Day selects every calendar day of month ("YYYY-MM").
func Day(month string) PeriodSelector {
	return PeriodSelector{Granularity: GranularityDay, Month: month}
}

var (
	Quarter  = PeriodSelector{Granularity: GranularityQuarter}
	Semester = PeriodSelector{Granularity: GranularitySemester}
	Year     = PeriodSelector{Granularity: GranularityYear}
)

// Grouped reports whether the selector buckets by month.
func (p PeriodSelector) Grouped() bool {
	return p.Granularity != GranularityDay
}

// WindowMonths returns the size of the trailing month window for grouped
// selectors and 0 for Day.
func (p PeriodSelector) WindowMonths() int {
	switch p.Granularity {
	case GranularityQuarter:
		return 3
	case GranularitySemester:
		return 6
	case GranularityYear:
		return 12
	default:
		return 0
	}
}

// Token encodes the selector back into its filter token.
func (p PeriodSelector) Token() string {
	switch p.Granularity {
	case GranularityQuarter:
		return tokenQuarter
	case GranularitySemester:
		return tokenSemester
	case GranularityYear:
		return tokenYear
	default:
		return dayPrefix + p.Month
	}
}

func (p PeriodSelector) String() string { return p.Token() }

// ParsePeriodFilter decodes a filter token.
//
// Accepted tokens:
//   - "day:YYYY-MM": every day of that month.
//   - "day:" or "": the most recent days with data.
//   - "quarter", "semester", "year": trailing month windows.
func ParsePeriodFilter(token string) (PeriodSelector, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Day(""), nil
	}

	if month, ok := strings.CutPrefix(token, dayPrefix); ok {
		if month == "" {
			return Day(""), nil
		}
		if _, err := time.Parse("2006-01", month); err != nil {
			return PeriodSelector{}, fmt.Errorf("%w: month %q", ErrInvalidFilter, month)
		}
		return Day(month), nil
	}

	switch token {
	case tokenQuarter:
		return Quarter, nil
	case tokenSemester:
		return Semester, nil
	case tokenYear:
		return Year, nil
	}
	return PeriodSelector{}, fmt.Errorf("%w: %q", ErrInvalidFilter, token)
}

// FilterOptions lists the selectable periods for now: the current month and
// the 11 before it (newest first), followed by the grouped windows.
func FilterOptions(now time.Time) []models.FilterOption {
	out := make([]models.FilterOption, 0, optionMonths+3)
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < optionMonths; i++ {
		m := first.AddDate(0, -i, 0)
		out = append(out, models.FilterOption{
			Value: dayPrefix + m.Format("2006-01"),
			Label: fmt.Sprintf("%s de %d", monthNamesPT[m.Month()-1], m.Year()),
		})
	}
	return append(out,
		models.FilterOption{Value: tokenQuarter, Label: "Trimestral"},
		models.FilterOption{Value: tokenSemester, Label: "Semestral"},
		models.FilterOption{Value: tokenYear, Label: "Anual"},
	)
}

var monthNamesPT = [12]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

var monthAbbrevPT = [12]string{
	"jan", "fev", "mar", "abr", "mai", "jun",
	"jul", "ago", "set", "out", "nov", "dez",
}
