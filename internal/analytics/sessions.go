package analytics

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/guttosm/trainpulse/internal/domain/models"
)

// recentDays caps the Day series when no month is selected.
const recentDays = 14

// AggregateSessions buckets the approved sessions into an ascending series of
// summed hours for the given selector.
//
// Behavior:
//   - Day(month): one point per calendar day of month, zero-filled, labelled
//     with the day number.
//   - Day(""): the last 14 dates that have sessions, unlabelled.
//   - Quarter/Semester/Year: one point per "YYYY-MM" inside the trailing
//     window of 3/6/12 months ending at now's month, labelled "fev/24".
//
// Sessions whose date cannot be decomposed are skipped. The grouped windows
// depend on now, so the same input yields different series once now crosses
// a month boundary.
func AggregateSessions(sessions []models.TrainingSession, sel PeriodSelector, now time.Time) ([]models.BucketPoint, error) {
	approved := make([]dated, 0, len(sessions))
	for _, s := range sessions {
		if !s.Approved() {
			continue
		}
		d, err := DecomposeDate(s.TrainingDate)
		if err != nil {
			continue
		}
		approved = append(approved, dated{date: d, hours: s.Hours})
	}

	if sel.Grouped() {
		return aggregateByMonth(approved, sel.WindowMonths(), now), nil
	}
	if sel.Month == "" {
		return aggregateRecentDays(approved), nil
	}
	return aggregateMonthDays(approved, sel.Month)
}

// TotalHours sums a series using the same rounding as its points.
func TotalHours(points []models.BucketPoint) float64 {
	var sum float64
	for _, p := range points {
		sum += p.Hours
	}
	return Round1(sum)
}

type dated struct {
	date  CalendarDate
	hours float64
}

func aggregateMonthDays(in []dated, month string) ([]models.BucketPoint, error) {
	first, err := time.Parse("2006-01", month)
	if err != nil {
		return nil, fmt.Errorf("%w: month %q", ErrInvalidFilter, month)
	}
	year, mon := first.Year(), int(first.Month())
	days := time.Date(year, first.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()

	sums := make([]float64, days+1)
	for _, s := range in {
		if s.date.Year == year && s.date.Month == mon && s.date.Day >= 1 && s.date.Day <= days {
			sums[s.date.Day] += s.hours
		}
	}

	out := make([]models.BucketPoint, 0, days)
	for d := 1; d <= days; d++ {
		key := CalendarDate{Year: year, Month: mon, Day: d}
		out = append(out, models.BucketPoint{
			Date:  key.DayKey(),
			Hours: Round1(sums[d]),
			Label: strconv.Itoa(d),
		})
	}
	return out, nil
}

func aggregateRecentDays(in []dated) []models.BucketPoint {
	sums := make(map[string]float64)
	for _, s := range in {
		sums[s.date.DayKey()] += s.hours
	}

	keys := sortedKeys(sums)
	if len(keys) > recentDays {
		keys = keys[len(keys)-recentDays:]
	}

	out := make([]models.BucketPoint, 0, len(keys))
	for _, k := range keys {
		out = append(out, models.BucketPoint{Date: k, Hours: Round1(sums[k])})
	}
	return out
}

func aggregateByMonth(in []dated, window int, now time.Time) []models.BucketPoint {
	nowYear, nowMonth := now.Year(), int(now.Month())

	sums := make(map[string]float64)
	labels := make(map[string]string)
	for _, s := range in {
		diff := (nowYear-s.date.Year)*12 + (nowMonth - s.date.Month)
		if diff < 0 || diff >= window {
			continue
		}
		key := s.date.MonthKey()
		sums[key] += s.hours
		labels[key] = monthLabel(s.date)
	}

	keys := sortedKeys(sums)
	out := make([]models.BucketPoint, 0, len(keys))
	for _, k := range keys {
		out = append(out, models.BucketPoint{Date: k, Hours: Round1(sums[k]), Label: labels[k]})
	}
	return out
}

// monthLabel renders "fev/24" style labels.
func monthLabel(d CalendarDate) string {
	name := "???"
	if d.Month >= 1 && d.Month <= 12 {
		name = monthAbbrevPT[d.Month-1]
	}
	return fmt.Sprintf("%s/%02d", name, d.Year%100)
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
