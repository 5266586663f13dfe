package analytics

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedDate is returned when a date string has fewer than three
// numeric components.
var ErrMalformedDate = errors.New("malformed date")

// CalendarDate is a plain (year, month, day) triple with no location attached.
type CalendarDate struct {
	Year  int
	Month int // 1-12
	Day   int // 1-31
}

// DayKey formats the date as "YYYY-MM-DD".
func (d CalendarDate) DayKey() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// MonthKey formats the date as "YYYY-MM".
func (d CalendarDate) MonthKey() string {
	return fmt.Sprintf("%04d-%02d", d.Year, d.Month)
}

// Before reports whether d is strictly earlier than o.
func (d CalendarDate) Before(o CalendarDate) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

// DecomposeDate reads the calendar components of "YYYY-MM-DD" or
// "YYYY-MM-DDTHH:MM:SSZ" without any timezone conversion: the day written in
// the string is the day returned, whatever the offset of the viewer.
func DecomposeDate(s string) (CalendarDate, error) {
	datePart, _, _ := strings.Cut(s, "T")
	parts := strings.Split(datePart, "-")
	if len(parts) < 3 {
		return CalendarDate{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
	}

	var nums [3]int
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil {
			return CalendarDate{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
		}
		nums[i] = n
	}

	return CalendarDate{Year: nums[0], Month: nums[1], Day: nums[2]}, nil
}
