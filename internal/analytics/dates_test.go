package analytics

import (
	"errors"
	"testing"
)

func TestDecomposeDate(t *testing.T) {
	cases := []struct {
		in      string
		want    CalendarDate
		wantErr bool
	}{
		{in: "2024-02-29", want: CalendarDate{2024, 2, 29}},
		{in: "2024-03-01T00:00:00Z", want: CalendarDate{2024, 3, 1}},
		{in: "2024-03-01T23:30:00-03:00", want: CalendarDate{2024, 3, 1}},
		{in: "1999-12-31T", want: CalendarDate{1999, 12, 31}},
		{in: "2024-02", wantErr: true},
		{in: "", wantErr: true},
		{in: "2024-xx-01", wantErr: true},
	}
	for _, c := range cases {
		got, err := DecomposeDate(c.in)
		if c.wantErr {
			if !errors.Is(err, ErrMalformedDate) {
				t.Fatalf("DecomposeDate(%q) err=%v, want ErrMalformedDate", c.in, err)
			}
			continue
		}
		if err != nil || got != c.want {
			t.Fatalf("DecomposeDate(%q)=%+v,%v want %+v", c.in, got, err, c.want)
		}
	}
}

func TestCalendarDate_KeysAndOrder(t *testing.T) {
	d := CalendarDate{Year: 2024, Month: 2, Day: 5}
	if d.DayKey() != "2024-02-05" || d.MonthKey() != "2024-02" {
		t.Fatalf("unexpected keys %q %q", d.DayKey(), d.MonthKey())
	}
	if !d.Before(CalendarDate{2024, 2, 6}) || !d.Before(CalendarDate{2024, 3, 1}) || !d.Before(CalendarDate{2025, 1, 1}) {
		t.Fatalf("expected %+v to precede later dates", d)
	}
	if d.Before(d) {
		t.Fatalf("a date must not precede itself")
	}
}

func TestRound1(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{120.0 / 22, 5.5},
		{0.05, 0.1},
		{0.04, 0},
		{1.25, 1.3},
		{-1.25, -1.3},
		{2.449, 2.4},
		{0, 0},
	}
	for _, c := range cases {
		if got := Round1(c.in); got != c.want {
			t.Fatalf("Round1(%v)=%v want %v", c.in, got, c.want)
		}
	}
}
