package core

import (
	"fmt"
	"time"
)

// DayLayout is the wire format for calendar days.
const DayLayout = "2006-01-02"

// Day is a calendar date with no time-of-day component. Log entries are keyed
// by Day, and all window arithmetic in the analysis engine compares Days.
type Day time.Time

// NewDay truncates a time.Time to its calendar date in UTC
func NewDay(t time.Time) Day {
	return Day(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC))
}

// Today returns the current calendar date in UTC
func Today() Day {
	return NewDay(time.Now().UTC())
}

// ParseDay parses an ISO-8601 date (YYYY-MM-DD)
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return Day{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return NewDay(t), nil
}

// MustDay parses an ISO-8601 date and panics on failure. Test fixtures only.
func MustDay(s string) Day {
	d, err := ParseDay(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Time returns the underlying time.Time at UTC midnight
func (d Day) Time() time.Time {
	return time.Time(d)
}

// String formats the day as YYYY-MM-DD
func (d Day) String() string {
	return time.Time(d).Format(DayLayout)
}

// IsZero checks if the day is the zero value
func (d Day) IsZero() bool {
	return time.Time(d).IsZero()
}

// Before returns true if d is an earlier calendar date than u
func (d Day) Before(u Day) bool {
	return time.Time(d).Before(time.Time(u))
}

// After returns true if d is a later calendar date than u
func (d Day) After(u Day) bool {
	return time.Time(d).After(time.Time(u))
}

// Equal returns true if d and u are the same calendar date
func (d Day) Equal(u Day) bool {
	return time.Time(d).Equal(time.Time(u))
}

// AddDays returns the day n calendar days later (or earlier for negative n)
func (d Day) AddDays(n int) Day {
	return Day(time.Time(d).AddDate(0, 0, n))
}

// JSON marshaling for Day uses the bare YYYY-MM-DD form
func (d Day) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Day) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date %s", s)
	}
	parsed, err := ParseDay(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
