package dates

import (
	"strings"
	"time"

	"atelie-backend/internal/errs"
)

const Layout = "2006-01-02"

// ParseDay reads a "YYYY-MM-DD" calendar date in loc. Parsing in the local
// zone keeps the date from sliding to the previous day once converted to UTC.
func ParseDay(value string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(Layout, strings.TrimSpace(value), loc)
}

func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay is 23:59:59.999 on t's calendar day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// Noon is used to store date-only values such as a helper's work day.
func Noon(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, t.Location())
}

// Range is an inclusive period. A zero bound leaves that side open.
type Range struct {
	From time.Time
	To   time.Time
}

// NewRange builds a range from two optional "YYYY-MM-DD" strings.
func NewRange(from, to string, loc *time.Location) (Range, error) {
	var r Range
	if strings.TrimSpace(from) != "" {
		day, err := ParseDay(from, loc)
		if err != nil {
			return Range{}, errs.InvalidDate("de")
		}
		r.From = StartOfDay(day)
	}
	if strings.TrimSpace(to) != "" {
		day, err := ParseDay(to, loc)
		if err != nil {
			return Range{}, errs.InvalidDate("ate")
		}
		r.To = EndOfDay(day)
	}
	if !r.From.IsZero() && !r.To.IsZero() && r.To.Before(r.From) {
		return Range{}, &errs.ValidationError{Field: "ate", Message: errs.MsgInvalidDate}
	}
	return r, nil
}

func (r Range) IsZero() bool {
	return r.From.IsZero() && r.To.IsZero()
}

func (r Range) Contains(t time.Time) bool {
	if !r.From.IsZero() && t.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && t.After(r.To) {
		return false
	}
	return true
}
