// Package daterange provides calendar-day arithmetic for rental periods.
// All dates are normalized to midnight UTC so that day-span and overlap
// comparisons are timezone independent.
package daterange

import (
	"fmt"
	"strings"
	"time"
)

const dayLayout = "2006-01-02"

// Day snaps a timestamp to midnight UTC of its calendar day.
func Day(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar day, midnight UTC.
func Today() time.Time {
	return Day(time.Now())
}

// ParseDay parses an ISO date ("2006-01-02") or a full RFC 3339 timestamp
// and snaps it to midnight UTC. Time-of-day, if present, is discarded.
func ParseDay(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	if t, err := time.Parse(dayLayout, s); err == nil {
		return Day(t), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD or RFC 3339", s)
	}
	return Day(t), nil
}

// Format renders a normalized day as an ISO date string.
func Format(t time.Time) string {
	return t.UTC().Format(dayLayout)
}

// Range is an inclusive span of calendar days. Both bounds are expected
// to be normalized with Day; Start == End is a one-day range.
type Range struct {
	Start time.Time
	End   time.Time
}

// New builds a Range from two timestamps, normalizing both bounds.
func New(start, end time.Time) Range {
	return Range{Start: Day(start), End: Day(end)}
}

// Valid reports whether the range is well formed (End not before Start).
func (r Range) Valid() bool {
	return !r.End.Before(r.Start)
}

// Days returns the inclusive day count: a one-day range counts as 1.
func (r Range) Days() int {
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

// Overlaps reports whether two inclusive ranges intersect: boundary days
// count as shared, so [a,b] and [b,c] overlap.
func (r Range) Overlaps(other Range) bool {
	return !r.Start.After(other.End) && !r.End.Before(other.Start)
}

// Contains reports whether the given day falls inside the range.
func (r Range) Contains(day time.Time) bool {
	d := Day(day)
	return !d.Before(r.Start) && !d.After(r.End)
}

func (r Range) String() string {
	return Format(r.Start) + ".." + Format(r.End)
}
