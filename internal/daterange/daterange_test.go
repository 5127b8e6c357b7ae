package daterange

import (
	"testing"
	"time"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestParseDay(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "iso date", input: "2026-03-01", want: "2026-03-01"},
		{name: "rfc3339 discards time", input: "2026-03-01T15:04:05Z", want: "2026-03-01"},
		{name: "rfc3339 offset normalizes to utc day", input: "2026-03-01T23:30:00-03:00", want: "2026-03-02"},
		{name: "surrounding whitespace", input: "  2026-03-01  ", want: "2026-03-01"},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "not-a-date", wantErr: true},
		{name: "wrong layout", input: "01/03/2026", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDay(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseDay(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDay(%q) unexpected error: %v", tt.input, err)
			}
			if Format(got) != tt.want {
				t.Errorf("ParseDay(%q) = %s, want %s", tt.input, Format(got), tt.want)
			}
			if h, m, s := got.Clock(); h != 0 || m != 0 || s != 0 {
				t.Errorf("ParseDay(%q) not snapped to midnight: %v", tt.input, got)
			}
			if got.Location() != time.UTC {
				t.Errorf("ParseDay(%q) not in UTC: %v", tt.input, got.Location())
			}
		})
	}
}

func TestDays(t *testing.T) {
	tests := []struct {
		start, end string
		want       int
	}{
		{"2026-03-01", "2026-03-01", 1},
		{"2026-03-01", "2026-03-02", 2},
		{"2026-03-01", "2026-03-05", 5},
		{"2026-02-27", "2026-03-02", 4}, // across a month boundary
		{"2028-02-28", "2028-03-01", 3}, // leap year
	}

	for _, tt := range tests {
		r := New(day(tt.start), day(tt.end))
		if got := r.Days(); got != tt.want {
			t.Errorf("Range{%s, %s}.Days() = %d, want %d", tt.start, tt.end, got, tt.want)
		}
	}
}

func TestOverlaps(t *testing.T) {
	base := New(day("2026-03-03"), day("2026-03-06"))

	tests := []struct {
		name       string
		start, end string
		want       bool
	}{
		{"identical", "2026-03-03", "2026-03-06", true},
		{"contained", "2026-03-04", "2026-03-05", true},
		{"containing", "2026-03-01", "2026-03-10", true},
		{"overlaps left edge", "2026-03-01", "2026-03-03", true},
		{"overlaps right edge", "2026-03-06", "2026-03-08", true},
		{"single shared boundary day", "2026-03-06", "2026-03-06", true},
		{"ends the day before", "2026-03-01", "2026-03-02", false},
		{"starts the day after", "2026-03-07", "2026-03-09", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other := New(day(tt.start), day(tt.end))
			if got := base.Overlaps(other); got != tt.want {
				t.Errorf("%v.Overlaps(%v) = %v, want %v", base, other, got, tt.want)
			}
			// Intersection is symmetric.
			if got := other.Overlaps(base); got != tt.want {
				t.Errorf("%v.Overlaps(%v) = %v, want %v", other, base, got, tt.want)
			}
		})
	}
}

func TestValid(t *testing.T) {
	if !New(day("2026-03-01"), day("2026-03-01")).Valid() {
		t.Error("single-day range should be valid")
	}
	if New(day("2026-03-02"), day("2026-03-01")).Valid() {
		t.Error("inverted range should be invalid")
	}
}

func TestContains(t *testing.T) {
	r := New(day("2026-03-03"), day("2026-03-06"))
	for _, d := range []string{"2026-03-03", "2026-03-04", "2026-03-06"} {
		if !r.Contains(day(d)) {
			t.Errorf("%v should contain %s", r, d)
		}
	}
	for _, d := range []string{"2026-03-02", "2026-03-07"} {
		if r.Contains(day(d)) {
			t.Errorf("%v should not contain %s", r, d)
		}
	}
}
