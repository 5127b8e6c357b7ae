package validation

import (
	"strings"
	"testing"
	"time"
)

func TestNormalizePlate(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"abc1234", "ABC1234"},
		{"  abc1234  ", "ABC1234"},
		{"AbC-1234", "ABC-1234"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizePlate(tt.input); got != tt.want {
			t.Errorf("NormalizePlate(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestValidatePlate(t *testing.T) {
	valid := []string{"ABC12", "ABC1234", "ABCDE12345"}
	for _, p := range valid {
		if err := ValidatePlate(p); err != nil {
			t.Errorf("ValidatePlate(%q) unexpected error: %v", p, err)
		}
	}

	invalid := []string{"", "AB12", "ABCDEF12345"}
	for _, p := range invalid {
		if err := ValidatePlate(p); err == nil {
			t.Errorf("ValidatePlate(%q) expected error", p)
		}
	}
}

func TestValidatePurpose(t *testing.T) {
	if _, err := ValidatePurpose("ab"); err == nil {
		t.Error("two-character purpose should be rejected")
	}
	if _, err := ValidatePurpose("   a   "); err == nil {
		t.Error("purpose that trims below the minimum should be rejected")
	}
	if _, err := ValidatePurpose(strings.Repeat("x", 301)); err == nil {
		t.Error("301-character purpose should be rejected")
	}

	got, err := ValidatePurpose("  client visit  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "client visit" {
		t.Errorf("ValidatePurpose did not trim: %q", got)
	}

	if _, err := ValidatePurpose(strings.Repeat("x", 300)); err != nil {
		t.Errorf("300-character purpose should be accepted: %v", err)
	}

	// Bounds are rune counts: 300 accented characters is 600 bytes but
	// still within the limit.
	if _, err := ValidatePurpose(strings.Repeat("é", 300)); err != nil {
		t.Errorf("300-rune accented purpose should be accepted: %v", err)
	}
	if _, err := ValidatePurpose(strings.Repeat("é", 301)); err == nil {
		t.Error("301-rune accented purpose should be rejected")
	}
}

func TestValidateAdminNotes(t *testing.T) {
	got, err := ValidateAdminNotes("  ok  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "ok" {
		t.Errorf("ValidateAdminNotes did not trim: %q", got)
	}

	if _, err := ValidateAdminNotes(strings.Repeat("n", 501)); err == nil {
		t.Error("over-long notes should be rejected, not truncated")
	}
	if _, err := ValidateAdminNotes(strings.Repeat("ç", 500)); err != nil {
		t.Errorf("500-rune accented notes should be accepted: %v", err)
	}
}

func TestValidateYear(t *testing.T) {
	next := time.Now().Year() + 1
	if err := ValidateYear(next); err != nil {
		t.Errorf("next year's models are allowed: %v", err)
	}
	if err := ValidateYear(next + 1); err == nil {
		t.Error("two years ahead should be rejected")
	}
	if err := ValidateYear(1899); err == nil {
		t.Error("pre-1900 should be rejected")
	}
}

func TestValidatePassengers(t *testing.T) {
	for _, n := range []int{1, 8, 15} {
		if err := ValidatePassengers(n); err != nil {
			t.Errorf("ValidatePassengers(%d) unexpected error: %v", n, err)
		}
	}
	for _, n := range []int{0, -1, 16} {
		if err := ValidatePassengers(n); err == nil {
			t.Errorf("ValidatePassengers(%d) expected error", n)
		}
	}
}
