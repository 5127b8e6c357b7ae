package validation

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	plateMinLen = 5
	plateMaxLen = 10

	purposeMinLen = 3
	purposeMaxLen = 300

	adminNotesMaxLen = 500

	minVehicleYear = 1900

	minPassengers = 1
	maxPassengers = 15
)

// NormalizePlate trims surrounding whitespace and uppercases a license
// plate. Plates are stored and compared in this canonical form.
func NormalizePlate(plate string) string {
	return strings.ToUpper(strings.TrimSpace(plate))
}

// ValidatePlate checks a normalized license plate for length bounds.
func ValidatePlate(plate string) error {
	if plate == "" {
		return fmt.Errorf("license plate is required")
	}
	if len(plate) < plateMinLen || len(plate) > plateMaxLen {
		return fmt.Errorf("license plate must be %d-%d characters", plateMinLen, plateMaxLen)
	}
	return nil
}

// ValidatePurpose checks rental purpose free text for length bounds and
// returns the trimmed value. Bounds count runes, not bytes, so accented
// text is not penalized.
func ValidatePurpose(purpose string) (string, error) {
	p := strings.TrimSpace(purpose)
	n := utf8.RuneCountInString(p)
	if n < purposeMinLen {
		return "", fmt.Errorf("purpose must be at least %d characters", purposeMinLen)
	}
	if n > purposeMaxLen {
		return "", fmt.Errorf("purpose must be at most %d characters", purposeMaxLen)
	}
	return p, nil
}

// ValidateAdminNotes trims admin notes and rejects over-long values.
// Truncating would silently drop part of a recorded decision.
func ValidateAdminNotes(notes string) (string, error) {
	n := strings.TrimSpace(notes)
	if utf8.RuneCountInString(n) > adminNotesMaxLen {
		return "", fmt.Errorf("adminNotes must be at most %d characters", adminNotesMaxLen)
	}
	return n, nil
}

// ValidateYear checks a vehicle model year. Next year's models are allowed.
func ValidateYear(year int) error {
	maxYear := time.Now().Year() + 1
	if year < minVehicleYear || year > maxYear {
		return fmt.Errorf("year must be between %d and %d", minVehicleYear, maxYear)
	}
	return nil
}

// ValidatePassengers checks the seat count.
func ValidatePassengers(n int) error {
	if n < minPassengers || n > maxPassengers {
		return fmt.Errorf("passengers must be between %d and %d", minPassengers, maxPassengers)
	}
	return nil
}
