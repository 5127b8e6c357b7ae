package database

import (
	"fmt"

	"motorpool/internal/middleware"

	"gorm.io/gorm"
)

// ApprovedOverlapConstraint is the name of the exclusion constraint that
// makes the no-overlapping-approved-reservations invariant store-enforced.
// Repositories match on this name to translate violations into conflicts.
const ApprovedOverlapConstraint = "rental_requests_no_approved_overlap"

// EnsureConstraints installs database-level guards that application code
// cannot provide on its own. The application re-validates overlap before
// every approval, but two concurrent approvals can both pass that check;
// the exclusion constraint is the serializing mechanism that closes the
// remaining window.
//
// The constraint requires PostgreSQL (btree_gist + range types). On other
// dialects this is a no-op and concurrency safety degrades to the
// transactional re-check, which is acceptable for dev/test databases that
// serialize writers anyway.
func EnsureConstraints(db *gorm.DB) error {
	if db.Dialector.Name() != "postgres" {
		return nil
	}

	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS btree_gist").Error; err != nil {
		return fmt.Errorf("enable btree_gist: %w", err)
	}

	var count int64
	err := db.Raw(
		"SELECT COUNT(*) FROM pg_constraint WHERE conname = ?",
		ApprovedOverlapConstraint,
	).Scan(&count).Error
	if err != nil {
		return fmt.Errorf("check constraint %s: %w", ApprovedOverlapConstraint, err)
	}
	if count > 0 {
		return nil
	}

	if err := db.Exec(approvedOverlapDDL()).Error; err != nil {
		return fmt.Errorf("add constraint %s: %w", ApprovedOverlapConstraint, err)
	}

	middleware.Logger.Info("installed approved-overlap exclusion constraint")
	return nil
}

// approvedOverlapDDL builds the exclusion constraint statement. Bounds are
// stored as midnight UTC; both casts pin the time zone explicitly, because
// a bare ::date on timestamptz converts through the session TimeZone and
// would shift every bound a day back on negative-offset servers.
func approvedOverlapDDL() string {
	return fmt.Sprintf(`ALTER TABLE rental_requests
		ADD CONSTRAINT %s
		EXCLUDE USING gist (
			vehicle_id WITH =,
			daterange((start_date AT TIME ZONE 'UTC')::date, (end_date AT TIME ZONE 'UTC')::date, '[]') WITH &&
		)
		WHERE (status = 'approved')`,
		ApprovedOverlapConstraint,
	)
}
