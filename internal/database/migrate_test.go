package database

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestEnsureConstraintsIsNoOpOffPostgres(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:ensure_constraints?mode=memory&cache=shared"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	// No gist/daterange support outside Postgres; the guard degrades to the
	// transactional re-check and the migration must not fail.
	require.NoError(t, EnsureConstraints(db))
}

func TestApprovedOverlapDDLPinsUTC(t *testing.T) {
	ddl := approvedOverlapDDL()

	assert.Contains(t, ddl, ApprovedOverlapConstraint)
	assert.Contains(t, ddl, "WHERE (status = 'approved')")

	// Bounds are stored as midnight UTC. A bare ::date cast converts through
	// the session TimeZone and shifts bounds a day back on negative-offset
	// servers, so both casts must pin UTC explicitly.
	assert.Contains(t, ddl, "(start_date AT TIME ZONE 'UTC')::date")
	assert.Contains(t, ddl, "(end_date AT TIME ZONE 'UTC')::date")
	assert.NotContains(t, strings.ReplaceAll(ddl, "AT TIME ZONE 'UTC')::date", ""), "::date")
}
