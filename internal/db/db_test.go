package db_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unclebandit/smscampaign-backend/internal/db"
)

func TestOpenCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "data.db")

	conn, err := db.Open(path)
	require.NoError(t, err)
	defer conn.Close()

	var name string
	err = conn.QueryRow(
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'campaigns'`,
	).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "campaigns", name)
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.db")

	first, err := db.Open(path)
	require.NoError(t, err)

	_, err = first.Exec(
		`INSERT INTO campaigns (name, message_template, created_at) VALUES (?, ?, ?)`,
		"Spring Promo", "Hi {first_name}", "2026-01-01T00:00:00Z",
	)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	// Reopening applies the schema again without touching existing rows.
	second, err := db.Open(path)
	require.NoError(t, err)
	defer second.Close()

	var count int
	require.NoError(t, second.QueryRow(`SELECT COUNT(*) FROM campaigns`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestOpenEnforcesStatusCheck(t *testing.T) {
	conn, err := db.Open(filepath.Join(t.TempDir(), "data.db"))
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Exec(
		`INSERT INTO campaigns (name, message_template, created_at) VALUES (?, ?, ?)`,
		"Spring Promo", "Hi {first_name}", "2026-01-01T00:00:00Z",
	)
	require.NoError(t, err)

	_, err = conn.Exec(
		`INSERT INTO deliveries (campaign_id, contact_id, status, created_at) VALUES (1, 1, 'queued', ?)`,
		"2026-01-01T00:00:00Z",
	)
	assert.Error(t, err, "only sent and failed are valid statuses")
}
