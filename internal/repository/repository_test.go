package repository_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/unclebandit/smscampaign-backend/internal/db"
	"github.com/unclebandit/smscampaign-backend/internal/model"
	"github.com/unclebandit/smscampaign-backend/internal/repository"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func createTestCampaign(t *testing.T, conn *sql.DB, name string) *model.Campaign {
	t.Helper()
	repo := &repository.CampaignRepository{DB: conn}
	c := &model.Campaign{Name: name, MessageTemplate: "Hi {first_name}, welcome!"}
	require.NoError(t, repo.Create(c))
	return c
}

func strPtr(s string) *string { return &s }
