package repository_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/unclebandit/smscampaign-backend/internal/errors"
	"github.com/unclebandit/smscampaign-backend/internal/model"
	"github.com/unclebandit/smscampaign-backend/internal/repository"
)

func countContacts(t *testing.T, repo *repository.ContactRepository, campaignID int) int {
	t.Helper()
	contacts, err := repo.ListByCampaign(campaignID)
	require.NoError(t, err)
	return len(contacts)
}

func TestContactCreateBatch(t *testing.T) {
	conn := openTestDB(t)
	repo := &repository.ContactRepository{DB: conn}
	campaign := createTestCampaign(t, conn, "Spring Promo")

	added, err := repo.CreateBatch([]*model.Contact{
		{CampaignID: campaign.ID, Phone: "14155550101", FirstName: strPtr("Ana")},
		{CampaignID: campaign.ID, Phone: "14155550102"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	contacts, err := repo.ListByCampaign(campaign.ID)
	require.NoError(t, err)
	require.Len(t, contacts, 2)

	// Insertion order, generated ids, nullable first name.
	assert.Less(t, contacts[0].ID, contacts[1].ID)
	require.NotNil(t, contacts[0].FirstName)
	assert.Equal(t, "Ana", *contacts[0].FirstName)
	assert.Nil(t, contacts[1].FirstName)
}

func TestContactDuplicateWithinBatchRollsBack(t *testing.T) {
	conn := openTestDB(t)
	repo := &repository.ContactRepository{DB: conn}
	campaign := createTestCampaign(t, conn, "Spring Promo")

	_, err := repo.CreateBatch([]*model.Contact{
		{CampaignID: campaign.ID, Phone: "14155550101"},
		{CampaignID: campaign.ID, Phone: "14155550102"},
		{CampaignID: campaign.ID, Phone: "14155550101"},
	})
	require.Error(t, err)

	var apiErr *appErrors.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "Duplicate phone for campaign", apiErr.Message)

	assert.Equal(t, 0, countContacts(t, repo, campaign.ID), "failed batch must leave no rows")
}

func TestContactDuplicateAcrossBatches(t *testing.T) {
	conn := openTestDB(t)
	repo := &repository.ContactRepository{DB: conn}
	campaign := createTestCampaign(t, conn, "Spring Promo")

	_, err := repo.CreateBatch([]*model.Contact{
		{CampaignID: campaign.ID, Phone: "14155550101"},
		{CampaignID: campaign.ID, Phone: "14155550102"},
	})
	require.NoError(t, err)

	_, err = repo.CreateBatch([]*model.Contact{
		{CampaignID: campaign.ID, Phone: "14155550103"},
		{CampaignID: campaign.ID, Phone: "14155550101"},
	})
	require.Error(t, err)

	var apiErr *appErrors.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusConflict, apiErr.Status)

	assert.Equal(t, 2, countContacts(t, repo, campaign.ID), "second batch must not partially commit")
}

func TestContactSamePhoneDifferentCampaigns(t *testing.T) {
	conn := openTestDB(t)
	repo := &repository.ContactRepository{DB: conn}
	first := createTestCampaign(t, conn, "First")
	second := createTestCampaign(t, conn, "Second")

	_, err := repo.CreateBatch([]*model.Contact{{CampaignID: first.ID, Phone: "14155550101"}})
	require.NoError(t, err)

	// Uniqueness is scoped per campaign.
	_, err = repo.CreateBatch([]*model.Contact{{CampaignID: second.ID, Phone: "14155550101"}})
	require.NoError(t, err)
}
