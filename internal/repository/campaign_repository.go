package repository

import (
	"database/sql"
	"time"

	appErrors "github.com/unclebandit/smscampaign-backend/internal/errors"
	"github.com/unclebandit/smscampaign-backend/internal/model"
)

type CampaignRepositoryInterface interface {
	Create(c *model.Campaign) error
	GetByID(id int) (*model.Campaign, error)
	ListWithStats() ([]model.CampaignSummary, error)
}

type CampaignRepository struct {
	DB *sql.DB
}

func (r *CampaignRepository) Create(c *model.Campaign) error {
	c.CreatedAt = time.Now()
	query := `
        INSERT INTO campaigns (name, message_template, created_at)
        VALUES (?, ?, ?)
        RETURNING id
    `
	return r.DB.QueryRow(query, c.Name, c.MessageTemplate, c.CreatedAt).Scan(&c.ID)
}

func (r *CampaignRepository) GetByID(id int) (*model.Campaign, error) {
	query := `
        SELECT id, name, message_template, created_at
        FROM campaigns WHERE id = ?
    `
	var c model.Campaign
	err := r.DB.QueryRow(query, id).Scan(&c.ID, &c.Name, &c.MessageTemplate, &c.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewNotFound("Campaign not found")
		}
		return nil, err
	}
	return &c, nil
}

// ListWithStats returns every campaign, newest first, with its contact
// and delivery counts derived per row instead of loading child rows.
func (r *CampaignRepository) ListWithStats() ([]model.CampaignSummary, error) {
	query := `
        SELECT c.id, c.name, c.message_template, c.created_at,
            (SELECT COUNT(*) FROM contacts ct WHERE ct.campaign_id = c.id) AS contacts_count,
            (SELECT COUNT(*) FROM deliveries d WHERE d.campaign_id = c.id) AS total_deliveries,
            (SELECT COUNT(*) FROM deliveries d WHERE d.campaign_id = c.id AND d.status = 'sent') AS sent,
            (SELECT COUNT(*) FROM deliveries d WHERE d.campaign_id = c.id AND d.status = 'failed') AS failed
        FROM campaigns c
        ORDER BY c.id DESC
    `
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := []model.CampaignSummary{}
	for rows.Next() {
		var s model.CampaignSummary
		if err := rows.Scan(
			&s.ID, &s.Name, &s.MessageTemplate, &s.CreatedAt,
			&s.ContactsCount, &s.TotalDeliveries, &s.Sent, &s.Failed,
		); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

var _ CampaignRepositoryInterface = (*CampaignRepository)(nil)
