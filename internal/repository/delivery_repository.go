package repository

import (
	"database/sql"
	"time"

	"github.com/unclebandit/smscampaign-backend/internal/model"
)

type DeliveryRepositoryInterface interface {
	CreateBatch(deliveries []*model.Delivery) error
	StatsByCampaign(campaignID int) (*model.DeliveryStats, error)
	ListByCampaign(campaignID int) ([]model.DeliveryView, error)
}

type DeliveryRepository struct {
	DB *sql.DB
}

// CreateBatch records one delivery per contact for a send, atomically.
func (r *DeliveryRepository) CreateBatch(deliveries []*model.Delivery) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now()
	query := `
        INSERT INTO deliveries (campaign_id, contact_id, status, error, created_at)
        VALUES (?, ?, ?, ?, ?)
    `
	for _, d := range deliveries {
		d.CreatedAt = now
		res, err := tx.Exec(query, d.CampaignID, d.ContactID, d.Status, d.Error, d.CreatedAt)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		d.ID = int(id)
	}

	return tx.Commit()
}

// StatsByCampaign aggregates every delivery ever recorded for the
// campaign in a single query.
func (r *DeliveryRepository) StatsByCampaign(campaignID int) (*model.DeliveryStats, error) {
	query := `
        SELECT COUNT(*),
            COALESCE(SUM(CASE WHEN status = 'sent' THEN 1 ELSE 0 END), 0),
            COALESCE(SUM(CASE WHEN status = 'failed' THEN 1 ELSE 0 END), 0)
        FROM deliveries
        WHERE campaign_id = ?
    `
	var stats model.DeliveryStats
	err := r.DB.QueryRow(query, campaignID).Scan(&stats.Total, &stats.Sent, &stats.Failed)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// ListByCampaign returns every delivery joined with its contact. The
// Message field is left for the caller to render.
func (r *DeliveryRepository) ListByCampaign(campaignID int) ([]model.DeliveryView, error) {
	query := `
        SELECT d.id, d.campaign_id, d.contact_id, d.status, d.error, d.created_at,
               ct.phone, ct.first_name
        FROM deliveries d
        JOIN contacts ct ON ct.id = d.contact_id
        WHERE d.campaign_id = ?
        ORDER BY d.id ASC
    `
	rows, err := r.DB.Query(query, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := []model.DeliveryView{}
	for rows.Next() {
		var v model.DeliveryView
		var errMsg, firstName sql.NullString
		if err := rows.Scan(
			&v.ID, &v.CampaignID, &v.ContactID, &v.Status, &errMsg, &v.CreatedAt,
			&v.Phone, &firstName,
		); err != nil {
			return nil, err
		}
		if errMsg.Valid {
			v.Error = &errMsg.String
		}
		if firstName.Valid {
			v.FirstName = &firstName.String
		}
		views = append(views, v)
	}
	return views, rows.Err()
}

var _ DeliveryRepositoryInterface = (*DeliveryRepository)(nil)
