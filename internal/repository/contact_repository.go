package repository

import (
	"database/sql"
	"errors"

	appErrors "github.com/unclebandit/smscampaign-backend/internal/errors"
	"github.com/unclebandit/smscampaign-backend/internal/model"
	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type ContactRepositoryInterface interface {
	CreateBatch(contacts []*model.Contact) (int, error)
	ListByCampaign(campaignID int) ([]model.Contact, error)
}

type ContactRepository struct {
	DB *sql.DB
}

// CreateBatch inserts every contact inside one transaction: either the
// whole batch persists or none of it does. A duplicate (campaign_id,
// phone) pair aborts the batch with a Conflict.
func (r *ContactRepository) CreateBatch(contacts []*model.Contact) (int, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	query := `INSERT INTO contacts (campaign_id, phone, first_name) VALUES (?, ?, ?)`
	for _, c := range contacts {
		res, err := tx.Exec(query, c.CampaignID, c.Phone, c.FirstName)
		if err != nil {
			if isConstraintError(err) {
				return 0, appErrors.NewConflict("Duplicate phone for campaign")
			}
			return 0, err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return 0, err
		}
		c.ID = int(id)
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return len(contacts), nil
}

// ListByCampaign returns a campaign's contacts in insertion order.
func (r *ContactRepository) ListByCampaign(campaignID int) ([]model.Contact, error) {
	query := `
        SELECT id, campaign_id, phone, first_name
        FROM contacts
        WHERE campaign_id = ?
        ORDER BY id ASC
    `
	rows, err := r.DB.Query(query, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contacts := []model.Contact{}
	for rows.Next() {
		var c model.Contact
		var firstName sql.NullString
		if err := rows.Scan(&c.ID, &c.CampaignID, &c.Phone, &firstName); err != nil {
			return nil, err
		}
		if firstName.Valid {
			c.FirstName = &firstName.String
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

func isConstraintError(err error) bool {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	code := sqliteErr.Code()
	return code == sqlite3.SQLITE_CONSTRAINT ||
		code == sqlite3.SQLITE_CONSTRAINT_UNIQUE ||
		code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
}

var _ ContactRepositoryInterface = (*ContactRepository)(nil)
