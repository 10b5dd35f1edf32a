// internal/model/contact.go
package model

type Contact struct {
	ID         int     `db:"id" json:"id"`
	CampaignID int     `db:"campaign_id" json:"campaign_id"`
	Phone      string  `db:"phone" json:"phone"`
	FirstName  *string `db:"first_name" json:"first_name"`
}

// RenderedMessage is a contact's message recomputed on demand; the text
// is never persisted.
type RenderedMessage struct {
	ContactID int     `json:"contact_id"`
	Phone     string  `json:"phone"`
	FirstName *string `json:"first_name"`
	Message   string  `json:"message"`
}
