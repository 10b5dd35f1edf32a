// internal/model/campaign.go
package model

import "time"

type Campaign struct {
	ID              int       `db:"id" json:"id"`
	Name            string    `db:"name" json:"name"`
	MessageTemplate string    `db:"message_template" json:"message_template"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// CampaignSummary is a campaign annotated with its live aggregate counts.
type CampaignSummary struct {
	Campaign
	ContactsCount   int `db:"contacts_count" json:"contacts_count"`
	TotalDeliveries int `db:"total_deliveries" json:"total_deliveries"`
	Sent            int `db:"sent" json:"sent"`
	Failed          int `db:"failed" json:"failed"`
}
