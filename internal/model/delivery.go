// internal/model/delivery.go
package model

import "time"

const (
	DeliveryStatusSent   = "sent"
	DeliveryStatusFailed = "failed"
)

type Delivery struct {
	ID         int       `db:"id" json:"id"`
	CampaignID int       `db:"campaign_id" json:"campaign_id"`
	ContactID  int       `db:"contact_id" json:"contact_id"`
	Status     string    `db:"status" json:"status"` // sent, failed
	Error      *string   `db:"error" json:"error,omitempty"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// DeliveryStats aggregates every delivery ever recorded for a campaign,
// cumulative across sends.
type DeliveryStats struct {
	Total  int `db:"total" json:"total"`
	Sent   int `db:"sent" json:"sent"`
	Failed int `db:"failed" json:"failed"`
}

// DeliveryView is a delivery joined with its contact, plus the message
// recomputed from the campaign template.
type DeliveryView struct {
	Delivery
	Phone     string  `json:"phone"`
	FirstName *string `json:"first_name"`
	Message   string  `json:"message"`
}
