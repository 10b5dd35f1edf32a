// internal/service/campaign_service.go
package service

import (
	"math"
	"math/rand"
	"time"

	appErrors "github.com/unclebandit/smscampaign-backend/internal/errors"
	"github.com/unclebandit/smscampaign-backend/internal/model"
	"github.com/unclebandit/smscampaign-backend/internal/phone"
	"github.com/unclebandit/smscampaign-backend/internal/repository"
)

type CampaignService struct {
	CampaignRepo repository.CampaignRepositoryInterface
	ContactRepo  repository.ContactRepositoryInterface
	DeliveryRepo repository.DeliveryRepositoryInterface

	// Rand drives the send simulation; inject a seeded source in tests.
	Rand *rand.Rand
	// Sender stands in for a carrier. Contacts not claimed by the
	// failure quota go through it; the default accepts everything.
	Sender func(phone, message string) error
}

type ContactInput struct {
	Phone     string  `json:"phone"`
	FirstName *string `json:"first_name"`
}

type SendResult struct {
	CampaignID  int     `json:"campaign_id"`
	Total       int     `json:"total"`
	Sent        int     `json:"sent"`
	Failed      int     `json:"failed"`
	FailureRate float64 `json:"failure_rate"`
}

type CampaignDetails struct {
	model.Campaign
	Stats model.DeliveryStats `json:"stats"`
}

const simulatedFailureReason = "simulated send failure"

func (s *CampaignService) CreateCampaign(name, messageTemplate string) (*model.Campaign, error) {
	if name == "" || messageTemplate == "" {
		return nil, appErrors.NewValidation("name and message_template are required")
	}

	c := &model.Campaign{
		Name:            name,
		MessageTemplate: messageTemplate,
	}
	if err := s.CampaignRepo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

// AddContacts normalizes and persists a batch of contacts for one
// campaign. Any bad phone aborts the whole batch before a single row is
// written; a duplicate phone rolls the batch back with a Conflict.
func (s *CampaignService) AddContacts(campaignID int, inputs []ContactInput) (int, error) {
	if _, err := s.CampaignRepo.GetByID(campaignID); err != nil {
		return 0, err
	}
	if len(inputs) == 0 {
		return 0, appErrors.NewValidation("contacts array is required")
	}

	contacts := make([]*model.Contact, 0, len(inputs))
	for _, in := range inputs {
		normalized, err := phone.Normalize(in.Phone)
		if err != nil {
			return 0, err
		}
		contacts = append(contacts, &model.Contact{
			CampaignID: campaignID,
			Phone:      normalized,
			FirstName:  in.FirstName,
		})
	}

	return s.ContactRepo.CreateBatch(contacts)
}

// SendCampaign simulates a send to every contact. The failure rate is
// drawn uniformly from [0.05, 0.10) and exactly floor(n*rate) contacts,
// chosen without replacement, are marked failed. One delivery row per
// contact is recorded atomically; rendered text is never stored.
func (s *CampaignService) SendCampaign(campaignID int) (*SendResult, error) {
	campaign, err := s.CampaignRepo.GetByID(campaignID)
	if err != nil {
		return nil, err
	}

	contacts, err := s.ContactRepo.ListByCampaign(campaignID)
	if err != nil {
		return nil, err
	}
	if len(contacts) == 0 {
		return nil, appErrors.NewValidation("No contacts for campaign")
	}

	rng := s.rng()
	rate := 0.05 + rng.Float64()*0.05
	target := int(float64(len(contacts)) * rate)

	injected := make([]bool, len(contacts))
	for _, i := range rng.Perm(len(contacts))[:target] {
		injected[i] = true
	}

	deliveries := make([]*model.Delivery, 0, len(contacts))
	sent, failed := 0, 0
	for i, c := range contacts {
		d := &model.Delivery{
			CampaignID: campaignID,
			ContactID:  c.ID,
			Status:     model.DeliveryStatusSent,
		}

		message := RenderMessage(campaign.MessageTemplate, c.FirstName)
		if injected[i] {
			reason := simulatedFailureReason
			d.Status = model.DeliveryStatusFailed
			d.Error = &reason
		} else if err := s.send(c.Phone, message); err != nil {
			reason := err.Error()
			d.Status = model.DeliveryStatusFailed
			d.Error = &reason
		}

		if d.Status == model.DeliveryStatusFailed {
			failed++
		} else {
			sent++
		}
		deliveries = append(deliveries, d)
	}

	if err := s.DeliveryRepo.CreateBatch(deliveries); err != nil {
		return nil, err
	}

	return &SendResult{
		CampaignID:  campaignID,
		Total:       len(contacts),
		Sent:        sent,
		Failed:      failed,
		FailureRate: math.Round(rate*1000) / 1000,
	}, nil
}

// GetStats returns delivery totals accumulated across every send.
func (s *CampaignService) GetStats(campaignID int) (*model.DeliveryStats, error) {
	if _, err := s.CampaignRepo.GetByID(campaignID); err != nil {
		return nil, err
	}
	return s.DeliveryRepo.StatsByCampaign(campaignID)
}

// ListRenderedMessages recomputes each contact's message on demand, in
// contact insertion order.
func (s *CampaignService) ListRenderedMessages(campaignID int) ([]model.RenderedMessage, error) {
	campaign, err := s.CampaignRepo.GetByID(campaignID)
	if err != nil {
		return nil, err
	}

	contacts, err := s.ContactRepo.ListByCampaign(campaignID)
	if err != nil {
		return nil, err
	}

	messages := make([]model.RenderedMessage, 0, len(contacts))
	for _, c := range contacts {
		messages = append(messages, model.RenderedMessage{
			ContactID: c.ID,
			Phone:     c.Phone,
			FirstName: c.FirstName,
			Message:   RenderMessage(campaign.MessageTemplate, c.FirstName),
		})
	}
	return messages, nil
}

// ListDeliveries returns every recorded delivery with its contact and
// the recomputed message text.
func (s *CampaignService) ListDeliveries(campaignID int) ([]model.DeliveryView, error) {
	campaign, err := s.CampaignRepo.GetByID(campaignID)
	if err != nil {
		return nil, err
	}

	views, err := s.DeliveryRepo.ListByCampaign(campaignID)
	if err != nil {
		return nil, err
	}
	for i := range views {
		views[i].Message = RenderMessage(campaign.MessageTemplate, views[i].FirstName)
	}
	return views, nil
}

func (s *CampaignService) ListCampaigns() ([]model.CampaignSummary, error) {
	return s.CampaignRepo.ListWithStats()
}

// GetCampaignDetails returns one campaign with its aggregate counts.
func (s *CampaignService) GetCampaignDetails(campaignID int) (*CampaignDetails, error) {
	campaign, err := s.CampaignRepo.GetByID(campaignID)
	if err != nil {
		return nil, err
	}

	stats, err := s.DeliveryRepo.StatsByCampaign(campaignID)
	if err != nil {
		return nil, err
	}

	return &CampaignDetails{Campaign: *campaign, Stats: *stats}, nil
}

func (s *CampaignService) rng() *rand.Rand {
	if s.Rand == nil {
		s.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return s.Rand
}

func (s *CampaignService) send(phoneNumber, message string) error {
	if s.Sender != nil {
		return s.Sender(phoneNumber, message)
	}
	return nil
}
