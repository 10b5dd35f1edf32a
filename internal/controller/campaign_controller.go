// internal/controller/campaign_controller.go
package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	appErrors "github.com/unclebandit/smscampaign-backend/internal/errors"
	"github.com/unclebandit/smscampaign-backend/internal/model"
	"github.com/unclebandit/smscampaign-backend/internal/service"
)

type CampaignController struct {
	CampaignService *service.CampaignService
}

func (c *CampaignController) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (c *CampaignController) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name            string `json:"name"`
		MessageTemplate string `json:"message_template"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON"})
		return
	}

	campaign, err := c.CampaignService.CreateCampaign(body.Name, body.MessageTemplate)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, campaign)
}

func (c *CampaignController) ListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := c.CampaignService.ListCampaigns()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"campaigns": campaigns})
}

func (c *CampaignController) GetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	details, err := c.CampaignService.GetCampaignDetails(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, details)
}

// AddContacts accepts {contacts: [...]} or the legacy single-contact
// shorthand {phone, first_name}.
func (c *CampaignController) AddContacts(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var body struct {
		Contacts  []service.ContactInput `json:"contacts"`
		Phone     string                 `json:"phone"`
		FirstName *string                `json:"first_name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON"})
		return
	}

	contacts := body.Contacts
	if len(contacts) == 0 && body.Phone != "" {
		contacts = []service.ContactInput{{Phone: body.Phone, FirstName: body.FirstName}}
	}

	added, err := c.CampaignService.AddContacts(id, contacts)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"campaign_id": id, "added": added})
}

func (c *CampaignController) SendCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := c.CampaignService.SendCampaign(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (c *CampaignController) GetStats(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	stats, err := c.CampaignService.GetStats(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		CampaignID int `json:"campaign_id"`
		model.DeliveryStats
	}{id, *stats})
}

func (c *CampaignController) ListMessages(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	messages, err := c.CampaignService.ListRenderedMessages(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"campaign_id": id, "messages": messages})
}

func (c *CampaignController) ListDeliveries(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	deliveries, err := c.CampaignService.ListDeliveries(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"campaign_id": id, "deliveries": deliveries})
}

func campaignID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		return 0, appErrors.NewValidation("Invalid campaign id")
	}
	return id, nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError is the single funnel for every non-success response: tagged
// domain errors map to their status, anything else becomes a 500. The
// message surfaces verbatim either way.
func writeError(w http.ResponseWriter, err error) {
	var apiErr *appErrors.APIError
	if errors.As(err, &apiErr) {
		writeJSON(w, apiErr.Status, map[string]string{"error": apiErr.Message})
		return
	}
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
