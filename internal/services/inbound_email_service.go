package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"sponsorcrm/internal/logger"
	"sponsorcrm/internal/models"
)

// LeadCreator is the slice of LeadService the webhook needs.
type LeadCreator interface {
	Create(p *models.LeadPayload) (*models.Lead, error)
}

type InboundEmailService struct {
	Extractor EmailExtractor
	Leads     LeadCreator
	Notifier  *Notifier
}

func NewInboundEmailService(extractor EmailExtractor, leads LeadCreator, notifier *Notifier) *InboundEmailService {
	return &InboundEmailService{Extractor: extractor, Leads: leads, Notifier: notifier}
}

// InboundLeadRef is the abbreviated lead reference returned to the webhook
// caller.
type InboundLeadRef struct {
	ID      int64   `json:"id"`
	Company *string `json:"company"`
	Email   *string `json:"email"`
}

type InboundResult struct {
	Success   bool                    `json:"success,omitempty"`
	Message   string                  `json:"message"`
	Extracted *models.EmailExtraction `json:"extracted,omitempty"`
	Lead      *InboundLeadRef         `json:"lead,omitempty"`
}

// Process normalizes the webhook payload, runs the model extraction and,
// when the extraction says the mail is a real business inquiry, persists a
// lead. A negative decision stores nothing.
func (s *InboundEmailService) Process(ctx context.Context, payload map[string]interface{}) (*InboundResult, error) {
	email, shape := ParseEmailWebhook(payload)
	if email.Body == "" {
		return nil, ErrNoEmailContent
	}
	logger.L().Debug("inbound email accepted",
		zap.String("shape", shape),
		zap.String("from", email.From),
	)

	extracted, err := s.Extractor.ExtractEmail(ctx, email.From, email.Subject, email.Body)
	if err != nil {
		return nil, err
	}
	if !extracted.ShouldCreateLead {
		return &InboundResult{
			Message:   "Email processed but no lead created (not a business inquiry)",
			Extracted: &extracted,
		}, nil
	}

	lead, err := s.Leads.Create(buildInboundPayload(payload, email, &extracted, time.Now()))
	if err != nil {
		return nil, err
	}

	// best-effort notification; the webhook response does not wait for it
	go s.Notifier.LeadCreated(lead, "inbound email")

	return &InboundResult{
		Success: true,
		Message: "Lead created from email",
		Lead: &InboundLeadRef{
			ID:      lead.ID,
			Company: lead.Contact.Company,
			Email:   lead.Contact.Email,
		},
	}, nil
}

// buildInboundPayload maps the extraction onto a lead payload with the
// email-specific defaults: source Email, follow-up in three days, subject in
// the follow-up notes.
func buildInboundPayload(payload map[string]interface{}, email InboundEmail, extracted *models.EmailExtraction, now time.Time) *models.LeadPayload {
	subject := email.Subject
	if subject == "" {
		subject = "No subject"
	}

	p := &models.LeadPayload{
		Stage:         models.NewOptString(string(models.StageNew)),
		Probability:   models.NewOptInt(defaultProbability),
		Source:        models.NewOptString("Email"),
		NextFollowUp:  models.NewOptDate(now.AddDate(0, 0, 3)),
		FollowUpNotes: models.NewOptString("Inbound email: " + subject),
	}

	name := "Unknown"
	switch {
	case extracted.Name != nil && *extracted.Name != "":
		name = *extracted.Name
	case extracted.Company != nil && *extracted.Company != "":
		name = *extracted.Company
	case email.From != "":
		name = email.From
	}
	p.Name = models.NewOptString(name)

	if extracted.Company != nil {
		p.Company = models.NewOptString(*extracted.Company)
	}
	switch {
	case extracted.Email != nil && *extracted.Email != "":
		p.Email = models.NewOptString(*extracted.Email)
	case email.From != "":
		p.Email = models.NewOptString(email.From)
	}
	if extracted.Phone != nil {
		p.Phone = models.NewOptString(*extracted.Phone)
	}
	if extracted.Notes != nil {
		p.Notes = models.NewOptString(*extracted.Notes)
	}
	if extracted.Value != nil {
		p.Value = models.NewOptFloat(float64(*extracted.Value))
	}

	assets := webhookMediaAssets(payload)
	p.MediaAssets = &assets
	return p
}

// webhookMediaAssets lets the forwarding integration tag the lead; absent or
// empty tags fall back to the default asset.
func webhookMediaAssets(payload map[string]interface{}) []string {
	for _, key := range []string{"media_assets", "mediaAssets"} {
		if raw, ok := payload[key].([]interface{}); ok {
			var assets []string
			for _, v := range raw {
				if s, ok := v.(string); ok && s != "" {
					assets = append(assets, s)
				}
			}
			if len(assets) > 0 {
				return assets
			}
		}
	}
	if s := stringField(payload, "media_asset", "mediaAsset"); s != "" {
		return []string{s}
	}
	return []string{models.DefaultMediaAsset}
}
