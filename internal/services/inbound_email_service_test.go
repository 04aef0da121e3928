package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sponsorcrm/internal/models"
)

type stubEmailExtractor struct {
	result models.EmailExtraction
	err    error
}

func (s *stubEmailExtractor) ExtractEmail(_ context.Context, _, _, _ string) (models.EmailExtraction, error) {
	return s.result, s.err
}

type recordingLeadCreator struct {
	payloads []*models.LeadPayload
	lead     *models.Lead
	err      error
}

func (r *recordingLeadCreator) Create(p *models.LeadPayload) (*models.Lead, error) {
	r.payloads = append(r.payloads, p)
	return r.lead, r.err
}

func businessExtraction() models.EmailExtraction {
	return models.EmailExtraction{
		Extraction: models.Extraction{
			Company: strp("Acme Corp"),
			Name:    strp("Jane Doe"),
			Email:   strp("jane@acme.com"),
		},
		ShouldCreateLead: true,
	}
}

func TestProcessCreatesLeadFromBusinessInquiry(t *testing.T) {
	creator := &recordingLeadCreator{
		lead: &models.Lead{
			ID:      42,
			Contact: &models.Contact{Name: "Jane Doe", Company: strp("Acme Corp"), Email: strp("jane@acme.com")},
		},
	}
	svc := NewInboundEmailService(&stubEmailExtractor{result: businessExtraction()}, creator, nil)

	result, err := svc.Process(context.Background(), map[string]interface{}{
		"from":    "jane@acme.com",
		"subject": "Sponsorship inquiry",
		"body":    "We want to sponsor the newsletter.",
	})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "Lead created from email", result.Message)
	require.NotNil(t, result.Lead)
	assert.Equal(t, int64(42), result.Lead.ID)

	require.Len(t, creator.payloads, 1)
	p := creator.payloads[0]
	assert.Equal(t, "new", *p.Stage.Value)
	assert.Equal(t, "Email", *p.Source.Value)
	assert.Equal(t, "Jane Doe", *p.Name.Value)
	assert.Equal(t, "jane@acme.com", *p.Email.Value)
	assert.Equal(t, "Inbound email: Sponsorship inquiry", *p.FollowUpNotes.Value)
}

func TestProcessSkipsNonBusinessEmail(t *testing.T) {
	creator := &recordingLeadCreator{}
	svc := NewInboundEmailService(&stubEmailExtractor{result: models.EmailExtraction{}}, creator, nil)

	result, err := svc.Process(context.Background(), map[string]interface{}{
		"from": "noreply@newsletter.example",
		"body": "This week in crypto...",
	})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Email processed but no lead created (not a business inquiry)", result.Message)
	assert.Nil(t, result.Lead)
	assert.Empty(t, creator.payloads)
}

func TestProcessRejectsEmptyBody(t *testing.T) {
	svc := NewInboundEmailService(&stubEmailExtractor{}, &recordingLeadCreator{}, nil)
	_, err := svc.Process(context.Background(), map[string]interface{}{"from": "jane@acme.com"})
	assert.ErrorIs(t, err, ErrNoEmailContent)
}

func TestProcessPropagatesExtractorErrors(t *testing.T) {
	boom := errors.New("model call failed")
	svc := NewInboundEmailService(&stubEmailExtractor{err: boom}, &recordingLeadCreator{}, nil)
	_, err := svc.Process(context.Background(), map[string]interface{}{"from": "a@b.c", "body": "hi"})
	assert.ErrorIs(t, err, boom)
}

func TestBuildInboundPayloadDefaults(t *testing.T) {
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	extracted := businessExtraction()
	p := buildInboundPayload(map[string]interface{}{}, InboundEmail{From: "jane@acme.com", Subject: "Hi"}, &extracted, now)

	assert.Equal(t, 50, *p.Probability.Value)
	assert.Equal(t, now.AddDate(0, 0, 3), *p.NextFollowUp.Value)
	require.NotNil(t, p.MediaAssets)
	assert.Equal(t, []string{models.DefaultMediaAsset}, *p.MediaAssets)
}

func TestBuildInboundPayloadNameFallbackChain(t *testing.T) {
	now := time.Now()
	email := InboundEmail{From: "jane@acme.com"}

	ext := models.EmailExtraction{Extraction: models.Extraction{Company: strp("Acme Corp")}}
	p := buildInboundPayload(nil, email, &ext, now)
	assert.Equal(t, "Acme Corp", *p.Name.Value)

	ext = models.EmailExtraction{}
	p = buildInboundPayload(nil, email, &ext, now)
	assert.Equal(t, "jane@acme.com", *p.Name.Value)
	// the sender address doubles as the contact email when none was extracted
	assert.Equal(t, "jane@acme.com", *p.Email.Value)

	p = buildInboundPayload(nil, InboundEmail{}, &ext, now)
	assert.Equal(t, "Unknown", *p.Name.Value)
	assert.Equal(t, "Inbound email: No subject", *p.FollowUpNotes.Value)
}

func TestWebhookMediaAssets(t *testing.T) {
	assert.Equal(t, []string{"Tokenized"}, webhookMediaAssets(map[string]interface{}{}))

	assert.Equal(t, []string{"Sporting Crypto"}, webhookMediaAssets(map[string]interface{}{
		"media_asset": "Sporting Crypto",
	}))

	assert.Equal(t, []string{"Fintech Brainfood", "Tokenized"}, webhookMediaAssets(map[string]interface{}{
		"mediaAssets": []interface{}{"Fintech Brainfood", "Tokenized"},
	}))

	// empty arrays fall through to the default
	assert.Equal(t, []string{"Tokenized"}, webhookMediaAssets(map[string]interface{}{
		"media_assets": []interface{}{},
	}))
}
