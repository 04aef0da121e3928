package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"sponsorcrm/internal/metrics"
	"sponsorcrm/internal/models"
)

// DocumentExtractor pulls form fields out of an uploaded file.
type DocumentExtractor interface {
	ExtractDocument(ctx context.Context, data []byte, mimeType, filename, formType string) (models.Extraction, error)
}

// EmailExtractor pulls lead fields and the create/skip decision out of a
// forwarded email.
type EmailExtractor interface {
	ExtractEmail(ctx context.Context, from, subject, body string) (models.EmailExtraction, error)
}

// GeminiExtractor implements both extractors with a single round-trip to a
// hosted vision-capable model. There is no retry and no schema enforcement
// beyond finding one JSON object in the reply.
type GeminiExtractor struct {
	client *genai.Client
	model  string
}

func NewGeminiExtractor(ctx context.Context, apiKey, model string) (*GeminiExtractor, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("extraction API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &GeminiExtractor{client: client, model: model}, nil
}

const sponsorPrompt = `You are extracting data from a business contract, invoice, or statement of work.

Look carefully for:
- COMPANY NAME: Look for the client/customer name, "Bill To", "Client:", company letterhead, or the party entering the agreement. This is NOT your company - it's the other party.
- CONTRACT VALUE: Look for total amount, contract value, payment terms, pricing, fees, "Total:", dollar amounts. Extract as a number only (no $ or commas).
- DATES: Start date, effective date, end date, expiration date, term length.
- EMAIL: Any email addresses mentioned.

Return ONLY this JSON (use null if not found):
{
  "company": "the client/customer company name",
  "email": "contact email if found",
  "contract_start": "YYYY-MM-DD format",
  "contract_end": "YYYY-MM-DD format",
  "value": 50000,
  "notes": "one line summary of scope/services"
}

Return only valid JSON, nothing else.`

const leadPrompt = `You are extracting data from a business document (proposal, email, SOW, etc).

Look carefully for:
- COMPANY NAME: The prospect/lead company name - look for letterhead, signatures, "From:", company mentions. This is the potential customer.
- DEAL VALUE: Any pricing, budget, contract amount, or quoted figures. Extract as a number only (no $ or commas).
- EMAIL: Contact email addresses.

Return ONLY this JSON (use null if not found):
{
  "company": "the prospect company name",
  "email": "contact email if found",
  "value": 25000,
  "notes": "brief summary of their interest/needs"
}

Return only valid JSON, nothing else.`

const emailPrompt = `You are extracting lead information from a forwarded business email.

Email Details:
- From: %s
- Subject: %s
- Body:
%s

Extract the following information about the SENDER (the potential lead/prospect). Return ONLY this JSON:
{
  "company": "their company name (look for email domain, signature, or mentions)",
  "name": "contact person's name if mentioned",
  "email": "their email address",
  "phone": "phone number if mentioned",
  "value": estimated deal value as number if any amounts mentioned (null if not),
  "notes": "brief summary of what they want or are asking about",
  "should_create_lead": true or false (false if it's spam, newsletter, or not a business inquiry)
}

Return only valid JSON, nothing else.`

func extractionPrompt(formType string) string {
	if formType == "sponsor" {
		return sponsorPrompt
	}
	return leadPrompt
}

// SupportedDocument reports whether the upload can be sent to the model at
// all. Anything else is rejected before a model call is made.
func SupportedDocument(mimeType, filename string) bool {
	switch {
	case mimeType == "application/pdf":
		return true
	case strings.HasPrefix(mimeType, "image/"):
		return true
	case strings.HasPrefix(mimeType, "text/"):
		return true
	case strings.HasSuffix(filename, ".txt"), strings.HasSuffix(filename, ".md"):
		return true
	}
	return false
}

func (e *GeminiExtractor) ExtractDocument(ctx context.Context, data []byte, mimeType, filename, formType string) (models.Extraction, error) {
	if !SupportedDocument(mimeType, filename) {
		return models.Extraction{}, ErrUnsupportedFile
	}

	prompt := extractionPrompt(formType)
	var parts []*genai.Part
	if mimeType == "application/pdf" || strings.HasPrefix(mimeType, "image/") {
		parts = []*genai.Part{
			genai.NewPartFromBytes(data, mimeType),
			genai.NewPartFromText(prompt),
		}
	} else {
		// plain text and markdown are inlined into the prompt
		parts = []*genai.Part{
			genai.NewPartFromText(prompt + "\n\nDocument content:\n" + string(data)),
		}
	}

	resp, err := e.client.Models.GenerateContent(ctx, e.model,
		[]*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}, nil)
	if err != nil {
		metrics.ObserveExtraction("document", "error")
		return models.Extraction{}, fmt.Errorf("model call failed: %w", err)
	}

	// An unparseable reply is not an error: the form just stays blank.
	extraction := ParseExtraction(resp.Text())
	if extraction == (models.Extraction{}) {
		metrics.ObserveExtraction("document", "empty")
	} else {
		metrics.ObserveExtraction("document", "ok")
	}
	return extraction, nil
}

func (e *GeminiExtractor) ExtractEmail(ctx context.Context, from, subject, body string) (models.EmailExtraction, error) {
	if from == "" {
		from = "Unknown"
	}
	if subject == "" {
		subject = "No subject"
	}
	prompt := fmt.Sprintf(emailPrompt, from, subject, body)

	resp, err := e.client.Models.GenerateContent(ctx, e.model,
		[]*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}, nil)
	if err != nil {
		metrics.ObserveExtraction("email", "error")
		return models.EmailExtraction{}, fmt.Errorf("model call failed: %w", err)
	}

	raw := firstJSONObject(resp.Text())
	if raw == "" {
		// nothing parseable: treat as "do not create a lead"
		metrics.ObserveExtraction("email", "empty")
		return models.EmailExtraction{}, nil
	}
	var out models.EmailExtraction
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		metrics.ObserveExtraction("email", "error")
		return models.EmailExtraction{}, ErrUnparseableReply
	}
	metrics.ObserveExtraction("email", "ok")
	return out, nil
}

// ParseExtraction finds the first balanced {...} region of a model reply and
// decodes it loosely. Anything that fails to parse yields an empty extraction.
func ParseExtraction(text string) models.Extraction {
	raw := firstJSONObject(text)
	if raw == "" {
		return models.Extraction{}
	}
	var out models.Extraction
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return models.Extraction{}
	}
	return out
}

// firstJSONObject returns the first balanced top-level {...} region in s, or
// "" when none exists. Braces inside JSON strings are ignored.
func firstJSONObject(s string) string {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return ""
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
