package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPayload(t *testing.T, raw string) map[string]interface{} {
	t.Helper()
	var p map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &p))
	return p
}

func TestParseEmailWebhookGeneric(t *testing.T) {
	email, shape := ParseEmailWebhook(mustPayload(t, `{
		"from": "jane@acme.com",
		"subject": "Sponsorship inquiry",
		"body": "We would like to sponsor your newsletter."
	}`))
	assert.Equal(t, "generic", shape)
	assert.Equal(t, "jane@acme.com", email.From)
	assert.Equal(t, "Sponsorship inquiry", email.Subject)
	assert.Equal(t, "We would like to sponsor your newsletter.", email.Body)
}

func TestParseEmailWebhookMailgun(t *testing.T) {
	// a payload with "sender" is claimed by the generic shape first
	email, shape := ParseEmailWebhook(mustPayload(t, `{
		"sender": "jane@acme.com",
		"subject": "Hello",
		"body-plain": "plain text body"
	}`))
	assert.Equal(t, "generic", shape)
	assert.Equal(t, "jane@acme.com", email.From)

	// without a sender the body-plain key routes to the mailgun shape
	email, shape = ParseEmailWebhook(mustPayload(t, `{
		"subject": "Hello",
		"body-plain": "plain text body",
		"stripped-text": "stripped"
	}`))
	assert.Equal(t, "mailgun", shape)
	assert.Equal(t, "plain text body", email.Body)
}

func TestParseEmailWebhookSendgrid(t *testing.T) {
	// envelope as a JSON string, the way sendgrid's inbound parse posts it
	email, shape := ParseEmailWebhook(mustPayload(t, `{
		"envelope": "{\"from\":\"jane@acme.com\",\"to\":[\"leads@example.com\"]}",
		"subject": "Inquiry",
		"text": "body text"
	}`))
	assert.Equal(t, "sendgrid", shape)
	assert.Equal(t, "jane@acme.com", email.From)
	assert.Equal(t, "body text", email.Body)

	// envelope pre-parsed into an object
	email, shape = ParseEmailWebhook(mustPayload(t, `{
		"envelope": {"from": "jane@acme.com"},
		"subject": "Inquiry",
		"html": "<p>hi</p>"
	}`))
	assert.Equal(t, "sendgrid", shape)
	assert.Equal(t, "jane@acme.com", email.From)
	assert.Equal(t, "<p>hi</p>", email.Body)
}

func TestParseEmailWebhookPostmark(t *testing.T) {
	email, shape := ParseEmailWebhook(mustPayload(t, `{
		"From": "Jane Doe <jane@acme.com>",
		"FromFull": {"Email": "jane@acme.com", "Name": "Jane Doe"},
		"Subject": "Inquiry",
		"TextBody": "body text"
	}`))
	assert.Equal(t, "postmark", shape)
	assert.Equal(t, "jane@acme.com", email.From)
	assert.Equal(t, "body text", email.Body)
}

func TestParseEmailWebhookFallback(t *testing.T) {
	email, shape := ParseEmailWebhook(mustPayload(t, `{
		"email": "jane@acme.com",
		"message": "free-form message"
	}`))
	assert.Equal(t, "fallback", shape)
	assert.Equal(t, "jane@acme.com", email.From)
	assert.Equal(t, "free-form message", email.Body)

	// totally unknown shapes keep the raw payload as the body so the model
	// still gets something to work with
	email, shape = ParseEmailWebhook(mustPayload(t, `{"weird": {"nested": true}}`))
	assert.Equal(t, "fallback", shape)
	assert.Contains(t, email.Body, `"nested":true`)
}
