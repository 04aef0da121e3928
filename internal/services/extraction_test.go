package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstJSONObject(t *testing.T) {
	assert.Equal(t, `{"a":1}`, firstJSONObject(`{"a":1}`))
	assert.Equal(t, `{"a":1}`, firstJSONObject("Here you go:\n```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":{"b":2}}`, firstJSONObject(`prefix {"a":{"b":2}} suffix`))

	// braces inside strings must not end the scan early
	assert.Equal(t, `{"notes":"use {curly} style"}`, firstJSONObject(`{"notes":"use {curly} style"}`))
	assert.Equal(t, `{"q":"she said \"}\""}`, firstJSONObject(`{"q":"she said \"}\""}`))

	assert.Equal(t, "", firstJSONObject("no json here"))
	assert.Equal(t, "", firstJSONObject(`{"unterminated":`))
}

func TestParseExtraction(t *testing.T) {
	got := ParseExtraction(`Sure! {"company":"Acme Corp","value":"$50,000","contract_start":"2026-01-01"}`)
	require.NotNil(t, got.Company)
	assert.Equal(t, "Acme Corp", *got.Company)
	require.NotNil(t, got.Value)
	assert.Equal(t, 50000.0, float64(*got.Value))
	require.NotNil(t, got.ContractStart)
	assert.Equal(t, "2026-01-01", *got.ContractStart)
}

func TestParseExtractionUnparseableIsEmpty(t *testing.T) {
	for _, reply := range []string{
		"I could not find any structured data in this document.",
		`{"value": not-json}`,
		"",
	} {
		got := ParseExtraction(reply)
		assert.Zero(t, got, reply)
	}
}

func TestSupportedDocument(t *testing.T) {
	assert.True(t, SupportedDocument("application/pdf", "contract.pdf"))
	assert.True(t, SupportedDocument("image/png", "scan.png"))
	assert.True(t, SupportedDocument("text/plain", "notes"))
	assert.True(t, SupportedDocument("application/octet-stream", "readme.md"))
	assert.True(t, SupportedDocument("", "notes.txt"))

	assert.False(t, SupportedDocument("application/zip", "archive.zip"))
	assert.False(t, SupportedDocument("application/msword", "contract.doc"))
}

func TestExtractionPromptSelection(t *testing.T) {
	assert.Contains(t, extractionPrompt("sponsor"), "CONTRACT VALUE")
	assert.Contains(t, extractionPrompt("lead"), "DEAL VALUE")
	// unknown form types fall back to the lead prompt
	assert.Contains(t, extractionPrompt(""), "DEAL VALUE")
}
