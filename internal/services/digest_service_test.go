package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"sponsorcrm/internal/models"
)

func namedLead(name string, company *string, followUp *time.Time) *models.Lead {
	return &models.Lead{
		Contact:      &models.Contact{Name: name, Company: company},
		NextFollowUp: followUp,
	}
}

func TestDigestBody(t *testing.T) {
	due := day(2026, 8, 29)
	overdueAt := day(2026, 8, 25)

	body := digestBody(
		[]*models.Lead{namedLead("Jane Doe", strp("Acme <Corp>"), &due)},
		[]*models.Lead{namedLead("Bob", nil, &overdueAt)},
	)

	assert.Contains(t, body, "<h3>Due today (1)</h3>")
	assert.Contains(t, body, "<h3>Overdue (1)</h3>")
	assert.Contains(t, body, "follow up 2026-08-29")
	assert.Contains(t, body, "follow up 2026-08-25")
	// names are escaped before being embedded in the HTML body
	assert.Contains(t, body, "Acme &lt;Corp&gt;")
	assert.NotContains(t, body, "Acme <Corp>")
}

func TestDigestBodySkipsEmptySections(t *testing.T) {
	due := day(2026, 8, 29)
	body := digestBody([]*models.Lead{namedLead("Jane", nil, &due)}, nil)
	assert.Contains(t, body, "Due today")
	assert.NotContains(t, body, "Overdue")
}
