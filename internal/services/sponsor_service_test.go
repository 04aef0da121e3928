package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sponsorcrm/internal/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func strp(s string) *string { return &s }

func floatp(f float64) *float64 { return &f }

func TestComputeContractHealthProgress(t *testing.T) {
	sp := &models.Sponsor{
		Status:        models.SponsorActive,
		ContractStart: day(2024, 1, 1),
		ContractEnd:   day(2025, 1, 1),
	}

	// exactly halfway through a leap year rounds to 50
	h := ComputeContractHealth(sp, day(2024, 7, 1))
	assert.Equal(t, 50, h.Progress)
	assert.Equal(t, 184, h.DaysLeft)
	assert.False(t, h.ExpiringSoon)
	assert.False(t, h.Expired)

	// before the start the bar stays empty
	h = ComputeContractHealth(sp, day(2023, 6, 1))
	assert.Equal(t, 0, h.Progress)

	// past the end the bar is pinned at 100
	h = ComputeContractHealth(sp, day(2025, 6, 1))
	assert.Equal(t, 100, h.Progress)
}

func TestComputeContractHealthZeroLengthContract(t *testing.T) {
	sp := &models.Sponsor{
		Status:        models.SponsorActive,
		ContractStart: day(2026, 1, 1),
		ContractEnd:   day(2026, 1, 1),
	}
	assert.Equal(t, 100, ComputeContractHealth(sp, day(2026, 1, 1)).Progress)
	assert.Equal(t, 0, ComputeContractHealth(sp, day(2025, 12, 1)).Progress)
}

func TestComputeContractHealthExpiry(t *testing.T) {
	today := day(2026, 8, 29)
	sp := &models.Sponsor{
		Status:        models.SponsorActive,
		ContractStart: day(2026, 1, 1),
		ContractEnd:   today.AddDate(0, 0, 30),
	}

	// the 30-day window is inclusive on both ends
	h := ComputeContractHealth(sp, today)
	assert.True(t, h.ExpiringSoon)
	assert.False(t, h.Expired)

	sp.ContractEnd = today.AddDate(0, 0, 31)
	assert.False(t, ComputeContractHealth(sp, today).ExpiringSoon)

	sp.ContractEnd = today
	assert.True(t, ComputeContractHealth(sp, today).ExpiringSoon)

	// an end date in the past reads as expired but never flips the status
	sp.ContractEnd = today.AddDate(0, 0, -1)
	h = ComputeContractHealth(sp, today)
	assert.True(t, h.Expired)
	assert.False(t, h.ExpiringSoon)
	assert.Equal(t, -1, h.DaysLeft)
	assert.Equal(t, models.SponsorActive, sp.Status)
}

func TestComputeContractHealthIgnoresInactiveStatuses(t *testing.T) {
	today := day(2026, 8, 29)
	sp := &models.Sponsor{
		Status:        models.SponsorRenewed,
		ContractStart: day(2026, 1, 1),
		ContractEnd:   today.AddDate(0, 0, -10),
	}
	h := ComputeContractHealth(sp, today)
	assert.False(t, h.Expired)
	assert.False(t, h.ExpiringSoon)
}

func TestBuildRenewalPayload(t *testing.T) {
	sp := &models.Sponsor{
		ID:    7,
		Value: floatp(50000),
		Contact: &models.Contact{
			Name:    "Jane Doe",
			Company: strp("Acme Corp"),
			Email:   strp("jane@acme.com"),
			Phone:   strp("+1 555 0100"),
		},
		MediaAssets: []string{"Tokenized", "Fintech Brainfood"},
	}

	now := time.Date(2026, 8, 29, 15, 42, 0, 0, time.UTC)
	p := BuildRenewalPayload(sp, now)

	require.NotNil(t, p.Name.Value)
	assert.Equal(t, "Jane Doe", *p.Name.Value)
	require.NotNil(t, p.Company.Value)
	assert.Equal(t, "Acme Corp", *p.Company.Value)
	require.NotNil(t, p.Stage.Value)
	assert.Equal(t, "new", *p.Stage.Value)
	require.NotNil(t, p.Source.Value)
	assert.Equal(t, "Renewal", *p.Source.Value)
	require.NotNil(t, p.Value.Value)
	assert.Equal(t, 50000.0, *p.Value.Value)
	require.NotNil(t, p.Notes.Value)
	assert.Equal(t, "Renewal from existing sponsorship ($50,000)", *p.Notes.Value)

	// follow-up lands at midnight three days out
	require.NotNil(t, p.NextFollowUp.Value)
	assert.Equal(t, day(2026, 9, 1), *p.NextFollowUp.Value)

	require.NotNil(t, p.MediaAssets)
	assert.Equal(t, sp.MediaAssets, *p.MediaAssets)
}

func TestBuildRenewalPayloadWithoutValue(t *testing.T) {
	sp := &models.Sponsor{
		Contact: &models.Contact{Name: "Acme Corp"},
	}
	p := BuildRenewalPayload(sp, day(2026, 8, 29))
	assert.False(t, p.Value.Set)
	require.NotNil(t, p.Notes.Value)
	assert.Equal(t, "Renewal from existing sponsorship", *p.Notes.Value)
}

func TestFormatUSD(t *testing.T) {
	assert.Equal(t, "$0", formatUSD(0))
	assert.Equal(t, "$999", formatUSD(999))
	assert.Equal(t, "$50,000", formatUSD(50000))
	assert.Equal(t, "$1,234,568", formatUSD(1234567.89))
	assert.Equal(t, "-$5,000", formatUSD(-5000))
}
