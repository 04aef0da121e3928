package services

import (
	"time"

	"sponsorcrm/internal/models"
	"sponsorcrm/internal/repositories"
)

type StatsService struct {
	LeadRepo    *repositories.LeadRepository
	SponsorRepo *repositories.SponsorRepository
}

func NewStatsService(leadRepo *repositories.LeadRepository, sponsorRepo *repositories.SponsorRepository) *StatsService {
	return &StatsService{LeadRepo: leadRepo, SponsorRepo: sponsorRepo}
}

// Get computes the six dashboard aggregates. Day boundaries use the server's
// local midnight; follow-ups due today are [today, tomorrow), overdue is
// strictly before today, expiring is [today, today+30d] inclusive.
func (s *StatsService) Get(mediaAsset string) (*models.Stats, error) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	tomorrow := today.AddDate(0, 0, 1)
	thirtyDaysOut := today.AddDate(0, 0, 30)

	stats := &models.Stats{}
	var err error

	if stats.TotalLeads, err = s.LeadRepo.CountActive(mediaAsset); err != nil {
		return nil, err
	}
	if stats.ActiveSponsors, err = s.SponsorRepo.CountActive(mediaAsset); err != nil {
		return nil, err
	}
	if stats.LeadsNeedingFollowUp, err = s.LeadRepo.CountFollowUpsBetween(mediaAsset, today, tomorrow); err != nil {
		return nil, err
	}
	if stats.OverdueLeads, err = s.LeadRepo.CountOverdue(mediaAsset, today); err != nil {
		return nil, err
	}
	if stats.ExpiringSoon, err = s.SponsorRepo.CountExpiring(mediaAsset, today, thirtyDaysOut); err != nil {
		return nil, err
	}
	if stats.PipelineValue, err = s.LeadRepo.SumPipelineValue(mediaAsset); err != nil {
		return nil, err
	}
	return stats, nil
}
