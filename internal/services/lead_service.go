package services

import (
	"sponsorcrm/internal/models"
	"sponsorcrm/internal/repositories"
)

type LeadService struct {
	Repo *repositories.LeadRepository
}

func NewLeadService(repo *repositories.LeadRepository) *LeadService {
	return &LeadService{Repo: repo}
}

const defaultProbability = 50

// Create builds the contact and the lead from a flat payload and stores both.
func (s *LeadService) Create(p *models.LeadPayload) (*models.Lead, error) {
	name := firstNonEmpty(p.Name.Value, p.Company.Value)
	if name == "" {
		return nil, invalid("name or company is required")
	}

	stage := models.StageNew
	if p.Stage.Value != nil && *p.Stage.Value != "" {
		stage = models.Stage(*p.Stage.Value)
		if !stage.IsValid() {
			return nil, invalid("unknown stage")
		}
	}

	probability := defaultProbability
	if p.Probability.Value != nil {
		probability = *p.Probability.Value
	}

	assets := []string{models.DefaultMediaAsset}
	if p.MediaAssets != nil && len(*p.MediaAssets) > 0 {
		assets = *p.MediaAssets
	}

	contact := &models.Contact{
		Name:    name,
		Company: p.Company.Value,
		Email:   p.Email.Value,
		Phone:   p.Phone.Value,
		Notes:   p.Notes.Value,
	}
	lead := &models.Lead{
		Stage:         stage,
		Value:         p.Value.Value,
		Probability:   &probability,
		NextFollowUp:  p.NextFollowUp.Value,
		FollowUpNotes: p.FollowUpNotes.Value,
		Source:        p.Source.Value,
		HoldReason:    p.HoldReason.Value,
		MediaAssets:   assets,
	}
	if err := s.Repo.Create(lead, contact); err != nil {
		return nil, err
	}
	return lead, nil
}

func (s *LeadService) GetByID(id int64) (*models.Lead, error) {
	lead, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, ErrNotFound
	}
	return lead, nil
}

func (s *LeadService) List(mediaAsset, search string) ([]*models.Lead, error) {
	return s.Repo.List(mediaAsset, search)
}

// Update applies a partial patch: only keys present in the request are
// touched; contact-owned keys go to the contact row.
func (s *LeadService) Update(id int64, p *models.LeadPayload) (*models.Lead, error) {
	if _, err := s.GetByID(id); err != nil {
		return nil, err
	}

	leadFields := map[string]interface{}{}
	if p.Stage.Set {
		if p.Stage.Value == nil || !models.Stage(*p.Stage.Value).IsValid() {
			return nil, invalid("unknown stage")
		}
		leadFields["stage"] = *p.Stage.Value
	}
	if p.Value.Set {
		leadFields["value"] = p.Value.Value
	}
	if p.Probability.Set {
		leadFields["probability"] = p.Probability.Value
	}
	if p.NextFollowUp.Set {
		leadFields["next_follow_up"] = p.NextFollowUp.Value
	}
	if p.FollowUpNotes.Set {
		leadFields["follow_up_notes"] = p.FollowUpNotes.Value
	}
	if p.Source.Set {
		leadFields["source"] = p.Source.Value
	}
	if p.HoldReason.Set {
		leadFields["hold_reason"] = p.HoldReason.Value
	}
	if p.MediaAssets != nil {
		assets := *p.MediaAssets
		if len(assets) == 0 {
			assets = []string{models.DefaultMediaAsset}
		}
		leadFields["media_assets"] = assets
	}

	contactFields := map[string]interface{}{}
	if p.Name.Set && p.Name.Value != nil && *p.Name.Value != "" {
		contactFields["name"] = *p.Name.Value
	}
	if p.Company.Set {
		contactFields["company"] = p.Company.Value
	}
	if p.Email.Set {
		contactFields["email"] = p.Email.Value
	}
	if p.Phone.Set {
		contactFields["phone"] = p.Phone.Value
	}
	if p.Notes.Set {
		contactFields["notes"] = p.Notes.Value
	}

	if err := s.Repo.Update(id, leadFields, contactFields); err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

// Delete removes the lead together with the contact it owns.
func (s *LeadService) Delete(id int64) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}

// Board partitions the filtered leads into kanban columns.
func (s *LeadService) Board(mediaAsset string) ([]models.BoardColumn, error) {
	leads, err := s.Repo.List(mediaAsset, "")
	if err != nil {
		return nil, err
	}
	return BuildBoard(leads), nil
}

// BuildBoard groups leads by exact stage match, in stage order. Column totals
// treat missing values as 0, unlike the dashboard pipeline value which skips
// them; the two aggregates intentionally stay separate code paths.
func BuildBoard(leads []*models.Lead) []models.BoardColumn {
	cols := make([]models.BoardColumn, 0, len(models.Stages))
	for _, stage := range models.Stages {
		col := models.BoardColumn{
			Stage:  stage,
			Label:  models.StageLabels[stage],
			Active: !stage.IsTerminal(),
			Leads:  []*models.Lead{},
		}
		for _, l := range leads {
			if l.Stage != stage {
				continue
			}
			col.Leads = append(col.Leads, l)
			if l.Value != nil {
				col.TotalValue += *l.Value
			}
		}
		cols = append(cols, col)
	}
	return cols
}

func firstNonEmpty(values ...*string) string {
	for _, v := range values {
		if v != nil && *v != "" {
			return *v
		}
	}
	return ""
}
