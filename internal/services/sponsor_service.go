package services

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"sponsorcrm/internal/models"
	"sponsorcrm/internal/repositories"
)

type SponsorService struct {
	Repo  *repositories.SponsorRepository
	Leads *LeadService
}

func NewSponsorService(repo *repositories.SponsorRepository, leads *LeadService) *SponsorService {
	return &SponsorService{Repo: repo, Leads: leads}
}

func (s *SponsorService) Create(p *models.SponsorPayload) (*models.SponsorWithHealth, error) {
	name := firstNonEmpty(p.Name.Value, p.Company.Value)
	if name == "" {
		return nil, invalid("name or company is required")
	}
	if p.ContractStart.Value == nil || p.ContractEnd.Value == nil {
		return nil, invalid("contract_start and contract_end are required")
	}
	if p.ContractEnd.Value.Before(*p.ContractStart.Value) {
		return nil, invalid("contract_end must not precede contract_start")
	}

	status := models.SponsorActive
	if p.Status.Value != nil && *p.Status.Value != "" {
		status = models.SponsorStatus(*p.Status.Value)
		if !status.IsValid() {
			return nil, invalid("unknown status")
		}
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
	}
	sponsor := &models.Sponsor{
		ContractStart: *p.ContractStart.Value,
		ContractEnd:   *p.ContractEnd.Value,
		Value:         p.Value.Value,
		Status:        status,
		Notes:         p.Notes.Value,
		MediaAssets:   assets,
	}
	if err := s.Repo.Create(sponsor, contact); err != nil {
		return nil, err
	}
	return withHealth(sponsor, startOfDay(time.Now())), nil
}

func (s *SponsorService) GetByID(id int64) (*models.SponsorWithHealth, error) {
	sponsor, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sponsor == nil {
		return nil, ErrNotFound
	}
	return withHealth(sponsor, startOfDay(time.Now())), nil
}

func (s *SponsorService) List(mediaAsset, search string) ([]*models.SponsorWithHealth, error) {
	sponsors, err := s.Repo.List(mediaAsset, search)
	if err != nil {
		return nil, err
	}
	today := startOfDay(time.Now())
	out := make([]*models.SponsorWithHealth, 0, len(sponsors))
	for _, sp := range sponsors {
		out = append(out, withHealth(sp, today))
	}
	return out, nil
}

func (s *SponsorService) Update(id int64, p *models.SponsorPayload) (*models.SponsorWithHealth, error) {
	current, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrNotFound
	}

	start, end := current.ContractStart, current.ContractEnd
	sponsorFields := map[string]interface{}{}
	// contract dates are NOT NULL; an empty value leaves them alone
	if p.ContractStart.Value != nil {
		start = *p.ContractStart.Value
		sponsorFields["contract_start"] = start
	}
	if p.ContractEnd.Value != nil {
		end = *p.ContractEnd.Value
		sponsorFields["contract_end"] = end
	}
	if end.Before(start) {
		return nil, invalid("contract_end must not precede contract_start")
	}
	if p.Status.Set {
		if p.Status.Value == nil || !models.SponsorStatus(*p.Status.Value).IsValid() {
			return nil, invalid("unknown status")
		}
		sponsorFields["status"] = *p.Status.Value
	}
	if p.Value.Set {
		sponsorFields["value"] = p.Value.Value
	}
	if p.Notes.Set {
		sponsorFields["notes"] = p.Notes.Value
	}
	if p.MediaAssets != nil {
		assets := *p.MediaAssets
		if len(assets) == 0 {
			assets = []string{models.DefaultMediaAsset}
		}
		sponsorFields["media_assets"] = assets
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

	if err := s.Repo.Update(id, sponsorFields, contactFields); err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

// Delete removes the sponsor together with the contact it owns.
func (s *SponsorService) Delete(id int64) error {
	sponsor, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if sponsor == nil {
		return ErrNotFound
	}
	return s.Repo.Delete(id)
}

// ConvertToLead opens a renewal lead from a sponsorship. The sponsor itself
// is left untouched.
func (s *SponsorService) ConvertToLead(id int64) (*models.Lead, error) {
	sponsor, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sponsor == nil {
		return nil, ErrNotFound
	}
	return s.Leads.Create(BuildRenewalPayload(sponsor, time.Now()))
}

// BuildRenewalPayload copies the sponsor's contact identity and value into a
// fresh lead payload: stage new, source Renewal, follow-up in three days.
func BuildRenewalPayload(sponsor *models.Sponsor, now time.Time) *models.LeadPayload {
	p := &models.LeadPayload{
		Name:         models.NewOptString(sponsor.Contact.Name),
		Stage:        models.NewOptString(string(models.StageNew)),
		Source:       models.NewOptString("Renewal"),
		NextFollowUp: models.NewOptDate(startOfDay(now).AddDate(0, 0, 3)),
	}
	if sponsor.Contact.Company != nil {
		p.Company = models.NewOptString(*sponsor.Contact.Company)
	}
	if sponsor.Contact.Email != nil {
		p.Email = models.NewOptString(*sponsor.Contact.Email)
	}
	if sponsor.Contact.Phone != nil {
		p.Phone = models.NewOptString(*sponsor.Contact.Phone)
	}
	note := "Renewal from existing sponsorship"
	if sponsor.Value != nil {
		p.Value = models.NewOptFloat(*sponsor.Value)
		note = fmt.Sprintf("Renewal from existing sponsorship (%s)", formatUSD(*sponsor.Value))
	}
	p.Notes = models.NewOptString(note)
	if len(sponsor.MediaAssets) > 0 {
		assets := append([]string(nil), sponsor.MediaAssets...)
		p.MediaAssets = &assets
	}
	return p
}

// ComputeContractHealth derives the presentation fields for a contract given
// "today" at local midnight. Progress is elapsed/total days clamped to
// 0..100; expired stays a display-time judgment, status is never flipped.
func ComputeContractHealth(sponsor *models.Sponsor, today time.Time) models.ContractHealth {
	const day = 24 * time.Hour
	total := sponsor.ContractEnd.Sub(sponsor.ContractStart)
	elapsed := today.Sub(sponsor.ContractStart)

	var progress int
	switch {
	case total <= 0:
		if elapsed >= 0 {
			progress = 100
		}
	default:
		progress = int(math.Round(float64(elapsed) / float64(total) * 100))
		if progress < 0 {
			progress = 0
		}
		if progress > 100 {
			progress = 100
		}
	}

	active := sponsor.Status == models.SponsorActive
	end := sponsor.ContractEnd
	return models.ContractHealth{
		Progress:     progress,
		DaysLeft:     int(end.Sub(today) / day),
		ExpiringSoon: active && !end.Before(today) && !end.After(today.AddDate(0, 0, 30)),
		Expired:      active && end.Before(today),
	}
}

func withHealth(sponsor *models.Sponsor, today time.Time) *models.SponsorWithHealth {
	return &models.SponsorWithHealth{
		Sponsor:        sponsor,
		ContractHealth: ComputeContractHealth(sponsor, today),
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// formatUSD renders a whole-dollar amount the way the renewal note shows it,
// e.g. 50000 -> "$50,000".
func formatUSD(v float64) string {
	n := int64(math.Round(math.Abs(v)))
	digits := strconv.FormatInt(n, 10)
	var out []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, d)
	}
	sign := ""
	if v < 0 {
		sign = "-"
	}
	return sign + "$" + string(out)
}
