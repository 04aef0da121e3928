package models

// LeadPayload is the flat request body for creating or patching a lead. It
// whitelists both lead fields and contact-owned identity fields; anything
// outside this set is rejected at decode time.
type LeadPayload struct {
	// contact-owned
	Name    OptString `json:"name"`
	Company OptString `json:"company"`
	Email   OptString `json:"email"`
	Phone   OptString `json:"phone"`
	Notes   OptString `json:"notes"`

	// lead-owned
	Stage         OptString `json:"stage"`
	Value         OptFloat  `json:"value"`
	Probability   OptInt    `json:"probability"`
	NextFollowUp  OptDate   `json:"next_follow_up"`
	FollowUpNotes OptString `json:"follow_up_notes"`
	Source        OptString `json:"source"`
	HoldReason    OptString `json:"hold_reason"`
	MediaAssets   *[]string `json:"media_assets"`
}

// HasContactFields reports whether the payload touches any contact column,
// in which case a nested contact update is issued.
func (p *LeadPayload) HasContactFields() bool {
	return p.Name.Set || p.Company.Set || p.Email.Set || p.Phone.Set || p.Notes.Set
}

// SponsorPayload is the flat request body for creating or patching a sponsor.
type SponsorPayload struct {
	// contact-owned
	Name    OptString `json:"name"`
	Company OptString `json:"company"`
	Email   OptString `json:"email"`
	Phone   OptString `json:"phone"`

	// sponsor-owned; unlike leads, notes live on the sponsor itself
	Notes         OptString `json:"notes"`
	ContractStart OptDate   `json:"contract_start"`
	ContractEnd   OptDate   `json:"contract_end"`
	Value         OptFloat  `json:"value"`
	Status        OptString `json:"status"`
	MediaAssets   *[]string `json:"media_assets"`
}

func (p *SponsorPayload) HasContactFields() bool {
	return p.Name.Set || p.Company.Set || p.Email.Set || p.Phone.Set
}
