package models

import "time"

// SponsorStatus defines the possible statuses of a sponsorship contract.
type SponsorStatus string

const (
	SponsorActive  SponsorStatus = "active"
	SponsorExpired SponsorStatus = "expired"
	SponsorRenewed SponsorStatus = "renewed"
)

// IsValid reports whether s is a known sponsor status.
func (s SponsorStatus) IsValid() bool {
	return s == SponsorActive || s == SponsorExpired || s == SponsorRenewed
}

// Sponsor is an active or past sponsorship contract with a bounded term.
type Sponsor struct {
	ID            int64         `json:"id"`
	ContactID     int64         `json:"contact_id"`
	Contact       *Contact      `json:"contact"`
	ContractStart time.Time     `json:"contract_start"`
	ContractEnd   time.Time     `json:"contract_end"`
	Value         *float64      `json:"value"`
	Status        SponsorStatus `json:"status"`
	Notes         *string       `json:"notes"`
	MediaAssets   []string      `json:"media_assets"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// ContractHealth carries the presentation-derived contract fields. Status is
// never auto-transitioned when the end date passes; Expired is a display-time
// judgment only.
type ContractHealth struct {
	Progress     int  `json:"progress"` // clamped 0..100
	DaysLeft     int  `json:"days_left"`
	ExpiringSoon bool `json:"expiring_soon"` // contract_end within [today, today+30d]
	Expired      bool `json:"expired"`       // status active but contract_end already passed
}

// SponsorWithHealth is the list/read representation of a sponsor.
type SponsorWithHealth struct {
	*Sponsor
	ContractHealth
}
