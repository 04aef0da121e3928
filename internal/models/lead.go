package models

import "time"

// Stage is one of the ordered pipeline states a lead occupies.
type Stage string

const (
	StageNew         Stage = "new"
	StageContacted   Stage = "contacted"
	StageMeeting     Stage = "meeting"
	StageProposal    Stage = "proposal"
	StageNegotiation Stage = "negotiation"
	StageOnHold      Stage = "on_hold"
	StageWon         Stage = "won"
	StageLost        Stage = "lost"
)

// Stages in board order. on_hold/won/lost render as side columns, the rest
// are the active pipeline.
var Stages = []Stage{
	StageNew,
	StageContacted,
	StageMeeting,
	StageProposal,
	StageNegotiation,
	StageOnHold,
	StageWon,
	StageLost,
}

// StageLabels maps stage ids to display labels.
var StageLabels = map[Stage]string{
	StageNew:         "New",
	StageContacted:   "Contacted",
	StageMeeting:     "Meeting",
	StageProposal:    "Proposal",
	StageNegotiation: "Negotiation",
	StageOnHold:      "On Hold",
	StageWon:         "Won",
	StageLost:        "Lost",
}

// TerminalStages are excluded from all "active pipeline" aggregates.
var TerminalStages = []Stage{StageWon, StageLost, StageOnHold}

// IsValid reports whether s is a known stage id.
func (s Stage) IsValid() bool {
	_, ok := StageLabels[s]
	return ok
}

// IsTerminal reports whether s is won, lost or on_hold.
func (s Stage) IsTerminal() bool {
	return s == StageWon || s == StageLost || s == StageOnHold
}

// ActiveStages returns the ordered stage set minus the terminal ones.
func ActiveStages() []Stage {
	out := make([]Stage, 0, len(Stages))
	for _, s := range Stages {
		if !s.IsTerminal() {
			out = append(out, s)
		}
	}
	return out
}

// DefaultMediaAsset is applied whenever a record is created without tags.
const DefaultMediaAsset = "Tokenized"

// Lead is a prospective sponsorship deal tracked through pipeline stages.
type Lead struct {
	ID            int64      `json:"id"`
	ContactID     int64      `json:"contact_id"`
	Contact       *Contact   `json:"contact"`
	Stage         Stage      `json:"stage"`
	Value         *float64   `json:"value"`
	Probability   *int       `json:"probability"`
	NextFollowUp  *time.Time `json:"next_follow_up"`
	FollowUpNotes *string    `json:"follow_up_notes"`
	Source        *string    `json:"source"`
	HoldReason    *string    `json:"hold_reason"` // meaningful only when stage = on_hold
	MediaAssets   []string   `json:"media_assets"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// BoardColumn is one kanban column: every lead with an exact stage match
// plus the column value total (nil values count as 0 here, unlike the
// dashboard pipeline value).
type BoardColumn struct {
	Stage      Stage   `json:"stage"`
	Label      string  `json:"label"`
	Active     bool    `json:"active"`
	Leads      []*Lead `json:"leads"`
	TotalValue float64 `json:"total_value"`
}
