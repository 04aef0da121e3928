package models

// Stats are the dashboard aggregates. All lead counts exclude the terminal
// stages; pipeline_value is a SQL SUM, so leads with no value are skipped
// rather than counted as 0.
type Stats struct {
	TotalLeads           int     `json:"total_leads"`
	ActiveSponsors       int     `json:"active_sponsors"`
	LeadsNeedingFollowUp int     `json:"leads_needing_follow_up"`
	OverdueLeads         int     `json:"overdue_leads"`
	ExpiringSoon         int     `json:"expiring_soon"`
	PipelineValue        float64 `json:"pipeline_value"`
}
