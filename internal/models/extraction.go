package models

// Extraction is the best-effort partial record pulled out of a document or
// email by the model. Every field is optional; an unparseable reply yields
// the zero value (all nils), never an error surfaced to the form.
type Extraction struct {
	Company       *string    `json:"company,omitempty"`
	Name          *string    `json:"name,omitempty"`
	Email         *string    `json:"email,omitempty"`
	Phone         *string    `json:"phone,omitempty"`
	Value         *FlexFloat `json:"value,omitempty"`
	Notes         *string    `json:"notes,omitempty"`
	ContractStart *string    `json:"contract_start,omitempty"`
	ContractEnd   *string    `json:"contract_end,omitempty"`
}

// EmailExtraction adds the spam/newsletter gate: when ShouldCreateLead is
// false the webhook stores nothing.
type EmailExtraction struct {
	Extraction
	ShouldCreateLead bool `json:"should_create_lead"`
}
