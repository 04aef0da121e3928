package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"sponsorcrm/internal/models"
)

// Generator renders the exportable reports. Kept as an interface so handlers
// can be tested with a stub.
type Generator interface {
	PipelineReport(data PipelineReportData) ([]byte, error)
	ContractSummary(data ContractSummaryData) ([]byte, error)
}

type PipelineReportData struct {
	GeneratedAt time.Time
	MediaAsset  string // empty means all assets
	Stats       models.Stats
	Columns     []models.BoardColumn
}

type ContractSummaryData struct {
	GeneratedAt time.Time
	Sponsor     *models.Sponsor
	Health      models.ContractHealth
}

// ReportGenerator is the gofpdf implementation, core fonts only.
type ReportGenerator struct{}

func NewReportGenerator() *ReportGenerator {
	return &ReportGenerator{}
}

func (g *ReportGenerator) PipelineReport(data PipelineReportData) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 16)
	doc.Cell(0, 10, "Pipeline report")
	doc.Ln(8)

	doc.SetFont("Helvetica", "", 10)
	scope := data.MediaAsset
	if scope == "" {
		scope = "all media assets"
	}
	doc.Cell(0, 8, fmt.Sprintf("Scope: %s    Generated: %s", scope, data.GeneratedAt.Format("2006-01-02 15:04")))
	doc.Ln(12)

	doc.SetFont("Helvetica", "B", 12)
	doc.Cell(0, 8, "Dashboard")
	doc.Ln(8)
	doc.SetFont("Helvetica", "", 10)
	rows := [][2]string{
		{"Active leads", fmt.Sprintf("%d", data.Stats.TotalLeads)},
		{"Active sponsors", fmt.Sprintf("%d", data.Stats.ActiveSponsors)},
		{"Follow-ups due today", fmt.Sprintf("%d", data.Stats.LeadsNeedingFollowUp)},
		{"Overdue follow-ups", fmt.Sprintf("%d", data.Stats.OverdueLeads)},
		{"Contracts expiring in 30 days", fmt.Sprintf("%d", data.Stats.ExpiringSoon)},
		{"Pipeline value", fmt.Sprintf("$%.0f", data.Stats.PipelineValue)},
	}
	for _, row := range rows {
		doc.CellFormat(80, 7, row[0], "", 0, "L", false, 0, "")
		doc.CellFormat(0, 7, row[1], "", 1, "L", false, 0, "")
	}
	doc.Ln(6)

	doc.SetFont("Helvetica", "B", 12)
	doc.Cell(0, 8, "Stages")
	doc.Ln(8)
	doc.SetFont("Helvetica", "B", 10)
	doc.CellFormat(60, 7, "Stage", "B", 0, "L", false, 0, "")
	doc.CellFormat(30, 7, "Leads", "B", 0, "R", false, 0, "")
	doc.CellFormat(40, 7, "Value", "B", 1, "R", false, 0, "")
	doc.SetFont("Helvetica", "", 10)
	for _, col := range data.Columns {
		doc.CellFormat(60, 7, col.Label, "", 0, "L", false, 0, "")
		doc.CellFormat(30, 7, fmt.Sprintf("%d", len(col.Leads)), "", 0, "R", false, 0, "")
		doc.CellFormat(40, 7, fmt.Sprintf("$%.0f", col.TotalValue), "", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *ReportGenerator) ContractSummary(data ContractSummaryData) ([]byte, error) {
	sponsor := data.Sponsor

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 16)
	doc.Cell(0, 10, "Sponsorship contract summary")
	doc.Ln(12)

	company := sponsor.Contact.Name
	if sponsor.Contact.Company != nil && *sponsor.Contact.Company != "" {
		company = *sponsor.Contact.Company
	}
	value := "not set"
	if sponsor.Value != nil {
		value = fmt.Sprintf("$%.0f", *sponsor.Value)
	}

	doc.SetFont("Helvetica", "", 11)
	rows := [][2]string{
		{"Sponsor", company},
		{"Contact", sponsor.Contact.Name},
		{"Status", string(sponsor.Status)},
		{"Contract start", sponsor.ContractStart.Format("2006-01-02")},
		{"Contract end", sponsor.ContractEnd.Format("2006-01-02")},
		{"Value", value},
		{"Progress", fmt.Sprintf("%d%%", data.Health.Progress)},
		{"Days left", fmt.Sprintf("%d", data.Health.DaysLeft)},
	}
	if sponsor.Contact.Email != nil {
		rows = append(rows, [2]string{"Email", *sponsor.Contact.Email})
	}
	for _, row := range rows {
		doc.SetFont("Helvetica", "B", 11)
		doc.CellFormat(50, 8, row[0], "", 0, "L", false, 0, "")
		doc.SetFont("Helvetica", "", 11)
		doc.CellFormat(0, 8, row[1], "", 1, "L", false, 0, "")
	}

	if data.Health.Expired {
		doc.Ln(4)
		doc.SetFont("Helvetica", "B", 11)
		doc.Cell(0, 8, "Contract end date has passed.")
		doc.Ln(8)
	}

	doc.SetFont("Helvetica", "I", 8)
	doc.Ln(8)
	doc.Cell(0, 6, "Generated "+data.GeneratedAt.Format("2006-01-02 15:04"))

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
