package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"sponsorcrm/internal/pdf"
	"sponsorcrm/internal/services"
)

type ReportHandler struct {
	Stats  *services.StatsService
	Leads  *services.LeadService
	PDFGen pdf.Generator
}

func NewReportHandler(stats *services.StatsService, leads *services.LeadService, pdfGen pdf.Generator) *ReportHandler {
	return &ReportHandler{Stats: stats, Leads: leads, PDFGen: pdfGen}
}

// PipelinePDF streams the dashboard aggregates and per-stage totals as a PDF.
func (h *ReportHandler) PipelinePDF(c *gin.Context) {
	mediaAsset := c.Query("mediaAsset")

	stats, err := h.Stats.Get(mediaAsset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute stats"})
		return
	}
	columns, err := h.Leads.Board(mediaAsset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build board"})
		return
	}

	out, err := h.PDFGen.PipelineReport(pdf.PipelineReportData{
		GeneratedAt: time.Now(),
		MediaAsset:  mediaAsset,
		Stats:       *stats,
		Columns:     columns,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render pdf"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="pipeline.pdf"`)
	c.Data(http.StatusOK, "application/pdf", out)
}
