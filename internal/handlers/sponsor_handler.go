package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"sponsorcrm/internal/models"
	"sponsorcrm/internal/pdf"
	"sponsorcrm/internal/services"
)

type SponsorHandler struct {
	Service *services.SponsorService
	PDFGen  pdf.Generator
}

func NewSponsorHandler(service *services.SponsorService, pdfGen pdf.Generator) *SponsorHandler {
	return &SponsorHandler{Service: service, PDFGen: pdfGen}
}

// List godoc
// @Summary      List sponsors
// @Description  Sponsors filtered by media asset, soonest contract end first, with derived contract health.
// @Tags         sponsors
// @Produce      json
// @Param        mediaAsset  query  string  false  "only sponsors tagged with this media asset"
// @Param        q           query  string  false  "search over contact name/company/email"
// @Success      200  {array}  models.SponsorWithHealth
// @Router       /sponsors [get]
func (h *SponsorHandler) List(c *gin.Context) {
	sponsors, err := h.Service.List(c.Query("mediaAsset"), c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list sponsors"})
		return
	}
	c.JSON(http.StatusOK, sponsors)
}

// Create godoc
// @Summary      Create a sponsor
// @Tags         sponsors
// @Accept       json
// @Produce      json
// @Param        sponsor  body  models.SponsorPayload  true  "sponsor and contact fields; contract dates required"
// @Success      201  {object}  models.SponsorWithHealth
// @Failure      400  {object}  map[string]string
// @Router       /sponsors [post]
func (h *SponsorHandler) Create(c *gin.Context) {
	var payload models.SponsorPayload
	if err := decodeStrict(c, &payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sponsor, err := h.Service.Create(&payload)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, sponsor)
}

func (h *SponsorHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	sponsor, err := h.Service.GetByID(id)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": "sponsor not found"})
		return
	}
	c.JSON(http.StatusOK, sponsor)
}

func (h *SponsorHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var payload models.SponsorPayload
	if err := decodeStrict(c, &payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sponsor, err := h.Service.Update(id, &payload)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sponsor)
}

func (h *SponsorHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.Service.Delete(id); err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ConvertToLead godoc
// @Summary      Open a renewal lead from a sponsorship
// @Description  Copies contact identity and value into a new lead (stage new, source Renewal, follow-up in 3 days). The sponsor is unchanged.
// @Tags         sponsors
// @Produce      json
// @Param        id  path  int  true  "sponsor id"
// @Success      201  {object}  models.Lead
// @Failure      404  {object}  map[string]string
// @Router       /sponsors/{id}/convert [post]
func (h *SponsorHandler) ConvertToLead(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	lead, err := h.Service.ConvertToLead(id)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, lead)
}

// ContractPDF streams a one-page contract summary.
func (h *SponsorHandler) ContractPDF(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	sponsor, err := h.Service.GetByID(id)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": "sponsor not found"})
		return
	}
	out, err := h.PDFGen.ContractSummary(pdf.ContractSummaryData{
		GeneratedAt: time.Now(),
		Sponsor:     sponsor.Sponsor,
		Health:      sponsor.ContractHealth,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render pdf"})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="contract_%d.pdf"`, id))
	c.Data(http.StatusOK, "application/pdf", out)
}
