package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sponsorcrm/internal/models"
	"sponsorcrm/internal/services"
)

type LeadHandler struct {
	Service *services.LeadService
}

func NewLeadHandler(service *services.LeadService) *LeadHandler {
	return &LeadHandler{Service: service}
}

// List godoc
// @Summary      List leads
// @Description  Leads filtered by media asset membership, next follow-up first, undated last.
// @Tags         leads
// @Produce      json
// @Param        mediaAsset  query  string  false  "only leads tagged with this media asset"
// @Param        q           query  string  false  "search over contact name/company/email"
// @Success      200  {array}  models.Lead
// @Router       /leads [get]
func (h *LeadHandler) List(c *gin.Context) {
	leads, err := h.Service.List(c.Query("mediaAsset"), c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list leads"})
		return
	}
	if leads == nil {
		leads = []*models.Lead{}
	}
	c.JSON(http.StatusOK, leads)
}

// Create godoc
// @Summary      Create a lead
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        lead  body  models.LeadPayload  true  "lead and contact fields"
// @Success      201  {object}  models.Lead
// @Failure      400  {object}  map[string]string
// @Router       /leads [post]
func (h *LeadHandler) Create(c *gin.Context) {
	var payload models.LeadPayload
	if err := decodeStrict(c, &payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	lead, err := h.Service.Create(&payload)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, lead)
}

func (h *LeadHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	lead, err := h.Service.GetByID(id)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": "lead not found"})
		return
	}
	c.JSON(http.StatusOK, lead)
}

// Update godoc
// @Summary      Patch a lead
// @Description  Partial update; contact-owned fields update the contact record. Stage changes are unguarded.
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        id    path  int                 true  "lead id"
// @Param        lead  body  models.LeadPayload  true  "fields to patch"
// @Success      200  {object}  models.Lead
// @Router       /leads/{id} [patch]
func (h *LeadHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var payload models.LeadPayload
	if err := decodeStrict(c, &payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	lead, err := h.Service.Update(id, &payload)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, lead)
}

// Delete godoc
// @Summary      Delete a lead and the contact it owns
// @Tags         leads
// @Param        id  path  int  true  "lead id"
// @Success      200  {object}  map[string]bool
// @Router       /leads/{id} [delete]
func (h *LeadHandler) Delete(c *gin.Context) {
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

// Board godoc
// @Summary      Kanban board
// @Description  All leads partitioned by stage; active pipeline columns plus on_hold/won/lost side columns.
// @Tags         leads
// @Produce      json
// @Param        mediaAsset  query  string  false  "only leads tagged with this media asset"
// @Success      200  {array}  models.BoardColumn
// @Router       /pipeline/board [get]
func (h *LeadHandler) Board(c *gin.Context) {
	columns, err := h.Service.Board(c.Query("mediaAsset"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build board"})
		return
	}
	c.JSON(http.StatusOK, columns)
}
