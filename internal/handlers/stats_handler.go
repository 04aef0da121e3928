package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sponsorcrm/internal/services"
)

type StatsHandler struct {
	Service *services.StatsService
}

func NewStatsHandler(service *services.StatsService) *StatsHandler {
	return &StatsHandler{Service: service}
}

// Get godoc
// @Summary      Dashboard aggregates
// @Description  Lead/sponsor counts and pipeline value, optionally scoped to one media asset.
// @Tags         stats
// @Produce      json
// @Param        mediaAsset  query  string  false  "scope to this media asset"
// @Success      200  {object}  models.Stats
// @Router       /stats [get]
func (h *StatsHandler) Get(c *gin.Context) {
	stats, err := h.Service.Get(c.Query("mediaAsset"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
