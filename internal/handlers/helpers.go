package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sponsorcrm/internal/services"
)

// decodeStrict binds JSON with unknown keys rejected, so payloads stay inside
// the whitelisted field set.
func decodeStrict(c *gin.Context, v interface{}) error {
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// errStatus maps service errors onto the response taxonomy: 400 for input,
// 404 for unknown ids, 500 for everything else.
func errStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrInvalidInput),
		errors.Is(err, services.ErrUnsupportedFile),
		errors.Is(err, services.ErrNoEmailContent):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
