package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"sponsorcrm/internal/services"
)

type ParseDocumentHandler struct {
	Extractor services.DocumentExtractor
}

func NewParseDocumentHandler(extractor services.DocumentExtractor) *ParseDocumentHandler {
	return &ParseDocumentHandler{Extractor: extractor}
}

// Parse godoc
// @Summary      Extract form fields from an uploaded document
// @Description  Sends the file to the model and returns a best-effort partial record. An unparseable reply returns an empty object, not an error.
// @Tags         extraction
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file    true  "PDF, image, or text/markdown file"
// @Param        type  formData  string  true  "lead or sponsor"
// @Success      200  {object}  models.Extraction
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /parse-document [post]
func (h *ParseDocumentHandler) Parse(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file provided"})
		return
	}
	formType := c.PostForm("type") // "lead" or "sponsor"

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read upload"})
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read upload"})
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	extraction, err := h.Extractor.ExtractDocument(c.Request.Context(), data, mimeType, fileHeader.Filename, formType)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, extraction)
}
