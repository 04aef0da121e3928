package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sponsorcrm/internal/models"
	"sponsorcrm/internal/services"
)

type stubDocumentExtractor struct {
	formType string
	result   models.Extraction
}

func (s *stubDocumentExtractor) ExtractDocument(_ context.Context, data []byte, mimeType, filename, formType string) (models.Extraction, error) {
	if !services.SupportedDocument(mimeType, filename) {
		return models.Extraction{}, services.ErrUnsupportedFile
	}
	s.formType = formType
	return s.result, nil
}

func newParseRouter(extractor services.DocumentExtractor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/parse-document", NewParseDocumentHandler(extractor).Parse)
	return r
}

func multipartUpload(t *testing.T, filename, contentType, content, formType string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	hdr.Set("Content-Type", contentType)
	part, err := mw.CreatePart(hdr)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)

	require.NoError(t, mw.WriteField("type", formType))
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestParseDocumentReturnsExtraction(t *testing.T) {
	extractor := &stubDocumentExtractor{result: models.Extraction{
		Company: strp("Acme Corp"),
	}}
	r := newParseRouter(extractor)

	body, contentType := multipartUpload(t, "proposal.txt", "text/plain", "Acme wants to sponsor.", "lead")
	req := httptest.NewRequest(http.MethodPost, "/parse-document", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "lead", extractor.formType)

	var got models.Extraction
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.NotNil(t, got.Company)
	assert.Equal(t, "Acme Corp", *got.Company)
}

func TestParseDocumentRejectsUnsupportedFile(t *testing.T) {
	r := newParseRouter(&stubDocumentExtractor{})

	body, contentType := multipartUpload(t, "archive.zip", "application/zip", "PK...", "sponsor")
	req := httptest.NewRequest(http.MethodPost, "/parse-document", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestParseDocumentRequiresFile(t *testing.T) {
	r := newParseRouter(&stubDocumentExtractor{})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("type", "lead"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/parse-document", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "no file provided")
}
