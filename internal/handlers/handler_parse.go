package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/SscSPs/hot_settlement_app/internal/apperrors"
	"github.com/SscSPs/hot_settlement_app/internal/core/domain"
	portssvc "github.com/SscSPs/hot_settlement_app/internal/core/ports/services"
	"github.com/SscSPs/hot_settlement_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// ParseHandler serves the HOT/LIFT upload-and-parse endpoints.
type ParseHandler struct {
	parserService  portssvc.ParserSvcFacade
	exportService  portssvc.ExportSvcFacade
	maxUploadBytes int64
}

// NewParseHandler creates a new ParseHandler.
func NewParseHandler(parserService portssvc.ParserSvcFacade, exportService portssvc.ExportSvcFacade, maxUploadBytes int64) *ParseHandler {
	return &ParseHandler{
		parserService:  parserService,
		exportService:  exportService,
		maxUploadBytes: maxUploadBytes,
	}
}

// ParseFile godoc
// @Summary Parse an uploaded HOT/LIFT settlement file
// @Description Decodes the uploaded file and returns the hierarchical model as JSON
// @Tags parse
// @Accept  multipart/form-data
// @Produce json
// @Param   file formData file true "HOT/LIFT file"
// @Success 200 {object} dto.ParseHOTResponse
// @Failure 400 {object} map[string]string
// @Failure 413 {object} map[string]string
// @Router /parse [post]
func (h *ParseHandler) ParseFile(c *gin.Context) {
	parsed, filename, ok := h.parseUpload(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ToParseHOTResponse(parsed, filename))
}

// ParseFileCSV godoc
// @Summary Parse an uploaded HOT/LIFT file and return CSV
// @Description Decodes the uploaded file and returns one CSV row per document
// @Tags parse
// @Accept  multipart/form-data
// @Produce text/csv
// @Param   file formData file true "HOT/LIFT file"
// @Success 200 {string} string
// @Failure 400 {object} map[string]string
// @Router /parse/csv [post]
func (h *ParseHandler) ParseFileCSV(c *gin.Context) {
	parsed, filename, ok := h.parseUpload(c)
	if !ok {
		return
	}

	content, err := h.exportService.RenderCSV(c.Request.Context(), parsed)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", attachment(filename, ".csv"))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", content)
}

// ParseFileReport godoc
// @Summary Parse an uploaded HOT/LIFT file and return a text report
// @Description Decodes the uploaded file and returns a human-readable analysis report
// @Tags parse
// @Accept  multipart/form-data
// @Produce text/plain
// @Param   file formData file true "HOT/LIFT file"
// @Success 200 {string} string
// @Failure 400 {object} map[string]string
// @Router /parse/report [post]
func (h *ParseHandler) ParseFileReport(c *gin.Context) {
	parsed, filename, ok := h.parseUpload(c)
	if !ok {
		return
	}

	report := h.exportService.RenderReport(c.Request.Context(), parsed, filename)

	c.Header("Content-Disposition", attachment(filename, "_report.txt"))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(report))
}

// parseUpload reads the multipart upload and runs the parser. On failure it
// writes the error response and returns ok=false.
func (h *ParseHandler) parseUpload(c *gin.Context) (parsed *domain.ParsedFile, filename string, ok bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrNoFile.Error()})
		return nil, "", false
	}
	if fileHeader.Size > h.maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": apperrors.ErrFileTooLarge.Error()})
		return nil, "", false
	}

	content, err := readUpload(fileHeader)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read uploaded file"})
		return nil, "", false
	}

	result, err := h.parserService.ParseHOT(c.Request.Context(), content)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return nil, "", false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil, "", false
	}

	return result, fileHeader.Filename, true
}

func readUpload(fileHeader *multipart.FileHeader) ([]byte, error) {
	f, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	return content, nil
}

// attachment builds a Content-Disposition value from the upload name with
// its extension swapped for the rendered format's suffix.
func attachment(filename, suffix string) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	if base == "" || base == "." {
		base = "parsed"
	}
	return fmt.Sprintf("attachment; filename=%s%s", base, suffix)
}
