package handler

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/novainvoice/invoice-dashboard-service/internal/model"
	"github.com/novainvoice/invoice-dashboard-service/internal/service"
)

// ExtractionHandler handles receipt-scan requests: an uploaded image is run
// through the extraction adapter and merged into a draft invoice
type ExtractionHandler struct {
	extraction  *service.ExtractionService
	maxFileSize int64
}

// NewExtractionHandler creates a new extraction handler
func NewExtractionHandler(extraction *service.ExtractionService) *ExtractionHandler {
	return &ExtractionHandler{
		extraction:  extraction,
		maxFileSize: 10 * 1024 * 1024, // 10MB default
	}
}

// RegisterRoutes registers the handler's routes with the given router
func (h *ExtractionHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/v1/invoices/scan", h.ScanInvoice)
}

// ScanInvoice handles a request to auto-fill a draft from a receipt image
// @Summary Scan a receipt into a draft invoice
// @Description Upload a receipt image and merge the extracted fields into the supplied draft (or a fresh one). Extracted fields overwrite only when present; extracted line items wholly replace the draft's items with regenerated ids. On adapter failure the draft is left unchanged.
// @Tags invoices
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Receipt image file"
// @Param draft formData string false "Draft invoice as JSON"
// @Success 200 {object} model.ScanResponse "Merged draft"
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 502 {object} model.ErrorResponse "Extraction adapter failure"
// @Router /v1/invoices/scan [post]
func (h *ExtractionHandler) ScanInvoice(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(h.maxFileSize); err != nil {
		respondBadRequest(c, "Failed to parse form data: "+err.Error())
		return
	}

	file, header, err := getFormFile(c, "file")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	defer file.Close()

	if header.Size > h.maxFileSize {
		respondBadRequest(c, "File size exceeds limit")
		return
	}

	image, err := io.ReadAll(file)
	if err != nil {
		respondInternalServerError(c, "Failed to read file data: "+err.Error())
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = http.DetectContentType(image)
	}

	draft := service.NewDraft(time.Now())
	if raw := c.PostForm("draft"); raw != "" {
		var dto model.InvoiceDTO
		if err := json.Unmarshal([]byte(raw), &dto); err != nil {
			respondBadRequest(c, "Invalid draft JSON: "+err.Error())
			return
		}
		draft = dto.ToDomain()
	}

	log.Printf("Scanning receipt: %s (%d bytes)", header.Filename, header.Size)
	merged, err := h.extraction.ScanIntoDraft(c.Request.Context(), image, mimeType, draft)
	if err != nil {
		// The draft is untouched on failure; the client keeps what it has.
		log.Printf("Extraction failed: %v", err)
		respondBadGateway(c, "Failed to extract data from the image.")
		return
	}

	var dto model.InvoiceDTO
	dto.FromDomain(merged)
	respondOK(c, model.ScanResponse{Draft: dto})
}
