package handler

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/novainvoice/invoice-dashboard-service/internal/domain"
	"github.com/novainvoice/invoice-dashboard-service/internal/model"
	"github.com/novainvoice/invoice-dashboard-service/internal/service"
)

// InvoiceHandler handles HTTP requests for the invoice collection
type InvoiceHandler struct {
	invoices service.InvoiceServicer
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoices service.InvoiceServicer) *InvoiceHandler {
	return &InvoiceHandler{invoices: invoices}
}

// RegisterRoutes registers the handler's routes with the given router
func (h *InvoiceHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/v1/invoices", h.ListInvoices)
	router.GET("/v1/invoices/:id", h.GetInvoice)
	router.POST("/v1/invoices", h.CreateInvoice)
	router.PUT("/v1/invoices/:id", h.UpdateInvoice)
	router.DELETE("/v1/invoices/:id", h.DeleteInvoice)
}

// ListInvoices handles a request to list invoices, optionally filtered
// @Summary List invoices
// @Description List invoices newest-first, optionally filtered by a case-insensitive substring match on client name or invoice id
// @Tags invoices
// @Produce json
// @Param q query string false "Search query"
// @Success 200 {object} model.InvoiceListResponse "Invoice list"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /v1/invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	query := c.Query("q")

	invoices, err := h.invoices.List(c.Request.Context(), query)
	if err != nil {
		respondInternalServerError(c, "Failed to list invoices: "+err.Error())
		return
	}

	respondOK(c, model.InvoiceListResponse{
		Data:  model.FromDomainList(invoices),
		Count: len(invoices),
	})
}

// GetInvoice handles a request for a single invoice
// @Summary Get an invoice
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice id"
// @Success 200 {object} model.InvoiceDTO "Invoice"
// @Failure 404 {object} model.ErrorResponse "Invoice not found"
// @Router /v1/invoices/{id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	id, err := getPathParam(c, "id")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	invoice, found, err := h.invoices.Get(c.Request.Context(), id)
	if err != nil {
		respondInternalServerError(c, "Failed to get invoice: "+err.Error())
		return
	}
	if !found {
		respondNotFound(c, "Invoice not found")
		return
	}

	var dto model.InvoiceDTO
	dto.FromDomain(invoice)
	respondOK(c, dto)
}

// CreateInvoice handles a request to create an invoice
// @Summary Create an invoice
// @Description Create an invoice. Missing invoice and item ids are generated. The new invoice is placed at the front of the collection.
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice body model.InvoiceDTO true "Invoice"
// @Success 201 {object} model.InvoiceDTO "Created invoice"
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 422 {object} model.ErrorResponse "Unknown status"
// @Router /v1/invoices [post]
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var dto model.InvoiceDTO
	if err := bindJSON(c, &dto); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	if dto.Status != "" && !domain.InvoiceStatus(dto.Status).IsValid() {
		respondUnprocessableEntity(c, "Unknown invoice status: "+dto.Status)
		return
	}

	created, err := h.invoices.Create(c.Request.Context(), dto.ToDomain())
	if err != nil {
		respondInternalServerError(c, "Failed to create invoice: "+err.Error())
		return
	}

	var out model.InvoiceDTO
	out.FromDomain(created)
	respondCreated(c, out)
}

// UpdateInvoice handles a request to update an invoice
// @Summary Update an invoice
// @Description Replace the invoice with the matching id, preserving its position. Updating an unknown id leaves the collection unchanged.
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice id"
// @Param invoice body model.InvoiceDTO true "Invoice"
// @Success 200 {object} model.InvoiceDTO "Submitted invoice"
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 422 {object} model.ErrorResponse "Unknown status"
// @Router /v1/invoices/{id} [put]
func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	id, err := getPathParam(c, "id")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	var dto model.InvoiceDTO
	if err := bindJSON(c, &dto); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	dto.ID = id

	if dto.Status != "" && !domain.InvoiceStatus(dto.Status).IsValid() {
		respondUnprocessableEntity(c, "Unknown invoice status: "+dto.Status)
		return
	}

	found, err := h.invoices.Update(c.Request.Context(), dto.ToDomain())
	if err != nil {
		respondInternalServerError(c, "Failed to update invoice: "+err.Error())
		return
	}
	if !found {
		// Unknown ids are ignored; the response still echoes the payload.
		log.Printf("Update for unknown invoice id %q ignored", id)
	}

	respondOK(c, dto)
}

// DeleteInvoice handles a request to delete an invoice
// @Summary Delete an invoice
// @Description Delete the invoice with the given id. Deleting an unknown id is a no-op.
// @Tags invoices
// @Param id path string true "Invoice id"
// @Success 204 "Deleted"
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Router /v1/invoices/{id} [delete]
func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	id, err := getPathParam(c, "id")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	if err := h.invoices.Delete(c.Request.Context(), id); err != nil {
		respondInternalServerError(c, "Failed to delete invoice: "+err.Error())
		return
	}

	respondNoContent(c)
}
