package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/novainvoice/invoice-dashboard-service/internal/model"
	"github.com/novainvoice/invoice-dashboard-service/internal/service"
)

// InsightHandler handles the AI financial-advisor endpoints
type InsightHandler struct {
	insights *service.InsightService
}

// NewInsightHandler creates a new insight handler
func NewInsightHandler(insights *service.InsightService) *InsightHandler {
	return &InsightHandler{insights: insights}
}

// RegisterRoutes registers the handler's routes with the given router
func (h *InsightHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/v1/insights", h.GetInsights)
	router.DELETE("/v1/insights", h.InvalidateInsights)
}

// GetInsights handles a request for the financial insight text
// @Summary Get financial insights
// @Description Short natural-language summary of the invoice collection. Generated once per session and cached until invalidated; a request while generation is in flight returns 409.
// @Tags insights
// @Produce json
// @Success 200 {object} model.InsightResponse "Insight text"
// @Failure 409 {object} model.ErrorResponse "Generation already in progress"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /v1/insights [get]
func (h *InsightHandler) GetInsights(c *gin.Context) {
	text, cached, err := h.insights.Get(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrInsightBusy) {
			respondConflict(c, err.Error())
			return
		}
		respondInternalServerError(c, "Failed to generate insights: "+err.Error())
		return
	}

	respondOK(c, model.InsightResponse{Insight: text, Cached: cached})
}

// InvalidateInsights handles a request to drop the cached insight
// @Summary Invalidate cached insights
// @Description Drop the session's cached insight so the next request regenerates it
// @Tags insights
// @Success 204 "Invalidated"
// @Router /v1/insights [delete]
func (h *InsightHandler) InvalidateInsights(c *gin.Context) {
	h.insights.Invalidate()
	respondNoContent(c)
}
