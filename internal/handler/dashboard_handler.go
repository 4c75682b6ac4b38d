package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/novainvoice/invoice-dashboard-service/internal/service"
)

// DashboardHandler handles the derived dashboard projections
type DashboardHandler struct {
	dashboard *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboard *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// RegisterRoutes registers the handler's routes with the given router
func (h *DashboardHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/v1/dashboard/stats", h.GetStats)
	router.GET("/v1/dashboard/revenue", h.GetRevenueByMonth)
}

// GetStats handles a request for the dashboard aggregate
// @Summary Get dashboard statistics
// @Description Revenue, outstanding and overdue totals plus the invoice count, recomputed from the current collection
// @Tags dashboard
// @Produce json
// @Success 200 {object} domain.DashboardStats "Dashboard statistics"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /v1/dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboard.Stats(c.Request.Context())
	if err != nil {
		respondInternalServerError(c, "Failed to compute stats: "+err.Error())
		return
	}
	respondOK(c, stats)
}

// GetRevenueByMonth handles a request for the monthly revenue rollup
// @Summary Get monthly revenue
// @Description Non-draft invoice totals bucketed by issue month, in first-seen order
// @Tags dashboard
// @Produce json
// @Success 200 {array} domain.MonthRevenue "Monthly revenue buckets"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /v1/dashboard/revenue [get]
func (h *DashboardHandler) GetRevenueByMonth(c *gin.Context) {
	revenue, err := h.dashboard.RevenueByMonth(c.Request.Context())
	if err != nil {
		respondInternalServerError(c, "Failed to compute revenue rollup: "+err.Error())
		return
	}
	respondOK(c, revenue)
}
