package http

import (
	"github.com/gin-gonic/gin"

	"hospital-coordinator/pkg/response"
)

// Stats godoc
// @Summary     Headline KPI figures
// @Description Returns the revenue, bed occupancy, patient and claim counters for the KPI cards.
// @Tags        Dashboard
// @Produce     json
// @Success     200 {object} statsResp
// @Router      /api/v1/dashboard/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()
	response.OK(c, newStatsResp(h.uc.Stats(ctx)))
}

// Revenue godoc
// @Summary     Monthly revenue series
// @Description Returns the revenue/patients chart series.
// @Tags        Dashboard
// @Produce     json
// @Success     200 {object} revenueResp
// @Router      /api/v1/dashboard/revenue [GET]
func (h *handler) Revenue(c *gin.Context) {
	ctx := c.Request.Context()
	response.OK(c, newRevenueResp(h.uc.RevenueSeries(ctx)))
}

// Insurance godoc
// @Summary     Insurance payer distribution
// @Description Returns the payer distribution chart data.
// @Tags        Dashboard
// @Produce     json
// @Success     200 {object} insuranceResp
// @Router      /api/v1/dashboard/insurance [GET]
func (h *handler) Insurance(c *gin.Context) {
	ctx := c.Request.Context()
	response.OK(c, newInsuranceResp(h.uc.InsuranceDistribution(ctx)))
}
