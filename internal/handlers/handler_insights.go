package handlers

import (
	"net/http"
	"time"

	"github.com/SscSPs/money_coach_app/internal/core/engine"
	portssvc "github.com/SscSPs/money_coach_app/internal/core/ports/services"
	"github.com/SscSPs/money_coach_app/internal/dto"
	"github.com/SscSPs/money_coach_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// insightsHandler serves the read-only reports built on the ledger.
type insightsHandler struct {
	insightsService portssvc.InsightsSvc
	loc             *time.Location
	now             func() time.Time
}

func registerInsightsRoutes(rg *gin.RouterGroup, insightsService portssvc.InsightsSvc, loc *time.Location) {
	h := &insightsHandler{insightsService: insightsService, loc: loc, now: time.Now}

	rg.GET("/trends/heatmap", h.getTrends)
	rg.GET("/analytics/income-expense", h.getIncomeExpense)
	rg.GET("/summary", h.getHealthSummary)
}

// getTrends godoc
// @Summary Spending heatmap
// @Description Monthly spending by category over the trailing months with month-over-month changes
// @Tags insights
// @Produce  json
// @Param   asOf query string false "Evaluation time, RFC3339 or YYYY-MM-DD (defaults to now)"
// @Success 200 {object} dto.TrendsResponse
// @Failure 400 {object} map[string]string "Invalid asOf"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} map[string]string "Ledger unavailable"
// @Security BearerAuth
// @Router /trends/heatmap [get]
func (h *insightsHandler) getTrends(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requestUser(c, logger)
	if !ok {
		return
	}
	asOf, err := parseAsOf(c, h.loc, h.now)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rep, err := h.insightsService.Trends(c.Request.Context(), userID, asOf)
	if err != nil {
		respondError(c, logger, err, "compute spending trends")
		return
	}
	c.JSON(http.StatusOK, dto.ToTrendsResponse(rep))
}

// getIncomeExpense godoc
// @Summary Income against expenses
// @Tags insights
// @Produce  json
// @Param   timeframe query string false "month, 3months or year (default month)"
// @Param   asOf query string false "Evaluation time, RFC3339 or YYYY-MM-DD (defaults to now)"
// @Success 200 {object} dto.IncomeExpenseResponse
// @Failure 400 {object} map[string]string "Invalid timeframe or asOf"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} map[string]string "Ledger unavailable"
// @Security BearerAuth
// @Router /analytics/income-expense [get]
func (h *insightsHandler) getIncomeExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requestUser(c, logger)
	if !ok {
		return
	}
	timeframe, err := engine.ParseTimeframe(c.Query("timeframe"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	asOf, err := parseAsOf(c, h.loc, h.now)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rep, err := h.insightsService.IncomeExpense(c.Request.Context(), userID, timeframe, asOf)
	if err != nil {
		respondError(c, logger, err, "compute income and expenses")
		return
	}
	c.JSON(http.StatusOK, dto.ToIncomeExpenseResponse(rep))
}

// getHealthSummary godoc
// @Summary Weekly health summary
// @Description Health score, spending pressure and a seven day cashflow forecast
// @Tags insights
// @Produce  json
// @Param   asOf query string false "Evaluation time, RFC3339 or YYYY-MM-DD (defaults to now)"
// @Success 200 {object} dto.HealthSummaryResponse
// @Failure 400 {object} map[string]string "Invalid asOf"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Financial config missing"
// @Failure 503 {object} map[string]string "Financial data unavailable"
// @Security BearerAuth
// @Router /summary [get]
func (h *insightsHandler) getHealthSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requestUser(c, logger)
	if !ok {
		return
	}
	asOf, err := parseAsOf(c, h.loc, h.now)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := h.insightsService.HealthSummary(c.Request.Context(), userID, asOf)
	if err != nil {
		respondError(c, logger, err, "compute health summary")
		return
	}
	c.JSON(http.StatusOK, dto.ToHealthSummaryResponse(summary))
}
