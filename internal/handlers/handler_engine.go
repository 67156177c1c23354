package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/money_coach_app/internal/core/domain"
	portssvc "github.com/SscSPs/money_coach_app/internal/core/ports/services"
	"github.com/SscSPs/money_coach_app/internal/dto"
	"github.com/SscSPs/money_coach_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// engineHandler serves the safe-to-spend, risk and kill-switch endpoints.
type engineHandler struct {
	engineService portssvc.SafetyEngineSvc
	loc           *time.Location
	now           func() time.Time
}

func newEngineHandler(es portssvc.SafetyEngineSvc, loc *time.Location) *engineHandler {
	return &engineHandler{engineService: es, loc: loc, now: time.Now}
}

// registerEngineRoutes registers the engine routes. validateMW guards the validate endpoint.
func registerEngineRoutes(rg *gin.RouterGroup, engineService portssvc.SafetyEngineSvc, loc *time.Location, validateMW ...gin.HandlerFunc) {
	h := newEngineHandler(engineService, loc)

	rg.GET("/safe-to-spend", h.getSafeToSpend)
	rg.GET("/risk", h.getRisk)

	ks := rg.Group("/kill-switch")
	{
		ks.GET("/status", h.getKillSwitchStatus)
		ks.POST("/validate", append(validateMW, h.validateTransaction)...)
		ks.POST("/simulate-recovery", h.simulateRecovery)
	}
}

// getSafeToSpend godoc
// @Summary Compute safe-to-spend
// @Description Runs the safety engine for the logged-in user and returns the daily allowance, remaining budget, alerts and advice
// @Tags engine
// @Produce  json
// @Param   asOf query string false "Evaluation time, RFC3339 or YYYY-MM-DD (defaults to now)"
// @Success 200 {object} dto.SafeToSpendResponse
// @Failure 400 {object} map[string]string "Invalid asOf"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Financial config missing"
// @Failure 503 {object} map[string]string "Financial data unavailable"
// @Security BearerAuth
// @Router /safe-to-spend [get]
func (h *engineHandler) getSafeToSpend(c *gin.Context) {
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

	result, err := h.engineService.ComputeSafeToSpend(c.Request.Context(), userID, asOf)
	if err != nil {
		respondError(c, logger, err, "compute safe-to-spend")
		return
	}
	logger.Debug("Safe-to-spend computed", slog.String("daily_allowance", result.SafeToSpend.DailyAllowance.String()))
	c.JSON(http.StatusOK, dto.ToSafeToSpendResponse(result))
}

// getRisk godoc
// @Summary Compute the risk score
// @Description Scores the five risk signals for the logged-in user and returns the kill-switch level they map to
// @Tags engine
// @Produce  json
// @Param   asOf query string false "Evaluation time, RFC3339 or YYYY-MM-DD (defaults to now)"
// @Success 200 {object} dto.RiskResponse
// @Failure 400 {object} map[string]string "Invalid asOf"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Financial config missing"
// @Failure 503 {object} map[string]string "Financial data unavailable"
// @Security BearerAuth
// @Router /risk [get]
func (h *engineHandler) getRisk(c *gin.Context) {
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

	result, err := h.engineService.ComputeSafeToSpend(c.Request.Context(), userID, asOf)
	if err != nil {
		respondError(c, logger, err, "compute risk score")
		return
	}
	risk, err := h.engineService.ComputeRiskScore(c.Request.Context(), userID, result)
	if err != nil {
		respondError(c, logger, err, "compute risk score")
		return
	}
	c.JSON(http.StatusOK, dto.ToRiskResponse(risk, h.engineService.GetKillSwitchLevel(risk.Score)))
}

// getKillSwitchStatus godoc
// @Summary Kill-switch status
// @Description Returns the current kill-switch level and the categories it blocks
// @Tags kill-switch
// @Produce  json
// @Param   asOf query string false "Evaluation time, RFC3339 or YYYY-MM-DD (defaults to now)"
// @Success 200 {object} dto.KillSwitchStatusResponse
// @Failure 400 {object} map[string]string "Invalid asOf"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Financial config missing"
// @Failure 503 {object} map[string]string "Financial data unavailable"
// @Security BearerAuth
// @Router /kill-switch/status [get]
func (h *engineHandler) getKillSwitchStatus(c *gin.Context) {
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

	status, risk, err := h.engineService.KillSwitchStatus(c.Request.Context(), userID, asOf)
	if err != nil {
		respondError(c, logger, err, "get kill-switch status")
		return
	}
	c.JSON(http.StatusOK, dto.ToKillSwitchStatusResponse(status, risk))
}

// validateTransaction godoc
// @Summary Check a transaction against the kill-switch
// @Description Returns the verdict the kill-switch would give a candidate transaction without recording it
// @Tags kill-switch
// @Accept  json
// @Produce  json
// @Param   transaction body dto.ValidateTransactionRequest true "Candidate transaction"
// @Success 200 {object} dto.KillSwitchDecisionResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Financial config missing"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 503 {object} map[string]string "Financial data unavailable"
// @Security BearerAuth
// @Router /kill-switch/validate [post]
func (h *engineHandler) validateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ValidateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ValidateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requestUser(c, logger)
	if !ok {
		return
	}
	direction, err := domain.ParseDirection(req.Direction)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	candidate := domain.CandidateTransaction{
		Amount:      req.Amount,
		Category:    req.Category,
		Direction:   direction,
		Description: req.Description,
	}
	decision, err := h.engineService.EvaluateTransaction(c.Request.Context(), userID, candidate, h.now().In(h.loc))
	if err != nil {
		respondError(c, logger, err, "validate transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToKillSwitchDecisionResponse(decision))
}

// simulateRecovery godoc
// @Summary Simulate recovery
// @Description Lists the ways out of the current kill-switch state with the recommended one
// @Tags kill-switch
// @Produce  json
// @Param   asOf query string false "Evaluation time, RFC3339 or YYYY-MM-DD (defaults to now)"
// @Success 200 {object} dto.SimulateRecoveryResponse
// @Failure 400 {object} map[string]string "Invalid asOf"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Financial config missing"
// @Failure 503 {object} map[string]string "Financial data unavailable"
// @Security BearerAuth
// @Router /kill-switch/simulate-recovery [post]
func (h *engineHandler) simulateRecovery(c *gin.Context) {
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

	plan, risk, err := h.engineService.SimulateRecovery(c.Request.Context(), userID, asOf)
	if err != nil {
		respondError(c, logger, err, "simulate recovery")
		return
	}
	c.JSON(http.StatusOK, dto.SimulateRecoveryResponse{
		RiskScore: risk.Score,
		Level:     h.engineService.GetKillSwitchLevel(risk.Score),
		Recovery:  dto.ToRecoveryPlanResponse(plan),
	})
}
