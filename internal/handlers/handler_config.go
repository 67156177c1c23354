package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/money_coach_app/internal/core/ports/services"
	"github.com/SscSPs/money_coach_app/internal/dto"
	"github.com/SscSPs/money_coach_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// configHandler handles the onboarding config of a user.
type configHandler struct {
	configService portssvc.FinancialConfigSvcFacade
}

func registerConfigRoutes(rg *gin.RouterGroup, configService portssvc.FinancialConfigSvcFacade) {
	h := &configHandler{configService: configService}

	rg.GET("/config", h.getConfig)
	rg.PUT("/config", h.saveConfig)
}

// getConfig godoc
// @Summary Get the financial config
// @Tags config
// @Produce  json
// @Success 200 {object} dto.FinancialConfigResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Financial config missing"
// @Failure 503 {object} map[string]string "Config store unavailable"
// @Security BearerAuth
// @Router /config [get]
func (h *configHandler) getConfig(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requestUser(c, logger)
	if !ok {
		return
	}

	cfg, err := h.configService.GetConfig(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "get financial config")
		return
	}
	c.JSON(http.StatusOK, dto.ToFinancialConfigResponse(cfg))
}

// saveConfig godoc
// @Summary Save the financial config
// @Description Creates or replaces the monthly income, fixed obligations and emergency buffer of the logged-in user
// @Tags config
// @Accept  json
// @Produce  json
// @Param   config body dto.FinancialConfigRequest true "Financial config"
// @Success 200 {object} dto.FinancialConfigResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} map[string]string "Config store unavailable"
// @Security BearerAuth
// @Router /config [put]
func (h *configHandler) saveConfig(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.FinancialConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SaveConfig", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requestUser(c, logger)
	if !ok {
		return
	}

	cfg, err := h.configService.SaveConfig(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, logger, err, "save financial config")
		return
	}
	logger.Info("Financial config saved", slog.Int("obligations", len(cfg.FixedObligations)))
	c.JSON(http.StatusOK, dto.ToFinancialConfigResponse(cfg))
}
