package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/money_coach_app/internal/apperrors"
	"github.com/SscSPs/money_coach_app/internal/middleware"
	"github.com/SscSPs/money_coach_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// requestUser returns the authenticated user, answering 401 when there is none.
func requestUser(c *gin.Context, logger *slog.Logger) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}

// parseAsOf reads the optional asOf query parameter.
// RFC3339 timestamps are used as given; a bare date means the end of that day in loc.
// Without the parameter the evaluation runs at now.
func parseAsOf(c *gin.Context, loc *time.Location, now func() time.Time) (time.Time, error) {
	raw := strings.TrimSpace(c.Query("asOf"))
	if raw == "" {
		return now().In(loc), nil
	}
	return utils.ParseAsOf(raw, loc)
}

// respondError maps service errors onto HTTP statuses.
// action completes the sentence "Failed to ..." for unexpected errors.
func respondError(c *gin.Context, logger *slog.Logger, err error, action string) {
	message := err.Error()
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		message = appErr.Message
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperrors.ErrConfigMissing):
		status, message = http.StatusNotFound, apperrors.ErrConfigMissing.Error()
	case errors.Is(err, apperrors.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrTransactionBlocked):
		status = http.StatusForbidden
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicate):
		status = http.StatusConflict
	case errors.Is(err, apperrors.ErrDataUnavailable):
		status, message = http.StatusServiceUnavailable, "Financial data is temporarily unavailable"
	default:
		message = "Failed to " + action
	}

	if status >= http.StatusInternalServerError {
		logger.Error("Failed to "+action, slog.String("error", err.Error()), slog.Int("status", status))
	} else {
		logger.Warn("Request rejected", slog.String("action", action), slog.String("error", err.Error()), slog.Int("status", status))
	}
	c.JSON(status, gin.H{"error": message})
}
