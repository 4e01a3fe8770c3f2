package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/finbooks-app/finbooks_backend/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// respondServiceError maps service-layer sentinel errors onto HTTP statuses.
// Unknown errors are logged and hidden behind the fallback message so
// internals never leak to clients.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, fallbackMsg string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrInvalidRange):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrAlreadySeeded):
		logger.Warn("Conflict", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn("Forbidden", slog.String("error", err.Error()))
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		logger.Error("Unhandled service error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallbackMsg})
	}
}

// parseFiscalPeriod parses the optional fiscalPeriod query parameter.
func parseFiscalPeriod(c *gin.Context) (int, error) {
	raw := c.Query("fiscalPeriod")
	if raw == "" {
		return 0, nil
	}
	fp, err := strconv.Atoi(raw)
	if err != nil || fp < 1 || fp > 12 {
		return 0, errors.New("invalid fiscalPeriod: expected an integer between 1 and 12")
	}
	return fp, nil
}

// parseDateParam parses an optional YYYY-MM-DD query parameter. The bool
// result reports whether the parameter was present and valid.
func parseDateParam(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name + ": expected YYYY-MM-DD"})
		return nil, false
	}
	return &t, true
}
