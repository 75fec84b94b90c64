package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/timesheet_app/internal/apperrors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// respondError maps a service error to its HTTP status. Unknown errors are logged
// and answered with fallbackMsg so driver details never reach the client.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallbackMsg string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrInvalidRange):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		body := gin.H{"error": err.Error()}
		if fields := apperrors.FieldsOf(err); fields != nil {
			body["fields"] = fields
		}
		c.JSON(http.StatusBadRequest, body)
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrAlreadySubmitted):
		logger.Warn("Conflicting request", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotSubmittable):
		logger.Warn("Timesheet not submittable", slog.String("error", err.Error()))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrLockedPeriod):
		logger.Warn("Timesheet period locked", slog.String("error", err.Error()))
		c.JSON(http.StatusLocked, gin.H{"error": err.Error()})
	default:
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallbackMsg})
	}
}

// respondBindError answers a request whose body or query failed to bind.
func respondBindError(c *gin.Context, logger *slog.Logger, err error, what string) {
	logger.Warn("Failed to bind "+what, slog.String("error", err.Error()))
	body := gin.H{"error": "Invalid " + what + ": " + err.Error()}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = "failed on the '" + fe.Tag() + "' rule"
		}
		body["fields"] = fields
	}
	c.JSON(http.StatusBadRequest, body)
}
