package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/timesheet_app/internal/core/ports/services"
	"github.com/SscSPs/timesheet_app/internal/dto"
	"github.com/SscSPs/timesheet_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type reminderHandler struct {
	reminderService portssvc.ReminderSvc
}

func registerReminderRoutes(rg *gin.RouterGroup, svc portssvc.ReminderSvc) {
	h := &reminderHandler{reminderService: svc}

	rg.POST("/reminders", h.sendTimesheetReminders)
}

// sendTimesheetReminders godoc
// @Summary Remind employees with unsubmitted timesheets
// @Description Notifies every active employee whose week is still in draft. An empty body targets the current week.
// @Tags reminders
// @Accept  json
// @Produce  json
// @Param   reminder body dto.ReminderRequest false "Week to remind about"
// @Success 200 {object} dto.ReminderResponse
// @Failure 400 {object} map[string]interface{} "Invalid input format"
// @Failure 500 {object} map[string]string "Failed to send reminders"
// @Router /reminders [post]
func (h *reminderHandler) sendTimesheetReminders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondBindError(c, logger, err, "request format")
		return
	}

	res, err := h.reminderService.SendSubmissionReminders(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to send reminders")
		return
	}

	logger.Info("Timesheet reminders sent", slog.String("week_start", res.WeekStart), slog.Int("notified", len(res.Notified)))
	c.JSON(http.StatusOK, res)
}
