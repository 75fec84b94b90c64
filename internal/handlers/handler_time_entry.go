package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/timesheet_app/internal/core/ports/services"
	"github.com/SscSPs/timesheet_app/internal/dto"
	"github.com/SscSPs/timesheet_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// timeEntryHandler handles HTTP requests related to time entries.
type timeEntryHandler struct {
	timeEntryService portssvc.TimeEntrySvcFacade
}

// newTimeEntryHandler creates a new timeEntryHandler.
func newTimeEntryHandler(svc portssvc.TimeEntrySvcFacade) *timeEntryHandler {
	return &timeEntryHandler{
		timeEntryService: svc,
	}
}

// registerTimeEntryRoutes registers routes related to time entries.
func registerTimeEntryRoutes(rg *gin.RouterGroup, svc portssvc.TimeEntrySvcFacade) {
	h := newTimeEntryHandler(svc)

	entries := rg.Group("/timeentries")
	{
		entries.POST("", h.createTimeEntry)
		entries.GET("", h.listWeekEntries)
		entries.GET("/:id", h.getTimeEntry)
		entries.PUT("/:id", h.updateTimeEntry)
		entries.DELETE("/:id", h.deleteTimeEntry)
	}
}

// createTimeEntry godoc
// @Summary Log a time entry
// @Description Logs a draft time entry for an employee against a project. The containing week must still be in draft.
// @Tags time-entries
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreateTimeEntryRequest true "Time entry details"
// @Success 201 {object} dto.CreateTimeEntryResponse
// @Failure 400 {object} map[string]interface{} "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Employee or project not found"
// @Failure 423 {object} map[string]string "Week already submitted"
// @Failure 500 {object} map[string]string "Failed to create time entry"
// @Router /timeentries [post]
func (h *timeEntryHandler) createTimeEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTimeEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "request format")
		return
	}

	logger = logger.With(slog.String("employee_id", req.EmployeeID), slog.String("project_id", req.ProjectID))
	logger.Info("Received request to create time entry")

	entry, err := h.timeEntryService.CreateTimeEntry(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create time entry")
		return
	}

	logger.Info("Time entry created successfully", slog.String("entry_id", entry.EntryID))
	c.JSON(http.StatusCreated, dto.CreateTimeEntryResponse{
		Success: true,
		ID:      entry.EntryID,
		Entry:   dto.ToTimeEntryResponse(entry),
	})
}

// getTimeEntry godoc
// @Summary Get a time entry by ID
// @Tags time-entries
// @Produce  json
// @Param   id path string true "Time entry ID"
// @Success 200 {object} dto.TimeEntryResponse
// @Failure 404 {object} map[string]string "Time entry not found"
// @Failure 500 {object} map[string]string "Failed to retrieve time entry"
// @Router /timeentries/{id} [get]
func (h *timeEntryHandler) getTimeEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("entry_id", c.Param("id")))

	entry, err := h.timeEntryService.GetTimeEntry(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve time entry")
		return
	}

	c.JSON(http.StatusOK, dto.ToTimeEntryResponse(entry))
}

// listWeekEntries godoc
// @Summary List an employee's entries for a week
// @Description Lists the entries of the week containing the given date, ordered by start time. Defaults to the current week.
// @Tags time-entries
// @Produce  json
// @Param   employee query string true "Employee ID"
// @Param   week query string false "Any date inside the week (YYYY-MM-DD or ISO-8601 instant)"
// @Success 200 {array} dto.TimeEntryResponse
// @Failure 400 {object} map[string]interface{} "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list time entries"
// @Router /timeentries [get]
func (h *timeEntryHandler) listWeekEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var q dto.WeekQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, logger, err, "query parameters")
		return
	}

	logger = logger.With(slog.String("employee_id", q.Employee), slog.String("week", q.Week))
	entries, err := h.timeEntryService.ListWeekEntries(c.Request.Context(), q.Employee, q.Week)
	if err != nil {
		respondError(c, logger, err, "Failed to list time entries")
		return
	}

	logger.Info("Time entries listed successfully", slog.Int("count", len(entries)))
	c.JSON(http.StatusOK, dto.ToListTimeEntryResponse(entries))
}

// updateTimeEntry godoc
// @Summary Update a draft time entry
// @Tags time-entries
// @Accept  json
// @Produce  json
// @Param   id path string true "Time entry ID"
// @Param   entry body dto.UpdateTimeEntryRequest true "Replacement fields"
// @Success 200 {object} dto.TimeEntryResponse
// @Failure 400 {object} map[string]interface{} "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Time entry not found"
// @Failure 423 {object} map[string]string "Entry is no longer a draft"
// @Failure 500 {object} map[string]string "Failed to update time entry"
// @Router /timeentries/{id} [put]
func (h *timeEntryHandler) updateTimeEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("entry_id", c.Param("id")))
	var req dto.UpdateTimeEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "request format")
		return
	}

	entry, err := h.timeEntryService.UpdateTimeEntry(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, logger, err, "Failed to update time entry")
		return
	}

	logger.Info("Time entry updated successfully")
	c.JSON(http.StatusOK, dto.ToTimeEntryResponse(entry))
}

// deleteTimeEntry godoc
// @Summary Delete a draft time entry
// @Tags time-entries
// @Produce  json
// @Param   id path string true "Time entry ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} map[string]string "Time entry not found"
// @Failure 423 {object} map[string]string "Entry is no longer a draft"
// @Failure 500 {object} map[string]string "Failed to delete time entry"
// @Router /timeentries/{id} [delete]
func (h *timeEntryHandler) deleteTimeEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("entry_id", c.Param("id")))

	if err := h.timeEntryService.DeleteTimeEntry(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, logger, err, "Failed to delete time entry")
		return
	}

	logger.Info("Time entry deleted successfully")
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: "Time entry deleted"})
}
