package handlers

import (
	"bytes"
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/timesheet_app/internal/core/ports/services"
	"github.com/SscSPs/timesheet_app/internal/dto"
	"github.com/SscSPs/timesheet_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// timesheetHandler handles HTTP requests related to weekly timesheets.
type timesheetHandler struct {
	timesheetService portssvc.TimesheetSvcFacade
}

func newTimesheetHandler(svc portssvc.TimesheetSvcFacade) *timesheetHandler {
	return &timesheetHandler{
		timesheetService: svc,
	}
}

// registerTimesheetRoutes registers routes related to weekly timesheets.
func registerTimesheetRoutes(rg *gin.RouterGroup, svc portssvc.TimesheetSvcFacade) {
	h := newTimesheetHandler(svc)

	timesheets := rg.Group("/timesheets")
	{
		timesheets.GET("", h.getWeek)
		timesheets.GET("/export", h.exportWeek)
	}
	rg.POST("/timesheet/submit", h.submitTimesheet)
}

// getWeek godoc
// @Summary Get an employee's week
// @Description Returns the entries, summary and submission state of one employee week.
// @Tags timesheets
// @Produce  json
// @Param   employee query string true "Employee ID"
// @Param   week query string false "Any date inside the week"
// @Success 200 {object} dto.WeekResponse
// @Failure 400 {object} map[string]interface{} "Invalid query parameters"
// @Failure 404 {object} map[string]string "Employee not found"
// @Failure 500 {object} map[string]string "Failed to load timesheet"
// @Router /timesheets [get]
func (h *timesheetHandler) getWeek(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var q dto.WeekQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, logger, err, "query parameters")
		return
	}

	logger = logger.With(slog.String("employee_id", q.Employee), slog.String("week", q.Week))
	week, err := h.timesheetService.GetWeek(c.Request.Context(), q.Employee, q.Week)
	if err != nil {
		respondError(c, logger, err, "Failed to load timesheet")
		return
	}

	c.JSON(http.StatusOK, dto.ToWeekResponse(week))
}

// exportWeek godoc
// @Summary Export an employee's week as CSV
// @Tags timesheets
// @Produce  text/csv
// @Param   employee query string true "Employee ID"
// @Param   week query string false "Any date inside the week"
// @Success 200 {string} string "CSV document"
// @Failure 400 {object} map[string]interface{} "Invalid query parameters"
// @Failure 404 {object} map[string]string "Employee not found"
// @Failure 500 {object} map[string]string "Failed to export timesheet"
// @Router /timesheets/export [get]
func (h *timesheetHandler) exportWeek(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var q dto.WeekQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, logger, err, "query parameters")
		return
	}

	logger = logger.With(slog.String("employee_id", q.Employee), slog.String("week", q.Week))

	// Buffered so a failure halfway through still gets a JSON error response.
	var buf bytes.Buffer
	if err := h.timesheetService.ExportWeekCSV(c.Request.Context(), q.Employee, q.Week, &buf); err != nil {
		respondError(c, logger, err, "Failed to export timesheet")
		return
	}

	filename := "timesheet-" + q.Employee + "-" + exportDate(q.Week) + ".csv"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// exportDate names the export after the requested day, or today for the current week.
func exportDate(week string) string {
	if len(week) >= len(time.DateOnly) {
		if _, err := time.Parse(time.DateOnly, week[:len(time.DateOnly)]); err == nil {
			return week[:len(time.DateOnly)]
		}
	}
	return time.Now().UTC().Format(time.DateOnly)
}

// submitTimesheet godoc
// @Summary Submit an employee's week
// @Description Submits every draft entry of the week and attributes the hours to their projects. A week can only be submitted once.
// @Tags timesheets
// @Accept  json
// @Produce  json
// @Param   submission body dto.SubmitTimesheetRequest true "Employee and week"
// @Success 200 {object} dto.SubmitTimesheetResponse
// @Failure 400 {object} map[string]interface{} "Invalid input format"
// @Failure 404 {object} map[string]string "Employee not found"
// @Failure 409 {object} map[string]string "Week already submitted"
// @Failure 422 {object} map[string]string "Week cannot be submitted"
// @Failure 500 {object} map[string]string "Failed to submit timesheet"
// @Router /timesheet/submit [post]
func (h *timesheetHandler) submitTimesheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SubmitTimesheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "request format")
		return
	}

	logger = logger.With(slog.String("employee_id", req.EmployeeID), slog.String("week", req.Week))
	logger.Info("Received request to submit timesheet")

	week, err := h.timesheetService.SubmitTimesheet(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to submit timesheet")
		return
	}

	weekStart := week.WeekStart.Format(time.DateOnly)
	logger.Info("Timesheet submitted successfully", slog.String("week_start", weekStart), slog.Float64("total_hours", week.Summary.TotalHours))
	c.JSON(http.StatusOK, dto.SubmitTimesheetResponse{
		Success:   true,
		Message:   "Timesheet submitted for week of " + weekStart,
		WeekStart: weekStart,
		Summary:   week.Summary,
	})
}
