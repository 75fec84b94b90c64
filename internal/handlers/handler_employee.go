package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/timesheet_app/internal/core/ports/services"
	"github.com/SscSPs/timesheet_app/internal/dto"
	"github.com/SscSPs/timesheet_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// employeeHandler handles HTTP requests related to employees.
type employeeHandler struct {
	employeeService portssvc.EmployeeSvcFacade
}

func newEmployeeHandler(svc portssvc.EmployeeSvcFacade) *employeeHandler {
	return &employeeHandler{
		employeeService: svc,
	}
}

// registerEmployeeRoutes registers routes related to employees.
func registerEmployeeRoutes(rg *gin.RouterGroup, svc portssvc.EmployeeSvcFacade) {
	h := newEmployeeHandler(svc)

	employees := rg.Group("/employees")
	{
		employees.POST("", h.createEmployee)
		employees.GET("", h.listEmployees)
		employees.GET("/:id", h.getEmployee)
		employees.GET("/:id/payroll", h.estimatePayroll)
	}
}

// createEmployee godoc
// @Summary Create a new employee
// @Tags employees
// @Accept  json
// @Produce  json
// @Param   employee body dto.CreateEmployeeRequest true "Employee details"
// @Success 201 {object} dto.EmployeeResponse
// @Failure 400 {object} map[string]interface{} "Invalid input format or validation error"
// @Failure 409 {object} map[string]string "Email already in use"
// @Failure 500 {object} map[string]string "Failed to create employee"
// @Router /employees [post]
func (h *employeeHandler) createEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "request format")
		return
	}

	logger.Info("Received request to create employee", slog.String("department", req.Department))

	employee, err := h.employeeService.CreateEmployee(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create employee")
		return
	}

	logger.Info("Employee created successfully", slog.String("employee_id", employee.EmployeeID))
	c.JSON(http.StatusCreated, dto.ToEmployeeResponse(employee))
}

// getEmployee godoc
// @Summary Get an employee by ID
// @Tags employees
// @Produce  json
// @Param   id path string true "Employee ID"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 404 {object} map[string]string "Employee not found"
// @Failure 500 {object} map[string]string "Failed to retrieve employee"
// @Router /employees/{id} [get]
func (h *employeeHandler) getEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("employee_id", c.Param("id")))

	employee, err := h.employeeService.GetEmployee(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve employee")
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

// listEmployees godoc
// @Summary List active employees
// @Tags employees
// @Produce  json
// @Success 200 {array} dto.EmployeeResponse
// @Failure 500 {object} map[string]string "Failed to list employees"
// @Router /employees [get]
func (h *employeeHandler) listEmployees(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	employees, err := h.employeeService.ListActiveEmployees(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list employees")
		return
	}

	logger.Info("Employees listed successfully", slog.Int("count", len(employees)))
	c.JSON(http.StatusOK, dto.ToListEmployeeResponse(employees))
}

// estimatePayroll godoc
// @Summary Estimate an employee's pay over a date range
// @Description Gross pay is hours logged in [from, to) times the hourly rate; withholding is deducted at the configured rate.
// @Tags employees
// @Produce  json
// @Param   id path string true "Employee ID"
// @Param   from query string true "Range start (inclusive)"
// @Param   to query string true "Range end (exclusive)"
// @Success 200 {object} dto.PayrollResponse
// @Failure 400 {object} map[string]interface{} "Invalid query parameters"
// @Failure 404 {object} map[string]string "Employee not found"
// @Failure 500 {object} map[string]string "Failed to estimate payroll"
// @Router /employees/{id}/payroll [get]
func (h *employeeHandler) estimatePayroll(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("employee_id", c.Param("id")))
	var q dto.PayrollQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, logger, err, "query parameters")
		return
	}

	estimate, err := h.employeeService.EstimatePayroll(c.Request.Context(), c.Param("id"), q)
	if err != nil {
		respondError(c, logger, err, "Failed to estimate payroll")
		return
	}

	c.JSON(http.StatusOK, estimate)
}
