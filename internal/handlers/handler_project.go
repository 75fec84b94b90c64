package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/timesheet_app/internal/core/ports/services"
	"github.com/SscSPs/timesheet_app/internal/dto"
	"github.com/SscSPs/timesheet_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// projectHandler handles HTTP requests related to projects.
type projectHandler struct {
	projectService portssvc.ProjectSvcFacade
	location       *time.Location
}

// newProjectHandler creates a new projectHandler. Project progress is measured
// against the current day in loc.
func newProjectHandler(svc portssvc.ProjectSvcFacade, loc *time.Location) *projectHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &projectHandler{
		projectService: svc,
		location:       loc,
	}
}

// registerProjectRoutes registers routes related to projects.
func registerProjectRoutes(rg *gin.RouterGroup, svc portssvc.ProjectSvcFacade, loc *time.Location) {
	h := newProjectHandler(svc, loc)

	projects := rg.Group("/projects")
	{
		projects.POST("", h.createProject)
		projects.GET("", h.listProjects)
		projects.GET("/:id", h.getProject)
		projects.GET("/:id/billable-amount", h.getBillableAmount)
	}
}

func (h *projectHandler) today() time.Time {
	return time.Now().In(h.location)
}

// createProject godoc
// @Summary Create a new project
// @Tags projects
// @Accept  json
// @Produce  json
// @Param   project body dto.CreateProjectRequest true "Project details"
// @Success 201 {object} dto.ProjectResponse
// @Failure 400 {object} map[string]interface{} "Invalid input format or validation error"
// @Failure 409 {object} map[string]string "Project name already in use"
// @Failure 500 {object} map[string]string "Failed to create project"
// @Router /projects [post]
func (h *projectHandler) createProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "request format")
		return
	}

	logger = logger.With(slog.String("project_name", req.Name))
	logger.Info("Received request to create project")

	project, err := h.projectService.CreateProject(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create project")
		return
	}

	logger.Info("Project created successfully", slog.String("project_id", project.ProjectID))
	c.JSON(http.StatusCreated, dto.ToProjectResponse(project, h.today()))
}

// getProject godoc
// @Summary Get a project by ID
// @Description Returns the project with its budget status and progress.
// @Tags projects
// @Produce  json
// @Param   id path string true "Project ID"
// @Success 200 {object} dto.ProjectResponse
// @Failure 404 {object} map[string]string "Project not found"
// @Failure 500 {object} map[string]string "Failed to retrieve project"
// @Router /projects/{id} [get]
func (h *projectHandler) getProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("project_id", c.Param("id")))

	project, err := h.projectService.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve project")
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectResponse(project, h.today()))
}

// listProjects godoc
// @Summary List active projects
// @Description Lists active projects ordered by name, using keyset pagination.
// @Tags projects
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token returned by the previous page"
// @Success 200 {object} dto.ListProjectsResponse
// @Failure 400 {object} map[string]interface{} "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list projects"
// @Router /projects [get]
func (h *projectHandler) listProjects(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListProjectsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err, "query parameters")
		return
	}

	projects, next, err := h.projectService.ListActiveProjects(c.Request.Context(), params.Limit, params.NextToken)
	if err != nil {
		respondError(c, logger, err, "Failed to list projects")
		return
	}

	logger.Info("Projects listed successfully", slog.Int("count", len(projects)))
	c.JSON(http.StatusOK, dto.ListProjectsResponse{
		Projects:  dto.ToListProjectResponse(projects, h.today()),
		NextToken: next,
	})
}

// getBillableAmount godoc
// @Summary Get the amount billable to a project's client
// @Description Sums submitted and approved billable hours at each employee's rate, then applies the billing markup.
// @Tags projects
// @Produce  json
// @Param   id path string true "Project ID"
// @Success 200 {object} dto.BillableAmountResponse
// @Failure 404 {object} map[string]string "Project not found"
// @Failure 500 {object} map[string]string "Failed to calculate billable amount"
// @Router /projects/{id}/billable-amount [get]
func (h *projectHandler) getBillableAmount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("project_id", c.Param("id")))

	amount, err := h.projectService.GetBillableAmount(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to calculate billable amount")
		return
	}

	c.JSON(http.StatusOK, amount)
}
