package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/SscSPs/timesheet_app/internal/apperrors"
	"github.com/SscSPs/timesheet_app/internal/core/domain"
	portsrepo "github.com/SscSPs/timesheet_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/timesheet_app/internal/core/ports/services"
	"github.com/SscSPs/timesheet_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// projectService implements the ProjectSvcFacade interface
type projectService struct {
	BaseService
	projectRepo  portsrepo.ProjectRepositoryFacade
	employeeRepo portsrepo.EmployeeReader
}

// NewProjectService creates a new project service with the provided dependencies
func NewProjectService(projectRepo portsrepo.ProjectRepositoryFacade, employeeRepo portsrepo.EmployeeReader, opts ...Option) portssvc.ProjectSvcFacade {
	return &projectService{
		BaseService:  newBaseService(opts...),
		projectRepo:  projectRepo,
		employeeRepo: employeeRepo,
	}
}

// Ensure projectService implements the ProjectSvcFacade interface
var _ portssvc.ProjectSvcFacade = (*projectService)(nil)

// CreateProject persists a new active project
func (s *projectService) CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*domain.Project, error) {
	fields := map[string]string{}
	if strings.TrimSpace(req.Name) == "" {
		fields["name"] = "Name is required"
	}
	if req.Budget.IsNegative() {
		fields["budget"] = "Budget must not be negative"
	}
	if req.HourlyCostRate != nil && req.HourlyCostRate.IsNegative() {
		fields["hourlyCostRate"] = "Hourly cost rate must not be negative"
	}
	if !req.EndDate.After(req.StartDate) {
		fields["endDate"] = "End date must be after start date"
	}
	if len(fields) > 0 {
		return nil, &apperrors.ValidationError{Fields: fields}
	}

	now := s.Now().UTC()
	project := domain.Project{
		ProjectID:       uuid.NewString(),
		Name:            strings.TrimSpace(req.Name),
		Client:          req.Client,
		Budget:          req.Budget,
		StartDate:       req.StartDate.UTC(),
		EndDate:         req.EndDate.UTC(),
		Status:          domain.ProjectActive,
		RemainingBudget: req.Budget,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if req.HourlyCostRate != nil {
		project.HourlyCostRate = *req.HourlyCostRate
	}

	if err := s.projectRepo.SaveProject(ctx, project); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save project", slog.String("project_id", project.ProjectID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Project created", slog.String("project_id", project.ProjectID), slog.String("name", project.Name))
	return &project, nil
}

// GetProject retrieves a project by its ID
func (s *projectService) GetProject(ctx context.Context, projectID string) (*domain.Project, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find project", slog.String("project_id", projectID))
		}
		return nil, err
	}
	return project, nil
}

// ListActiveProjects retrieves a page of active projects
func (s *projectService) ListActiveProjects(ctx context.Context, limit int, nextToken *string) ([]domain.Project, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	projects, next, err := s.projectRepo.ListActiveProjects(ctx, limit, nextToken)
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to list projects", slog.Int("limit", limit))
		}
		return nil, nil, err
	}
	if projects == nil {
		projects = []domain.Project{}
	}
	return projects, next, nil
}

// GetBillableAmount prices the project's submitted billable hours
func (s *projectService) GetBillableAmount(ctx context.Context, projectID string) (*dto.BillableAmountResponse, error) {
	if _, err := s.GetProject(ctx, projectID); err != nil {
		return nil, err
	}

	hours, err := s.projectRepo.SumBillableHoursByEmployee(ctx, projectID)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum billable hours", slog.String("project_id", projectID))
		return nil, err
	}
	if hours == nil {
		hours = map[string]float64{}
	}

	ids := make([]string, 0, len(hours))
	for id := range hours {
		ids = append(ids, id)
	}
	employees, err := s.employeeRepo.FindEmployeesByIDs(ctx, ids)
	if err != nil {
		s.LogError(ctx, err, "Failed to load employee rates", slog.String("project_id", projectID))
		return nil, err
	}
	rates := make(map[string]decimal.Decimal, len(employees))
	for id, e := range employees {
		rates[id] = e.HourlyRate
	}

	amount := domain.BillableAmount(hours, rates, s.Settings.DefaultCostRate, s.Settings.BillingMarkup).Round(2)
	return &dto.BillableAmountResponse{
		ProjectID:       projectID,
		Amount:          amount,
		Markup:          s.Settings.BillingMarkup,
		HoursByEmployee: hours,
	}, nil
}
