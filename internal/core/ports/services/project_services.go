package services

import (
	"context"

	"github.com/SscSPs/timesheet_app/internal/core/domain"
	"github.com/SscSPs/timesheet_app/internal/dto"
)

// ProjectReaderSvc defines read operations for project data
type ProjectReaderSvc interface {
	// GetProject retrieves a specific project by its ID.
	GetProject(ctx context.Context, projectID string) (*domain.Project, error)

	// ListActiveProjects retrieves a page of active projects using token-based pagination.
	ListActiveProjects(ctx context.Context, limit int, nextToken *string) ([]domain.Project, *string, error)
}

// ProjectWriterSvc defines write operations for project data
type ProjectWriterSvc interface {
	// CreateProject persists a new active project with its full budget remaining.
	CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*domain.Project, error)
}

// ProjectCalculatorSvc defines calculation operations for project data
type ProjectCalculatorSvc interface {
	// GetBillableAmount prices the project's submitted billable hours at each
	// employee's hourly rate and applies the billing markup.
	GetBillableAmount(ctx context.Context, projectID string) (*dto.BillableAmountResponse, error)
}

// ProjectSvcFacade combines all project service interfaces
type ProjectSvcFacade interface {
	ProjectReaderSvc
	ProjectWriterSvc
	ProjectCalculatorSvc
}
