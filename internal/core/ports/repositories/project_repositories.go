package repositories

import (
	"context"

	"github.com/SscSPs/timesheet_app/internal/core/domain"
)

// ProjectReader defines read operations for project data
type ProjectReader interface {
	// FindProjectByID retrieves a specific project by its ID.
	FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error)

	// FindProjectsByIDs retrieves several projects keyed by ID. Missing IDs are absent from the map.
	FindProjectsByIDs(ctx context.Context, projectIDs []string) (map[string]domain.Project, error)

	// ListActiveProjects retrieves a page of active projects ordered by name using token-based pagination.
	// It returns the projects, a token for the next page, and an error.
	ListActiveProjects(ctx context.Context, limit int, nextToken *string) ([]domain.Project, *string, error)

	// SumBillableHoursByEmployee totals the billable hours of submitted or approved entries per employee.
	SumBillableHoursByEmployee(ctx context.Context, projectID string) (map[string]float64, error)
}

// ProjectWriter defines write operations for project data
type ProjectWriter interface {
	// SaveProject inserts a new project.
	SaveProject(ctx context.Context, project domain.Project) error
}

// ProjectRepositoryFacade combines all project repository interfaces
type ProjectRepositoryFacade interface {
	ProjectReader
	ProjectWriter
}
