package repositories

import (
	"context"

	"github.com/SscSPs/timesheet_app/internal/core/domain"
)

// EmployeeReader defines read operations for employee data
type EmployeeReader interface {
	// FindEmployeeByID retrieves a specific employee by their ID.
	FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)

	// FindEmployeesByIDs retrieves several employees keyed by ID.
	FindEmployeesByIDs(ctx context.Context, employeeIDs []string) (map[string]domain.Employee, error)

	// ListActiveEmployees retrieves every active employee ordered by last name.
	ListActiveEmployees(ctx context.Context) ([]domain.Employee, error)
}

// EmployeeWriter defines write operations for employee data
type EmployeeWriter interface {
	// SaveEmployee inserts a new employee.
	SaveEmployee(ctx context.Context, employee domain.Employee) error
}

// EmployeeRepositoryFacade combines all employee repository interfaces
type EmployeeRepositoryFacade interface {
	EmployeeReader
	EmployeeWriter
}
