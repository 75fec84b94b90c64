package services

import (
	"context"

	"github.com/SscSPs/timesheet_app/internal/core/domain"
	"github.com/SscSPs/timesheet_app/internal/dto"
)

// EmployeeReaderSvc defines read operations for employee data
type EmployeeReaderSvc interface {
	// GetEmployee retrieves a specific employee by ID.
	GetEmployee(ctx context.Context, employeeID string) (*domain.Employee, error)

	// ListActiveEmployees retrieves every active employee.
	ListActiveEmployees(ctx context.Context) ([]domain.Employee, error)
}

// EmployeeWriterSvc defines write operations for employee data
type EmployeeWriterSvc interface {
	// CreateEmployee persists a new employee.
	CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error)
}

// PayrollSvc estimates pay from logged hours
type PayrollSvc interface {
	// EstimatePayroll prices the hours an employee logged in [from, to).
	EstimatePayroll(ctx context.Context, employeeID string, query dto.PayrollQuery) (*dto.PayrollResponse, error)
}

// EmployeeSvcFacade combines all employee service interfaces
type EmployeeSvcFacade interface {
	EmployeeReaderSvc
	EmployeeWriterSvc
	PayrollSvc
}
