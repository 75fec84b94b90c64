package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/timesheet_app/internal/apperrors"
	"github.com/SscSPs/timesheet_app/internal/core/domain"
	portsrepo "github.com/SscSPs/timesheet_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/timesheet_app/internal/core/ports/services"
	"github.com/SscSPs/timesheet_app/internal/dto"
	"github.com/google/uuid"
)

// employeeService implements the EmployeeSvcFacade interface
type employeeService struct {
	BaseService
	employeeRepo portsrepo.EmployeeRepositoryFacade
	entryRepo    portsrepo.TimeEntryReader
}

// NewEmployeeService creates a new employee service with the provided dependencies
func NewEmployeeService(employeeRepo portsrepo.EmployeeRepositoryFacade, entryRepo portsrepo.TimeEntryReader, opts ...Option) portssvc.EmployeeSvcFacade {
	return &employeeService{
		BaseService:  newBaseService(opts...),
		employeeRepo: employeeRepo,
		entryRepo:    entryRepo,
	}
}

// Ensure employeeService implements the EmployeeSvcFacade interface
var _ portssvc.EmployeeSvcFacade = (*employeeService)(nil)

// CreateEmployee persists a new employee
func (s *employeeService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	if req.HourlyRate.IsNegative() {
		return nil, apperrors.NewValidationError("hourlyRate", "Hourly rate must not be negative")
	}

	now := s.Now().UTC()
	employee := domain.Employee{
		EmployeeID: uuid.NewString(),
		FirstName:  strings.TrimSpace(req.FirstName),
		LastName:   strings.TrimSpace(req.LastName),
		Email:      strings.ToLower(strings.TrimSpace(req.Email)),
		Department: req.Department,
		Role:       req.Role,
		HourlyRate: req.HourlyRate,
		IsActive:   req.IsActive == nil || *req.IsActive,
		ManagerID:  req.ManagerID,
		StartDate:  req.StartDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if employee.ManagerID != "" {
		if _, err := s.employeeRepo.FindEmployeeByID(ctx, employee.ManagerID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewValidationError("managerId", "Manager not found")
			}
			return nil, err
		}
	}

	if err := s.employeeRepo.SaveEmployee(ctx, employee); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save employee", slog.String("employee_id", employee.EmployeeID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Employee created", slog.String("employee_id", employee.EmployeeID))
	return &employee, nil
}

// GetEmployee retrieves an employee by ID
func (s *employeeService) GetEmployee(ctx context.Context, employeeID string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find employee", slog.String("employee_id", employeeID))
		}
		return nil, err
	}
	return employee, nil
}

// ListActiveEmployees retrieves every active employee
func (s *employeeService) ListActiveEmployees(ctx context.Context) ([]domain.Employee, error) {
	employees, err := s.employeeRepo.ListActiveEmployees(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list employees")
		return nil, err
	}
	if employees == nil {
		return []domain.Employee{}, nil
	}
	return employees, nil
}

// EstimatePayroll prices the hours an employee logged in [from, to)
func (s *employeeService) EstimatePayroll(ctx context.Context, employeeID string, query dto.PayrollQuery) (*dto.PayrollResponse, error) {
	from, fromOK := s.parseDay(query.From)
	to, toOK := s.parseDay(query.To)
	fields := map[string]string{}
	if !fromOK {
		fields["from"] = "From is not a valid date"
	}
	if !toOK {
		fields["to"] = "To is not a valid date"
	}
	if len(fields) > 0 {
		return nil, &apperrors.ValidationError{Fields: fields}
	}
	if !to.After(from) {
		return nil, apperrors.NewValidationError("to", "To must be after from")
	}

	employee, err := s.GetEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	entries, err := s.entryRepo.FindEntriesByEmployee(ctx, employeeID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to load entries for payroll", slog.String("employee_id", employeeID))
		return nil, err
	}
	sum, err := domain.AggregateWithThreshold(entries, s.Settings.OvertimeThreshold)
	if err != nil {
		return nil, err
	}

	est, err := domain.EstimatePayroll(sum.TotalHours, employee.HourlyRate, s.Settings.WithholdingRate)
	if err != nil {
		return nil, err
	}
	return &dto.PayrollResponse{
		EmployeeID:  employeeID,
		From:        from,
		To:          to,
		Hours:       est.Hours,
		HourlyRate:  employee.HourlyRate,
		GrossPay:    est.GrossPay,
		Withholding: est.Withholding,
		NetPay:      est.NetPay,
	}, nil
}

// parseDay accepts a date (midnight in the configured location) or an instant.
func (s *employeeService) parseDay(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if t, err := time.ParseInLocation(time.DateOnly, raw, s.Settings.Location); err == nil {
		return t.UTC(), true
	}
	return domain.ParseInstant(raw, s.Settings.Location)
}
