package handlers_test

import (
	"context"
	"io"

	"github.com/SscSPs/timesheet_app/internal/core/domain"
	portssvc "github.com/SscSPs/timesheet_app/internal/core/ports/services"
	"github.com/SscSPs/timesheet_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock TimeEntryService ---
type MockTimeEntryService struct {
	mock.Mock
}

func (m *MockTimeEntryService) GetTimeEntry(ctx context.Context, entryID string) (*domain.TimeEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TimeEntry), args.Error(1)
}
func (m *MockTimeEntryService) ListWeekEntries(ctx context.Context, employeeID string, week string) ([]domain.TimeEntry, error) {
	args := m.Called(ctx, employeeID, week)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TimeEntry), args.Error(1)
}
func (m *MockTimeEntryService) CreateTimeEntry(ctx context.Context, req dto.CreateTimeEntryRequest) (*domain.TimeEntry, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TimeEntry), args.Error(1)
}
func (m *MockTimeEntryService) UpdateTimeEntry(ctx context.Context, entryID string, req dto.UpdateTimeEntryRequest) (*domain.TimeEntry, error) {
	args := m.Called(ctx, entryID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TimeEntry), args.Error(1)
}
func (m *MockTimeEntryService) DeleteTimeEntry(ctx context.Context, entryID string) error {
	args := m.Called(ctx, entryID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.TimeEntrySvcFacade = (*MockTimeEntryService)(nil)

// --- Mock TimesheetService ---
type MockTimesheetService struct {
	mock.Mock
}

func (m *MockTimesheetService) GetWeek(ctx context.Context, employeeID string, week string) (*domain.WeekTimesheet, error) {
	args := m.Called(ctx, employeeID, week)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WeekTimesheet), args.Error(1)
}
func (m *MockTimesheetService) ExportWeekCSV(ctx context.Context, employeeID string, week string, w io.Writer) error {
	args := m.Called(ctx, employeeID, week, w)
	return args.Error(0)
}
func (m *MockTimesheetService) SubmitTimesheet(ctx context.Context, req dto.SubmitTimesheetRequest) (*domain.WeekTimesheet, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WeekTimesheet), args.Error(1)
}

var _ portssvc.TimesheetSvcFacade = (*MockTimesheetService)(nil)

// --- Mock ProjectService ---
type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) GetProject(ctx context.Context, projectID string) (*domain.Project, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}
func (m *MockProjectService) ListActiveProjects(ctx context.Context, limit int, nextToken *string) ([]domain.Project, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	var next *string
	if v := args.Get(1); v != nil {
		next = v.(*string)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.Project), next, args.Error(2)
}
func (m *MockProjectService) CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*domain.Project, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}
func (m *MockProjectService) GetBillableAmount(ctx context.Context, projectID string) (*dto.BillableAmountResponse, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BillableAmountResponse), args.Error(1)
}

var _ portssvc.ProjectSvcFacade = (*MockProjectService)(nil)

// --- Mock EmployeeService ---
type MockEmployeeService struct {
	mock.Mock
}

func (m *MockEmployeeService) GetEmployee(ctx context.Context, employeeID string) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}
func (m *MockEmployeeService) ListActiveEmployees(ctx context.Context) ([]domain.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}
func (m *MockEmployeeService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}
func (m *MockEmployeeService) EstimatePayroll(ctx context.Context, employeeID string, query dto.PayrollQuery) (*dto.PayrollResponse, error) {
	args := m.Called(ctx, employeeID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PayrollResponse), args.Error(1)
}

var _ portssvc.EmployeeSvcFacade = (*MockEmployeeService)(nil)

// --- Mock ReminderService ---
type MockReminderService struct {
	mock.Mock
}

func (m *MockReminderService) SendSubmissionReminders(ctx context.Context, req dto.ReminderRequest) (*dto.ReminderResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReminderResponse), args.Error(1)
}

var _ portssvc.ReminderSvc = (*MockReminderService)(nil)

// stubHealth is a fixed HealthChecker.
type stubHealth struct {
	err error
}

func (s stubHealth) Ping(context.Context) error { return s.err }
