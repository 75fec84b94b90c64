package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/timesheet_app/internal/core/domain"
	portsrepo "github.com/SscSPs/timesheet_app/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Time entries ---

type MockTimeEntryRepository struct {
	mock.Mock
}

func (m *MockTimeEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.TimeEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TimeEntry), args.Error(1)
}

func (m *MockTimeEntryRepository) FindEntriesByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]domain.TimeEntry, error) {
	args := m.Called(ctx, employeeID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TimeEntry), args.Error(1)
}

func (m *MockTimeEntryRepository) SaveEntry(ctx context.Context, entry domain.TimeEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockTimeEntryRepository) UpdateEntry(ctx context.Context, entry domain.TimeEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockTimeEntryRepository) DeleteEntry(ctx context.Context, entryID string) error {
	args := m.Called(ctx, entryID)
	return args.Error(0)
}

// --- Timesheet periods ---

type MockTimesheetRepository struct {
	mock.Mock
}

func (m *MockTimesheetRepository) FindPeriod(ctx context.Context, employeeID string, weekStart time.Time) (*domain.TimesheetPeriod, error) {
	args := m.Called(ctx, employeeID, weekStart)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TimesheetPeriod), args.Error(1)
}

func (m *MockTimesheetRepository) ListPeriodsByWeek(ctx context.Context, weekStart time.Time) ([]domain.TimesheetPeriod, error) {
	args := m.Called(ctx, weekStart)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TimesheetPeriod), args.Error(1)
}

func (m *MockTimesheetRepository) SubmitWeek(ctx context.Context, submission portsrepo.WeekSubmission) error {
	args := m.Called(ctx, submission)
	return args.Error(0)
}

// --- Projects ---

type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) FindProjectsByIDs(ctx context.Context, projectIDs []string) (map[string]domain.Project, error) {
	args := m.Called(ctx, projectIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Project), args.Error(1)
}

func (m *MockProjectRepository) ListActiveProjects(ctx context.Context, limit int, nextToken *string) ([]domain.Project, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.Project), next, args.Error(2)
}

func (m *MockProjectRepository) SumBillableHoursByEmployee(ctx context.Context, projectID string) (map[string]float64, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]float64), args.Error(1)
}

func (m *MockProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

// --- Employees ---

type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindEmployeesByIDs(ctx context.Context, employeeIDs []string) (map[string]domain.Employee, error) {
	args := m.Called(ctx, employeeIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) ListActiveEmployees(ctx context.Context) ([]domain.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

// --- Notifier ---

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyPendingTimesheet(ctx context.Context, employee domain.Employee, weekStart time.Time) error {
	args := m.Called(ctx, employee, weekStart)
	return args.Error(0)
}

// --- Fixtures ---

// fixedNow is a Wednesday; its week starts on Sunday 2024-01-07.
var fixedNow = time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

var (
	weekStart = time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)
	weekEnd   = time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC)
)

func fixedClock() time.Time { return fixedNow }

func at(day, hour int) time.Time {
	return time.Date(2024, 1, day, hour, 0, 0, 0, time.UTC)
}

func draftEntry(id, projectID string, day, fromHour, toHour int, billable bool) domain.TimeEntry {
	e := domain.TimeEntry{EntryID: id, EmployeeID: "emp-1", ProjectID: projectID, Status: domain.StatusDraft}
	e, err := e.WithTimes(at(day, fromHour), at(day, toHour), billable)
	if err != nil {
		panic(err)
	}
	return e
}

func activeEmployee() *domain.Employee {
	return &domain.Employee{EmployeeID: "emp-1", FirstName: "Ada", LastName: "Lovelace", IsActive: true}
}

func activeProject(id string) *domain.Project {
	return &domain.Project{ProjectID: id, Name: "Project " + id, Status: domain.ProjectActive}
}
