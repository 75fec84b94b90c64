package services_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"testing"

	"github.com/SscSPs/timesheet_app/internal/apperrors"
	"github.com/SscSPs/timesheet_app/internal/core/domain"
	portsrepo "github.com/SscSPs/timesheet_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/timesheet_app/internal/core/ports/services"
	"github.com/SscSPs/timesheet_app/internal/core/services"
	"github.com/SscSPs/timesheet_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TimesheetServiceTestSuite struct {
	suite.Suite
	entryRepo     *MockTimeEntryRepository
	timesheetRepo *MockTimesheetRepository
	projectRepo   *MockProjectRepository
	employeeRepo  *MockEmployeeRepository
	service       portssvc.TimesheetSvcFacade
	ctx           context.Context
}

func (suite *TimesheetServiceTestSuite) SetupTest() {
	suite.entryRepo = new(MockTimeEntryRepository)
	suite.timesheetRepo = new(MockTimesheetRepository)
	suite.projectRepo = new(MockProjectRepository)
	suite.employeeRepo = new(MockEmployeeRepository)
	suite.service = services.NewTimesheetService(suite.entryRepo, suite.timesheetRepo, suite.projectRepo, suite.employeeRepo,
		services.WithClock(fixedClock))
	suite.ctx = context.Background()
}

func (suite *TimesheetServiceTestSuite) TearDownTest() {
	suite.entryRepo.AssertExpectations(suite.T())
	suite.timesheetRepo.AssertExpectations(suite.T())
	suite.projectRepo.AssertExpectations(suite.T())
	suite.employeeRepo.AssertExpectations(suite.T())
}

func (suite *TimesheetServiceTestSuite) expectWeek(employee *domain.Employee, entries []domain.TimeEntry, period *domain.TimesheetPeriod) {
	suite.employeeRepo.On("FindEmployeeByID", mock.Anything, "emp-1").Return(employee, nil).Once()
	suite.entryRepo.On("FindEntriesByEmployee", mock.Anything, "emp-1", weekStart, weekEnd).Return(entries, nil).Once()
	if period == nil {
		suite.timesheetRepo.On("FindPeriod", mock.Anything, "emp-1", weekStart).Return(nil, apperrors.ErrNotFound).Once()
	} else {
		suite.timesheetRepo.On("FindPeriod", mock.Anything, "emp-1", weekStart).Return(period, nil).Once()
	}
}

var submitRequest = dto.SubmitTimesheetRequest{EmployeeID: "emp-1", Week: "2024-01-10T00:00:00.000Z"}

func (suite *TimesheetServiceTestSuite) TestSubmitTimesheet_Success() {
	entries := []domain.TimeEntry{
		draftEntry("e1", "proj-1", 8, 8, 18, true),
		draftEntry("e2", "proj-2", 9, 9, 13, false),
	}
	suite.expectWeek(activeEmployee(), entries, nil)

	budgeted := *activeProject("proj-1")
	budgeted.Budget = decimal.NewFromInt(500)
	budgeted.RemainingBudget = budgeted.Budget
	own := *activeProject("proj-2")
	own.Budget = decimal.NewFromInt(1000)
	own.HourlyCostRate = decimal.NewFromInt(50)
	own.AssignedEmployees = []string{"emp-7"}
	suite.projectRepo.On("FindProjectsByIDs", mock.Anything, []string{"proj-1", "proj-2"}).
		Return(map[string]domain.Project{"proj-1": budgeted, "proj-2": own}, nil).Once()

	var captured portsrepo.WeekSubmission
	suite.timesheetRepo.On("SubmitWeek", mock.Anything, mock.AnythingOfType("repositories.WeekSubmission")).
		Run(func(args mock.Arguments) { captured = args.Get(1).(portsrepo.WeekSubmission) }).
		Return(nil).Once()

	view, err := suite.service.SubmitTimesheet(suite.ctx, submitRequest)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusSubmitted, view.Status)
	suite.True(view.Locked)
	suite.False(view.CanSubmit)
	suite.Equal(domain.TimesheetSummary{TotalHours: 14, BillableHours: 10, OvertimeHours: 0}, view.Summary)

	suite.Equal(domain.StatusSubmitted, captured.Period.Status)
	suite.NotEmpty(captured.Period.PeriodID)
	suite.True(weekStart.Equal(captured.Period.WeekStart))
	suite.Require().NotNil(captured.Period.SubmittedAt)
	suite.True(fixedNow.Equal(*captured.Period.SubmittedAt))

	suite.Require().Len(captured.Entries, 2)
	for _, e := range captured.Entries {
		suite.Equal(domain.StatusSubmitted, e.Status)
	}

	// 10h at the default rate of 100 against a budget of 500.
	suite.Require().Len(captured.Projects, 2)
	p1 := captured.Projects[0]
	suite.Equal("proj-1", p1.ProjectID)
	suite.Equal(10.0, p1.TotalHoursLogged)
	suite.True(decimal.NewFromInt(-500).Equal(p1.RemainingBudget), p1.RemainingBudget.String())
	suite.True(domain.IsOverBudget(p1))
	suite.Equal([]string{"emp-1"}, p1.AssignedEmployees)

	// Non-billable hours still consume budget, at the project's own rate.
	p2 := captured.Projects[1]
	suite.True(decimal.NewFromInt(800).Equal(p2.RemainingBudget), p2.RemainingBudget.String())
	suite.Equal([]string{"emp-7", "emp-1"}, p2.AssignedEmployees)

	suite.True(decimal.NewFromInt(100).Equal(captured.CostRates["proj-1"]))
	suite.True(decimal.NewFromInt(50).Equal(captured.CostRates["proj-2"]))
}

func (suite *TimesheetServiceTestSuite) TestSubmitTimesheet_AlreadySubmitted() {
	e := draftEntry("e1", "proj-1", 8, 9, 17, true)
	e.Status = domain.StatusSubmitted
	suite.expectWeek(activeEmployee(), []domain.TimeEntry{e}, nil)

	view, err := suite.service.SubmitTimesheet(suite.ctx, submitRequest)

	suite.Nil(view)
	suite.ErrorIs(err, apperrors.ErrAlreadySubmitted)
	suite.timesheetRepo.AssertNotCalled(suite.T(), "SubmitWeek", mock.Anything, mock.Anything)
}

func (suite *TimesheetServiceTestSuite) TestSubmitTimesheet_PeriodAlreadySubmitted() {
	period := domain.NewTimesheetPeriod("emp-1", weekStart)
	period, err := period.Submit(fixedNow)
	suite.Require().NoError(err)
	suite.expectWeek(activeEmployee(), []domain.TimeEntry{draftEntry("e1", "proj-1", 8, 9, 17, true)}, &period)

	_, err = suite.service.SubmitTimesheet(suite.ctx, submitRequest)
	suite.ErrorIs(err, apperrors.ErrAlreadySubmitted)
}

func (suite *TimesheetServiceTestSuite) TestSubmitTimesheet_Empty() {
	suite.expectWeek(activeEmployee(), nil, nil)

	_, err := suite.service.SubmitTimesheet(suite.ctx, submitRequest)
	suite.ErrorIs(err, apperrors.ErrNotSubmittable)
}

func (suite *TimesheetServiceTestSuite) TestSubmitTimesheet_InactiveEmployee() {
	inactive := activeEmployee()
	inactive.IsActive = false
	suite.expectWeek(inactive, []domain.TimeEntry{draftEntry("e1", "proj-1", 8, 9, 17, true)}, nil)

	_, err := suite.service.SubmitTimesheet(suite.ctx, submitRequest)
	suite.ErrorIs(err, apperrors.ErrNotSubmittable)
}

func (suite *TimesheetServiceTestSuite) TestSubmitTimesheet_UnknownEmployee() {
	suite.employeeRepo.On("FindEmployeeByID", mock.Anything, "emp-1").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.SubmitTimesheet(suite.ctx, submitRequest)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TimesheetServiceTestSuite) TestSubmitTimesheet_MissingProject() {
	suite.expectWeek(activeEmployee(), []domain.TimeEntry{draftEntry("e1", "gone", 8, 9, 17, true)}, nil)
	suite.projectRepo.On("FindProjectsByIDs", mock.Anything, []string{"gone"}).Return(map[string]domain.Project{}, nil).Once()

	_, err := suite.service.SubmitTimesheet(suite.ctx, submitRequest)
	suite.ErrorIs(err, apperrors.ErrNotSubmittable)
}

func (suite *TimesheetServiceTestSuite) TestSubmitTimesheet_ConcurrentSubmissionLoses() {
	suite.expectWeek(activeEmployee(), []domain.TimeEntry{draftEntry("e1", "proj-1", 8, 9, 17, true)}, nil)
	suite.projectRepo.On("FindProjectsByIDs", mock.Anything, []string{"proj-1"}).
		Return(map[string]domain.Project{"proj-1": *activeProject("proj-1")}, nil).Once()
	suite.timesheetRepo.On("SubmitWeek", mock.Anything, mock.Anything).Return(apperrors.ErrAlreadySubmitted).Once()

	view, err := suite.service.SubmitTimesheet(suite.ctx, submitRequest)
	suite.Nil(view)
	suite.ErrorIs(err, apperrors.ErrAlreadySubmitted)
}

func (suite *TimesheetServiceTestSuite) TestSubmitTimesheet_InvalidWeek() {
	_, err := suite.service.SubmitTimesheet(suite.ctx, dto.SubmitTimesheetRequest{EmployeeID: "emp-1", Week: "soon"})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TimesheetServiceTestSuite) TestGetWeek_Draft() {
	var entries []domain.TimeEntry
	for i := 0; i < 5; i++ {
		entries = append(entries, draftEntry(fmt.Sprintf("e%d", i), "proj-1", 8+i, 8, 17, true))
	}
	suite.expectWeek(activeEmployee(), entries, nil)

	view, err := suite.service.GetWeek(suite.ctx, "emp-1", "")

	suite.Require().NoError(err)
	suite.Equal(domain.StatusDraft, view.Status)
	suite.False(view.Locked)
	suite.True(view.CanSubmit)
	suite.Equal(45.0, view.Summary.TotalHours)
	suite.Equal(5.0, view.Summary.OvertimeHours)
	suite.True(weekStart.Equal(view.WeekStart))
	suite.Equal(13, view.WeekEnd.Day())
	suite.Nil(view.Period)
}

func (suite *TimesheetServiceTestSuite) TestGetWeek_EmptyWeek() {
	suite.expectWeek(activeEmployee(), nil, nil)

	view, err := suite.service.GetWeek(suite.ctx, "emp-1", "2024-01-07")
	suite.Require().NoError(err)
	suite.NotNil(view.Entries)
	suite.Equal(domain.TimesheetSummary{}, view.Summary)
	suite.False(view.CanSubmit)
}

func (suite *TimesheetServiceTestSuite) TestGetWeek_ApprovedPeriod() {
	period := domain.NewTimesheetPeriod("emp-1", weekStart)
	period.Status = domain.StatusApproved
	suite.expectWeek(activeEmployee(), []domain.TimeEntry{draftEntry("e1", "proj-1", 8, 9, 17, true)}, &period)

	view, err := suite.service.GetWeek(suite.ctx, "emp-1", "")
	suite.Require().NoError(err)
	suite.Equal(domain.StatusApproved, view.Status)
	suite.True(view.Locked)
	suite.False(view.CanSubmit)
}

func (suite *TimesheetServiceTestSuite) TestGetWeek_CustomOvertimeThreshold() {
	settings := services.DefaultSettings()
	settings.OvertimeThreshold = 8
	suite.service = services.NewTimesheetService(suite.entryRepo, suite.timesheetRepo, suite.projectRepo, suite.employeeRepo,
		services.WithClock(fixedClock), services.WithSettings(settings))
	suite.expectWeek(activeEmployee(), []domain.TimeEntry{draftEntry("e1", "proj-1", 8, 8, 18, true)}, nil)

	view, err := suite.service.GetWeek(suite.ctx, "emp-1", "")
	suite.Require().NoError(err)
	suite.Equal(2.0, view.Summary.OvertimeHours)
}

func (suite *TimesheetServiceTestSuite) TestExportWeekCSV() {
	entries := []domain.TimeEntry{
		draftEntry("e1", "proj-1", 8, 9, 17, true),
		draftEntry("e2", "proj-1", 9, 9, 11, false),
	}
	entries[0].Description = "API work, part 1"
	suite.expectWeek(activeEmployee(), entries, nil)
	suite.projectRepo.On("FindProjectsByIDs", mock.Anything, []string{"proj-1"}).
		Return(map[string]domain.Project{"proj-1": {ProjectID: "proj-1", Name: "Website"}}, nil).Once()

	var buf bytes.Buffer
	err := suite.service.ExportWeekCSV(suite.ctx, "emp-1", "", &buf)
	suite.Require().NoError(err)

	rows, err := csv.NewReader(&buf).ReadAll()
	suite.Require().NoError(err)
	suite.Require().Len(rows, 4)
	suite.Equal("Date", rows[0][0])
	suite.Equal([]string{"2024-01-08", "09:00", "17:00", "Website", "API work, part 1", "8.00", "true", "8.00", "draft"}, rows[1])
	suite.Equal("2.00", rows[2][5])
	suite.Equal([]string{"Total", "", "", "", "", "10.00", "", "8.00", "draft"}, rows[3])
}

func (suite *TimesheetServiceTestSuite) TestExportWeekCSV_UnknownEmployee() {
	suite.employeeRepo.On("FindEmployeeByID", mock.Anything, "emp-1").Return(nil, apperrors.ErrNotFound).Once()

	var buf bytes.Buffer
	err := suite.service.ExportWeekCSV(suite.ctx, "emp-1", "", &buf)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Zero(buf.Len())
}

func TestTimesheetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TimesheetServiceTestSuite))
}
