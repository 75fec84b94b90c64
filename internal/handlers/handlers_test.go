package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/timesheet_app/internal/apperrors"
	"github.com/SscSPs/timesheet_app/internal/core/domain"
	portssvc "github.com/SscSPs/timesheet_app/internal/core/ports/services"
	"github.com/SscSPs/timesheet_app/internal/dto"
	"github.com/SscSPs/timesheet_app/internal/handlers"
	"github.com/SscSPs/timesheet_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type HandlersTestSuite struct {
	suite.Suite
	router *gin.Engine

	mockTimeEntryService *MockTimeEntryService
	mockTimesheetService *MockTimesheetService
	mockProjectService   *MockProjectService
	mockEmployeeService  *MockEmployeeService
	mockReminderService  *MockReminderService
}

func (suite *HandlersTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	suite.mockTimeEntryService = new(MockTimeEntryService)
	suite.mockTimesheetService = new(MockTimesheetService)
	suite.mockProjectService = new(MockProjectService)
	suite.mockEmployeeService = new(MockEmployeeService)
	suite.mockReminderService = new(MockReminderService)

	cfg := &config.Config{IsProduction: true, Location: time.UTC}
	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		TimeEntry: suite.mockTimeEntryService,
		Timesheet: suite.mockTimesheetService,
		Project:   suite.mockProjectService,
		Employee:  suite.mockEmployeeService,
		Reminder:  suite.mockReminderService,
	}, stubHealth{})
}

func (suite *HandlersTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader = http.NoBody
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlersTestSuite) decode(w *httptest.ResponseRecorder, into any) {
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), into), w.Body.String())
}

func sampleEntry(id string, start time.Time, hours float64) *domain.TimeEntry {
	e, err := domain.TimeEntry{EntryID: id, EmployeeID: "emp-1", ProjectID: "proj-1", Status: domain.StatusDraft}.
		WithTimes(start, start.Add(time.Duration(hours*float64(time.Hour))), true)
	if err != nil {
		panic(err)
	}
	return &e
}

var monday = time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC)

// --- time entries ---

func (suite *HandlersTestSuite) TestCreateTimeEntry_Success() {
	req := dto.CreateTimeEntryRequest{
		EmployeeID:  "emp-1",
		ProjectID:   "proj-1",
		StartTime:   "2024-01-08T09:00:00Z",
		EndTime:     "2024-01-08T17:00:00Z",
		Description: "API work",
	}
	suite.mockTimeEntryService.On("CreateTimeEntry", mock.Anything, req).Return(sampleEntry("entry-1", monday, 8), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/timeentries", req)

	suite.Equal(http.StatusCreated, w.Code, w.Body.String())
	var res dto.CreateTimeEntryResponse
	suite.decode(w, &res)
	suite.True(res.Success)
	suite.Equal("entry-1", res.ID)
	suite.Equal(8.0, res.Entry.Hours)
	suite.Equal(domain.StatusDraft, res.Entry.Status)
	suite.mockTimeEntryService.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestCreateTimeEntry_ValidationFields() {
	suite.mockTimeEntryService.On("CreateTimeEntry", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewValidationError("projectId", "Project is required")).Once()

	w := suite.do(http.MethodPost, "/api/v1/timeentries", dto.CreateTimeEntryRequest{EmployeeID: "emp-1"})

	suite.Equal(http.StatusBadRequest, w.Code)
	var res struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	suite.decode(w, &res)
	suite.Equal("Project is required", res.Fields["projectId"])
}

func (suite *HandlersTestSuite) TestCreateTimeEntry_LockedWeek() {
	suite.mockTimeEntryService.On("CreateTimeEntry", mock.Anything, mock.Anything).Return(nil, apperrors.ErrLockedPeriod).Once()

	w := suite.do(http.MethodPost, "/api/v1/timeentries", dto.CreateTimeEntryRequest{EmployeeID: "emp-1"})

	suite.Equal(http.StatusLocked, w.Code)
}

func (suite *HandlersTestSuite) TestCreateTimeEntry_MalformedBody() {
	w := suite.do(http.MethodPost, "/api/v1/timeentries", `{"employeeId":`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "Invalid request format")
	suite.mockTimeEntryService.AssertNotCalled(suite.T(), "CreateTimeEntry", mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestCreateTimeEntry_NegativeBillableHours() {
	w := suite.do(http.MethodPost, "/api/v1/timeentries", `{"employeeId":"emp-1","billableHours":-2}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	var res map[string]any
	suite.decode(w, &res)
	suite.Contains(res, "fields")
	suite.mockTimeEntryService.AssertNotCalled(suite.T(), "CreateTimeEntry", mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestGetTimeEntry_NotFound() {
	suite.mockTimeEntryService.On("GetTimeEntry", mock.Anything, "missing").Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodGet, "/api/v1/timeentries/missing", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlersTestSuite) TestListWeekEntries() {
	entries := []domain.TimeEntry{*sampleEntry("e1", monday, 8), *sampleEntry("e2", monday.AddDate(0, 0, 1), 4)}
	suite.mockTimeEntryService.On("ListWeekEntries", mock.Anything, "emp-1", "2024-01-10").Return(entries, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/timeentries?employee=emp-1&week=2024-01-10", nil)

	suite.Equal(http.StatusOK, w.Code)
	var res []dto.TimeEntryResponse
	suite.decode(w, &res)
	suite.Len(res, 2)
	suite.Equal("e1", res[0].EntryID)
	suite.Equal(4.0, res[1].Hours)
}

func (suite *HandlersTestSuite) TestListWeekEntries_EmployeeRequired() {
	w := suite.do(http.MethodGet, "/api/v1/timeentries?week=2024-01-10", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTimeEntryService.AssertNotCalled(suite.T(), "ListWeekEntries", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestUpdateTimeEntry() {
	req := dto.UpdateTimeEntryRequest{ProjectID: "proj-1", StartTime: "2024-01-08T09:00:00Z", EndTime: "2024-01-08T11:30:00Z"}
	suite.mockTimeEntryService.On("UpdateTimeEntry", mock.Anything, "entry-1", req).Return(sampleEntry("entry-1", monday, 2.5), nil).Once()

	w := suite.do(http.MethodPut, "/api/v1/timeentries/entry-1", req)

	suite.Equal(http.StatusOK, w.Code)
	var res dto.TimeEntryResponse
	suite.decode(w, &res)
	suite.Equal(2.5, res.Hours)
}

func (suite *HandlersTestSuite) TestDeleteTimeEntry() {
	suite.mockTimeEntryService.On("DeleteTimeEntry", mock.Anything, "entry-1").Return(nil).Once()
	suite.mockTimeEntryService.On("DeleteTimeEntry", mock.Anything, "entry-2").Return(apperrors.ErrLockedPeriod).Once()

	w := suite.do(http.MethodDelete, "/api/v1/timeentries/entry-1", nil)
	suite.Equal(http.StatusOK, w.Code)
	var res dto.SuccessResponse
	suite.decode(w, &res)
	suite.True(res.Success)

	w = suite.do(http.MethodDelete, "/api/v1/timeentries/entry-2", nil)
	suite.Equal(http.StatusLocked, w.Code)
}

// --- timesheets ---

func (suite *HandlersTestSuite) TestGetWeek() {
	week := &domain.WeekTimesheet{
		EmployeeID: "emp-1",
		WeekStart:  time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC),
		WeekEnd:    time.Date(2024, 1, 13, 0, 0, 0, 0, time.UTC),
		Status:     domain.StatusDraft,
		CanSubmit:  true,
		Summary:    domain.TimesheetSummary{TotalHours: 8, BillableHours: 8},
		Entries:    []domain.TimeEntry{*sampleEntry("e1", monday, 8)},
	}
	suite.mockTimesheetService.On("GetWeek", mock.Anything, "emp-1", "").Return(week, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/timesheets?employee=emp-1", nil)

	suite.Equal(http.StatusOK, w.Code)
	var res dto.WeekResponse
	suite.decode(w, &res)
	suite.Equal("2024-01-07", res.WeekStart)
	suite.Equal("2024-01-13", res.WeekEnd)
	suite.True(res.CanSubmit)
	suite.Equal(8.0, res.Summary.TotalHours)
	suite.Len(res.Entries, 1)
	suite.Nil(res.SubmittedAt)
}

func (suite *HandlersTestSuite) TestExportWeek() {
	csvBody := "date,project,hours\n2024-01-08,proj-1,8.00\n"
	suite.mockTimesheetService.On("ExportWeekCSV", mock.Anything, "emp-1", "2024-01-10", mock.Anything).
		Run(func(args mock.Arguments) {
			_, _ = io.WriteString(args.Get(3).(io.Writer), csvBody)
		}).
		Return(nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/timesheets/export?employee=emp-1&week=2024-01-10", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	suite.Equal(`attachment; filename="timesheet-emp-1-2024-01-10.csv"`, w.Header().Get("Content-Disposition"))
	suite.Equal(csvBody, w.Body.String())
}

func (suite *HandlersTestSuite) TestExportWeek_ErrorIsJSON() {
	suite.mockTimesheetService.On("ExportWeekCSV", mock.Anything, "ghost", "", mock.Anything).Return(apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodGet, "/api/v1/timesheets/export?employee=ghost", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Contains(w.Header().Get("Content-Type"), "application/json")
	suite.Empty(w.Header().Get("Content-Disposition"))
}

func (suite *HandlersTestSuite) TestSubmitTimesheet() {
	req := dto.SubmitTimesheetRequest{EmployeeID: "emp-1", Week: "2024-01-10"}
	submittedAt := time.Date(2024, 1, 13, 18, 0, 0, 0, time.UTC)
	week := &domain.WeekTimesheet{
		EmployeeID: "emp-1",
		WeekStart:  time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC),
		Status:     domain.StatusSubmitted,
		Locked:     true,
		Summary:    domain.TimesheetSummary{TotalHours: 45, BillableHours: 40, OvertimeHours: 5},
		Period:     &domain.TimesheetPeriod{EmployeeID: "emp-1", Status: domain.StatusSubmitted, SubmittedAt: &submittedAt},
	}
	suite.mockTimesheetService.On("SubmitTimesheet", mock.Anything, req).Return(week, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/timesheet/submit", req)

	suite.Equal(http.StatusOK, w.Code)
	var res dto.SubmitTimesheetResponse
	suite.decode(w, &res)
	suite.True(res.Success)
	suite.Equal("2024-01-07", res.WeekStart)
	suite.Equal(5.0, res.Summary.OvertimeHours)
	suite.Contains(res.Message, "2024-01-07")
}

func (suite *HandlersTestSuite) TestSubmitTimesheet_ErrorStatuses() {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "already submitted", err: apperrors.ErrAlreadySubmitted, want: http.StatusConflict},
		{name: "not submittable", err: apperrors.ErrNotSubmittable, want: http.StatusUnprocessableEntity},
		{name: "unknown employee", err: apperrors.ErrNotFound, want: http.StatusNotFound},
		{name: "bad week", err: apperrors.NewValidationError("week", "Week is not a valid date"), want: http.StatusBadRequest},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			req := dto.SubmitTimesheetRequest{EmployeeID: "emp-1", Week: tt.name}
			suite.mockTimesheetService.On("SubmitTimesheet", mock.Anything, req).Return(nil, tt.err).Once()

			w := suite.do(http.MethodPost, "/api/v1/timesheet/submit", req)
			suite.Equal(tt.want, w.Code, w.Body.String())
		})
	}
}

func (suite *HandlersTestSuite) TestSubmitTimesheet_WeekRequired() {
	w := suite.do(http.MethodPost, "/api/v1/timesheet/submit", `{"employeeId":"emp-1"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTimesheetService.AssertNotCalled(suite.T(), "SubmitTimesheet", mock.Anything, mock.Anything)
}

// --- projects ---

func (suite *HandlersTestSuite) TestCreateProject() {
	body := `{"name":"Website","client":"Acme","budget":"5000","startDate":"2024-01-01T00:00:00Z","endDate":"2024-06-30T00:00:00Z"}`
	project := &domain.Project{
		ProjectID:       "proj-1",
		Name:            "Website",
		Client:          "Acme",
		Budget:          decimal.NewFromInt(5000),
		RemainingBudget: decimal.NewFromInt(5000),
		StartDate:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
		Status:          domain.ProjectActive,
	}
	suite.mockProjectService.On("CreateProject", mock.Anything, mock.MatchedBy(func(r dto.CreateProjectRequest) bool {
		return r.Name == "Website" && r.Budget.Equal(decimal.NewFromInt(5000)) && r.HourlyCostRate == nil
	})).Return(project, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/projects", body)

	suite.Equal(http.StatusCreated, w.Code, w.Body.String())
	var res map[string]any
	suite.decode(w, &res)
	suite.Equal("proj-1", res["id"])
	suite.Equal("5000", res["remainingBudget"])
	suite.Equal(false, res["overBudget"])
	suite.Equal([]any{}, res["assignedEmployees"])
}

func (suite *HandlersTestSuite) TestCreateProject_Duplicate() {
	suite.mockProjectService.On("CreateProject", mock.Anything, mock.Anything).Return(nil, apperrors.ErrDuplicate).Once()

	w := suite.do(http.MethodPost, "/api/v1/projects", `{"name":"Website","startDate":"2024-01-01T00:00:00Z","endDate":"2024-06-30T00:00:00Z"}`)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlersTestSuite) TestListProjects_DefaultLimit() {
	next := "token-2"
	projects := []domain.Project{{ProjectID: "p1", Name: "Apollo"}, {ProjectID: "p2", Name: "Artemis"}}
	suite.mockProjectService.On("ListActiveProjects", mock.Anything, 20, (*string)(nil)).Return(projects, &next, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/projects", nil)

	suite.Equal(http.StatusOK, w.Code)
	var res dto.ListProjectsResponse
	suite.decode(w, &res)
	suite.Len(res.Projects, 2)
	suite.Require().NotNil(res.NextToken)
	suite.Equal("token-2", *res.NextToken)
}

func (suite *HandlersTestSuite) TestListProjects_PassesToken() {
	suite.mockProjectService.On("ListActiveProjects", mock.Anything, 2, mock.MatchedBy(func(tok *string) bool {
		return tok != nil && *tok == "abc"
	})).Return([]domain.Project{}, nil, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/projects?limit=2&nextToken=abc", nil)

	suite.Equal(http.StatusOK, w.Code)
	var res map[string]any
	suite.decode(w, &res)
	suite.NotContains(res, "nextToken")
	suite.mockProjectService.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestListProjects_LimitTooLarge() {
	w := suite.do(http.MethodGet, "/api/v1/projects?limit=500", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockProjectService.AssertNotCalled(suite.T(), "ListActiveProjects", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestGetBillableAmount() {
	amount := &dto.BillableAmountResponse{
		ProjectID:       "proj-1",
		Amount:          decimal.NewFromInt(1320),
		Markup:          decimal.RequireFromString("1.2"),
		HoursByEmployee: map[string]float64{"emp-1": 10},
	}
	suite.mockProjectService.On("GetBillableAmount", mock.Anything, "proj-1").Return(amount, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/projects/proj-1/billable-amount", nil)

	suite.Equal(http.StatusOK, w.Code)
	var res map[string]any
	suite.decode(w, &res)
	suite.Equal("1320", res["amount"])
	suite.Equal("1.2", res["markup"])
}

// --- employees ---

func (suite *HandlersTestSuite) TestCreateEmployee() {
	employee := &domain.Employee{EmployeeID: "emp-1", FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", IsActive: true}
	suite.mockEmployeeService.On("CreateEmployee", mock.Anything, mock.MatchedBy(func(r dto.CreateEmployeeRequest) bool {
		return r.Email == "ada@example.com" && r.IsActive == nil
	})).Return(employee, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/employees", `{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","hourlyRate":"80"}`)

	suite.Equal(http.StatusCreated, w.Code, w.Body.String())
	var res dto.EmployeeResponse
	suite.decode(w, &res)
	suite.Equal("Ada Lovelace", res.FullName)
	suite.Empty(res.ManagerID)
}

func (suite *HandlersTestSuite) TestCreateEmployee_InvalidEmail() {
	w := suite.do(http.MethodPost, "/api/v1/employees", `{"firstName":"Ada","lastName":"Lovelace","email":"not-an-email"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockEmployeeService.AssertNotCalled(suite.T(), "CreateEmployee", mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestGetEmployee_StorageErrorIsHidden() {
	suite.mockEmployeeService.On("GetEmployee", mock.Anything, "emp-1").
		Return(nil, apperrors.NewStorageError("FindEmployeeByID", errors.New("connection refused"))).Once()

	w := suite.do(http.MethodGet, "/api/v1/employees/emp-1", nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.NotContains(w.Body.String(), "connection refused")
	suite.Contains(w.Body.String(), "Failed to retrieve employee")
}

func (suite *HandlersTestSuite) TestListEmployees() {
	suite.mockEmployeeService.On("ListActiveEmployees", mock.Anything).
		Return([]domain.Employee{{EmployeeID: "emp-1", IsActive: true}, {EmployeeID: "emp-2", IsActive: true}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/employees", nil)

	suite.Equal(http.StatusOK, w.Code)
	var res []dto.EmployeeResponse
	suite.decode(w, &res)
	suite.Len(res, 2)
}

func (suite *HandlersTestSuite) TestEstimatePayroll() {
	query := dto.PayrollQuery{From: "2024-01-01", To: "2024-02-01"}
	estimate := &dto.PayrollResponse{
		EmployeeID:  "emp-1",
		Hours:       40,
		HourlyRate:  decimal.NewFromInt(25),
		GrossPay:    decimal.NewFromInt(1000),
		Withholding: decimal.NewFromInt(250),
		NetPay:      decimal.NewFromInt(750),
	}
	suite.mockEmployeeService.On("EstimatePayroll", mock.Anything, "emp-1", query).Return(estimate, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/employees/emp-1/payroll?from=2024-01-01&to=2024-02-01", nil)

	suite.Equal(http.StatusOK, w.Code)
	var res map[string]any
	suite.decode(w, &res)
	suite.Equal("750", res["netPay"])
}

func (suite *HandlersTestSuite) TestEstimatePayroll_RangeRequired() {
	w := suite.do(http.MethodGet, "/api/v1/employees/emp-1/payroll?from=2024-01-01", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

// --- reminders ---

func (suite *HandlersTestSuite) TestSendReminders_EmptyBody() {
	suite.mockReminderService.On("SendSubmissionReminders", mock.Anything, dto.ReminderRequest{}).
		Return(&dto.ReminderResponse{WeekStart: "2024-01-07", Notified: []string{"emp-2"}}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/reminders", nil)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var res dto.ReminderResponse
	suite.decode(w, &res)
	suite.Equal([]string{"emp-2"}, res.Notified)
}

func (suite *HandlersTestSuite) TestSendReminders_WithWeek() {
	suite.mockReminderService.On("SendSubmissionReminders", mock.Anything, dto.ReminderRequest{Week: "2024-01-10"}).
		Return(&dto.ReminderResponse{WeekStart: "2024-01-07", Notified: []string{}}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/reminders", dto.ReminderRequest{Week: "2024-01-10"})

	suite.Equal(http.StatusOK, w.Code)
	suite.mockReminderService.AssertExpectations(suite.T())
}

// --- health ---

func (suite *HandlersTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlersTestSuite) TestSwaggerDisabledInProduction() {
	w := suite.do(http.MethodGet, "/swagger/index.html", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

func TestHealth_StoreUnavailable(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers.RegisterRoutes(r, &config.Config{IsProduction: true}, &portssvc.ServiceContainer{}, stubHealth{err: errors.New("down")})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
