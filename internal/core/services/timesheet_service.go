package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"time"

	"github.com/SscSPs/timesheet_app/internal/apperrors"
	"github.com/SscSPs/timesheet_app/internal/core/domain"
	portsrepo "github.com/SscSPs/timesheet_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/timesheet_app/internal/core/ports/services"
	"github.com/SscSPs/timesheet_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// timesheetService implements the TimesheetSvcFacade interface
type timesheetService struct {
	BaseService
	weekLoader
	timesheetRepo portsrepo.TimesheetRepositoryFacade
	projectRepo   portsrepo.ProjectReader
	employeeRepo  portsrepo.EmployeeReader
}

// NewTimesheetService creates a new timesheet service with the provided dependencies
func NewTimesheetService(
	entryRepo portsrepo.TimeEntryReader,
	timesheetRepo portsrepo.TimesheetRepositoryFacade,
	projectRepo portsrepo.ProjectReader,
	employeeRepo portsrepo.EmployeeReader,
	opts ...Option,
) portssvc.TimesheetSvcFacade {
	return &timesheetService{
		BaseService:   newBaseService(opts...),
		weekLoader:    weekLoader{entries: entryRepo, periods: timesheetRepo},
		timesheetRepo: timesheetRepo,
		projectRepo:   projectRepo,
		employeeRepo:  employeeRepo,
	}
}

// Ensure timesheetService implements the TimesheetSvcFacade interface
var _ portssvc.TimesheetSvcFacade = (*timesheetService)(nil)

// GetWeek assembles the timesheet of one employee week
func (s *timesheetService) GetWeek(ctx context.Context, employeeID string, week string) (*domain.WeekTimesheet, error) {
	weekStart, err := s.ResolveWeek(week)
	if err != nil {
		return nil, err
	}

	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find employee", slog.String("employee_id", employeeID))
		}
		return nil, err
	}

	entries, period, err := s.load(ctx, employeeID, weekStart)
	if err != nil {
		s.LogError(ctx, err, "Failed to load week",
			slog.String("employee_id", employeeID),
			slog.String("week_start", weekStart.Format(time.DateOnly)))
		return nil, err
	}

	return s.assemble(*employee, weekStart, entries, period)
}

// SubmitTimesheet submits an entire employee week
func (s *timesheetService) SubmitTimesheet(ctx context.Context, req dto.SubmitTimesheetRequest) (*domain.WeekTimesheet, error) {
	weekStart, err := domain.ParseWeek(req.Week, s.Settings.Location)
	if err != nil {
		return nil, err
	}
	logger := s.GetLogger(ctx).With(
		slog.String("employee_id", req.EmployeeID),
		slog.String("week_start", weekStart.Format(time.DateOnly)))

	employee, err := s.employeeRepo.FindEmployeeByID(ctx, req.EmployeeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find employee", slog.String("error", err.Error()))
		}
		return nil, err
	}

	entries, period, err := s.load(ctx, req.EmployeeID, weekStart)
	if err != nil {
		logger.Error("Failed to load week", slog.String("error", err.Error()))
		return nil, err
	}

	submitted, err := domain.Submit(entries, *employee)
	if err != nil {
		logger.Info("Timesheet submission refused", slog.String("reason", err.Error()))
		return nil, err
	}

	now := s.Now().UTC()
	if period == nil {
		p := domain.NewTimesheetPeriod(req.EmployeeID, weekStart)
		p.PeriodID = uuid.NewString()
		p.CreatedAt = now
		period = &p
	}
	submittedPeriod, err := period.Submit(now)
	if err != nil {
		logger.Info("Timesheet submission refused", slog.String("reason", err.Error()))
		return nil, err
	}
	for i := range submitted {
		submitted[i].LastUpdatedAt = now
	}

	projects, rates, err := s.attribute(ctx, submitted, now)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotSubmittable) {
			logger.Error("Failed to attribute hours to projects", slog.String("error", err.Error()))
		}
		return nil, err
	}

	err = s.timesheetRepo.SubmitWeek(ctx, portsrepo.WeekSubmission{
		Period:    submittedPeriod,
		Entries:   submitted,
		Projects:  projects,
		CostRates: rates,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrAlreadySubmitted) {
			logger.Info("Timesheet was submitted concurrently")
		} else {
			logger.Error("Failed to persist timesheet submission", slog.String("error", err.Error()))
		}
		return nil, err
	}

	view, err := s.assemble(*employee, weekStart, submitted, &submittedPeriod)
	if err != nil {
		return nil, err
	}
	logger.Info("Timesheet submitted",
		slog.Int("entries", len(submitted)),
		slog.Float64("total_hours", view.Summary.TotalHours))
	return view, nil
}

// attribute adds the hours of the submitted entries to their projects' budgets.
// Projects are returned in ID order along with the rate each was costed at.
func (s *timesheetService) attribute(ctx context.Context, entries []domain.TimeEntry, now time.Time) ([]domain.Project, map[string]decimal.Decimal, error) {
	var ids []string
	for _, e := range entries {
		if !slices.Contains(ids, e.ProjectID) {
			ids = append(ids, e.ProjectID)
		}
	}
	slices.Sort(ids)

	found, err := s.projectRepo.FindProjectsByIDs(ctx, ids)
	if err != nil {
		return nil, nil, err
	}

	projects := make([]domain.Project, 0, len(ids))
	rates := make(map[string]decimal.Decimal, len(ids))
	for _, id := range ids {
		p, ok := found[id]
		if !ok {
			return nil, nil, fmt.Errorf("%w: project %s no longer exists", apperrors.ErrNotSubmittable, id)
		}
		rate := domain.ResolveCostRate(p, s.Settings.DefaultCostRate)
		rates[id] = rate
		for _, e := range entries {
			if e.ProjectID != id {
				continue
			}
			hours, err := e.Hours()
			if err != nil {
				return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrNotSubmittable, err)
			}
			if p, err = domain.Attribute(p, e.EmployeeID, hours, rate); err != nil {
				return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrNotSubmittable, err)
			}
		}
		p.LastUpdatedAt = now
		if domain.IsOverBudget(p) {
			s.LogInfo(ctx, "Project is over budget",
				slog.String("project_id", p.ProjectID),
				slog.String("remaining_budget", p.RemainingBudget.String()))
		}
		projects = append(projects, p)
	}
	return projects, rates, nil
}

func (s *timesheetService) assemble(employee domain.Employee, weekStart time.Time, entries []domain.TimeEntry, period *domain.TimesheetPeriod) (*domain.WeekTimesheet, error) {
	summary, err := domain.AggregateWithThreshold(entries, s.Settings.OvertimeThreshold)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []domain.TimeEntry{}
	}

	status := domain.WeekStatus(entries)
	if status == domain.StatusDraft && period != nil {
		status = period.Status
	}
	locked := weekMutable(entries, period) != nil

	return &domain.WeekTimesheet{
		EmployeeID: employee.EmployeeID,
		WeekStart:  weekStart,
		WeekEnd:    domain.WeekEnd(weekStart),
		Status:     status,
		Locked:     locked,
		CanSubmit:  !locked && domain.CanSubmit(entries, employee),
		Summary:    summary,
		Entries:    entries,
		Period:     period,
	}, nil
}

var csvHeader = []string{"Date", "Start", "End", "Project", "Description", "Hours", "Billable", "Billable Hours", "Status"}

// ExportWeekCSV writes one row per entry of the week, in the configured location
func (s *timesheetService) ExportWeekCSV(ctx context.Context, employeeID string, week string, w io.Writer) error {
	view, err := s.GetWeek(ctx, employeeID, week)
	if err != nil {
		return err
	}

	names := map[string]string{}
	if len(view.Entries) > 0 {
		var ids []string
		for _, e := range view.Entries {
			if !slices.Contains(ids, e.ProjectID) {
				ids = append(ids, e.ProjectID)
			}
		}
		projects, err := s.projectRepo.FindProjectsByIDs(ctx, ids)
		if err != nil {
			s.LogError(ctx, err, "Failed to load projects for export", slog.String("employee_id", employeeID))
			return err
		}
		for id, p := range projects {
			names[id] = p.Name
		}
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	loc := s.Settings.Location
	for _, e := range view.Entries {
		name, ok := names[e.ProjectID]
		if !ok {
			name = e.ProjectID
		}
		hours, _ := e.Hours()
		start := e.StartTime.In(loc)
		row := []string{
			start.Format(time.DateOnly),
			start.Format("15:04"),
			e.EndTime.In(loc).Format("15:04"),
			name,
			e.Description,
			formatHours(hours),
			strconv.FormatBool(e.Billable),
			formatHours(e.BillableHours),
			string(e.Status),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	total := []string{"Total", "", "", "", "", formatHours(view.Summary.TotalHours), "", formatHours(view.Summary.BillableHours), string(view.Status)}
	if err := cw.Write(total); err != nil {
		return fmt.Errorf("failed to write csv row: %w", err)
	}
	cw.Flush()
	return cw.Error()
}

func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', 2, 64)
}
