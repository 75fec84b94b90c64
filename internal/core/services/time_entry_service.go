package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/timesheet_app/internal/apperrors"
	"github.com/SscSPs/timesheet_app/internal/core/domain"
	portsrepo "github.com/SscSPs/timesheet_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/timesheet_app/internal/core/ports/services"
	"github.com/SscSPs/timesheet_app/internal/dto"
	"github.com/google/uuid"
)

// timeEntryService implements the TimeEntrySvcFacade interface
type timeEntryService struct {
	BaseService
	weekLoader
	entryRepo    portsrepo.TimeEntryRepositoryFacade
	projectRepo  portsrepo.ProjectReader
	employeeRepo portsrepo.EmployeeReader
}

// NewTimeEntryService creates a new time entry service with the provided dependencies
func NewTimeEntryService(
	entryRepo portsrepo.TimeEntryRepositoryFacade,
	periodRepo portsrepo.TimesheetReader,
	projectRepo portsrepo.ProjectReader,
	employeeRepo portsrepo.EmployeeReader,
	opts ...Option,
) portssvc.TimeEntrySvcFacade {
	return &timeEntryService{
		BaseService:  newBaseService(opts...),
		weekLoader:   weekLoader{entries: entryRepo, periods: periodRepo},
		entryRepo:    entryRepo,
		projectRepo:  projectRepo,
		employeeRepo: employeeRepo,
	}
}

// Ensure timeEntryService implements the TimeEntrySvcFacade interface
var _ portssvc.TimeEntrySvcFacade = (*timeEntryService)(nil)

// GetTimeEntry retrieves a time entry by its ID
func (s *timeEntryService) GetTimeEntry(ctx context.Context, entryID string) (*domain.TimeEntry, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find time entry", slog.String("entry_id", entryID))
		}
		return nil, err
	}
	return entry, nil
}

// ListWeekEntries retrieves the entries of one employee week
func (s *timeEntryService) ListWeekEntries(ctx context.Context, employeeID string, week string) ([]domain.TimeEntry, error) {
	weekStart, err := s.ResolveWeek(week)
	if err != nil {
		return nil, err
	}

	from, to := domain.WeekRange(weekStart)
	entries, err := s.entryRepo.FindEntriesByEmployee(ctx, employeeID, from.UTC(), to.UTC())
	if err != nil {
		s.LogError(ctx, err, "Failed to list week entries",
			slog.String("employee_id", employeeID),
			slog.String("week_start", weekStart.Format(time.DateOnly)))
		return nil, err
	}
	if entries == nil {
		return []domain.TimeEntry{}, nil
	}

	s.LogDebug(ctx, "Week entries listed", slog.Int("count", len(entries)), slog.String("employee_id", employeeID))
	return entries, nil
}

// CreateTimeEntry validates and stores a new draft entry
func (s *timeEntryService) CreateTimeEntry(ctx context.Context, req dto.CreateTimeEntryRequest) (*domain.TimeEntry, error) {
	res := domain.ValidateTimeEntry(req.Draft(), s.Settings.Location)
	if !res.Valid() {
		s.LogDebug(ctx, "Time entry rejected by validation", slog.Any("fields", res.Errors))
		return nil, res.Err()
	}

	if err := s.checkReferences(ctx, req.EmployeeID, req.ProjectID); err != nil {
		return nil, err
	}

	weekStart := domain.WeekStart(res.Start.In(s.Settings.Location))
	if err := s.ensureMutable(ctx, req.EmployeeID, weekStart); err != nil {
		if !errors.Is(err, apperrors.ErrLockedPeriod) {
			s.LogError(ctx, err, "Failed to check week lock", slog.String("employee_id", req.EmployeeID))
		}
		return nil, err
	}

	now := s.Now().UTC()
	entry := domain.TimeEntry{
		EntryID:     uuid.NewString(),
		EmployeeID:  req.EmployeeID,
		ProjectID:   req.ProjectID,
		Description: req.Description,
		Status:      domain.StatusDraft,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	entry, err := entry.WithTimes(res.Start, res.End, req.IsBillable())
	if err != nil {
		return nil, err
	}

	if err := s.entryRepo.SaveEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save time entry", slog.String("entry_id", entry.EntryID))
		return nil, err
	}

	s.LogInfo(ctx, "Time entry created",
		slog.String("entry_id", entry.EntryID),
		slog.String("employee_id", entry.EmployeeID),
		slog.String("project_id", entry.ProjectID))
	return &entry, nil
}

// UpdateTimeEntry replaces the editable fields of a draft entry
func (s *timeEntryService) UpdateTimeEntry(ctx context.Context, entryID string, req dto.UpdateTimeEntryRequest) (*domain.TimeEntry, error) {
	existing, err := s.GetTimeEntry(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if existing.Status != domain.StatusDraft {
		return nil, fmt.Errorf("%w: entry %s is %s", apperrors.ErrLockedPeriod, entryID, existing.Status)
	}

	res := domain.ValidateTimeEntry(req.Draft(existing.EmployeeID), s.Settings.Location)
	if !res.Valid() {
		return nil, res.Err()
	}
	if req.ProjectID != existing.ProjectID {
		if err := s.checkProject(ctx, req.ProjectID); err != nil {
			return nil, err
		}
	}

	// Moving an entry needs both the week it leaves and the week it joins unlocked.
	oldWeek := domain.WeekStart(existing.StartTime.In(s.Settings.Location))
	newWeek := domain.WeekStart(res.Start.In(s.Settings.Location))
	if err := s.ensureMutable(ctx, existing.EmployeeID, oldWeek); err != nil {
		return nil, err
	}
	if !newWeek.Equal(oldWeek) {
		if err := s.ensureMutable(ctx, existing.EmployeeID, newWeek); err != nil {
			return nil, err
		}
	}

	updated, err := existing.WithTimes(res.Start, res.End, req.IsBillable())
	if err != nil {
		return nil, err
	}
	updated.ProjectID = req.ProjectID
	updated.Description = req.Description
	updated.LastUpdatedAt = s.Now().UTC()

	if err := s.entryRepo.UpdateEntry(ctx, updated); err != nil {
		if !errors.Is(err, apperrors.ErrLockedPeriod) && !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update time entry", slog.String("entry_id", entryID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Time entry updated", slog.String("entry_id", entryID))
	return &updated, nil
}

// DeleteTimeEntry removes a draft entry
func (s *timeEntryService) DeleteTimeEntry(ctx context.Context, entryID string) error {
	existing, err := s.GetTimeEntry(ctx, entryID)
	if err != nil {
		return err
	}
	weekStart := domain.WeekStart(existing.StartTime.In(s.Settings.Location))
	if err := s.ensureMutable(ctx, existing.EmployeeID, weekStart); err != nil {
		return err
	}

	if err := s.entryRepo.DeleteEntry(ctx, entryID); err != nil {
		if !errors.Is(err, apperrors.ErrLockedPeriod) && !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete time entry", slog.String("entry_id", entryID))
		}
		return err
	}

	s.LogInfo(ctx, "Time entry deleted", slog.String("entry_id", entryID))
	return nil
}

// checkReferences verifies that the employee exists and the project accepts entries.
func (s *timeEntryService) checkReferences(ctx context.Context, employeeID, projectID string) error {
	if _, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewValidationError("employeeId", "Employee not found")
		}
		s.LogError(ctx, err, "Failed to find employee", slog.String("employee_id", employeeID))
		return err
	}
	return s.checkProject(ctx, projectID)
}

func (s *timeEntryService) checkProject(ctx context.Context, projectID string) error {
	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewValidationError("projectId", "Project not found")
		}
		s.LogError(ctx, err, "Failed to find project", slog.String("project_id", projectID))
		return err
	}
	if !project.IsActive() {
		return apperrors.NewValidationError("projectId", "Project is not active")
	}
	return nil
}
