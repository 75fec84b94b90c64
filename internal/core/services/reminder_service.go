package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/timesheet_app/internal/core/domain"
	portsrepo "github.com/SscSPs/timesheet_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/timesheet_app/internal/core/ports/services"
	"github.com/SscSPs/timesheet_app/internal/dto"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentNotifications bounds the notifier calls in flight.
const maxConcurrentNotifications = 4

type reminderService struct {
	BaseService
	employeeRepo  portsrepo.EmployeeReader
	timesheetRepo portsrepo.TimesheetReader
	notifier      portssvc.Notifier
}

// NewReminderService creates a new reminder service with the provided dependencies
func NewReminderService(employeeRepo portsrepo.EmployeeReader, timesheetRepo portsrepo.TimesheetReader, notifier portssvc.Notifier, opts ...Option) portssvc.ReminderSvc {
	return &reminderService{
		BaseService:   newBaseService(opts...),
		employeeRepo:  employeeRepo,
		timesheetRepo: timesheetRepo,
		notifier:      notifier,
	}
}

var _ portssvc.ReminderSvc = (*reminderService)(nil)

// SendSubmissionReminders notifies active employees whose week is still open
func (s *reminderService) SendSubmissionReminders(ctx context.Context, req dto.ReminderRequest) (*dto.ReminderResponse, error) {
	weekStart, err := s.ResolveWeek(req.Week)
	if err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.ListActiveEmployees(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list employees for reminders")
		return nil, err
	}
	periods, err := s.timesheetRepo.ListPeriodsByWeek(ctx, weekStart)
	if err != nil {
		s.LogError(ctx, err, "Failed to list timesheet periods", slog.String("week_start", weekStart.Format(time.DateOnly)))
		return nil, err
	}

	done := make(map[string]bool, len(periods))
	for _, p := range periods {
		if p.IsLocked() {
			done[p.EmployeeID] = true
		}
	}

	var pending []domain.Employee
	for _, e := range employees {
		if !done[e.EmployeeID] {
			pending = append(pending, e)
		}
	}

	notified := make([]bool, len(pending))
	var g errgroup.Group
	g.SetLimit(maxConcurrentNotifications)
	for i, e := range pending {
		g.Go(func() error {
			if err := s.notifier.NotifyPendingTimesheet(ctx, e, weekStart); err != nil {
				s.LogError(ctx, err, "Failed to send timesheet reminder", slog.String("employee_id", e.EmployeeID))
				return nil
			}
			notified[i] = true
			return nil
		})
	}
	_ = g.Wait() // workers never fail; errors are logged per employee

	res := &dto.ReminderResponse{WeekStart: weekStart.Format(time.DateOnly), Notified: []string{}}
	for i, ok := range notified {
		if ok {
			res.Notified = append(res.Notified, pending[i].EmployeeID)
		}
	}
	s.LogInfo(ctx, "Timesheet reminders sent",
		slog.String("week_start", res.WeekStart),
		slog.Int("pending", len(pending)),
		slog.Int("notified", len(res.Notified)))
	return res, nil
}
