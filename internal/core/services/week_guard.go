package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/timesheet_app/internal/apperrors"
	"github.com/SscSPs/timesheet_app/internal/core/domain"
	portsrepo "github.com/SscSPs/timesheet_app/internal/core/ports/repositories"
)

// weekLoader reads everything that decides the state of an employee week.
type weekLoader struct {
	entries portsrepo.TimeEntryReader
	periods portsrepo.TimesheetReader
}

// load returns the entries of the week starting at weekStart and its period,
// which is nil while nothing was recorded.
func (l weekLoader) load(ctx context.Context, employeeID string, weekStart time.Time) ([]domain.TimeEntry, *domain.TimesheetPeriod, error) {
	from, to := domain.WeekRange(weekStart)
	entries, err := l.entries.FindEntriesByEmployee(ctx, employeeID, from.UTC(), to.UTC())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load week entries: %w", err)
	}

	period, err := l.periods.FindPeriod(ctx, employeeID, weekStart)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, fmt.Errorf("failed to load timesheet period: %w", err)
		}
		period = nil
	}
	return entries, period, nil
}

// ensureMutable fails with apperrors.ErrLockedPeriod if the week left draft.
func (l weekLoader) ensureMutable(ctx context.Context, employeeID string, weekStart time.Time) error {
	entries, period, err := l.load(ctx, employeeID, weekStart)
	if err != nil {
		return err
	}
	return weekMutable(entries, period)
}

func weekMutable(entries []domain.TimeEntry, period *domain.TimesheetPeriod) error {
	if period != nil && period.IsLocked() {
		return fmt.Errorf("%w: week of %s is %s", apperrors.ErrLockedPeriod, period.WeekStart.Format(time.DateOnly), period.Status)
	}
	return domain.EnsureMutable(entries)
}
