package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/timesheet_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// WeekSubmission is everything a week submission changes, applied as one unit.
// Stores add the hours of Entries to the stored project totals, costed at
// CostRates, so submissions of different employees against one project accumulate.
type WeekSubmission struct {
	Period    domain.TimesheetPeriod     // Already moved to submitted
	Entries   []domain.TimeEntry         // Already moved to submitted
	Projects  []domain.Project           // Totals after attributing the entries
	CostRates map[string]decimal.Decimal // Keyed by project ID
}

// TimesheetReader defines read operations for timesheet periods
type TimesheetReader interface {
	// FindPeriod retrieves the period of an employee week; apperrors.ErrNotFound when none was recorded.
	FindPeriod(ctx context.Context, employeeID string, weekStart time.Time) (*domain.TimesheetPeriod, error)

	// ListPeriodsByWeek retrieves every recorded period of a week.
	ListPeriodsByWeek(ctx context.Context, weekStart time.Time) ([]domain.TimesheetPeriod, error)
}

// TimesheetWriter defines write operations for timesheet periods
type TimesheetWriter interface {
	// SubmitWeek persists a submission atomically. The period and every entry are
	// only moved if they are still draft in the store; otherwise nothing is written
	// and apperrors.ErrAlreadySubmitted is returned.
	SubmitWeek(ctx context.Context, submission WeekSubmission) error
}

// TimesheetRepositoryFacade combines all timesheet repository interfaces
type TimesheetRepositoryFacade interface {
	TimesheetReader
	TimesheetWriter
}
