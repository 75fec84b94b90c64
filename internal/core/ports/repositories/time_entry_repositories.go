package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/timesheet_app/internal/core/domain"
)

// TimeEntryReader defines read operations for time entry data
type TimeEntryReader interface {
	// FindEntryByID retrieves a specific entry by its ID.
	FindEntryByID(ctx context.Context, entryID string) (*domain.TimeEntry, error)

	// FindEntriesByEmployee retrieves the entries of an employee whose start time
	// falls within [from, to), ordered by start time.
	FindEntriesByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]domain.TimeEntry, error)
}

// TimeEntryWriter defines write operations for time entry data.
// Updates and deletes only apply to draft entries; a non-draft row yields apperrors.ErrLockedPeriod.
type TimeEntryWriter interface {
	// SaveEntry inserts a new entry.
	SaveEntry(ctx context.Context, entry domain.TimeEntry) error

	// UpdateEntry replaces the editable fields of a draft entry.
	UpdateEntry(ctx context.Context, entry domain.TimeEntry) error

	// DeleteEntry removes a draft entry.
	DeleteEntry(ctx context.Context, entryID string) error
}

// TimeEntryRepositoryFacade combines all time entry repository interfaces
type TimeEntryRepositoryFacade interface {
	TimeEntryReader
	TimeEntryWriter
}
