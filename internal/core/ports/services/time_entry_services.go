package services

import (
	"context"

	"github.com/SscSPs/timesheet_app/internal/core/domain"
	"github.com/SscSPs/timesheet_app/internal/dto"
)

// TimeEntryReaderSvc defines read operations for time entries
type TimeEntryReaderSvc interface {
	// GetTimeEntry retrieves a specific entry by its ID.
	GetTimeEntry(ctx context.Context, entryID string) (*domain.TimeEntry, error)

	// ListWeekEntries retrieves an employee's entries of the week referenced by week,
	// ordered by start time. An empty week means the current one.
	ListWeekEntries(ctx context.Context, employeeID string, week string) ([]domain.TimeEntry, error)
}

// TimeEntryWriterSvc defines write operations for time entries.
// Every write fails with apperrors.ErrLockedPeriod once the entry's week left draft.
type TimeEntryWriterSvc interface {
	// CreateTimeEntry validates and persists a new draft entry.
	CreateTimeEntry(ctx context.Context, req dto.CreateTimeEntryRequest) (*domain.TimeEntry, error)

	// UpdateTimeEntry replaces the editable fields of a draft entry.
	UpdateTimeEntry(ctx context.Context, entryID string, req dto.UpdateTimeEntryRequest) (*domain.TimeEntry, error)

	// DeleteTimeEntry removes a draft entry.
	DeleteTimeEntry(ctx context.Context, entryID string) error
}

// TimeEntrySvcFacade combines all time entry service interfaces
type TimeEntrySvcFacade interface {
	TimeEntryReaderSvc
	TimeEntryWriterSvc
}
