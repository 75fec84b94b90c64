package services

import (
	"context"
	"io"

	"github.com/SscSPs/timesheet_app/internal/core/domain"
	"github.com/SscSPs/timesheet_app/internal/dto"
)

// TimesheetReaderSvc defines read operations on employee weeks
type TimesheetReaderSvc interface {
	// GetWeek assembles the entries, totals and submission state of an employee week.
	GetWeek(ctx context.Context, employeeID string, week string) (*domain.WeekTimesheet, error)

	// ExportWeekCSV writes the entries of an employee week as CSV to w.
	ExportWeekCSV(ctx context.Context, employeeID string, week string, w io.Writer) error
}

// TimesheetWriterSvc defines the submission workflow
type TimesheetWriterSvc interface {
	// SubmitTimesheet submits every entry of an employee week at once and
	// attributes the hours to the projects' budgets.
	SubmitTimesheet(ctx context.Context, req dto.SubmitTimesheetRequest) (*domain.WeekTimesheet, error)
}

// TimesheetSvcFacade combines all timesheet service interfaces
type TimesheetSvcFacade interface {
	TimesheetReaderSvc
	TimesheetWriterSvc
}
