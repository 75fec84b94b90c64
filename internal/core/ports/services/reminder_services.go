package services

import (
	"context"
	"time"

	"github.com/SscSPs/timesheet_app/internal/core/domain"
	"github.com/SscSPs/timesheet_app/internal/dto"
)

// Notifier delivers a reminder to one employee.
type Notifier interface {
	NotifyPendingTimesheet(ctx context.Context, employee domain.Employee, weekStart time.Time) error
}

// ReminderSvc reminds employees who have not submitted a week.
type ReminderSvc interface {
	// SendSubmissionReminders notifies every active employee whose week is still
	// draft. A failed notification is logged and does not stop the others.
	SendSubmissionReminders(ctx context.Context, req dto.ReminderRequest) (*dto.ReminderResponse, error)
}
