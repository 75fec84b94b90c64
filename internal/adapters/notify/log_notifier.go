package notify

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/timesheet_app/internal/core/domain"
	"github.com/SscSPs/timesheet_app/internal/middleware"
)

// LogNotifier writes reminders to the structured log. Deployments that forward
// logs to a chat or mail bridge deliver them from there.
type LogNotifier struct{}

// NewLogNotifier returns a notifier that only logs.
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// NotifyPendingTimesheet logs one reminder for the employee.
func (n *LogNotifier) NotifyPendingTimesheet(ctx context.Context, employee domain.Employee, weekStart time.Time) error {
	middleware.GetLoggerFromCtx(ctx).Info("Timesheet reminder",
		slog.String("employee_id", employee.EmployeeID),
		slog.String("employee_name", employee.FullName()),
		slog.String("email", employee.Email),
		slog.String("week_start", weekStart.Format(time.DateOnly)))
	return nil
}
