package services

import (
	portsrepo "github.com/SscSPs/timesheet_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/timesheet_app/internal/core/ports/services"
	"github.com/SscSPs/timesheet_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, notifier portssvc.Notifier, opts ...Option) *portssvc.ServiceContainer {
	opts = append([]Option{WithSettings(SettingsFromConfig(cfg))}, opts...)

	return &portssvc.ServiceContainer{
		TimeEntry: NewTimeEntryService(repos.TimeEntryRepo, repos.TimesheetRepo, repos.ProjectRepo, repos.EmployeeRepo, opts...),
		Timesheet: NewTimesheetService(repos.TimeEntryRepo, repos.TimesheetRepo, repos.ProjectRepo, repos.EmployeeRepo, opts...),
		Project:   NewProjectService(repos.ProjectRepo, repos.EmployeeRepo, opts...),
		Employee:  NewEmployeeService(repos.EmployeeRepo, repos.TimeEntryRepo, opts...),
		Reminder:  NewReminderService(repos.EmployeeRepo, repos.TimesheetRepo, notifier, opts...),
	}
}
