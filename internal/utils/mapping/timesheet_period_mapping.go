package mapping

import (
	"github.com/SscSPs/timesheet_app/internal/core/domain"
	"github.com/SscSPs/timesheet_app/internal/models"
)

// ToModelTimesheetPeriod converts a domain TimesheetPeriod to a model TimesheetPeriod
func ToModelTimesheetPeriod(d domain.TimesheetPeriod) models.TimesheetPeriod {
	return models.TimesheetPeriod{
		PeriodID:    d.PeriodID,
		EmployeeID:  d.EmployeeID,
		WeekStart:   d.WeekStart,
		Status:      models.EntryStatus(d.Status),
		SubmittedAt: d.SubmittedAt,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTimesheetPeriod converts a model TimesheetPeriod to a domain TimesheetPeriod
func ToDomainTimesheetPeriod(m models.TimesheetPeriod) domain.TimesheetPeriod {
	return domain.TimesheetPeriod{
		PeriodID:    m.PeriodID,
		EmployeeID:  m.EmployeeID,
		WeekStart:   m.WeekStart,
		Status:      domain.EntryStatus(m.Status),
		SubmittedAt: m.SubmittedAt,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
