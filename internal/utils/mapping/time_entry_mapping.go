package mapping

import (
	"github.com/SscSPs/timesheet_app/internal/core/domain"
	"github.com/SscSPs/timesheet_app/internal/models"
)

// ToModelTimeEntry converts a domain TimeEntry to a model TimeEntry
func ToModelTimeEntry(d domain.TimeEntry) models.TimeEntry {
	return models.TimeEntry{
		EntryID:       d.EntryID,
		EmployeeID:    d.EmployeeID,
		ProjectID:     d.ProjectID,
		StartTime:     d.StartTime.UTC(),
		EndTime:       d.EndTime.UTC(),
		Description:   d.Description,
		Billable:      d.Billable,
		BillableHours: d.BillableHours,
		Status:        models.EntryStatus(d.Status),
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTimeEntry converts a model TimeEntry to a domain TimeEntry
func ToDomainTimeEntry(m models.TimeEntry) domain.TimeEntry {
	return domain.TimeEntry{
		EntryID:       m.EntryID,
		EmployeeID:    m.EmployeeID,
		ProjectID:     m.ProjectID,
		StartTime:     m.StartTime.UTC(),
		EndTime:       m.EndTime.UTC(),
		Description:   m.Description,
		Billable:      m.Billable,
		BillableHours: m.BillableHours,
		Status:        domain.EntryStatus(m.Status),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTimeEntrySlice converts a slice of model TimeEntries to a slice of domain TimeEntries
func ToDomainTimeEntrySlice(ms []models.TimeEntry) []domain.TimeEntry {
	ds := make([]domain.TimeEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTimeEntry(m)
	}
	return ds
}
