package mapping

import (
	"slices"

	"github.com/SscSPs/timesheet_app/internal/core/domain"
	"github.com/SscSPs/timesheet_app/internal/models"
)

// ToModelProject converts a domain Project to a model Project
func ToModelProject(d domain.Project) models.Project {
	return models.Project{
		ProjectID:         d.ProjectID,
		Name:              d.Name,
		Client:            d.Client,
		Budget:            d.Budget,
		HourlyCostRate:    d.HourlyCostRate,
		StartDate:         d.StartDate,
		EndDate:           d.EndDate,
		Status:            models.ProjectStatus(d.Status),
		TotalHoursLogged:  d.TotalHoursLogged,
		RemainingBudget:   d.RemainingBudget,
		AssignedEmployees: slices.Clone(d.AssignedEmployees),
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProject converts a model Project to a domain Project
func ToDomainProject(m models.Project) domain.Project {
	assigned := m.AssignedEmployees
	if assigned == nil {
		assigned = []string{}
	}
	return domain.Project{
		ProjectID:         m.ProjectID,
		Name:              m.Name,
		Client:            m.Client,
		Budget:            m.Budget,
		HourlyCostRate:    m.HourlyCostRate,
		StartDate:         m.StartDate,
		EndDate:           m.EndDate,
		Status:            domain.ProjectStatus(m.Status),
		TotalHoursLogged:  m.TotalHoursLogged,
		RemainingBudget:   m.RemainingBudget,
		AssignedEmployees: assigned,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainProjectSlice converts a slice of model Projects to a slice of domain Projects
func ToDomainProjectSlice(ms []models.Project) []domain.Project {
	ds := make([]domain.Project, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProject(m)
	}
	return ds
}
