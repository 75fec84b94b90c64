package mapping

import (
	"github.com/SscSPs/timesheet_app/internal/core/domain"
	"github.com/SscSPs/timesheet_app/internal/models"
)

// ToModelEmployee converts a domain Employee to a model Employee
func ToModelEmployee(d domain.Employee) models.Employee {
	m := models.Employee{
		EmployeeID:  d.EmployeeID,
		FirstName:   d.FirstName,
		LastName:    d.LastName,
		Email:       d.Email,
		Department:  d.Department,
		Role:        d.Role,
		HourlyRate:  d.HourlyRate,
		IsActive:    d.IsActive,
		StartDate:   d.StartDate,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
	if d.ManagerID != "" {
		managerID := d.ManagerID
		m.ManagerID = &managerID
	}
	return m
}

// ToDomainEmployee converts a model Employee to a domain Employee
func ToDomainEmployee(m models.Employee) domain.Employee {
	d := domain.Employee{
		EmployeeID:  m.EmployeeID,
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		Email:       m.Email,
		Department:  m.Department,
		Role:        m.Role,
		HourlyRate:  m.HourlyRate,
		IsActive:    m.IsActive,
		StartDate:   m.StartDate,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
	if m.ManagerID != nil {
		d.ManagerID = *m.ManagerID
	}
	return d
}

// ToDomainEmployeeSlice converts a slice of model Employees to a slice of domain Employees
func ToDomainEmployeeSlice(ms []models.Employee) []domain.Employee {
	ds := make([]domain.Employee, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEmployee(m)
	}
	return ds
}
