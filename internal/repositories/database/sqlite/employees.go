package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SscSPs/timesheet_app/internal/apperrors"
	"github.com/SscSPs/timesheet_app/internal/core/domain"
	portsrepo "github.com/SscSPs/timesheet_app/internal/core/ports/repositories"
	"github.com/SscSPs/timesheet_app/internal/models"
	"github.com/SscSPs/timesheet_app/internal/utils/mapping"
)

const employeeColumns = `employee_id, first_name, last_name, email, department, role, hourly_rate,
	is_active, manager_id, start_date, created_at, last_updated_at`

type employeeRepository struct {
	db *sql.DB
}

var _ portsrepo.EmployeeRepositoryFacade = (*employeeRepository)(nil)

func scanEmployee(row scanner) (models.Employee, error) {
	var m models.Employee
	var managerID, startDate sql.NullString
	var created, updated string
	err := row.Scan(&m.EmployeeID, &m.FirstName, &m.LastName, &m.Email, &m.Department, &m.Role,
		&m.HourlyRate, &m.IsActive, &managerID, &startDate, &created, &updated)
	if err != nil {
		return m, err
	}
	if managerID.Valid {
		m.ManagerID = &managerID.String
	}
	if startDate.Valid {
		d, err := parseDate(startDate.String)
		if err != nil {
			return m, err
		}
		m.StartDate = &d
	}
	if m.CreatedAt, err = parseTime(created); err != nil {
		return m, err
	}
	m.LastUpdatedAt, err = parseTime(updated)
	return m, err
}

func (r *employeeRepository) queryEmployees(ctx context.Context, query string, args ...any) ([]models.Employee, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewStorageError("query employees", err)
	}
	defer rows.Close()

	var results []models.Employee
	for rows.Next() {
		m, err := scanEmployee(rows)
		if err != nil {
			return nil, apperrors.NewStorageError("scan employee", err)
		}
		results = append(results, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorageError("iterate employees", err)
	}
	return results, nil
}

func (r *employeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	m := mapping.ToModelEmployee(employee)
	var startDate sql.NullString
	if m.StartDate != nil {
		startDate = sql.NullString{String: formatDate(*m.StartDate), Valid: true}
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO employees (`+employeeColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.EmployeeID, m.FirstName, m.LastName, m.Email, m.Department, m.Role, m.HourlyRate.String(),
		boolToInt(m.IsActive), m.ManagerID, startDate, formatTime(m.CreatedAt), formatTime(m.LastUpdatedAt),
	)
	if err != nil {
		switch constraintOf(err) {
		case uniqueConstraint:
			return fmt.Errorf("%w: employee with email %s already exists", apperrors.ErrDuplicate, m.Email)
		case foreignKeyConstraint:
			return apperrors.NewValidationError("managerId", "Manager does not exist")
		}
		return apperrors.NewStorageError("save employee "+m.EmployeeID, err)
	}
	return nil
}

func (r *employeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	m, err := scanEmployee(r.db.QueryRowContext(ctx, `SELECT `+employeeColumns+` FROM employees WHERE employee_id = ?`, employeeID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewStorageError("find employee "+employeeID, err)
	}
	employee := mapping.ToDomainEmployee(m)
	return &employee, nil
}

func (r *employeeRepository) FindEmployeesByIDs(ctx context.Context, employeeIDs []string) (map[string]domain.Employee, error) {
	employees := make(map[string]domain.Employee, len(employeeIDs))
	if len(employeeIDs) == 0 {
		return employees, nil
	}
	results, err := r.queryEmployees(ctx,
		`SELECT `+employeeColumns+` FROM employees WHERE employee_id IN (`+placeholders(len(employeeIDs))+`)`,
		stringArgs(employeeIDs)...)
	if err != nil {
		return nil, err
	}
	for _, m := range results {
		employees[m.EmployeeID] = mapping.ToDomainEmployee(m)
	}
	return employees, nil
}

func (r *employeeRepository) ListActiveEmployees(ctx context.Context) ([]domain.Employee, error) {
	results, err := r.queryEmployees(ctx,
		`SELECT `+employeeColumns+` FROM employees WHERE is_active = 1 ORDER BY last_name, first_name, employee_id`)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainEmployeeSlice(results), nil
}
