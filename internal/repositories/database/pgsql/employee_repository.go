package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/timesheet_app/internal/apperrors"
	"github.com/SscSPs/timesheet_app/internal/core/domain"
	portsrepo "github.com/SscSPs/timesheet_app/internal/core/ports/repositories"
	"github.com/SscSPs/timesheet_app/internal/models"
	"github.com/SscSPs/timesheet_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const employeeColumns = `employee_id, first_name, last_name, email, department, role, hourly_rate,
	is_active, manager_id, start_date, created_at, last_updated_at`

type PgxEmployeeRepository struct {
	BaseRepository
}

// newPgxEmployeeRepository creates a new repository for employee data.
func newPgxEmployeeRepository(pool *pgxpool.Pool) portsrepo.EmployeeRepositoryFacade {
	return &PgxEmployeeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxEmployeeRepository implements portsrepo.EmployeeRepositoryFacade
var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

func scanEmployee(row rowScanner) (models.Employee, error) {
	var m models.Employee
	err := row.Scan(
		&m.EmployeeID,
		&m.FirstName,
		&m.LastName,
		&m.Email,
		&m.Department,
		&m.Role,
		&m.HourlyRate,
		&m.IsActive,
		&m.ManagerID,
		&m.StartDate,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

func (r *PgxEmployeeRepository) queryEmployees(ctx context.Context, query string, args ...any) ([]models.Employee, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
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

// SaveEmployee inserts a new employee.
func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	m := mapping.ToModelEmployee(employee)
	query := `
		INSERT INTO employees (` + employeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.EmployeeID,
		m.FirstName,
		m.LastName,
		m.Email,
		m.Department,
		m.Role,
		m.HourlyRate,
		m.IsActive,
		m.ManagerID,
		m.StartDate,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return fmt.Errorf("%w: employee with email %s already exists", apperrors.ErrDuplicate, m.Email)
		case pgForeignKeyViolation:
			return apperrors.NewValidationError("managerId", "Manager does not exist")
		}
		return apperrors.NewStorageError("save employee "+m.EmployeeID, err)
	}
	return nil
}

// FindEmployeeByID retrieves an employee by their ID.
func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_id = $1;`

	m, err := scanEmployee(r.Pool.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewStorageError("find employee "+employeeID, err)
	}
	employee := mapping.ToDomainEmployee(m)
	return &employee, nil
}

// FindEmployeesByIDs retrieves multiple employees by their IDs.
func (r *PgxEmployeeRepository) FindEmployeesByIDs(ctx context.Context, employeeIDs []string) (map[string]domain.Employee, error) {
	if len(employeeIDs) == 0 {
		return map[string]domain.Employee{}, nil
	}
	results, err := r.queryEmployees(ctx, `SELECT `+employeeColumns+` FROM employees WHERE employee_id = ANY($1);`, employeeIDs)
	if err != nil {
		return nil, err
	}

	employees := make(map[string]domain.Employee, len(results))
	for _, m := range results {
		employees[m.EmployeeID] = mapping.ToDomainEmployee(m)
	}
	return employees, nil
}

// ListActiveEmployees retrieves every active employee ordered by last name.
func (r *PgxEmployeeRepository) ListActiveEmployees(ctx context.Context) ([]domain.Employee, error) {
	results, err := r.queryEmployees(ctx, `
		SELECT `+employeeColumns+`
		FROM employees
		WHERE is_active
		ORDER BY last_name, first_name, employee_id;
	`)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainEmployeeSlice(results), nil
}
