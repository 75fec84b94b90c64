package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/timesheet_app/internal/apperrors"
	"github.com/SscSPs/timesheet_app/internal/core/domain"
	portsrepo "github.com/SscSPs/timesheet_app/internal/core/ports/repositories"
	"github.com/SscSPs/timesheet_app/internal/models"
	"github.com/SscSPs/timesheet_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const timeEntryColumns = `entry_id, employee_id, project_id, start_time, end_time, description,
	billable, billable_hours, status, created_at, last_updated_at`

type PgxTimeEntryRepository struct {
	BaseRepository
}

// newPgxTimeEntryRepository creates a new repository for time entry data.
func newPgxTimeEntryRepository(pool *pgxpool.Pool) portsrepo.TimeEntryRepositoryFacade {
	return &PgxTimeEntryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxTimeEntryRepository implements portsrepo.TimeEntryRepositoryFacade
var _ portsrepo.TimeEntryRepositoryFacade = (*PgxTimeEntryRepository)(nil)

func scanTimeEntry(row rowScanner) (models.TimeEntry, error) {
	var m models.TimeEntry
	err := row.Scan(
		&m.EntryID,
		&m.EmployeeID,
		&m.ProjectID,
		&m.StartTime,
		&m.EndTime,
		&m.Description,
		&m.Billable,
		&m.BillableHours,
		&m.Status,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

// SaveEntry inserts a new time entry.
func (r *PgxTimeEntryRepository) SaveEntry(ctx context.Context, entry domain.TimeEntry) error {
	m := mapping.ToModelTimeEntry(entry)
	query := `
		INSERT INTO time_entries (` + timeEntryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.EntryID,
		m.EmployeeID,
		m.ProjectID,
		m.StartTime,
		m.EndTime,
		m.Description,
		m.Billable,
		m.BillableHours,
		m.Status,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return fmt.Errorf("%w: time entry %s already exists", apperrors.ErrDuplicate, m.EntryID)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: time entry %s references an unknown employee or project", apperrors.ErrValidation, m.EntryID)
		}
		return apperrors.NewStorageError("save time entry "+m.EntryID, err)
	}
	return nil
}

// FindEntryByID retrieves a time entry by its ID.
func (r *PgxTimeEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.TimeEntry, error) {
	query := `SELECT ` + timeEntryColumns + ` FROM time_entries WHERE entry_id = $1;`

	m, err := scanTimeEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewStorageError("find time entry "+entryID, err)
	}
	entry := mapping.ToDomainTimeEntry(m)
	return &entry, nil
}

// FindEntriesByEmployee retrieves the entries of an employee starting within [from, to).
func (r *PgxTimeEntryRepository) FindEntriesByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]domain.TimeEntry, error) {
	query := `
		SELECT ` + timeEntryColumns + `
		FROM time_entries
		WHERE employee_id = $1 AND start_time >= $2 AND start_time < $3
		ORDER BY start_time, entry_id;
	`
	rows, err := r.Pool.Query(ctx, query, employeeID, from.UTC(), to.UTC())
	if err != nil {
		return nil, apperrors.NewStorageError("query time entries of "+employeeID, err)
	}
	defer rows.Close()

	var results []models.TimeEntry
	for rows.Next() {
		m, err := scanTimeEntry(rows)
		if err != nil {
			return nil, apperrors.NewStorageError("scan time entry", err)
		}
		results = append(results, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorageError("iterate time entries", err)
	}
	return mapping.ToDomainTimeEntrySlice(results), nil
}

// UpdateEntry replaces the editable fields of a draft entry.
func (r *PgxTimeEntryRepository) UpdateEntry(ctx context.Context, entry domain.TimeEntry) error {
	m := mapping.ToModelTimeEntry(entry)
	query := `
		UPDATE time_entries
		SET project_id = $2, start_time = $3, end_time = $4, description = $5,
		    billable = $6, billable_hours = $7, last_updated_at = $8
		WHERE entry_id = $1 AND status = 'draft';
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.EntryID,
		m.ProjectID,
		m.StartTime,
		m.EndTime,
		m.Description,
		m.Billable,
		m.BillableHours,
		m.LastUpdatedAt,
	)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return fmt.Errorf("%w: time entry %s references an unknown project", apperrors.ErrValidation, m.EntryID)
		}
		return apperrors.NewStorageError("update time entry "+m.EntryID, err)
	}
	if tag.RowsAffected() == 0 {
		return r.missingOrLocked(ctx, m.EntryID)
	}
	return nil
}

// DeleteEntry removes a draft entry.
func (r *PgxTimeEntryRepository) DeleteEntry(ctx context.Context, entryID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM time_entries WHERE entry_id = $1 AND status = 'draft';`, entryID)
	if err != nil {
		return apperrors.NewStorageError("delete time entry "+entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return r.missingOrLocked(ctx, entryID)
	}
	return nil
}

// missingOrLocked explains why a draft-only write touched no row.
func (r *PgxTimeEntryRepository) missingOrLocked(ctx context.Context, entryID string) error {
	var status string
	err := r.Pool.QueryRow(ctx, `SELECT status FROM time_entries WHERE entry_id = $1;`, entryID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return apperrors.NewStorageError("find time entry "+entryID, err)
	}
	return fmt.Errorf("%w: time entry %s is %s", apperrors.ErrLockedPeriod, entryID, status)
}
