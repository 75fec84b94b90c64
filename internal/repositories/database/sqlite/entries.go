package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/timesheet_app/internal/apperrors"
	"github.com/SscSPs/timesheet_app/internal/core/domain"
	portsrepo "github.com/SscSPs/timesheet_app/internal/core/ports/repositories"
	"github.com/SscSPs/timesheet_app/internal/models"
	"github.com/SscSPs/timesheet_app/internal/utils/mapping"
)

const entryColumns = `entry_id, employee_id, project_id, start_time, end_time, description,
	billable, billable_hours, status, created_at, last_updated_at`

type timeEntryRepository struct {
	db *sql.DB
}

var _ portsrepo.TimeEntryRepositoryFacade = (*timeEntryRepository)(nil)

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (models.TimeEntry, error) {
	var m models.TimeEntry
	var start, end, created, updated string
	err := row.Scan(&m.EntryID, &m.EmployeeID, &m.ProjectID, &start, &end, &m.Description,
		&m.Billable, &m.BillableHours, &m.Status, &created, &updated)
	if err != nil {
		return m, err
	}
	if m.StartTime, err = parseTime(start); err != nil {
		return m, err
	}
	if m.EndTime, err = parseTime(end); err != nil {
		return m, err
	}
	if m.CreatedAt, err = parseTime(created); err != nil {
		return m, err
	}
	m.LastUpdatedAt, err = parseTime(updated)
	return m, err
}

func (r *timeEntryRepository) SaveEntry(ctx context.Context, entry domain.TimeEntry) error {
	m := mapping.ToModelTimeEntry(entry)
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO time_entries (`+entryColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.EntryID, m.EmployeeID, m.ProjectID, formatTime(m.StartTime), formatTime(m.EndTime), m.Description,
		boolToInt(m.Billable), m.BillableHours, string(m.Status), formatTime(m.CreatedAt), formatTime(m.LastUpdatedAt),
	)
	if err != nil {
		switch constraintOf(err) {
		case uniqueConstraint:
			return fmt.Errorf("%w: time entry %s already exists", apperrors.ErrDuplicate, m.EntryID)
		case foreignKeyConstraint:
			return fmt.Errorf("%w: time entry %s references an unknown employee or project", apperrors.ErrValidation, m.EntryID)
		}
		return apperrors.NewStorageError("save time entry "+m.EntryID, err)
	}
	return nil
}

func (r *timeEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.TimeEntry, error) {
	m, err := scanEntry(r.db.QueryRowContext(ctx, `SELECT `+entryColumns+` FROM time_entries WHERE entry_id = ?`, entryID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewStorageError("find time entry "+entryID, err)
	}
	entry := mapping.ToDomainTimeEntry(m)
	return &entry, nil
}

func (r *timeEntryRepository) FindEntriesByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]domain.TimeEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+entryColumns+`
		FROM time_entries
		WHERE employee_id = ? AND start_time >= ? AND start_time < ?
		ORDER BY start_time, entry_id`,
		employeeID, formatTime(from), formatTime(to),
	)
	if err != nil {
		return nil, apperrors.NewStorageError("query time entries of "+employeeID, err)
	}
	defer rows.Close()

	var results []models.TimeEntry
	for rows.Next() {
		m, err := scanEntry(rows)
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

func (r *timeEntryRepository) UpdateEntry(ctx context.Context, entry domain.TimeEntry) error {
	m := mapping.ToModelTimeEntry(entry)
	res, err := r.db.ExecContext(ctx, `
		UPDATE time_entries
		SET project_id = ?, start_time = ?, end_time = ?, description = ?,
		    billable = ?, billable_hours = ?, last_updated_at = ?
		WHERE entry_id = ? AND status = 'draft'`,
		m.ProjectID, formatTime(m.StartTime), formatTime(m.EndTime), m.Description,
		boolToInt(m.Billable), m.BillableHours, formatTime(m.LastUpdatedAt), m.EntryID,
	)
	if err != nil {
		if constraintOf(err) == foreignKeyConstraint {
			return fmt.Errorf("%w: time entry %s references an unknown project", apperrors.ErrValidation, m.EntryID)
		}
		return apperrors.NewStorageError("update time entry "+m.EntryID, err)
	}
	return r.checkDraftWrite(ctx, res, m.EntryID)
}

func (r *timeEntryRepository) DeleteEntry(ctx context.Context, entryID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM time_entries WHERE entry_id = ? AND status = 'draft'`, entryID)
	if err != nil {
		return apperrors.NewStorageError("delete time entry "+entryID, err)
	}
	return r.checkDraftWrite(ctx, res, entryID)
}

// checkDraftWrite turns a draft-only write that touched no row into
// apperrors.ErrNotFound or apperrors.ErrLockedPeriod.
func (r *timeEntryRepository) checkDraftWrite(ctx context.Context, res sql.Result, entryID string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return apperrors.NewStorageError("rows affected", err)
	}
	if n > 0 {
		return nil
	}

	var status string
	err = r.db.QueryRowContext(ctx, `SELECT status FROM time_entries WHERE entry_id = ?`, entryID).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return apperrors.NewStorageError("find time entry "+entryID, err)
	}
	return fmt.Errorf("%w: time entry %s is %s", apperrors.ErrLockedPeriod, entryID, status)
}
