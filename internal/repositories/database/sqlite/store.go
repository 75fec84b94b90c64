package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/SscSPs/timesheet_app/internal/apperrors"
	portsrepo "github.com/SscSPs/timesheet_app/internal/core/ports/repositories"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const currentVersion = 1

// Instants are stored as fixed width UTC text so they sort lexicographically.
const (
	timeLayout = "2006-01-02T15:04:05.000000000Z07:00"
	dateLayout = time.DateOnly
)

// Store is a single file SQLite database serving every repository.
type Store struct {
	db *sql.DB
}

// New opens (or creates) the SQLite database at dbPath and runs migrations.
func New(dbPath string) (*Store, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// One connection serializes writers, and keeps an in-memory database alive.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("exec pragma %q: %w", p, err)
		}
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// NewMemory creates an in-memory store for testing.
func NewMemory() (*Store, error) {
	return New(":memory:")
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Ping verifies that the database file is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return apperrors.NewStorageError("ping", err)
	}
	return nil
}

// NewRepositoryProvider exposes the store through the repository ports.
func NewRepositoryProvider(s *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TimeEntryRepo: &timeEntryRepository{db: s.db},
		TimesheetRepo: &timesheetRepository{db: s.db},
		ProjectRepo:   &projectRepository{db: s.db},
		EmployeeRepo:  &employeeRepository{db: s.db},
		Health:        s,
	}
}

func (s *Store) migrate() error {
	var version int
	err := s.db.QueryRow("PRAGMA user_version").Scan(&version)
	if err != nil {
		return fmt.Errorf("read user_version: %w", err)
	}

	if version >= currentVersion {
		return nil
	}

	if version < 1 {
		if err := s.migrateV1(); err != nil {
			return err
		}
	}

	_, err = s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentVersion))
	return err
}

func (s *Store) migrateV1() error {
	const ddl = `
	CREATE TABLE IF NOT EXISTS employees (
		employee_id     TEXT PRIMARY KEY,
		first_name      TEXT NOT NULL,
		last_name       TEXT NOT NULL,
		email           TEXT NOT NULL,
		department      TEXT NOT NULL DEFAULT '',
		role            TEXT NOT NULL DEFAULT '',
		hourly_rate     TEXT NOT NULL DEFAULT '0',
		is_active       INTEGER NOT NULL DEFAULT 1,
		manager_id      TEXT REFERENCES employees(employee_id),
		start_date      TEXT,
		created_at      TEXT NOT NULL,
		last_updated_at TEXT NOT NULL
	);

	CREATE UNIQUE INDEX IF NOT EXISTS idx_employees_email ON employees(lower(email));

	CREATE TABLE IF NOT EXISTS projects (
		project_id         TEXT PRIMARY KEY,
		name               TEXT NOT NULL,
		client             TEXT NOT NULL DEFAULT '',
		budget             TEXT NOT NULL,
		hourly_cost_rate   TEXT NOT NULL DEFAULT '0',
		start_date         TEXT NOT NULL,
		end_date           TEXT NOT NULL,
		status             TEXT NOT NULL DEFAULT 'active',
		total_hours_logged REAL NOT NULL DEFAULT 0,
		remaining_budget   TEXT NOT NULL,
		created_at         TEXT NOT NULL,
		last_updated_at    TEXT NOT NULL
	);

	CREATE UNIQUE INDEX IF NOT EXISTS idx_projects_name ON projects(lower(name));

	CREATE TABLE IF NOT EXISTS project_employees (
		project_id  TEXT NOT NULL REFERENCES projects(project_id) ON DELETE CASCADE,
		employee_id TEXT NOT NULL REFERENCES employees(employee_id),
		UNIQUE(project_id, employee_id)
	);

	CREATE TABLE IF NOT EXISTS time_entries (
		entry_id        TEXT PRIMARY KEY,
		employee_id     TEXT NOT NULL REFERENCES employees(employee_id),
		project_id      TEXT NOT NULL REFERENCES projects(project_id),
		start_time      TEXT NOT NULL,
		end_time        TEXT NOT NULL,
		description     TEXT NOT NULL DEFAULT '',
		billable        INTEGER NOT NULL DEFAULT 0,
		billable_hours  REAL NOT NULL DEFAULT 0,
		status          TEXT NOT NULL DEFAULT 'draft',
		created_at      TEXT NOT NULL,
		last_updated_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_entries_employee_start ON time_entries(employee_id, start_time);
	CREATE INDEX IF NOT EXISTS idx_entries_project ON time_entries(project_id, status);

	CREATE TABLE IF NOT EXISTS timesheet_periods (
		period_id       TEXT PRIMARY KEY,
		employee_id     TEXT NOT NULL REFERENCES employees(employee_id),
		week_start      TEXT NOT NULL,
		status          TEXT NOT NULL DEFAULT 'draft',
		submitted_at    TEXT,
		created_at      TEXT NOT NULL,
		last_updated_at TEXT NOT NULL,
		UNIQUE(employee_id, week_start)
	);
	`
	_, err := s.db.Exec(ddl)
	return err
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse stored time %q: %w", s, err)
	}
	return t.UTC(), nil
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse stored date %q: %w", s, err)
	}
	return t, nil
}

func nullableTime(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: formatTime(*t), Valid: true}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

type constraint int

const (
	noConstraint constraint = iota
	uniqueConstraint
	foreignKeyConstraint
)

// constraintOf classifies constraint violations raised by the driver.
func constraintOf(err error) constraint {
	var se *sqlite.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return uniqueConstraint
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return foreignKeyConstraint
		}
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return uniqueConstraint
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return foreignKeyConstraint
	}
	return noConstraint
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

func stringArgs(values []string) []any {
	args := make([]any, len(values))
	for i, v := range values {
		args[i] = v
	}
	return args
}
