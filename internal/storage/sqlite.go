package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Veraticus/paydirt/internal/common"
	"github.com/Veraticus/paydirt/internal/model"
	"github.com/Veraticus/paydirt/internal/service"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteStorage implements the Storage interface using SQLite.
type SQLiteStorage struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStorage creates a new SQLite storage instance.
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	if err := validateString(dbPath, "dbPath"); err != nil {
		return nil, err
	}

	// Ensure directory exists for file-backed databases
	if dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteStorage{
		db:     db,
		dbPath: dbPath,
	}, nil
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// LoadBaseline returns the stored prior-pay-period roster in display order.
func (s *SQLiteStorage) LoadBaseline(ctx context.Context) (model.Roster, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT name, regular_hours, overtime_hours, pay_rate
		FROM employees
		ORDER BY position, name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var roster model.Roster
	for rows.Next() {
		var emp model.Employee
		if err := rows.Scan(&emp.Name, &emp.RegularHours, &emp.OvertimeHours, &emp.PayRate); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		roster = append(roster, emp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return roster, nil
}

// SaveBaseline replaces the stored baseline roster with the given one.
func (s *SQLiteStorage) SaveBaseline(ctx context.Context, roster model.Roster) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateRoster(roster); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM employees`); err != nil {
		return fmt.Errorf("failed to clear employees: %w", err)
	}

	for i, emp := range roster {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO employees (name, regular_hours, overtime_hours, pay_rate, position, updated_at)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(name) DO UPDATE SET
				regular_hours = excluded.regular_hours,
				overtime_hours = excluded.overtime_hours,
				pay_rate = excluded.pay_rate,
				position = excluded.position,
				updated_at = excluded.updated_at`,
			emp.Name, emp.RegularHours, emp.OvertimeHours, emp.PayRate, i, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("failed to save employee %q: %w", emp.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit baseline: %w", err)
	}

	return nil
}

// GetSession loads a stored session by ID.
func (s *SQLiteStorage) GetSession(ctx context.Context, id string) (*model.Session, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	var state string
	err := s.db.QueryRowContext(ctx, `SELECT state FROM sessions WHERE id = ?`, id).Scan(&state)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("session %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query session: %w", err)
	}

	var session model.Session
	if err := json.Unmarshal([]byte(state), &session); err != nil {
		return nil, fmt.Errorf("failed to decode session state: %w", err)
	}

	return &session, nil
}

// SaveSession upserts a session's full state.
func (s *SQLiteStorage) SaveSession(ctx context.Context, session *model.Session) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if session == nil {
		return fmt.Errorf("%w: session", ErrNilParameter)
	}
	if err := validateString(session.ID, "session.ID"); err != nil {
		return err
	}

	state, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session state: %w", err)
	}

	confirmed := 0
	if session.Confirmed {
		confirmed = 1
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO sessions (id, stage, confirmed, employee_count, state, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			stage = excluded.stage,
			confirmed = excluded.confirmed,
			employee_count = excluded.employee_count,
			state = excluded.state,
			updated_at = excluded.updated_at`,
		session.ID, string(session.Stage), confirmed, len(session.Existing),
		string(state), session.CreatedAt, session.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// DeleteSession removes a session and its stored reports.
func (s *SQLiteStorage) DeleteSession(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM payroll_reports WHERE session_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete session reports: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("session %s: %w", id, common.ErrNotFound)
	}

	return tx.Commit()
}

// ListSessions returns lightweight summaries of all stored sessions, newest first.
func (s *SQLiteStorage) ListSessions(ctx context.Context) ([]service.SessionSummary, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, stage, confirmed, employee_count, updated_at
		FROM sessions
		ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var summaries []service.SessionSummary
	for rows.Next() {
		var summary service.SessionSummary
		var stage string
		var confirmed int
		if err := rows.Scan(&summary.ID, &stage, &confirmed, &summary.Employees, &summary.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan session summary: %w", err)
		}
		summary.Stage = model.Stage(stage)
		summary.Confirmed = confirmed != 0
		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sessions: %w", err)
	}

	return summaries, nil
}

// SavePayrollReport stores a generated report for a session.
func (s *SQLiteStorage) SavePayrollReport(ctx context.Context, sessionID string, report *model.PayrollReport) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(sessionID, "sessionID"); err != nil {
		return err
	}
	if report == nil {
		return fmt.Errorf("%w: report", ErrNilParameter)
	}
	if err := validateString(report.ID, "report.ID"); err != nil {
		return err
	}

	encoded, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO payroll_reports (id, session_id, total_payroll, report, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			total_payroll = excluded.total_payroll,
			report = excluded.report`,
		report.ID, sessionID, report.TotalPayroll, string(encoded), report.GeneratedAt)
	if err != nil {
		return fmt.Errorf("failed to save payroll report: %w", err)
	}

	return nil
}

// GetPayrollReport loads a stored report by ID.
func (s *SQLiteStorage) GetPayrollReport(ctx context.Context, id string) (*model.PayrollReport, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	return s.scanReport(s.db.QueryRowContext(ctx,
		`SELECT report FROM payroll_reports WHERE id = ?`, id), id)
}

// GetLatestReport loads the most recent report generated for a session.
func (s *SQLiteStorage) GetLatestReport(ctx context.Context, sessionID string) (*model.PayrollReport, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(sessionID, "sessionID"); err != nil {
		return nil, err
	}

	return s.scanReport(s.db.QueryRowContext(ctx, `
		SELECT report FROM payroll_reports
		WHERE session_id = ?
		ORDER BY created_at DESC
		LIMIT 1`, sessionID), sessionID)
}

func (s *SQLiteStorage) scanReport(row *sql.Row, key string) (*model.PayrollReport, error) {
	var encoded string
	err := row.Scan(&encoded)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("payroll report %s: %w", key, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query payroll report: %w", err)
	}

	var report model.PayrollReport
	if err := json.Unmarshal([]byte(encoded), &report); err != nil {
		return nil, fmt.Errorf("failed to decode payroll report: %w", err)
	}

	return &report, nil
}
