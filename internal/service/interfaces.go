// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/Veraticus/paydirt/internal/model"
)

// Storage defines the contract for our persistence layer: the baseline roster
// seeded from the prior pay period, per-session workflow state, and generated
// payroll reports.
type Storage interface {
	// Baseline roster operations
	LoadBaseline(ctx context.Context) (model.Roster, error)
	SaveBaseline(ctx context.Context, roster model.Roster) error

	// Session operations
	GetSession(ctx context.Context, id string) (*model.Session, error)
	SaveSession(ctx context.Context, session *model.Session) error
	DeleteSession(ctx context.Context, id string) error
	ListSessions(ctx context.Context) ([]SessionSummary, error)

	// Payroll report operations
	SavePayrollReport(ctx context.Context, sessionID string, report *model.PayrollReport) error
	GetPayrollReport(ctx context.Context, id string) (*model.PayrollReport, error)
	GetLatestReport(ctx context.Context, sessionID string) (*model.PayrollReport, error)

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}

// SessionSummary is the lightweight listing view of a stored session.
type SessionSummary struct {
	UpdatedAt time.Time
	ID        string
	Stage     model.Stage
	Employees int
	Confirmed bool
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
