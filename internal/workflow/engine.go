package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/Veraticus/paydirt/internal/common"
	"github.com/Veraticus/paydirt/internal/merge"
	"github.com/Veraticus/paydirt/internal/model"
	"github.com/Veraticus/paydirt/internal/payroll"
	"github.com/Veraticus/paydirt/internal/service"
)

// Config tunes the workflow engine.
type Config struct {
	// HistoryWindow is how many transcript entries are handed to the
	// responder for context.
	HistoryWindow int
	// ExtractTimeout bounds a single extraction attempt.
	ExtractTimeout time.Duration
	// Retry governs extractor and responder calls.
	Retry service.RetryOptions
}

// DefaultConfig returns sensible defaults for interactive use.
func DefaultConfig() Config {
	return Config{
		HistoryWindow:  8,
		ExtractTimeout: 60 * time.Second,
		Retry: service.RetryOptions{
			MaxAttempts:  2,
			InitialDelay: 500 * time.Millisecond,
			MaxDelay:     5 * time.Second,
			Multiplier:   2.0,
		},
	}
}

// Turn is one unit of user input: a message, a document, or both.
type Turn struct {
	Message  string
	Document *model.Document
}

// Result is what a processed turn produces.
type Result struct {
	Reply   string
	Session *model.Session
}

// Engine drives the payroll workflow state machine. All state transitions
// happen here; the extractor and responder are advisory collaborators whose
// failures degrade the conversation but never corrupt session state.
type Engine struct {
	storage   service.Storage
	extractor Extractor
	responder Responder
	config    Config

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates an engine with default configuration.
func New(storage service.Storage, extractor Extractor, responder Responder) *Engine {
	return NewWithConfig(storage, extractor, responder, DefaultConfig())
}

// NewWithConfig creates an engine with explicit configuration.
func NewWithConfig(storage service.Storage, extractor Extractor, responder Responder, cfg Config) *Engine {
	if cfg.HistoryWindow <= 0 {
		cfg.HistoryWindow = DefaultConfig().HistoryWindow
	}
	if cfg.ExtractTimeout <= 0 {
		cfg.ExtractTimeout = DefaultConfig().ExtractTimeout
	}
	return &Engine{
		storage:   storage,
		extractor: extractor,
		responder: responder,
		config:    cfg,
		locks:     make(map[string]*sync.Mutex),
	}
}

// Process handles one conversational turn for a session. Turns within a
// session are strictly serialized: a second caller arriving while a turn is
// in flight gets common.ErrSessionBusy instead of queueing.
func (e *Engine) Process(ctx context.Context, sessionID string, turn Turn) (*Result, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, fmt.Errorf("session id is required: %w", common.ErrInvalidConfig)
	}

	lock := e.sessionLock(sessionID)
	if !lock.TryLock() {
		return nil, fmt.Errorf("session %s has a turn in flight: %w", sessionID, common.ErrSessionBusy)
	}
	defer lock.Unlock()

	session, err := e.loadOrCreate(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if msg := strings.TrimSpace(turn.Message); msg != "" {
		session.Append(model.RoleUser, msg)
	}
	if turn.Document != nil {
		session.Document = turn.Document
		session.DocumentPending = true
		session.Stage = model.StageAwaitingExtraction
	}

	reply := e.advance(ctx, session, turn)

	session.Append(model.RoleAssistant, reply)
	if err := e.storage.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("saving session %s: %w", sessionID, err)
	}

	return &Result{Reply: reply, Session: session}, nil
}

// advance runs the priority-ordered transition rules for one turn and
// returns the assistant reply. Rules are evaluated top to bottom; the first
// applicable rule wins the turn.
func (e *Engine) advance(ctx context.Context, session *model.Session, turn Turn) string {
	message := strings.TrimSpace(turn.Message)

	// Rule 1: a pending document is extracted before anything else.
	if session.DocumentPending && session.Document != nil {
		updates := e.extract(ctx, session)
		session.Document = nil
		session.DocumentPending = false
		if len(updates) == 0 {
			session.Updates = nil
			session.Stage = e.restStage(session)
			return emptyExtractionFallback()
		}
		session.Updates = updates
		session.Stage = model.StageReadyForMerge
	}

	// Rule 2: fresh updates are merged exactly once, producing a pending
	// roster that must be confirmed before it becomes authoritative.
	if len(session.Updates) > 0 && len(session.MergedPending) == 0 {
		merged := merge.Merge(session.Existing, session.Updates)
		summary := merge.Summarize(session.Existing, session.Updates)
		session.MergedPending = merged
		session.Updates = nil
		session.Confirmed = false
		session.Stage = model.StageAwaitingConfirmation

		slog.Info("merge completed",
			"session", session.ID,
			"existing", len(session.Existing),
			"merged", len(merged),
			"added", len(summary.Added),
			"updated", len(summary.Updated),
		)
		return e.respond(ctx, session, mergePrompt(merged, summary), mergeFallback(merged, summary))
	}

	// Rule 3: a pending merge gates on confirmation. Structured edits adjust
	// the pending roster in place; anything else re-presents it.
	if len(session.MergedPending) > 0 {
		if IsConfirmation(message) {
			return e.confirmAndGenerate(ctx, session)
		}
		if edit, ok := ParseEdit(message); ok {
			return e.applyPendingEdit(session, edit)
		}
		return e.respond(ctx, session,
			pendingReminderPrompt(session.MergedPending),
			pendingReminderFallback(session.MergedPending))
	}

	// Rule 4: no pending work. Edits hit the authoritative roster directly;
	// "generate payroll" recomputes from it; everything else is conversation.
	if edit, ok := ParseEdit(message); ok && len(session.Existing) > 0 {
		return e.applyBaselineEdit(ctx, session, edit)
	}
	if strings.Contains(strings.ToLower(message), "generate payroll") && len(session.Existing) > 0 {
		return e.generateFromBaseline(ctx, session)
	}

	session.Stage = e.restStage(session)
	return e.respond(ctx, session, idlePrompt(session.Existing), idleFallback(session.Existing))
}

// confirmAndGenerate promotes the pending roster to authoritative and runs
// payroll over it. This is the only path on which payroll follows a merge.
func (e *Engine) confirmAndGenerate(ctx context.Context, session *model.Session) string {
	report, err := payroll.Compute(session.MergedPending)
	if err != nil {
		slog.Error("payroll computation rejected roster", "session", session.ID, "error", err)
		return fmt.Sprintf("I can't generate payroll from this roster: %v. Tell me what to fix.", err)
	}

	session.Existing = session.MergedPending
	session.MergedPending = nil
	session.Confirmed = true
	session.PayrollTriggered = true
	session.Report = report
	session.Stage = model.StagePayrollGenerated

	if err := e.storage.SavePayrollReport(ctx, session.ID, report); err != nil {
		slog.Error("persisting payroll report failed", "session", session.ID, "error", err)
	}

	slog.Info("payroll generated",
		"session", session.ID,
		"employees", len(report.Lines),
		"total", report.TotalPayroll,
	)
	return e.respond(ctx, session, payrollPrompt(report), payrollFallback(report))
}

// generateFromBaseline recomputes payroll from the confirmed roster, outside
// the merge flow. The newest report supersedes any earlier one.
func (e *Engine) generateFromBaseline(ctx context.Context, session *model.Session) string {
	report, err := payroll.Compute(session.Existing)
	if err != nil {
		slog.Error("payroll computation rejected roster", "session", session.ID, "error", err)
		return fmt.Sprintf("I can't generate payroll from the current roster: %v.", err)
	}

	session.PayrollTriggered = true
	session.Report = report
	session.Stage = model.StagePayrollGenerated

	if err := e.storage.SavePayrollReport(ctx, session.ID, report); err != nil {
		slog.Error("persisting payroll report failed", "session", session.ID, "error", err)
	}
	return e.respond(ctx, session, payrollPrompt(report), payrollFallback(report))
}

func (e *Engine) applyPendingEdit(session *model.Session, edit Edit) string {
	updated, resolved, err := ApplyEdit(session.MergedPending, edit)
	if err != nil {
		return editFailedFallback(edit, session.MergedPending)
	}
	session.MergedPending = updated
	// Editing the pending roster does not confirm it.
	session.Stage = model.StageAwaitingConfirmation
	slog.Info("pending roster edited", "session", session.ID, "employee", resolved, "field", edit.Field.String())
	return editAppliedFallback(resolved, edit, updated, true)
}

func (e *Engine) applyBaselineEdit(ctx context.Context, session *model.Session, edit Edit) string {
	updated, resolved, err := ApplyEdit(session.Existing, edit)
	if err != nil {
		return editFailedFallback(edit, session.Existing)
	}
	session.Existing = updated
	session.Stage = e.restStage(session)
	slog.Info("roster edited", "session", session.ID, "employee", resolved, "field", edit.Field.String())
	return editAppliedFallback(resolved, edit, updated, false)
}

// extract runs the extractor with retry, degrading to an empty result on
// exhaustion. Extraction failure is a conversational event, not an error:
// session state stays intact either way.
func (e *Engine) extract(ctx context.Context, session *model.Session) model.Roster {
	doc := *session.Document

	var updates model.Roster
	err := common.WithRetry(ctx, func() error {
		extractCtx, cancel := context.WithTimeout(ctx, e.config.ExtractTimeout)
		defer cancel()

		result, err := e.extractor.Extract(extractCtx, doc)
		if err != nil {
			return &common.RetryableError{Err: err, Retryable: true}
		}
		updates = result
		return nil
	}, e.config.Retry)
	if err != nil {
		slog.Warn("extraction failed, continuing with empty updates",
			"session", session.ID, "document", doc.Name, "error", err)
		return nil
	}

	slog.Info("document extracted", "session", session.ID, "document", doc.Name, "records", len(updates))
	return updates
}

// respond asks the responder to phrase the turn's reply, falling back to the
// deterministic rendering when it fails or returns nothing.
func (e *Engine) respond(ctx context.Context, session *model.Session, system, fallback string) string {
	if e.responder == nil {
		return fallback
	}

	var reply string
	err := common.WithRetry(ctx, func() error {
		r, err := e.responder.Respond(ctx, system, session.RecentMessages(e.config.HistoryWindow))
		if err != nil {
			return &common.RetryableError{Err: err, Retryable: true}
		}
		reply = r
		return nil
	}, e.config.Retry)
	if err != nil {
		slog.Warn("responder unavailable, using deterministic reply", "session", session.ID, "error", err)
		return fallback
	}
	if strings.TrimSpace(reply) == "" {
		return fallback
	}
	return reply
}

func (e *Engine) loadOrCreate(ctx context.Context, sessionID string) (*model.Session, error) {
	session, err := e.storage.GetSession(ctx, sessionID)
	switch {
	case err == nil:
		return session, nil
	case errors.Is(err, common.ErrNotFound):
		session = model.NewSession(sessionID)
	default:
		return nil, fmt.Errorf("loading session %s: %w", sessionID, err)
	}

	baseline, err := e.storage.LoadBaseline(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading baseline roster: %w", err)
	}
	session.Existing = baseline
	return session, nil
}

// restStage is the stage a session settles into when no work is pending.
// A freshly generated report holds its stage for one turn; after that the
// session is idle.
func (e *Engine) restStage(session *model.Session) model.Stage {
	if session.Stage == model.StagePayrollGenerated {
		return model.StageIdle
	}
	if len(session.Messages) <= 1 && session.Stage == model.StageInit {
		return model.StageInit
	}
	return model.StageIdle
}

func (e *Engine) sessionLock(sessionID string) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()
	lock, ok := e.locks[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		e.locks[sessionID] = lock
	}
	return lock
}
