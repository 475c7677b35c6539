package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Veraticus/paydirt/internal/common"
	"github.com/Veraticus/paydirt/internal/export"
	"github.com/Veraticus/paydirt/internal/merge"
	"github.com/Veraticus/paydirt/internal/model"
	"github.com/Veraticus/paydirt/internal/payroll"
	"github.com/Veraticus/paydirt/internal/transport/http/api"
	"github.com/Veraticus/paydirt/internal/workflow"
)

const maxBodyBytes = 20 << 20 // documents arrive base64-encoded in JSON

type documentPayload struct {
	Name string `json:"name"`
	MIME string `json:"mime"`
	Data []byte `json:"data"`
}

type chatRequest struct {
	SessionID string           `json:"session_id"`
	Message   string           `json:"message"`
	Document  *documentPayload `json:"document,omitempty"`
}

type chatResponse struct {
	SessionID    string               `json:"session_id"`
	Reply        string               `json:"reply"`
	Stage        model.Stage          `json:"stage"`
	Confirmed    bool                 `json:"confirmed"`
	PendingMerge bool                 `json:"pending_merge"`
	Roster       model.Roster         `json:"roster"`
	Report       *model.PayrollReport `json:"report,omitempty"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	reqID := GetRequestID(r.Context())

	var req chatRequest
	if err := decodeJSON(r, &req); err != nil {
		api.Fail(w, http.StatusBadRequest, api.CodeBadRequest, err.Error(), reqID)
		return
	}
	if req.SessionID == "" {
		req.SessionID = uuid.NewString()
	}
	if strings.TrimSpace(req.Message) == "" && req.Document == nil {
		api.Fail(w, http.StatusBadRequest, api.CodeBadRequest,
			"a message or a document is required", reqID)
		return
	}

	turn := workflow.Turn{Message: req.Message}
	if req.Document != nil {
		if len(req.Document.Data) == 0 {
			api.Fail(w, http.StatusBadRequest, api.CodeBadRequest,
				"document data is empty", reqID)
			return
		}
		turn.Document = &model.Document{
			Name: req.Document.Name,
			MIME: req.Document.MIME,
			Data: req.Document.Data,
		}
	}

	result, err := s.engine.Process(r.Context(), req.SessionID, turn)
	if err != nil {
		s.fail(w, err, reqID)
		return
	}

	session := result.Session
	roster := session.Existing
	if len(session.MergedPending) > 0 {
		roster = session.MergedPending
	}
	api.Success(w, chatResponse{
		SessionID:    session.ID,
		Reply:        result.Reply,
		Stage:        session.Stage,
		Confirmed:    session.Confirmed,
		PendingMerge: len(session.MergedPending) > 0,
		Roster:       roster,
		Report:       session.Report,
	}, reqID)
}

type mergeRequest struct {
	Existing model.Roster `json:"existing"`
	Updates  model.Roster `json:"updates"`
}

type mergeResponse struct {
	Merged  model.Roster       `json:"merged"`
	Summary model.MergeSummary `json:"summary"`
}

// handleMergeEmployees previews a merge without touching any session. It
// exists for administrative inspection of the conflict-resolution rules.
func (s *Server) handleMergeEmployees(w http.ResponseWriter, r *http.Request) {
	reqID := GetRequestID(r.Context())

	var req mergeRequest
	if err := decodeJSON(r, &req); err != nil {
		api.Fail(w, http.StatusBadRequest, api.CodeBadRequest, err.Error(), reqID)
		return
	}
	// Malformed records are rejected here; the merge itself assumes clean
	// input.
	if err := req.Existing.Validate(); err != nil {
		api.Fail(w, http.StatusBadRequest, api.CodeValidation,
			fmt.Sprintf("existing roster: %v", err), reqID)
		return
	}
	if err := req.Updates.Validate(); err != nil {
		api.Fail(w, http.StatusBadRequest, api.CodeValidation,
			fmt.Sprintf("updates roster: %v", err), reqID)
		return
	}

	merged := merge.Merge(req.Existing, req.Updates)
	summary := merge.Summarize(req.Existing, req.Updates)
	api.Success(w, mergeResponse{Merged: merged, Summary: summary}, reqID)
}

type payrollRequest struct {
	Employees model.Roster `json:"employees"`
}

// handleGeneratePayroll computes a report directly from a supplied roster,
// bypassing the session confirmation flow.
func (s *Server) handleGeneratePayroll(w http.ResponseWriter, r *http.Request) {
	reqID := GetRequestID(r.Context())

	var req payrollRequest
	if err := decodeJSON(r, &req); err != nil {
		api.Fail(w, http.StatusBadRequest, api.CodeBadRequest, err.Error(), reqID)
		return
	}
	if len(req.Employees) == 0 {
		api.Fail(w, http.StatusBadRequest, api.CodeBadRequest, "employees are required", reqID)
		return
	}

	report, err := payroll.Compute(req.Employees)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, api.CodeValidation, err.Error(), reqID)
		return
	}
	api.Success(w, report, reqID)
}

func (s *Server) handleGetRoster(w http.ResponseWriter, r *http.Request) {
	reqID := GetRequestID(r.Context())
	roster, err := s.storage.LoadBaseline(r.Context())
	if err != nil {
		s.fail(w, err, reqID)
		return
	}
	api.Success(w, roster, reqID)
}

func (s *Server) handlePutRoster(w http.ResponseWriter, r *http.Request) {
	reqID := GetRequestID(r.Context())

	var roster model.Roster
	if err := decodeJSON(r, &roster); err != nil {
		api.Fail(w, http.StatusBadRequest, api.CodeBadRequest, err.Error(), reqID)
		return
	}
	if err := roster.Validate(); err != nil {
		api.Fail(w, http.StatusBadRequest, api.CodeValidation, err.Error(), reqID)
		return
	}
	if err := s.storage.SaveBaseline(r.Context(), roster); err != nil {
		s.fail(w, err, reqID)
		return
	}
	api.Success(w, roster, reqID)
}

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	reqID := GetRequestID(r.Context())
	sessions, err := s.storage.ListSessions(r.Context())
	if err != nil {
		s.fail(w, err, reqID)
		return
	}
	api.Success(w, sessions, reqID)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	reqID := GetRequestID(r.Context())
	session, err := s.storage.GetSession(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, err, reqID)
		return
	}
	api.Success(w, session, reqID)
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	reqID := GetRequestID(r.Context())
	if err := s.storage.DeleteSession(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.fail(w, err, reqID)
		return
	}
	api.Success(w, map[string]string{"deleted": chi.URLParam(r, "id")}, reqID)
}

func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	reqID := GetRequestID(r.Context())
	sessionID := chi.URLParam(r, "id")

	report, err := s.storage.GetLatestReport(r.Context(), sessionID)
	if err != nil {
		s.fail(w, err, reqID)
		return
	}

	switch format := r.URL.Query().Get("format"); format {
	case "", "json":
		api.Success(w, report, reqID)
	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition",
			fmt.Sprintf("attachment; filename=payroll-%s.csv", report.ID))
		if err := export.WriteReportCSV(w, report); err != nil {
			s.fail(w, err, reqID)
		}
	case "pdf":
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition",
			fmt.Sprintf("attachment; filename=payroll-%s.pdf", report.ID))
		if err := export.WriteReportPDF(w, report); err != nil {
			s.fail(w, err, reqID)
		}
	default:
		api.Fail(w, http.StatusBadRequest, api.CodeBadRequest,
			fmt.Sprintf("unknown format %q", format), reqID)
	}
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// fail maps domain errors to HTTP semantics.
func (s *Server) fail(w http.ResponseWriter, err error, reqID string) {
	switch {
	case errors.Is(err, common.ErrSessionBusy):
		api.Fail(w, http.StatusConflict, api.CodeConcurrencyViolation,
			"session is processing another turn; retry shortly", reqID)
	case errors.Is(err, common.ErrNotFound):
		api.Fail(w, http.StatusNotFound, api.CodeNotFound, err.Error(), reqID)
	case errors.Is(err, model.ErrInvalidEmployee):
		api.Fail(w, http.StatusBadRequest, api.CodeValidation, err.Error(), reqID)
	default:
		api.Fail(w, http.StatusInternalServerError, api.CodeInternal, err.Error(), reqID)
	}
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}
