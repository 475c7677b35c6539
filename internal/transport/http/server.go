// Package http exposes the payroll workflow over a JSON API.
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Veraticus/paydirt/internal/service"
	"github.com/Veraticus/paydirt/internal/workflow"
)

// Server wires the workflow engine and storage behind a chi router.
type Server struct {
	engine  *workflow.Engine
	storage service.Storage
	router  chi.Router
}

// NewServer builds the router with its middleware chain and routes.
func NewServer(engine *workflow.Engine, storage service.Storage) *Server {
	s := &Server{engine: engine, storage: storage}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger)
	r.Use(Recoverer)

	r.Get("/healthz", s.handleHealthz)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/chat", s.handleChat)
		r.Post("/merge-employees", s.handleMergeEmployees)
		r.Post("/generate-payroll", s.handleGeneratePayroll)

		r.Get("/roster", s.handleGetRoster)
		r.Put("/roster", s.handlePutRoster)

		r.Get("/sessions", s.handleListSessions)
		r.Get("/sessions/{id}", s.handleGetSession)
		r.Delete("/sessions/{id}", s.handleDeleteSession)
		r.Get("/sessions/{id}/report", s.handleGetReport)
	})

	s.router = r
	return s
}

// Handler returns the root http handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe runs the server until the context is canceled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
