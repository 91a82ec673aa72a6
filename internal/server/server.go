// Package server exposes the note-generation pipeline over HTTP so a
// companion browser extension (or anything else) can trigger it.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"

	"github.com/Rehneet11/LeetNotes/internal/notes"
)

// Runner executes one note-generation invocation.
type Runner interface {
	Run(ctx context.Context, payload notes.Payload) notes.Result
}

// Config holds server configuration.
type Config struct {
	Port     int
	AllowAll bool // allow all CORS origins (dev mode)
}

// Server is the local trigger server.
type Server struct {
	cfg        Config
	runner     Runner
	router     chi.Router
	httpServer *http.Server
}

// New creates a server around the given pipeline runner.
func New(cfg Config, runner Runner) *Server {
	s := &Server{
		cfg:    cfg,
		runner: runner,
	}
	s.router = s.buildRouter()
	return s
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(120 * time.Second))

	// Browser extensions call from extension origins, not localhost.
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"chrome-extension://*", "moz-extension://*", "http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Post("/api/generate", s.handleGenerate)

	return r
}

// handleGenerate accepts the trigger payload and reports the pipeline result.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var payload notes.Payload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeResult(w, http.StatusBadRequest, notes.Result{Error: "invalid request body: " + err.Error()})
		return
	}

	id := uuid.NewString()
	log.Printf("[%s] generate triggered: title=%q language=%q", id, payload.Title, payload.Language)

	result := s.runner.Run(r.Context(), payload)
	if result.Success {
		log.Printf("[%s] notes appended", id)
	} else {
		log.Printf("[%s] failed: %s", id, result.Error)
	}

	writeResult(w, http.StatusOK, result)
}

func writeResult(w http.ResponseWriter, status int, result notes.Result) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(result)
}

// Router returns the chi router, mainly for tests.
func (s *Server) Router() chi.Router { return s.router }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      180 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("leetnotes trigger server listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
