// Package server accepts block programs from the Blockly front end over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"blockly/pkg/interpreter"
	"blockly/pkg/world"

	"github.com/charmbracelet/log"
)

const maxProgramSize = 1 << 20

// Interpreter is the part of *interpreter.Interpreter the server drives
type Interpreter interface {
	Run(ctx context.Context, lines []string) interpreter.Outcome
	Reset()
	Interrupt()
}

// Hero reports and resets the hero's position
type Hero interface {
	Hero() world.Point
	Teleport() world.Point
}

// Server serialises program runs: one /start at a time, /reset and /clear may
// arrive while a run is in progress.
type Server struct {
	it   Interpreter
	hero Hero
	log  *log.Logger

	run sync.Mutex // held for the duration of a program run
}

// New creates a server. A nil logger uses the default logger.
func New(it Interpreter, hero Hero, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{it: it, hero: hero, log: logger}
}

// Handler routes /start, /reset and /clear
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/start", s.handleStart)
	mux.HandleFunc("/reset", s.handleReset)
	mux.HandleFunc("/clear", s.handleClear)
	return cors(mux)
}

// ListenAndServe serves until ctx is done, then shuts down gracefully
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.log.Info("Listening", "addr", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.it.Interrupt()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		if r.Method == http.MethodOptions {
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// handleStart runs the posted program. Interrupted and failed runs leave the
// interpreter reset.
func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxProgramSize))
	if err != nil {
		http.Error(w, "Could not read program: "+err.Error(), http.StatusBadRequest)
		return
	}

	if !s.run.TryLock() {
		s.log.Warn("Rejected program, another one is running")
		http.Error(w, "Execution already running", http.StatusConflict)
		return
	}
	defer s.run.Unlock()

	lines := interpreter.SplitProgram(string(body))
	s.log.Info("Starting program", "lines", len(lines))

	out := s.it.Run(r.Context(), lines)
	switch out.Status {
	case interpreter.Failed:
		s.it.Reset()
		s.log.Info("Program failed", "action", out.Action, "error", out.Message)
		write(w, http.StatusBadRequest, FailureMessage(out))

	case interpreter.Interrupted:
		s.it.Reset()
		s.log.Info("Program interrupted")
		write(w, http.StatusResetContent, "Execution interrupted")

	default:
		s.log.Info("Program finished")
		write(w, http.StatusOK, "OK")
	}
}

// handleReset stops the running program and puts the hero back on the start tile
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.it.Interrupt()

	// an idle interpreter is reset here, a running one by its /start handler
	if s.run.TryLock() {
		s.it.Reset()
		s.run.Unlock()
	}

	pos := s.hero.Teleport()
	s.log.Info("Reset", "hero", pos)
	write(w, http.StatusOK, pos.String())
}

// handleClear discards all interpreter state, waiting for a running program to stop
func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	if !s.run.TryLock() {
		s.it.Interrupt()
		s.run.Lock()
	}
	s.it.Reset()
	s.run.Unlock()

	pos := s.hero.Hero()
	s.log.Info("Cleared", "hero", pos)
	write(w, http.StatusOK, pos.String())
}

// FailureMessage renders a failed outcome the way the front end displays it
func FailureMessage(out interpreter.Outcome) string {
	return fmt.Sprintf("Anweisung: %s\nFehlermeldung: %s", out.Action, out.Message)
}

func write(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}
