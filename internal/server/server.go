// Copyright (c) 2026 Keycalc Team
// Keycalc - terminal keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package server exposes an accumulator as an HTTP keypad.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/toeirei/keycalc/internal/calc"
	"github.com/toeirei/keycalc/internal/logging"
)

// maxKeysBody caps POST /keys bodies; the key loop runs under the lock.
const maxKeysBody = 16 << 10

// KeysRequest is the body of POST /keys.
type KeysRequest struct {
	Keys string `json:"keys"`
}

// StateResponse is returned by every keypad endpoint.
type StateResponse struct {
	Display   string   `json:"display"`
	Operator  string   `json:"operator"`
	History   []string `json:"history"`
	Error     string   `json:"error,omitempty"`
	RequestID string   `json:"request_id,omitempty"`
}

// Server serialises access to one accumulator. HTTP handlers run
// concurrently, so every key goes through mu to keep the one-event-at-a-time
// delivery the accumulator relies on.
type Server struct {
	mu      sync.Mutex
	acc     *calc.Accumulator
	metrics *Metrics
}

// New wraps acc.
func New(acc *calc.Accumulator, metrics *Metrics) *Server {
	if metrics == nil {
		metrics = NewMetrics()
	}
	s := &Server{acc: acc, metrics: metrics}
	s.metrics.historyEntries.Set(float64(len(acc.History())))
	return s
}

// Router mounts the keypad endpoints.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", s.metrics.Handler())

	r.Get("/state", s.handleState)
	r.Post("/keys", s.handleKeys)
	r.Post("/clear", s.handleClear)
	r.Delete("/history", s.handleClearHistory)

	return r
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	resp := s.snapshot(nil)
	s.mu.Unlock()
	s.write(w, r, http.StatusOK, resp)
}

func (s *Server) handleKeys(w http.ResponseWriter, r *http.Request) {
	var req KeysRequest
	body := http.MaxBytesReader(w, r.Body, maxKeysBody)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, r, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	keys, err := calc.ParseKeys(req.Keys)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	s.write(w, r, http.StatusOK, s.pressAll(r.Context(), keys))
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	s.write(w, r, http.StatusOK, s.pressAll(r.Context(), []calc.Key{calc.Clear}))
}

func (s *Server) handleClearHistory(w http.ResponseWriter, r *http.Request) {
	s.write(w, r, http.StatusOK, s.pressAll(r.Context(), []calc.Key{calc.ClearHistory}))
}

func (s *Server) pressAll(ctx context.Context, keys []calc.Key) StateResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	var lastErr error
	for _, k := range keys {
		out := s.acc.Press(ctx, k)
		s.metrics.observe(out)
		lastErr = out.Err
	}
	s.metrics.historyEntries.Set(float64(len(s.acc.History())))
	return s.snapshot(lastErr)
}

// snapshot must be called with mu held.
func (s *Server) snapshot(err error) StateResponse {
	st := s.acc.State()
	resp := StateResponse{
		Display:  st.Display,
		Operator: st.Op.Glyph(),
		History:  s.acc.HistoryLines(),
	}
	if err != nil {
		resp.Error = calc.ErrorClass(err)
	}
	return resp
}

func (s *Server) write(w http.ResponseWriter, r *http.Request, status int, resp StateResponse) {
	resp.RequestID = RequestIDFromContext(r.Context())
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// writeError writes a standardised JSON error response.
func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":      msg,
		"request_id": RequestIDFromContext(r.Context()),
	})
}

// ListenAndServe runs the keypad on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logging.Infof("server: shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
