// Package server exposes the journal over a JSON HTTP API, the same
// surface the MT5 terminal and the dashboard talk to.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/rustyeddy/mt5journal/journal"
	"github.com/rustyeddy/mt5journal/pkg/id"
)

// Options tune the embedded http.Server.
type Options struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Server is the HTTP front end over the ledger. All derived fields come
// from the ledger's read surface; no handler recomputes them.
type Server struct {
	httpServer *http.Server
	ledger     *journal.Ledger
	log        *zap.Logger
}

// New builds a server bound to addr.
func New(addr string, ledger *journal.Ledger, log *zap.Logger, opts Options) *Server {
	s := &Server{
		ledger: ledger,
		log:    log,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/days", s.handleDays)
	mux.HandleFunc("GET /api/days/{date}/trades", s.handleTrades)
	mux.HandleFunc("POST /api/ingest_trade", s.handleIngest)
	mux.HandleFunc("POST /api/admin/adjust_day", s.handleAdjust)
	mux.HandleFunc("GET /api/flows", s.handleFlows)
	mux.HandleFunc("GET /api/stats/monthly", s.handleMonthly)
	mux.HandleFunc("GET /api/stats/yearly", s.handleYearly)
	mux.HandleFunc("GET /healthz", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.withRequestLog(mux),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       opts.ReadTimeout,
		WriteTimeout:      opts.WriteTimeout,
	}

	return s
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() {
		errc <- s.httpServer.ListenAndServe()
	}()

	s.log.Info("journal api listening", zap.String("addr", s.httpServer.Addr))

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	}
}

// withRequestLog tags each request with a ULID and logs its outcome.
func (s *Server) withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := id.New()
		start := time.Now()

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		s.log.Info("request",
			zap.String("request_id", reqID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("took", time.Since(start)),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleDays(w http.ResponseWriter, r *http.Request) {
	days, err := s.ledger.ListDays()
	if err != nil {
		s.log.Error("list days", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "query failed")
		return
	}
	writeJSON(w, http.StatusOK, days)
}

func (s *Server) handleTrades(w http.ResponseWriter, r *http.Request) {
	date := r.PathValue("date")
	events, err := s.ledger.TradesOn(date)
	if err != nil {
		s.log.Error("list trades", zap.String("date", date), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "query failed")
		return
	}
	if events == nil {
		events = []journal.Event{}
	}
	writeJSON(w, http.StatusOK, events)
}

func (s *Server) handleFlows(w http.ResponseWriter, r *http.Request) {
	flows, err := s.ledger.Flows()
	if err != nil {
		s.log.Error("list flows", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "query failed")
		return
	}
	if flows == nil {
		flows = []journal.Flow{}
	}
	writeJSON(w, http.StatusOK, flows)
}

func (s *Server) handleMonthly(w http.ResponseWriter, r *http.Request) {
	stats, err := s.ledger.Monthly()
	if err != nil {
		s.log.Error("monthly stats", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "query failed")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleYearly(w http.ResponseWriter, r *http.Request) {
	stats, err := s.ledger.Yearly()
	if err != nil {
		s.log.Error("yearly stats", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "query failed")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
