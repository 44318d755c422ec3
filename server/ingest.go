package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/rustyeddy/mt5journal/journal"
)

// handleIngest accepts one event from the terminal. MT5 pads request
// bodies with trailing NULs and whitespace; strip them before decoding.
func (s *Server) handleIngest(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "read body: "+err.Error())
		return
	}
	clean := bytes.TrimRight(raw, "\x00 \t\r\n")

	var e journal.Event
	if err := json.Unmarshal(clean, &e); err != nil {
		s.log.Warn("ingest decode failed", zap.Error(err), zap.Int("raw_len", len(raw)))
		writeError(w, http.StatusBadRequest, "invalid json: "+err.Error())
		return
	}

	res, err := s.ledger.Ingest(e)
	if err != nil {
		if errors.Is(err, journal.ErrMissingDate) {
			writeError(w, http.StatusBadRequest, "missing 'date'")
			return
		}
		s.log.Error("ingest failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "ingest failed")
		return
	}

	s.log.Debug("event ingested",
		zap.String("date", e.Date),
		zap.Int64("ticket", e.Ticket),
		zap.String("result", res.String()),
	)
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "result": res.String()})
}

// handleAdjust appends a manual ADJUST event for a date. The adjustment
// amount may arrive as a JSON number or a numeric string.
func (s *Server) handleAdjust(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Date          string          `json:"date"`
		PnLAdjustment json.RawMessage `json:"pnl_adjustment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json: "+err.Error())
		return
	}

	if payload.Date == "" || len(payload.PnLAdjustment) == 0 {
		writeError(w, http.StatusBadRequest, "missing 'date' or 'pnl_adjustment'")
		return
	}

	adj, err := parseAmount(payload.PnLAdjustment)
	if err != nil {
		writeError(w, http.StatusBadRequest, "pnl_adjustment must be numeric")
		return
	}

	if _, err := s.ledger.Ingest(journal.Adjustment(payload.Date, adj)); err != nil {
		s.log.Error("adjust failed", zap.String("date", payload.Date), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "adjust failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":         "ok",
		"date":           payload.Date,
		"pnl_adjustment": adj,
	})
}

func parseAmount(raw json.RawMessage) (float64, error) {
	// Unmarshal treats a JSON null as a no-op, so it would slip through
	// as a zero adjustment; reject it like any other non-number.
	if string(bytes.TrimSpace(raw)) == "null" {
		return 0, errors.New("adjustment is null")
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, err
	}
	return strconv.ParseFloat(s, 64)
}
