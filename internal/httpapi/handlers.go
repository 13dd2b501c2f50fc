package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/kademeqms/altscore/core"
	"github.com/kademeqms/altscore/internal/contract"
)

// errBadRequest marks errors caused by the request itself.
var errBadRequest = errors.New("bad request")

type errorResponse struct {
	Error string `json:"error"`
}

type setScoreRequest struct {
	Raw json.RawMessage `json:"raw"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps err to a status code: unknown entities are 404, request
// problems 400 and everything else 500.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, contract.ErrBenchmarkNotFound),
		errors.Is(err, contract.ErrAlternativeNotFound),
		errors.Is(err, contract.ErrCriterionNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errBadRequest):
		status = http.StatusBadRequest
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func pathID(r *http.Request, name, kind string) (int64, error) {
	id, err := contract.ParseID(kind, mux.Vars(r)[name])
	if err != nil {
		return 0, fmt.Errorf("%w: %w", errBadRequest, err)
	}
	return id, nil
}

// requestConfig applies the limit and explain query parameters to a copy of
// the server config.
func (s *Server) requestConfig(r *http.Request) (*contract.Config, error) {
	cfg := s.cfg.Clone()
	q := r.URL.Query()
	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 || limit > contract.MaxResultLimit {
			return nil, fmt.Errorf("%w: limit must be between 0 and %d", errBadRequest, contract.MaxResultLimit)
		}
		cfg.ResultLimit = limit
	}
	if v := q.Get("explain"); v != "" {
		explain, err := contract.ParseBoolString(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errBadRequest, err)
		}
		cfg.Explain = explain
	}
	return cfg, nil
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	store := s.mgr.GetDataStore()
	if store == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	status, err := store.GetStatus()
	if err != nil || !status.Connected {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "backend": status.Backend})
}

func (s *Server) handleRanking(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id", "benchmark")
	if err != nil {
		writeError(w, err)
		return
	}
	cfg, err := s.requestConfig(r)
	if err != nil {
		writeError(w, err)
		return
	}
	report, err := core.RankBenchmark(core.WithSuppressHeader(r.Context()), cfg, s.mgr, id)
	if err != nil {
		writeError(w, err)
		return
	}
	s.metrics.Ranked(len(report.Ranking))
	if !cfg.Explain {
		for i := range report.Ranking {
			report.Ranking[i].Breakdown = nil
		}
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleBest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id", "benchmark")
	if err != nil {
		writeError(w, err)
		return
	}
	snap, err := core.LoadSnapshot(core.WithSuppressHeader(r.Context()), s.cfg, s.mgr, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, core.BuildBestValueReport(snap))
}

func (s *Server) handleMatrix(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id", "benchmark")
	if err != nil {
		writeError(w, err)
		return
	}
	snap, err := core.LoadSnapshot(core.WithSuppressHeader(r.Context()), s.cfg, s.mgr, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, core.BuildMatrix(snap, s.cfg))
}

func (s *Server) handleSetScore(w http.ResponseWriter, r *http.Request) {
	altID, err := pathID(r, "alt", "alternative")
	if err != nil {
		writeError(w, err)
		return
	}
	critID, err := pathID(r, "criterion", "criterion")
	if err != nil {
		writeError(w, err)
		return
	}

	var req setScoreRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16)).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid JSON body: %w", errBadRequest, err))
		return
	}
	raw, err := rawInput(req.Raw)
	if err != nil {
		writeError(w, err)
		return
	}

	saved, err := s.scores.SetScore(r.Context(), altID, critID, raw)
	s.metrics.ScoreUpdated(err == nil)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// rawInput accepts the raw score as a JSON string or number. A missing or
// null field is empty input. Parsing into a value is left to the mutation
// service, which maps garbage to 0.
func rawInput(msg json.RawMessage) (string, error) {
	if len(msg) == 0 || string(msg) == "null" {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(msg, &s); err == nil {
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(msg, &n); err == nil {
		return n.String(), nil
	}
	return "", fmt.Errorf("%w: field 'raw' must be a string or a number", errBadRequest)
}
