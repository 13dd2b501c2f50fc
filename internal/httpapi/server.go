// Package httpapi serves rankings and score edits over HTTP.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/kademeqms/altscore/core"
	"github.com/kademeqms/altscore/internal/contract"
	"github.com/kademeqms/altscore/schema"
)

// ScoreSetter writes one raw score; *core.MutationService satisfies it.
type ScoreSetter interface {
	SetScore(ctx context.Context, alternativeID, criterionID int64, raw string) (schema.Score, error)
}

var _ ScoreSetter = &core.MutationService{} // Compile-time check

// Server holds what the HTTP handlers need.
type Server struct {
	cfg     *contract.Config
	mgr     contract.StoreManager
	scores  ScoreSetter
	metrics *Metrics
}

// NewServer creates a Server. The config is cloned per request before any
// query parameter is applied.
func NewServer(cfg *contract.Config, mgr contract.StoreManager, scores ScoreSetter, metrics *Metrics) *Server {
	return &Server{cfg: cfg, mgr: mgr, scores: scores, metrics: metrics}
}

// Router returns the API routes.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	route := func(path, name string, h http.HandlerFunc, methods ...string) {
		r.Handle(path, s.metrics.WrapHandler(name, h)).Methods(methods...)
	}

	route("/health", "health", s.handleHealth, http.MethodGet)
	route("/benchmarks/{id}/ranking", "ranking", s.handleRanking, http.MethodGet)
	route("/benchmarks/{id}/best", "best", s.handleBest, http.MethodGet)
	route("/benchmarks/{id}/matrix", "matrix", s.handleMatrix, http.MethodGet)
	route("/scores/{alt}/{criterion}", "set_score", s.handleSetScore, http.MethodPut)
	r.Handle("/metrics", s.metrics.Handler()).Methods(http.MethodGet)
	return r
}

// Handler returns the router wrapped with access logging to w.
func (s *Server) Handler(w io.Writer) http.Handler {
	return handlers.LoggingHandler(w, s.Router())
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down gracefully.
func ListenAndServe(ctx context.Context, addr string, h http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
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
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
