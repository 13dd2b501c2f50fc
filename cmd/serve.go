package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kademeqms/altscore/internal/contract"
	"github.com/kademeqms/altscore/internal/httpapi"
	"github.com/spf13/cobra"
)

// serveCmd runs the HTTP API.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve rankings and score edits over HTTP",
	Long: `Start an HTTP API over the configured data store.

Endpoints:
  GET /health                        - Store connectivity
  GET /benchmarks/{id}/ranking       - Ranking (?limit=N&explain=true)
  GET /benchmarks/{id}/best          - Best-value report
  GET /benchmarks/{id}/matrix        - Criteria matrix
  PUT /scores/{alternative}/{criterion} - Set a score, body {"raw": "87"}
  GET /metrics                       - Prometheus metrics

Score edits are published to Kafka when --events-brokers is set.
The server stops gracefully on SIGINT or SIGTERM.

Examples:
  altscore serve --listen :9090
  altscore serve --events-brokers kafka:9092 --runs-backend sqlite`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		ctx, stop := signal.NotifyContext(rootCtx, os.Interrupt, syscall.SIGTERM)
		defer stop()

		scores, closeEvents := newMutationService()
		defer closeEvents()

		srv := httpapi.NewServer(cfg, storeManager, scores, httpapi.NewMetrics())
		fmt.Printf("Listening on %s\n", cfg.ListenAddr)
		if err := httpapi.ListenAndServe(ctx, cfg.ListenAddr, srv.Handler(os.Stdout)); err != nil {
			contract.LogFatal("HTTP server failed", err)
		}
	},
}
