// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/kademeqms/altscore/internal/contract"
	"github.com/kademeqms/altscore/internal/httpapi"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the altscore MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.StoreManager, scores httpapi.ScoreSetter) *server.MCPServer {
	s := server.NewMCPServer(
		"altscore Scoring Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
		scores:  scores,
	}

	// --- 1. Tool: rank_alternatives ---
	s.AddTool(mcp.NewTool("rank_alternatives",
		mcp.WithDescription("Compute composite scores for every alternative of a benchmark and rank them, best first."),
		mcp.WithNumber("benchmark_id", mcp.Description("ID of the benchmark to rank."), mcp.Required()),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned (0 returns all).")),
		mcp.WithBoolean("explain", mcp.Description("Include the per-attribute or per-criterion contribution breakdown.")),
		mcp.WithString("weight_policy", mcp.Description("How manual scores are weighted. Defaults to 'current'."), mcp.Enum("current", "frozen")),
	), h.handleRankAlternatives)

	// --- 2. Tool: best_values ---
	s.AddTool(mcp.NewTool("best_values",
		mcp.WithDescription("Find the alternative with the best value of every attribute: lowest for costs and durations, highest for scores."),
		mcp.WithNumber("benchmark_id", mcp.Description("ID of the benchmark."), mcp.Required()),
	), h.handleBestValues)

	// --- 3. Tool: criteria_matrix ---
	s.AddTool(mcp.NewTool("criteria_matrix",
		mcp.WithDescription("Return the manual scores of a benchmark as alternatives by criteria."),
		mcp.WithNumber("benchmark_id", mcp.Description("ID of the benchmark."), mcp.Required()),
	), h.handleCriteriaMatrix)

	// --- 4. Tool: set_score ---
	s.AddTool(mcp.NewTool("set_score",
		mcp.WithDescription("Record an evaluator's raw score (0-100) of one alternative against one criterion. Non-numeric input is stored as 0."),
		mcp.WithNumber("alternative_id", mcp.Description("ID of the alternative."), mcp.Required()),
		mcp.WithNumber("criterion_id", mcp.Description("ID of the criterion."), mcp.Required()),
		mcp.WithString("raw", mcp.Description("The raw score as typed by the evaluator, e.g. '85'."), mcp.Required()),
	), h.handleSetScore)

	// --- 5. Tool: get_auto_weights ---
	s.AddTool(mcp.NewTool("get_auto_weights",
		mcp.WithDescription("Return the effective weight table of the automatic scoring engine."),
	), h.handleGetAutoWeights)

	return s
}

// StartMCPServer starts the altscore MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.StoreManager, scores httpapi.ScoreSetter) error {
	s := NewMCPServer(baseCfg, mgr, scores)
	return server.ServeStdio(s)
}
