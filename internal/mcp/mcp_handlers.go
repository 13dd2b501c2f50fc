package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kademeqms/altscore/core"
	"github.com/kademeqms/altscore/internal/contract"
	"github.com/kademeqms/altscore/internal/httpapi"
	"github.com/kademeqms/altscore/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.StoreManager
	scores  httpapi.ScoreSetter
}

// requireID reads a positive integer argument.
func requireID(request mcp.CallToolRequest, name string) (int64, error) {
	id := request.GetInt(name, 0)
	if id <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer", name)
	}
	return int64(id), nil
}

func jsonResult(v any) *mcp.CallToolResult {
	jsonData, _ := json.MarshalIndent(v, "", "  ")
	return mcp.NewToolResultText(string(jsonData))
}

func (h *toolHandler) handleRankAlternatives(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	benchmarkID, err := requireID(request, "benchmark_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	cfg := h.baseCfg.Clone()
	if l := request.GetInt("limit", -1); l >= 0 {
		if l > contract.MaxResultLimit {
			return mcp.NewToolResultError(fmt.Sprintf("limit must be at most %d", contract.MaxResultLimit)), nil
		}
		cfg.ResultLimit = l
	}
	cfg.Explain = request.GetBool("explain", cfg.Explain)
	if p := request.GetString("weight_policy", ""); p != "" {
		policy := schema.WeightPolicy(p)
		if _, ok := schema.ValidWeightPolicies[policy]; !ok {
			return mcp.NewToolResultError(fmt.Sprintf("invalid weight_policy %q", p)), nil
		}
		cfg.WeightPolicy = policy
	}

	report, err := core.RankBenchmark(core.WithSuppressHeader(ctx), cfg, h.mgr, benchmarkID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("ranking failed: %v", err)), nil
	}
	if !cfg.Explain {
		for i := range report.Ranking {
			report.Ranking[i].Breakdown = nil
		}
	}
	return jsonResult(report), nil
}

func (h *toolHandler) handleBestValues(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	benchmarkID, err := requireID(request, "benchmark_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	snap, err := core.LoadSnapshot(core.WithSuppressHeader(ctx), h.baseCfg, h.mgr, benchmarkID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("best value search failed: %v", err)), nil
	}
	return jsonResult(core.BuildBestValueReport(snap)), nil
}

func (h *toolHandler) handleCriteriaMatrix(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	benchmarkID, err := requireID(request, "benchmark_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	snap, err := core.LoadSnapshot(core.WithSuppressHeader(ctx), h.baseCfg, h.mgr, benchmarkID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("matrix failed: %v", err)), nil
	}
	return jsonResult(core.BuildMatrix(snap, h.baseCfg)), nil
}

func (h *toolHandler) handleSetScore(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	altID, err := requireID(request, "alternative_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	critID, err := requireID(request, "criterion_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	raw, err := request.RequireString("raw")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if h.scores == nil {
		return mcp.NewToolResultError("score editing is not available"), nil
	}

	saved, err := h.scores.SetScore(ctx, altID, critID, raw)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("set score failed: %v", err)), nil
	}
	return jsonResult(saved), nil
}

func (h *toolHandler) handleGetAutoWeights(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(core.BuildWeightTable(h.baseCfg)), nil
}
