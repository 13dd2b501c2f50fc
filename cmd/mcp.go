package cmd

import (
	"github.com/kademeqms/altscore/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the altscore MCP server",
	Long: `Launch an MCP server on stdio that lets AI agents rank alternatives,
read best values and criteria matrices, and record scores via standard tools.`,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		scores, closeEvents := newMutationService()
		defer closeEvents()
		return mcp.StartMCPServer(rootCtx, cfg, storeManager, scores)
	},
}
