package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/valter-silva-au/docsync/internal/integration"
)

// checkCacheTTL is how long a preflight result stays trusted.
const checkCacheTTL = 15 * time.Minute

var checkNoCache bool

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Preflight the document-workspace MCP server",
	Long: `Connect to the MCP servers declared in the agent's MCP config, list
their tools, and report any allow-listed tool that the workspace does
not actually provide. Results are cached briefly to keep repeated runs
cheap.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Checker == nil || Config == nil {
			return fmt.Errorf("docsync is not initialized; is .docsyncrc present?")
		}

		var results []integration.WorkspaceCheckResult
		if !checkNoCache {
			results = Checker.LoadCache(BasePath)
		}
		if results == nil {
			var err error
			results, err = Checker.Check(cmd.Context(), Config.MCPConfigPath, Config.AllowedTools)
			if err != nil {
				return fmt.Errorf("checking workspace servers: %w", err)
			}
			if err := Checker.SaveCache(BasePath, results, checkCacheTTL); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: saving check cache: %v\n", err)
			}
		}

		allHealthy := true
		for _, r := range results {
			rows := [][2]string{
				{"tools", fmt.Sprintf("%d available", len(r.AvailableTools))},
				{"latency", r.ResponseTime.String()},
			}
			if len(r.MissingTools) > 0 {
				rows = append(rows, [2]string{"missing", fmt.Sprintf("%v", r.MissingTools)})
			}
			if r.Error != "" {
				rows = append(rows, [2]string{"error", r.Error})
			}
			healthy := r.Healthy && len(r.MissingTools) == 0
			allHealthy = allHealthy && healthy
			fmt.Println(renderSummary(healthy, "MCP server "+r.Server, rows))
		}

		if !allHealthy {
			return fmt.Errorf("workspace preflight failed")
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().BoolVar(&checkNoCache, "no-cache", false, "ignore cached check results")
	rootCmd.AddCommand(checkCmd)
}
