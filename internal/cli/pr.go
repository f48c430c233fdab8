package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/valter-silva-au/docsync/internal/core"
	"github.com/valter-silva-au/docsync/pkg/models"
)

var prNumber int

var prCmd = &cobra.Command{
	Use:   "pr",
	Short: "Sync a merged pull request to the workspace changelog",
	Long: `Fetch metadata and changed files for a pull request, format a
changelog entry, and append it to the Changelog page via the agent
session. In full update mode the main documentation page is also
refreshed from the repository README.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if prNumber <= 0 {
			return fmt.Errorf("--number must be a positive PR number")
		}
		if err := ensureServices(); err != nil {
			return err
		}

		ctx := cmd.Context()

		pr, err := Source.PullRequest(ctx, Config.Owner, Config.Repo, prNumber)
		if err != nil {
			return fmt.Errorf("fetching pull request: %w", err)
		}
		files, err := Source.PullRequestFiles(ctx, Config.Owner, Config.Repo, prNumber)
		if err != nil {
			return fmt.Errorf("fetching changed files: %w", err)
		}

		entry := core.BuildPullRequestEntry(*pr, core.FormatPullRequestFiles(files), time.Now())

		var docCtx *models.DocUpdateContext
		if Config.UpdateMode == models.UpdateModeFull {
			candidates := make([]string, 0, len(files))
			for _, f := range files {
				candidates = append(candidates, f.Path)
			}
			docCtx = fetchDocContext(ctx, entry, candidates)
		}

		pageID, err := Orchestrator.Sync(ctx, entry, docCtx)
		if err != nil {
			fmt.Println(renderSummary(false, "pull request sync", [][2]string{
				{"PR", fmt.Sprintf("#%d", prNumber)},
				{"error", err.Error()},
			}))
			return err
		}

		fmt.Println(renderSummary(true, "pull request sync", [][2]string{
			{"PR", fmt.Sprintf("#%d %s", pr.Number, pr.Title)},
			{"changed files", fmt.Sprintf("%d", len(files))},
			{"page", pageID},
		}))
		return nil
	},
}

// fetchDocContext retrieves documentation content for the doc-update step.
// The default branch is the reference for README content: the merged state
// is what documentation should mirror.
func fetchDocContext(ctx context.Context, entry models.ChangelogEntry, candidates []string) *models.DocUpdateContext {
	repo, err := Source.Repository(ctx, Config.Owner, Config.Repo)
	if err != nil {
		return nil
	}
	content, order := core.FetchDocContent(ctx, Source, Config.Owner, Config.Repo, repo.DefaultBranch, candidates)
	docCtx := core.BuildDocUpdateContext(entry, content, order)
	return &docCtx
}

// ensureServices verifies app wiring and configuration before a sync run.
func ensureServices() error {
	if Config == nil || ConfigMgr == nil || Source == nil || Orchestrator == nil {
		return fmt.Errorf("docsync is not initialized; is .docsyncrc present?")
	}
	if err := ConfigMgr.ValidateConfig(Config); err != nil {
		return err
	}
	return nil
}

func init() {
	prCmd.Flags().IntVarP(&prNumber, "number", "n", 0, "pull request number to sync")
	_ = prCmd.MarkFlagRequired("number")
	rootCmd.AddCommand(prCmd)
}
