package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/valter-silva-au/docsync/internal/core"
	"github.com/valter-silva-au/docsync/pkg/models"
)

var periodicCmd = &cobra.Command{
	Use:   "periodic",
	Short: "Sync the current state of the default branch",
	Long: `Build a changelog entry from the repository's default branch: latest
commit, repository metadata, and a capped file listing from the tree.
Used for scheduled or manual runs that are not tied to a single pull
request.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := ensureServices(); err != nil {
			return err
		}

		ctx := cmd.Context()

		repo, err := Source.Repository(ctx, Config.Owner, Config.Repo)
		if err != nil {
			return fmt.Errorf("fetching repository metadata: %w", err)
		}
		commit, err := Source.LatestCommit(ctx, Config.Owner, Config.Repo, repo.DefaultBranch)
		if err != nil {
			return fmt.Errorf("fetching latest commit: %w", err)
		}
		tree, err := Source.Tree(ctx, Config.Owner, Config.Repo, repo.DefaultBranch)
		if err != nil {
			return fmt.Errorf("fetching repository tree: %w", err)
		}

		entry := core.BuildSyncEntry(*repo, *commit, core.FormatTreeFiles(tree, Config.TreeFileLimit), time.Now())

		var docCtx *models.DocUpdateContext
		if Config.UpdateMode == models.UpdateModeFull {
			var candidates []string
			for _, e := range tree {
				if e.Type == "blob" {
					candidates = append(candidates, e.Path)
				}
			}
			docCtx = fetchDocContext(ctx, entry, candidates)
		}

		pageID, err := Orchestrator.Sync(ctx, entry, docCtx)
		if err != nil {
			fmt.Println(renderSummary(false, "periodic sync", [][2]string{
				{"branch", repo.DefaultBranch},
				{"error", err.Error()},
			}))
			return err
		}

		fmt.Println(renderSummary(true, "periodic sync", [][2]string{
			{"branch", repo.DefaultBranch},
			{"commit", entry.CommitHash},
			{"page", pageID},
		}))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(periodicCmd)
}
