// Package cli defines the docsync command surface: pr, periodic, check,
// and version.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets the version information injected via ldflags.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "docsync",
	Short: "docsync - AI-assisted documentation sync automation",
	Long: `docsync keeps a document-workspace changelog in sync with a GitHub
repository. On a merged pull request or a periodic trigger it gathers
change metadata, formats a changelog entry, and drives a tool-using AI
session that finds or creates the Changelog page and appends the entry,
optionally also refreshing the main documentation page from the README.`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("docsync %s\ncommit: %s\nbuilt:  %s\n", appVersion, appCommit, appDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
