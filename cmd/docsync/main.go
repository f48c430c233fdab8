package main

import (
	"fmt"
	"os"

	app "github.com/valter-silva-au/docsync/internal"
	"github.com/valter-silva-au/docsync/internal/cli"
)

// Set by goreleaser ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersionInfo(version, commit, date)
	basePath := app.ResolveBasePath()

	a, err := app.NewApp(basePath, version)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing docsync: %v\n", err)
		os.Exit(1)
	}
	if a.EventLog != nil {
		defer func() { _ = a.EventLog.Close() }()
	}

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
