// Package internal provides the App struct that wires all components of
// docsync together and initializes the CLI layer.
package internal

import (
	"os"
	"path/filepath"

	"github.com/valter-silva-au/docsync/internal/cli"
	"github.com/valter-silva-au/docsync/internal/core"
	"github.com/valter-silva-au/docsync/internal/integration"
	"github.com/valter-silva-au/docsync/internal/observability"
	"github.com/valter-silva-au/docsync/pkg/models"
)

// App holds all service dependencies for docsync.
type App struct {
	BasePath string

	ConfigMgr core.ConfigurationManager
	Config    *models.Config

	Source       integration.SourceHost
	Agent        core.AgentClient
	Orchestrator core.Orchestrator
	Checker      integration.WorkspaceChecker

	EventLog observability.EventLog
}

// NewApp creates and wires all components. basePath is the directory
// containing .docsyncrc; configuration validation is deferred to the
// commands that need it so check and version work from anywhere.
func NewApp(basePath, version string) (*App, error) {
	app := &App{BasePath: basePath}

	app.ConfigMgr = core.NewConfigurationManager(basePath)
	cfg, err := app.ConfigMgr.LoadConfig()
	if err != nil {
		return nil, err
	}
	app.Config = cfg

	app.Source = integration.NewGitHubHost(cfg.GitHubToken)
	app.Agent = integration.NewClaudeClient("")
	app.Checker = integration.NewWorkspaceChecker(version)

	eventLogPath := filepath.Join(basePath, ".docsync_events.jsonl")
	app.EventLog, err = observability.NewJSONLEventLog(eventLogPath)
	if err != nil {
		// Non-fatal: the run proceeds without event recording.
		app.EventLog = nil
	}

	var events core.EventLogger
	if app.EventLog != nil {
		events = app.EventLog
	}
	app.Orchestrator = core.NewOrchestrator(app.Agent, *cfg, events)

	// Expose services to the CLI layer.
	cli.BasePath = basePath
	cli.Config = app.Config
	cli.ConfigMgr = app.ConfigMgr
	cli.Source = app.Source
	cli.Orchestrator = app.Orchestrator
	cli.Checker = app.Checker
	cli.EventLog = app.EventLog

	return app, nil
}

// ResolveBasePath locates the docsync home directory: DOCSYNC_HOME when
// set, otherwise the nearest ancestor directory containing .docsyncrc,
// falling back to the current directory.
func ResolveBasePath() string {
	if home := os.Getenv("DOCSYNC_HOME"); home != "" {
		return home
	}
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, ".docsyncrc")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	cwd, _ := os.Getwd()
	return cwd
}
