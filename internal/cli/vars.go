package cli

import (
	"github.com/valter-silva-au/docsync/internal/core"
	"github.com/valter-silva-au/docsync/internal/integration"
	"github.com/valter-silva-au/docsync/internal/observability"
	"github.com/valter-silva-au/docsync/pkg/models"
)

// Service instances, set during app initialization in app.go.
var (
	Config       *models.Config
	ConfigMgr    core.ConfigurationManager
	Source       integration.SourceHost
	Orchestrator core.Orchestrator
	Checker      integration.WorkspaceChecker
	EventLog     observability.EventLog
	BasePath     string
)
