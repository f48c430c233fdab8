package models

import "time"

// UpdateMode selects what a run writes to the document workspace.
type UpdateMode string

const (
	// UpdateModeChangelogOnly appends changelog entries and nothing else.
	UpdateModeChangelogOnly UpdateMode = "changelog-only"
	// UpdateModeFull additionally refreshes the main documentation page
	// from the repository readme.
	UpdateModeFull UpdateMode = "full"
)

// Config holds all settings read from .docsyncrc via Viper, with secrets
// overridable from the environment.
type Config struct {
	// RootPageID identifies the workspace page under which the Changelog
	// child page lives. Stored dash-free (32 hex characters).
	RootPageID string `yaml:"root_page_id" mapstructure:"root_page_id"`

	UpdateMode UpdateMode `yaml:"update_mode" mapstructure:"update_mode"`

	// Model is the agent model selection, passed through opaquely.
	Model string `yaml:"model,omitempty" mapstructure:"model"`

	// MCPConfigPath points at the JSON file declaring the document
	// workspace MCP server.
	MCPConfigPath string `yaml:"mcp_config,omitempty" mapstructure:"mcp_config"`

	// AllowedTools is the explicit tool allow-list handed to the agent
	// session.
	AllowedTools []string `yaml:"allowed_tools,omitempty" mapstructure:"allowed_tools"`

	Owner string `yaml:"owner" mapstructure:"owner"`
	Repo  string `yaml:"repo" mapstructure:"repo"`

	// GitHubToken is read from DOCSYNC_GITHUB_TOKEN, never from the file.
	GitHubToken string `yaml:"-" mapstructure:"-"`

	// ExchangeTimeout bounds each agent request/response round trip.
	ExchangeTimeout time.Duration `yaml:"exchange_timeout,omitempty" mapstructure:"exchange_timeout"`

	// TreeFileLimit caps the periodic-sync changed-file listing.
	TreeFileLimit int `yaml:"tree_file_limit,omitempty" mapstructure:"tree_file_limit"`
}

// SessionConfig carries the parameters for opening one agent session.
type SessionConfig struct {
	Model         string
	MCPConfigPath string
	AllowedTools  []string
}
