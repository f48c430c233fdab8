package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/valter-silva-au/docsync/pkg/models"
)

// ConfigurationManager loads and validates the .docsyncrc configuration.
type ConfigurationManager interface {
	LoadConfig() (*models.Config, error)
	ValidateConfig(cfg *models.Config) error
}

// viperConfigManager implements ConfigurationManager using Viper for
// reading the YAML configuration file.
type viperConfigManager struct {
	// basePath is the directory where .docsyncrc resides.
	basePath string
}

// NewConfigurationManager creates a ConfigurationManager that reads
// configuration relative to basePath.
func NewConfigurationManager(basePath string) ConfigurationManager {
	return &viperConfigManager{basePath: basePath}
}

// defaultAllowedTools is the workspace tool allow-list used when the
// config file does not set one. An explicit list, never "allow all": a
// different tool-providing backend must be able to state exactly which
// operations are permitted.
var defaultAllowedTools = []string{
	"mcp__notion__search",
	"mcp__notion__fetch",
	"mcp__notion__create-pages",
	"mcp__notion__update-page",
}

// defaultConfig returns a Config populated with sensible defaults.
func defaultConfig() *models.Config {
	return &models.Config{
		UpdateMode:      models.UpdateModeChangelogOnly,
		MCPConfigPath:   ".mcp.json",
		AllowedTools:    defaultAllowedTools,
		ExchangeTimeout: 5 * time.Minute,
		TreeFileLimit:   DefaultTreeFileLimit,
	}
}

// LoadConfig reads .docsyncrc from the base path. Missing keys fall back
// to defaults; the GitHub token only ever comes from the environment.
func (cm *viperConfigManager) LoadConfig() (*models.Config, error) {
	cfg := defaultConfig()

	v := viper.New()
	v.SetConfigName(".docsyncrc")
	v.SetConfigType("yaml")
	v.AddConfigPath(cm.basePath)

	v.SetDefault("update_mode", string(cfg.UpdateMode))
	v.SetDefault("mcp_config", cfg.MCPConfigPath)
	v.SetDefault("exchange_timeout", "5m")
	v.SetDefault("tree_file_limit", cfg.TreeFileLimit)

	// Secrets come from the environment, never from the file.
	_ = v.BindEnv("github_token", "DOCSYNC_GITHUB_TOKEN")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading .docsyncrc: %w", err)
		}
		// No config file found; environment bindings still apply.
	}

	cfg.RootPageID = normalizePageID(v.GetString("root_page_id"))
	cfg.UpdateMode = models.UpdateMode(v.GetString("update_mode"))
	cfg.Model = v.GetString("model")
	cfg.MCPConfigPath = v.GetString("mcp_config")
	cfg.Owner = v.GetString("owner")
	cfg.Repo = v.GetString("repo")
	cfg.GitHubToken = v.GetString("github_token")
	cfg.ExchangeTimeout = v.GetDuration("exchange_timeout")
	cfg.TreeFileLimit = v.GetInt("tree_file_limit")

	if v.IsSet("allowed_tools") {
		cfg.AllowedTools = v.GetStringSlice("allowed_tools")
	}

	return cfg, nil
}

// normalizePageID strips hyphens from a UUID-shaped page ID so the rest
// of the system only ever sees the dash-free canonical form. Values that
// are not UUID-shaped pass through unchanged and fail validation later.
func normalizePageID(raw string) string {
	if id, ok := ExtractPageID(strings.TrimSpace(raw)); ok {
		return id
	}
	return raw
}

// ValidateConfig checks the configuration and returns one error message
// listing every problem found.
func (cm *viperConfigManager) ValidateConfig(cfg *models.Config) error {
	if cfg == nil {
		return fmt.Errorf("configuration is nil")
	}

	var errs []string

	if cfg.RootPageID == "" {
		errs = append(errs, "root_page_id must be set")
	} else if _, ok := ExtractPageID(cfg.RootPageID); !ok {
		errs = append(errs, fmt.Sprintf("root_page_id %q is not a UUID-shaped page ID", cfg.RootPageID))
	}

	switch cfg.UpdateMode {
	case models.UpdateModeChangelogOnly, models.UpdateModeFull:
	default:
		errs = append(errs, fmt.Sprintf(
			"update_mode %q is invalid, must be one of: changelog-only, full", cfg.UpdateMode))
	}

	if cfg.Owner == "" {
		errs = append(errs, "owner must be set")
	}
	if cfg.Repo == "" {
		errs = append(errs, "repo must be set")
	}

	if cfg.ExchangeTimeout < 0 {
		errs = append(errs, fmt.Sprintf("exchange_timeout must be non-negative, got %s", cfg.ExchangeTimeout))
	}

	if cfg.TreeFileLimit < 0 {
		errs = append(errs, fmt.Sprintf("tree_file_limit must be non-negative, got %d", cfg.TreeFileLimit))
	}

	if len(cfg.AllowedTools) == 0 {
		errs = append(errs, "allowed_tools must name at least one workspace tool")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
