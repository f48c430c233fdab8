package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// WorkspaceServerConfig is one MCP server declaration from the agent's
// MCP config JSON.
type WorkspaceServerConfig struct {
	Type    string   `json:"type,omitempty"`
	Command string   `json:"command,omitempty"`
	Args    []string `json:"args,omitempty"`
	URL     string   `json:"url,omitempty"`
}

// WorkspaceCheckResult reports the preflight status of one workspace
// MCP server.
type WorkspaceCheckResult struct {
	Server         string        `json:"server"`
	Healthy        bool          `json:"healthy"`
	ResponseTime   time.Duration `json:"response_time_ms"`
	AvailableTools []string      `json:"available_tools,omitempty"`
	MissingTools   []string      `json:"missing_tools,omitempty"`
	Error          string        `json:"error,omitempty"`
	CheckedAt      time.Time     `json:"checked_at"`
}

// workspaceCacheEntry is a cached preflight result with expiry.
type workspaceCacheEntry struct {
	Results   []WorkspaceCheckResult `json:"results"`
	ExpiresAt time.Time              `json:"expires_at"`
}

// WorkspaceChecker validates that the document-workspace MCP servers the
// agent will be handed are reachable and expose the allow-listed tools.
type WorkspaceChecker interface {
	// Check connects to every stdio server in the MCP config, lists its
	// tools, and reports allow-list entries that name no real tool.
	Check(ctx context.Context, configPath string, allowedTools []string) ([]WorkspaceCheckResult, error)

	// LoadCache returns cached results, or nil when stale or missing.
	LoadCache(basePath string) []WorkspaceCheckResult

	// SaveCache stores results with a TTL.
	SaveCache(basePath string, results []WorkspaceCheckResult, ttl time.Duration) error
}

// mcpWorkspaceChecker implements WorkspaceChecker with the MCP SDK
// client over a stdio command transport.
type mcpWorkspaceChecker struct {
	version string
}

// NewWorkspaceChecker creates a WorkspaceChecker identifying itself with
// the given docsync version.
func NewWorkspaceChecker(version string) WorkspaceChecker {
	if version == "" {
		version = "dev"
	}
	return &mcpWorkspaceChecker{version: version}
}

func (c *mcpWorkspaceChecker) Check(ctx context.Context, configPath string, allowedTools []string) ([]WorkspaceCheckResult, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("reading MCP config %s: %w", configPath, err)
	}

	var config struct {
		MCPServers map[string]WorkspaceServerConfig `json:"mcpServers"`
	}
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing MCP config: %w", err)
	}
	if len(config.MCPServers) == 0 {
		return nil, fmt.Errorf("MCP config %s declares no servers", configPath)
	}

	var results []WorkspaceCheckResult
	for name, server := range config.MCPServers {
		result := WorkspaceCheckResult{
			Server:    name,
			CheckedAt: time.Now().UTC(),
		}
		start := time.Now()

		switch {
		case server.Command != "":
			tools, err := c.listTools(ctx, server)
			if err != nil {
				result.Error = err.Error()
			} else {
				result.Healthy = true
				result.AvailableTools = tools
				result.MissingTools = missingTools(name, allowedTools, tools)
			}
		case server.URL != "":
			result.Error = "remote MCP servers are validated by the agent at session start, not by preflight"
		default:
			result.Error = "server declares neither command nor url"
		}

		result.ResponseTime = time.Since(start)
		results = append(results, result)
	}

	return results, nil
}

// listTools connects to a stdio MCP server and returns its tool names.
func (c *mcpWorkspaceChecker) listTools(ctx context.Context, server WorkspaceServerConfig) ([]string, error) {
	client := gomcp.NewClient(&gomcp.Implementation{Name: "docsync", Version: c.version}, nil)

	cmd := exec.CommandContext(ctx, server.Command, server.Args...)
	session, err := client.Connect(ctx, &gomcp.CommandTransport{Command: cmd}, nil)
	if err != nil {
		return nil, fmt.Errorf("connecting to MCP server: %w", err)
	}
	defer func() { _ = session.Close() }()

	res, err := session.ListTools(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("listing tools: %w", err)
	}

	names := make([]string, 0, len(res.Tools))
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
	}
	return names, nil
}

// missingTools returns the allow-list entries addressed to serverName
// that match none of the server's tools. Allow-list entries use the
// agent convention "mcp__<server>__<tool>"; plain tool names are
// compared directly.
func missingTools(serverName string, allowed, available []string) []string {
	have := make(map[string]bool, len(available))
	for _, t := range available {
		have[t] = true
	}

	var missing []string
	prefix := "mcp__" + serverName + "__"
	for _, entry := range allowed {
		name := entry
		if strings.HasPrefix(entry, "mcp__") {
			if !strings.HasPrefix(entry, prefix) {
				continue // addressed to a different server
			}
			name = strings.TrimPrefix(entry, prefix)
		}
		if !have[name] {
			missing = append(missing, entry)
		}
	}
	return missing
}

func (c *mcpWorkspaceChecker) LoadCache(basePath string) []WorkspaceCheckResult {
	data, err := os.ReadFile(filepath.Join(basePath, ".docsync_mcp_cache.json"))
	if err != nil {
		return nil
	}

	var entry workspaceCacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil
	}
	if time.Now().After(entry.ExpiresAt) {
		return nil
	}
	return entry.Results
}

func (c *mcpWorkspaceChecker) SaveCache(basePath string, results []WorkspaceCheckResult, ttl time.Duration) error {
	entry := workspaceCacheEntry{
		Results:   results,
		ExpiresAt: time.Now().Add(ttl),
	}
	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling MCP cache: %w", err)
	}
	return os.WriteFile(filepath.Join(basePath, ".docsync_mcp_cache.json"), data, 0o644)
}
