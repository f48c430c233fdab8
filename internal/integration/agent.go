package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"github.com/valter-silva-au/docsync/internal/core"
	"github.com/valter-silva-au/docsync/pkg/models"
)

// agentResult is the JSON envelope the claude CLI prints in headless mode.
type agentResult struct {
	Result    string `json:"result"`
	SessionID string `json:"session_id"`
	IsError   bool   `json:"is_error"`
}

// claudeClient implements core.AgentClient by spawning the claude CLI in
// headless JSON mode, one process per exchange. The logical session spans
// the run: the first exchange establishes a session ID and every later
// exchange resumes it, so the agent keeps its conversation state while no
// process outlives an exchange.
type claudeClient struct {
	binary string
}

// claudeSession is one resumable claude conversation. Not safe for
// concurrent use.
type claudeSession struct {
	client    *claudeClient
	cfg       models.SessionConfig
	sessionID string
}

// NewClaudeClient creates an AgentClient around the given claude binary.
// An empty binary name defaults to "claude" on PATH.
func NewClaudeClient(binary string) core.AgentClient {
	if binary == "" {
		binary = "claude"
	}
	return &claudeClient{binary: binary}
}

// Start verifies the claude binary is available. A missing binary is
// fatal: nothing later in the run can succeed without it.
func (c *claudeClient) Start(_ context.Context) error {
	if _, err := lookPath(c.binary); err != nil {
		return fmt.Errorf("agent binary %q not found: %w", c.binary, err)
	}
	return nil
}

// NewSession opens a fresh logical session. The session ID is assigned by
// the agent on the first exchange.
func (c *claudeClient) NewSession(_ context.Context, cfg models.SessionConfig) (core.AgentSession, error) {
	return &claudeSession{client: c, cfg: cfg}, nil
}

// Stop releases the client. The subprocess model holds no long-lived
// process, so there is nothing to terminate.
func (c *claudeClient) Stop(_ context.Context) error {
	return nil
}

// args builds the CLI invocation for one exchange. The tool allow-list is
// always passed explicitly.
func (s *claudeSession) args() []string {
	args := []string{"-p", "--output-format", "json"}
	if s.cfg.Model != "" {
		args = append(args, "--model", s.cfg.Model)
	}
	if s.cfg.MCPConfigPath != "" {
		args = append(args, "--mcp-config", s.cfg.MCPConfigPath)
	}
	if len(s.cfg.AllowedTools) > 0 {
		args = append(args, "--allowedTools", strings.Join(s.cfg.AllowedTools, ","))
	}
	if s.sessionID != "" {
		args = append(args, "--resume", s.sessionID)
	}
	return args
}

// Send runs one exchange: prompt on stdin, JSON envelope on stdout. The
// context bounds the subprocess; on cancellation the process is killed
// and the context error is returned.
func (s *claudeSession) Send(ctx context.Context, prompt string) (string, error) {
	cmd := exec.CommandContext(ctx, s.client.binary, s.args()...)
	cmd.Stdin = strings.NewReader(prompt)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := runCommand(cmd); err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("running agent: %w (stderr: %s)", err, strings.TrimSpace(stderr.String()))
	}

	var result agentResult
	if err := json.Unmarshal(stdout.Bytes(), &result); err != nil {
		return "", fmt.Errorf("parsing agent output: %w", err)
	}
	if result.SessionID != "" {
		s.sessionID = result.SessionID
	}
	if result.IsError {
		return "", fmt.Errorf("agent reported an error: %s", result.Result)
	}
	return result.Result, nil
}

// Destroy ends the logical session. The agent keeps no server-side
// resources beyond the resumable transcript, so clearing the session ID
// is sufficient.
func (s *claudeSession) Destroy(_ context.Context) error {
	s.sessionID = ""
	return nil
}

// Wrapped for testability.
var (
	lookPath   = exec.LookPath
	runCommand = func(cmd *exec.Cmd) error { return cmd.Run() }
)
