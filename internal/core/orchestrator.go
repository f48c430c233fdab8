package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/valter-silva-au/docsync/pkg/models"
)

// Run steps, used in events and failure messages.
const (
	stepSessionStart    = "session-start"
	stepFindOrCreate    = "find-or-create-page"
	stepExtractID       = "extract-page-id"
	stepAppendChangelog = "append-changelog"
	stepUpdateDoc       = "update-doc"
)

// teardownGrace bounds each teardown call so a half-closed session cannot
// block the run from exiting.
const teardownGrace = 10 * time.Second

// defaultExchangeTimeout bounds one agent request/response round trip
// when the configuration does not set one.
const defaultExchangeTimeout = 5 * time.Minute

// Orchestrator sequences one documentation-sync run against the agent:
// open a session, find or create the Changelog page, append the entry,
// and conditionally refresh the main documentation page.
type Orchestrator interface {
	// Sync runs the full sequence and returns the Changelog page ID
	// (32 hex characters). docCtx may be nil when no documentation
	// content was fetched.
	Sync(ctx context.Context, entry models.ChangelogEntry, docCtx *models.DocUpdateContext) (string, error)
}

// sessionOrchestrator implements Orchestrator with a single shared agent
// session per run. Each exchange is awaited fully before the next begins:
// page operations must be strictly ordered to avoid duplicate Changelog
// pages or interleaved writes.
type sessionOrchestrator struct {
	client     AgentClient
	rootPageID string
	updateMode models.UpdateMode
	sessionCfg models.SessionConfig
	timeout    time.Duration
	events     EventLogger
}

// NewOrchestrator creates an Orchestrator driving the given agent client.
// events may be nil to disable event recording.
func NewOrchestrator(client AgentClient, cfg models.Config, events EventLogger) Orchestrator {
	timeout := cfg.ExchangeTimeout
	if timeout <= 0 {
		timeout = defaultExchangeTimeout
	}
	return &sessionOrchestrator{
		client:     client,
		rootPageID: cfg.RootPageID,
		updateMode: cfg.UpdateMode,
		sessionCfg: models.SessionConfig{
			Model:         cfg.Model,
			MCPConfigPath: cfg.MCPConfigPath,
			AllowedTools:  cfg.AllowedTools,
		},
		timeout: timeout,
		events:  events,
	}
}

// Sync drives the run to completion. Teardown of the session and client
// happens on every exit path, with a bounded grace period each; teardown
// errors are logged and never escalated.
func (o *sessionOrchestrator) Sync(ctx context.Context, entry models.ChangelogEntry, docCtx *models.DocUpdateContext) (string, error) {
	if err := o.client.Start(ctx); err != nil {
		return "", fmt.Errorf("%s: starting agent client: %w", stepSessionStart, err)
	}
	defer o.stopClient()

	session, err := o.client.NewSession(ctx, o.sessionCfg)
	if err != nil {
		return "", fmt.Errorf("%s: opening agent session: %w", stepSessionStart, err)
	}
	defer o.destroySession(session)

	o.log("INFO", "run.started", "sync run started", map[string]any{"kind": string(entry.Kind), "title": entry.Title})

	resp, err := o.exchange(ctx, session, BuildFindOrCreatePrompt(o.rootPageID))
	if err != nil {
		return "", fmt.Errorf("%s: %w", stepFindOrCreate, err)
	}

	pageID, ok := ExtractPageID(resp)
	if !ok {
		// The one point where unstructured text must yield a structured
		// value; include the raw response for diagnosis.
		o.log("ERROR", "run.failed", "no page ID in agent response", map[string]any{"response": resp})
		return "", fmt.Errorf("%s: no page ID found in agent response: %q", stepExtractID, resp)
	}
	o.log("INFO", "page.resolved", "changelog page resolved", map[string]any{"page_id": pageID})

	appendResp, err := o.exchange(ctx, session, BuildChangelogPrompt(entry, pageID))
	if err != nil {
		return "", fmt.Errorf("%s: %w", stepAppendChangelog, err)
	}
	// Awaited for ordering, logged, but not parsed further.
	o.log("INFO", "changelog.appended", "changelog entry appended", map[string]any{"response": appendResp})

	if o.updateMode == models.UpdateModeFull && docCtx != nil && docCtx.HasReadme {
		if prompt, ok := BuildDocUpdatePrompt(*docCtx, o.rootPageID); ok {
			if _, err := o.exchange(ctx, session, prompt); err != nil {
				return "", fmt.Errorf("%s: %w", stepUpdateDoc, err)
			}
			o.log("INFO", "doc.updated", "documentation page refreshed", nil)
		}
	}

	o.log("INFO", "run.completed", "sync run completed", map[string]any{"page_id": pageID})
	return pageID, nil
}

// exchange sends one prompt and awaits the response under the configured
// timeout. A timed-out exchange yields a completed-but-empty response
// rather than an error: the run continues and downstream steps decide
// whether an empty response is fatal for them.
func (o *sessionOrchestrator) exchange(ctx context.Context, session AgentSession, prompt string) (string, error) {
	exchangeCtx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	text, err := session.Send(exchangeCtx, prompt)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			o.log("WARN", "exchange.timeout", "agent exchange timed out, treating as empty response", nil)
			return "", nil
		}
		return "", fmt.Errorf("agent exchange: %w", err)
	}
	return text, nil
}

func (o *sessionOrchestrator) destroySession(session AgentSession) {
	ctx, cancel := context.WithTimeout(context.Background(), teardownGrace)
	defer cancel()
	if err := session.Destroy(ctx); err != nil {
		o.log("DEBUG", "session.teardown_failed", "agent session teardown failed", map[string]any{"error": err.Error()})
	}
}

func (o *sessionOrchestrator) stopClient() {
	ctx, cancel := context.WithTimeout(context.Background(), teardownGrace)
	defer cancel()
	if err := o.client.Stop(ctx); err != nil {
		o.log("DEBUG", "client.teardown_failed", "agent client teardown failed", map[string]any{"error": err.Error()})
	}
}

func (o *sessionOrchestrator) log(level, eventType, msg string, data map[string]any) {
	if o.events == nil {
		return
	}
	o.events.LogEvent(level, eventType, msg, data)
}
