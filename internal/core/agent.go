package core

import (
	"context"

	"github.com/valter-silva-au/docsync/pkg/models"
)

// AgentSession is one tool-using agent conversation. Send blocks until a
// terminal response arrives and returns its text; tool side effects
// against the document workspace are opaque to callers. Sessions are not
// safe for concurrent use.
type AgentSession interface {
	Send(ctx context.Context, prompt string) (string, error)
	Destroy(ctx context.Context) error
}

// AgentClient creates agent sessions. Implemented by the claude CLI
// wrapper in internal/integration; tests substitute fakes.
type AgentClient interface {
	Start(ctx context.Context) error
	NewSession(ctx context.Context, cfg models.SessionConfig) (AgentSession, error)
	Stop(ctx context.Context) error
}

// EventLogger is the subset of the observability event log that core
// services need. Defining it here avoids importing the observability
// package.
type EventLogger interface {
	LogEvent(level, eventType, msg string, data map[string]any)
}
