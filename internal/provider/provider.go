// Package provider adapts external completion services to the single
// normalized boundary the orchestrator consumes.
//
// Invariant: the core never branches on a backend's response shape. Backends
// that emit structured tool calls natively have them normalized here into the
// same parsed form the textual directive grammar produces.
package provider

import (
	"context"

	"github.com/andyzzhao/agent-demos/internal/directive"
	"github.com/andyzzhao/agent-demos/memory"
)

// Reply is the normalized outcome of one completion request. When ToolCalls
// is non-empty the backend produced structured calls natively and the
// orchestrator skips the textual grammar for this reply.
type Reply struct {
	Content   string
	ToolCalls []directive.Call
}

// CompletionProvider is the external collaborator that produces the next
// assistant reply from the full conversation history. Retries and timeouts
// are the collaborator's concern; its failures propagate unmodified to the
// orchestrator's caller.
type CompletionProvider interface {
	Complete(ctx context.Context, msgs []memory.Message) (Reply, error)
}
