package tools

import (
	"github.com/andyzzhao/agent-demos/internal/directive"
)

// ToolResult is the outcome of one executed call. Content is always a string
// payload, even for numeric or error outcomes: the boundary between the core
// and the model is text-only.
type ToolResult struct {
	ToolCallID string
	Name       string
	Content    string
}

// Execute dispatches one parsed call against the registry.
//
// Unknown tools are skipped: the last return is false and no result message
// is produced for the call. A non-nil error from the tool function is
// captured as "Error: ..." result content; tool failures are data shown to
// the model, never orchestrator-level faults.
func Execute(reg *Registry, call directive.Call) (ToolResult, []Fallback, bool) {
	def, ok := reg.Lookup(call.Name)
	if !ok {
		return ToolResult{}, nil, false
	}
	args, fallbacks := Bind(def, call)
	content, err := def.Function(args)
	if err != nil {
		content = "Error: " + err.Error()
	}
	return ToolResult{
		ToolCallID: call.ID,
		Name:       call.Name,
		Content:    content,
	}, fallbacks, true
}
