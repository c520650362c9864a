package memory

import "github.com/andyzzhao/agent-demos/internal/directive"

// Role tags a message's author.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// Message is one entry in the conversation log.
//
// ToolName and ToolCallID are set iff Role == RoleTool. ToolCalls is set only
// on assistant messages whose turn produced calls.
type Message struct {
	Role       Role
	Content    string
	ToolName   string
	ToolCallID string
	ToolCalls  []directive.Call
}

// History is the ordered, append-only message log for one session. It is
// exclusively owned by one orchestrator instance; concurrent sessions each
// carry their own History.
type History struct {
	msgs []Message
}

// NewHistory returns an empty log.
func NewHistory() *History { return &History{} }

// Append adds one message to the log.
func (h *History) Append(msg Message) {
	h.msgs = append(h.msgs, msg)
}

// AppendAll adds a batch of messages in order. Used to commit a whole turn's
// staged messages at once.
func (h *History) AppendAll(msgs []Message) {
	h.msgs = append(h.msgs, msgs...)
}

// Snapshot returns a copy of the log, oldest first. Callers may extend the
// returned slice without affecting the log.
func (h *History) Snapshot() []Message {
	out := make([]Message, len(h.msgs))
	copy(out, h.msgs)
	return out
}

// Len reports the number of appended messages.
func (h *History) Len() int { return len(h.msgs) }
