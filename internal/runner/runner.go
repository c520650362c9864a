package runner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/andyzzhao/agent-demos/internal/directive"
	"github.com/andyzzhao/agent-demos/internal/provider"
	"github.com/andyzzhao/agent-demos/internal/telemetry"
	"github.com/andyzzhao/agent-demos/memory"
	"github.com/andyzzhao/agent-demos/tools"
)

// ErrConversationEnded signals the normal terminal outcome of a session: the
// termination marker appeared in the user text, or the turn limit was
// reached. It is a sentinel, not a fault; no provider call was made and no
// history was appended.
var ErrConversationEnded = errors.New("conversation ended")

// Options configures a session.
type Options struct {
	SystemMessage     string
	MaxTurns          int    // 0 means unlimited
	TerminationMarker string // empty disables marker detection
	Strict            bool   // surface swallowed anomalies as warnings
}

// Session owns one conversation: its history, turn counter and termination
// state.
type Session struct {
	id       string
	provider provider.CompletionProvider
	registry *tools.Registry
	history  *memory.History
	opts     Options

	turnCount  int
	terminated bool
}

// New constructs a session and appends the composed system message as the
// first history entry: the caller's base instruction followed by the
// generated tool catalogue.
func New(p provider.CompletionProvider, reg *tools.Registry, opts Options) *Session {
	s := &Session{
		id:       uuid.NewString(),
		provider: p,
		registry: reg,
		history:  memory.NewHistory(),
		opts:     opts,
	}
	s.history.Append(memory.Message{
		Role:    memory.RoleSystem,
		Content: opts.SystemMessage + "\n\n" + reg.Catalogue(),
	})
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// History returns the session's conversation log.
func (s *Session) History() *memory.History { return s.history }

// TurnCount reports counted (non-terminal) turns so far.
func (s *Session) TurnCount() int { return s.turnCount }

// HandleMessage runs one user turn and returns the final answer, or
// ErrConversationEnded when the session is over. At most two completion
// requests are issued: one to get the assistant reply, and one more only if
// that reply asked for tools.
func (s *Session) HandleMessage(ctx context.Context, userInput string) (string, error) {
	if s.ended(userInput) {
		s.terminated = true
		return "", ErrConversationEnded
	}
	s.turnCount++

	turnID := fmt.Sprintf("turn-%d", s.turnCount)
	ctx = telemetry.WithTurnID(ctx, turnID)
	telemetry.Emit("turn_started", map[string]any{
		"session_id": s.id,
		"turn_id":    turnID,
		"turn_count": s.turnCount,
	})

	// Stage every append for this turn; commit only on completion so a
	// failed or cancelled turn leaves the log exactly as it was.
	staged := []memory.Message{{Role: memory.RoleUser, Content: userInput}}

	reply, err := s.provider.Complete(ctx, s.withStaged(staged))
	if err != nil {
		return "", err
	}

	// Natively-structured calls arrive already parsed; otherwise run the
	// textual grammar over the reply content.
	calls := reply.ToolCalls
	if len(calls) == 0 {
		calls = directive.Parse(reply.Content)
	}
	clean := directive.Strip(reply.Content)

	telemetry.Emit("directives_parsed", map[string]any{
		"session_id": s.id,
		"turn_id":    turnID,
		"calls":      len(calls),
	})

	staged = append(staged, memory.Message{
		Role:      memory.RoleAssistant,
		Content:   clean,
		ToolCalls: calls,
	})

	if len(calls) == 0 {
		s.history.AppendAll(staged)
		telemetry.Emit("turn_completed", map[string]any{
			"session_id": s.id,
			"turn_id":    turnID,
			"tool_calls": 0,
		})
		return clean, nil
	}

	for _, call := range calls {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		res, fallbacks, found := tools.Execute(s.registry, call)
		if !found {
			// Unknown tools are skipped: no result message, and the turn
			// proceeds as though the call never occurred.
			telemetry.Emit("tool_skipped", map[string]any{
				"session_id":   s.id,
				"turn_id":      turnID,
				"tool_name":    call.Name,
				"tool_call_id": call.ID,
			})
			if s.opts.Strict {
				fmt.Fprintf(os.Stderr, "warning: unknown tool %q skipped\n", call.Name)
			}
			continue
		}
		for _, fb := range fallbacks {
			telemetry.Emit("coercion_fallback", map[string]any{
				"session_id": s.id,
				"turn_id":    turnID,
				"tool_name":  call.Name,
				"param":      fb.Param,
			})
			if s.opts.Strict {
				fmt.Fprintf(os.Stderr, "warning: %s: argument %q kept as raw string %q\n",
					call.Name, fb.Param, fb.Raw)
			}
		}
		telemetry.Emit("tool_exec", map[string]any{
			"session_id":   s.id,
			"turn_id":      turnID,
			"tool_name":    res.Name,
			"tool_call_id": res.ToolCallID,
			"output_size":  len(res.Content),
		})
		staged = append(staged, memory.Message{
			Role:       memory.RoleTool,
			Content:    res.Content,
			ToolName:   res.Name,
			ToolCallID: res.ToolCallID,
		})
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	final, err := s.provider.Complete(ctx, s.withStaged(staged))
	if err != nil {
		return "", err
	}

	// The follow-up reply is final for this turn even if it contains
	// directive-looking text: two requests per turn is the contract.
	staged = append(staged, memory.Message{Role: memory.RoleAssistant, Content: final.Content})
	s.history.AppendAll(staged)
	telemetry.Emit("turn_completed", map[string]any{
		"session_id": s.id,
		"turn_id":    turnID,
		"tool_calls": len(calls),
	})
	return final.Content, nil
}

// Chat wraps HandleMessage, translating the terminal sentinel into a fixed
// farewell string.
func (s *Session) Chat(ctx context.Context, userInput string) (string, error) {
	reply, err := s.HandleMessage(ctx, userInput)
	if errors.Is(err, ErrConversationEnded) {
		return "Conversation terminated.", nil
	}
	return reply, err
}

// ended reports whether this turn must return the terminal sentinel before
// any provider call or history append.
func (s *Session) ended(userInput string) bool {
	if s.terminated {
		return true
	}
	if marker := s.opts.TerminationMarker; marker != "" && strings.Contains(userInput, marker) {
		return true
	}
	if s.opts.MaxTurns > 0 && s.turnCount >= s.opts.MaxTurns {
		return true
	}
	return false
}

// withStaged returns the committed history plus this turn's staged messages,
// oldest first. The snapshot is a copy, so extending it never aliases the log.
func (s *Session) withStaged(staged []memory.Message) []memory.Message {
	return append(s.history.Snapshot(), staged...)
}
