package provider

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/andyzzhao/agent-demos/internal/directive"
	"github.com/andyzzhao/agent-demos/internal/telemetry"
	"github.com/andyzzhao/agent-demos/memory"
	"github.com/andyzzhao/agent-demos/tools"
)

const DefaultAnthropicModel = anthropic.ModelClaude3_7SonnetLatest

// Anthropic adapts the Anthropic Messages API to the CompletionProvider
// boundary. With NativeTools set, registry definitions are advertised on
// each request and tool_use blocks come back as already-parsed calls.
type Anthropic struct {
	Client      *anthropic.Client
	Model       anthropic.Model
	MaxTokens   int64
	NativeTools bool
	Registry    *tools.Registry
}

// NewAnthropic returns an adapter using the API key from the env.
func NewAnthropic(model anthropic.Model) *Anthropic {
	c := anthropic.NewClient()
	return &Anthropic{Client: &c, Model: model, MaxTokens: 1024}
}

func (p *Anthropic) Complete(ctx context.Context, msgs []memory.Message) (Reply, error) {
	turnID, _ := telemetry.TurnIDFromContext(ctx)
	telemetry.Emit("completion_request", map[string]any{
		"backend":  "anthropic",
		"model":    string(p.Model),
		"turn_id":  turnID,
		"messages": len(msgs),
	})

	params := anthropic.MessageNewParams{
		Model:     p.Model,
		MaxTokens: p.MaxTokens,
	}

	// Consecutive tool messages collapse into one user message so their
	// tool_result blocks directly follow the assistant's tool_use blocks.
	var pendingResults []anthropic.ContentBlockParamUnion
	flushResults := func() {
		if len(pendingResults) > 0 {
			params.Messages = append(params.Messages, anthropic.NewUserMessage(pendingResults...))
			pendingResults = nil
		}
	}

	for i, m := range msgs {
		switch m.Role {
		case memory.RoleSystem:
			params.System = []anthropic.TextBlockParam{{Text: m.Content}}
		case memory.RoleUser:
			flushResults()
			params.Messages = append(params.Messages,
				anthropic.NewUserMessage(anthropic.NewTextBlock(m.Content)))
		case memory.RoleAssistant:
			flushResults()

			// The API requires every tool_result's tool_use_id to resolve
			// to a tool_use block in the preceding assistant message, and
			// every emitted tool_use to have a matching result. Call IDs
			// restart per message, so a call counts as resulted only when
			// its ID appears in the tool messages directly following this
			// one; calls with no result (skipped tools) get no tool_use.
			resulted := make(map[string]bool)
			for j := i + 1; j < len(msgs) && msgs[j].Role == memory.RoleTool; j++ {
				resulted[msgs[j].ToolCallID] = true
			}

			var blocks []anthropic.ContentBlockParamUnion
			// The API rejects empty text blocks; a stripped-to-empty
			// assistant message carries no information anyway.
			if m.Content != "" {
				blocks = append(blocks, anthropic.NewTextBlock(m.Content))
			}
			for _, call := range m.ToolCalls {
				if !resulted[call.ID] {
					continue
				}
				blocks = append(blocks, anthropic.ContentBlockParamUnion{
					OfToolUse: &anthropic.ToolUseBlockParam{
						ID:    call.ID,
						Name:  call.Name,
						Input: p.callInput(call),
					},
				})
			}
			if len(blocks) > 0 {
				params.Messages = append(params.Messages, anthropic.NewAssistantMessage(blocks...))
			}
		case memory.RoleTool:
			pendingResults = append(pendingResults,
				anthropic.NewToolResultBlock(m.ToolCallID, m.Content, false))
		}
	}
	flushResults()

	if p.NativeTools && p.Registry != nil {
		params.Tools = p.nativeTools()
	}

	msg, err := p.Client.Messages.New(ctx, params)
	if err != nil {
		return Reply{}, err
	}

	var reply Reply
	for _, block := range msg.Content {
		switch v := block.AsAny().(type) {
		case anthropic.TextBlock:
			if reply.Content != "" {
				reply.Content += "\n"
			}
			reply.Content += v.Text
		case anthropic.ToolUseBlock:
			reply.ToolCalls = append(reply.ToolCalls,
				nativeCall(len(reply.ToolCalls), v.Name, v.JSON.Input.Raw()))
		}
	}
	return reply, nil
}

// callInput rebuilds a call's arguments as the JSON input object its
// tool_use block carries. The registry's binding is used when the tool is
// known; otherwise keyed values take the loose coercion path and positional
// values keep their raw tokens under synthetic names.
func (p *Anthropic) callInput(call directive.Call) map[string]any {
	if p.Registry != nil {
		if def, ok := p.Registry.Lookup(call.Name); ok {
			args, _ := tools.Bind(def, call)
			return map[string]any(args)
		}
	}
	in := make(map[string]any)
	if call.IsKeyed {
		for _, kv := range call.Keyed {
			in[kv.Key] = tools.CoerceLoose(kv.Value)
		}
		return in
	}
	for i, v := range call.Positional {
		in[fmt.Sprintf("arg%d", i)] = v
	}
	return in
}

func (p *Anthropic) nativeTools() []anthropic.ToolUnionParam {
	defs := p.Registry.Defs()
	out := make([]anthropic.ToolUnionParam, 0, len(defs))
	for _, d := range defs {
		props, _ := schemaObject(d)
		out = append(out, anthropic.ToolUnionParam{OfTool: &anthropic.ToolParam{
			Name:        d.Name,
			Description: anthropic.String(d.Description),
			InputSchema: anthropic.ToolInputSchemaParam{Properties: props},
		}})
	}
	return out
}
