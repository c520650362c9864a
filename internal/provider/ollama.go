package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/andyzzhao/agent-demos/internal/telemetry"
	"github.com/andyzzhao/agent-demos/memory"
	"github.com/andyzzhao/agent-demos/tools"
)

// Ollama adapts the Ollama chat API to the CompletionProvider boundary over
// plain HTTP.
type Ollama struct {
	Endpoint    string
	Model       string
	HTTPClient  *http.Client
	NativeTools bool
	Registry    *tools.Registry
}

// NewOllama returns an adapter for the chat endpoint rooted at endpoint,
// e.g. "http://localhost:11434/api".
func NewOllama(endpoint, model string) *Ollama {
	return &Ollama{Endpoint: endpoint, Model: model, HTTPClient: &http.Client{}}
}

type ollamaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaRequest struct {
	Model    string          `json:"model"`
	Messages []ollamaMessage `json:"messages"`
	Stream   bool            `json:"stream"`
	Tools    []any           `json:"tools,omitempty"`
}

type ollamaToolCall struct {
	Function struct {
		Name      string          `json:"name"`
		Arguments json.RawMessage `json:"arguments"`
	} `json:"function"`
}

type ollamaResponse struct {
	Message struct {
		Role      string           `json:"role"`
		Content   string           `json:"content"`
		ToolCalls []ollamaToolCall `json:"tool_calls,omitempty"`
	} `json:"message"`
}

func (p *Ollama) Complete(ctx context.Context, msgs []memory.Message) (Reply, error) {
	turnID, _ := telemetry.TurnIDFromContext(ctx)
	telemetry.Emit("completion_request", map[string]any{
		"backend":  "ollama",
		"model":    p.Model,
		"turn_id":  turnID,
		"messages": len(msgs),
	})

	req := ollamaRequest{Model: p.Model, Stream: false}
	for _, m := range msgs {
		req.Messages = append(req.Messages, ollamaMessage{
			Role:    string(m.Role),
			Content: m.Content,
		})
	}
	if p.NativeTools && p.Registry != nil {
		req.Tools = p.nativeTools()
	}

	data, err := json.Marshal(req)
	if err != nil {
		return Reply{}, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.Endpoint+"/chat", bytes.NewReader(data))
	if err != nil {
		return Reply{}, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.HTTPClient.Do(httpReq)
	if err != nil {
		return Reply{}, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return Reply{}, fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, body)
	}

	var or ollamaResponse
	if err := json.NewDecoder(resp.Body).Decode(&or); err != nil {
		return Reply{}, fmt.Errorf("decode response: %w", err)
	}

	reply := Reply{Content: or.Message.Content}
	for i, tc := range or.Message.ToolCalls {
		reply.ToolCalls = append(reply.ToolCalls,
			nativeCall(i, tc.Function.Name, string(tc.Function.Arguments)))
	}
	return reply, nil
}

func (p *Ollama) nativeTools() []any {
	defs := p.Registry.Defs()
	out := make([]any, 0, len(defs))
	for _, d := range defs {
		props, required := schemaObject(d)
		out = append(out, map[string]any{
			"type": "function",
			"function": map[string]any{
				"name":        d.Name,
				"description": d.Description,
				"parameters": map[string]any{
					"type":       "object",
					"properties": props,
					"required":   required,
				},
			},
		})
	}
	return out
}
