package provider_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andyzzhao/agent-demos/internal/provider"
	"github.com/andyzzhao/agent-demos/internal/telemetry"
	"github.com/andyzzhao/agent-demos/memory"
	"github.com/andyzzhao/agent-demos/tools"
)

func TestOllama_SendsFullHistoryAndReadsContent(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{"message":{"role":"assistant","content":"hello back"}}`))
	}))
	defer srv.Close()

	p := provider.NewOllama(srv.URL+"/api", "llama3")
	msgs := []memory.Message{
		{Role: memory.RoleSystem, Content: "sys"},
		{Role: memory.RoleUser, Content: "hello"},
		{Role: memory.RoleTool, Content: "8", ToolName: "calculator", ToolCallID: "call_0"},
	}
	reply, err := p.Complete(context.Background(), msgs)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if reply.Content != "hello back" {
		t.Errorf("content: got %q", reply.Content)
	}
	if gotPath != "/api/chat" {
		t.Errorf("path: got %q", gotPath)
	}
	wire, _ := gotBody["messages"].([]any)
	if len(wire) != 3 {
		t.Fatalf("expected 3 wire messages, got %d", len(wire))
	}
	first, _ := wire[0].(map[string]any)
	if first["role"] != "system" || first["content"] != "sys" {
		t.Errorf("first wire message: %v", first)
	}
	if gotBody["stream"] != false {
		t.Errorf("stream must be disabled, got %v", gotBody["stream"])
	}
}

func TestOllama_NormalizesNativeToolCalls(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"message": {
				"role": "assistant",
				"content": "",
				"tool_calls": [
					{"function": {"name": "calculator", "arguments": {"a": 453234.123, "b": 459323.432, "operator": "*"}}}
				]
			}
		}`))
	}))
	defer srv.Close()

	p := provider.NewOllama(srv.URL+"/api", "llama3")
	reply, err := p.Complete(context.Background(), []memory.Message{{Role: memory.RoleUser, Content: "multiply"}})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(reply.ToolCalls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(reply.ToolCalls))
	}
	call := reply.ToolCalls[0]
	if call.Name != "calculator" || !call.IsKeyed || call.ID != "call_0" {
		t.Errorf("call shape: %+v", call)
	}
	args, _ := tools.Bind(tools.CalculatorDefinition, call)
	if args["a"] != 453234.123 || args["operator"] != "*" {
		t.Errorf("bound args: %v", args)
	}
}

func TestOllama_AdvertisesNativeTools(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{"message":{"role":"assistant","content":"ok"}}`))
	}))
	defer srv.Close()

	p := provider.NewOllama(srv.URL+"/api", "llama3")
	p.NativeTools = true
	p.Registry = tools.Builtins()
	if _, err := p.Complete(context.Background(), []memory.Message{{Role: memory.RoleUser, Content: "hi"}}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	wireTools, _ := gotBody["tools"].([]any)
	if len(wireTools) != 2 {
		t.Fatalf("expected 2 advertised tools, got %d", len(wireTools))
	}
	first, _ := wireTools[0].(map[string]any)
	fn, _ := first["function"].(map[string]any)
	if fn["name"] != "calculator" {
		t.Errorf("first tool: %v", fn)
	}
}

func TestOllama_BadStatusIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer srv.Close()

	p := provider.NewOllama(srv.URL+"/api", "nope")
	if _, err := p.Complete(context.Background(), []memory.Message{{Role: memory.RoleUser, Content: "hi"}}); err == nil {
		t.Fatal("expected error for non-200 status")
	}
}

func TestOllama_CompletionRequestEventCarriesTurnID(t *testing.T) {
	t.Setenv("AGENT_OBSERVE_JSON", "1")
	dir := t.TempDir()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"message":{"role":"assistant","content":"hi"}}`))
	}))
	defer srv.Close()

	p := provider.NewOllama(srv.URL+"/api", "llama3")
	ctx := telemetry.WithTurnID(context.Background(), "turn-7")
	if _, err := p.Complete(ctx, []memory.Message{{Role: memory.RoleUser, Content: "hello"}}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(".agent", "events.jsonl"))
	if err != nil {
		t.Fatalf("read events: %v", err)
	}
	var found bool
	for _, line := range strings.Split(string(b), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		var m map[string]any
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("invalid JSON line %q: %v", line, err)
		}
		if m["event"] == "completion_request" {
			found = true
			if m["turn_id"] != "turn-7" || m["backend"] != "ollama" {
				t.Errorf("event fields: %v", m)
			}
		}
	}
	if !found {
		t.Error("no completion_request event emitted")
	}
}
