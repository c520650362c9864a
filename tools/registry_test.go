package tools_test

import (
	"errors"
	"testing"

	"github.com/andyzzhao/agent-demos/tools"
)

func TestBuiltins_ToolNames(t *testing.T) {
	reg := tools.Builtins()
	want := map[string]struct{}{
		"calculator":   {},
		"current_time": {},
	}
	defs := reg.Defs()
	if len(defs) != len(want) {
		t.Fatalf("unexpected number of tools: got %d want %d", len(defs), len(want))
	}
	for _, d := range defs {
		if _, ok := want[d.Name]; !ok {
			t.Errorf("unexpected tool in registry: %q", d.Name)
		}
	}
}

func TestRegistry_DuplicateRegistration(t *testing.T) {
	reg := tools.NewRegistry()
	def := tools.ToolDefinition{Name: "x", Function: func(tools.Args) (string, error) { return "", nil }}
	if err := reg.Register(def); err != nil {
		t.Fatalf("first register: %v", err)
	}
	err := reg.Register(def)
	if err == nil {
		t.Fatal("expected duplicate registration to fail")
	}
	var dup *tools.DuplicateToolError
	if !errors.As(err, &dup) || dup.Name != "x" {
		t.Errorf("expected DuplicateToolError for x, got %v", err)
	}
}

func TestRegistry_LookupAndOrder(t *testing.T) {
	reg := tools.NewRegistry()
	for _, name := range []string{"c", "a", "b"} {
		def := tools.ToolDefinition{Name: name, Function: func(tools.Args) (string, error) { return "", nil }}
		if err := reg.Register(def); err != nil {
			t.Fatalf("register %s: %v", name, err)
		}
	}
	if _, ok := reg.Lookup("a"); !ok {
		t.Error("lookup a failed")
	}
	if _, ok := reg.Lookup("missing"); ok {
		t.Error("lookup missing should fail")
	}
	// Defs preserves registration order, not lexical order.
	var got []string
	for _, d := range reg.Defs() {
		got = append(got, d.Name)
	}
	want := []string{"c", "a", "b"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order: got %v want %v", got, want)
		}
	}
}
