package tools

import "fmt"

// DuplicateToolError reports a second registration under an existing name.
type DuplicateToolError struct {
	Name string
}

func (e *DuplicateToolError) Error() string {
	return fmt.Sprintf("tool %q already registered", e.Name)
}

// Registry maps tool names to definitions, preserving registration order so
// catalogue rendering is deterministic. It is populated once at process start
// and read-only for the life of a session.
type Registry struct {
	order []string
	defs  map[string]ToolDefinition
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]ToolDefinition)}
}

// Register adds a definition. Registering a name twice fails with
// DuplicateToolError.
func (r *Registry) Register(def ToolDefinition) error {
	if _, ok := r.defs[def.Name]; ok {
		return &DuplicateToolError{Name: def.Name}
	}
	r.defs[def.Name] = def
	r.order = append(r.order, def.Name)
	return nil
}

// Lookup returns the definition registered under name.
func (r *Registry) Lookup(name string) (ToolDefinition, bool) {
	def, ok := r.defs[name]
	return def, ok
}

// Defs returns all definitions in registration order.
func (r *Registry) Defs() []ToolDefinition {
	out := make([]ToolDefinition, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.defs[name])
	}
	return out
}

// Len reports the number of registered tools.
func (r *Registry) Len() int { return len(r.order) }

// Builtins returns a registry preloaded with the stock tool definitions.
func Builtins() *Registry {
	r := NewRegistry()
	for _, def := range []ToolDefinition{CalculatorDefinition, CurrentTimeDefinition} {
		if err := r.Register(def); err != nil {
			panic(err) // stock definitions are known-unique
		}
	}
	return r
}
