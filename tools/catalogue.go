package tools

import (
	"fmt"
	"strings"
)

// Catalogue renders the tool listing injected into the system message. The
// layout is fixed and deterministic: the model is prompted with exactly this
// text, so ordering follows registration order and nothing is sorted.
func (r *Registry) Catalogue() string {
	var b strings.Builder
	b.WriteString("You have access to the following tools:\n\n")
	for _, def := range r.Defs() {
		fmt.Fprintf(&b, "- %s: %s\n", def.Name, def.Description)
		b.WriteString("  Parameters:\n")
		for _, p := range def.Params {
			fmt.Fprintf(&b, "    - %s: %s\n", p.Name, p.Description)
		}
		fmt.Fprintf(&b, "  Example: %s\n\n", def.Example)
	}
	b.WriteString("To use a tool, format your response as follows:\n")
	b.WriteString("TOOL_CALL: <tool_name>(<param1>, <param2>, ...)\n")
	b.WriteString("TOOL_CALL_END\n\n")
	b.WriteString("After the tool is called, you will receive the result and should continue your response.\n")
	return b.String()
}
