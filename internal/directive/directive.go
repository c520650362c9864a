// Package directive extracts textual tool-call requests embedded in
// assistant replies.
//
// The grammar is a fixed convention the model is instructed to follow via the
// system message:
//
//	TOOL_CALL: <name>(<arglist>) TOOL_CALL_END
//
// The name is word characters only and case-sensitive; the arglist may span
// multiple lines. Arguments are split on top-level commas: a comma inside a
// single- or double-quoted span does not split. Quotes toggle state only;
// there is no escaping or nesting.
//
// Two arglist syntaxes are accepted: positional values, or name=value pairs.
// A directive is treated as keyed when its first top-level argument contains
// an unquoted '='; in a keyed list, parts without '=' are skipped.
package directive

import (
	"fmt"
	"regexp"
	"strings"
)

// callPattern matches one directive and captures the name and arglist.
var callPattern = regexp.MustCompile(`(?s)TOOL_CALL:\s*(\w+)\((.*?)\)\s*TOOL_CALL_END`)

// stripPattern matches the full span removed by Strip, delimiters included.
var stripPattern = regexp.MustCompile(`(?s)TOOL_CALL:.*?TOOL_CALL_END`)

// KeyValue is one keyed argument in source order.
type KeyValue struct {
	Key   string
	Value string
}

// Call is one parsed directive. Values are still raw tokens; typing happens
// at argument binding, not here.
type Call struct {
	ID         string
	Name       string
	Positional []string
	Keyed      []KeyValue
	IsKeyed    bool
}

// Parse extracts every directive from raw assistant text in order of
// appearance. IDs are "call_<i>" with i the 0-based index within this text.
// Zero matches means no tool calls this turn; it is not an error.
func Parse(text string) []Call {
	var calls []Call
	for _, m := range callPattern.FindAllStringSubmatch(text, -1) {
		call := Call{
			ID:   fmt.Sprintf("call_%d", len(calls)),
			Name: m[1],
		}
		parts := splitTopLevel(m[2])
		if len(parts) > 0 && hasUnquotedEquals(parts[0]) {
			call.IsKeyed = true
			for _, p := range parts {
				k, v, ok := cutUnquotedEquals(p)
				if !ok {
					continue
				}
				call.Keyed = append(call.Keyed, KeyValue{
					Key:   strings.TrimSpace(k),
					Value: strings.TrimSpace(v),
				})
			}
		} else {
			call.Positional = parts
		}
		calls = append(calls, call)
	}
	return calls
}

// Strip removes every directive span from text and trims surrounding
// whitespace. It is idempotent and leaves non-directive text untouched.
func Strip(text string) string {
	return strings.TrimSpace(stripPattern.ReplaceAllString(text, ""))
}

// splitTopLevel splits an arglist on commas outside quoted spans. A quote
// character always flips the in-quotes state; quotes cannot be escaped.
func splitTopLevel(arglist string) []string {
	if strings.TrimSpace(arglist) == "" {
		return nil
	}
	var parts []string
	var current strings.Builder
	inQuotes := false
	for _, r := range arglist {
		switch {
		case r == '"' || r == '\'':
			inQuotes = !inQuotes
			current.WriteRune(r)
		case r == ',' && !inQuotes:
			parts = append(parts, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		parts = append(parts, s)
	}
	return parts
}

// hasUnquotedEquals reports whether part contains '=' outside quoted spans.
func hasUnquotedEquals(part string) bool {
	inQuotes := false
	for _, r := range part {
		switch {
		case r == '"' || r == '\'':
			inQuotes = !inQuotes
		case r == '=' && !inQuotes:
			return true
		}
	}
	return false
}

// cutUnquotedEquals splits part at its first unquoted '='.
func cutUnquotedEquals(part string) (key, value string, ok bool) {
	inQuotes := false
	for i, r := range part {
		switch {
		case r == '"' || r == '\'':
			inQuotes = !inQuotes
		case r == '=' && !inQuotes:
			return part[:i], part[i+1:], true
		}
	}
	return "", "", false
}
