package tools

import (
	"strconv"
	"strings"

	"github.com/andyzzhao/agent-demos/internal/directive"
)

// Fallback records one swallowed coercion failure: the value stayed a raw
// string because the declared numeric parse did not succeed. Reported as a
// warning under strict mode, otherwise invisible.
type Fallback struct {
	Param string
	Raw   string
}

// stripQuotes removes a single matching pair of surrounding quote characters.
// One layer only; inner quotes stay.
func stripQuotes(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '"' || first == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// CoerceTyped converts a raw token per the declared parameter type. The
// second return is false when a numeric parse failed and the raw string was
// kept instead: coercion never fails a call.
func CoerceTyped(typ ParamType, raw string) (any, bool) {
	v := stripQuotes(raw)
	switch typ {
	case TypeFloat:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f, true
		}
		return v, false
	case TypeInt:
		if n, err := strconv.Atoi(v); err == nil {
			return n, true
		}
		return v, false
	case TypeBool:
		switch strings.ToLower(v) {
		case "true", "1", "yes":
			return true, true
		default:
			return false, true
		}
	default:
		return v, true
	}
}

// CoerceLoose converts a keyed-syntax token without consulting a signature:
// the literal booleans true/false (case-insensitive), then unambiguously
// numeric-looking values as numbers, else the string unchanged. This lighter
// path is deliberately distinct from the signature-typed one.
func CoerceLoose(raw string) any {
	v := stripQuotes(raw)
	switch strings.ToLower(v) {
	case "true":
		return true
	case "false":
		return false
	}
	if looksNumeric(v) {
		f, _ := strconv.ParseFloat(v, 64)
		return f
	}
	return v
}

// looksNumeric reports all digits plus at most one decimal point.
func looksNumeric(s string) bool {
	digits, dots := 0, 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.':
			dots++
		default:
			return false
		}
	}
	return digits > 0 && dots <= 1
}

// Bind produces the argument mapping for a parsed call.
//
// Positional values bind to the signature's parameter names in declared order
// with signature-typed coercion; extras beyond the parameter count are
// silently dropped. Keyed values take the loose coercion path and
// unrecognized keys are inserted unchanged, so even calls against unknown
// tools still yield a mapping.
func Bind(def ToolDefinition, call directive.Call) (Args, []Fallback) {
	args := make(Args)
	if call.IsKeyed {
		for _, kv := range call.Keyed {
			args[kv.Key] = CoerceLoose(kv.Value)
		}
		return args, nil
	}
	var fallbacks []Fallback
	for i, raw := range call.Positional {
		if i >= len(def.Params) {
			break
		}
		p := def.Params[i]
		v, ok := CoerceTyped(p.Type, raw)
		if !ok {
			fallbacks = append(fallbacks, Fallback{Param: p.Name, Raw: raw})
		}
		args[p.Name] = v
	}
	return args, fallbacks
}
