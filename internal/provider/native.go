package provider

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/andyzzhao/agent-demos/internal/directive"
	"github.com/andyzzhao/agent-demos/tools"
)

// nativeCall converts a structured tool call's JSON argument object into the
// parser's keyed call shape. Values become raw tokens again and take the
// loose coercion path at binding, exactly like keyed directive text.
func nativeCall(index int, name, inputJSON string) directive.Call {
	call := directive.Call{
		ID:      fmt.Sprintf("call_%d", index),
		Name:    name,
		IsKeyed: true,
	}
	gjson.Parse(inputJSON).ForEach(func(key, value gjson.Result) bool {
		call.Keyed = append(call.Keyed, directive.KeyValue{
			Key:   key.String(),
			Value: value.String(),
		})
		return true
	})
	return call
}

// schemaObject flattens a definition's JSON Schema into the plain property
// map and required list the wire formats want.
func schemaObject(d tools.ToolDefinition) (map[string]any, []string) {
	schema := d.Schema()
	props := make(map[string]any, len(d.Params))
	for pair := schema.Properties.Oldest(); pair != nil; pair = pair.Next() {
		props[pair.Key] = map[string]any{
			"type":        pair.Value.Type,
			"description": pair.Value.Description,
		}
	}
	return props, schema.Required
}
