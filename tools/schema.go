package tools

import (
	"github.com/invopop/jsonschema"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Schema renders the definition's typed parameters as a JSON Schema object
// for providers that accept structured tool definitions. Property order
// matches the declared parameter order.
func (d ToolDefinition) Schema() *jsonschema.Schema {
	props := orderedmap.New[string, *jsonschema.Schema]()
	required := make([]string, 0, len(d.Params))
	for _, p := range d.Params {
		props.Set(p.Name, &jsonschema.Schema{
			Type:        jsonSchemaType(p.Type),
			Description: p.Description,
		})
		required = append(required, p.Name)
	}
	return &jsonschema.Schema{
		Type:       "object",
		Properties: props,
		Required:   required,
	}
}

func jsonSchemaType(t ParamType) string {
	switch t {
	case TypeFloat:
		return "number"
	case TypeInt:
		return "integer"
	case TypeBool:
		return "boolean"
	default:
		return "string"
	}
}
