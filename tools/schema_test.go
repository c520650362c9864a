package tools_test

import (
	"testing"

	"github.com/andyzzhao/agent-demos/tools"
)

func TestSchema_TypesAndOrder(t *testing.T) {
	def := tools.ToolDefinition{
		Name: "probe",
		Params: []tools.Param{
			{Name: "f", Type: tools.TypeFloat, Description: "a float"},
			{Name: "i", Type: tools.TypeInt, Description: "an int"},
			{Name: "b", Type: tools.TypeBool, Description: "a bool"},
			{Name: "s", Type: tools.TypeString, Description: "a string"},
		},
	}
	schema := def.Schema()
	if schema.Type != "object" {
		t.Fatalf("schema type: got %q", schema.Type)
	}

	wantTypes := map[string]string{"f": "number", "i": "integer", "b": "boolean", "s": "string"}
	wantOrder := []string{"f", "i", "b", "s"}
	var gotOrder []string
	for pair := schema.Properties.Oldest(); pair != nil; pair = pair.Next() {
		gotOrder = append(gotOrder, pair.Key)
		if pair.Value.Type != wantTypes[pair.Key] {
			t.Errorf("property %s: got type %q want %q", pair.Key, pair.Value.Type, wantTypes[pair.Key])
		}
	}
	for i := range wantOrder {
		if gotOrder[i] != wantOrder[i] {
			t.Fatalf("property order: got %v want %v", gotOrder, wantOrder)
		}
	}
	if len(schema.Required) != 4 {
		t.Errorf("required: got %v", schema.Required)
	}
}
