package tools

// ParamType enumerates the scalar types a tool parameter may declare.
type ParamType string

const (
	TypeFloat  ParamType = "float"
	TypeInt    ParamType = "int"
	TypeBool   ParamType = "bool"
	TypeString ParamType = "string"
)

// Param describes one declared tool parameter.
type Param struct {
	Name        string
	Type        ParamType
	Description string
}

// Args is the coerced argument mapping handed to a tool function.
type Args map[string]any

// Float returns the named argument when it carries a float64.
func (a Args) Float(name string) (float64, bool) {
	v, ok := a[name].(float64)
	return v, ok
}

// Int returns the named argument when it carries an int.
func (a Args) Int(name string) (int, bool) {
	v, ok := a[name].(int)
	return v, ok
}

// Bool returns the named argument when it carries a bool.
func (a Args) Bool(name string) (bool, bool) {
	v, ok := a[name].(bool)
	return v, ok
}

// String returns the named argument when it carries a string.
func (a Args) String(name string) (string, bool) {
	v, ok := a[name].(string)
	return v, ok
}

// ToolDefinition describes a registered tool: its typed signature, the
// catalogue text shown to the model, and the function dispatched on a
// matching call. The signature is static data registered alongside the
// callable; nothing is introspected at runtime.
type ToolDefinition struct {
	Name        string
	Description string
	Params      []Param
	Example     string
	Function    func(Args) (string, error)
}
