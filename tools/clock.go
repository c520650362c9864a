package tools

import "time"

var CurrentTimeDefinition = ToolDefinition{
	Name:        "current_time",
	Description: "Returns the current date and time.",
	Params: []Param{
		{Name: "format", Type: TypeString, Description: "Optional Go time layout (defaults to RFC 3339)"},
	},
	Example:  "current_time('2006-01-02') returns today's date",
	Function: CurrentTime,
}

// CurrentTime formats the wall clock with the requested layout.
func CurrentTime(args Args) (string, error) {
	layout, _ := args.String("format")
	if layout == "" {
		layout = time.RFC3339
	}
	return time.Now().Format(layout), nil
}
