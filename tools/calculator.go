package tools

import "strconv"

var CalculatorDefinition = ToolDefinition{
	Name:        "calculator",
	Description: "Performs basic arithmetic operations on two numbers.",
	Params: []Param{
		{Name: "a", Type: TypeFloat, Description: "The first number (float)"},
		{Name: "b", Type: TypeFloat, Description: "The second number (float)"},
		{Name: "operator", Type: TypeString, Description: "The arithmetic operator (+, -, *, /)"},
	},
	Example:  "calculator(5, 3, '+') returns '8'",
	Function: Calculator,
}

// Calculator applies operator to a and b. Problems with the inputs or the
// arithmetic are returned as error strings in the result content, never as
// Go errors.
func Calculator(args Args) (string, error) {
	a, okA := args.Float("a")
	b, okB := args.Float("b")
	if !okA || !okB {
		return "Error: a and b must be numbers", nil
	}
	operator, _ := args.String("operator")
	switch operator {
	case "+":
		return formatNumber(a + b), nil
	case "-":
		return formatNumber(a - b), nil
	case "*":
		return formatNumber(a * b), nil
	case "/":
		if b == 0 {
			return "Error: Division by zero", nil
		}
		return formatNumber(a / b), nil
	default:
		return "Error: Invalid operator. Please use +, -, *, or /", nil
	}
}

// formatNumber renders with the minimal digits that round-trip.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
