package tools

import (
	"context"
	"testing"

	"github.com/calcforge/calc-repl/internal/calculation"
	"github.com/calcforge/calc-repl/internal/repl"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
)

// newCallToolRequest builds a request with the given arguments
func newCallToolRequest(arguments map[string]interface{}) mcp.CallToolRequest {
	request := mcp.CallToolRequest{}
	request.Params.Arguments = arguments
	return request
}

// resultText extracts the text payload from a tool result
func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()

	if assert.NotEmpty(t, result.Content) {
		textContent, ok := result.Content[0].(mcp.TextContent)
		if assert.True(t, ok, "expected text content") {
			return textContent.Text
		}
	}
	return ""
}

func TestCalculateTool_Handle(t *testing.T) {
	tests := []struct {
		name      string
		arguments map[string]interface{}
		expected  string
	}{
		{
			name: "Addition",
			arguments: map[string]interface{}{
				"operation": "add",
				"a":         float64(10),
				"b":         float64(5),
			},
			expected: "AddCalculation: 10.0 Add 5.0 = 15.0",
		},
		{
			name: "Division",
			arguments: map[string]interface{}{
				"operation": "divide",
				"a":         float64(20),
				"b":         float64(4),
			},
			expected: "DivideCalculation: 20.0 Divide 4.0 = 5.0",
		},
		{
			name: "Power",
			arguments: map[string]interface{}{
				"operation": "power",
				"a":         float64(2),
				"b":         float64(3),
			},
			expected: "PowerCalculation: 2.0 Power 3.0 = 8.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tool := NewCalculateTool(calculation.NewDefaultFactory(), repl.NewHistory())

			result, err := tool.Handle(context.Background(), newCallToolRequest(tt.arguments))

			assert.NoError(t, err)
			assert.False(t, result.IsError)
			assert.Equal(t, tt.expected, resultText(t, result))
		})
	}
}

func TestCalculateTool_Handle_RecordsHistory(t *testing.T) {
	history := repl.NewHistory()
	tool := NewCalculateTool(calculation.NewDefaultFactory(), history)

	_, err := tool.Handle(context.Background(), newCallToolRequest(map[string]interface{}{
		"operation": "add",
		"a":         float64(10),
		"b":         float64(5),
	}))

	assert.NoError(t, err)
	assert.Equal(t, []string{"AddCalculation: 10.0 Add 5.0 = 15.0"}, history.Entries())
}

func TestCalculateTool_Handle_Errors(t *testing.T) {
	tests := []struct {
		name      string
		arguments map[string]interface{}
		expected  string
	}{
		{
			name: "Missing operation",
			arguments: map[string]interface{}{
				"a": float64(10),
				"b": float64(5),
			},
			expected: "operation parameter is required",
		},
		{
			name: "Unsupported operation",
			arguments: map[string]interface{}{
				"operation": "modulus",
				"a":         float64(1),
				"b":         float64(1),
			},
			expected: "Unsupported calculation type: 'modulus'.",
		},
		{
			name: "Division by zero",
			arguments: map[string]interface{}{
				"operation": "divide",
				"a":         float64(10),
				"b":         float64(0),
			},
			expected: "Cannot divide by zero.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			history := repl.NewHistory()
			tool := NewCalculateTool(calculation.NewDefaultFactory(), history)

			result, err := tool.Handle(context.Background(), newCallToolRequest(tt.arguments))

			assert.NoError(t, err)
			assert.True(t, result.IsError)
			assert.Contains(t, resultText(t, result), tt.expected)
			assert.Equal(t, 0, history.Len())
		})
	}
}

func TestListOperationsTool_Handle(t *testing.T) {
	tool := NewListOperationsTool(calculation.NewDefaultFactory())

	result, err := tool.Handle(context.Background(), newCallToolRequest(nil))

	assert.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Equal(t, "Supported operations: add, divide, multiply, power, subtract", resultText(t, result))
}

func TestHistoryTool_Handle_Empty(t *testing.T) {
	tool := NewHistoryTool(repl.NewHistory())

	result, err := tool.Handle(context.Background(), newCallToolRequest(nil))

	assert.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Equal(t, "No calculations performed yet.", resultText(t, result))
}

func TestHistoryTool_Handle(t *testing.T) {
	history := repl.NewHistory()
	history.Add("AddCalculation: 10.0 Add 5.0 = 15.0")
	history.Add("PowerCalculation: 2.0 Power 3.0 = 8.0")

	tool := NewHistoryTool(history)

	result, err := tool.Handle(context.Background(), newCallToolRequest(nil))

	assert.NoError(t, err)
	assert.Equal(t, "Calculation History:\n1. AddCalculation: 10.0 Add 5.0 = 15.0\n2. PowerCalculation: 2.0 Power 3.0 = 8.0", resultText(t, result))
}
