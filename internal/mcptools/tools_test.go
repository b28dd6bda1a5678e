package mcptools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func text(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.Len(t, res.Content, 1)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "content is %T, not mcp.TextContent", res.Content[0])
	return tc.Text
}

func TestCalculateTool(t *testing.T) {
	cases := []struct {
		name  string
		args  map[string]any
		want  string
		isErr bool
	}{
		{"add", map[string]any{"operation": "+", "a": 5.0, "b": 3.0}, "8", false},
		{"div", map[string]any{"operation": "/", "a": 20.0, "b": 4.0}, "5", false},
		{"sqrt", map[string]any{"operation": "sqrt", "a": 16.0}, "4", false},
		{"sqrt-null-b", map[string]any{"operation": "sqrt", "a": 16.0, "b": nil}, "4", false},
		{"div-zero", map[string]any{"operation": "/", "a": 10.0, "b": 0.0}, "Division by zero", true},
		{"log-neg", map[string]any{"operation": "log", "a": -5.0}, "Cannot calculate logarithm of non-positive number", true},
		{"unknown", map[string]any{"operation": "invalid", "a": 5.0, "b": 3.0}, "Unknown operation: invalid", true},
		{"missing-b", map[string]any{"operation": "+", "a": 5.0}, "Operation + requires two operands", true},
		{"missing-a", map[string]any{"operation": "cos"}, "Operation cos requires one operand", true},
		{"no-operation", map[string]any{"a": 5.0}, "operation is required", true},
		{"bad-a", map[string]any{"operation": "+", "a": "5", "b": 3.0}, "a must be a number", true},
		{"bad-b", map[string]any{"operation": "+", "a": 5.0, "b": true}, "b must be a number", true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			res, err := Calculate(context.Background(), callRequest("calculate", c.args))
			require.NoError(t, err)
			assert.Equal(t, c.isErr, res.IsError)
			assert.Equal(t, c.want, text(t, res))
		})
	}
}

func TestEvaluateTool(t *testing.T) {
	cases := []struct {
		name  string
		args  map[string]any
		want  string
		isErr bool
	}{
		{"add", map[string]any{"expression": "5 + 3"}, "8", false},
		{"dec", map[string]any{"expression": "3.14 * 2"}, "6.28", false},
		{"neg", map[string]any{"expression": "-5 + 10"}, "5", false},
		{"inf", map[string]any{"expression": "1e999 + 1"}, "+Inf", false},
		{"div-zero", map[string]any{"expression": "10 / 0"}, "Division by zero", true},
		{"chained", map[string]any{"expression": "5 + 3 * 2"}, "Invalid expression format", true},
		{"missing", map[string]any{}, "expression is required", true},
		{"not-string", map[string]any{"expression": 5.0}, "expression is required", true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			res, err := EvaluateExpression(context.Background(), callRequest("evaluate_expression", c.args))
			require.NoError(t, err)
			assert.Equal(t, c.isErr, res.IsError)
			assert.Equal(t, c.want, text(t, res))
		})
	}
}

func TestOperationsResource(t *testing.T) {
	contents, err := Operations(context.Background(), mcp.ReadResourceRequest{})
	require.NoError(t, err)
	require.Len(t, contents, 1)
	tc, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok, "contents is %T", contents[0])
	assert.Equal(t, OperationsURI, tc.URI)

	var ops []operationInfo
	require.NoError(t, json.Unmarshal([]byte(tc.Text), &ops))
	require.Len(t, ops, 9)
	assert.Equal(t, operationInfo{Symbol: "/", Arity: 2}, ops[3])
	assert.Equal(t, operationInfo{Symbol: "sqrt", Arity: 1}, ops[4])
}

func TestToolDefinitions(t *testing.T) {
	calc := calculateTool()
	assert.Equal(t, "calculate", calc.Name)
	assert.ElementsMatch(t, []string{"operation", "a"}, calc.InputSchema.Required)
	assert.Contains(t, calc.Description, "+ - * /")
	assert.Contains(t, calc.Description, "sqrt sin cos log ln")

	eval := evaluateTool()
	assert.Equal(t, "evaluate_expression", eval.Name)
	assert.Equal(t, []string{"expression"}, eval.InputSchema.Required)
}

func TestNewServer(t *testing.T) {
	assert.NotNil(t, NewServer("calc-test", "0.0.0"))
}
