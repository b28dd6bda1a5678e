// Package mcptools exposes the calculator as Model Context Protocol tools.
package mcptools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/zephyrtronium/calculator"
)

// OperationsURI is the URI of the resource listing the operations.
const OperationsURI = "calculator://operations"

// NewServer creates an MCP server with every calculator tool and resource.
func NewServer(name, version string) *server.MCPServer {
	s := server.NewMCPServer(
		name,
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, false),
		server.WithLogging(),
		server.WithRecovery(),
	)
	Register(s)
	return s
}

// Register adds the calculator tools and resources to s.
func Register(s *server.MCPServer) {
	s.AddTool(calculateTool(), Calculate)
	s.AddTool(evaluateTool(), EvaluateExpression)
	s.AddResource(operationsResource(), Operations)
}

func calculateTool() mcp.Tool {
	return mcp.NewTool("calculate",
		mcp.WithDescription("Apply one calculator operation. Binary operations ("+symbols(2)+
			") take a and b; functions ("+symbols(1)+") take only a. Angles are in radians; log is base 10."),
		mcp.WithString("operation",
			mcp.Required(),
			mcp.Description("Operation symbol, e.g. '+' or 'sqrt'"),
		),
		mcp.WithNumber("a",
			mcp.Required(),
			mcp.Description("First operand"),
		),
		mcp.WithNumber("b",
			mcp.Description("Second operand, only for binary operations"),
		),
	)
}

func evaluateTool() mcp.Tool {
	return mcp.NewTool("evaluate_expression",
		mcp.WithDescription("Evaluate one binary expression like '3.14 * 2'. Operands and the operator (+ - * /) must be separated by spaces; only one operator is allowed."),
		mcp.WithString("expression",
			mcp.Required(),
			mcp.Description("Expression of the form '<number> <operator> <number>'"),
		),
	)
}

func operationsResource() mcp.Resource {
	return mcp.NewResource(OperationsURI,
		"Operations",
		mcp.WithResourceDescription("Operations the calculator supports, with their arity"),
		mcp.WithMIMEType("application/json"),
	)
}

// symbols lists the symbols of the operations with the given arity.
func symbols(arity int) string {
	var v []string
	for _, op := range calculator.Ops() {
		if op.Arity() == arity {
			v = append(v, op.String())
		}
	}
	return strings.Join(v, " ")
}

// Calculate handles the calculate tool.
func Calculate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	name, ok := args["operation"].(string)
	if !ok {
		return mcp.NewToolResultError("operation is required"), nil
	}

	var operands []float64
	if v, ok := args["a"]; ok {
		a, ok := v.(float64)
		if !ok {
			return mcp.NewToolResultError("a must be a number"), nil
		}
		operands = append(operands, a)
		if v, ok := args["b"]; ok && v != nil {
			b, ok := v.(float64)
			if !ok {
				return mcp.NewToolResultError("b must be a number"), nil
			}
			operands = append(operands, b)
		}
	}

	r, err := calculator.Calculate(name, operands...)
	return result(r, err)
}

// EvaluateExpression handles the evaluate_expression tool.
func EvaluateExpression(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	src, ok := args["expression"].(string)
	if !ok {
		return mcp.NewToolResultError("expression is required"), nil
	}

	r, err := calculator.EvaluateExpression(src)
	return result(r, err)
}

// result converts a calculator outcome to a tool result. Calculator errors are
// tool errors carrying the calculator's message; the handler itself never
// fails for them.
func result(r float64, err error) (*mcp.CallToolResult, error) {
	if err != nil {
		var e *calculator.Error
		if !errors.As(err, &e) {
			return nil, fmt.Errorf("calculating: %w", err)
		}
		return mcp.NewToolResultError(e.Msg), nil
	}
	return mcp.NewToolResultText(strconv.FormatFloat(r, 'g', -1, 64)), nil
}

type operationInfo struct {
	Symbol string `json:"symbol"`
	Arity  int    `json:"arity"`
}

// Operations handles reads of the operations resource.
func Operations(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	ops := calculator.Ops()
	v := make([]operationInfo, len(ops))
	for i, op := range ops {
		v[i] = operationInfo{Symbol: op.String(), Arity: op.Arity()}
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      OperationsURI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
