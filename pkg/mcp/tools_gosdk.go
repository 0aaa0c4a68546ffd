package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"k8s.io/klog/v2"
	"k8s.io/utils/ptr"

	"github.com/eda-labs/k8s-eda-mcp-server/pkg/api"
	"github.com/eda-labs/k8s-eda-mcp-server/pkg/metrics"
)

type toolCallRequest map[string]any

func (r toolCallRequest) GetArguments() map[string]any {
	return r
}

// ServerToolToGoSdkTool converts an api.ServerTool to MCP SDK types
func ServerToolToGoSdkTool(s *Server, tool api.ServerTool) (*mcp.Tool, mcp.ToolHandler) {
	inputSchema := tool.Tool.InputSchema
	if inputSchema == nil {
		inputSchema = &jsonschema.Schema{Type: "object"}
	}
	goSdkTool := &mcp.Tool{
		Name:        tool.Tool.Name,
		Description: tool.Tool.Description,
		InputSchema: inputSchema,
		Annotations: &mcp.ToolAnnotations{
			Title:           tool.Tool.Annotations.Title,
			ReadOnlyHint:    ptr.Deref(tool.Tool.Annotations.ReadOnlyHint, false),
			DestructiveHint: tool.Tool.Annotations.DestructiveHint,
			IdempotentHint:  ptr.Deref(tool.Tool.Annotations.IdempotentHint, false),
			OpenWorldHint:   tool.Tool.Annotations.OpenWorldHint,
		},
	}
	return goSdkTool, newToolHandler(s, tool)
}

func newToolHandler(s *Server, tool api.ServerTool) mcp.ToolHandler {
	name := tool.Tool.Name
	return func(ctx context.Context, request *mcp.CallToolRequest) (result *mcp.CallToolResult, err error) {
		start := time.Now()
		outcome := metrics.OutcomeSuccess
		defer func() {
			if r := recover(); r != nil {
				klog.Errorf("mcp tool call %s panicked: %v", name, r)
				result, err = NewTextResult("", fmt.Errorf("failed to call tool %s: %v", name, r)), nil
				outcome = metrics.OutcomeInternal
			}
			s.metrics.RecordToolCall(name, time.Since(start), outcome)
		}()

		args := toolCallRequest{}
		if request.Params != nil && len(request.Params.Arguments) > 0 {
			if err := json.Unmarshal(request.Params.Arguments, &args); err != nil {
				outcome = metrics.OutcomeInvalidArgument
				return NewTextResult("", fmt.Errorf("failed to parse arguments for tool %s: %w", name, err)), nil
			}
		}
		klog.V(5).Infof("mcp tool call: %s(%v)", name, map[string]any(args))

		res, err := tool.Handler(api.ToolHandlerParams{
			Context:         ctx,
			ClusterReader:   s.reader,
			ToolCallRequest: args,
			Resources:       s.resources,
			ListOutput:      s.configuration.listOutput,
		})
		if err != nil {
			outcome = metrics.Outcome(err)
			return nil, err
		}
		switch {
		case res == nil:
			return NewTextResult("", nil), nil
		case res.Error != nil:
			outcome = metrics.Outcome(res.Error)
		case res.IsError:
			outcome = metrics.OutcomeToolError
		}
		return toMcpCallToolResult(res), nil
	}
}

// NewTextResult creates a text tool result, flagged as an error when err is set
func NewTextResult(content string, err error) *mcp.CallToolResult {
	if err != nil {
		return &mcp.CallToolResult{
			IsError: true,
			Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
		}
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: content}},
	}
}

func toMcpCallToolResult(result *api.ToolCallResult) *mcp.CallToolResult {
	if result.Error != nil {
		return NewTextResult("", result.Error)
	}
	callToolResult := NewTextResult(result.Content, nil)
	callToolResult.IsError = result.IsError
	return callToolResult
}
