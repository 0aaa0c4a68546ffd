package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"k8s.io/klog/v2"

	"github.com/eda-labs/k8s-eda-mcp-server/pkg/api"
)

type promptCallRequest map[string]string

func (r promptCallRequest) GetArguments() map[string]string {
	return r
}

// ServerPromptToGoSdkPrompt converts an api.ServerPrompt to MCP SDK types
func ServerPromptToGoSdkPrompt(s *Server, prompt api.ServerPrompt) (*mcp.Prompt, mcp.PromptHandler) {
	arguments := make([]*mcp.PromptArgument, 0, len(prompt.Prompt.Arguments))
	for _, arg := range prompt.Prompt.Arguments {
		arguments = append(arguments, &mcp.PromptArgument{
			Name:        arg.Name,
			Description: arg.Description,
			Required:    arg.Required,
		})
	}
	goSdkPrompt := &mcp.Prompt{
		Name:        prompt.Prompt.Name,
		Description: prompt.Prompt.Description,
		Arguments:   arguments,
	}
	return goSdkPrompt, newPromptHandler(s, prompt)
}

func newPromptHandler(s *Server, prompt api.ServerPrompt) mcp.PromptHandler {
	name := prompt.Prompt.Name
	return func(ctx context.Context, request *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		var args map[string]string
		if request.Params != nil {
			args = request.Params.Arguments
		}
		klog.V(5).Infof("mcp prompt get: %s(%v)", name, args)
		result, err := prompt.Handler(api.PromptHandlerParams{
			Context:           ctx,
			PromptCallRequest: promptCallRequest(args),
		})
		s.metrics.RecordPromptGet(name, err)
		if err != nil {
			klog.V(2).InfoS("mcp prompt get failed", "prompt", name, "kind", string(api.KindOf(err)), "error", err.Error())
			return nil, err
		}
		return toMcpGetPromptResult(result), nil
	}
}

func toMcpGetPromptResult(result *api.PromptCallResult) *mcp.GetPromptResult {
	if result == nil {
		return &mcp.GetPromptResult{Messages: []*mcp.PromptMessage{}}
	}
	messages := make([]*mcp.PromptMessage, 0, len(result.Messages))
	for _, m := range result.Messages {
		messages = append(messages, &mcp.PromptMessage{
			Role:    mcp.Role(m.Role),
			Content: &mcp.TextContent{Text: m.Content.Text},
		})
	}
	return &mcp.GetPromptResult{
		Description: result.Description,
		Messages:    messages,
	}
}
