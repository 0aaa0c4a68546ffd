package core

import (
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"k8s.io/utils/ptr"

	"github.com/eda-labs/k8s-eda-mcp-server/pkg/api"
	"github.com/eda-labs/k8s-eda-mcp-server/pkg/mcplog"
)

func initClusterScoped() []api.ServerTool {
	return []api.ServerTool{
		{Tool: api.Tool{
			Name:        "namespaces_list",
			Description: "List all the Kubernetes namespaces in the current cluster",
			InputSchema: &jsonschema.Schema{
				Type:       "object",
				Properties: map[string]*jsonschema.Schema{},
			},
			Annotations: listAnnotations("Namespaces: List"),
		}, Handler: clusterScopedList(api.KindNamespace, "namespaces")},
		{Tool: api.Tool{
			Name:        "nodes_list",
			Description: "List all the Kubernetes nodes in the current cluster",
			InputSchema: &jsonschema.Schema{
				Type:       "object",
				Properties: map[string]*jsonschema.Schema{},
			},
			Annotations: listAnnotations("Nodes: List"),
		}, Handler: clusterScopedList(api.KindNode, "nodes")},
	}
}

func clusterScopedList(kind api.ClusterScopedKind, plural string) api.ToolHandlerFunc {
	return func(params api.ToolHandlerParams) (*api.ToolCallResult, error) {
		if params.ClusterReader == nil {
			return api.NewToolCallResult("", fmt.Errorf("failed to list %s: %w", plural, errClusterUnavailable)), nil
		}
		items, err := params.ListClusterScoped(params.Context, kind)
		if err != nil {
			mcplog.HandleK8sError(params.Context, err, plural+" listing")
			return api.NewToolCallResult("", fmt.Errorf("failed to list %s: %w", plural, err)), nil
		}
		return printList(params, items, plural)
	}
}

func printList(params api.ToolHandlerParams, items any, plural string) (*api.ToolCallResult, error) {
	if params.ListOutput == nil {
		return api.NewToolCallResult("", fmt.Errorf("failed to list %s: no list output configured", plural)), nil
	}
	text, err := params.ListOutput.PrintObj(items)
	if err != nil {
		return api.NewToolCallResult("", fmt.Errorf("failed to print %s: %w", plural, err)), nil
	}
	return api.NewToolCallResult(text, nil), nil
}

func listAnnotations(title string) api.ToolAnnotations {
	return api.ToolAnnotations{
		Title:           title,
		ReadOnlyHint:    ptr.To(true),
		DestructiveHint: ptr.To(false),
		IdempotentHint:  ptr.To(false),
		OpenWorldHint:   ptr.To(true),
	}
}
