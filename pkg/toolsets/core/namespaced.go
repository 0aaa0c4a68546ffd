package core

import (
	"errors"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/eda-labs/k8s-eda-mcp-server/pkg/api"
	"github.com/eda-labs/k8s-eda-mcp-server/pkg/mcplog"
)

const defaultNamespace = "default"

var errClusterUnavailable = errors.New("cluster access is not configured")

func initNamespaced() []api.ServerTool {
	return []api.ServerTool{
		{Tool: api.Tool{
			Name:        "pods_list",
			Description: "List the Kubernetes pods in the provided namespace",
			InputSchema: namespaceSchema("pods"),
			Annotations: listAnnotations("Pods: List"),
		}, Handler: namespacedList(api.KindPods)},
		{Tool: api.Tool{
			Name:        "deployments_list",
			Description: "List the Kubernetes deployments in the provided namespace",
			InputSchema: namespaceSchema("deployments"),
			Annotations: listAnnotations("Deployments: List"),
		}, Handler: namespacedList(api.KindDeployments)},
		{Tool: api.Tool{
			Name:        "services_list",
			Description: "List the Kubernetes services in the provided namespace",
			InputSchema: namespaceSchema("services"),
			Annotations: listAnnotations("Services: List"),
		}, Handler: namespacedList(api.KindServices)},
	}
}

func namespaceSchema(plural string) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"namespace": {
				Type:        "string",
				Description: fmt.Sprintf("Namespace to list %s from (Optional, defaults to %q)", plural, defaultNamespace),
				Default:     api.ToRawMessage(defaultNamespace),
			},
		},
	}
}

func namespacedList(kind api.NamespacedKind) api.ToolHandlerFunc {
	plural := string(kind)
	return func(params api.ToolHandlerParams) (*api.ToolCallResult, error) {
		namespace := defaultNamespace
		if v, ok := params.GetArguments()["namespace"]; ok && v != nil {
			s, isString := v.(string)
			if !isString {
				return api.NewToolCallResult("", fmt.Errorf("failed to list %s, namespace must be a string", plural)), nil
			}
			if s != "" {
				namespace = s
			}
		}
		if params.ClusterReader == nil {
			return api.NewToolCallResult("", fmt.Errorf("failed to list %s in namespace %s: %w", plural, namespace, errClusterUnavailable)), nil
		}
		items, err := params.ListNamespaceScoped(params.Context, namespace, kind)
		if err != nil {
			mcplog.HandleK8sError(params.Context, err, plural+" listing")
			return api.NewToolCallResult("", fmt.Errorf("failed to list %s in namespace %s: %w", plural, namespace, err)), nil
		}
		return printList(params, items, plural)
	}
}
