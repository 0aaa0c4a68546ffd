package core

import (
	"slices"

	"github.com/eda-labs/k8s-eda-mcp-server/pkg/api"
	"github.com/eda-labs/k8s-eda-mcp-server/pkg/toolsets"
)

type Toolset struct{}

var _ api.Toolset = (*Toolset)(nil)

func (t *Toolset) GetName() string {
	return "core"
}

func (t *Toolset) GetDescription() string {
	return "Read-only listing of the most common Kubernetes resources (Namespaces, Nodes, Pods, Deployments, Services)"
}

func (t *Toolset) GetToolsetInstructions() string {
	return ""
}

func (t *Toolset) GetTools() []api.ServerTool {
	return slices.Concat(
		initClusterScoped(),
		initNamespaced(),
	)
}

func (t *Toolset) GetPrompts() []api.ServerPrompt {
	return nil
}

func init() {
	toolsets.Register(&Toolset{})
}
