package eda

import (
	"github.com/eda-labs/k8s-eda-mcp-server/pkg/api"
	"github.com/eda-labs/k8s-eda-mcp-server/pkg/toolsets"
)

type Toolset struct{}

var _ api.Toolset = (*Toolset)(nil)

func (t *Toolset) GetName() string {
	return "eda"
}

func (t *Toolset) GetDescription() string {
	return "Nokia EDA workflows, configuration templates, dependency hierarchy and troubleshooting guides"
}

func (t *Toolset) GetToolsetInstructions() string {
	return `Nokia EDA resources depend on each other: read k8s://dependencies/eda-resource-hierarchy before creating or changing Routers, BridgeDomains, IRBInterfaces or VLANs.
Use workflow_resource with listAll=true to discover the available workflows, templates and troubleshooting guides.
The OpenAPI schema of any EDA custom resource is available at k8s://crds/{name}/openapi, e.g. k8s://crds/routers.services.eda.nokia.com/openapi.`
}

func (t *Toolset) GetTools() []api.ServerTool {
	return initWorkflowResource()
}

func (t *Toolset) GetPrompts() []api.ServerPrompt {
	return initPrompts()
}

func init() {
	toolsets.Register(&Toolset{})
}
