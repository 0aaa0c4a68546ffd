package mcp

import (
	_ "github.com/eda-labs/k8s-eda-mcp-server/pkg/toolsets/core"
	_ "github.com/eda-labs/k8s-eda-mcp-server/pkg/toolsets/eda"
)
