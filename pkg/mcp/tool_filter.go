package mcp

import (
	"slices"

	"github.com/eda-labs/k8s-eda-mcp-server/pkg/api"
)

type ToolFilter func(tool api.ServerTool) bool

func CompositeFilter(filters ...ToolFilter) ToolFilter {
	return func(tool api.ServerTool) bool {
		for _, f := range filters {
			if !f(tool) {
				return false
			}
		}

		return true
	}
}

// ShouldIncludeEnabledTool keeps every tool when enabled is empty, otherwise only the listed ones.
func ShouldIncludeEnabledTool(enabled []string) ToolFilter {
	return func(tool api.ServerTool) bool {
		return len(enabled) == 0 || slices.Contains(enabled, tool.Tool.Name)
	}
}

func ShouldExcludeDisabledTool(disabled []string) ToolFilter {
	return func(tool api.ServerTool) bool {
		return !slices.Contains(disabled, tool.Tool.Name)
	}
}
