package mcp

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/eda-labs/k8s-eda-mcp-server/pkg/api"
)

type ToolFilterSuite struct {
	suite.Suite
}

func tool(name string) api.ServerTool {
	return api.ServerTool{Tool: api.Tool{Name: name}}
}

func (s *ToolFilterSuite) TestToolFilterType() {
	s.Run("ToolFilter type can be used as function", func() {
		var mutator ToolFilter = func(tool api.ServerTool) bool {
			return tool.Tool.Name == "included"
		}
		s.Run("returns true for included tool", func() {
			s.True(mutator(tool("included")))
		})
		s.Run("returns false for excluded tool", func() {
			s.False(mutator(tool("excluded")))
		})
	})
}

func (s *ToolFilterSuite) TestCompositeFilter() {
	s.Run("returns true if all filters return true", func() {
		filter := CompositeFilter(
			func(tool api.ServerTool) bool { return true },
			func(tool api.ServerTool) bool { return true },
		)
		s.True(filter(tool("test")))
	})
	s.Run("returns false if any filter returns false", func() {
		filter := CompositeFilter(
			func(tool api.ServerTool) bool { return true },
			func(tool api.ServerTool) bool { return false },
		)
		s.False(filter(tool("test")))
	})
	s.Run("returns true with no filters", func() {
		s.True(CompositeFilter()(tool("test")))
	})
}

func (s *ToolFilterSuite) TestShouldIncludeEnabledTool() {
	s.Run("empty list includes every tool", func() {
		s.True(ShouldIncludeEnabledTool(nil)(tool("pods_list")))
	})
	s.Run("non-empty list includes only listed tools", func() {
		filter := ShouldIncludeEnabledTool([]string{"workflow_resource"})
		s.True(filter(tool("workflow_resource")))
		s.False(filter(tool("pods_list")))
	})
}

func (s *ToolFilterSuite) TestShouldExcludeDisabledTool() {
	filter := ShouldExcludeDisabledTool([]string{"nodes_list"})
	s.False(filter(tool("nodes_list")))
	s.True(filter(tool("namespaces_list")))
}

func TestToolFilter(t *testing.T) {
	suite.Run(t, new(ToolFilterSuite))
}
