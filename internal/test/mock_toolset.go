package test

import (
	"testing"

	"github.com/eda-labs/k8s-eda-mcp-server/pkg/api"
	"github.com/eda-labs/k8s-eda-mcp-server/pkg/toolsets"
)

// MockToolset is an api.Toolset whose metadata, tools and prompts are set by the test.
type MockToolset struct {
	Name         string
	Description  string
	Instructions string
	Tools        []api.ServerTool
	Prompts      []api.ServerPrompt
}

var _ api.Toolset = (*MockToolset)(nil)

func (m *MockToolset) GetName() string                { return m.Name }
func (m *MockToolset) GetDescription() string         { return m.Description }
func (m *MockToolset) GetToolsetInstructions() string { return m.Instructions }
func (m *MockToolset) GetTools() []api.ServerTool     { return m.Tools }
func (m *MockToolset) GetPrompts() []api.ServerPrompt { return m.Prompts }

// RegisterMockToolset makes mockToolset resolvable by name until the test completes.
func RegisterMockToolset(t testing.TB, mockToolset *MockToolset) {
	t.Helper()
	toolsets.Register(mockToolset)
	t.Cleanup(func() {
		toolsets.Unregister(mockToolset.Name)
	})
}
