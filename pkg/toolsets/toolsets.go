package toolsets

import (
	"fmt"
	"slices"
	"strings"

	"github.com/eda-labs/k8s-eda-mcp-server/pkg/api"
)

var toolsets []api.Toolset

// Clear removes all registered toolsets, TESTING PURPOSES ONLY.
func Clear() {
	toolsets = []api.Toolset{}
}

// Register adds toolset to the registry, replacing any toolset with the same name.
func Register(toolset api.Toolset) {
	Unregister(toolset.GetName())
	toolsets = append(toolsets, toolset)
}

// Unregister removes the toolset with the given name, if any.
func Unregister(name string) {
	toolsets = slices.DeleteFunc(toolsets, func(t api.Toolset) bool {
		return t.GetName() == name
	})
}

// Toolsets returns the registered toolsets sorted by name.
func Toolsets() []api.Toolset {
	sorted := slices.Clone(toolsets)
	slices.SortFunc(sorted, func(a, b api.Toolset) int {
		return strings.Compare(a.GetName(), b.GetName())
	})
	return sorted
}

func ToolsetNames() []string {
	names := make([]string, 0, len(toolsets))
	for _, toolset := range Toolsets() {
		names = append(names, toolset.GetName())
	}
	return names
}

func ToolsetFromString(name string) api.Toolset {
	for _, toolset := range Toolsets() {
		if toolset.GetName() == strings.TrimSpace(name) {
			return toolset
		}
	}
	return nil
}

// Validate checks that every name refers to a registered toolset.
func Validate(names []string) error {
	for _, name := range names {
		if ToolsetFromString(name) == nil {
			return fmt.Errorf("invalid toolset name: %s, valid names are: %s", name, strings.Join(ToolsetNames(), ", "))
		}
	}
	return nil
}

// Resolve returns the toolsets for names in the given order.
func Resolve(names []string) ([]api.Toolset, error) {
	if err := Validate(names); err != nil {
		return nil, err
	}
	resolved := make([]api.Toolset, 0, len(names))
	for _, name := range names {
		resolved = append(resolved, ToolsetFromString(name))
	}
	return resolved, nil
}
