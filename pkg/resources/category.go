package resources

import (
	"fmt"
	"strings"

	"github.com/eda-labs/k8s-eda-mcp-server/pkg/api"
)

// Category groups the Nokia EDA resources of the catalog by the first segment of their URI path.
type Category string

const (
	CategoryWorkflows       Category = "workflows"
	CategoryTemplates       Category = "templates"
	CategoryDependencies    Category = "dependencies"
	CategoryTroubleshooting Category = "troubleshooting"
	// CategoryAll matches every EDA category, never generic cluster resources
	CategoryAll Category = "all"
)

// Categories are the concrete EDA categories, in listing order.
var Categories = []Category{CategoryWorkflows, CategoryTemplates, CategoryDependencies, CategoryTroubleshooting}

// CategoryNames lists every accepted filter value, CategoryAll included.
func CategoryNames() []string {
	names := make([]string, 0, len(Categories)+1)
	for _, c := range Categories {
		names = append(names, string(c))
	}
	return append(names, string(CategoryAll))
}

// ParseCategory converts a filter value, defaulting to CategoryAll when empty.
func ParseCategory(value string) (Category, error) {
	if value == "" {
		return CategoryAll, nil
	}
	for _, name := range CategoryNames() {
		if value == name {
			return Category(value), nil
		}
	}
	return "", api.NewInvalidArgumentError(fmt.Sprintf("invalid category '%s', must be one of: %s", value, strings.Join(CategoryNames(), ", ")))
}

// CategoryOf returns the EDA category of uri, or false for generic resources.
func CategoryOf(uri string) (Category, bool) {
	rest, ok := strings.CutPrefix(uri, Scheme)
	if !ok {
		return "", false
	}
	for _, c := range Categories {
		if strings.HasPrefix(rest, string(c)+"/") {
			return c, true
		}
	}
	return "", false
}

// Matches reports whether uri belongs to c. CategoryAll matches any EDA category.
func (c Category) Matches(uri string) bool {
	category, ok := CategoryOf(uri)
	if !ok {
		return false
	}
	return c == CategoryAll || c == category
}

// Filter keeps the resources of c, preserving order.
func Filter(resources []api.Resource, c Category) []api.Resource {
	filtered := make([]api.Resource, 0, len(resources))
	for _, r := range resources {
		if c.Matches(r.URI) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
