package eda

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/google/jsonschema-go/jsonschema"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"k8s.io/utils/ptr"

	"github.com/eda-labs/k8s-eda-mcp-server/pkg/api"
	"github.com/eda-labs/k8s-eda-mcp-server/pkg/resources"
)

const noContent = "No content available"

var tracer = otel.Tracer("eda")

// exampleURIs are shown in the usage envelope when present in the catalog.
var exampleURIs = []string{
	"k8s://workflows/router-creation",
	"k8s://workflows/inter-vlan-routing",
	"k8s://templates/router-evpn-bgp",
	"k8s://troubleshooting/evpn-connectivity",
	"k8s://dependencies/eda-resource-hierarchy",
}

func initWorkflowResource() []api.ServerTool {
	return []api.ServerTool{
		{Tool: api.Tool{
			Name:        "workflow_resource",
			Description: "Access Nokia EDA workflow resources and documentation from the MCP resource handlers. Provides comprehensive context about EDA workflows, templates, troubleshooting guides, and dependency hierarchies.",
			InputSchema: &jsonschema.Schema{
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"resourceUri": {
						Type:        "string",
						Description: "The URI of the workflow resource to access (e.g., 'k8s://workflows/router-creation', 'k8s://templates/router-evpn-bgp', 'k8s://troubleshooting/evpn-connectivity')",
					},
					"listAll": {
						Type:        "boolean",
						Description: "If true, lists all available workflow resources. Ignores resourceUri when true.",
						Default:     api.ToRawMessage(false),
					},
					"category": {
						Type:        "string",
						Description: "Filter resources by category when listAll is true",
						Enum:        categoryEnum(),
						Default:     api.ToRawMessage(string(resources.CategoryAll)),
					},
				},
			},
			Annotations: api.ToolAnnotations{
				Title:           "EDA: Workflow Resource",
				ReadOnlyHint:    ptr.To(true),
				DestructiveHint: ptr.To(false),
				IdempotentHint:  ptr.To(true),
				OpenWorldHint:   ptr.To(false),
			},
		}, Handler: workflowResource},
	}
}

func categoryEnum() []any {
	names := resources.CategoryNames()
	enum := make([]any, 0, len(names))
	for _, name := range names {
		enum = append(enum, name)
	}
	return enum
}

type resourceSummary struct {
	URI         string `json:"uri"`
	Name        string `json:"name"`
	Description string `json:"description"`
	MIMEType    string `json:"mimeType"`
}

type listing struct {
	Message   string            `json:"message"`
	Category  string            `json:"category"`
	Resources []resourceSummary `json:"resources"`
}

type notFound struct {
	Error              string   `json:"error"`
	Message            string   `json:"message"`
	AvailableResources []string `json:"availableResources"`
}

type usage struct {
	Message     string       `json:"message"`
	Description string       `json:"description"`
	Usage       usageFields  `json:"usage"`
	Summary     usageSummary `json:"summary"`
	ExampleURIs []string     `json:"exampleUris"`
}

type usageFields struct {
	ListAll     string `json:"listAll"`
	Category    string `json:"category"`
	ResourceURI string `json:"resourceUri"`
}

type usageSummary struct {
	TotalResources  int `json:"totalResources"`
	Workflows       int `json:"workflows"`
	Templates       int `json:"templates"`
	Dependencies    int `json:"dependencies"`
	Troubleshooting int `json:"troubleshooting"`
}

type workflowArgs struct {
	listAll     bool
	category    string
	resourceURI string
}

func parseWorkflowArgs(args map[string]any) (workflowArgs, error) {
	var parsed workflowArgs
	if v, ok := args["listAll"]; ok && v != nil {
		b, isBool := v.(bool)
		if !isBool {
			return parsed, fmt.Errorf("listAll must be a boolean")
		}
		parsed.listAll = b
	}
	if v, ok := args["category"]; ok && v != nil {
		s, isString := v.(string)
		if !isString {
			return parsed, fmt.Errorf("category must be a string")
		}
		parsed.category = s
	}
	if v, ok := args["resourceUri"]; ok && v != nil {
		s, isString := v.(string)
		if !isString {
			return parsed, fmt.Errorf("resourceUri must be a string")
		}
		parsed.resourceURI = s
	}
	return parsed, nil
}

func workflowResource(params api.ToolHandlerParams) (result *api.ToolCallResult, err error) {
	if params.Resources == nil {
		return api.NewToolCallResult("", fmt.Errorf("failed to access workflow resource: no resource router configured")), nil
	}
	args, err := parseWorkflowArgs(params.GetArguments())
	if err != nil {
		return api.NewToolCallResult("", fmt.Errorf("failed to access workflow resource: %w", err)), nil
	}

	mode := "usage"
	switch {
	case args.listAll:
		mode = "list"
	case args.resourceURI != "":
		mode = "read"
	}
	ctx, span := tracer.Start(params.Context, "workflow_resource."+mode, trace.WithAttributes(
		attribute.String("eda.category", args.category),
		attribute.String("resource.uri", args.resourceURI),
	))
	defer func() {
		if result != nil && (result.IsError || result.Error != nil) {
			span.SetStatus(codes.Error, "workflow resource failed")
		}
		span.End()
	}()
	params.Context = ctx

	switch mode {
	case "list":
		return listWorkflowResources(params.Resources, args.category)
	case "read":
		return readWorkflowResource(params, args.resourceURI)
	default:
		return workflowUsage(params.Resources)
	}
}

func listWorkflowResources(router api.ResourceRouter, categoryValue string) (*api.ToolCallResult, error) {
	category, err := resources.ParseCategory(categoryValue)
	if err != nil {
		return api.NewToolCallResult("", fmt.Errorf("failed to access workflow resource: %w", err)), nil
	}
	filtered := resources.Filter(router.ListResources(), category)
	summaries := make([]resourceSummary, 0, len(filtered))
	for _, r := range filtered {
		summaries = append(summaries, resourceSummary{URI: r.URI, Name: r.Name, Description: r.Description, MIMEType: r.MIMEType})
	}
	return marshalResult(listing{
		Message:   fmt.Sprintf("Found %d Nokia EDA workflow resources", len(summaries)),
		Category:  string(category),
		Resources: summaries,
	}, false)
}

func readWorkflowResource(params api.ToolHandlerParams, uri string) (*api.ToolCallResult, error) {
	contents, err := params.Resources.ReadResource(params.Context, uri)
	if api.IsNotFound(err) {
		edaResources := resources.Filter(params.Resources.ListResources(), resources.CategoryAll)
		available := make([]string, 0, len(edaResources))
		for _, r := range edaResources {
			available = append(available, r.URI)
		}
		return marshalResult(notFound{
			Error:              fmt.Sprintf("Resource URI '%s' not found", uri),
			Message:            "Available Nokia EDA workflow resources:",
			AvailableResources: available,
		}, true)
	}
	if err != nil {
		return api.NewToolCallResult("", fmt.Errorf("failed to access workflow resource: %w", err)), nil
	}
	if contents == nil || contents.Text == "" {
		return api.NewToolCallResult(noContent, nil), nil
	}
	return api.NewToolCallResult(contents.Text, nil), nil
}

func workflowUsage(router api.ResourceRouter) (*api.ToolCallResult, error) {
	all := router.ListResources()
	examples := make([]string, 0, len(exampleURIs))
	for _, uri := range exampleURIs {
		if slices.ContainsFunc(all, func(r api.Resource) bool { return r.URI == uri }) {
			examples = append(examples, uri)
		}
	}
	return marshalResult(usage{
		Message:     "Nokia EDA Workflow Resource Tool",
		Description: "Access comprehensive EDA workflows, templates, and troubleshooting guides",
		Usage: usageFields{
			ListAll:     "Set listAll=true to see all available resources",
			Category:    "Use category filter: workflows, templates, dependencies, troubleshooting, or all",
			ResourceURI: "Specify a resourceUri to get specific resource content",
		},
		Summary: usageSummary{
			TotalResources:  len(resources.Filter(all, resources.CategoryAll)),
			Workflows:       len(resources.Filter(all, resources.CategoryWorkflows)),
			Templates:       len(resources.Filter(all, resources.CategoryTemplates)),
			Dependencies:    len(resources.Filter(all, resources.CategoryDependencies)),
			Troubleshooting: len(resources.Filter(all, resources.CategoryTroubleshooting)),
		},
		ExampleURIs: examples,
	}, false)
}

func marshalResult(v any, isError bool) (*api.ToolCallResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return api.NewToolCallResult("", fmt.Errorf("failed to access workflow resource: %w", err)), nil
	}
	if isError {
		return api.NewToolCallErrorResult(string(data)), nil
	}
	return api.NewToolCallResult(string(data), nil), nil
}
