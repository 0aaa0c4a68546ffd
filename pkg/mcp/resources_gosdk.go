package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"k8s.io/klog/v2"

	"github.com/eda-labs/k8s-eda-mcp-server/pkg/api"
	"github.com/eda-labs/k8s-eda-mcp-server/pkg/resources"
)

// ServerResourceToGoSdkResource converts an api.ServerResource to MCP SDK types
func ServerResourceToGoSdkResource(s *Server, resource api.ServerResource) (*mcp.Resource, mcp.ResourceHandler) {
	goSdkResource := &mcp.Resource{
		Name:        resource.Resource.Name,
		Description: resource.Resource.Description,
		URI:         resource.Resource.URI,
		MIMEType:    resource.Resource.MIMEType,
		Annotations: toMcpAnnotations(resource.Resource.Annotations),
	}

	return goSdkResource, newResourceHandler(s, resource.Handler)
}

// ServerResourceTemplateToGoSdkResourceTemplate converts an api.ServerResourceTemplate to MCP SDK types
func ServerResourceTemplateToGoSdkResourceTemplate(s *Server, template api.ServerResourceTemplate) (*mcp.ResourceTemplate, mcp.ResourceHandler) {
	goSdkTemplate := &mcp.ResourceTemplate{
		Name:        template.ResourceTemplate.Name,
		Description: template.ResourceTemplate.Description,
		URITemplate: template.ResourceTemplate.URITemplate,
		MIMEType:    template.ResourceTemplate.MIMEType,
		Annotations: toMcpAnnotations(template.ResourceTemplate.Annotations),
	}

	return goSdkTemplate, newResourceHandler(s, template.Handler)
}

// newResourceHandler creates a common resource handler for both resources and resource templates.
// Unrecognized URIs surface as the protocol's resource-not-found error.
func newResourceHandler(s *Server, handler api.ResourceHandlerFunc) mcp.ResourceHandler {
	return func(ctx context.Context, request *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		uri := ""
		if request.Params != nil {
			uri = request.Params.URI
		}

		start := time.Now()
		result, err := handler(api.ResourceHandlerParams{
			Context: ctx,
			URI:     uri,
		})
		s.metrics.RecordResourceRead(resourceClass(uri), time.Since(start), err)
		if err != nil {
			klog.V(2).InfoS("mcp resource read failed", "uri", uri, "kind", string(api.KindOf(err)), "error", err.Error())
			if api.IsNotFound(err) {
				return nil, mcp.ResourceNotFoundError(uri)
			}
			return nil, err
		}
		klog.V(2).InfoS("mcp resource read", "uri", uri, "duration", time.Since(start))

		return toMcpReadResourceResult(result), nil
	}
}

// resourceClass keeps the metrics label bounded: the EDA category, or "cluster" for live data.
func resourceClass(uri string) string {
	if category, ok := resources.CategoryOf(uri); ok {
		return string(category)
	}
	return "cluster"
}

// toMcpReadResourceResult converts an api.ResourceCallResult to MCP SDK ReadResourceResult
func toMcpReadResourceResult(result *api.ResourceCallResult) *mcp.ReadResourceResult {
	if result == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{},
		}
	}

	contents := make([]*mcp.ResourceContents, 0, len(result.Contents))
	for _, c := range result.Contents {
		contents = append(contents, &mcp.ResourceContents{
			URI:      c.URI,
			MIMEType: c.MIMEType,
			Text:     c.Text,
		})
	}

	return &mcp.ReadResourceResult{
		Contents: contents,
	}
}

// toMcpAnnotations converts api.ResourceAnnotations to MCP SDK Annotations
func toMcpAnnotations(annotations *api.ResourceAnnotations) *mcp.Annotations {
	if annotations == nil {
		return nil
	}

	var roles []mcp.Role
	for _, a := range annotations.Audience {
		roles = append(roles, mcp.Role(a))
	}

	return &mcp.Annotations{
		Audience: roles,
		Priority: annotations.Priority,
	}
}
