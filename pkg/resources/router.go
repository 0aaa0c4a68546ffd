package resources

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
	"k8s.io/klog/v2"

	"github.com/eda-labs/k8s-eda-mcp-server/pkg/api"
	"github.com/eda-labs/k8s-eda-mcp-server/pkg/mcplog"
)

var errClusterUnavailable = errors.New("cluster access is not configured")

// Router resolves catalog URIs to content, delegating live queries to the cluster reader.
// It holds no per-request state and is safe for concurrent use.
type Router struct {
	catalog *Catalog
	reader  api.ClusterReader
	logger  logr.Logger
	tracer  trace.Tracer
}

var _ api.ResourceRouter = &Router{}

type Option func(*Router)

func WithLogger(logger logr.Logger) Option {
	return func(r *Router) {
		r.logger = logger
	}
}

func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(r *Router) {
		r.tracer = tp.Tracer("resources")
	}
}

func WithCatalog(catalog *Catalog) Option {
	return func(r *Router) {
		r.catalog = catalog
	}
}

// NewRouter creates a Router over the embedded catalog.
// A nil reader leaves static content available and fails live URIs as Internal.
func NewRouter(reader api.ClusterReader, opts ...Option) *Router {
	r := &Router{
		reader: reader,
		logger: klog.Background().WithName("resources"),
		tracer: otel.Tracer("resources"),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.catalog == nil {
		r.catalog = MustCatalog()
	}
	return r
}

// ListResources returns the full descriptor list in catalog order.
func (r *Router) ListResources() []api.Resource {
	return r.catalog.Resources()
}

// ReadResource resolves uri. The first matching rule wins:
// cluster-scoped lists, CRD schemas, namespaced lists, then the static table.
func (r *Router) ReadResource(ctx context.Context, uri string) (*api.ResourceContents, error) {
	ctx, span := r.tracer.Start(ctx, "resources.read", trace.WithAttributes(attribute.String("resource.uri", uri)))
	defer span.End()
	contents, err := r.dispatch(ctx, uri)
	if err != nil {
		span.SetAttributes(attribute.String("error.kind", string(api.KindOf(err))))
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.String("resource.mime_type", contents.MIMEType))
	return contents, nil
}

func (r *Router) dispatch(ctx context.Context, uri string) (*api.ResourceContents, error) {
	rest, ok := strings.CutPrefix(uri, Scheme)
	if !ok {
		return nil, api.NewNotFoundError(uri)
	}
	segments := strings.Split(rest, "/")

	if len(segments) == 1 {
		var kind api.ClusterScopedKind
		switch segments[0] {
		case "namespaces":
			kind = api.KindNamespace
		case "nodes":
			kind = api.KindNode
		}
		if kind != "" {
			return r.live(ctx, uri, "list "+segments[0], func(reader api.ClusterReader) (any, error) {
				return reader.ListClusterScoped(ctx, kind)
			})
		}
	}

	if len(segments) == 3 && segments[0] == "crds" && segments[1] != "" && segments[2] == "openapi" {
		return r.live(ctx, uri, "get customresourcedefinition "+segments[1], func(reader api.ClusterReader) (any, error) {
			crd, err := reader.GetCustomResourceDefinition(ctx, segments[1])
			if err != nil {
				return nil, err
			}
			return newCRDSchema(crd), nil
		})
	}

	if len(segments) >= 2 && segments[0] != "" {
		if kind, ok := namespacedKind(segments[1]); ok {
			namespace := segments[0]
			return r.live(ctx, uri, "list "+segments[1]+" in "+namespace, func(reader api.ClusterReader) (any, error) {
				return reader.ListNamespaceScoped(ctx, namespace, kind)
			})
		}
	}

	if entry, ok := r.catalog.lookup(uri); ok {
		r.logger.V(4).Info("Serving static resource", "uri", uri)
		return &api.ResourceContents{URI: uri, MIMEType: entry.mimeType, Text: entry.text}, nil
	}

	r.logger.V(3).Info("No dispatch rule matched", "uri", uri)
	return nil, api.NewNotFoundError(uri)
}

func (r *Router) live(ctx context.Context, uri, operation string, query func(api.ClusterReader) (any, error)) (*api.ResourceContents, error) {
	if r.reader == nil {
		return nil, api.NewInternalError(uri, "Failed to read resource", errClusterUnavailable)
	}
	r.logger.V(4).Info("Querying cluster", "uri", uri, "operation", operation)
	result, err := query(r.reader)
	if err != nil {
		mcplog.HandleK8sError(ctx, err, operation)
		return nil, api.NewInternalError(uri, "Failed to read resource", err)
	}
	if result == nil {
		result = []any{}
	}
	text, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, api.NewInternalError(uri, "Failed to read resource", err)
	}
	return &api.ResourceContents{URI: uri, MIMEType: api.MIMETypeJSON, Text: string(text)}, nil
}

func namespacedKind(segment string) (api.NamespacedKind, bool) {
	switch kind := api.NamespacedKind(segment); kind {
	case api.KindPods, api.KindDeployments, api.KindServices:
		return kind, true
	}
	return "", false
}

type crdSchema struct {
	Group    string             `json:"group"`
	Kind     string             `json:"kind"`
	Versions []crdVersionSchema `json:"versions"`
}

type crdVersionSchema struct {
	Name            string                           `json:"name"`
	Served          bool                             `json:"served"`
	Storage         bool                             `json:"storage"`
	OpenAPIV3Schema *apiextensionsv1.JSONSchemaProps `json:"openAPIV3Schema,omitempty"`
}

func newCRDSchema(crd *apiextensionsv1.CustomResourceDefinition) crdSchema {
	schema := crdSchema{
		Group:    crd.Spec.Group,
		Kind:     crd.Spec.Names.Kind,
		Versions: make([]crdVersionSchema, 0, len(crd.Spec.Versions)),
	}
	for _, v := range crd.Spec.Versions {
		version := crdVersionSchema{Name: v.Name, Served: v.Served, Storage: v.Storage}
		if v.Schema != nil {
			version.OpenAPIV3Schema = v.Schema.OpenAPIV3Schema
		}
		schema.Versions = append(schema.Versions, version)
	}
	return schema
}

// ServerResources adapts the catalog to MCP resource registrations backed by this router.
func (r *Router) ServerResources() []api.ServerResource {
	resources := r.ListResources()
	serverResources := make([]api.ServerResource, 0, len(resources))
	for _, resource := range resources {
		serverResources = append(serverResources, api.ServerResource{Resource: resource, Handler: r.handle})
	}
	return serverResources
}

// ServerResourceTemplates adapts the resource templates to MCP registrations backed by this router.
func (r *Router) ServerResourceTemplates() []api.ServerResourceTemplate {
	tmpls := r.catalog.Templates()
	serverTemplates := make([]api.ServerResourceTemplate, 0, len(tmpls))
	for _, tmpl := range tmpls {
		serverTemplates = append(serverTemplates, api.ServerResourceTemplate{ResourceTemplate: tmpl, Handler: r.handle})
	}
	return serverTemplates
}

func (r *Router) handle(params api.ResourceHandlerParams) (*api.ResourceCallResult, error) {
	contents, err := r.ReadResource(params.Context, params.URI)
	if err != nil {
		return nil, err
	}
	return &api.ResourceCallResult{Contents: []*api.ResourceContents{contents}}, nil
}
