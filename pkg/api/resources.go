package api

import (
	"context"

	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
)

const (
	MIMETypeJSON     = "application/json"
	MIMETypeMarkdown = "text/markdown"
	MIMETypeYAML     = "text/yaml"
)

// ClusterScopedKind names a cluster-scoped entity the router can list.
type ClusterScopedKind string

const (
	KindNamespace ClusterScopedKind = "namespace"
	KindNode      ClusterScopedKind = "node"
)

// NamespacedKind names a namespace-scoped entity the router can list.
type NamespacedKind string

const (
	KindPods        NamespacedKind = "pods"
	KindDeployments NamespacedKind = "deployments"
	KindServices    NamespacedKind = "services"
)

// ClusterReader is the read-only cluster access the resource router delegates live queries to.
// The returned items are JSON-serializable cluster objects.
type ClusterReader interface {
	ListClusterScoped(ctx context.Context, kind ClusterScopedKind) (any, error)
	ListNamespaceScoped(ctx context.Context, namespace string, kind NamespacedKind) (any, error)
	GetCustomResourceDefinition(ctx context.Context, name string) (*apiextensionsv1.CustomResourceDefinition, error)
}

type ServerResource struct {
	Resource Resource
	Handler  ResourceHandlerFunc
}

type ServerResourceTemplate struct {
	ResourceTemplate ResourceTemplate
	Handler          ResourceHandlerFunc
}

type ResourceHandlerFunc func(params ResourceHandlerParams) (*ResourceCallResult, error)

type ResourceHandlerParams struct {
	context.Context
	URI string
}

type ResourceCallResult struct {
	Contents []*ResourceContents
}

// Resource describes one entry of the resource catalog.
type Resource struct {
	// Optional annotations for the client
	Annotations *ResourceAnnotations
	// A one-line purpose statement.
	Description string
	// The MIME type declared for the content. Never inferred from the content itself.
	MIMEType string
	// Human readable name of the resource
	Name string
	// The URI of this resource, unique within the catalog
	URI string
}

type ResourceTemplate struct {
	// Optional annotations for the client
	Annotations *ResourceAnnotations
	// A description of what the resources matching this template represent.
	Description string
	// The MIME type of matching resources
	MIMEType string
	// Name of the template
	Name string
	// A URI template (according to RFC 6570) that can be used to construct resource URIs
	URITemplate string
}

func NewResourceTextResult(uri, mimeType, text string) *ResourceCallResult {
	return &ResourceCallResult{
		Contents: []*ResourceContents{{
			URI:      uri,
			MIMEType: mimeType,
			Text:     text,
		}},
	}
}

type ResourceAnnotations struct {
	// Described who the intended customer of this object or data is.
	//
	// It can include multiple entries to indicate content useful for multiple
	// audiences, (e.g. []string{"user", "assistant"}).
	Audience []string `json:"audience,omitempty"`
	// Describes how important this data is for operating the server.
	//
	// A value of 1 means "most important", and indicates that the data is
	// effectively required, while 0 means "least important", and indicates
	// that the data is entirely optional.
	Priority float64 `json:"priority,omitempty"`
}

type ResourceContents struct {
	URI      string
	MIMEType string
	Text     string
}
