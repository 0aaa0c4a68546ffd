package resources

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/eda-labs/k8s-eda-mcp-server/pkg/api"
)

// Scheme prefixes every URI served by the router.
const Scheme = "k8s://"

//go:embed content
var content embed.FS

type descriptor struct {
	api.Resource
	// file is the embedded payload path, empty for live cluster resources
	file string
}

// descriptors is the catalog in listing order.
var descriptors = []descriptor{
	{Resource: api.Resource{URI: "k8s://default/pods", Name: "Kubernetes Pods", MIMEType: api.MIMETypeJSON,
		Description: "List of pods in the default namespace"}},
	{Resource: api.Resource{URI: "k8s://default/deployments", Name: "Kubernetes Deployments", MIMEType: api.MIMETypeJSON,
		Description: "List of deployments in the default namespace"}},
	{Resource: api.Resource{URI: "k8s://default/services", Name: "Kubernetes Services", MIMEType: api.MIMETypeJSON,
		Description: "List of services in the default namespace"}},
	{Resource: api.Resource{URI: "k8s://namespaces", Name: "Kubernetes Namespaces", MIMEType: api.MIMETypeJSON,
		Description: "List of all namespaces"}},
	{Resource: api.Resource{URI: "k8s://nodes", Name: "Kubernetes Nodes", MIMEType: api.MIMETypeJSON,
		Description: "List of all nodes in the cluster"}},

	{file: "workflows/router-creation.md", Resource: api.Resource{URI: "k8s://workflows/router-creation",
		Name: "Router Resource Creation Workflow", MIMEType: api.MIMETypeMarkdown,
		Description: "Complete workflow for creating EVPN-VXLAN Router resources with BGP configuration"}},
	{file: "workflows/bridge-domain-creation.md", Resource: api.Resource{URI: "k8s://workflows/bridge-domain-creation",
		Name: "Bridge Domain Creation Workflow", MIMEType: api.MIMETypeMarkdown,
		Description: "Step-by-step process for creating EVPN-VXLAN Bridge Domains"}},
	{file: "workflows/irb-creation.md", Resource: api.Resource{URI: "k8s://workflows/irb-creation",
		Name: "IRB Interface Creation Workflow", MIMEType: api.MIMETypeMarkdown,
		Description: "Creating IRB interfaces that connect Bridge Domains to Routers"}},
	{file: "workflows/vlan-object-creation.md", Resource: api.Resource{URI: "k8s://workflows/vlan-object-creation",
		Name: "VLAN and Interface Configuration Workflow", MIMEType: api.MIMETypeMarkdown,
		Description: "Configuring VLANs and Interfaces for layer 2 connectivity"}},
	{file: "workflows/inter-vlan-routing.md", Resource: api.Resource{URI: "k8s://workflows/inter-vlan-routing",
		Name: "Inter-VLAN Routing Complete Setup", MIMEType: api.MIMETypeMarkdown,
		Description: "End-to-end workflow for setting up inter-VLAN routing with EVPN"}},
	{file: "workflows/virtualnetwork-creation.md", Resource: api.Resource{URI: "k8s://workflows/virtualnetwork-creation",
		Name: "VirtualNetwork Creation Workflow", MIMEType: api.MIMETypeMarkdown,
		Description: "Creating a multi-VLAN overlay with Router, Bridge Domains and IRBs in a single VirtualNetwork resource"}},

	{file: "dependencies/eda-resource-hierarchy.md", Resource: api.Resource{URI: "k8s://dependencies/eda-resource-hierarchy",
		Name: "Nokia EDA Resource Dependency Hierarchy", MIMEType: api.MIMETypeMarkdown,
		Description: "Understanding relationships between Router, IRB, Bridge Domain, VLAN, and Interface resources"}},

	{file: "templates/router-evpn-bgp.yaml", Resource: api.Resource{URI: "k8s://templates/router-evpn-bgp",
		Name: "Router EVPN-VXLAN with BGP Template", MIMEType: api.MIMETypeYAML,
		Description: "Complete Router configuration template with EVPN and BGP settings"}},
	{file: "templates/bridge-domain-evpn.yaml", Resource: api.Resource{URI: "k8s://templates/bridge-domain-evpn",
		Name: "Bridge Domain EVPN Template", MIMEType: api.MIMETypeYAML,
		Description: "Bridge Domain configuration for EVPN-VXLAN overlay"}},
	{file: "templates/irb-interface.yaml", Resource: api.Resource{URI: "k8s://templates/irb-interface",
		Name: "IRB Interface Template", MIMEType: api.MIMETypeYAML,
		Description: "IRB interface configuration template with anycast gateway"}},
	{file: "templates/virtualnetwork-multi-vlan.yaml", Resource: api.Resource{URI: "k8s://templates/virtualnetwork-multi-vlan",
		Name: "VirtualNetwork Multi-VLAN Template", MIMEType: api.MIMETypeYAML,
		Description: "VirtualNetwork configuration template with multiple VLANs, Bridge Domains and IRB interfaces"}},

	{file: "troubleshooting/evpn-connectivity.md", Resource: api.Resource{URI: "k8s://troubleshooting/evpn-connectivity",
		Name: "EVPN Connectivity Troubleshooting Guide", MIMEType: api.MIMETypeMarkdown,
		Description: "Systematic approach to diagnosing EVPN overlay connectivity issues"}},
}

var templates = []api.ResourceTemplate{
	{URITemplate: "k8s://{namespace}/pods", Name: "Kubernetes Pods by Namespace", MIMEType: api.MIMETypeJSON,
		Description: "List of pods in the given namespace"},
	{URITemplate: "k8s://{namespace}/deployments", Name: "Kubernetes Deployments by Namespace", MIMEType: api.MIMETypeJSON,
		Description: "List of deployments in the given namespace"},
	{URITemplate: "k8s://{namespace}/services", Name: "Kubernetes Services by Namespace", MIMEType: api.MIMETypeJSON,
		Description: "List of services in the given namespace"},
	{URITemplate: "k8s://crds/{name}/openapi", Name: "Custom Resource Definition Schema", MIMEType: api.MIMETypeJSON,
		Description: "OpenAPI v3 schema of every version of a CustomResourceDefinition, e.g. routers.services.eda.nokia.com"},
}

type staticEntry struct {
	mimeType string
	text     string
}

// Catalog is the immutable resource catalog: the ordered descriptor list and the static payload table.
type Catalog struct {
	resources []api.Resource
	static    map[string]staticEntry
}

// NewCatalog builds the catalog from the embedded content.
// It fails on duplicate URIs or missing payloads.
func NewCatalog() (*Catalog, error) {
	return newCatalog(descriptors, content)
}

func newCatalog(descs []descriptor, fsys fs.FS) (*Catalog, error) {
	c := &Catalog{
		resources: make([]api.Resource, 0, len(descs)),
		static:    make(map[string]staticEntry),
	}
	seen := make(map[string]struct{}, len(descs))
	for _, d := range descs {
		if !strings.HasPrefix(d.URI, Scheme) {
			return nil, fmt.Errorf("resource %s does not use the %s scheme", d.URI, Scheme)
		}
		if _, ok := seen[d.URI]; ok {
			return nil, fmt.Errorf("duplicate resource URI %s", d.URI)
		}
		seen[d.URI] = struct{}{}
		if d.file != "" {
			data, err := fs.ReadFile(fsys, path.Join("content", d.file))
			if err != nil {
				return nil, fmt.Errorf("failed to load content for %s: %w", d.URI, err)
			}
			if len(data) == 0 {
				return nil, fmt.Errorf("empty content for %s", d.URI)
			}
			c.static[d.URI] = staticEntry{mimeType: d.MIMEType, text: string(data)}
		}
		c.resources = append(c.resources, d.Resource)
	}
	return c, nil
}

// MustCatalog is NewCatalog for the embedded content, which is fixed at build time.
func MustCatalog() *Catalog {
	c, err := NewCatalog()
	if err != nil {
		panic(err)
	}
	return c
}

// Resources returns a copy of the descriptors in catalog order.
func (c *Catalog) Resources() []api.Resource {
	return append([]api.Resource(nil), c.resources...)
}

// Templates returns the resource templates resolvable by the router.
func (c *Catalog) Templates() []api.ResourceTemplate {
	return append([]api.ResourceTemplate(nil), templates...)
}

func (c *Catalog) lookup(uri string) (staticEntry, bool) {
	e, ok := c.static[uri]
	return e, ok
}
