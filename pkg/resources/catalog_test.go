package resources

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/suite"

	"github.com/eda-labs/k8s-eda-mcp-server/pkg/api"
)

type CatalogSuite struct {
	suite.Suite
	catalog *Catalog
}

func (s *CatalogSuite) SetupTest() {
	var err error
	s.catalog, err = NewCatalog()
	s.Require().NoError(err)
}

func (s *CatalogSuite) TestResources() {
	resources := s.catalog.Resources()
	s.Run("lists generic and EDA resources", func() {
		s.Len(resources, 17)
		s.Equal("k8s://default/pods", resources[0].URI)
		s.Equal("k8s://troubleshooting/evpn-connectivity", resources[len(resources)-1].URI)
	})
	s.Run("URIs are unique", func() {
		seen := map[string]bool{}
		for _, r := range resources {
			s.False(seen[r.URI], "duplicate %s", r.URI)
			seen[r.URI] = true
		}
	})
	s.Run("descriptors are complete", func() {
		for _, r := range resources {
			s.NotEmpty(r.Name, r.URI)
			s.NotEmpty(r.Description, r.URI)
			s.Contains([]string{api.MIMETypeJSON, api.MIMETypeMarkdown, api.MIMETypeYAML}, r.MIMEType, r.URI)
		}
	})
	s.Run("order is deterministic", func() {
		s.Equal(resources, s.catalog.Resources())
	})
	s.Run("returned slice is a copy", func() {
		resources[0].Name = "changed"
		s.Equal("Kubernetes Pods", s.catalog.Resources()[0].Name)
	})
}

func (s *CatalogSuite) TestStaticTable() {
	for _, r := range s.catalog.Resources() {
		if strings.HasSuffix(r.MIMEType, "json") {
			_, ok := s.catalog.lookup(r.URI)
			s.False(ok, "live resource %s must not be static", r.URI)
			continue
		}
		entry, ok := s.catalog.lookup(r.URI)
		s.Require().True(ok, r.URI)
		s.Equal(r.MIMEType, entry.mimeType)
		s.NotEmpty(entry.text)
	}
}

func (s *CatalogSuite) TestTemplates() {
	tmpls := s.catalog.Templates()
	s.Require().Len(tmpls, 4)
	s.Equal("k8s://{namespace}/pods", tmpls[0].URITemplate)
	s.Equal("k8s://crds/{name}/openapi", tmpls[3].URITemplate)
}

func (s *CatalogSuite) TestNewCatalogErrors() {
	fsys := fstest.MapFS{
		"content/workflows/a.md": {Data: []byte("# A")},
		"content/workflows/b.md": {Data: []byte{}},
	}
	workflow := func(uri, file string) descriptor {
		return descriptor{file: file, Resource: api.Resource{URI: uri, Name: uri, MIMEType: api.MIMETypeMarkdown}}
	}
	s.Run("valid", func() {
		c, err := newCatalog([]descriptor{workflow("k8s://workflows/a", "workflows/a.md")}, fsys)
		s.Require().NoError(err)
		s.Len(c.Resources(), 1)
	})
	s.Run("duplicate URI", func() {
		_, err := newCatalog([]descriptor{
			workflow("k8s://workflows/a", "workflows/a.md"),
			workflow("k8s://workflows/a", "workflows/a.md"),
		}, fsys)
		s.ErrorContains(err, "duplicate resource URI k8s://workflows/a")
	})
	s.Run("missing file", func() {
		_, err := newCatalog([]descriptor{workflow("k8s://workflows/c", "workflows/c.md")}, fsys)
		s.ErrorContains(err, "failed to load content for k8s://workflows/c")
	})
	s.Run("empty file", func() {
		_, err := newCatalog([]descriptor{workflow("k8s://workflows/b", "workflows/b.md")}, fsys)
		s.ErrorContains(err, "empty content")
	})
	s.Run("wrong scheme", func() {
		_, err := newCatalog([]descriptor{workflow("eda://workflows/a", "workflows/a.md")}, fsys)
		s.ErrorContains(err, "does not use the k8s:// scheme")
	})
}

func TestCatalog(t *testing.T) {
	suite.Run(t, new(CatalogSuite))
}
