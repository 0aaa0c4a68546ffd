package kubernetes

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
	apiextensionsfake "k8s.io/apiextensions-apiserver/pkg/client/clientset/clientset/fake"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/kubernetes/fake"
	k8stesting "k8s.io/client-go/testing"

	"github.com/eda-labs/k8s-eda-mcp-server/pkg/api"
)

type ListSuite struct {
	suite.Suite
	clientSet *fake.Clientset
	manager   *Manager
}

func (s *ListSuite) SetupTest() {
	s.clientSet = fake.NewClientset(
		&corev1.Namespace{ObjectMeta: metav1.ObjectMeta{Name: "default"}},
		&corev1.Namespace{ObjectMeta: metav1.ObjectMeta{Name: "eda-system"}},
		&corev1.Node{ObjectMeta: metav1.ObjectMeta{Name: "leaf1"}},
		&corev1.Pod{ObjectMeta: metav1.ObjectMeta{Name: "eda-api", Namespace: "eda-system"}},
		&corev1.Service{ObjectMeta: metav1.ObjectMeta{Name: "eda-api", Namespace: "eda-system"}},
		&appsv1.Deployment{ObjectMeta: metav1.ObjectMeta{Name: "eda-api", Namespace: "eda-system"}},
	)
	apiext := apiextensionsfake.NewSimpleClientset(&apiextensionsv1.CustomResourceDefinition{
		ObjectMeta: metav1.ObjectMeta{Name: "routers.services.eda.nokia.com"},
		Spec: apiextensionsv1.CustomResourceDefinitionSpec{
			Group: "services.eda.nokia.com",
			Names: apiextensionsv1.CustomResourceDefinitionNames{Kind: "Router"},
		},
	})
	s.manager = NewForTesting(s.clientSet, apiext)
}

func (s *ListSuite) TestListClusterScoped() {
	s.Run("namespaces", func() {
		items, err := s.manager.ListClusterScoped(context.Background(), api.KindNamespace)
		s.Require().NoError(err)
		s.Len(items.([]corev1.Namespace), 2)
	})
	s.Run("nodes", func() {
		items, err := s.manager.ListClusterScoped(context.Background(), api.KindNode)
		s.Require().NoError(err)
		s.Require().Len(items.([]corev1.Node), 1)
		s.Equal("leaf1", items.([]corev1.Node)[0].Name)
	})
	s.Run("unsupported kind", func() {
		_, err := s.manager.ListClusterScoped(context.Background(), "crd")
		s.Error(err)
	})
}

func (s *ListSuite) TestListNamespaceScoped() {
	s.Run("pods", func() {
		items, err := s.manager.ListNamespaceScoped(context.Background(), "eda-system", api.KindPods)
		s.Require().NoError(err)
		s.Len(items.([]corev1.Pod), 1)
	})
	s.Run("deployments", func() {
		items, err := s.manager.ListNamespaceScoped(context.Background(), "eda-system", api.KindDeployments)
		s.Require().NoError(err)
		s.Len(items.([]appsv1.Deployment), 1)
	})
	s.Run("services", func() {
		items, err := s.manager.ListNamespaceScoped(context.Background(), "eda-system", api.KindServices)
		s.Require().NoError(err)
		s.Len(items.([]corev1.Service), 1)
	})
	s.Run("empty namespace returns a non-nil empty list", func() {
		items, err := s.manager.ListNamespaceScoped(context.Background(), "default", api.KindPods)
		s.Require().NoError(err)
		s.NotNil(items.([]corev1.Pod))
		s.Empty(items.([]corev1.Pod))
	})
	s.Run("backend failure is returned", func() {
		s.clientSet.PrependReactor("list", "pods", func(action k8stesting.Action) (bool, runtime.Object, error) {
			return true, nil, errors.New("connection refused")
		})
		_, err := s.manager.ListNamespaceScoped(context.Background(), "eda-system", api.KindPods)
		s.ErrorContains(err, "connection refused")
	})
}

func (s *ListSuite) TestGetCustomResourceDefinition() {
	s.Run("existing", func() {
		crd, err := s.manager.GetCustomResourceDefinition(context.Background(), "routers.services.eda.nokia.com")
		s.Require().NoError(err)
		s.Equal("Router", crd.Spec.Names.Kind)
	})
	s.Run("missing", func() {
		_, err := s.manager.GetCustomResourceDefinition(context.Background(), "missing.eda.nokia.com")
		s.True(apierrors.IsNotFound(err))
	})
}

func TestList(t *testing.T) {
	suite.Run(t, new(ListSuite))
}
