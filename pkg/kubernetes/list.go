package kubernetes

import (
	"context"
	"fmt"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/eda-labs/k8s-eda-mcp-server/pkg/api"
)

// ListClusterScoped returns the items of a cluster-scoped list. An empty list is never nil.
func (m *Manager) ListClusterScoped(ctx context.Context, kind api.ClusterScopedKind) (any, error) {
	switch kind {
	case api.KindNamespace:
		list, err := m.clientSet.CoreV1().Namespaces().List(ctx, metav1.ListOptions{})
		if err != nil {
			return nil, err
		}
		return nonNil(list.Items), nil
	case api.KindNode:
		list, err := m.clientSet.CoreV1().Nodes().List(ctx, metav1.ListOptions{})
		if err != nil {
			return nil, err
		}
		return nonNil(list.Items), nil
	}
	return nil, fmt.Errorf("unsupported cluster-scoped kind %q", kind)
}

// ListNamespaceScoped returns the items of a namespaced list for the given namespace.
// A namespace that does not exist yields an empty list, matching the API server.
func (m *Manager) ListNamespaceScoped(ctx context.Context, namespace string, kind api.NamespacedKind) (any, error) {
	switch kind {
	case api.KindPods:
		list, err := m.clientSet.CoreV1().Pods(namespace).List(ctx, metav1.ListOptions{})
		if err != nil {
			return nil, err
		}
		return nonNil(list.Items), nil
	case api.KindDeployments:
		list, err := m.clientSet.AppsV1().Deployments(namespace).List(ctx, metav1.ListOptions{})
		if err != nil {
			return nil, err
		}
		return nonNil(list.Items), nil
	case api.KindServices:
		list, err := m.clientSet.CoreV1().Services(namespace).List(ctx, metav1.ListOptions{})
		if err != nil {
			return nil, err
		}
		return nonNil(list.Items), nil
	}
	return nil, fmt.Errorf("unsupported namespaced kind %q", kind)
}

func (m *Manager) GetCustomResourceDefinition(ctx context.Context, name string) (*apiextensionsv1.CustomResourceDefinition, error) {
	return m.apiextensions.ApiextensionsV1().CustomResourceDefinitions().Get(ctx, name, metav1.GetOptions{})
}

func nonNil[T corev1.Namespace | corev1.Node | corev1.Pod | corev1.Service | appsv1.Deployment](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
