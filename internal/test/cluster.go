package test

import (
	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
	apiextensionsfake "k8s.io/apiextensions-apiserver/pkg/client/clientset/clientset/fake"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/kubernetes/fake"

	"github.com/eda-labs/k8s-eda-mcp-server/pkg/kubernetes"
)

// NewFakeManager returns a Manager backed by fake clientsets seeded with objects.
// CustomResourceDefinitions go to the apiextensions clientset, everything else to the core one.
func NewFakeManager(objects ...runtime.Object) *kubernetes.Manager {
	var core, crds []runtime.Object
	for _, obj := range objects {
		if _, ok := obj.(*apiextensionsv1.CustomResourceDefinition); ok {
			crds = append(crds, obj)
		} else {
			core = append(core, obj)
		}
	}
	return kubernetes.NewForTesting(fake.NewClientset(core...), apiextensionsfake.NewSimpleClientset(crds...))
}

func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
