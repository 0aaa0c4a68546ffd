package kubernetes

import (
	"errors"
	"fmt"

	apiextensionsclientset "k8s.io/apiextensions-apiserver/pkg/client/clientset/clientset"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"

	"github.com/eda-labs/k8s-eda-mcp-server/pkg/api"
	"github.com/eda-labs/k8s-eda-mcp-server/pkg/config"
	"github.com/eda-labs/k8s-eda-mcp-server/pkg/version"
)

// Manager owns the cluster clients and serves the read-only queries of api.ClusterReader.
type Manager struct {
	kubeconfig      string
	cfg             *rest.Config
	clientCmdConfig clientcmd.ClientConfig
	clientSet       kubernetes.Interface
	apiextensions   apiextensionsclientset.Interface
}

var _ api.ClusterReader = &Manager{}

// NewManager resolves the cluster configuration and builds the clients.
// No request is made to the cluster until the first read.
func NewManager(staticConfig *config.StaticConfig) (*Manager, error) {
	if staticConfig == nil {
		return nil, errors.New("static config is required")
	}
	m := &Manager{kubeconfig: staticConfig.KubeConfig}
	if err := m.resolveConfig(); err != nil {
		return nil, fmt.Errorf("failed to resolve kubernetes configuration: %w", err)
	}
	m.cfg.UserAgent = fmt.Sprintf("%s/%s", version.BinaryName, version.Version)
	var err error
	if m.clientSet, err = kubernetes.NewForConfig(m.cfg); err != nil {
		return nil, fmt.Errorf("failed to create kubernetes clientset: %w", err)
	}
	if m.apiextensions, err = apiextensionsclientset.NewForConfig(m.cfg); err != nil {
		return nil, fmt.Errorf("failed to create apiextensions clientset: %w", err)
	}
	return m, nil
}

// NewForTesting wraps prebuilt clients, typically the fake clientsets.
func NewForTesting(clientSet kubernetes.Interface, apiextensions apiextensionsclientset.Interface) *Manager {
	return &Manager{clientSet: clientSet, apiextensions: apiextensions}
}
