package kubernetes

import (
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
)

const inClusterContext = "in-cluster"

// InClusterConfig resolves the service account configuration of the pod.
// Replaced in tests.
var InClusterConfig = func() (*rest.Config, error) {
	inClusterConfig, err := rest.InClusterConfig()
	if inClusterConfig != nil {
		inClusterConfig.Host = "https://kubernetes.default.svc"
	}
	return inClusterConfig, err
}

// resolveConfig sets the rest.Config of the Manager.
// An explicit kubeconfig always wins over the in-cluster service account; otherwise the
// standard loading rules apply (KUBECONFIG, then ~/.kube/config).
func (m *Manager) resolveConfig() error {
	loadingRules := clientcmd.NewDefaultClientConfigLoadingRules()
	loadingRules.ExplicitPath = m.kubeconfig
	m.clientCmdConfig = clientcmd.NewNonInteractiveDeferredLoadingClientConfig(loadingRules, &clientcmd.ConfigOverrides{})

	if m.IsInCluster() {
		if cfg, err := InClusterConfig(); err == nil && cfg != nil {
			m.cfg = cfg
			return nil
		}
	}
	cfg, err := m.clientCmdConfig.ClientConfig()
	if err != nil {
		return err
	}
	m.cfg = cfg
	return nil
}

func (m *Manager) IsInCluster() bool {
	if m.kubeconfig != "" {
		return false
	}
	cfg, err := InClusterConfig()
	return err == nil && cfg != nil
}

// ToRESTConfig returns the resolved rest.Config
func (m *Manager) ToRESTConfig() (*rest.Config, error) {
	return m.cfg, nil
}

// CurrentContext names the kubeconfig context in use, or "in-cluster" for the service account.
func (m *Manager) CurrentContext() string {
	if m.IsInCluster() || m.clientCmdConfig == nil {
		return inClusterContext
	}
	rawConfig, err := m.clientCmdConfig.RawConfig()
	if err != nil {
		return ""
	}
	return rawConfig.CurrentContext
}
