package kubernetes

import (
	"errors"
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/client-go/rest"

	"github.com/eda-labs/k8s-eda-mcp-server/pkg/config"
	"github.com/eda-labs/k8s-eda-mcp-server/pkg/version"
)

const testKubeconfig = `
apiVersion: v1
kind: Config
clusters:
- cluster:
    server: https://eda-cluster.example.com
  name: eda-cluster
contexts:
- context:
    cluster: eda-cluster
    user: eda-user
  name: eda-context
current-context: eda-context
users:
- name: eda-user
  user:
    token: test-token
`

func withInClusterConfig(t *testing.T, fn func() (*rest.Config, error)) {
	originalFunction := InClusterConfig
	InClusterConfig = fn
	t.Cleanup(func() {
		InClusterConfig = originalFunction
	})
}

func TestManager_IsInCluster(t *testing.T) {
	t.Run("with explicit kubeconfig", func(t *testing.T) {
		m := Manager{kubeconfig: "kubeconfig"}
		assert.False(t, m.IsInCluster())
	})
	t.Run("with empty kubeconfig and in cluster", func(t *testing.T) {
		withInClusterConfig(t, func() (*rest.Config, error) {
			return &rest.Config{}, nil
		})
		m := Manager{}
		assert.True(t, m.IsInCluster())
	})
	t.Run("with empty kubeconfig and not in cluster (empty)", func(t *testing.T) {
		withInClusterConfig(t, func() (*rest.Config, error) {
			return nil, nil
		})
		m := Manager{}
		assert.False(t, m.IsInCluster())
	})
	t.Run("with empty kubeconfig and not in cluster (error)", func(t *testing.T) {
		withInClusterConfig(t, func() (*rest.Config, error) {
			return nil, errors.New("error")
		})
		m := Manager{}
		assert.False(t, m.IsInCluster())
	})
}

func TestNewManager(t *testing.T) {
	kubeconfigPath := path.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(kubeconfigPath, []byte(testKubeconfig), 0o600))

	t.Run("resolves the explicit kubeconfig", func(t *testing.T) {
		m, err := NewManager(&config.StaticConfig{KubeConfig: kubeconfigPath})
		require.NoError(t, err)
		restConfig, err := m.ToRESTConfig()
		require.NoError(t, err)
		assert.Equal(t, "https://eda-cluster.example.com", restConfig.Host)
		assert.Equal(t, "test-token", restConfig.BearerToken)
		assert.Equal(t, version.BinaryName+"/"+version.Version, restConfig.UserAgent)
		assert.Equal(t, "eda-context", m.CurrentContext())
	})
	t.Run("prefers the in-cluster config without kubeconfig", func(t *testing.T) {
		withInClusterConfig(t, func() (*rest.Config, error) {
			return &rest.Config{Host: "https://kubernetes.default.svc"}, nil
		})
		m, err := NewManager(&config.StaticConfig{})
		require.NoError(t, err)
		assert.Equal(t, "https://kubernetes.default.svc", m.cfg.Host)
		assert.Equal(t, "in-cluster", m.CurrentContext())
	})
	t.Run("explicit kubeconfig wins over in-cluster config", func(t *testing.T) {
		withInClusterConfig(t, func() (*rest.Config, error) {
			return &rest.Config{Host: "https://kubernetes.default.svc"}, nil
		})
		m, err := NewManager(&config.StaticConfig{KubeConfig: kubeconfigPath})
		require.NoError(t, err)
		assert.False(t, m.IsInCluster())
		assert.Equal(t, "https://eda-cluster.example.com", m.cfg.Host)
	})
	t.Run("fails with a missing kubeconfig", func(t *testing.T) {
		_, err := NewManager(&config.StaticConfig{KubeConfig: path.Join(t.TempDir(), "missing")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to resolve kubernetes configuration")
	})
	t.Run("fails without config", func(t *testing.T) {
		_, err := NewManager(nil)
		require.Error(t, err)
	})
}
