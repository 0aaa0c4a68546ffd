package config

import (
	"bytes"
	"fmt"
	"slices"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"

	"github.com/eda-labs/k8s-eda-mcp-server/pkg/api"
	"github.com/eda-labs/k8s-eda-mcp-server/pkg/output"
)

// StaticConfig is the configuration for the server.
// It allows to configure server specific settings and tools to be enabled or disabled.
type StaticConfig struct {
	LogLevel   int    `toml:"log_level,omitzero"`
	Port       string `toml:"port,omitempty"`
	KubeConfig string `toml:"kubeconfig,omitempty"`
	// ListOutput is the rendering used by the core list tools (json or yaml)
	ListOutput string `toml:"list_output,omitempty"`
	// Toolsets to expose, by name
	Toolsets []string `toml:"toolsets,omitempty"`
	// EnabledTools, when set, restricts the exposed tools to the listed names
	EnabledTools  []string `toml:"enabled_tools,omitempty"`
	DisabledTools []string `toml:"disabled_tools,omitempty"`
	// ServerInstructions is sent to clients in the initialize response
	ServerInstructions     string      `toml:"server_instructions,omitempty"`
	HealthEndpoint         string      `toml:"health_endpoint,omitempty"`
	StreamableHttpEndpoint string      `toml:"streamable_http_endpoint,omitempty"`
	MetricsEndpoint        string      `toml:"metrics_endpoint,omitempty"`
	CORS                   *CORSConfig `toml:"cors,omitempty"`
	// DisableEmbeddedPrompts hides the built-in prompts, leaving only the ones defined in Prompts
	DisableEmbeddedPrompts bool                   `toml:"disable_embedded_prompts,omitempty"`
	Prompts                []api.PromptDefinition `toml:"prompts,omitempty"`
}

// CORSConfig enables CORS headers on the HTTP transport for the listed origins.
type CORSConfig struct {
	Origins []string `toml:"origins,omitempty"`
	MaxAge  int      `toml:"max_age,omitzero"`
}

// Read reads the TOML configuration file at path from fs, applying it on top of the defaults.
func Read(fs afero.Fs, path string) (*StaticConfig, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return ReadToml(data)
}

// ReadToml parses TOML data on top of the defaults and validates the result.
func ReadToml(data []byte) (*StaticConfig, error) {
	cfg := Default()
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown config keys: %v", undecoded)
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that cannot be expressed in the TOML schema.
func (c *StaticConfig) Validate() error {
	if c.ListOutput != "" && !slices.Contains(output.Names, c.ListOutput) {
		return fmt.Errorf("invalid list_output %q, must be one of: %v", c.ListOutput, output.Names)
	}
	if c.Port != "" {
		if _, err := strconv.ParseUint(c.Port, 10, 16); err != nil {
			return fmt.Errorf("invalid port %q: %w", c.Port, err)
		}
	}
	if c.LogLevel < 0 {
		return fmt.Errorf("invalid log_level %d, must be non-negative", c.LogLevel)
	}
	for _, p := range c.Prompts {
		if p.Name == "" {
			return fmt.Errorf("prompt definitions require a name")
		}
	}
	return nil
}
