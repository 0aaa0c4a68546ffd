package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"k8s.io/klog/v2"

	"github.com/eda-labs/k8s-eda-mcp-server/pkg/api"
	"github.com/eda-labs/k8s-eda-mcp-server/pkg/config"
	"github.com/eda-labs/k8s-eda-mcp-server/pkg/metrics"
	"github.com/eda-labs/k8s-eda-mcp-server/pkg/output"
	"github.com/eda-labs/k8s-eda-mcp-server/pkg/toolsets"
	"github.com/eda-labs/k8s-eda-mcp-server/pkg/version"
)

// ResourceProvider is the resource router together with its protocol registrations.
type ResourceProvider interface {
	api.ResourceRouter
	ServerResources() []api.ServerResource
	ServerResourceTemplates() []api.ServerResourceTemplate
}

type Configuration struct {
	*config.StaticConfig
	listOutput output.Output
	toolsets   []api.Toolset
}

func NewConfiguration(staticConfig *config.StaticConfig) (*Configuration, error) {
	if staticConfig == nil {
		return nil, errors.New("static config is required")
	}
	listOutput := output.FromString(staticConfig.ListOutput)
	if listOutput == nil {
		return nil, fmt.Errorf("invalid output name: %s, valid names are: %s", staticConfig.ListOutput, strings.Join(output.Names, ", "))
	}
	resolved, err := toolsets.Resolve(staticConfig.Toolsets)
	if err != nil {
		return nil, err
	}
	return &Configuration{
		StaticConfig: staticConfig,
		listOutput:   listOutput,
		toolsets:     resolved,
	}, nil
}

func (c *Configuration) Toolsets() []api.Toolset {
	return c.toolsets
}

func (c *Configuration) ListOutput() output.Output {
	return c.listOutput
}

func (c *Configuration) isToolApplicable(tool api.ServerTool) bool {
	return CompositeFilter(
		ShouldIncludeEnabledTool(c.EnabledTools),
		ShouldExcludeDisabledTool(c.DisabledTools),
	)(tool)
}

type Server struct {
	configuration  *Configuration
	server         *mcp.Server
	resources      ResourceProvider
	reader         api.ClusterReader
	metrics        *metrics.Collector
	enabledTools   []string
	enabledPrompts []string
}

// NewServer registers the resource catalog, the prompts and the tools of the configured toolsets.
// A nil reader keeps the server usable for static content only.
func NewServer(configuration *Configuration, resources ResourceProvider, reader api.ClusterReader, collector *metrics.Collector) (*Server, error) {
	if configuration == nil {
		return nil, errors.New("configuration is required")
	}
	if resources == nil {
		return nil, errors.New("resource provider is required")
	}
	if collector == nil {
		collector = metrics.NewCollector()
	}
	s := &Server{
		configuration: configuration,
		resources:     resources,
		reader:        reader,
		metrics:       collector,
	}
	s.server = mcp.NewServer(
		&mcp.Implementation{
			Name:    version.BinaryName,
			Version: version.Version,
		},
		&mcp.ServerOptions{
			Instructions: buildServerInstructions(configuration.ServerInstructions, configuration.Toolsets()),
		},
	)
	s.server.AddReceivingMiddleware(requestLoggingMiddleware)

	s.registerResources()
	s.registerPrompts()
	s.registerTools()
	return s, nil
}

func (s *Server) registerResources() {
	for _, resource := range s.resources.ServerResources() {
		goSdkResource, handler := ServerResourceToGoSdkResource(s, resource)
		s.server.AddResource(goSdkResource, handler)
	}
	for _, template := range s.resources.ServerResourceTemplates() {
		goSdkTemplate, handler := ServerResourceTemplateToGoSdkResourceTemplate(s, template)
		s.server.AddResourceTemplate(goSdkTemplate, handler)
	}
}

// registerPrompts adds the embedded toolset prompts and then the configured ones.
// A configured prompt replaces an embedded prompt with the same name.
func (s *Server) registerPrompts() {
	var prompts []api.ServerPrompt
	if !s.configuration.DisableEmbeddedPrompts {
		for _, toolset := range s.configuration.Toolsets() {
			prompts = append(prompts, toolset.GetPrompts()...)
		}
	}
	prompts = append(prompts, api.NewPromptLoader(s.configuration.Prompts...).GetServerPrompts()...)

	for _, prompt := range prompts {
		goSdkPrompt, handler := ServerPromptToGoSdkPrompt(s, prompt)
		s.server.AddPrompt(goSdkPrompt, handler)
		if !slices.Contains(s.enabledPrompts, prompt.Prompt.Name) {
			s.enabledPrompts = append(s.enabledPrompts, prompt.Prompt.Name)
		}
	}
}

func (s *Server) registerTools() {
	for _, toolset := range s.configuration.Toolsets() {
		for _, tool := range toolset.GetTools() {
			if !s.configuration.isToolApplicable(tool) {
				continue
			}
			goSdkTool, handler := ServerToolToGoSdkTool(s, tool)
			s.server.AddTool(goSdkTool, handler)
			s.enabledTools = append(s.enabledTools, tool.Tool.Name)
		}
	}
}

// GetEnabledTools returns the names of the registered tools
func (s *Server) GetEnabledTools() []string {
	return s.enabledTools
}

// GetEnabledPrompts returns the names of the registered prompts
func (s *Server) GetEnabledPrompts() []string {
	return s.enabledPrompts
}

// Connect attaches the server to an arbitrary transport, used by in-process clients.
func (s *Server) Connect(ctx context.Context, transport mcp.Transport) (*mcp.ServerSession, error) {
	return s.server.Connect(ctx, transport, nil)
}

func (s *Server) ServeStdio(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

func (s *Server) ServeHTTP() *mcp.StreamableHTTPHandler {
	return mcp.NewStreamableHTTPHandler(func(request *http.Request) *mcp.Server {
		return s.server
	}, nil)
}

func requestLoggingMiddleware(next mcp.MethodHandler) mcp.MethodHandler {
	return func(ctx context.Context, method string, req mcp.Request) (mcp.Result, error) {
		start := time.Now()
		result, err := next(ctx, method, req)
		if err != nil {
			klog.V(3).InfoS("mcp request failed", "method", method, "duration", time.Since(start), "error", err.Error())
		} else {
			klog.V(4).InfoS("mcp request", "method", method, "duration", time.Since(start))
		}
		return result, err
	}
}

// buildServerInstructions appends a section per toolset with instructions to the configured server instructions.
func buildServerInstructions(serverInstructions string, toolsets []api.Toolset) string {
	var sections []string
	if strings.TrimSpace(serverInstructions) != "" {
		sections = append(sections, serverInstructions)
	}
	for _, toolset := range toolsets {
		instructions := strings.TrimSpace(toolset.GetToolsetInstructions())
		if instructions == "" {
			continue
		}
		sections = append(sections, fmt.Sprintf("## %s\n\n%s", toolset.GetName(), instructions))
	}
	return strings.Join(sections, "\n\n")
}
