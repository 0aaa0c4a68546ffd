package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"k8s.io/cli-runtime/pkg/genericiooptions"
	"k8s.io/klog/v2"
	"k8s.io/klog/v2/textlogger"

	"github.com/eda-labs/k8s-eda-mcp-server/pkg/api"
	"github.com/eda-labs/k8s-eda-mcp-server/pkg/config"
	internalhttp "github.com/eda-labs/k8s-eda-mcp-server/pkg/http"
	"github.com/eda-labs/k8s-eda-mcp-server/pkg/kubernetes"
	"github.com/eda-labs/k8s-eda-mcp-server/pkg/mcp"
	"github.com/eda-labs/k8s-eda-mcp-server/pkg/metrics"
	"github.com/eda-labs/k8s-eda-mcp-server/pkg/output"
	"github.com/eda-labs/k8s-eda-mcp-server/pkg/resources"
	"github.com/eda-labs/k8s-eda-mcp-server/pkg/telemetry"
	"github.com/eda-labs/k8s-eda-mcp-server/pkg/toolsets"
	"github.com/eda-labs/k8s-eda-mcp-server/pkg/version"
)

var (
	long = `Kubernetes Model Context Protocol (MCP) server for Nokia EDA

  Serves EDA workflows, configuration templates, the resource dependency hierarchy and
  troubleshooting guides as MCP resources, together with live read-only cluster listings.`

	examples = `
# show this help
k8s-eda-mcp-server -h

# shows version information
k8s-eda-mcp-server --version

# start a stdio server
k8s-eda-mcp-server

# start a streamable HTTP server on port 8080
k8s-eda-mcp-server --port 8080

# start a stdio server with the EDA toolset only, reading the cluster from a custom kubeconfig
k8s-eda-mcp-server --toolsets eda --kubeconfig ~/.kube/eda-config`
)

const (
	flagVersion                = "version"
	flagLogLevel               = "log-level"
	flagConfig                 = "config"
	flagPort                   = "port"
	flagKubeconfig             = "kubeconfig"
	flagListOutput             = "list-output"
	flagToolsets               = "toolsets"
	flagDisableEmbeddedPrompts = "disable-embedded-prompts"
)

type MCPServerOptions struct {
	Version                bool
	LogLevel               int
	Port                   string
	Kubeconfig             string
	ListOutput             string
	Toolsets               []string
	DisableEmbeddedPrompts bool

	ConfigPath   string
	StaticConfig *config.StaticConfig

	fs afero.Fs
	genericiooptions.IOStreams
}

func NewMCPServerOptions(streams genericiooptions.IOStreams) *MCPServerOptions {
	return &MCPServerOptions{
		IOStreams:    streams,
		StaticConfig: config.Default(),
		fs:           afero.NewOsFs(),
	}
}

func NewMCPServer(streams genericiooptions.IOStreams) *cobra.Command {
	return newMCPServerCommand(NewMCPServerOptions(streams))
}

func newMCPServerCommand(o *MCPServerOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     version.BinaryName + " [command] [options]",
		Short:   "Kubernetes Model Context Protocol (MCP) server for Nokia EDA",
		Long:    long,
		Example: examples,
		RunE: func(c *cobra.Command, args []string) error {
			if err := o.Complete(c); err != nil {
				return err
			}
			if err := o.Validate(); err != nil {
				return err
			}
			return o.Run(c.Context())
		},
	}
	cmd.SetIn(o.In)
	cmd.SetOut(o.Out)
	cmd.SetErr(o.ErrOut)

	cmd.Flags().BoolVar(&o.Version, flagVersion, o.Version, "Print version information and quit")
	cmd.Flags().IntVar(&o.LogLevel, flagLogLevel, o.LogLevel, "Set the log level (from 0 to 9)")
	cmd.Flags().StringVar(&o.ConfigPath, flagConfig, o.ConfigPath, "Path of the config file (TOML)")
	cmd.Flags().StringVar(&o.Port, flagPort, o.Port, "Start a streamable HTTP server on the specified port (e.g. 8080); stdio is used when unset")
	cmd.Flags().StringVar(&o.Kubeconfig, flagKubeconfig, o.Kubeconfig, "Path to the kubeconfig file to use for authentication")
	cmd.Flags().StringVar(&o.ListOutput, flagListOutput, o.StaticConfig.ListOutput, "Output format for resource list operations (one of: "+strings.Join(output.Names, ", ")+")")
	cmd.Flags().StringSliceVar(&o.Toolsets, flagToolsets, o.StaticConfig.Toolsets, "Comma-separated list of MCP toolsets to use (available toolsets: "+strings.Join(toolsets.ToolsetNames(), ", ")+")")
	cmd.Flags().BoolVar(&o.DisableEmbeddedPrompts, flagDisableEmbeddedPrompts, o.DisableEmbeddedPrompts, "Only serve the prompts defined in the config file")

	return cmd
}

// Complete loads the config file, if any, and applies the flags explicitly set on the command line on top of it.
func (m *MCPServerOptions) Complete(cmd *cobra.Command) error {
	if m.ConfigPath != "" {
		cnf, err := config.Read(m.fs, m.ConfigPath)
		if err != nil {
			return err
		}
		m.StaticConfig = cnf
	}

	m.loadFlags(cmd)
	m.initializeLogging()
	return nil
}

func (m *MCPServerOptions) loadFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	if flags.Changed(flagLogLevel) {
		m.StaticConfig.LogLevel = m.LogLevel
	}
	if flags.Changed(flagPort) {
		m.StaticConfig.Port = m.Port
	}
	if flags.Changed(flagKubeconfig) {
		m.StaticConfig.KubeConfig = m.Kubeconfig
	}
	if flags.Changed(flagListOutput) {
		m.StaticConfig.ListOutput = m.ListOutput
	}
	if flags.Changed(flagToolsets) {
		m.StaticConfig.Toolsets = m.Toolsets
	}
	if flags.Changed(flagDisableEmbeddedPrompts) {
		m.StaticConfig.DisableEmbeddedPrompts = m.DisableEmbeddedPrompts
	}
}

// initializeLogging routes klog to the error stream, stdout carries the stdio transport.
func (m *MCPServerOptions) initializeLogging() {
	flagSet := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(flagSet)
	loggerOptions := []textlogger.ConfigOption{textlogger.Output(m.ErrOut)}
	if m.StaticConfig.LogLevel >= 0 {
		loggerOptions = append(loggerOptions, textlogger.Verbosity(m.StaticConfig.LogLevel))
		_ = flagSet.Parse([]string{"--v", strconv.Itoa(m.StaticConfig.LogLevel)})
	}
	logger := textlogger.NewLogger(textlogger.NewConfig(loggerOptions...))
	klog.SetLoggerWithOptions(logger)
}

func (m *MCPServerOptions) Validate() error {
	if m.Version {
		return nil
	}
	if err := m.StaticConfig.Validate(); err != nil {
		return err
	}
	return toolsets.Validate(m.StaticConfig.Toolsets)
}

func (m *MCPServerOptions) Run(ctx context.Context) error {
	if m.Version {
		_, _ = fmt.Fprintf(m.Out, "%s\n", version.Version)
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	klog.V(1).Info("Starting " + version.BinaryName)
	klog.V(1).Infof(" - Config: %s", m.ConfigPath)
	klog.V(1).Infof(" - Toolsets: %s", strings.Join(m.StaticConfig.Toolsets, ", "))
	klog.V(1).Infof(" - ListOutput: %s", m.StaticConfig.ListOutput)

	cleanupTracing, err := telemetry.InitTracer(ctx, version.BinaryName, version.Version)
	if err != nil {
		klog.Warningf("OpenTelemetry tracing unavailable: %v", err)
	}
	defer cleanupTracing()

	configuration, err := mcp.NewConfiguration(m.StaticConfig)
	if err != nil {
		return err
	}

	reader := m.clusterReader()
	collector := metrics.NewCollector()
	mcpServer, err := mcp.NewServer(configuration, resources.NewRouter(reader), reader, collector)
	if err != nil {
		return fmt.Errorf("failed to initialize MCP server: %w", err)
	}
	klog.V(1).Infof(" - Tools: %s", strings.Join(mcpServer.GetEnabledTools(), ", "))
	klog.V(1).Infof(" - Prompts: %s", strings.Join(mcpServer.GetEnabledPrompts(), ", "))

	if m.StaticConfig.Port != "" {
		return internalhttp.Serve(ctx, mcpServer, m.StaticConfig, collector)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := mcpServer.ServeStdio(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// clusterReader returns nil when no cluster configuration can be resolved, keeping the static catalog available.
func (m *MCPServerOptions) clusterReader() api.ClusterReader {
	manager, err := kubernetes.NewManager(m.StaticConfig)
	if err != nil {
		klog.Warningf("Kubernetes cluster access unavailable, serving static resources only: %v", err)
		return nil
	}
	if restConfig, err := manager.ToRESTConfig(); err == nil {
		klog.V(1).Infof(" - Kubernetes API server: %s (context: %s)", restConfig.Host, manager.CurrentContext())
	}
	return manager
}
