package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"

	"github.com/eda-labs/k8s-eda-mcp-server/pkg/config"
	"github.com/eda-labs/k8s-eda-mcp-server/pkg/mcp"
	"github.com/eda-labs/k8s-eda-mcp-server/pkg/metrics"
)

const (
	defaultHealthEndpoint  = "/healthz"
	defaultMcpEndpoint     = "/mcp"
	defaultMetricsEndpoint = "/metrics"

	shutdownTimeout = 10 * time.Second
)

// getEndpointOrDefault returns the endpoint value, otherwise returns the default value.
func getEndpointOrDefault(configValue, defaultValue string) string {
	if configValue != "" {
		return configValue
	}
	return defaultValue
}

// Handler builds the HTTP surface: the streamable MCP endpoint, health probe and Prometheus metrics.
func Handler(mcpServer *mcp.Server, staticConfig *config.StaticConfig, collector *metrics.Collector) http.Handler {
	healthEndpoint := getEndpointOrDefault(staticConfig.HealthEndpoint, defaultHealthEndpoint)
	mcpEndpoint := getEndpointOrDefault(staticConfig.StreamableHttpEndpoint, defaultMcpEndpoint)
	metricsEndpoint := getEndpointOrDefault(staticConfig.MetricsEndpoint, defaultMetricsEndpoint)

	mux := http.NewServeMux()
	mux.Handle(mcpEndpoint, mcpServer.ServeHTTP())
	mux.HandleFunc(healthEndpoint, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.Handle(metricsEndpoint, collector.Handler())

	return RequestMiddleware(collector, mcpEndpoint, healthEndpoint, metricsEndpoint)(
		CORSMiddleware(staticConfig.CORS)(mux),
	)
}

// Serve listens on the configured port until ctx is cancelled or a termination signal arrives,
// then drains in-flight requests.
func Serve(ctx context.Context, mcpServer *mcp.Server, staticConfig *config.StaticConfig, collector *metrics.Collector) error {
	listener, err := net.Listen("tcp", ":"+staticConfig.Port)
	if err != nil {
		return err
	}
	return serve(ctx, listener, Handler(mcpServer, staticConfig, collector))
}

func serve(ctx context.Context, listener net.Listener, handler http.Handler) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGHUP, syscall.SIGTERM)
	defer stop()

	httpServer := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		klog.V(0).Infof("Streamable HTTP server starting on %s", listener.Addr())
		if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			klog.Errorf("HTTP server error: %v", err)
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		klog.V(0).Infof("Shutting down HTTP server gracefully...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			klog.Errorf("HTTP server shutdown error: %v", err)
			return err
		}
		klog.V(0).Infof("HTTP server shutdown complete")
		return nil
	})
	return g.Wait()
}
