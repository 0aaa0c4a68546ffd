package telemetry

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

type TelemetrySuite struct {
	suite.Suite
}

func (s *TelemetrySuite) TestDisabledWithoutEndpoint() {
	s.T().Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	s.T().Setenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", "")
	previous := otel.GetTracerProvider()

	cleanup, err := InitTracer(s.T().Context(), "k8s-eda-mcp-server", "0.0.0")
	s.Require().NoError(err)
	s.NotPanics(cleanup)
	s.Equal(previous, otel.GetTracerProvider(), "global provider should be left untouched")
}

func (s *TelemetrySuite) TestEnabledWithEndpoint() {
	s.T().Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://127.0.0.1:4318")
	previous := otel.GetTracerProvider()
	defer otel.SetTracerProvider(previous)

	cleanup, err := InitTracer(s.T().Context(), "k8s-eda-mcp-server", "0.0.0")
	s.Require().NoError(err)
	defer cleanup()
	s.IsType(&sdktrace.TracerProvider{}, otel.GetTracerProvider())
}

func TestTelemetry(t *testing.T) {
	suite.Run(t, new(TelemetrySuite))
}
