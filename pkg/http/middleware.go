package http

import (
	"net/http"
	"time"

	"k8s.io/klog/v2"

	"github.com/eda-labs/k8s-eda-mcp-server/pkg/metrics"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Flush keeps streamed MCP responses working behind the recorder.
func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// RequestMiddleware logs every request and records it in the collector.
// Paths outside the served endpoints share a single "other" label.
func RequestMiddleware(collector *metrics.Collector, endpoints ...string) func(http.Handler) http.Handler {
	known := make(map[string]struct{}, len(endpoints))
	for _, e := range endpoints {
		known[e] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(recorder, r)
			duration := time.Since(start)

			path := r.URL.Path
			if _, ok := known[path]; !ok {
				path = "other"
			}
			collector.RecordHTTPRequest(r.Method, path, recorder.status, duration)
			klog.V(5).Infof("%s %s %d %v", r.Method, r.URL.Path, recorder.status, duration)
		})
	}
}
