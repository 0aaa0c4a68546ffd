package http

import (
	"net/http"
	"slices"
	"strconv"
	"strings"

	"k8s.io/klog/v2"

	"github.com/eda-labs/k8s-eda-mcp-server/pkg/config"
)

const (
	corsHeaderAllowOrigin      = "Access-Control-Allow-Origin"
	corsHeaderAllowMethods     = "Access-Control-Allow-Methods"
	corsHeaderAllowHeaders     = "Access-Control-Allow-Headers"
	corsHeaderAllowCredentials = "Access-Control-Allow-Credentials"
	corsHeaderExposeHeaders    = "Access-Control-Expose-Headers"
	corsHeaderMaxAge           = "Access-Control-Max-Age"

	// Streamable HTTP clients resume sessions through Mcp-Session-Id and negotiate with Mcp-Protocol-Version.
	corsAllowedMethods = "GET, POST, DELETE, OPTIONS"
	corsAllowedHeaders = "Content-Type, Accept, Mcp-Session-Id, Mcp-Protocol-Version, Last-Event-ID"
	corsExposeHeaders  = "Content-Type, Mcp-Session-Id"
	corsDefaultMaxAge  = 86400
)

// CORSMiddleware answers preflight requests and decorates responses for the configured origins.
// A nil configuration disables CORS handling entirely.
func CORSMiddleware(corsConfig *config.CORSConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if corsConfig == nil {
			return next
		}
		wildcard := len(corsConfig.Origins) == 1 && corsConfig.Origins[0] == "*"
		maxAge := corsConfig.MaxAge
		if maxAge <= 0 {
			maxAge = corsDefaultMaxAge
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			allowed := origin != "" && (wildcard || originAllowed(origin, corsConfig.Origins))
			preflight := r.Method == http.MethodOptions

			if !allowed {
				if preflight {
					klog.V(2).Infof("CORS preflight request rejected for origin %q", origin)
					w.WriteHeader(http.StatusForbidden)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			if wildcard {
				w.Header().Set(corsHeaderAllowOrigin, "*")
			} else {
				w.Header().Set(corsHeaderAllowOrigin, origin)
				w.Header().Set(corsHeaderAllowCredentials, "true")
				w.Header().Add("Vary", "Origin")
			}
			w.Header().Set(corsHeaderExposeHeaders, corsExposeHeaders)

			if !preflight {
				next.ServeHTTP(w, r)
				return
			}
			w.Header().Set(corsHeaderAllowMethods, corsAllowedMethods)
			w.Header().Set(corsHeaderAllowHeaders, corsAllowedHeaders)
			w.Header().Set(corsHeaderMaxAge, strconv.Itoa(maxAge))
			klog.V(5).Infof("CORS preflight request from origin %q", origin)
			w.WriteHeader(http.StatusNoContent)
		})
	}
}

func originAllowed(origin string, allowedOrigins []string) bool {
	origin = strings.TrimSuffix(origin, "/")
	return slices.ContainsFunc(allowedOrigins, func(allowed string) bool {
		return strings.TrimSuffix(allowed, "/") == origin
	})
}
