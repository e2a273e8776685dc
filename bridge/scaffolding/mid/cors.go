package mid

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/taskvault/taskvault/infrastructure/web"
	"github.com/taskvault/taskvault/sdk/environment"
)

// CORSConfig holds CORS configuration options.
type CORSConfig struct {
	Origins     []string
	Methods     []string
	Headers     []string
	Credentials bool
	MaxAge      string
}

// DefaultCORSConfig returns a default CORS configuration.
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		Origins:     []string{"*"},
		Methods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		Headers:     []string{"Accept", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization"},
		Credentials: true,
		MaxAge:      "86400",
	}
}

// CORSFromEnv creates CORS middleware with origins read from the
// environment.
func CORSFromEnv(prefix string) (web.Middleware, error) {
	var opts struct {
		Origins []string `env:"CORS_ORIGINS" default:"*" separator:","`
	}
	if err := environment.ParseEnvTags(prefix, &opts); err != nil {
		return nil, fmt.Errorf("parsing cors config: %w", err)
	}
	return CORS(opts.Origins...), nil
}

// CORS creates CORS middleware with the given origins.
func CORS(origins ...string) web.Middleware {
	config := DefaultCORSConfig()
	config.Origins = origins
	return CORSWithConfig(config)
}

// PublicCORS creates CORS middleware for public routes (most permissive).
func PublicCORS() web.Middleware {
	return CORS("*")
}

// CORSWithConfig creates CORS middleware with full configuration.
func CORSWithConfig(config CORSConfig) web.Middleware {
	return func(handler web.HandlerFunc) web.HandlerFunc {
		return func(ctx context.Context, r *http.Request) web.Encoder {
			w := web.GetWriter(ctx)
			if w == nil {
				return web.NewError("internal server error: response writer not available")
			}

			reqOrigin := r.Header.Get("Origin")
			for _, origin := range config.Origins {
				if origin == "*" || origin == reqOrigin {
					w.Header().Set("Access-Control-Allow-Origin", origin)
					break
				}
			}

			if config.Credentials {
				w.Header().Set("Access-Control-Allow-Credentials", "true")
			}

			if len(config.Methods) > 0 {
				w.Header().Set("Access-Control-Allow-Methods", strings.Join(config.Methods, ", "))
			}

			if len(config.Headers) > 0 {
				w.Header().Set("Access-Control-Allow-Headers", strings.Join(config.Headers, ", "))
			}

			if config.MaxAge != "" {
				w.Header().Set("Access-Control-Max-Age", config.MaxAge)
			}

			if r.Method == http.MethodOptions {
				return web.NewNoResponse()
			}

			return handler(ctx, r)
		}
	}
}
