// Package checkbridge provides liveness and readiness handlers.
package checkbridge

import (
	"context"
	"net/http"
	"os"
	"runtime"

	"github.com/taskvault/taskvault/bridge/scaffolding/errs"
	"github.com/taskvault/taskvault/infrastructure/databases/postgresdb"
	"github.com/taskvault/taskvault/infrastructure/web"
	"github.com/taskvault/taskvault/sdk/logger"
)

// Config holds configuration for the check bridge.
type Config struct {
	Build string
	Log   *logger.Logger
	Pool  *postgresdb.Pool
}

type bridge struct {
	build string
	log   *logger.Logger
	pool  *postgresdb.Pool
}

// AddHttpRoutes registers the health routes. These stay outside any auth
// or caching concerns so orchestrators can always reach them.
func AddHttpRoutes(group *web.RouteGroup, cfg Config) {
	b := &bridge{
		build: cfg.Build,
		log:   cfg.Log,
		pool:  cfg.Pool,
	}

	group.GET("/liveness", b.httpLiveness)
	group.GET("/readiness", b.httpReadiness)
}

type livenessInfo struct {
	Status     string `json:"status"`
	Build      string `json:"build"`
	Host       string `json:"host"`
	GOMAXPROCS int    `json:"gomaxprocs"`
}

// httpLiveness reports basic process info. The 200 is the signal; the
// body is for humans.
func (b *bridge) httpLiveness(ctx context.Context, r *http.Request) web.Encoder {
	host, err := os.Hostname()
	if err != nil {
		host = "unavailable"
	}

	return web.NewJSONResponse(livenessInfo{
		Status:     "up",
		Build:      b.build,
		Host:       host,
		GOMAXPROCS: runtime.GOMAXPROCS(0),
	})
}

type readinessInfo struct {
	Status string `json:"status"`
}

// httpReadiness checks the database round trip. Failure returns a 500 so
// the orchestrator pulls the instance out of rotation.
func (b *bridge) httpReadiness(ctx context.Context, r *http.Request) web.Encoder {
	if err := postgresdb.StatusCheck(ctx, b.pool); err != nil {
		b.log.ErrorContext(ctx, "readiness", "status", "db not ready", "err", err)
		return errs.Newf(errs.Internal, "database not ready")
	}

	return web.NewJSONResponse(readinessInfo{Status: "ok"})
}
