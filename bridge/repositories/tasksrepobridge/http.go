package tasksrepobridge

import (
	"github.com/taskvault/taskvault/core/repositories/tasksrepo"
	"github.com/taskvault/taskvault/infrastructure/web"
	"github.com/taskvault/taskvault/sdk/logger"
)

// Config holds configuration for the task bridge.
type Config struct {
	Log        *logger.Logger
	Repository *tasksrepo.Repository
	Middleware []web.Middleware
}

// AddHttpRoutes registers all HTTP routes for the task resource.
func AddHttpRoutes(group *web.RouteGroup, cfg Config) {
	b := newBridge(cfg.Repository)

	group.GET("/tasks", b.httpList, cfg.Middleware...)
	group.POST("/tasks", b.httpCreate, cfg.Middleware...)
	group.PUT("/tasks/{task_id}", b.httpUpdate, cfg.Middleware...)
	group.DELETE("/tasks/{task_id}", b.httpDelete, cfg.Middleware...)
}
