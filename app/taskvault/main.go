package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/taskvault/taskvault/app/taskvault/config"
	"github.com/taskvault/taskvault/bridge/checkbridge"
	"github.com/taskvault/taskvault/bridge/repositories/tasksrepobridge"
	"github.com/taskvault/taskvault/bridge/scaffolding/mid"
	"github.com/taskvault/taskvault/core/repositories/tasksrepo"
	"github.com/taskvault/taskvault/core/repositories/tasksrepo/stores/taskspgxstore"
	"github.com/taskvault/taskvault/infrastructure/databases/postgresdb"
	"github.com/taskvault/taskvault/infrastructure/web"
	"github.com/taskvault/taskvault/sdk/environment"
	"github.com/taskvault/taskvault/sdk/logger"
	"github.com/taskvault/taskvault/sdk/telemetry"
)

var build = "develop"

const appName = "TASKVAULT"

func main() {
	environment.LoadEnv("")
	ctx := context.Background()

	log, err := logger.NewFromEnv(appName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "startup: %v\n", err)
		os.Exit(1)
	}

	if err := run(ctx, log); err != nil {
		log.ErrorContext(ctx, "startup", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, log *logger.Logger) error {
	log.InfoContext(ctx, "startup", "GOMAXPROCS", runtime.GOMAXPROCS(0), "build", build)

	// :*: START DATABASES :*:
	pool, err := postgresdb.NewFromEnv(appName, postgresdb.WithLogger(log.Logger))
	if err != nil {
		return fmt.Errorf("configuring postgres support: %w", err)
	}
	defer func() {
		log.InfoContext(ctx, "shutdown", "status", "closing database connection")
		pool.Close()
	}()

	if err := postgresdb.Migrate(ctx, pool); err != nil {
		return fmt.Errorf("migrating database: %w", err)
	}

	// REPOSITORIES //
	log.InfoContext(ctx, "startup", "status", "initializing repository support")

	taskStore := taskspgxstore.NewStore(log, pool)
	taskRepository, err := tasksrepo.NewRepositoryFromEnv(appName, log, taskStore)
	if err != nil {
		return fmt.Errorf("configuring task repository: %w", err)
	}

	siteCfg := config.TaskVault{
		Build:  build,
		Logger: log,
		Repositories: config.Repositories{
			Tasks: taskRepository,
		},
		Telemetry: telemetry.NewTelemetry(),
		Pool:      pool,
	}

	handler, err := webHandler(siteCfg)
	if err != nil {
		return fmt.Errorf("webhandler: %w", err)
	}

	server, err := web.NewServerFromEnv(appName,
		web.WithHandler(handler),
		web.WithErrorLog(logger.NewStdLogger(log, slog.LevelError)),
	)
	if err != nil {
		return fmt.Errorf("webserver: %w", err)
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.InfoContext(ctx, "startup", "status", "api router started", "host", server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		log.InfoContext(ctx, "shutdown", "status", "shutdown started", "signal", sig.String())
		defer log.InfoContext(ctx, "shutdown", "status", "shutdown complete", "signal", sig.String())

		ctx, cancel := context.WithTimeout(ctx, server.Config.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			server.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func webHandler(cfg config.TaskVault) (http.Handler, error) {
	cors, err := mid.CORSFromEnv(appName)
	if err != nil {
		return nil, err
	}

	handler, err := web.NewWebHandlerFromEnv(appName,
		web.WithLogging(cfg.Logger.Logger),
		web.WithTelemetry(cfg.Telemetry),
		web.WithGlobalMiddleware(
			cors,
			mid.Logger(cfg.Logger, cfg.Telemetry),
			mid.Errors(cfg.Logger),
			mid.Metrics(),
			mid.Panics(),
		),
	)
	if err != nil {
		return nil, err
	}

	api := handler.Group(config.ApiRoute)

	tasksrepobridge.AddHttpRoutes(api, tasksrepobridge.Config{
		Log:        cfg.Logger,
		Repository: cfg.Repositories.Tasks,
	})

	checkbridge.AddHttpRoutes(api, checkbridge.Config{
		Build: cfg.Build,
		Log:   cfg.Logger,
		Pool:  cfg.Pool,
	})

	return handler, nil
}
