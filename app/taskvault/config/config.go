package config

import (
	"github.com/taskvault/taskvault/core/repositories/tasksrepo"
	"github.com/taskvault/taskvault/infrastructure/databases/postgresdb"
	"github.com/taskvault/taskvault/sdk/logger"
	"github.com/taskvault/taskvault/sdk/telemetry"
)

// site wide globals.
const (
	ApiRoute = "/v1"
)

// Repositories represents the specific repositories this instance of
// taskvault needs.
type Repositories struct {
	Tasks *tasksrepo.Repository
}

// TaskVault is the overall configuration for the taskvault application.
type TaskVault struct {
	Build  string
	Logger *logger.Logger

	Repositories Repositories
	Telemetry    telemetry.Telemetry

	// Datastores
	Pool *postgresdb.Pool
}
