// Package persistence selects the snapshot repository implementation from
// configuration, mirroring the provider pattern used for pub/sub.
package persistence

import (
	"log/slog"

	"geotarget/config"
	"geotarget/internal/domain/constants"
	"geotarget/internal/domain/repository"
	"geotarget/internal/infra/persistence/file"
	"geotarget/internal/infra/persistence/sqlite"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultSnapshotPath = "targets.json"

// Params holds dependencies for the snapshot repository, injected by Fx
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewSnapshotRepository creates a SnapshotRepository based on configuration
func NewSnapshotRepository(params Params) (repository.SnapshotRepository, error) {
	cfg := params.Config.Storage
	logger := params.Logger

	// Default to a snapshot file next to the binary
	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.StorageProviderFile {
		path := defaultSnapshotPath
		if cfg != nil && cfg.Path != "" {
			path = cfg.Path
		}
		logger.Info("Using file snapshot store", slog.String("path", path))

		return file.NewSnapshotRepository(file.NewOSByteStore(path)), nil
	}

	if cfg.Provider == constants.StorageProviderSqlite {
		logger.Info("Using sqlite snapshot store", slog.String("dsn", cfg.DSN))

		db, err := sqlite.New(sqlite.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}

		return sqlite.NewSnapshotRepository(db), nil
	}

	return nil, errors.Errorf("unknown storage provider: %s", cfg.Provider)
}
