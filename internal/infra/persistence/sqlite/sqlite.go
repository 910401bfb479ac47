// Package sqlite contains the concrete implementation of the persistence layer using GORM and sqlite.
package sqlite

import (
	"context"
	"log/slog"

	"geotarget/config"
	"geotarget/internal/errors"
	"geotarget/internal/infra/persistence/model"

	"go.uber.org/fx"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the sqlite database and migrates the targets table
func New(params Params) (*gorm.DB, error) {
	dsn := params.Config.Storage.DSN
	if dsn == "" {
		return nil, errors.New("storage.dsn is required for the sqlite provider")
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		// The snapshot save wraps its statements in an explicit transaction.
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sqlite database")
	}

	if err := db.AutoMigrate(&model.TargetModel{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate targets table")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sqlite sql.DB")
	}

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing sqlite database")

			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}
