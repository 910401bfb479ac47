// Package notification provides NotificationScheduler implementations: a
// structured-log scheduler for development and a Firebase Cloud Messaging
// scheduler for real delivery.
package notification

import (
	"context"
	"log/slog"

	"geotarget/config"
	"geotarget/internal/domain/constants"
	"geotarget/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the scheduler, injected by Fx
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewScheduler creates a NotificationScheduler based on configuration
func NewScheduler(params Params) (service.NotificationScheduler, error) {
	cfg := params.Config.Notification
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.NotificationProviderLog {
		logger.Info("Using log notification scheduler")

		return NewLogScheduler(logger), nil
	}

	if cfg.Provider == constants.NotificationProviderFCM {
		if cfg.CredentialsPath == "" {
			return nil, errors.New("credentials path is required for fcm provider")
		}
		if cfg.DeviceToken == "" {
			return nil, errors.New("device token is required for fcm provider")
		}
		logger.Info("Using FCM notification scheduler",
			slog.String("project_id", cfg.ProjectID),
		)

		return NewFCMScheduler(params.Ctx, cfg.CredentialsPath, cfg.DeviceToken, logger)
	}

	return nil, errors.Errorf("unknown notification provider: %s", cfg.Provider)
}
