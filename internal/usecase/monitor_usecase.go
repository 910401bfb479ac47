package usecase

import (
	"context"

	"geotarget/internal/domain/entity"
	"geotarget/internal/domain/service"

	"github.com/google/uuid"
)

// MonitorUsecase defines the interface for the region monitoring coordinator
type MonitorUsecase interface {
	// CheckAuthorization requests platform authorization when undetermined
	// and returns the current status otherwise.
	CheckAuthorization(ctx context.Context) service.AuthorizationStatus

	// StartMonitoring begins watching the target's derived region, reporting
	// whether the watch was established.
	StartMonitoring(ctx context.Context, target *entity.Target) bool

	// StopMonitoring stops watching the region with the given id and cancels
	// its notification, reporting whether a watch was active.
	StopMonitoring(ctx context.Context, id uuid.UUID) bool

	// MonitoredRegions returns the currently watched regions.
	MonitoredRegions(ctx context.Context) []entity.Region
}
