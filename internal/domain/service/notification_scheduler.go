package service

import (
	"context"

	"geotarget/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationScheduler schedules and cancels per-target notifications.
// It is consumed fire-and-forget: the monitoring coordinator never lets a
// scheduling failure roll back an entity transition.
type NotificationScheduler interface {
	// RequestAuthorization asks the underlying channel for permission to
	// deliver notifications. Queried lazily on the first successful
	// monitoring start.
	RequestAuthorization(ctx context.Context) error

	// Schedule creates or refreshes the notification for each target.
	Schedule(ctx context.Context, targets []*entity.Target) error

	// Cancel removes the scheduled notification for the given target id.
	Cancel(ctx context.Context, id uuid.UUID) error
}
