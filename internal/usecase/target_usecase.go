package usecase

import (
	"context"

	"geotarget/internal/domain/entity"

	"github.com/google/uuid"
)

// AddTargetInput represents the input for creating a new target
type AddTargetInput struct {
	Title     string   `json:"title"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Radius    *float64 `json:"radius,omitempty"`
	Address   *string  `json:"address,omitempty"`
}

// UpdateTargetInput represents the input for updating an existing target
type UpdateTargetInput struct {
	Title     *string  `json:"title,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Radius    *float64 `json:"radius,omitempty"`
	Address   *string  `json:"address,omitempty"`
}

// Differences is the outcome of a reconciliation cycle: the baseline the
// diff was computed against plus the three change lists.
type Differences struct {
	Before  *entity.TargetCollection
	Added   []*entity.Target
	Removed []*entity.Target
	Updated []*entity.Target
}

// TargetUsecase defines the interface for target editing and reconciliation
type TargetUsecase interface {
	// Load restores the collection from storage; a missing snapshot yields
	// an empty collection.
	Load(ctx context.Context) error

	// Targets returns the live targets ordered by creation time.
	Targets(ctx context.Context) []*entity.Target

	// Target returns the target with the given id, or nil.
	Target(ctx context.Context, id uuid.UUID) *entity.Target

	AddTarget(ctx context.Context, input *AddTargetInput) (*entity.Target, error)
	UpdateTarget(ctx context.Context, id uuid.UUID, input *UpdateTargetInput) (*entity.Target, error)
	RemoveTarget(ctx context.Context, id uuid.UUID) error

	// ResetAttendance clears the accumulated statistics of one target.
	ResetAttendance(ctx context.Context, id uuid.UUID) (*entity.Target, error)

	// ComputeDifferences diffs the live collection against the baseline
	// captured before the current edit session, re-baselines, and returns
	// the changes.
	ComputeDifferences(ctx context.Context) *Differences
}
