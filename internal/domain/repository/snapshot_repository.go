// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"geotarget/internal/domain/entity"
	"geotarget/internal/errors"
)

// Domain-specific errors for snapshot persistence.
var (
	// ErrSnapshotNotFound is returned when no snapshot has been saved yet.
	// Callers treat it as "start from an empty collection", not as a failure.
	ErrSnapshotNotFound = errors.New("snapshot not found")
)

// SnapshotRepository persists the full target collection as a snapshot.
// Each save replaces the previous snapshot as a unit; a load either yields
// the complete last-saved collection or fails.
type SnapshotRepository interface {
	// LoadCollection restores the last saved collection.
	// Returns ErrSnapshotNotFound when nothing has been saved.
	LoadCollection(ctx context.Context) (*entity.TargetCollection, error)

	// SaveCollection replaces the stored snapshot with the given collection.
	SaveCollection(ctx context.Context, collection *entity.TargetCollection) error
}
