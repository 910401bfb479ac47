package usecase

import (
	"context"

	"geotarget/internal/domain/entity"
)

// SnapshotUsecase is the persistence gateway: it serializes save submissions
// on a dedicated lane so callers never block, and maps a missing snapshot to
// an empty collection on load.
type SnapshotUsecase interface {
	// Load restores the last saved collection. A missing snapshot is not an
	// error; it yields an empty collection.
	Load(ctx context.Context) (*entity.TargetCollection, error)

	// SaveAsync snapshots the collection and submits the write to the save
	// lane. The callback reports whether the write succeeded; a nil callback
	// is allowed. Submission order is preserved, completion order across
	// other lanes is not.
	SaveAsync(collection *entity.TargetCollection, done func(saved bool))

	// Close drains the save lane. Further SaveAsync calls are dropped.
	Close()
}
