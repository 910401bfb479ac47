package impl

import (
	"sync"

	"geotarget/internal/domain/entity"
)

// CollectionState is the single shared in-memory target collection plus the
// reconciliation baseline captured before the current edit session. All
// mutation, by user edits and by location callbacks alike, funnels through
// the keyed Put/Remove operations while holding mu: per-target read-modify-
// write is a critical section.
type CollectionState struct {
	mu       sync.Mutex
	live     *entity.TargetCollection
	baseline *entity.TargetCollection
}

// NewCollectionState creates the shared state with an empty live collection.
func NewCollectionState() *CollectionState {
	return &CollectionState{
		live: entity.NewTargetCollection(),
	}
}

// captureBaselineLocked snapshots the live collection as the reconciliation
// baseline, once per edit session. Callers hold mu. The copy is taken before
// the session's first mutation is applied, so the baseline always reflects
// the state strictly prior to the edits.
func (s *CollectionState) captureBaselineLocked() {
	if s.baseline == nil {
		s.baseline = s.live.Copy()
	}
}
