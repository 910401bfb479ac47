package entity

import (
	"sort"

	"github.com/google/uuid"
)

// TargetCollection is an insertion-ordered set of targets keyed by id.
// No two targets in a collection share an id. The collection itself is not
// goroutine-safe; callers owning a shared instance serialize access.
type TargetCollection struct {
	byID  map[uuid.UUID]*Target
	order []uuid.UUID
}

// DiffResult holds the structural difference between two collections.
// Targets present in both with equal content appear in none of the lists.
type DiffResult struct {
	Added   []*Target // present here, absent in the other collection
	Removed []*Target // absent here, present in the other collection
	Updated []*Target // present in both but with different content, current value
}

// NewTargetCollection creates an empty collection.
func NewTargetCollection(targets ...*Target) *TargetCollection {
	c := &TargetCollection{
		byID: make(map[uuid.UUID]*Target),
	}
	for _, target := range targets {
		c.Put(target)
	}

	return c
}

// Get returns the target with the given id, or nil when absent.
func (c *TargetCollection) Get(id uuid.UUID) *Target {
	return c.byID[id]
}

// At returns the target at the given insertion-order position, or nil when
// the index is out of range.
func (c *TargetCollection) At(index int) *Target {
	if index < 0 || index >= len(c.order) {
		return nil
	}

	return c.byID[c.order[index]]
}

// Put inserts the target, replacing an existing one with the same id in
// place. New ids are appended at the end.
func (c *TargetCollection) Put(target *Target) {
	if _, exists := c.byID[target.ID]; !exists {
		c.order = append(c.order, target.ID)
	}
	c.byID[target.ID] = target
}

// Remove deletes the target with the given id. Removing an absent id is a
// no-op.
func (c *TargetCollection) Remove(id uuid.UUID) {
	if _, exists := c.byID[id]; !exists {
		return
	}
	delete(c.byID, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)

			break
		}
	}
}

// Len returns the number of targets in the collection.
func (c *TargetCollection) Len() int {
	return len(c.order)
}

// All returns the targets in insertion order.
func (c *TargetCollection) All() []*Target {
	targets := make([]*Target, 0, len(c.order))
	for _, id := range c.order {
		targets = append(targets, c.byID[id])
	}

	return targets
}

// Sorted returns the targets ordered by creation time ascending, ids
// breaking ties.
func (c *TargetCollection) Sorted() []*Target {
	targets := c.All()
	sort.Slice(targets, func(i, j int) bool {
		return targets[i].Less(targets[j])
	})

	return targets
}

// Copy returns a fully independent deep copy. Mutations of either collection
// or of the targets it holds never affect the other.
func (c *TargetCollection) Copy() *TargetCollection {
	copied := &TargetCollection{
		byID:  make(map[uuid.UUID]*Target, len(c.byID)),
		order: make([]uuid.UUID, len(c.order)),
	}
	copy(copied.order, c.order)
	for id, target := range c.byID {
		copied.byID[id] = target.Clone()
	}

	return copied
}

// Diff computes the structural difference of this collection relative to
// a baseline collection. Iteration follows insertion order on both
// sides, so the result is deterministic for a given pair of collections.
func (c *TargetCollection) Diff(other *TargetCollection) DiffResult {
	var result DiffResult
	for _, id := range c.order {
		current := c.byID[id]
		previous := other.Get(id)
		switch {
		case previous == nil:
			result.Added = append(result.Added, current)
		case !current.SameContent(previous):
			result.Updated = append(result.Updated, current)
		}
	}
	for _, id := range other.order {
		if c.Get(id) == nil {
			result.Removed = append(result.Removed, other.byID[id])
		}
	}

	return result
}
