package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTargetCollection_PutGetRemove(t *testing.T) {
	collection := NewTargetCollection()
	target := NewTarget("Office", 25.0330, 121.5654)

	collection.Put(target)
	assert.Equal(t, 1, collection.Len())
	assert.Same(t, target, collection.Get(target.ID))
	assert.Same(t, target, collection.At(0))
	assert.Nil(t, collection.At(1))
	assert.Nil(t, collection.At(-1))

	// Replacing by id keeps the insertion position.
	other := NewTarget("Home", 24.0, 120.0)
	collection.Put(other)
	replacement := target.Clone()
	replacement.Title = "Office v2"
	collection.Put(replacement)
	assert.Equal(t, 2, collection.Len())
	assert.Equal(t, "Office v2", collection.At(0).Title)

	collection.Remove(target.ID)
	assert.Equal(t, 1, collection.Len())
	assert.Nil(t, collection.Get(target.ID))
	assert.Same(t, other, collection.At(0))

	// Removing an absent id is a no-op.
	collection.Remove(uuid.New())
	assert.Equal(t, 1, collection.Len())
}

func TestTargetCollection_Sorted(t *testing.T) {
	now := time.Now()
	third := &Target{ID: uuid.New(), Title: "c", CreatedAt: now.Add(2 * time.Second)}
	first := &Target{ID: uuid.New(), Title: "a", CreatedAt: now}
	second := &Target{ID: uuid.New(), Title: "b", CreatedAt: now.Add(time.Second)}

	collection := NewTargetCollection(third, first, second)

	sorted := collection.Sorted()
	require.Len(t, sorted, 3)
	assert.Equal(t, "a", sorted[0].Title)
	assert.Equal(t, "b", sorted[1].Title)
	assert.Equal(t, "c", sorted[2].Title)

	// All keeps insertion order.
	all := collection.All()
	assert.Equal(t, "c", all[0].Title)
}

func TestTargetCollection_Copy_Independence(t *testing.T) {
	target := NewTarget("Office", 25.0330, 121.5654)
	collection := NewTargetCollection(target)

	copied := collection.Copy()
	require.Equal(t, 1, copied.Len())

	// Mutating the copy's target leaves the original untouched.
	copied.Get(target.ID).Title = "changed"
	assert.Equal(t, "Office", collection.Get(target.ID).Title)

	// Structural mutations are independent too.
	copied.Put(NewTarget("Home", 24.0, 120.0))
	assert.Equal(t, 1, collection.Len())
	assert.Equal(t, 2, copied.Len())
}

func TestTargetCollection_Diff_NoChanges(t *testing.T) {
	collection := NewTargetCollection(
		NewTarget("Office", 25.0330, 121.5654),
		NewTarget("Home", 24.0, 120.0),
	)

	diff := collection.Diff(collection.Copy())
	assert.Empty(t, diff.Added)
	assert.Empty(t, diff.Removed)
	assert.Empty(t, diff.Updated)
}

func TestTargetCollection_Diff(t *testing.T) {
	kept := NewTarget("Office", 25.0330, 121.5654)
	removed := NewTarget("Home", 24.0, 120.0)
	baseline := NewTargetCollection(kept, removed)

	current := baseline.Copy()
	current.Remove(removed.ID)

	// Shrinking a radius is a content change, not a membership change.
	updated := current.Get(kept.ID)
	radius := 75.0
	updated.Radius = &radius

	added := NewTarget("Gym", 25.05, 121.55)
	current.Put(added)

	diff := current.Diff(baseline)
	require.Len(t, diff.Added, 1)
	assert.Equal(t, added.ID, diff.Added[0].ID)
	require.Len(t, diff.Removed, 1)
	assert.Equal(t, removed.ID, diff.Removed[0].ID)
	require.Len(t, diff.Updated, 1)
	assert.Equal(t, kept.ID, diff.Updated[0].ID)
	assert.Equal(t, 75.0, *diff.Updated[0].Radius)
}

func TestTargetCollection_Diff_Symmetry(t *testing.T) {
	shared := NewTarget("Office", 25.0330, 121.5654)
	onlyA := NewTarget("Home", 24.0, 120.0)
	onlyB := NewTarget("Gym", 25.05, 121.55)

	a := NewTargetCollection(shared, onlyA)
	b := NewTargetCollection(shared.Clone(), onlyB)

	forward := a.Diff(b)
	backward := b.Diff(a)

	// What is added in one direction is removed in the other.
	require.Len(t, forward.Added, 1)
	require.Len(t, backward.Removed, 1)
	assert.Equal(t, forward.Added[0].ID, backward.Removed[0].ID)
	require.Len(t, forward.Removed, 1)
	require.Len(t, backward.Added, 1)
	assert.Equal(t, forward.Removed[0].ID, backward.Added[0].ID)
}
