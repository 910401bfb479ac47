package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTarget_RecordEntry(t *testing.T) {
	target := NewTarget("Office", 25.0330, 121.5654)
	require.False(t, target.Inside())

	entered := time.Now()
	target.RecordEntry(entered)

	assert.True(t, target.Inside())
	assert.Equal(t, 1, target.VisitCount)
	require.NotNil(t, target.EntryTime)
	assert.Equal(t, entered, *target.EntryTime)
}

func TestTarget_RecordEntry_RepeatedWithoutExit(t *testing.T) {
	target := NewTarget("Office", 25.0330, 121.5654)

	first := time.Now()
	second := first.Add(5 * time.Minute)
	target.RecordEntry(first)
	target.RecordEntry(second)

	// Each raw enter event counts, even without an intervening exit.
	assert.Equal(t, 2, target.VisitCount)
	require.NotNil(t, target.EntryTime)
	assert.Equal(t, second, *target.EntryTime)
	assert.Equal(t, time.Duration(0), target.DwellTime)
}

func TestTarget_RecordExit_AccumulatesDwell(t *testing.T) {
	target := NewTarget("Office", 25.0330, 121.5654)

	entered := time.Now()
	exited := entered.Add(45 * time.Minute)
	target.RecordEntry(entered)
	target.RecordExit(exited)

	assert.False(t, target.Inside())
	assert.Equal(t, 45*time.Minute, target.DwellTime)

	// A second visit adds to the same counter.
	entered = exited.Add(time.Hour)
	exited = entered.Add(15 * time.Minute)
	target.RecordEntry(entered)
	target.RecordExit(exited)

	assert.Equal(t, 2, target.VisitCount)
	assert.Equal(t, 60*time.Minute, target.DwellTime)
}

func TestTarget_RecordExit_WithoutEntry(t *testing.T) {
	target := NewTarget("Office", 25.0330, 121.5654)

	target.RecordExit(time.Now())

	assert.False(t, target.Inside())
	assert.Equal(t, 0, target.VisitCount)
	assert.Equal(t, time.Duration(0), target.DwellTime)
}

func TestTarget_ResetAttendance(t *testing.T) {
	target := NewTarget("Office", 25.0330, 121.5654)

	entered := time.Now()
	target.RecordEntry(entered)
	target.RecordExit(entered.Add(time.Hour))
	target.RecordEntry(entered.Add(2 * time.Hour))

	target.ResetAttendance()

	assert.Equal(t, 0, target.VisitCount)
	assert.Equal(t, time.Duration(0), target.DwellTime)
	assert.False(t, target.Inside())
}

func TestTarget_Region_DefaultRadius(t *testing.T) {
	target := NewTarget("Office", 25.0330, 121.5654)

	region := target.Region(100)

	assert.Equal(t, target.ID, region.ID)
	assert.Equal(t, target.Latitude, region.Latitude)
	assert.Equal(t, target.Longitude, region.Longitude)
	assert.Equal(t, 100.0, region.Radius)

	radius := 250.0
	target.Radius = &radius
	assert.Equal(t, 250.0, target.Region(100).Radius)
}

func TestTarget_SameContent(t *testing.T) {
	target := NewTarget("Office", 25.0330, 121.5654)
	clone := target.Clone()

	assert.True(t, target.SameContent(clone))
	assert.False(t, target.SameContent(nil))

	// Statistics do not participate in content equality.
	clone.RecordEntry(time.Now())
	assert.True(t, target.SameContent(clone))

	clone.Title = "Home"
	assert.False(t, target.SameContent(clone))

	clone = target.Clone()
	radius := 75.0
	clone.Radius = &radius
	assert.False(t, target.SameContent(clone))

	clone = target.Clone()
	address := "7 Xinyi Road"
	clone.Address = &address
	assert.False(t, target.SameContent(clone))

	other := NewTarget("Office", 25.0330, 121.5654)
	assert.False(t, target.SameContent(other), "distinct ids are never the same content")
}

func TestTarget_Less(t *testing.T) {
	now := time.Now()
	older := &Target{ID: uuid.New(), CreatedAt: now}
	newer := &Target{ID: uuid.New(), CreatedAt: now.Add(time.Second)}

	assert.True(t, older.Less(newer))
	assert.False(t, newer.Less(older))

	// Equal timestamps fall back to id ordering, so exactly one direction holds.
	a := &Target{ID: uuid.New(), CreatedAt: now}
	b := &Target{ID: uuid.New(), CreatedAt: now}
	assert.NotEqual(t, a.Less(b), b.Less(a))
}

func TestTarget_Clone_Independence(t *testing.T) {
	target := NewTarget("Office", 25.0330, 121.5654)
	address := "7 Xinyi Road"
	radius := 150.0
	target.Address = &address
	target.Radius = &radius
	target.RecordEntry(time.Now())

	clone := target.Clone()
	*clone.Address = "other"
	*clone.Radius = 1
	*clone.EntryTime = clone.EntryTime.Add(time.Hour)

	assert.Equal(t, "7 Xinyi Road", *target.Address)
	assert.Equal(t, 150.0, *target.Radius)
	assert.True(t, target.SameContent(target))
}
