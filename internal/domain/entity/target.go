// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Target is the core entity for a monitored circular region ("smart target").
// It carries both the user-editable fields and the attendance statistics
// accumulated from raw enter/exit events.
type Target struct {
	ID        uuid.UUID  // The Global Unique Identifier (GUID) for the target.
	Title     string     // A user-defined label, e.g., "Home", "Office".
	Latitude  float64    // The geographic latitude of the region center.
	Longitude float64    // The geographic longitude of the region center.
	Address   *string    // The resolved human-readable address, nil until geocoded.
	Radius    *float64   // The region radius in meters, nil means the configured default.
	CreatedAt time.Time  // Timestamp of when this target was created. Used for ordering only.
	VisitCount int           // Number of completed entries into the region.
	DwellTime  time.Duration // Cumulative time spent inside the region across all visits.
	EntryTime  *time.Time    // Set exactly while the device is inside the region.
}

// NewTarget creates a target with a generated id and the creation time set to now.
func NewTarget(title string, latitude, longitude float64) *Target {
	return &Target{
		ID:        uuid.New(),
		Title:     title,
		Latitude:  latitude,
		Longitude: longitude,
		CreatedAt: time.Now(),
	}
}

// RecordEntry applies an enter event: increments the visit counter and marks
// the target as currently inside. A repeated entry without an intervening
// exit still counts as a visit.
func (t *Target) RecordEntry(at time.Time) {
	entry := at
	t.EntryTime = &entry
	t.VisitCount++
}

// RecordExit applies an exit event: adds the elapsed time since entry to the
// accumulated dwell time and marks the target as outside. An exit without a
// prior entry computes the elapsed time against the exit moment itself,
// contributing nothing rather than failing.
func (t *Target) RecordExit(at time.Time) {
	entry := at
	if t.EntryTime != nil {
		entry = *t.EntryTime
	}
	if elapsed := at.Sub(entry); elapsed > 0 {
		t.DwellTime += elapsed
	}
	t.EntryTime = nil
}

// ResetAttendance clears all accumulated statistics, returning the target to
// a clean "never visited, currently outside" state.
func (t *Target) ResetAttendance() {
	t.EntryTime = nil
	t.VisitCount = 0
	t.DwellTime = 0
}

// Inside reports whether the device is currently considered inside the region.
func (t *Target) Inside() bool {
	return t.EntryTime != nil
}

// Region derives the monitorable circular region for this target. When no
// radius has been set, defaultRadius is used.
func (t *Target) Region(defaultRadius float64) Region {
	radius := defaultRadius
	if t.Radius != nil {
		radius = *t.Radius
	}

	return Region{
		ID:        t.ID,
		Latitude:  t.Latitude,
		Longitude: t.Longitude,
		Radius:    radius,
	}
}

// SameContent reports full-content equality: title, address, radius and
// coordinate. This is the strict comparison the diff algorithm uses to decide
// "updated" versus "unchanged"; id equality alone decides set membership.
func (t *Target) SameContent(other *Target) bool {
	if other == nil {
		return false
	}

	return t.ID == other.ID &&
		t.Title == other.Title &&
		t.Latitude == other.Latitude &&
		t.Longitude == other.Longitude &&
		equalStringPtr(t.Address, other.Address) &&
		equalFloatPtr(t.Radius, other.Radius)
}

// Less orders targets by creation time ascending, falling back to id ordering
// so the sort is deterministic even for equal timestamps.
func (t *Target) Less(other *Target) bool {
	if !t.CreatedAt.Equal(other.CreatedAt) {
		return t.CreatedAt.Before(other.CreatedAt)
	}

	return t.ID.String() < other.ID.String()
}

// Clone returns an independent copy of the target.
func (t *Target) Clone() *Target {
	clone := *t
	if t.Address != nil {
		address := *t.Address
		clone.Address = &address
	}
	if t.Radius != nil {
		radius := *t.Radius
		clone.Radius = &radius
	}
	if t.EntryTime != nil {
		entry := *t.EntryTime
		clone.EntryTime = &entry
	}

	return &clone
}

func equalStringPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}

func equalFloatPtr(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}
