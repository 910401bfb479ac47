package entity

import (
	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// Region is the circular geofence derived from a target, the unit the
// location provider actually watches. It is identified by the owning
// target's id.
type Region struct {
	ID        uuid.UUID
	Latitude  float64
	Longitude float64
	Radius    float64 // meters
}

// Center returns the region center as an orb point (lon, lat order).
func (r Region) Center() orb.Point {
	return orb.Point{r.Longitude, r.Latitude}
}

// Contains reports whether the given point lies within the region, using
// geodesic distance on the WGS84 sphere.
func (r Region) Contains(point orb.Point) bool {
	return geo.Distance(r.Center(), point) <= r.Radius
}
