package service

import (
	"context"
	"fmt"
)

// Coordinate is a geographic point handed to the geocoder.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// AddressMetadata is the resolved address for a coordinate.
type AddressMetadata struct {
	FullAddress string
}

// GeocodeError is the typed failure for an address lookup, carrying the
// coordinate the lookup was for so the caller can decide whether to retry.
type GeocodeError struct {
	Coordinate Coordinate
	Err        error
}

func (e *GeocodeError) Error() string {
	return fmt.Sprintf("geocode (%f, %f): %v", e.Coordinate.Latitude, e.Coordinate.Longitude, e.Err)
}

func (e *GeocodeError) Unwrap() error {
	return e.Err
}

// Geocoder resolves a coordinate to a human-readable address.
type Geocoder interface {
	// Lookup performs a reverse-geocode of the coordinate.
	Lookup(ctx context.Context, coordinate Coordinate) (*AddressMetadata, error)
}
