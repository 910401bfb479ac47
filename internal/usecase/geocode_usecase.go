package usecase

import (
	"geotarget/internal/domain/service"
)

// AddressResult delivers the outcome of a debounced address lookup. Exactly
// one of Metadata and Err is set; the coordinate is always the one the
// lookup was requested for.
type AddressResult struct {
	Coordinate service.Coordinate
	Metadata   *service.AddressMetadata
	Err        error
}

// GeocodeUsecase defines the interface for debounced reverse geocoding
type GeocodeUsecase interface {
	// LookupAddress schedules a reverse-geocode after the settle delay.
	// A newer request within the window cancels the pending one; only the
	// request that survives the window reaches the geocoder. The outcome is
	// delivered asynchronously via the callback.
	LookupAddress(coordinate service.Coordinate, deliver func(AddressResult))

	// Close cancels any pending lookup.
	Close()
}
