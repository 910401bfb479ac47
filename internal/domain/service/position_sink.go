package service

import (
	"time"
)

// PositionSink consumes raw device position fixes. The region watcher
// implements it to derive enter/exit crossings geometrically.
type PositionSink interface {
	// UpdatePosition feeds one device fix. Crossing events derived from it
	// are delivered asynchronously through the provider's event stream.
	UpdatePosition(coordinate Coordinate, at time.Time)
}
