package service

import (
	"context"
	"time"

	"geotarget/internal/domain/entity"

	"github.com/google/uuid"
)

// AuthorizationStatus is the location provider's authorization state,
// orthogonal to per-region monitoring state.
type AuthorizationStatus int

const (
	// AuthorizationUndetermined means the provider has not been asked yet.
	AuthorizationUndetermined AuthorizationStatus = iota
	// AuthorizationGranted means monitoring may run.
	AuthorizationGranted
	// AuthorizationDenied means the user or platform refused access.
	AuthorizationDenied
)

// String returns a human-readable status name.
func (s AuthorizationStatus) String() string {
	switch s {
	case AuthorizationUndetermined:
		return "undetermined"
	case AuthorizationGranted:
		return "granted"
	case AuthorizationDenied:
		return "denied"
	}

	return "unknown"
}

// LocationEventKind discriminates the asynchronous events a location
// provider delivers.
type LocationEventKind int

const (
	// EventAuthorizationChanged reports a new authorization status.
	EventAuthorizationChanged LocationEventKind = iota
	// EventMonitoringStarted confirms a region watch became active.
	EventMonitoringStarted
	// EventEntered reports the device crossed into a region.
	EventEntered
	// EventExited reports the device crossed out of a region.
	EventExited
	// EventMonitoringFailed reports a region watch could not be established.
	EventMonitoringFailed
)

// LocationEvent is a single asynchronous callback from the location
// provider. RegionID identifies the region for monitoring and crossing
// events; Err is set only for EventMonitoringFailed.
type LocationEvent struct {
	Kind     LocationEventKind
	Status   AuthorizationStatus
	RegionID uuid.UUID
	At       time.Time
	Err      error
}

// LocationProvider is the platform-facing collaborator that watches circular
// regions and delivers crossing events. Implementations own a finite watch
// capacity; StartMonitoring fails once it is exhausted.
type LocationProvider interface {
	// RequestAuthorization asks the platform for permission to monitor.
	// The decision arrives asynchronously as an EventAuthorizationChanged.
	RequestAuthorization(ctx context.Context)

	// Authorization returns the current authorization status.
	Authorization() AuthorizationStatus

	// StartMonitoring begins watching the given region. Confirmation or
	// failure is delivered asynchronously through Events.
	StartMonitoring(region entity.Region) error

	// StopMonitoring stops watching the region with the given id, reporting
	// whether a watch was actually active.
	StopMonitoring(id uuid.UUID) bool

	// MonitoredRegions returns the currently watched regions.
	MonitoredRegions() []entity.Region

	// Events is the stream of asynchronous provider callbacks. The channel
	// is closed when the provider shuts down.
	Events() <-chan LocationEvent
}
