// Package location implements the location provider as a region watcher fed
// by device position fixes. It stands in for a platform geofencing service:
// finite watch capacity, asynchronous confirmations, crossing events derived
// from geodesic containment checks.
package location

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"geotarget/config"
	"geotarget/internal/domain/entity"
	domainerrors "geotarget/internal/domain/errors"
	"geotarget/internal/domain/service"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"go.uber.org/fx"
)

const eventBuffer = 64

// Watcher implements service.LocationProvider and service.PositionSink.
type Watcher struct {
	logger   *slog.Logger
	capacity int

	mu      sync.Mutex
	status  service.AuthorizationStatus
	regions map[uuid.UUID]entity.Region
	inside  map[uuid.UUID]bool
	closed  bool

	events chan service.LocationEvent
}

// Params holds dependencies for the region watcher, injected by Fx
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the region watcher and registers its shutdown hook.
func New(params Params) *Watcher {
	w := &Watcher{
		logger:   params.Logger,
		capacity: params.Config.Monitoring.RegionCapacity,
		status:   service.AuthorizationUndetermined,
		regions:  make(map[uuid.UUID]entity.Region),
		inside:   make(map[uuid.UUID]bool),
		events:   make(chan service.LocationEvent, eventBuffer),
	}

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			w.close()

			return nil
		},
	})

	return w
}

// RequestAuthorization asks for permission to monitor. The watcher is local
// to the process, so the decision is always a grant; it is still delivered
// asynchronously to preserve the platform contract.
func (w *Watcher) RequestAuthorization(ctx context.Context) {
	w.mu.Lock()
	if w.status != service.AuthorizationUndetermined {
		w.mu.Unlock()

		return
	}
	w.status = service.AuthorizationGranted
	w.mu.Unlock()

	w.emit(service.LocationEvent{
		Kind:   service.EventAuthorizationChanged,
		Status: service.AuthorizationGranted,
		At:     time.Now(),
	})
}

// Authorization returns the current authorization status.
func (w *Watcher) Authorization() service.AuthorizationStatus {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.status
}

// StartMonitoring begins watching the region. The device is assumed outside
// until a position fix proves otherwise. Confirmation arrives asynchronously.
func (w *Watcher) StartMonitoring(region entity.Region) error {
	w.mu.Lock()
	if _, watched := w.regions[region.ID]; !watched && len(w.regions) >= w.capacity {
		w.mu.Unlock()
		w.emit(service.LocationEvent{
			Kind:     service.EventMonitoringFailed,
			RegionID: region.ID,
			At:       time.Now(),
			Err:      domainerrors.ErrRegionLimitReached,
		})

		return domainerrors.ErrRegionLimitReached
	}
	w.regions[region.ID] = region
	if _, known := w.inside[region.ID]; !known {
		w.inside[region.ID] = false
	}
	w.mu.Unlock()

	w.emit(service.LocationEvent{
		Kind:     service.EventMonitoringStarted,
		RegionID: region.ID,
		At:       time.Now(),
	})

	return nil
}

// StopMonitoring stops watching the region with the given id.
func (w *Watcher) StopMonitoring(id uuid.UUID) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, watched := w.regions[id]; !watched {
		return false
	}
	delete(w.regions, id)
	delete(w.inside, id)

	return true
}

// MonitoredRegions returns the currently watched regions.
func (w *Watcher) MonitoredRegions() []entity.Region {
	w.mu.Lock()
	defer w.mu.Unlock()

	regions := make([]entity.Region, 0, len(w.regions))
	for _, region := range w.regions {
		regions = append(regions, region)
	}

	return regions
}

// Events is the stream of asynchronous watcher callbacks.
func (w *Watcher) Events() <-chan service.LocationEvent {
	return w.events
}

// UpdatePosition feeds one device fix and emits crossing events for every
// watched region whose containment state flipped.
func (w *Watcher) UpdatePosition(coordinate service.Coordinate, at time.Time) {
	point := orb.Point{coordinate.Longitude, coordinate.Latitude}

	w.mu.Lock()
	var crossings []service.LocationEvent
	for id, region := range w.regions {
		contains := region.Contains(point)
		switch {
		case contains && !w.inside[id]:
			w.inside[id] = true
			crossings = append(crossings, service.LocationEvent{
				Kind:     service.EventEntered,
				RegionID: id,
				At:       at,
			})
		case !contains && w.inside[id]:
			w.inside[id] = false
			crossings = append(crossings, service.LocationEvent{
				Kind:     service.EventExited,
				RegionID: id,
				At:       at,
			})
		}
	}
	w.mu.Unlock()

	for _, event := range crossings {
		w.emit(event)
	}
}

// emit delivers an event without ever blocking the caller. An overflowing
// consumer loses events, which the platform contract permits.
func (w *Watcher) emit(event service.LocationEvent) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}

	select {
	case w.events <- event:
	default:
		w.logger.Warn("Dropping location event, consumer too slow",
			slog.Int("kind", int(event.Kind)),
			slog.String("region_id", event.RegionID.String()),
		)
	}
}

func (w *Watcher) close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	w.closed = true
	close(w.events)
}
