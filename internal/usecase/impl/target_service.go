package impl

import (
	"context"
	"fmt"
	"log/slog"

	"geotarget/config"
	"geotarget/internal/domain/entity"
	domainerrors "geotarget/internal/domain/errors"
	"geotarget/internal/domain/service"
	"geotarget/internal/usecase"

	"github.com/google/uuid"
)

type targetService struct {
	state     *CollectionState
	snapshots usecase.SnapshotUsecase
	monitor   usecase.MonitorUsecase
	geocode   usecase.GeocodeUsecase
	cfg       *config.Config
	logger    *slog.Logger
}

// NewTargetService creates a new target service instance
func NewTargetService(
	state *CollectionState,
	snapshots usecase.SnapshotUsecase,
	monitor usecase.MonitorUsecase,
	geocode usecase.GeocodeUsecase,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.TargetUsecase {
	return &targetService{
		state:     state,
		snapshots: snapshots,
		monitor:   monitor,
		geocode:   geocode,
		cfg:       cfg,
		logger:    logger,
	}
}

// Load restores the collection from storage and re-establishes monitoring
// for every target.
func (s *targetService) Load(ctx context.Context) error {
	collection, err := s.snapshots.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load collection: %w", err)
	}

	s.state.mu.Lock()
	s.state.live = collection
	s.state.baseline = collection.Copy()
	targets := collection.Sorted()
	clones := make([]*entity.Target, 0, len(targets))
	for _, target := range targets {
		clones = append(clones, target.Clone())
	}
	s.state.mu.Unlock()

	s.monitor.CheckAuthorization(ctx)
	for _, target := range clones {
		s.monitor.StartMonitoring(ctx, target)
	}

	return nil
}

// Targets returns the live targets ordered by creation time. The returned
// entities are copies; the shared state never escapes the lock.
func (s *targetService) Targets(ctx context.Context) []*entity.Target {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	sorted := s.state.live.Sorted()
	targets := make([]*entity.Target, 0, len(sorted))
	for _, target := range sorted {
		targets = append(targets, target.Clone())
	}

	return targets
}

// Target returns the target with the given id, or nil.
func (s *targetService) Target(ctx context.Context, id uuid.UUID) *entity.Target {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	target := s.state.live.Get(id)
	if target == nil {
		return nil
	}

	return target.Clone()
}

// AddTarget creates a target, persists the collection and starts monitoring
// its region. A missing address kicks off a debounced reverse geocode.
func (s *targetService) AddTarget(ctx context.Context, input *usecase.AddTargetInput) (*entity.Target, error) {
	if !validCoordinate(input.Latitude, input.Longitude) {
		return nil, domainerrors.ErrInvalidCoordinate
	}

	target := entity.NewTarget(input.Title, input.Latitude, input.Longitude)
	target.Address = input.Address
	if input.Radius != nil {
		radius := s.clampRadius(*input.Radius)
		target.Radius = &radius
	}

	s.state.mu.Lock()
	s.state.captureBaselineLocked()
	s.state.live.Put(target)
	s.saveLocked()
	clone := target.Clone()
	s.state.mu.Unlock()

	s.monitor.StartMonitoring(ctx, clone)
	if clone.Address == nil {
		s.lookupAddress(clone.ID, service.Coordinate{
			Latitude:  clone.Latitude,
			Longitude: clone.Longitude,
		})
	}

	return clone, nil
}

// UpdateTarget applies the edits, persists the collection and refreshes the
// region watch when the derived region changed.
func (s *targetService) UpdateTarget(ctx context.Context, id uuid.UUID, input *usecase.UpdateTargetInput) (*entity.Target, error) {
	if input.Latitude != nil && (*input.Latitude < -90 || *input.Latitude > 90) {
		return nil, domainerrors.ErrInvalidCoordinate
	}
	if input.Longitude != nil && (*input.Longitude < -180 || *input.Longitude > 180) {
		return nil, domainerrors.ErrInvalidCoordinate
	}

	s.state.mu.Lock()
	target := s.state.live.Get(id)
	if target == nil {
		s.state.mu.Unlock()

		return nil, domainerrors.ErrTargetNotFound
	}
	s.state.captureBaselineLocked()

	regionChanged := s.applyTargetUpdates(target, input)
	s.state.live.Put(target)
	s.saveLocked()
	clone := target.Clone()
	s.state.mu.Unlock()

	if regionChanged {
		s.monitor.StopMonitoring(ctx, id)
		s.monitor.StartMonitoring(ctx, clone)
	}
	if clone.Address == nil {
		s.lookupAddress(id, service.Coordinate{
			Latitude:  clone.Latitude,
			Longitude: clone.Longitude,
		})
	}

	return clone, nil
}

// applyTargetUpdates applies the update input to a target, reporting whether
// the derived region (center or radius) changed. Moving the pin without an
// explicit address invalidates the resolved one; the address depends only on
// the center, so a radius change alone keeps it.
func (s *targetService) applyTargetUpdates(target *entity.Target, input *usecase.UpdateTargetInput) bool {
	moved := false
	if input.Title != nil {
		target.Title = *input.Title
	}
	if input.Latitude != nil && *input.Latitude != target.Latitude {
		target.Latitude = *input.Latitude
		moved = true
	}
	if input.Longitude != nil && *input.Longitude != target.Longitude {
		target.Longitude = *input.Longitude
		moved = true
	}

	regionChanged := moved
	if input.Radius != nil {
		radius := s.clampRadius(*input.Radius)
		target.Radius = &radius
		regionChanged = true
	}

	switch {
	case input.Address != nil:
		target.Address = input.Address
	case moved:
		target.Address = nil
	}

	return regionChanged
}

// RemoveTarget deletes the target, persists the collection and stops the
// region watch.
func (s *targetService) RemoveTarget(ctx context.Context, id uuid.UUID) error {
	s.state.mu.Lock()
	if s.state.live.Get(id) == nil {
		s.state.mu.Unlock()

		return domainerrors.ErrTargetNotFound
	}
	s.state.captureBaselineLocked()
	s.state.live.Remove(id)
	s.saveLocked()
	s.state.mu.Unlock()

	s.monitor.StopMonitoring(ctx, id)

	return nil
}

// ResetAttendance clears the accumulated statistics of one target.
func (s *targetService) ResetAttendance(ctx context.Context, id uuid.UUID) (*entity.Target, error) {
	s.state.mu.Lock()
	target := s.state.live.Get(id)
	if target == nil {
		s.state.mu.Unlock()

		return nil, domainerrors.ErrTargetNotFound
	}
	target.ResetAttendance()
	s.state.live.Put(target)
	s.saveLocked()
	clone := target.Clone()
	s.state.mu.Unlock()

	return clone, nil
}

// ComputeDifferences diffs the live collection against the session baseline.
// The caller receives the baseline collection itself; the service keeps
// working with an equal fresh copy, so the diff basis is unchanged and the
// returned snapshot never aliases internal state.
func (s *targetService) ComputeDifferences(ctx context.Context) *usecase.Differences {
	s.state.mu.Lock()
	s.state.captureBaselineLocked()

	before := s.state.baseline
	diff := s.state.live.Diff(before)
	// Hand out the captured baseline and keep working with a fresh copy so
	// consumers can hold it without aliasing internal state.
	s.state.baseline = before.Copy()

	result := &usecase.Differences{
		Before:  before,
		Added:   cloneTargets(diff.Added),
		Removed: cloneTargets(diff.Removed),
		Updated: cloneTargets(diff.Updated),
	}
	s.state.mu.Unlock()

	return result
}

// lookupAddress resolves the address asynchronously and persists it when the
// target still exists by the time the lookup settles.
func (s *targetService) lookupAddress(id uuid.UUID, coordinate service.Coordinate) {
	s.geocode.LookupAddress(coordinate, func(result usecase.AddressResult) {
		if result.Err != nil {
			s.logger.Warn("Address lookup failed",
				slog.String("target_id", id.String()),
				slog.Any("error", result.Err),
			)

			return
		}

		s.state.mu.Lock()
		defer s.state.mu.Unlock()

		target := s.state.live.Get(id)
		if target == nil {
			return
		}
		address := result.Metadata.FullAddress
		target.Address = &address
		s.state.live.Put(target)
		s.saveLocked()
	})
}

// saveLocked submits an async save of the live collection. Callers hold the
// state mutex; the gateway copies the collection before returning.
func (s *targetService) saveLocked() {
	s.snapshots.SaveAsync(s.state.live, func(saved bool) {
		if !saved {
			s.logger.Warn("Snapshot save failed, in-memory state kept")
		}
	})
}

func (s *targetService) clampRadius(radius float64) float64 {
	cfg := s.cfg.Monitoring
	if radius < cfg.MinRadius {
		return cfg.MinRadius
	}
	if radius > cfg.MaxRadius {
		return cfg.MaxRadius
	}

	return radius
}

// validCoordinate reports whether the pair is within the latitude/longitude
// value ranges.
func validCoordinate(latitude, longitude float64) bool {
	return latitude >= -90 && latitude <= 90 && longitude >= -180 && longitude <= 180
}

func cloneTargets(targets []*entity.Target) []*entity.Target {
	if len(targets) == 0 {
		return nil
	}
	clones := make([]*entity.Target, 0, len(targets))
	for _, target := range targets {
		clones = append(clones, target.Clone())
	}

	return clones
}
