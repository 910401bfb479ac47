package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"geotarget/config"
	"geotarget/internal/domain/service"
	"geotarget/internal/usecase"
)

const defaultSettleDelay = 350 * time.Millisecond

// geocodeService debounces reverse-geocode requests: a new request cancels a
// not-yet-executed pending one and schedules itself after the settle delay.
// This keeps a dragged map pin from flooding the geocoder.
type geocodeService struct {
	geocoder service.Geocoder
	settle   time.Duration
	logger   *slog.Logger

	mu      sync.Mutex
	pending *time.Timer
	closed  bool
}

// NewGeocodeService creates a new debounced geocode service instance
func NewGeocodeService(geocoder service.Geocoder, cfg *config.Config, logger *slog.Logger) usecase.GeocodeUsecase {
	settle := defaultSettleDelay
	if cfg.Geocoder != nil && cfg.Geocoder.SettleDelay > 0 {
		settle = cfg.Geocoder.SettleDelay
	}

	return &geocodeService{
		geocoder: geocoder,
		settle:   settle,
		logger:   logger,
	}
}

// LookupAddress schedules a reverse-geocode after the settle delay,
// superseding any pending request.
func (s *geocodeService) LookupAddress(coordinate service.Coordinate, deliver func(usecase.AddressResult)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	if s.pending != nil {
		s.pending.Stop()
	}

	var timer *time.Timer
	timer = time.AfterFunc(s.settle, func() {
		s.mu.Lock()
		// A stopped timer can still fire if it raced the stop; only the
		// currently pending request may proceed.
		if s.closed || s.pending != timer {
			s.mu.Unlock()

			return
		}
		s.pending = nil
		s.mu.Unlock()

		metadata, err := s.geocoder.Lookup(context.Background(), coordinate)
		if err != nil {
			s.logger.Debug("Reverse geocode failed",
				slog.Float64("lat", coordinate.Latitude),
				slog.Float64("lon", coordinate.Longitude),
				slog.Any("error", err),
			)
		}
		deliver(usecase.AddressResult{
			Coordinate: coordinate,
			Metadata:   metadata,
			Err:        err,
		})
	})
	s.pending = timer
}

// Close cancels any pending lookup and rejects new ones.
func (s *geocodeService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
}
