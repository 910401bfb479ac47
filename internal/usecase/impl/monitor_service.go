package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"geotarget/config"
	"geotarget/internal/domain/entity"
	"geotarget/internal/domain/service"
	"geotarget/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// monitorService is the region monitoring coordinator: it owns the
// authorization/monitoring lifecycle, consumes the provider's event stream
// and applies enter/exit transitions to the shared collection.
type monitorService struct {
	state     *CollectionState
	provider  service.LocationProvider
	scheduler service.NotificationScheduler
	publisher service.EventPublisher
	snapshots usecase.SnapshotUsecase
	cfg       *config.MonitoringConfig
	logger    *slog.Logger

	notifAuthOnce sync.Once
	cancel        context.CancelFunc
	loopDone      chan struct{}
}

// MonitorParams holds dependencies for the coordinator, injected by Fx
type MonitorParams struct {
	fx.In
	fx.Lifecycle

	State     *CollectionState
	Provider  service.LocationProvider
	Scheduler service.NotificationScheduler
	Publisher service.EventPublisher
	Snapshots usecase.SnapshotUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// NewMonitorService creates the coordinator and registers its event loop
// with the application lifecycle.
func NewMonitorService(params MonitorParams) usecase.MonitorUsecase {
	s := &monitorService{
		state:     params.State,
		provider:  params.Provider,
		scheduler: params.Scheduler,
		publisher: params.Publisher,
		snapshots: params.Snapshots,
		cfg:       params.Config.Monitoring,
		logger:    params.Logger,
	}

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			runCtx, cancel := context.WithCancel(context.Background())
			s.cancel = cancel
			s.loopDone = make(chan struct{})
			go s.run(runCtx)

			return nil
		},
		OnStop: func(ctx context.Context) error {
			s.cancel()
			select {
			case <-s.loopDone:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	})

	return s
}

// CheckAuthorization requests authorization when undetermined; the decision
// arrives asynchronously through the event stream. An already-decided status
// is returned as is.
func (s *monitorService) CheckAuthorization(ctx context.Context) service.AuthorizationStatus {
	status := s.provider.Authorization()
	switch status {
	case service.AuthorizationUndetermined:
		s.provider.RequestAuthorization(ctx)
	case service.AuthorizationGranted, service.AuthorizationDenied:
	default:
		// Statically exhaustive; a new status is a programming error.
		panic(fmt.Sprintf("unhandled authorization status: %d", status))
	}

	return status
}

// StartMonitoring begins watching the target's derived region. No entity
// mutation happens here; confirmation or failure arrives asynchronously.
func (s *monitorService) StartMonitoring(ctx context.Context, target *entity.Target) bool {
	region := target.Region(s.cfg.DefaultRadius)
	if err := s.provider.StartMonitoring(region); err != nil {
		s.logger.Warn("Failed to start monitoring",
			slog.String("target_id", target.ID.String()),
			slog.Any("error", err),
		)

		return false
	}

	return true
}

// StopMonitoring stops the region watch and cancels the target's scheduled
// notification. A watch that already lapsed reports "not stopped" without
// being an error.
func (s *monitorService) StopMonitoring(ctx context.Context, id uuid.UUID) bool {
	if !s.provider.StopMonitoring(id) {
		return false
	}

	if err := s.scheduler.Cancel(ctx, id); err != nil {
		s.logger.Warn("Failed to cancel notification",
			slog.String("target_id", id.String()),
			slog.Any("error", err),
		)
	}

	return true
}

// MonitoredRegions returns the currently watched regions.
func (s *monitorService) MonitoredRegions(ctx context.Context) []entity.Region {
	return s.provider.MonitoredRegions()
}

func (s *monitorService) run(ctx context.Context) {
	defer close(s.loopDone)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-s.provider.Events():
			if !ok {
				return
			}
			s.handleEvent(ctx, event)
		}
	}
}

func (s *monitorService) handleEvent(ctx context.Context, event service.LocationEvent) {
	switch event.Kind {
	case service.EventAuthorizationChanged:
		s.handleAuthorizationChanged(event.Status)
	case service.EventMonitoringStarted:
		s.handleMonitoringStarted(ctx, event.RegionID)
	case service.EventEntered:
		s.applyCrossing(ctx, event, true)
	case service.EventExited:
		s.applyCrossing(ctx, event, false)
	case service.EventMonitoringFailed:
		s.logger.Warn("Monitoring failed",
			slog.String("region_id", event.RegionID.String()),
			slog.Any("error", event.Err),
		)
	default:
		// Statically exhaustive; a new event kind is a programming error.
		panic(fmt.Sprintf("unhandled location event kind: %d", event.Kind))
	}
}

// handleAuthorizationChanged surfaces the new status. A downgrade leaves all
// accumulated statistics intact; monitoring simply stays inactive until
// re-authorized.
func (s *monitorService) handleAuthorizationChanged(status service.AuthorizationStatus) {
	if status == service.AuthorizationDenied {
		s.logger.Warn("Location authorization denied, monitoring inactive")

		return
	}
	s.logger.Info("Location authorization changed", slog.String("status", status.String()))
}

// handleMonitoringStarted requests notification authorization lazily on the
// first confirmed watch and schedules the target's notification.
func (s *monitorService) handleMonitoringStarted(ctx context.Context, regionID uuid.UUID) {
	s.notifAuthOnce.Do(func() {
		if err := s.scheduler.RequestAuthorization(ctx); err != nil {
			s.logger.Warn("Notification authorization failed", slog.Any("error", err))
		}
	})

	s.state.mu.Lock()
	target := s.state.live.Get(regionID)
	var clone *entity.Target
	if target != nil {
		clone = target.Clone()
	}
	s.state.mu.Unlock()

	if clone == nil {
		return
	}
	if err := s.scheduler.Schedule(ctx, []*entity.Target{clone}); err != nil {
		s.logger.Warn("Failed to schedule notification",
			slog.String("target_id", regionID.String()),
			slog.Any("error", err),
		)
	}
}

// applyCrossing applies one enter or exit transition. The save outcome never
// rolls back the in-memory transition: a failed write is healed by the next
// successful save, which carries the full cumulative state.
func (s *monitorService) applyCrossing(ctx context.Context, event service.LocationEvent, entered bool) {
	s.state.mu.Lock()
	target := s.state.live.Get(event.RegionID)
	if target == nil {
		s.state.mu.Unlock()
		// The target was removed after monitoring began; benign race.
		s.logger.Debug("Crossing for unknown target, ignoring",
			slog.String("region_id", event.RegionID.String()),
		)

		return
	}

	if entered {
		target.RecordEntry(event.At)
	} else {
		target.RecordExit(event.At)
	}
	s.state.live.Put(target)
	s.snapshots.SaveAsync(s.state.live, nil)
	clone := target.Clone()
	s.state.mu.Unlock()

	if err := s.scheduler.Schedule(ctx, []*entity.Target{clone}); err != nil {
		s.logger.Warn("Failed to schedule notification",
			slog.String("target_id", clone.ID.String()),
			slog.Any("error", err),
		)
	}

	kind := "exit"
	if entered {
		kind = "entry"
	}
	visitEvent := &service.VisitEvent{
		TargetID:     clone.ID.String(),
		Kind:         kind,
		At:           event.At.Unix(),
		VisitCount:   clone.VisitCount,
		DwellSeconds: clone.DwellTime.Seconds(),
	}
	if err := s.publisher.PublishVisitEvent(ctx, visitEvent); err != nil {
		s.logger.Warn("Failed to publish visit event",
			slog.String("target_id", clone.ID.String()),
			slog.Any("error", err),
		)
	}
}
