package main

import (
	"context"
	"log/slog"
	"os"

	"geotarget/config"
	"geotarget/internal/delivery"
	"geotarget/internal/delivery/http"
	"geotarget/internal/delivery/http/router/handler"
	"geotarget/internal/domain/repository"
	"geotarget/internal/domain/service"
	"geotarget/internal/infra/geocoder"
	"geotarget/internal/infra/location"
	logs "geotarget/internal/infra/log"
	"geotarget/internal/infra/notification"
	"geotarget/internal/infra/persistence"
	"geotarget/internal/infra/pubsub"
	"geotarget/internal/usecase"
	"geotarget/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			startServer,
			loadTargets,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		location.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			persistence.NewSnapshotRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newLocationProvider,
			newPositionSink,
			notification.NewScheduler,
			pubsub.NewEventPublisher,
			geocoder.New,
		),
	)
}

// newLocationProvider exposes the region watcher as the monitoring provider
func newLocationProvider(w *location.Watcher) service.LocationProvider {
	return w
}

// newPositionSink exposes the region watcher as the position fix consumer
func newPositionSink(w *location.Watcher) service.PositionSink {
	return w
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCollectionState,
			newSnapshotUsecase,
			newGeocodeUsecase,
			impl.NewMonitorService,
			impl.NewTargetService,
		),
	)
}

// newSnapshotUsecase creates the persistence gateway and drains its save lane
// on shutdown
func newSnapshotUsecase(lc fx.Lifecycle, repo repository.SnapshotRepository, logger *slog.Logger) usecase.SnapshotUsecase {
	svc := impl.NewSnapshotService(repo, logger)

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			svc.Close()

			return nil
		},
	})

	return svc
}

// newGeocodeUsecase creates the debounced geocode service and cancels any
// pending lookup on shutdown
func newGeocodeUsecase(lc fx.Lifecycle, g service.Geocoder, cfg *config.Config, logger *slog.Logger) usecase.GeocodeUsecase {
	svc := impl.NewGeocodeService(g, cfg, logger)

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			svc.Close()

			return nil
		},
	})

	return svc
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewTargetHandler,
			handler.NewMonitorHandler,
			handler.NewPositionHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}

// loadTargets restores the persisted collection once the monitoring loop is
// running and re-establishes region watches for every target.
func loadTargets(lc fx.Lifecycle, targetUC usecase.TargetUsecase) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return targetUC.Load(ctx)
		},
	})
}
