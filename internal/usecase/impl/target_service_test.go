package impl

import (
	"context"
	"sync"
	"testing"

	"geotarget/config"
	"geotarget/internal/domain/entity"
	domainerrors "geotarget/internal/domain/errors"
	"geotarget/internal/domain/service"
	"geotarget/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMonitor records start/stop calls without a real provider.
type fakeMonitor struct {
	mu      sync.Mutex
	started []uuid.UUID
	stopped []uuid.UUID
}

func (f *fakeMonitor) CheckAuthorization(ctx context.Context) service.AuthorizationStatus {
	return service.AuthorizationGranted
}

func (f *fakeMonitor) StartMonitoring(ctx context.Context, target *entity.Target) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.started = append(f.started, target.ID)

	return true
}

func (f *fakeMonitor) StopMonitoring(ctx context.Context, id uuid.UUID) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped = append(f.stopped, id)

	return true
}

func (f *fakeMonitor) MonitoredRegions(ctx context.Context) []entity.Region {
	return nil
}

// fakeGeocode captures lookups so tests can settle them synchronously.
type fakeGeocode struct {
	mu      sync.Mutex
	lookups []service.Coordinate
	deliver func(usecase.AddressResult)
}

func (f *fakeGeocode) LookupAddress(coordinate service.Coordinate, deliver func(usecase.AddressResult)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lookups = append(f.lookups, coordinate)
	f.deliver = deliver
}

func (f *fakeGeocode) Close() {}

func (f *fakeGeocode) settle(result usecase.AddressResult) {
	f.mu.Lock()
	deliver := f.deliver
	f.mu.Unlock()
	deliver(result)
}

type targetFixture struct {
	uc        usecase.TargetUsecase
	state     *CollectionState
	snapshots *fakeSnapshots
	monitor   *fakeMonitor
	geocode   *fakeGeocode
}

func newTargetFixture(t *testing.T) *targetFixture {
	f := &targetFixture{
		state:     NewCollectionState(),
		snapshots: &fakeSnapshots{},
		monitor:   &fakeMonitor{},
		geocode:   &fakeGeocode{},
	}

	cfg := &config.Config{
		Monitoring: &config.MonitoringConfig{
			DefaultRadius:  100,
			MinRadius:      50,
			MaxRadius:      5000,
			RegionCapacity: 20,
		},
	}

	f.uc = NewTargetService(f.state, f.snapshots, f.monitor, f.geocode, cfg, discardLogger())

	return f
}

func TestTargetService_AddTarget(t *testing.T) {
	f := newTargetFixture(t)
	ctx := context.Background()

	target, err := f.uc.AddTarget(ctx, &usecase.AddTargetInput{
		Title:     "Office",
		Latitude:  25.0330,
		Longitude: 121.5654,
	})
	require.NoError(t, err)
	require.NotNil(t, target)

	assert.Len(t, f.uc.Targets(ctx), 1)
	assert.Equal(t, 1, f.snapshots.count())
	assert.Equal(t, []uuid.UUID{target.ID}, f.monitor.started)

	// No address was given, so a reverse geocode was kicked off.
	require.Len(t, f.geocode.lookups, 1)
	assert.Equal(t, 25.0330, f.geocode.lookups[0].Latitude)
}

func TestTargetService_AddTarget_ClampsRadius(t *testing.T) {
	f := newTargetFixture(t)
	ctx := context.Background()

	low := 1.0
	target, err := f.uc.AddTarget(ctx, &usecase.AddTargetInput{
		Title: "Tiny", Latitude: 25.0, Longitude: 121.0, Radius: &low,
	})
	require.NoError(t, err)
	assert.Equal(t, 50.0, *target.Radius)

	high := 100000.0
	target, err = f.uc.AddTarget(ctx, &usecase.AddTargetInput{
		Title: "Huge", Latitude: 25.0, Longitude: 121.0, Radius: &high,
	})
	require.NoError(t, err)
	assert.Equal(t, 5000.0, *target.Radius)
}

func TestTargetService_AddTarget_GeocodeResolvesAddress(t *testing.T) {
	f := newTargetFixture(t)
	ctx := context.Background()

	target, err := f.uc.AddTarget(ctx, &usecase.AddTargetInput{
		Title: "Office", Latitude: 25.0330, Longitude: 121.5654,
	})
	require.NoError(t, err)

	f.geocode.settle(usecase.AddressResult{
		Coordinate: service.Coordinate{Latitude: 25.0330, Longitude: 121.5654},
		Metadata:   &service.AddressMetadata{FullAddress: "7 Xinyi Road"},
	})

	resolved := f.uc.Target(ctx, target.ID)
	require.NotNil(t, resolved)
	require.NotNil(t, resolved.Address)
	assert.Equal(t, "7 Xinyi Road", *resolved.Address)
}

func TestTargetService_UpdateTarget(t *testing.T) {
	f := newTargetFixture(t)
	ctx := context.Background()

	address := "7 Xinyi Road"
	target, err := f.uc.AddTarget(ctx, &usecase.AddTargetInput{
		Title: "Office", Latitude: 25.0330, Longitude: 121.5654, Address: &address,
	})
	require.NoError(t, err)

	// A pure rename does not touch the region watch or the address.
	title := "HQ"
	updated, err := f.uc.UpdateTarget(ctx, target.ID, &usecase.UpdateTargetInput{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "HQ", updated.Title)
	assert.Equal(t, "7 Xinyi Road", *updated.Address)
	assert.Empty(t, f.monitor.stopped)

	// Moving the pin refreshes the watch and invalidates the address.
	latitude := 24.0
	updated, err = f.uc.UpdateTarget(ctx, target.ID, &usecase.UpdateTargetInput{Latitude: &latitude})
	require.NoError(t, err)
	assert.Nil(t, updated.Address)
	assert.Equal(t, []uuid.UUID{target.ID}, f.monitor.stopped)
	assert.Len(t, f.monitor.started, 2)
	assert.NotEmpty(t, f.geocode.lookups)
}

func TestTargetService_UpdateTarget_RadiusOnlyKeepsAddress(t *testing.T) {
	f := newTargetFixture(t)
	ctx := context.Background()

	address := "7 Xinyi Road"
	target, err := f.uc.AddTarget(ctx, &usecase.AddTargetInput{
		Title: "Office", Latitude: 25.0330, Longitude: 121.5654, Address: &address,
	})
	require.NoError(t, err)

	// The address depends only on the center. A radius change refreshes the
	// watch but keeps the resolved address and triggers no new lookup.
	radius := 250.0
	updated, err := f.uc.UpdateTarget(ctx, target.ID, &usecase.UpdateTargetInput{Radius: &radius})
	require.NoError(t, err)
	require.NotNil(t, updated.Address)
	assert.Equal(t, "7 Xinyi Road", *updated.Address)
	assert.Equal(t, 250.0, *updated.Radius)
	assert.Equal(t, []uuid.UUID{target.ID}, f.monitor.stopped)
	assert.Len(t, f.monitor.started, 2)
	assert.Empty(t, f.geocode.lookups)
}

func TestTargetService_InvalidCoordinateRejected(t *testing.T) {
	f := newTargetFixture(t)
	ctx := context.Background()

	_, err := f.uc.AddTarget(ctx, &usecase.AddTargetInput{
		Title: "Nowhere", Latitude: 91.0, Longitude: 121.0,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinate)
	assert.Empty(t, f.uc.Targets(ctx))
	assert.Zero(t, f.snapshots.count())

	target, err := f.uc.AddTarget(ctx, &usecase.AddTargetInput{
		Title: "Office", Latitude: 25.0330, Longitude: 121.5654,
	})
	require.NoError(t, err)

	longitude := -181.0
	_, err = f.uc.UpdateTarget(ctx, target.ID, &usecase.UpdateTargetInput{Longitude: &longitude})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinate)
	assert.Equal(t, 121.5654, f.uc.Target(ctx, target.ID).Longitude)
}

func TestTargetService_UpdateTarget_NotFound(t *testing.T) {
	f := newTargetFixture(t)

	title := "HQ"
	_, err := f.uc.UpdateTarget(context.Background(), uuid.New(), &usecase.UpdateTargetInput{Title: &title})
	assert.ErrorIs(t, err, domainerrors.ErrTargetNotFound)
}

func TestTargetService_RemoveTarget(t *testing.T) {
	f := newTargetFixture(t)
	ctx := context.Background()

	target, err := f.uc.AddTarget(ctx, &usecase.AddTargetInput{
		Title: "Office", Latitude: 25.0, Longitude: 121.0,
	})
	require.NoError(t, err)

	require.NoError(t, f.uc.RemoveTarget(ctx, target.ID))
	assert.Empty(t, f.uc.Targets(ctx))
	assert.Equal(t, []uuid.UUID{target.ID}, f.monitor.stopped)

	assert.ErrorIs(t, f.uc.RemoveTarget(ctx, target.ID), domainerrors.ErrTargetNotFound)
}

func TestTargetService_ResetAttendance(t *testing.T) {
	f := newTargetFixture(t)
	ctx := context.Background()

	target, err := f.uc.AddTarget(ctx, &usecase.AddTargetInput{
		Title: "Office", Latitude: 25.0, Longitude: 121.0,
	})
	require.NoError(t, err)

	f.state.mu.Lock()
	f.state.live.Get(target.ID).VisitCount = 7
	f.state.mu.Unlock()

	reset, err := f.uc.ResetAttendance(ctx, target.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, reset.VisitCount)

	_, err = f.uc.ResetAttendance(ctx, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrTargetNotFound)
}

func TestTargetService_ComputeDifferences(t *testing.T) {
	f := newTargetFixture(t)
	ctx := context.Background()

	kept, err := f.uc.AddTarget(ctx, &usecase.AddTargetInput{
		Title: "Office", Latitude: 25.0, Longitude: 121.0,
	})
	require.NoError(t, err)

	// First cycle reports the initial add.
	diff := f.uc.ComputeDifferences(ctx)
	require.Len(t, diff.Added, 1)
	assert.Equal(t, kept.ID, diff.Added[0].ID)
	assert.Equal(t, 0, diff.Before.Len())

	// Edits after the cycle diff against the just-reported baseline.
	title := "HQ"
	_, err = f.uc.UpdateTarget(ctx, kept.ID, &usecase.UpdateTargetInput{Title: &title})
	require.NoError(t, err)

	added, err := f.uc.AddTarget(ctx, &usecase.AddTargetInput{
		Title: "Gym", Latitude: 25.05, Longitude: 121.55,
	})
	require.NoError(t, err)

	diff = f.uc.ComputeDifferences(ctx)
	require.Len(t, diff.Added, 2)
	assert.Empty(t, diff.Removed)
	ids := []uuid.UUID{diff.Added[0].ID, diff.Added[1].ID}
	assert.Contains(t, ids, kept.ID)
	assert.Contains(t, ids, added.ID)
}

func TestTargetService_Load(t *testing.T) {
	f := newTargetFixture(t)
	ctx := context.Background()

	stored := entity.NewTarget("Office", 25.0, 121.0)
	f.snapshots.loadResult = entity.NewTargetCollection(stored)

	require.NoError(t, f.uc.Load(ctx))
	targets := f.uc.Targets(ctx)
	require.Len(t, targets, 1)
	assert.Equal(t, stored.ID, targets[0].ID)
	assert.Equal(t, []uuid.UUID{stored.ID}, f.monitor.started)
}
