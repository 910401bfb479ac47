package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"geotarget/internal/domain/entity"
	"geotarget/internal/domain/repository"
	"geotarget/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "targets.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.TargetModel{}))

	return db
}

func TestSqliteSnapshotRepository_EmptyTable(t *testing.T) {
	repo := NewSnapshotRepository(newTestDB(t))

	_, err := repo.LoadCollection(context.Background())
	assert.ErrorIs(t, err, repository.ErrSnapshotNotFound)
}

func TestSqliteSnapshotRepository_Roundtrip(t *testing.T) {
	repo := NewSnapshotRepository(newTestDB(t))
	ctx := context.Background()

	address := "7 Xinyi Road"
	radius := 250.0
	entry := time.Date(2026, 1, 2, 9, 0, 0, 0, time.UTC)
	office := entity.NewTarget("Office", 25.0330, 121.5654)
	office.CreatedAt = time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	office.Address = &address
	office.Radius = &radius
	office.VisitCount = 2
	office.DwellTime = 45 * time.Minute
	office.EntryTime = &entry

	gym := entity.NewTarget("Gym", 25.0418, 121.5081)
	gym.CreatedAt = office.CreatedAt.Add(time.Hour)

	require.NoError(t, repo.SaveCollection(ctx, entity.NewTargetCollection(office, gym)))

	restored, err := repo.LoadCollection(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, restored.Len())

	// Creation order survives the row store.
	assert.Equal(t, office.ID, restored.At(0).ID)
	assert.Equal(t, gym.ID, restored.At(1).ID)

	got := restored.Get(office.ID)
	require.NotNil(t, got)
	assert.Equal(t, "Office", got.Title)
	require.NotNil(t, got.Address)
	assert.Equal(t, "7 Xinyi Road", *got.Address)
	require.NotNil(t, got.Radius)
	assert.Equal(t, 250.0, *got.Radius)
	assert.Equal(t, 2, got.VisitCount)
	assert.Equal(t, 45*time.Minute, got.DwellTime)
	require.NotNil(t, got.EntryTime)
	assert.True(t, entry.Equal(*got.EntryTime))

	plain := restored.Get(gym.ID)
	require.NotNil(t, plain)
	assert.Nil(t, plain.Address)
	assert.Nil(t, plain.Radius)
	assert.Nil(t, plain.EntryTime)
}

func TestSqliteSnapshotRepository_SaveReplaces(t *testing.T) {
	repo := NewSnapshotRepository(newTestDB(t))
	ctx := context.Background()

	office := entity.NewTarget("Office", 25.0330, 121.5654)
	gym := entity.NewTarget("Gym", 25.0418, 121.5081)
	gym.CreatedAt = office.CreatedAt.Add(time.Hour)
	require.NoError(t, repo.SaveCollection(ctx, entity.NewTargetCollection(office, gym)))

	// The next save holds only one target; the removed row must not linger.
	require.NoError(t, repo.SaveCollection(ctx, entity.NewTargetCollection(gym)))

	restored, err := repo.LoadCollection(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, restored.Len())
	assert.Equal(t, gym.ID, restored.At(0).ID)
	assert.Nil(t, restored.Get(office.ID))

	// Saving an empty collection clears the table entirely.
	require.NoError(t, repo.SaveCollection(ctx, entity.NewTargetCollection()))
	_, err = repo.LoadCollection(ctx)
	assert.ErrorIs(t, err, repository.ErrSnapshotNotFound)
}
