package file

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"geotarget/internal/domain/entity"
	domainerrors "geotarget/internal/domain/errors"
	"geotarget/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memByteStore keeps the snapshot bytes in memory.
type memByteStore struct {
	data []byte
}

func (s *memByteStore) Load(ctx context.Context) ([]byte, error) {
	if s.data == nil {
		return nil, ErrNotFound
	}

	return s.data, nil
}

func (s *memByteStore) Save(ctx context.Context, data []byte) error {
	s.data = data

	return nil
}

func TestSnapshotRepository_LoadWithoutSave(t *testing.T) {
	repo := NewSnapshotRepository(&memByteStore{})

	_, err := repo.LoadCollection(context.Background())
	assert.ErrorIs(t, err, repository.ErrSnapshotNotFound)
}

func TestSnapshotRepository_Roundtrip(t *testing.T) {
	repo := NewSnapshotRepository(&memByteStore{})
	ctx := context.Background()

	address := "7 Xinyi Road"
	radius := 150.0
	target := entity.NewTarget("Office", 25.0330, 121.5654)
	target.Address = &address
	target.Radius = &radius

	entered := time.Now().Truncate(time.Second)
	target.RecordEntry(entered)
	target.RecordExit(entered.Add(45 * time.Minute))
	target.RecordEntry(entered.Add(2 * time.Hour))

	plain := entity.NewTarget("Home", 24.0, 120.0)

	require.NoError(t, repo.SaveCollection(ctx, entity.NewTargetCollection(target, plain)))

	loaded, err := repo.LoadCollection(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, loaded.Len())

	restored := loaded.Get(target.ID)
	require.NotNil(t, restored)
	assert.Equal(t, "Office", restored.Title)
	assert.Equal(t, 25.0330, restored.Latitude)
	assert.Equal(t, 121.5654, restored.Longitude)
	require.NotNil(t, restored.Address)
	assert.Equal(t, address, *restored.Address)
	require.NotNil(t, restored.Radius)
	assert.Equal(t, radius, *restored.Radius)
	assert.Equal(t, 2, restored.VisitCount)
	assert.Equal(t, 45*time.Minute, restored.DwellTime)
	assert.True(t, restored.Inside())

	restoredPlain := loaded.Get(plain.ID)
	require.NotNil(t, restoredPlain)
	assert.Nil(t, restoredPlain.Address)
	assert.Nil(t, restoredPlain.Radius)
	assert.False(t, restoredPlain.Inside())
}

func TestSnapshotRepository_MalformedMandatoryFieldFailsLoad(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name string
		data string
	}{
		{"missing id", `[{"title":"Office","coordinate":{"lat":25,"lon":121},"createdAt":"2026-01-02T15:04:05Z","visitCount":0,"dwellTime":0}]`},
		{"missing title", `[{"id":"0b8e465b-9bd9-4b45-9d07-0f90936c1f1b","coordinate":{"lat":25,"lon":121},"createdAt":"2026-01-02T15:04:05Z","visitCount":0,"dwellTime":0}]`},
		{"missing coordinate", `[{"id":"0b8e465b-9bd9-4b45-9d07-0f90936c1f1b","title":"Office","createdAt":"2026-01-02T15:04:05Z","visitCount":0,"dwellTime":0}]`},
		{"missing visitCount", `[{"id":"0b8e465b-9bd9-4b45-9d07-0f90936c1f1b","title":"Office","coordinate":{"lat":25,"lon":121},"createdAt":"2026-01-02T15:04:05Z","dwellTime":0}]`},
		{"malformed id", `[{"id":"not-a-uuid","title":"Office","coordinate":{"lat":25,"lon":121},"createdAt":"2026-01-02T15:04:05Z","visitCount":0,"dwellTime":0}]`},
		{"not json", `{{{`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := NewSnapshotRepository(&memByteStore{data: []byte(tc.data)})

			_, err := repo.LoadCollection(ctx)
			require.ErrorIs(t, err, domainerrors.ErrSnapshotCorrupted)
			assert.NotErrorIs(t, err, repository.ErrSnapshotNotFound)
		})
	}
}

func TestOSByteStore_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "targets.json")
	store := NewOSByteStore(path)
	ctx := context.Background()

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Save(ctx, []byte(`[]`)))

	data, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), data)

	// A second save replaces the previous snapshot as a unit.
	require.NoError(t, store.Save(ctx, []byte(`[1]`)))
	data, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[1]`), data)
}
