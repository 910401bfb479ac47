// Package file persists the target collection as a JSON snapshot handed to a
// byte-level store. The codec lives here; the store only moves bytes.
package file

import (
	"context"
	"encoding/json"
	"time"

	"geotarget/internal/domain/entity"
	domainerrors "geotarget/internal/domain/errors"
	"geotarget/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ByteStore is the black-box storage collaborator: it loads and saves an
// opaque byte slice. A missing prior save surfaces as ErrNotFound.
type ByteStore interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}

// ErrNotFound is returned by a ByteStore when nothing has been saved yet.
var ErrNotFound = errors.New("no stored snapshot")

// coordinateRecord is the nested coordinate of a snapshot record.
type coordinateRecord struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// targetRecord is one persisted target. Mandatory fields are pointers so a
// missing field is distinguishable from a zero value on decode; optional
// fields decode to absent rather than failing the load. ExitTime is carried
// for format compatibility, it is a pure trigger and never set in steady
// state.
type targetRecord struct {
	ID         *string           `json:"id"`
	Title      *string           `json:"title"`
	Coordinate *coordinateRecord `json:"coordinate"`
	CreatedAt  *time.Time        `json:"createdAt"`
	Address    *string           `json:"address,omitempty"`
	Radius     *float64          `json:"radius,omitempty"`
	VisitCount *int              `json:"visitCount"`
	DwellTime  *float64          `json:"dwellTime"` // seconds
	EntryTime  *time.Time        `json:"entryTime,omitempty"`
	ExitTime   *time.Time        `json:"exitTime,omitempty"`
}

// snapshotRepository implements repository.SnapshotRepository over a ByteStore.
type snapshotRepository struct {
	store ByteStore
}

// NewSnapshotRepository is the constructor for the file snapshot repository.
func NewSnapshotRepository(store ByteStore) repository.SnapshotRepository {
	return &snapshotRepository{store: store}
}

// LoadCollection restores the last saved collection. A malformed mandatory
// field fails the whole load: identity is never fabricated.
func (repo *snapshotRepository) LoadCollection(ctx context.Context) (*entity.TargetCollection, error) {
	data, err := repo.store.Load(ctx)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, repository.ErrSnapshotNotFound
		}

		return nil, errors.Wrap(err, "failed to load snapshot bytes")
	}

	var records []targetRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errors.Wrapf(domainerrors.ErrSnapshotCorrupted, "failed to decode snapshot: %v", err)
	}

	collection := entity.NewTargetCollection()
	for i, record := range records {
		target, err := record.toDomain()
		if err != nil {
			return nil, errors.Wrapf(domainerrors.ErrSnapshotCorrupted, "invalid snapshot record %d: %v", i, err)
		}
		collection.Put(target)
	}

	return collection, nil
}

// SaveCollection serializes the collection and hands the bytes to the store.
func (repo *snapshotRepository) SaveCollection(ctx context.Context, collection *entity.TargetCollection) error {
	targets := collection.Sorted()
	records := make([]targetRecord, 0, len(targets))
	for _, target := range targets {
		records = append(records, fromDomain(target))
	}

	data, err := json.Marshal(records)
	if err != nil {
		return errors.Wrap(err, "failed to encode snapshot")
	}

	if err := repo.store.Save(ctx, data); err != nil {
		return errors.Wrap(err, "failed to save snapshot bytes")
	}

	return nil
}

func (r targetRecord) toDomain() (*entity.Target, error) {
	switch {
	case r.ID == nil:
		return nil, errors.New("missing id")
	case r.Title == nil:
		return nil, errors.New("missing title")
	case r.Coordinate == nil:
		return nil, errors.New("missing coordinate")
	case r.CreatedAt == nil:
		return nil, errors.New("missing createdAt")
	case r.VisitCount == nil:
		return nil, errors.New("missing visitCount")
	case r.DwellTime == nil:
		return nil, errors.New("missing dwellTime")
	}

	id, err := uuid.Parse(*r.ID)
	if err != nil {
		return nil, errors.Wrap(err, "malformed id")
	}

	return &entity.Target{
		ID:         id,
		Title:      *r.Title,
		Latitude:   r.Coordinate.Lat,
		Longitude:  r.Coordinate.Lon,
		Address:    r.Address,
		Radius:     r.Radius,
		CreatedAt:  *r.CreatedAt,
		VisitCount: *r.VisitCount,
		DwellTime:  time.Duration(*r.DwellTime * float64(time.Second)),
		EntryTime:  r.EntryTime,
	}, nil
}

func fromDomain(target *entity.Target) targetRecord {
	id := target.ID.String()
	title := target.Title
	createdAt := target.CreatedAt
	visitCount := target.VisitCount
	dwellSeconds := target.DwellTime.Seconds()

	return targetRecord{
		ID:         &id,
		Title:      &title,
		Coordinate: &coordinateRecord{Lat: target.Latitude, Lon: target.Longitude},
		CreatedAt:  &createdAt,
		Address:    target.Address,
		Radius:     target.Radius,
		VisitCount: &visitCount,
		DwellTime:  &dwellSeconds,
		EntryTime:  target.EntryTime,
	}
}
