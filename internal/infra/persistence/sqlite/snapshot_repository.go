package sqlite

import (
	"context"

	"geotarget/internal/domain/entity"
	"geotarget/internal/domain/repository"
	"geotarget/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// snapshotRepository implements repository.SnapshotRepository with one row
// per target. A save replaces the whole table inside a transaction so the
// stored snapshot is never observed half-written.
type snapshotRepository struct {
	db *gorm.DB
}

// NewSnapshotRepository is the constructor for the sqlite snapshot repository.
func NewSnapshotRepository(db *gorm.DB) repository.SnapshotRepository {
	return &snapshotRepository{db: db}
}

// LoadCollection restores the last saved collection from the targets table.
func (repo *snapshotRepository) LoadCollection(ctx context.Context) (*entity.TargetCollection, error) {
	var models []*model.TargetModel
	if err := repo.db.WithContext(ctx).
		Order("created_at asc, id asc").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load targets")
	}

	if len(models) == 0 {
		return nil, repository.ErrSnapshotNotFound
	}

	collection := entity.NewTargetCollection()
	for _, m := range models {
		collection.Put(model.ToTargetDomain(m))
	}

	return collection, nil
}

// SaveCollection replaces the stored snapshot with the given collection.
func (repo *snapshotRepository) SaveCollection(ctx context.Context, collection *entity.TargetCollection) error {
	models := make([]*model.TargetModel, 0, collection.Len())
	for _, target := range collection.Sorted() {
		models = append(models, model.FromTargetDomain(target))
	}

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.TargetModel{}).Error; err != nil {
			return err
		}
		if len(models) == 0 {
			return nil
		}

		return tx.Create(models).Error
	})
	if err != nil {
		return errors.Wrap(err, "failed to save targets")
	}

	return nil
}
