package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"geotarget/internal/domain/entity"
	"geotarget/internal/domain/repository"
	"geotarget/internal/usecase"
)

const (
	saveQueueDepth = 64
	saveTimeout    = 10 * time.Second
)

type saveJob struct {
	collection *entity.TargetCollection
	done       func(saved bool)
}

// snapshotService is the persistence gateway. A single worker goroutine
// drains the save queue, so at most one save runs against the repository at
// any time while callers never block.
type snapshotService struct {
	repo   repository.SnapshotRepository
	logger *slog.Logger

	jobs      chan saveJob
	drained   chan struct{}
	closeOnce sync.Once

	mu     sync.Mutex
	closed bool
}

// NewSnapshotService creates a new snapshot gateway instance
func NewSnapshotService(repo repository.SnapshotRepository, logger *slog.Logger) usecase.SnapshotUsecase {
	s := &snapshotService{
		repo:    repo,
		logger:  logger,
		jobs:    make(chan saveJob, saveQueueDepth),
		drained: make(chan struct{}),
	}
	go s.run()

	return s
}

// Load restores the last saved collection. A missing snapshot yields an
// empty collection, never an error surfaced to the caller.
func (s *snapshotService) Load(ctx context.Context) (*entity.TargetCollection, error) {
	collection, err := s.repo.LoadCollection(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrSnapshotNotFound) {
			s.logger.Info("No stored snapshot, starting with an empty collection")

			return entity.NewTargetCollection(), nil
		}

		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	return collection, nil
}

// SaveAsync copies the collection synchronously and submits the write to the
// save lane. The copy happens before SaveAsync returns, so callers may keep
// mutating the collection under their own lock.
func (s *snapshotService) SaveAsync(collection *entity.TargetCollection, done func(saved bool)) {
	job := saveJob{
		collection: collection.Copy(),
		done:       done,
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		s.report(job, false)

		return
	}

	select {
	case s.jobs <- job:
		s.mu.Unlock()
	default:
		s.mu.Unlock()
		// A full queue means the store is badly behind; the next accepted
		// save carries the full cumulative state anyway.
		s.logger.Warn("Save queue full, dropping snapshot save")
		s.report(job, false)
	}
}

// Close stops accepting saves and drains the queue.
func (s *snapshotService) Close() {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		s.closed = true
		close(s.jobs)
		s.mu.Unlock()
		<-s.drained
	})
}

func (s *snapshotService) run() {
	defer close(s.drained)

	for job := range s.jobs {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		err := s.repo.SaveCollection(ctx, job.collection)
		cancel()

		if err != nil {
			s.logger.Warn("Snapshot save failed", slog.Any("error", err))
		}
		s.report(job, err == nil)
	}
}

func (s *snapshotService) report(job saveJob, saved bool) {
	if job.done != nil {
		job.done(saved)
	}
}
