package notification

import (
	"context"
	"log/slog"
	"sync"

	"geotarget/internal/domain/entity"
	"geotarget/internal/domain/service"

	"github.com/google/uuid"
)

// logScheduler records scheduled notifications in memory and logs them.
// It is the default scheduler for development and tests.
type logScheduler struct {
	logger *slog.Logger

	mu        sync.Mutex
	scheduled map[uuid.UUID]string
}

// NewLogScheduler creates the structured-log scheduler.
func NewLogScheduler(logger *slog.Logger) service.NotificationScheduler {
	return &logScheduler{
		logger:    logger,
		scheduled: make(map[uuid.UUID]string),
	}
}

func (s *logScheduler) RequestAuthorization(ctx context.Context) error {
	s.logger.Debug("[LogNotification] Authorization granted")

	return nil
}

func (s *logScheduler) Schedule(ctx context.Context, targets []*entity.Target) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, target := range targets {
		s.scheduled[target.ID] = target.Title
		s.logger.Info("[LogNotification] Scheduled",
			slog.String("target_id", target.ID.String()),
			slog.String("title", target.Title),
			slog.Int("visit_count", target.VisitCount),
			slog.Bool("inside", target.Inside()),
		)
	}

	return nil
}

func (s *logScheduler) Cancel(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.scheduled, id)
	s.logger.Info("[LogNotification] Cancelled", slog.String("target_id", id.String()))

	return nil
}
