package notification

import (
	"context"
	"fmt"
	"log/slog"

	"geotarget/internal/domain/entity"
	"geotarget/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

// fcmScheduler delivers per-target notifications through Firebase Cloud
// Messaging to a single configured device token.
type fcmScheduler struct {
	client *messaging.Client
	token  string
	logger *slog.Logger
}

// NewFCMScheduler creates a new FCM notification scheduler instance
func NewFCMScheduler(ctx context.Context, credentialsPath, deviceToken string, logger *slog.Logger) (service.NotificationScheduler, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &fcmScheduler{
		client: client,
		token:  deviceToken,
		logger: logger,
	}, nil
}

// RequestAuthorization is a no-op: FCM authorization is the credentials file.
func (s *fcmScheduler) RequestAuthorization(ctx context.Context) error {
	return nil
}

// Schedule sends one push per target with its current attendance state.
func (s *fcmScheduler) Schedule(ctx context.Context, targets []*entity.Target) error {
	for _, target := range targets {
		body := fmt.Sprintf("Visits: %d, time inside: %s", target.VisitCount, target.DwellTime)
		if target.Inside() {
			body = "You are inside. " + body
		}

		message := &messaging.Message{
			Token: s.token,
			Notification: &messaging.Notification{
				Title: target.Title,
				Body:  body,
			},
			Data: map[string]string{
				"target_id": target.ID.String(),
			},
		}

		if _, err := s.client.Send(ctx, message); err != nil {
			return fmt.Errorf("failed to send notification: %w", err)
		}
	}

	return nil
}

// Cancel has no remote counterpart for already-delivered pushes; it only
// logs so the call site semantics stay symmetric with scheduling.
func (s *fcmScheduler) Cancel(ctx context.Context, id uuid.UUID) error {
	s.logger.Debug("[FCM] Cancel requested", slog.String("target_id", id.String()))

	return nil
}
