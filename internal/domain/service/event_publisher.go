package service

import (
	"context"
)

// VisitEvent represents an applied entry or exit transition, published for
// downstream consumers (analytics, audit).
type VisitEvent struct {
	RequestID    string  `json:"request_id,omitempty"` // For distributed tracing
	TargetID     string  `json:"target_id"`
	Kind         string  `json:"kind"` // "entry" or "exit"
	At           int64   `json:"at"`   // Unix seconds
	VisitCount   int     `json:"visit_count"`
	DwellSeconds float64 `json:"dwell_seconds"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishVisitEvent publishes a visit event for async processing
	PublishVisitEvent(ctx context.Context, event *VisitEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
