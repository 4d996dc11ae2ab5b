package service

import (
	"context"
	"time"
)

// ReviewEvent is emitted after a review workflow commits. ProductRating is
// the aggregate value the workflow wrote, so downstream consumers never have
// to re-read the product row.
type ReviewEvent struct {
	RequestID     string    `json:"request_id,omitempty"` // For distributed tracing
	EventType     string    `json:"event_type"`
	ReviewID      int64     `json:"review_id"`
	RatingID      int64     `json:"rating_id"`
	ProductID     int64     `json:"product_id"`
	UserID        int64     `json:"user_id"`
	Grade         int       `json:"grade,omitempty"`
	ProductRating float64   `json:"product_rating"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishReviewEvent publishes a review lifecycle event for async processing
	PublishReviewEvent(ctx context.Context, event *ReviewEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
