package service

import (
	"context"
	"time"
)

// LedgerEvent is emitted after a ledger transaction commits
type LedgerEvent struct {
	ID         string            `json:"id"`
	Type       string            `json:"type"`
	RequestID  string            `json:"request_id,omitempty"` // For distributed tracing
	UserID     string            `json:"user_id"`
	ProductID  string            `json:"product_id,omitempty"`
	GrantIDs   []string          `json:"grant_ids,omitempty"`
	Points     int               `json:"points,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishLedgerEvent publishes a committed ledger change
	PublishLedgerEvent(ctx context.Context, event *LedgerEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
