// Package service declares the outbound ports the use cases depend on.
package service

import (
	"context"
)

// CollectionChangedEvent is published after a cart or wishlist mutation was stored.
type CollectionChangedEvent struct {
	RequestID  string `json:"request_id,omitempty"` // For distributed tracing
	EventID    string `json:"event_id"`
	DeviceID   string `json:"device_id"`
	Collection string `json:"collection"`
	ProductID  string `json:"product_id"`
	Variant    string `json:"variant,omitempty"`
	CartCount  int    `json:"cart_count"`
	InWishlist bool   `json:"in_wishlist"`
	OccurredAt string `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishCollectionChanged publishes a collection change for downstream consumers
	PublishCollectionChanged(ctx context.Context, event *CollectionChangedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
