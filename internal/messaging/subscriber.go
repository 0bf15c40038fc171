package messaging

import (
	"context"

	"github.com/feral-file/realty-crm/internal/domain"
)

// EventHandler is called when a real-time event is received
type EventHandler func(event *domain.RealtimeEvent) error

// Subscriber defines the interface for receiving real-time events published by any replica
//
//go:generate mockgen -source=subscriber.go -destination=../mocks/subscriber.go -package=mocks -mock_names=Subscriber=MockSubscriber
type Subscriber interface {
	// Subscribe delivers events published from now on to handler
	// It blocks until ctx is done or the subscription breaks
	Subscribe(ctx context.Context, handler EventHandler) error

	// Close closes the connection and cleans up resources
	Close()
}
