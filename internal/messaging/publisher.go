package messaging

import (
	"context"

	"github.com/feral-file/realty-crm/internal/domain"
)

// Publisher defines the interface for publishing real-time events to the message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishRealtimeEvent publishes a hub push so every replica can deliver it
	PublishRealtimeEvent(ctx context.Context, event *domain.RealtimeEvent) error
	// Close closes the connection
	Close()
}
