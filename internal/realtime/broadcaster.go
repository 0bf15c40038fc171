package realtime

import (
	"context"
	"fmt"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/feral-file/realty-crm/internal/adapter"
	"github.com/feral-file/realty-crm/internal/domain"
	"github.com/feral-file/realty-crm/internal/logger"
	"github.com/feral-file/realty-crm/internal/messaging"
	"github.com/feral-file/realty-crm/internal/store/schema"
)

// Broadcaster pushes new conversation messages to a user's connected clients
//
//go:generate mockgen -source=broadcaster.go -destination=../mocks/broadcaster.go -package=mocks -mock_names=Broadcaster=MockBroadcaster,Deliverer=MockDeliverer
type Broadcaster interface {
	Broadcast(ctx context.Context, userID string, message *schema.AiMessage) error
}

// Deliverer sends an event to the connections held by this replica
type Deliverer interface {
	Deliver(event *domain.RealtimeEvent) error
}

// newMessageEvent builds the newMessage push of a conversation message
func newMessageEvent(jsonAdapter adapter.JSON, userID string, message *schema.AiMessage) (*domain.RealtimeEvent, error) {
	payload, err := jsonAdapter.Marshal(message)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message: %w", err)
	}

	return &domain.RealtimeEvent{
		ID:      ulid.Make().String(),
		UserID:  userID,
		Target:  domain.REALTIME_EVENT_NEW_MESSAGE,
		Payload: payload,
	}, nil
}

// LocalBroadcaster delivers pushes to the hub groups of this replica only
type LocalBroadcaster struct {
	server adapter.SignalRServer
	json   adapter.JSON
}

// NewLocalBroadcaster creates a broadcaster for a single replica deployment
func NewLocalBroadcaster(server adapter.SignalRServer, jsonAdapter adapter.JSON) *LocalBroadcaster {
	return &LocalBroadcaster{server: server, json: jsonAdapter}
}

// Broadcast sends the message to the user's group
func (b *LocalBroadcaster) Broadcast(ctx context.Context, userID string, message *schema.AiMessage) error {
	event, err := newMessageEvent(b.json, userID, message)
	if err != nil {
		return err
	}
	return b.Deliver(event)
}

// Deliver sends a relayed event to the user's group
func (b *LocalBroadcaster) Deliver(event *domain.RealtimeEvent) error {
	if event.UserID == "" || event.Target == "" {
		return fmt.Errorf("invalid realtime event %s", event.ID)
	}

	b.server.HubClients().Group(domain.UserGroup(event.UserID)).Send(event.Target, event.Payload)
	return nil
}

// natsBroadcaster publishes pushes so every replica's relay delivers them
type natsBroadcaster struct {
	publisher messaging.Publisher
	local     Deliverer
	json      adapter.JSON
}

// NewNATSBroadcaster creates a broadcaster that fans out through the message broker
// When publishing fails the event is delivered to this replica's connections only
func NewNATSBroadcaster(publisher messaging.Publisher, local Deliverer, jsonAdapter adapter.JSON) Broadcaster {
	return &natsBroadcaster{publisher: publisher, local: local, json: jsonAdapter}
}

func (b *natsBroadcaster) Broadcast(ctx context.Context, userID string, message *schema.AiMessage) error {
	event, err := newMessageEvent(b.json, userID, message)
	if err != nil {
		return err
	}

	if err := b.publisher.PublishRealtimeEvent(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish realtime event, delivering locally",
			zap.Error(err),
			zap.String("userID", userID),
		)
		return b.local.Deliver(event)
	}

	return nil
}
