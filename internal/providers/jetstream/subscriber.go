package jetstream

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/feral-file/realty-crm/internal/adapter"
	"github.com/feral-file/realty-crm/internal/domain"
	"github.com/feral-file/realty-crm/internal/logger"
	"github.com/feral-file/realty-crm/internal/messaging"
)

// consumerInactiveThreshold is how long the server keeps an ephemeral consumer after its replica disappears
const consumerInactiveThreshold = 5 * time.Minute

type subscriber struct {
	nc     adapter.NatsConn
	js     adapter.JetStream
	config Config
	json   adapter.JSON
}

// NewSubscriber creates a NATS JetStream subscriber
// Every subscriber gets its own ephemeral consumer so each replica receives every event
func NewSubscriber(ctx context.Context, cfg Config, natsJS adapter.NatsJetStream, jsonAdapter adapter.JSON) (messaging.Subscriber, error) {
	nc, js, err := connect(ctx, cfg, natsJS)
	if err != nil {
		return nil, err
	}

	return &subscriber{
		nc:     nc,
		js:     js,
		config: cfg,
		json:   jsonAdapter,
	}, nil
}

// Subscribe consumes new events until ctx is done or the consume context closes
func (s *subscriber) Subscribe(ctx context.Context, handler messaging.EventHandler) error {
	consumerConfig := jetstream.ConsumerConfig{
		Name:              "realtime-" + ulid.Make().String(),
		AckPolicy:         jetstream.AckExplicitPolicy,
		DeliverPolicy:     jetstream.DeliverNewPolicy,
		FilterSubject:     s.config.SubjectPrefix + ".>",
		InactiveThreshold: consumerInactiveThreshold,
		MaxDeliver:        3,
	}

	consumer, err := s.js.CreateOrUpdateConsumer(ctx, s.config.StreamName, consumerConfig)
	if err != nil {
		return fmt.Errorf("failed to create consumer: %w", err)
	}

	logger.InfoCtx(ctx, "Realtime consumer created",
		zap.String("stream", s.config.StreamName),
		zap.String("consumer", consumerConfig.Name),
	)

	sub, err := consumer.Consume(func(msg adapter.Message) {
		s.handleMessage(msg, handler)
	})
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	defer sub.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-sub.Closed():
		return fmt.Errorf("realtime subscription closed")
	}
}

// handleMessage decodes one message and hands it to the handler
func (s *subscriber) handleMessage(msg adapter.Message, handler messaging.EventHandler) {
	var event domain.RealtimeEvent
	if err := s.json.Unmarshal(msg.Data(), &event); err != nil {
		logger.Error(err, zap.String("message", "Failed to unmarshal realtime event"), zap.String("subject", msg.Subject()))
		// Terminate message for unparseable data
		if err := msg.Term(); err != nil {
			logger.Error(err, zap.String("message", "Failed to terminate message"))
		}
		return
	}

	if err := handler(&event); err != nil {
		logger.Error(err, zap.String("message", "Failed to handle realtime event"), zap.String("id", event.ID))
		if err := msg.Nak(); err != nil {
			logger.Error(err, zap.String("message", "Failed to NAK message"))
		}
		return
	}

	if err := msg.Ack(); err != nil {
		logger.Error(err, zap.String("message", "Failed to ACK message"))
	}
}

// Close closes the NATS connection
func (s *subscriber) Close() {
	if s.nc == nil {
		return
	}

	s.nc.Close()
}
