package bridge

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/feral-file/realty-crm/internal/domain"
	"github.com/feral-file/realty-crm/internal/logger"
	"github.com/feral-file/realty-crm/internal/messaging"
	"github.com/feral-file/realty-crm/internal/realtime"
)

// Config holds the configuration for the realtime relay
type Config struct {
	// InitialInterval is the first wait before resubscribing after a failure
	InitialInterval time.Duration
	// MaxInterval caps the wait between resubscribe attempts
	MaxInterval time.Duration
}

// Bridge relays events published by any replica to the hub connections of this replica
type Bridge interface {
	// Run relays events until ctx is done
	Run(ctx context.Context) error
	// Close closes the bridge and cleans up resources
	Close()
}

type bridge struct {
	subscriber messaging.Subscriber
	deliverer  realtime.Deliverer
	config     Config
}

// NewBridge creates a new realtime relay
func NewBridge(cfg Config, subscriber messaging.Subscriber, deliverer realtime.Deliverer) Bridge {
	if cfg.InitialInterval <= 0 {
		cfg.InitialInterval = 500 * time.Millisecond
	}
	if cfg.MaxInterval <= 0 {
		cfg.MaxInterval = 30 * time.Second
	}

	return &bridge{
		subscriber: subscriber,
		deliverer:  deliverer,
		config:     cfg,
	}
}

// Run subscribes and resubscribes with exponential backoff whenever the subscription breaks
func (b *bridge) Run(ctx context.Context) error {
	logger.InfoCtx(ctx, "Starting realtime relay")

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = b.config.InitialInterval
	bo.MaxInterval = b.config.MaxInterval
	bo.MaxElapsedTime = 0

	operation := func() error {
		err := b.subscriber.Subscribe(ctx, b.handleEvent)
		if ctx.Err() != nil {
			return backoff.Permanent(ctx.Err())
		}
		if err == nil {
			err = errors.New("subscription ended")
		}
		return err
	}

	notify := func(err error, wait time.Duration) {
		logger.WarnCtx(ctx, "Realtime subscription failed, retrying",
			zap.Error(err),
			zap.Duration("wait", wait),
		)
	}

	err := backoff.RetryNotify(operation, backoff.WithContext(bo, ctx), notify)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		logger.InfoCtx(ctx, "Shutting down realtime relay")
	}
	return err
}

// handleEvent delivers a single event to the local hub groups
func (b *bridge) handleEvent(event *domain.RealtimeEvent) error {
	logger.Debug("Relaying realtime event",
		zap.String("id", event.ID),
		zap.String("userID", event.UserID),
		zap.String("target", event.Target),
	)
	return b.deliverer.Deliver(event)
}

// Close closes the underlying subscriber
func (b *bridge) Close() {
	b.subscriber.Close()
}
