package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/feral-file/realty-crm/internal/adapter"
	"github.com/feral-file/realty-crm/internal/domain"
	"github.com/feral-file/realty-crm/internal/logger"
	"github.com/feral-file/realty-crm/internal/store"
	"github.com/feral-file/realty-crm/internal/store/schema"
	"github.com/feral-file/realty-crm/internal/workflows"
)

// ReplyRedeliverySweeperConfig holds configuration for the reply redelivery sweeper
type ReplyRedeliverySweeperConfig struct {
	Interval       time.Duration // Time to sleep between sweep cycles
	BatchSize      int           // Messages to re-enqueue per cycle
	StaleAfter     time.Duration // Queued messages older than this are re-enqueued
	WorkerPoolSize int           // Concurrent enqueues
	EnqueueRetries uint64        // Extra enqueue attempts per message within a cycle
	RetryInterval  time.Duration // Initial backoff between enqueue attempts
}

// replyRedeliverySweeper re-enqueues USER messages whose hand-off to the delivery worker was lost
type replyRedeliverySweeper struct {
	config    ReplyRedeliverySweeperConfig
	store     store.Store
	queue     workflows.ReplyQueue
	clock     adapter.Clock
	pool      pond.Pool
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewReplyRedeliverySweeper creates a new reply redelivery sweeper
func NewReplyRedeliverySweeper(
	config ReplyRedeliverySweeperConfig,
	st store.Store,
	queue workflows.ReplyQueue,
	clock adapter.Clock,
) Sweeper {
	if config.WorkerPoolSize <= 0 {
		config.WorkerPoolSize = 1
	}
	if config.BatchSize <= 0 {
		config.BatchSize = 100
	}
	if config.Interval <= 0 {
		config.Interval = time.Minute
	}
	if config.RetryInterval <= 0 {
		config.RetryInterval = time.Second
	}
	return &replyRedeliverySweeper{
		config:    config,
		store:     st,
		queue:     queue,
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *replyRedeliverySweeper) Name() string {
	return "reply-redelivery-sweeper"
}

// Start runs sweep cycles until the context is canceled or Stop is called
func (s *replyRedeliverySweeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh)
	}()

	logger.InfoCtx(ctx, "Starting reply redelivery sweeper",
		zap.Duration("interval", s.config.Interval),
		zap.Int("batch_size", s.config.BatchSize),
		zap.Duration("stale_after", s.config.StaleAfter),
		zap.Int("worker_pool_size", s.config.WorkerPoolSize),
	)

	s.pool = pond.NewPool(
		s.config.WorkerPoolSize,
		pond.WithQueueSize(s.config.BatchSize),
		pond.WithContext(ctx),
	)
	defer s.pool.StopAndWait()

	for {
		if err := s.runSweepCycle(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.ErrorCtx(ctx, err)
		}

		if !s.sleep(ctx, s.config.Interval) {
			logger.InfoCtx(ctx, "Reply redelivery sweeper stopping")
			return nil
		}
	}
}

// Stop gracefully stops the sweeper with timeout support
func (s *replyRedeliverySweeper) Stop(ctx context.Context) error {
	if !s.running.Load() {
		return nil
	}

	logger.InfoCtx(ctx, "Stopping reply redelivery sweeper")
	select {
	case <-s.stopChan:
	default:
		close(s.stopChan)
	}

	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Reply redelivery sweeper stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Reply redelivery sweeper stop interrupted by context timeout")
		return ctx.Err()
	}
}

// runSweepCycle re-enqueues one batch of redeliverable messages
func (s *replyRedeliverySweeper) runSweepCycle(ctx context.Context) error {
	queuedBefore := s.clock.Now().Add(-s.config.StaleAfter)

	messages, err := s.store.ListRedeliverableReplies(ctx, queuedBefore, s.config.BatchSize)
	if err != nil {
		return fmt.Errorf("failed to list redeliverable replies: %w", err)
	}
	if len(messages) == 0 {
		logger.DebugCtx(ctx, "No replies need redelivery")
		return nil
	}

	logger.InfoCtx(ctx, "Found replies to redeliver", zap.Int("count", len(messages)))

	var enqueued, alreadyDelivered, failed atomic.Int32
	group := s.pool.NewGroup()
	for i := range messages {
		message := messages[i]
		group.Submit(func() {
			switch err := s.redeliver(ctx, message); {
			case err == nil:
				enqueued.Add(1)
			case errors.Is(err, domain.ErrAlreadyDelivered):
				alreadyDelivered.Add(1)
			default:
				failed.Add(1)
				logger.ErrorCtx(ctx, err, zap.String("messageID", message.ID))
			}
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Reply redelivery cycle completed",
		zap.Int32("enqueued", enqueued.Load()),
		zap.Int32("already_delivered", alreadyDelivered.Load()),
		zap.Int32("failed", failed.Load()),
	)
	return nil
}

// redeliver enqueues one message and records the outcome on it
func (s *replyRedeliverySweeper) redeliver(ctx context.Context, message schema.AiMessage) error {
	workflowID, err := s.enqueueWithRetry(ctx, message.ID)
	switch {
	case err == nil:
		update := store.ReplyDeliveryUpdate{
			Status:     domain.DeliveryStatusQueued,
			WorkflowID: &workflowID,
		}
		if err := s.store.UpdateAiMessageDelivery(ctx, message.ID, update); err != nil && !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("failed to mark reply queued: %w", err)
		}
		return nil

	case errors.Is(err, domain.ErrAlreadyDelivered):
		// A completed workflow whose bookkeeping never reached the message
		now := s.clock.Now()
		update := store.ReplyDeliveryUpdate{
			Status:      domain.DeliveryStatusDelivered,
			WorkflowID:  &workflowID,
			DeliveredAt: &now,
		}
		if err := s.store.UpdateAiMessageDelivery(ctx, message.ID, update); err != nil {
			return fmt.Errorf("failed to mark reply delivered: %w", err)
		}
		return err

	default:
		errMsg := err.Error()
		attempts := 0
		update := store.ReplyDeliveryUpdate{
			Status:   domain.DeliveryStatusFailed,
			Attempts: &attempts,
			Error:    &errMsg,
		}
		if updateErr := s.store.UpdateAiMessageDelivery(ctx, message.ID, update); updateErr != nil {
			logger.WarnCtx(ctx, "Failed to record enqueue failure",
				zap.String("messageID", message.ID),
				zap.Error(updateErr))
		}
		return err
	}
}

// enqueueWithRetry retries transient enqueue failures with exponential backoff
func (s *replyRedeliverySweeper) enqueueWithRetry(ctx context.Context, messageID string) (string, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.config.RetryInterval
	b.Multiplier = 2.0
	b.RandomizationFactor = 0.5

	var workflowID string
	operation := func() error {
		id, err := s.queue.Enqueue(ctx, messageID)
		workflowID = id
		if errors.Is(err, domain.ErrAlreadyDelivered) {
			return backoff.Permanent(err)
		}
		return err
	}

	notifyOnError := func(err error, next time.Duration) {
		logger.WarnCtx(ctx, "Reply enqueue failed, retrying",
			zap.String("messageID", messageID),
			zap.Duration("next_retry_in", next),
			zap.Error(err))
	}

	err := backoff.RetryNotify(operation,
		backoff.WithContext(backoff.WithMaxRetries(b, s.config.EnqueueRetries), ctx),
		notifyOnError)
	return workflowID, err
}

// sleep sleeps for the given duration but can be interrupted by context cancellation or Stop
// Returns true if sleep completed normally
func (s *replyRedeliverySweeper) sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-s.clock.After(duration):
		return true
	case <-ctx.Done():
		return false
	case <-s.stopChan:
		return false
	}
}
