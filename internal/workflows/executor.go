package workflows

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"

	"go.temporal.io/sdk/temporal"
	"go.uber.org/zap"

	"github.com/feral-file/realty-crm/internal/adapter"
	"github.com/feral-file/realty-crm/internal/domain"
	"github.com/feral-file/realty-crm/internal/logger"
	"github.com/feral-file/realty-crm/internal/store"
	"github.com/feral-file/realty-crm/internal/store/schema"
	"github.com/feral-file/realty-crm/internal/webhook"
)

// maxResponseBodySize caps the webhook response body kept on a delivery record
const maxResponseBodySize = 4 * 1024

// Executor defines the interface for executing activities
//
//go:generate mockgen -source=executor.go -destination=../mocks/executor_core.go -package=mocks -mock_names=Executor=MockCoreExecutor
type Executor interface {
	// GetReplyMessage retrieves the USER message to deliver, nil when missing
	GetReplyMessage(ctx context.Context, messageID string) (*schema.AiMessage, error)

	// CreateReplyDeliveryRecord creates the audit record of a delivery run and returns its ID
	CreateReplyDeliveryRecord(ctx context.Context, delivery *schema.ReplyDelivery, event domain.ReplyEvent) (uint64, error)

	// MarkReplyDelivering records that a worker picked the message up
	MarkReplyDelivering(ctx context.Context, messageID string, workflowID string) error

	// DeliverReplyHTTP performs one HTTP delivery attempt of the reply event
	DeliverReplyHTTP(ctx context.Context, event domain.ReplyEvent, deliveryID uint64) (webhook.DeliveryResult, error)

	// MarkReplyFailed records that every delivery attempt failed
	MarkReplyFailed(ctx context.Context, messageID string, reason string) error
}

// ExecutorConfig holds the outbound webhook settings
type ExecutorConfig struct {
	WebhookURL    string
	WebhookSecret string
}

// executor is the concrete implementation of Executor
type executor struct {
	store            store.Store
	clock            adapter.Clock
	json             adapter.JSON
	httpClient       adapter.HTTPClient
	io               adapter.IO
	temporalActivity adapter.Activity
	config           ExecutorConfig
}

// NewExecutor creates a new executor instance
func NewExecutor(
	store store.Store,
	clock adapter.Clock,
	jsonAdapter adapter.JSON,
	httpClient adapter.HTTPClient,
	io adapter.IO,
	temporalActivity adapter.Activity,
	config ExecutorConfig,
) Executor {
	return &executor{
		store:            store,
		clock:            clock,
		json:             jsonAdapter,
		httpClient:       httpClient,
		io:               io,
		temporalActivity: temporalActivity,
		config:           config,
	}
}

// GetReplyMessage retrieves the USER message to deliver
func (e *executor) GetReplyMessage(ctx context.Context, messageID string) (*schema.AiMessage, error) {
	message, err := e.store.GetAiMessage(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if message == nil || message.SenderType != domain.SenderTypeUser {
		return nil, nil
	}
	return message, nil
}

// CreateReplyDeliveryRecord creates a new reply delivery record
func (e *executor) CreateReplyDeliveryRecord(ctx context.Context, delivery *schema.ReplyDelivery, event domain.ReplyEvent) (uint64, error) {
	// Marshal event to JSON for the Payload field
	eventJSON, err := e.json.Marshal(event)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal reply event: %w", err)
	}
	delivery.Payload = eventJSON
	delivery.Status = schema.ReplyDeliveryStatusPending

	if err := e.store.CreateReplyDelivery(ctx, delivery); err != nil {
		return 0, err
	}
	return delivery.ID, nil
}

// MarkReplyDelivering records that a worker picked the message up
func (e *executor) MarkReplyDelivering(ctx context.Context, messageID string, workflowID string) error {
	return e.store.UpdateAiMessageDelivery(ctx, messageID, store.ReplyDeliveryUpdate{
		Status:     domain.DeliveryStatusDelivering,
		WorkflowID: &workflowID,
	})
}

// MarkReplyFailed records that every delivery attempt failed
func (e *executor) MarkReplyFailed(ctx context.Context, messageID string, reason string) error {
	return e.store.UpdateAiMessageDelivery(ctx, messageID, store.ReplyDeliveryUpdate{
		Status: domain.DeliveryStatusFailed,
		Error:  &reason,
	})
}

// DeliverReplyHTTP performs the HTTP delivery of a reply with an optional HMAC signature
// This activity will be automatically retried by Temporal with exponential backoff
func (e *executor) DeliverReplyHTTP(ctx context.Context, event domain.ReplyEvent, deliveryID uint64) (webhook.DeliveryResult, error) {
	// Get attempt number from Temporal activity info
	attempt := int(e.temporalActivity.GetAttempt(ctx))

	logger.InfoCtx(ctx, "Attempting reply delivery",
		zap.String("messageID", event.MessageID),
		zap.String("eventID", event.EventID),
		zap.Int("attempt", attempt))

	if e.config.WebhookURL == "" {
		e.recordAttempt(ctx, event, deliveryID, attempt, nil, "", domain.ErrWebhookNotConfigured)
		return webhook.DeliveryResult{Success: false, Error: domain.ErrWebhookNotConfigured.Error()},
			temporal.NewNonRetryableApplicationError(domain.ErrWebhookNotConfigured.Error(), "webhook not configured", domain.ErrWebhookNotConfigured)
	}

	headers := map[string]string{
		"Content-Type":          "application/json",
		webhook.HeaderEventID:   event.EventID,
		webhook.HeaderEventType: webhook.EventTypeUserReply,
		"User-Agent":            webhook.UserAgent,
	}

	var payload []byte
	var err error
	if e.config.WebhookSecret != "" {
		var signature string
		var timestamp int64
		payload, signature, timestamp, err = webhook.GenerateSignedPayload(e.config.WebhookSecret, event)
		if err == nil {
			headers[webhook.HeaderSignature] = signature
			headers[webhook.HeaderTimestamp] = strconv.FormatInt(timestamp, 10)
		}
	} else {
		payload, err = webhook.CanonicalPayload(event)
	}
	if err != nil {
		logger.ErrorCtx(ctx, errors.New("failed to generate reply payload"),
			zap.Error(err), zap.String("messageID", event.MessageID))
		e.recordAttempt(ctx, event, deliveryID, attempt, nil, "", err)

		// Return non-retryable error to stop Temporal retry
		return webhook.DeliveryResult{Success: false, Error: err.Error()}, temporal.NewNonRetryableApplicationError(err.Error(), "failed to generate reply payload", err)
	}

	// Send HTTP request
	resp, err := e.httpClient.PostWithHeadersNoRetry(ctx, e.config.WebhookURL, headers, bytes.NewReader(payload))
	if err != nil {
		logger.ErrorCtx(ctx, errors.New("failed to post reply webhook request"),
			zap.Error(err), zap.String("messageID", event.MessageID))
		e.recordAttempt(ctx, event, deliveryID, attempt, nil, "", err)

		// Return error to trigger Temporal retry
		return webhook.DeliveryResult{Success: false, Error: err.Error()}, err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.WarnCtx(ctx, "failed to close response body", zap.Error(err))
		}
	}()

	respBody, err := e.io.ReadLimited(resp.Body, maxResponseBodySize)
	if err != nil {
		logger.WarnCtx(ctx, "failed to read reply webhook response body", zap.Error(err))
		// Continue with empty body - don't fail the delivery
		respBody = []byte{}
	}

	// Check status code for non-2xx responses
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := fmt.Errorf("HTTP %d", resp.StatusCode)
		logger.ErrorCtx(ctx, errors.New("reply webhook rejected delivery"),
			zap.Int("statusCode", resp.StatusCode),
			zap.String("messageID", event.MessageID))
		e.recordAttempt(ctx, event, deliveryID, attempt, &resp.StatusCode, string(respBody), err)

		// Return error to trigger Temporal retry
		return webhook.DeliveryResult{Success: false, StatusCode: resp.StatusCode, Body: string(respBody), Error: err.Error()}, err
	}

	e.recordAttempt(ctx, event, deliveryID, attempt, &resp.StatusCode, string(respBody), nil)

	return webhook.DeliveryResult{Success: true, StatusCode: resp.StatusCode, Body: string(respBody)}, nil
}

// recordAttempt writes the outcome of one attempt to the delivery record and the message
// Bookkeeping failures are logged, they never fail the attempt
func (e *executor) recordAttempt(ctx context.Context, event domain.ReplyEvent, deliveryID uint64, attempt int, responseStatus *int, responseBody string, attemptErr error) {
	deliveryStatus := schema.ReplyDeliveryStatusSuccess
	update := store.ReplyDeliveryUpdate{
		Status:   domain.DeliveryStatusDelivered,
		Attempts: &attempt,
	}
	errMsg := ""
	if attemptErr != nil {
		errMsg = attemptErr.Error()
		deliveryStatus = schema.ReplyDeliveryStatusFailed
		update.Status = domain.DeliveryStatusDelivering
		update.Error = &errMsg
	} else {
		now := e.clock.Now()
		update.DeliveredAt = &now
	}

	if err := e.store.UpdateReplyDeliveryStatus(ctx, deliveryID, deliveryStatus, attempt, responseStatus, responseBody, errMsg); err != nil {
		logger.ErrorCtx(ctx, errors.New("failed to update reply delivery status"),
			zap.Error(err), zap.String("messageID", event.MessageID))
	}
	if err := e.store.UpdateAiMessageDelivery(ctx, event.MessageID, update); err != nil {
		logger.ErrorCtx(ctx, errors.New("failed to update message delivery state"),
			zap.Error(err), zap.String("messageID", event.MessageID))
	}
}
