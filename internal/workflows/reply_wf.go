package workflows

import (
	"time"

	"github.com/oklog/ulid/v2"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"

	"github.com/feral-file/realty-crm/internal/domain"
	"github.com/feral-file/realty-crm/internal/logger"
	"github.com/feral-file/realty-crm/internal/store/schema"
	"github.com/feral-file/realty-crm/internal/webhook"
)

// DeliverReply handles delivery of a single USER message to the automation webhook
// Uses Temporal's retry policy for automatic retry with exponential backoff
func (w *workerCore) DeliverReply(ctx workflow.Context, messageID string) error {
	logger.InfoWf(ctx, "Starting reply delivery", zap.String("messageID", messageID))

	// Configure activity options for bookkeeping
	lookupActivityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 10 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 2,
			InitialInterval: 5 * time.Second,
		},
	}
	lookupCtx := workflow.WithActivityOptions(ctx, lookupActivityOptions)

	var message *schema.AiMessage
	err := workflow.ExecuteActivity(lookupCtx, w.executor.GetReplyMessage, messageID).Get(lookupCtx, &message)
	if err != nil {
		return err
	}
	if message == nil {
		logger.InfoWf(ctx, "Message not found, skipping delivery", zap.String("messageID", messageID))
		return nil
	}
	if message.DeliveryStatus == domain.DeliveryStatusDelivered {
		logger.InfoWf(ctx, "Message already delivered, skipping delivery", zap.String("messageID", messageID))
		return nil
	}

	// Event ID via side effect so replays see the same value
	var eventID string
	err = workflow.SideEffect(ctx, func(ctx workflow.Context) interface{} {
		return ulid.MustNewDefault(workflow.Now(ctx)).String()
	}).Get(&eventID)
	if err != nil {
		return err
	}

	event := domain.ReplyEvent{
		EventID:   eventID,
		MessageID: message.ID,
		UserID:    message.UserID,
		ContactID: message.ContactID,
		Message:   message.Message,
		Timestamp: message.CreatedAt,
	}

	// Create delivery record
	workflowInfo := workflow.GetInfo(ctx)
	delivery := &schema.ReplyDelivery{
		MessageID:     message.ID,
		EventID:       event.EventID,
		WorkflowID:    workflowInfo.WorkflowExecution.ID,
		WorkflowRunID: workflowInfo.WorkflowExecution.RunID,
	}

	var deliveryID uint64
	err = workflow.ExecuteActivity(lookupCtx, w.executor.CreateReplyDeliveryRecord, delivery, event).Get(lookupCtx, &deliveryID)
	if err != nil {
		return err
	}

	err = workflow.ExecuteActivity(lookupCtx, w.executor.MarkReplyDelivering, message.ID, workflowInfo.WorkflowExecution.ID).Get(lookupCtx, nil)
	if err != nil {
		return err
	}

	logger.InfoWf(ctx, "Reply delivery record created", zap.Uint64("deliveryID", deliveryID))

	// Temporal retries with exponential backoff: 5s, 10s, 20s, 40s
	deliveryActivityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    5 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumAttempts:    int32(w.config.ReplyMaxAttempts), //nolint:gosec,G115
		},
	}
	deliveryCtx := workflow.WithActivityOptions(ctx, deliveryActivityOptions)

	var deliveryResult webhook.DeliveryResult
	err = workflow.ExecuteActivity(deliveryCtx, w.executor.DeliverReplyHTTP, event, deliveryID).Get(deliveryCtx, &deliveryResult)
	if err != nil {
		logger.WarnWf(ctx, "Reply delivery failed",
			zap.String("messageID", messageID),
			zap.Error(err))

		if markErr := workflow.ExecuteActivity(lookupCtx, w.executor.MarkReplyFailed, message.ID, err.Error()).Get(lookupCtx, nil); markErr != nil {
			logger.ErrorWf(ctx, markErr, zap.String("messageID", messageID))
		}
		return err
	}

	logger.InfoWf(ctx, "Reply delivered successfully",
		zap.String("messageID", messageID),
		zap.String("eventID", event.EventID),
		zap.Int("statusCode", deliveryResult.StatusCode))

	return nil
}
