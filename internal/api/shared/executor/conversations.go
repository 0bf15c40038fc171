package executor

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/feral-file/realty-crm/internal/api/shared/dto"
	apierrors "github.com/feral-file/realty-crm/internal/api/shared/errors"
	"github.com/feral-file/realty-crm/internal/domain"
	"github.com/feral-file/realty-crm/internal/logger"
	"github.com/feral-file/realty-crm/internal/store"
	"github.com/feral-file/realty-crm/internal/store/schema"
)

const (
	ackMissingFields   = "Received, but missing required fields."
	ackUserNotFound    = "Received, but user not found."
	ackContactNotFound = "Received, but contact not found or invalid."
	ackInternalError   = "Received, but internal server error occurred."
	ackSaved           = "AI message received and saved."

	replySkipped = "User message saved. AI response trigger skipped (Webhook URL not configured)."
	replyQueued  = "User message saved and AI response queued."
	replyRetry   = "User message saved. AI response delivery will be retried."
)

func ignored(message string) *dto.WebhookAck {
	return &dto.WebhookAck{Success: true, Message: message}
}

func (e *executor) HandleInboundMessage(ctx context.Context, body []byte) *dto.WebhookAck {
	payload, err := dto.ParsePayload(body)
	if err != nil {
		logger.WarnCtx(ctx, "Inbound webhook body is not a JSON object", zap.Error(err))
		return ignored(ackMissingFields)
	}

	inbound := dto.InboundMessage{
		Message:   payload.String("message"),
		ContactID: payload.String("contactId"),
		UserID:    payload.String("userId"),
	}
	if inbound.Message == "" || inbound.ContactID == "" || inbound.UserID == "" {
		logger.WarnCtx(ctx, "Inbound webhook is missing required fields",
			zap.Bool("hasMessage", inbound.Message != ""),
			zap.Bool("hasContactId", inbound.ContactID != ""),
			zap.Bool("hasUserId", inbound.UserID != ""),
		)
		return ignored(ackMissingFields)
	}

	if !isValidID(inbound.UserID) {
		logger.WarnCtx(ctx, "Inbound webhook user not found", zap.String("userID", inbound.UserID))
		return ignored(ackUserNotFound)
	}
	user, err := e.store.GetUserByID(ctx, inbound.UserID)
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to get user: %w", err), zap.String("userID", inbound.UserID))
		return ignored(ackInternalError)
	}
	if user == nil {
		logger.WarnCtx(ctx, "Inbound webhook user not found", zap.String("userID", inbound.UserID))
		return ignored(ackUserNotFound)
	}

	if !isValidID(inbound.ContactID) {
		logger.WarnCtx(ctx, "Inbound webhook contact not found", zap.String("contactID", inbound.ContactID))
		return ignored(ackContactNotFound)
	}
	contact, err := e.store.GetContactOwnedBy(ctx, user.ID, inbound.ContactID)
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to get contact: %w", err), zap.String("contactID", inbound.ContactID))
		return ignored(ackInternalError)
	}
	if contact == nil {
		logger.WarnCtx(ctx, "Inbound webhook contact not found or not owned by user",
			zap.String("userID", user.ID),
			zap.String("contactID", inbound.ContactID),
		)
		return ignored(ackContactNotFound)
	}

	message := &schema.AiMessage{
		Message:    inbound.Message,
		SenderType: domain.SenderTypeAI,
		UserID:     user.ID,
		ContactID:  contact.ID,
	}
	if err := e.store.CreateAiMessage(ctx, message); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to save ai message: %w", err),
			zap.String("userID", user.ID),
			zap.String("contactID", contact.ID),
		)
		return ignored(ackInternalError)
	}

	e.broadcast(ctx, user.ID, message)

	logger.InfoCtx(ctx, "AI message received",
		zap.String("messageID", message.ID),
		zap.String("userID", user.ID),
		zap.String("contactID", contact.ID),
	)

	return &dto.WebhookAck{Success: true, Message: ackSaved, Data: message}
}

func (e *executor) HandleUserReply(ctx context.Context, caller domain.Caller, body []byte) (*dto.ReplyResponse, error) {
	var req dto.ReplyRequest
	if payload, err := dto.ParsePayload(body); err == nil {
		req.Message = payload.String("message")
		req.ContactID = payload.String("contactId")
	}
	if req.Message == "" || req.ContactID == "" {
		return nil, apierrors.NewValidationError("Please provide a message and contactId")
	}
	if err := e.ensureOwnedContact(ctx, caller, req.ContactID); err != nil {
		return nil, err
	}

	deliverable := e.config.ReplyWebhookURL != "" && e.replyQueue != nil

	message := &schema.AiMessage{
		Message:        req.Message,
		SenderType:     domain.SenderTypeUser,
		UserID:         caller.ID,
		ContactID:      req.ContactID,
		DeliveryStatus: domain.DeliveryStatusSkipped,
	}
	if deliverable {
		// Saved as queued first so the sweeper picks it up if the hand-off never happens
		message.DeliveryStatus = domain.DeliveryStatusQueued
	}
	if err := e.store.CreateAiMessage(ctx, message); err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to save message: %v", err))
	}

	e.broadcast(ctx, caller.ID, message)

	if !deliverable {
		logger.WarnCtx(ctx, "Reply webhook URL not configured, skipping AI response trigger",
			zap.String("messageID", message.ID),
		)
		return &dto.ReplyResponse{Success: true, Message: replySkipped, Data: message}, nil
	}

	workflowID, err := e.replyQueue.Enqueue(ctx, message.ID)
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to enqueue reply delivery: %w", err), zap.String("messageID", message.ID))

		errMsg := err.Error()
		attempts := 0
		message.DeliveryStatus = domain.DeliveryStatusFailed
		message.DeliveryError = &errMsg
		if updateErr := e.store.UpdateAiMessageDelivery(ctx, message.ID, store.ReplyDeliveryUpdate{
			Status:   domain.DeliveryStatusFailed,
			Attempts: &attempts,
			Error:    &errMsg,
		}); updateErr != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("failed to mark reply delivery failed: %w", updateErr), zap.String("messageID", message.ID))
		}
		return &dto.ReplyResponse{Success: true, Message: replyRetry, Data: message}, nil
	}

	message.DeliveryWorkflowID = &workflowID
	if err := e.store.UpdateAiMessageDelivery(ctx, message.ID, store.ReplyDeliveryUpdate{
		Status:     domain.DeliveryStatusQueued,
		WorkflowID: &workflowID,
	}); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			logger.DebugCtx(ctx, "Reply delivery already started", zap.String("messageID", message.ID))
		} else {
			logger.WarnCtx(ctx, "Failed to record reply workflow", zap.String("messageID", message.ID), zap.Error(err))
		}
	}

	logger.InfoCtx(ctx, "Reply delivery queued",
		zap.String("messageID", message.ID),
		zap.String("workflowID", workflowID),
	)

	return &dto.ReplyResponse{Success: true, Message: replyQueued, Data: message}, nil
}

func (e *executor) ListConversations(ctx context.Context, caller domain.Caller) ([]dto.ConversationSummary, error) {
	contactIDs, err := e.store.ListConversationContactIDs(ctx, caller.ID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list conversations: %v", err))
	}
	if len(contactIDs) == 0 {
		return []dto.ConversationSummary{}, nil
	}

	group := e.pool.NewGroupContext(ctx)
	for _, contactID := range contactIDs {
		group.SubmitErr(func() (*dto.ConversationSummary, error) {
			latest, err := e.store.GetLatestAiMessage(ctx, caller.ID, contactID)
			if err != nil {
				return nil, err
			}
			if latest == nil {
				return nil, nil
			}
			summary := &dto.ConversationSummary{
				ContactID:   contactID,
				LastMessage: latest,
			}
			if latest.Contact != nil {
				summary.ContactName = latest.Contact.Name
			}
			return summary, nil
		})
	}

	results, err := group.Wait()
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to load conversations: %v", err))
	}

	summaries := make([]dto.ConversationSummary, 0, len(results))
	for _, summary := range results {
		if summary != nil {
			summaries = append(summaries, *summary)
		}
	}
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].LastMessage.CreatedAt.After(summaries[j].LastMessage.CreatedAt)
	})

	return summaries, nil
}

func (e *executor) GetConversation(ctx context.Context, caller domain.Caller, contactID string) ([]schema.AiMessage, error) {
	if err := e.ensureOwnedContact(ctx, caller, contactID); err != nil {
		return nil, err
	}

	messages, err := e.store.ListConversation(ctx, caller.ID, contactID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get conversation: %v", err))
	}
	return messages, nil
}

func (e *executor) ClearConversationHistory(ctx context.Context, caller domain.Caller) (int64, error) {
	count, err := e.store.DeleteAiMessagesByUser(ctx, caller.ID)
	if err != nil {
		return 0, apierrors.NewDatabaseError(fmt.Sprintf("Failed to clear conversation history: %v", err))
	}
	logger.InfoCtx(ctx, "Conversation history cleared", zap.String("userID", caller.ID), zap.Int64("count", count))
	return count, nil
}
