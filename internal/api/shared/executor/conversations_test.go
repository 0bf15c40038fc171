package executor_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "github.com/feral-file/realty-crm/internal/api/shared/errors"
	"github.com/feral-file/realty-crm/internal/api/shared/executor"
	"github.com/feral-file/realty-crm/internal/domain"
	"github.com/feral-file/realty-crm/internal/store"
	"github.com/feral-file/realty-crm/internal/store/schema"
)

const (
	replyWebhookURL = "https://automation.example.com/webhook/reply"
	messageID       = "77777777-7777-7777-7777-777777777777"
)

func inboundBody(message, contact, user string) []byte {
	return []byte(`{"message":"` + message + `","contactId":"` + contact + `","userId":"` + user + `"}`)
}

// ====================================================================================
// Inbound AI messages
// ====================================================================================

func TestHandleInboundMessage_Saved(t *testing.T) {
	mocks := setupTestExecutor(t, executor.Config{})
	defer tearDownTestExecutor(mocks)

	ctx := context.Background()
	mocks.store.EXPECT().GetUserByID(ctx, aliceID).Return(&schema.User{ID: aliceID}, nil)
	mocks.store.EXPECT().GetContactOwnedBy(ctx, aliceID, contactID).Return(&schema.Contact{ID: contactID}, nil)
	mocks.store.EXPECT().
		CreateAiMessage(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, message *schema.AiMessage) error {
			assert.Equal(t, domain.SenderTypeAI, message.SenderType)
			assert.Equal(t, "Hello from the assistant", message.Message)
			message.ID = messageID
			return nil
		})
	mocks.broadcaster.EXPECT().Broadcast(ctx, aliceID, gomock.Any()).Return(nil)

	ack := mocks.executor.HandleInboundMessage(ctx, inboundBody("Hello from the assistant", contactID, aliceID))

	assert.True(t, ack.Success)
	assert.Equal(t, "AI message received and saved.", ack.Message)
	require.NotNil(t, ack.Data)
	assert.Equal(t, messageID, ack.Data.ID)
}

func TestHandleInboundMessage_BroadcastFailureStillSaves(t *testing.T) {
	mocks := setupTestExecutor(t, executor.Config{})
	defer tearDownTestExecutor(mocks)

	ctx := context.Background()
	mocks.store.EXPECT().GetUserByID(ctx, aliceID).Return(&schema.User{ID: aliceID}, nil)
	mocks.store.EXPECT().GetContactOwnedBy(ctx, aliceID, contactID).Return(&schema.Contact{ID: contactID}, nil)
	mocks.store.EXPECT().CreateAiMessage(ctx, gomock.Any()).Return(nil)
	mocks.broadcaster.EXPECT().Broadcast(ctx, aliceID, gomock.Any()).Return(errors.New("nats unavailable"))

	ack := mocks.executor.HandleInboundMessage(ctx, inboundBody("Hi", contactID, aliceID))

	assert.Equal(t, "AI message received and saved.", ack.Message)
}

func TestHandleInboundMessage_Acknowledgements(t *testing.T) {
	tests := []struct {
		name    string
		body    []byte
		setup   func(m *testExecutorMocks)
		message string
	}{
		{
			name:    "not json",
			body:    []byte(`hello`),
			message: "Received, but missing required fields.",
		},
		{
			name:    "missing user",
			body:    []byte(`{"message":"Hi","contactId":"` + contactID + `"}`),
			message: "Received, but missing required fields.",
		},
		{
			name:    "empty message",
			body:    inboundBody("", contactID, aliceID),
			message: "Received, but missing required fields.",
		},
		{
			name:    "malformed user id",
			body:    inboundBody("Hi", contactID, "user-1"),
			message: "Received, but user not found.",
		},
		{
			name: "unknown user",
			body: inboundBody("Hi", contactID, aliceID),
			setup: func(m *testExecutorMocks) {
				m.store.EXPECT().GetUserByID(gomock.Any(), aliceID).Return(nil, nil)
			},
			message: "Received, but user not found.",
		},
		{
			name: "user lookup fails",
			body: inboundBody("Hi", contactID, aliceID),
			setup: func(m *testExecutorMocks) {
				m.store.EXPECT().GetUserByID(gomock.Any(), aliceID).Return(nil, errors.New("timeout"))
			},
			message: "Received, but internal server error occurred.",
		},
		{
			name: "malformed contact id",
			body: inboundBody("Hi", "contact-1", aliceID),
			setup: func(m *testExecutorMocks) {
				m.store.EXPECT().GetUserByID(gomock.Any(), aliceID).Return(&schema.User{ID: aliceID}, nil)
			},
			message: "Received, but contact not found or invalid.",
		},
		{
			name: "contact owned by another user",
			body: inboundBody("Hi", contactID, aliceID),
			setup: func(m *testExecutorMocks) {
				m.store.EXPECT().GetUserByID(gomock.Any(), aliceID).Return(&schema.User{ID: aliceID}, nil)
				m.store.EXPECT().GetContactOwnedBy(gomock.Any(), aliceID, contactID).Return(nil, nil)
			},
			message: "Received, but contact not found or invalid.",
		},
		{
			name: "save fails",
			body: inboundBody("Hi", contactID, aliceID),
			setup: func(m *testExecutorMocks) {
				m.store.EXPECT().GetUserByID(gomock.Any(), aliceID).Return(&schema.User{ID: aliceID}, nil)
				m.store.EXPECT().GetContactOwnedBy(gomock.Any(), aliceID, contactID).Return(&schema.Contact{ID: contactID}, nil)
				m.store.EXPECT().CreateAiMessage(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))
			},
			message: "Received, but internal server error occurred.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks := setupTestExecutor(t, executor.Config{})
			defer tearDownTestExecutor(mocks)

			if tt.setup != nil {
				tt.setup(mocks)
			}

			ack := mocks.executor.HandleInboundMessage(context.Background(), tt.body)

			assert.True(t, ack.Success)
			assert.Equal(t, tt.message, ack.Message)
			assert.Nil(t, ack.Data)
		})
	}
}

// ====================================================================================
// User replies
// ====================================================================================

func expectOwnedContact(m *testExecutorMocks) {
	m.store.EXPECT().GetContactOwnedBy(gomock.Any(), aliceID, contactID).Return(&schema.Contact{ID: contactID}, nil)
}

func TestHandleUserReply_Queued(t *testing.T) {
	mocks := setupTestExecutor(t, executor.Config{ReplyWebhookURL: replyWebhookURL})
	defer tearDownTestExecutor(mocks)

	ctx := context.Background()
	workflowID := "reply-delivery-" + messageID

	expectOwnedContact(mocks)
	mocks.store.EXPECT().
		CreateAiMessage(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, message *schema.AiMessage) error {
			assert.Equal(t, domain.SenderTypeUser, message.SenderType)
			assert.Equal(t, domain.DeliveryStatusQueued, message.DeliveryStatus)
			message.ID = messageID
			return nil
		})
	mocks.broadcaster.EXPECT().Broadcast(ctx, aliceID, gomock.Any()).Return(nil)
	mocks.replyQueue.EXPECT().Enqueue(ctx, messageID).Return(workflowID, nil)
	mocks.store.EXPECT().
		UpdateAiMessageDelivery(ctx, messageID, store.ReplyDeliveryUpdate{
			Status:     domain.DeliveryStatusQueued,
			WorkflowID: &workflowID,
		}).
		Return(nil)

	resp, err := mocks.executor.HandleUserReply(ctx, alice, []byte(`{"message":"Is the house still available?","contactId":"`+contactID+`"}`))

	require.NoError(t, err)
	assert.Equal(t, "User message saved and AI response queued.", resp.Message)
	assert.Equal(t, workflowID, *resp.Data.DeliveryWorkflowID)
}

func TestHandleUserReply_DeliveryAlreadyStarted(t *testing.T) {
	mocks := setupTestExecutor(t, executor.Config{ReplyWebhookURL: replyWebhookURL})
	defer tearDownTestExecutor(mocks)

	ctx := context.Background()
	expectOwnedContact(mocks)
	mocks.store.EXPECT().CreateAiMessage(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, message *schema.AiMessage) error {
		message.ID = messageID
		return nil
	})
	mocks.broadcaster.EXPECT().Broadcast(ctx, aliceID, gomock.Any()).Return(nil)
	mocks.replyQueue.EXPECT().Enqueue(ctx, messageID).Return("reply-delivery-"+messageID, nil)
	mocks.store.EXPECT().UpdateAiMessageDelivery(ctx, messageID, gomock.Any()).Return(domain.ErrNotFound)

	resp, err := mocks.executor.HandleUserReply(ctx, alice, []byte(`{"message":"Hi","contactId":"`+contactID+`"}`))

	require.NoError(t, err)
	assert.Equal(t, "User message saved and AI response queued.", resp.Message)
}

func TestHandleUserReply_WebhookNotConfigured(t *testing.T) {
	mocks := setupTestExecutor(t, executor.Config{})
	defer tearDownTestExecutor(mocks)

	ctx := context.Background()
	expectOwnedContact(mocks)
	mocks.store.EXPECT().
		CreateAiMessage(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, message *schema.AiMessage) error {
			assert.Equal(t, domain.DeliveryStatusSkipped, message.DeliveryStatus)
			return nil
		})
	mocks.broadcaster.EXPECT().Broadcast(ctx, aliceID, gomock.Any()).Return(nil)

	resp, err := mocks.executor.HandleUserReply(ctx, alice, []byte(`{"message":"Hi","contactId":"`+contactID+`"}`))

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "User message saved. AI response trigger skipped (Webhook URL not configured).", resp.Message)
}

func TestHandleUserReply_EnqueueFailure(t *testing.T) {
	mocks := setupTestExecutor(t, executor.Config{ReplyWebhookURL: replyWebhookURL})
	defer tearDownTestExecutor(mocks)

	ctx := context.Background()
	enqueueErr := errors.New("temporal unavailable")
	errMsg := enqueueErr.Error()
	attempts := 0

	expectOwnedContact(mocks)
	mocks.store.EXPECT().CreateAiMessage(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, message *schema.AiMessage) error {
		message.ID = messageID
		return nil
	})
	mocks.broadcaster.EXPECT().Broadcast(ctx, aliceID, gomock.Any()).Return(nil)
	mocks.replyQueue.EXPECT().Enqueue(ctx, messageID).Return("", enqueueErr)
	mocks.store.EXPECT().
		UpdateAiMessageDelivery(ctx, messageID, store.ReplyDeliveryUpdate{
			Status:   domain.DeliveryStatusFailed,
			Attempts: &attempts,
			Error:    &errMsg,
		}).
		Return(nil)

	resp, err := mocks.executor.HandleUserReply(ctx, alice, []byte(`{"message":"Hi","contactId":"`+contactID+`"}`))

	require.NoError(t, err)
	assert.Equal(t, "User message saved. AI response delivery will be retried.", resp.Message)
	assert.Equal(t, domain.DeliveryStatusFailed, resp.Data.DeliveryStatus)
}

func TestHandleUserReply_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty body", body: ``},
		{name: "missing contact", body: `{"message":"Hi"}`},
		{name: "empty message", body: `{"message":"","contactId":"` + contactID + `"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks := setupTestExecutor(t, executor.Config{ReplyWebhookURL: replyWebhookURL})
			defer tearDownTestExecutor(mocks)

			_, err := mocks.executor.HandleUserReply(context.Background(), alice, []byte(tt.body))

			requireAPIError(t, err, apierrors.ErrCodeValidationFailed, "Please provide a message and contactId")
		})
	}
}

func TestHandleUserReply_ContactNotOwned(t *testing.T) {
	mocks := setupTestExecutor(t, executor.Config{ReplyWebhookURL: replyWebhookURL})
	defer tearDownTestExecutor(mocks)

	mocks.store.EXPECT().GetContactOwnedBy(gomock.Any(), aliceID, contactID).Return(nil, nil)

	_, err := mocks.executor.HandleUserReply(context.Background(), alice, []byte(`{"message":"Hi","contactId":"`+contactID+`"}`))

	requireAPIError(t, err, apierrors.ErrCodeNotFound, "Contact not found or access denied")
}

// ====================================================================================
// Conversation history
// ====================================================================================

func TestListConversations_SortedByLatestMessage(t *testing.T) {
	mocks := setupTestExecutor(t, executor.Config{})
	defer tearDownTestExecutor(mocks)

	ctx := context.Background()
	older := contactID
	newer := "88888888-8888-8888-8888-888888888888"
	silent := "99999999-9999-9999-9999-999999999999"
	now := fixedNow()

	mocks.store.EXPECT().ListConversationContactIDs(ctx, aliceID).Return([]string{older, newer, silent}, nil)
	mocks.store.EXPECT().GetLatestAiMessage(gomock.Any(), aliceID, older).Return(&schema.AiMessage{
		ID:        "m1",
		ContactID: older,
		CreatedAt: now.Add(-time.Hour),
		Contact:   &schema.ContactSummary{ID: older, Name: "Jane Buyer"},
	}, nil)
	mocks.store.EXPECT().GetLatestAiMessage(gomock.Any(), aliceID, newer).Return(&schema.AiMessage{
		ID:        "m2",
		ContactID: newer,
		CreatedAt: now,
		Contact:   &schema.ContactSummary{ID: newer, Name: "John Seller"},
	}, nil)
	mocks.store.EXPECT().GetLatestAiMessage(gomock.Any(), aliceID, silent).Return(nil, nil)

	summaries, err := mocks.executor.ListConversations(ctx, alice)

	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, newer, summaries[0].ContactID)
	assert.Equal(t, "John Seller", summaries[0].ContactName)
	assert.Equal(t, older, summaries[1].ContactID)
	assert.Equal(t, "Jane Buyer", summaries[1].ContactName)
}

func TestListConversations_Empty(t *testing.T) {
	mocks := setupTestExecutor(t, executor.Config{})
	defer tearDownTestExecutor(mocks)

	ctx := context.Background()
	mocks.store.EXPECT().ListConversationContactIDs(ctx, aliceID).Return(nil, nil)

	summaries, err := mocks.executor.ListConversations(ctx, alice)

	require.NoError(t, err)
	assert.NotNil(t, summaries)
	assert.Empty(t, summaries)
}

func TestListConversations_LookupError(t *testing.T) {
	mocks := setupTestExecutor(t, executor.Config{})
	defer tearDownTestExecutor(mocks)

	ctx := context.Background()
	mocks.store.EXPECT().ListConversationContactIDs(ctx, aliceID).Return([]string{contactID}, nil)
	mocks.store.EXPECT().GetLatestAiMessage(gomock.Any(), aliceID, contactID).Return(nil, errors.New("connection lost"))

	_, err := mocks.executor.ListConversations(ctx, alice)

	requireAPIError(t, err, apierrors.ErrCodeDatabaseError, "")
}

func TestGetConversation(t *testing.T) {
	mocks := setupTestExecutor(t, executor.Config{})
	defer tearDownTestExecutor(mocks)

	ctx := context.Background()
	expected := []schema.AiMessage{{ID: "m1"}, {ID: "m2"}}
	expectOwnedContact(mocks)
	mocks.store.EXPECT().ListConversation(ctx, aliceID, contactID).Return(expected, nil)

	messages, err := mocks.executor.GetConversation(ctx, alice, contactID)

	require.NoError(t, err)
	assert.Equal(t, expected, messages)
}

func TestGetConversation_MalformedContact(t *testing.T) {
	mocks := setupTestExecutor(t, executor.Config{})
	defer tearDownTestExecutor(mocks)

	_, err := mocks.executor.GetConversation(context.Background(), alice, "abc")

	requireAPIError(t, err, apierrors.ErrCodeNotFound, "Contact not found or access denied")
}

func TestClearConversationHistory(t *testing.T) {
	mocks := setupTestExecutor(t, executor.Config{})
	defer tearDownTestExecutor(mocks)

	ctx := context.Background()
	mocks.store.EXPECT().DeleteAiMessagesByUser(ctx, aliceID).Return(int64(12), nil)

	count, err := mocks.executor.ClearConversationHistory(ctx, alice)

	require.NoError(t, err)
	assert.Equal(t, int64(12), count)
}
