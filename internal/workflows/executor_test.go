package workflows_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/realty-crm/internal/domain"
	"github.com/feral-file/realty-crm/internal/logger"
	"github.com/feral-file/realty-crm/internal/mocks"
	"github.com/feral-file/realty-crm/internal/store"
	"github.com/feral-file/realty-crm/internal/store/schema"
	"github.com/feral-file/realty-crm/internal/webhook"
	"github.com/feral-file/realty-crm/internal/workflows"
)

const testWebhookURL = "https://automation.example.com/webhook/reply"

// testExecutorMocks contains all the mocks needed for testing the executor
type testExecutorMocks struct {
	ctrl             *gomock.Controller
	store            *mocks.MockStore
	json             *mocks.MockJSON
	clock            *mocks.MockClock
	httpClient       *mocks.MockHTTPClient
	io               *mocks.MockIO
	temporalActivity *mocks.MockActivity
	executor         workflows.Executor
}

// setupTestExecutor creates all the mocks and executor for testing
func setupTestExecutor(t *testing.T, config workflows.ExecutorConfig) *testExecutorMocks {
	// Initialize logger for tests (required for activities that log)
	err := logger.Initialize(logger.Config{
		Debug: true,
	})
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	ctrl := gomock.NewController(t)

	tm := &testExecutorMocks{
		ctrl:             ctrl,
		store:            mocks.NewMockStore(ctrl),
		json:             mocks.NewMockJSON(ctrl),
		clock:            mocks.NewMockClock(ctrl),
		httpClient:       mocks.NewMockHTTPClient(ctrl),
		io:               mocks.NewMockIO(ctrl),
		temporalActivity: mocks.NewMockActivity(ctrl),
	}

	tm.executor = workflows.NewExecutor(
		tm.store,
		tm.clock,
		tm.json,
		tm.httpClient,
		tm.io,
		tm.temporalActivity,
		config,
	)

	return tm
}

// tearDownTestExecutor cleans up the test mocks
func tearDownTestExecutor(mocks *testExecutorMocks) {
	mocks.ctrl.Finish()
}

func testReplyEvent() domain.ReplyEvent {
	return domain.ReplyEvent{
		EventID:   "01HN7Y8Z9A0B1C2D3E4F5G6H7J",
		MessageID: testMessageID,
		UserID:    "11111111-1111-1111-1111-111111111111",
		ContactID: "44444444-4444-4444-4444-444444444444",
		Message:   "Can we schedule a viewing?",
		Timestamp: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
	}
}

func okResponse(body string) *http.Response {
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
	}
}

// ====================================================================================
// GetReplyMessage Tests
// ====================================================================================

func TestGetReplyMessage_UserMessage(t *testing.T) {
	mocks := setupTestExecutor(t, workflows.ExecutorConfig{})
	defer tearDownTestExecutor(mocks)

	ctx := context.Background()
	message := &schema.AiMessage{ID: testMessageID, SenderType: domain.SenderTypeUser}

	mocks.store.EXPECT().GetAiMessage(ctx, testMessageID).Return(message, nil)

	result, err := mocks.executor.GetReplyMessage(ctx, testMessageID)

	require.NoError(t, err)
	assert.Equal(t, message, result)
}

func TestGetReplyMessage_AIMessageIgnored(t *testing.T) {
	mocks := setupTestExecutor(t, workflows.ExecutorConfig{})
	defer tearDownTestExecutor(mocks)

	ctx := context.Background()
	message := &schema.AiMessage{ID: testMessageID, SenderType: domain.SenderTypeAI}

	mocks.store.EXPECT().GetAiMessage(ctx, testMessageID).Return(message, nil)

	result, err := mocks.executor.GetReplyMessage(ctx, testMessageID)

	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestGetReplyMessage_StoreError(t *testing.T) {
	mocks := setupTestExecutor(t, workflows.ExecutorConfig{})
	defer tearDownTestExecutor(mocks)

	ctx := context.Background()
	mocks.store.EXPECT().GetAiMessage(ctx, testMessageID).Return(nil, errors.New("connection reset"))

	result, err := mocks.executor.GetReplyMessage(ctx, testMessageID)

	assert.Error(t, err)
	assert.Nil(t, result)
}

// ====================================================================================
// CreateReplyDeliveryRecord Tests
// ====================================================================================

func TestCreateReplyDeliveryRecord_Success(t *testing.T) {
	mocks := setupTestExecutor(t, workflows.ExecutorConfig{})
	defer tearDownTestExecutor(mocks)

	ctx := context.Background()
	event := testReplyEvent()
	delivery := &schema.ReplyDelivery{MessageID: testMessageID, EventID: event.EventID}
	payload := []byte(`{"eventId":"01HN7Y8Z9A0B1C2D3E4F5G6H7J"}`)

	mocks.json.EXPECT().Marshal(event).Return(payload, nil)
	mocks.store.EXPECT().
		CreateReplyDelivery(ctx, delivery).
		DoAndReturn(func(_ context.Context, d *schema.ReplyDelivery) error {
			assert.Equal(t, schema.ReplyDeliveryStatusPending, d.Status)
			assert.JSONEq(t, string(payload), string(d.Payload))
			d.ID = 12
			return nil
		})

	id, err := mocks.executor.CreateReplyDeliveryRecord(ctx, delivery, event)

	require.NoError(t, err)
	assert.Equal(t, uint64(12), id)
}

func TestCreateReplyDeliveryRecord_MarshalError(t *testing.T) {
	mocks := setupTestExecutor(t, workflows.ExecutorConfig{})
	defer tearDownTestExecutor(mocks)

	ctx := context.Background()
	event := testReplyEvent()

	mocks.json.EXPECT().Marshal(event).Return(nil, errors.New("unsupported value"))

	_, err := mocks.executor.CreateReplyDeliveryRecord(ctx, &schema.ReplyDelivery{}, event)

	assert.Error(t, err)
}

// ====================================================================================
// MarkReplyDelivering / MarkReplyFailed Tests
// ====================================================================================

func TestMarkReplyDelivering(t *testing.T) {
	mocks := setupTestExecutor(t, workflows.ExecutorConfig{})
	defer tearDownTestExecutor(mocks)

	ctx := context.Background()
	mocks.store.EXPECT().
		UpdateAiMessageDelivery(ctx, testMessageID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, update store.ReplyDeliveryUpdate) error {
			assert.Equal(t, domain.DeliveryStatusDelivering, update.Status)
			require.NotNil(t, update.WorkflowID)
			assert.Equal(t, "reply-delivery-"+testMessageID, *update.WorkflowID)
			return nil
		})

	err := mocks.executor.MarkReplyDelivering(ctx, testMessageID, "reply-delivery-"+testMessageID)

	assert.NoError(t, err)
}

func TestMarkReplyFailed(t *testing.T) {
	mocks := setupTestExecutor(t, workflows.ExecutorConfig{})
	defer tearDownTestExecutor(mocks)

	ctx := context.Background()
	mocks.store.EXPECT().
		UpdateAiMessageDelivery(ctx, testMessageID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, update store.ReplyDeliveryUpdate) error {
			assert.Equal(t, domain.DeliveryStatusFailed, update.Status)
			require.NotNil(t, update.Error)
			assert.Equal(t, "HTTP 502", *update.Error)
			return nil
		})

	err := mocks.executor.MarkReplyFailed(ctx, testMessageID, "HTTP 502")

	assert.NoError(t, err)
}

// ====================================================================================
// DeliverReplyHTTP Tests
// ====================================================================================

func TestDeliverReplyHTTP_SignedSuccess(t *testing.T) {
	mocks := setupTestExecutor(t, workflows.ExecutorConfig{
		WebhookURL:    testWebhookURL,
		WebhookSecret: "reply-secret",
	})
	defer tearDownTestExecutor(mocks)

	ctx := context.Background()
	event := testReplyEvent()
	deliveryID := uint64(789)
	statusCode := http.StatusOK
	deliveredAt := time.Date(2024, 1, 15, 10, 0, 5, 0, time.UTC)
	mockResponse := okResponse(`{"ok":true}`)

	mocks.temporalActivity.EXPECT().GetAttempt(ctx).Return(int32(1))

	mocks.httpClient.EXPECT().
		PostWithHeadersNoRetry(ctx, testWebhookURL, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, headers map[string]string, body io.Reader) (*http.Response, error) {
			assert.Equal(t, "application/json", headers["Content-Type"])
			assert.Equal(t, event.EventID, headers[webhook.HeaderEventID])
			assert.Equal(t, webhook.EventTypeUserReply, headers[webhook.HeaderEventType])
			assert.Equal(t, webhook.UserAgent, headers["User-Agent"])
			assert.NotEmpty(t, headers[webhook.HeaderTimestamp])

			payload, err := io.ReadAll(body)
			require.NoError(t, err)
			message := headers[webhook.HeaderTimestamp] + "." + event.EventID + "." + string(payload)
			assert.Equal(t, webhook.Sign("reply-secret", message), headers[webhook.HeaderSignature])
			return mockResponse, nil
		})

	mocks.io.EXPECT().
		ReadLimited(mockResponse.Body, int64(4*1024)).
		Return([]byte(`{"ok":true}`), nil)

	mocks.store.EXPECT().
		UpdateReplyDeliveryStatus(ctx, deliveryID, schema.ReplyDeliveryStatusSuccess, 1, &statusCode, `{"ok":true}`, "").
		Return(nil)

	mocks.clock.EXPECT().Now().Return(deliveredAt)
	mocks.store.EXPECT().
		UpdateAiMessageDelivery(ctx, testMessageID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, update store.ReplyDeliveryUpdate) error {
			assert.Equal(t, domain.DeliveryStatusDelivered, update.Status)
			require.NotNil(t, update.Attempts)
			assert.Equal(t, 1, *update.Attempts)
			require.NotNil(t, update.DeliveredAt)
			assert.Equal(t, deliveredAt, *update.DeliveredAt)
			assert.Nil(t, update.Error)
			return nil
		})

	result, err := mocks.executor.DeliverReplyHTTP(ctx, event, deliveryID)

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, statusCode, result.StatusCode)
	assert.Equal(t, `{"ok":true}`, result.Body)
}

func TestDeliverReplyHTTP_UnsignedSuccess(t *testing.T) {
	mocks := setupTestExecutor(t, workflows.ExecutorConfig{WebhookURL: testWebhookURL})
	defer tearDownTestExecutor(mocks)

	ctx := context.Background()
	event := testReplyEvent()
	mockResponse := okResponse("")

	mocks.temporalActivity.EXPECT().GetAttempt(ctx).Return(int32(2))

	mocks.httpClient.EXPECT().
		PostWithHeadersNoRetry(ctx, testWebhookURL, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, headers map[string]string, body io.Reader) (*http.Response, error) {
			assert.NotContains(t, headers, webhook.HeaderSignature)
			assert.NotContains(t, headers, webhook.HeaderTimestamp)

			payload, err := io.ReadAll(body)
			require.NoError(t, err)
			expected, err := webhook.CanonicalPayload(event)
			require.NoError(t, err)
			assert.Equal(t, string(expected), string(payload))
			return mockResponse, nil
		})

	mocks.io.EXPECT().ReadLimited(mockResponse.Body, int64(4*1024)).Return([]byte{}, nil)
	mocks.store.EXPECT().
		UpdateReplyDeliveryStatus(ctx, uint64(5), schema.ReplyDeliveryStatusSuccess, 2, gomock.Any(), "", "").
		Return(nil)
	mocks.clock.EXPECT().Now().Return(time.Now())
	mocks.store.EXPECT().UpdateAiMessageDelivery(ctx, testMessageID, gomock.Any()).Return(nil)

	result, err := mocks.executor.DeliverReplyHTTP(ctx, event, uint64(5))

	require.NoError(t, err)
	assert.True(t, result.Success)
}

func TestDeliverReplyHTTP_HTTPError(t *testing.T) {
	mocks := setupTestExecutor(t, workflows.ExecutorConfig{WebhookURL: testWebhookURL})
	defer tearDownTestExecutor(mocks)

	ctx := context.Background()
	event := testReplyEvent()
	expectedError := errors.New("connection refused")

	mocks.temporalActivity.EXPECT().GetAttempt(ctx).Return(int32(1))
	mocks.httpClient.EXPECT().
		PostWithHeadersNoRetry(ctx, testWebhookURL, gomock.Any(), gomock.Any()).
		Return(nil, expectedError)
	mocks.store.EXPECT().
		UpdateReplyDeliveryStatus(ctx, uint64(789), schema.ReplyDeliveryStatusFailed, 1, nil, "", expectedError.Error()).
		Return(nil)
	mocks.store.EXPECT().
		UpdateAiMessageDelivery(ctx, testMessageID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, update store.ReplyDeliveryUpdate) error {
			assert.Equal(t, domain.DeliveryStatusDelivering, update.Status)
			require.NotNil(t, update.Error)
			assert.Equal(t, expectedError.Error(), *update.Error)
			assert.Nil(t, update.DeliveredAt)
			return nil
		})

	result, err := mocks.executor.DeliverReplyHTTP(ctx, event, uint64(789))

	assert.ErrorIs(t, err, expectedError)
	assert.False(t, result.Success)
}

func TestDeliverReplyHTTP_Non2xxResponse(t *testing.T) {
	mocks := setupTestExecutor(t, workflows.ExecutorConfig{WebhookURL: testWebhookURL})
	defer tearDownTestExecutor(mocks)

	ctx := context.Background()
	event := testReplyEvent()
	statusCode := http.StatusBadGateway
	mockResponse := &http.Response{
		StatusCode: statusCode,
		Body:       io.NopCloser(bytes.NewBufferString("bad gateway")),
	}

	mocks.temporalActivity.EXPECT().GetAttempt(ctx).Return(int32(3))
	mocks.httpClient.EXPECT().
		PostWithHeadersNoRetry(ctx, testWebhookURL, gomock.Any(), gomock.Any()).
		Return(mockResponse, nil)
	mocks.io.EXPECT().ReadLimited(mockResponse.Body, int64(4*1024)).Return([]byte("bad gateway"), nil)
	mocks.store.EXPECT().
		UpdateReplyDeliveryStatus(ctx, uint64(789), schema.ReplyDeliveryStatusFailed, 3, &statusCode, "bad gateway", "HTTP 502").
		Return(nil)
	mocks.store.EXPECT().UpdateAiMessageDelivery(ctx, testMessageID, gomock.Any()).Return(nil)

	result, err := mocks.executor.DeliverReplyHTTP(ctx, event, uint64(789))

	assert.EqualError(t, err, "HTTP 502")
	assert.False(t, result.Success)
	assert.Equal(t, statusCode, result.StatusCode)
	assert.Equal(t, "bad gateway", result.Body)
}

func TestDeliverReplyHTTP_BookkeepingErrorDoesNotFailDelivery(t *testing.T) {
	mocks := setupTestExecutor(t, workflows.ExecutorConfig{WebhookURL: testWebhookURL})
	defer tearDownTestExecutor(mocks)

	ctx := context.Background()
	event := testReplyEvent()
	mockResponse := okResponse("ok")

	mocks.temporalActivity.EXPECT().GetAttempt(ctx).Return(int32(1))
	mocks.httpClient.EXPECT().
		PostWithHeadersNoRetry(ctx, testWebhookURL, gomock.Any(), gomock.Any()).
		Return(mockResponse, nil)
	mocks.io.EXPECT().ReadLimited(mockResponse.Body, int64(4*1024)).Return(nil, errors.New("unexpected EOF"))
	mocks.store.EXPECT().
		UpdateReplyDeliveryStatus(ctx, uint64(1), schema.ReplyDeliveryStatusSuccess, 1, gomock.Any(), "", "").
		Return(errors.New("database unavailable"))
	mocks.clock.EXPECT().Now().Return(time.Now())
	mocks.store.EXPECT().
		UpdateAiMessageDelivery(ctx, testMessageID, gomock.Any()).
		Return(errors.New("database unavailable"))

	result, err := mocks.executor.DeliverReplyHTTP(ctx, event, uint64(1))

	require.NoError(t, err)
	assert.True(t, result.Success)
}

func TestDeliverReplyHTTP_WebhookNotConfigured(t *testing.T) {
	mocks := setupTestExecutor(t, workflows.ExecutorConfig{})
	defer tearDownTestExecutor(mocks)

	ctx := context.Background()
	event := testReplyEvent()

	mocks.temporalActivity.EXPECT().GetAttempt(ctx).Return(int32(1))
	mocks.store.EXPECT().
		UpdateReplyDeliveryStatus(ctx, uint64(789), schema.ReplyDeliveryStatusFailed, 1, nil, "", domain.ErrWebhookNotConfigured.Error()).
		Return(nil)
	mocks.store.EXPECT().UpdateAiMessageDelivery(ctx, testMessageID, gomock.Any()).Return(nil)

	result, err := mocks.executor.DeliverReplyHTTP(ctx, event, uint64(789))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrWebhookNotConfigured)
	assert.False(t, result.Success)
}
