package sweeper_test

import (
	"context"
	"errors"
	"fmt"
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
	"github.com/feral-file/realty-crm/internal/sweeper"
)

const (
	testInterval   = time.Minute
	testStaleAfter = 5 * time.Minute
)

var testNow = time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

// testSweeperMocks contains all the mocks needed for testing the sweeper
type testSweeperMocks struct {
	ctrl    *gomock.Controller
	store   *mocks.MockStore
	queue   *mocks.MockReplyQueue
	clock   *mocks.MockClock
	sweeper sweeper.Sweeper
}

// setupTestSweeper creates all the mocks and sweeper for testing
func setupTestSweeper(t *testing.T) *testSweeperMocks {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: true,
	})
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	ctrl := gomock.NewController(t)

	tm := &testSweeperMocks{
		ctrl:  ctrl,
		store: mocks.NewMockStore(ctrl),
		queue: mocks.NewMockReplyQueue(ctrl),
		clock: mocks.NewMockClock(ctrl),
	}

	tm.sweeper = sweeper.NewReplyRedeliverySweeper(
		sweeper.ReplyRedeliverySweeperConfig{
			Interval:       testInterval,
			BatchSize:      10,
			StaleAfter:     testStaleAfter,
			WorkerPoolSize: 2,
		},
		tm.store,
		tm.queue,
		tm.clock,
	)

	return tm
}

// tearDownTestSweeper cleans up the test mocks
func tearDownTestSweeper(mocks *testSweeperMocks) {
	mocks.ctrl.Finish()
}

// runOneCycle starts the sweeper and cancels it once the first cycle goes to sleep
func runOneCycle(t *testing.T, m *testSweeperMocks) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m.clock.EXPECT().
		After(testInterval).
		DoAndReturn(func(time.Duration) <-chan time.Time {
			cancel()
			return make(chan time.Time)
		})

	done := make(chan error, 1)
	go func() {
		done <- m.sweeper.Start(ctx)
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("sweeper did not stop")
	}
}

func userMessage(id string) schema.AiMessage {
	return schema.AiMessage{
		ID:             id,
		SenderType:     domain.SenderTypeUser,
		DeliveryStatus: domain.DeliveryStatusQueued,
	}
}

func TestReplyRedeliverySweeper_Name(t *testing.T) {
	mocks := setupTestSweeper(t)
	defer tearDownTestSweeper(mocks)

	assert.Equal(t, "reply-redelivery-sweeper", mocks.sweeper.Name())
}

func TestReplyRedeliverySweeper_StopWithoutStart(t *testing.T) {
	mocks := setupTestSweeper(t)
	defer tearDownTestSweeper(mocks)

	assert.NoError(t, mocks.sweeper.Stop(context.Background()))
}

func TestReplyRedeliverySweeper_EnqueuesStaleReplies(t *testing.T) {
	mocks := setupTestSweeper(t)
	defer tearDownTestSweeper(mocks)

	messages := []schema.AiMessage{userMessage("msg-1"), userMessage("msg-2")}

	mocks.clock.EXPECT().Now().Return(testNow).AnyTimes()
	mocks.store.EXPECT().
		ListRedeliverableReplies(gomock.Any(), testNow.Add(-testStaleAfter), 10).
		Return(messages, nil)

	for _, message := range messages {
		workflowID := "reply-delivery-" + message.ID
		mocks.queue.EXPECT().Enqueue(gomock.Any(), message.ID).Return(workflowID, nil)
		mocks.store.EXPECT().
			UpdateAiMessageDelivery(gomock.Any(), message.ID, store.ReplyDeliveryUpdate{
				Status:     domain.DeliveryStatusQueued,
				WorkflowID: &workflowID,
			}).
			Return(nil)
	}

	runOneCycle(t, mocks)
}

func TestReplyRedeliverySweeper_DeliveryAlreadyStarted(t *testing.T) {
	mocks := setupTestSweeper(t)
	defer tearDownTestSweeper(mocks)

	mocks.clock.EXPECT().Now().Return(testNow).AnyTimes()
	mocks.store.EXPECT().
		ListRedeliverableReplies(gomock.Any(), gomock.Any(), 10).
		Return([]schema.AiMessage{userMessage("msg-1")}, nil)
	mocks.queue.EXPECT().Enqueue(gomock.Any(), "msg-1").Return("reply-delivery-msg-1", nil)

	// The worker moved the message past queued in the meantime
	mocks.store.EXPECT().
		UpdateAiMessageDelivery(gomock.Any(), "msg-1", gomock.Any()).
		Return(domain.ErrNotFound)

	runOneCycle(t, mocks)
}

func TestReplyRedeliverySweeper_AlreadyDelivered(t *testing.T) {
	mocks := setupTestSweeper(t)
	defer tearDownTestSweeper(mocks)

	mocks.clock.EXPECT().Now().Return(testNow).AnyTimes()
	mocks.store.EXPECT().
		ListRedeliverableReplies(gomock.Any(), gomock.Any(), 10).
		Return([]schema.AiMessage{userMessage("msg-1")}, nil)
	mocks.queue.EXPECT().
		Enqueue(gomock.Any(), "msg-1").
		Return("reply-delivery-msg-1", fmt.Errorf("%w: msg-1", domain.ErrAlreadyDelivered)).
		Times(1)
	mocks.store.EXPECT().
		UpdateAiMessageDelivery(gomock.Any(), "msg-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, update store.ReplyDeliveryUpdate) error {
			assert.Equal(t, domain.DeliveryStatusDelivered, update.Status)
			require.NotNil(t, update.DeliveredAt)
			assert.Equal(t, testNow, *update.DeliveredAt)
			return nil
		})

	runOneCycle(t, mocks)
}

func TestReplyRedeliverySweeper_EnqueueFailure(t *testing.T) {
	mocks := setupTestSweeper(t)
	defer tearDownTestSweeper(mocks)

	mocks.clock.EXPECT().Now().Return(testNow).AnyTimes()
	mocks.store.EXPECT().
		ListRedeliverableReplies(gomock.Any(), gomock.Any(), 10).
		Return([]schema.AiMessage{userMessage("msg-1")}, nil)
	mocks.queue.EXPECT().
		Enqueue(gomock.Any(), "msg-1").
		Return("", errors.New("frontend unavailable"))
	mocks.store.EXPECT().
		UpdateAiMessageDelivery(gomock.Any(), "msg-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, update store.ReplyDeliveryUpdate) error {
			assert.Equal(t, domain.DeliveryStatusFailed, update.Status)
			require.NotNil(t, update.Attempts)
			assert.Equal(t, 0, *update.Attempts)
			require.NotNil(t, update.Error)
			assert.Equal(t, "frontend unavailable", *update.Error)
			return nil
		})

	runOneCycle(t, mocks)
}

func TestReplyRedeliverySweeper_ListError(t *testing.T) {
	mocks := setupTestSweeper(t)
	defer tearDownTestSweeper(mocks)

	mocks.clock.EXPECT().Now().Return(testNow).AnyTimes()
	mocks.store.EXPECT().
		ListRedeliverableReplies(gomock.Any(), gomock.Any(), 10).
		Return(nil, errors.New("database unavailable"))

	runOneCycle(t, mocks)
}

func TestReplyRedeliverySweeper_Stop(t *testing.T) {
	mocks := setupTestSweeper(t)
	defer tearDownTestSweeper(mocks)

	sleeping := make(chan struct{})
	mocks.clock.EXPECT().Now().Return(testNow).AnyTimes()
	mocks.store.EXPECT().
		ListRedeliverableReplies(gomock.Any(), gomock.Any(), 10).
		Return(nil, nil)
	mocks.clock.EXPECT().
		After(testInterval).
		DoAndReturn(func(time.Duration) <-chan time.Time {
			close(sleeping)
			return make(chan time.Time)
		})

	done := make(chan error, 1)
	go func() {
		done <- mocks.sweeper.Start(context.Background())
	}()

	select {
	case <-sleeping:
	case <-time.After(5 * time.Second):
		t.Fatal("sweeper never went to sleep")
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, mocks.sweeper.Stop(stopCtx))
	require.NoError(t, <-done)
}
