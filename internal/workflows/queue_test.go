package workflows_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/api/enums/v1"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"
	temporalmocks "go.temporal.io/sdk/mocks"

	"github.com/feral-file/realty-crm/internal/domain"
	"github.com/feral-file/realty-crm/internal/mocks"
	"github.com/feral-file/realty-crm/internal/workflows"
)

func TestReplyWorkflowID(t *testing.T) {
	assert.Equal(t, "reply-delivery-"+testMessageID, workflows.ReplyWorkflowID(testMessageID))
}

func TestEnqueue_StartsWorkflow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	orchestrator := mocks.NewMockTemporalOrchestrator(ctrl)
	queue := workflows.NewReplyQueue(orchestrator, "reply-delivery")

	run := &temporalmocks.WorkflowRun{}
	run.On("GetID").Return(workflows.ReplyWorkflowID(testMessageID))
	defer run.AssertExpectations(t)

	orchestrator.EXPECT().
		ExecuteWorkflow(ctx, gomock.Any(), gomock.Any(), testMessageID).
		DoAndReturn(func(_ context.Context, options client.StartWorkflowOptions, _ interface{}, _ ...interface{}) (client.WorkflowRun, error) {
			assert.Equal(t, workflows.ReplyWorkflowID(testMessageID), options.ID)
			assert.Equal(t, "reply-delivery", options.TaskQueue)
			assert.Equal(t, enums.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE_FAILED_ONLY, options.WorkflowIDReusePolicy)
			return run, nil
		})

	workflowID, err := queue.Enqueue(ctx, testMessageID)

	require.NoError(t, err)
	assert.Equal(t, workflows.ReplyWorkflowID(testMessageID), workflowID)
}

func TestEnqueue_AlreadyCompleted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	orchestrator := mocks.NewMockTemporalOrchestrator(ctrl)
	queue := workflows.NewReplyQueue(orchestrator, "reply-delivery")

	orchestrator.EXPECT().
		ExecuteWorkflow(ctx, gomock.Any(), gomock.Any(), testMessageID).
		Return(nil, serviceerror.NewWorkflowExecutionAlreadyStarted("workflow execution already started", "", ""))

	workflowID, err := queue.Enqueue(ctx, testMessageID)

	assert.ErrorIs(t, err, domain.ErrAlreadyDelivered)
	assert.Equal(t, workflows.ReplyWorkflowID(testMessageID), workflowID)
}

func TestEnqueue_StartError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	orchestrator := mocks.NewMockTemporalOrchestrator(ctrl)
	queue := workflows.NewReplyQueue(orchestrator, "reply-delivery")

	orchestrator.EXPECT().
		ExecuteWorkflow(ctx, gomock.Any(), gomock.Any(), testMessageID).
		Return(nil, errors.New("frontend unavailable"))

	workflowID, err := queue.Enqueue(ctx, testMessageID)

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrAlreadyDelivered)
	assert.Empty(t, workflowID)
}
