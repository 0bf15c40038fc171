package workflows

import (
	"context"
	"errors"
	"fmt"

	"go.temporal.io/api/enums/v1"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"

	"github.com/feral-file/realty-crm/internal/domain"
	"github.com/feral-file/realty-crm/internal/providers/temporal"
)

// ReplyWorkflowID returns the workflow ID delivering a message
func ReplyWorkflowID(messageID string) string {
	return "reply-delivery-" + messageID
}

// ReplyQueue hands saved USER messages to the delivery worker
//
//go:generate mockgen -source=queue.go -destination=../mocks/reply_queue.go -package=mocks -mock_names=ReplyQueue=MockReplyQueue
type ReplyQueue interface {
	// Enqueue starts the delivery workflow of a message and returns its workflow ID
	// Returns domain.ErrAlreadyDelivered when a previous run already completed
	Enqueue(ctx context.Context, messageID string) (string, error)
}

type replyQueue struct {
	orchestrator temporal.TemporalOrchestrator
	taskQueue    string
}

// NewReplyQueue creates a reply queue backed by Temporal workflows
func NewReplyQueue(orchestrator temporal.TemporalOrchestrator, taskQueue string) ReplyQueue {
	return &replyQueue{
		orchestrator: orchestrator,
		taskQueue:    taskQueue,
	}
}

// Enqueue starts DeliverReply for the message
// A running workflow for the same message is reused, a failed one is started again
func (q *replyQueue) Enqueue(ctx context.Context, messageID string) (string, error) {
	options := client.StartWorkflowOptions{
		ID:                    ReplyWorkflowID(messageID),
		TaskQueue:             q.taskQueue,
		WorkflowIDReusePolicy: enums.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE_FAILED_ONLY,
	}

	w := NewWorkerCore(nil, WorkerCoreConfig{})
	run, err := q.orchestrator.ExecuteWorkflow(ctx, options, w.DeliverReply, messageID)
	if err != nil {
		var alreadyStarted *serviceerror.WorkflowExecutionAlreadyStarted
		if errors.As(err, &alreadyStarted) {
			return options.ID, fmt.Errorf("%w: %s", domain.ErrAlreadyDelivered, messageID)
		}
		return "", fmt.Errorf("failed to start reply delivery workflow: %w", err)
	}

	return run.GetID(), nil
}
