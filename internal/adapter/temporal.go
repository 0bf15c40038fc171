package adapter

import (
	"context"

	"go.temporal.io/sdk/activity"
)

// Activity defines an interface for reading activity execution info to enable mocking
//
//go:generate mockgen -source=temporal.go -destination=../mocks/temporal.go -package=mocks -mock_names=Activity=MockActivity
type Activity interface {
	// GetAttempt returns the current attempt number, starting at 1
	GetAttempt(ctx context.Context) int32

	// GetWorkflowExecution returns the ID and run ID of the workflow that scheduled the activity
	GetWorkflowExecution(ctx context.Context) (workflowID string, runID string)
}

// RealActivity implements Activity using the standard activity package
type RealActivity struct{}

// NewActivity creates a new real activity implementation
func NewActivity() Activity {
	return &RealActivity{}
}

// GetAttempt returns the current attempt number
func (a *RealActivity) GetAttempt(ctx context.Context) int32 {
	return activity.GetInfo(ctx).Attempt
}

// GetWorkflowExecution returns the workflow execution that scheduled the activity
func (a *RealActivity) GetWorkflowExecution(ctx context.Context) (string, string) {
	info := activity.GetInfo(ctx)
	return info.WorkflowExecution.ID, info.WorkflowExecution.RunID
}
