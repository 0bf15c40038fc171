package workflows

import (
	"go.temporal.io/sdk/workflow"
)

// WorkerCore defines the workflows run by the reply delivery worker
//
//go:generate mockgen -source=worker.go -destination=../mocks/worker_core.go -package=mocks -mock_names=WorkerCore=MockCoreWorker
type WorkerCore interface {
	// DeliverReply posts a saved USER message to the automation webhook
	DeliverReply(ctx workflow.Context, messageID string) error
}

type WorkerCoreConfig struct {
	// ReplyMaxAttempts is the number of HTTP attempts before a reply is marked failed
	ReplyMaxAttempts int
}

// workerCore is the concrete implementation of WorkerCore
type workerCore struct {
	config   WorkerCoreConfig
	executor Executor
}

// NewWorkerCore creates a new worker core instance
func NewWorkerCore(executor Executor, config WorkerCoreConfig) WorkerCore {
	if config.ReplyMaxAttempts <= 0 {
		config.ReplyMaxAttempts = 5
	}
	return &workerCore{
		executor: executor,
		config:   config,
	}
}
