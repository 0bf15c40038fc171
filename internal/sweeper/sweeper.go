// Package sweeper runs the background jobs of the sweeper program.
package sweeper

import (
	"context"
)

// Sweeper is a periodic job that repairs state the request path could not finish,
// such as replies whose hand-off to the delivery worker was lost
//
//go:generate mockgen -source=sweeper.go -destination=../mocks/sweeper.go -package=mocks -mock_names=Sweeper=MockSweeper
type Sweeper interface {
	// Start runs sweep cycles until ctx is canceled or Stop is called
	Start(ctx context.Context) error

	// Stop ends the loop and waits for in-flight enqueues, bounded by ctx
	Stop(ctx context.Context) error

	// Name identifies the sweeper in logs
	Name() string
}
