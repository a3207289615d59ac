// Package workers runs background work of the intake portal.
//
// The [Dispatcher] executes best-effort side effects, such as lifecycle
// notifications, outside of the request that triggered them. Failures are
// logged and never returned to the caller.
package workers

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/dispatcher_mock.go -package=mock

// Task is a unit of background work. ctx is detached from the triggering
// request and carries its own deadline.
type Task func(ctx context.Context) error

// Dispatcher is the interface for fire-and-forget execution.
//
// Example:
//
//	dispatcher.Go(ctx, "case-confirmation", func(ctx context.Context) error {
//	    return notifier.CaseConfirmation(ctx, caseReview)
//	})
type Dispatcher interface {
	// Go runs task in its own goroutine and returns immediately. ctx only
	// contributes values (such as the request logger); its cancellation
	// does not stop the task.
	Go(ctx context.Context, name string, task Task)

	// Shutdown stops accepting tasks and waits for in-flight ones until
	// ctx is done.
	Shutdown(ctx context.Context) error
}
