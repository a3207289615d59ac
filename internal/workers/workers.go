package workers

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/civilci/intake-portal/internal/logger"
)

// ErrDispatcherClosed is reported in logs for tasks submitted after
// Shutdown.
var ErrDispatcherClosed = errors.New("dispatcher is shut down")

type dispatcher struct {
	timeout time.Duration
	logger  *logger.Logger

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// NewDispatcher returns a [Dispatcher] that bounds each task by timeout.
// A zero timeout leaves tasks unbounded.
func NewDispatcher(timeout time.Duration, logger *logger.Logger) Dispatcher {
	return &dispatcher{
		timeout: timeout,
		logger:  logger,
	}
}

func (d *dispatcher) Go(ctx context.Context, name string, task Task) {
	log := logger.FromContext(ctx)
	if log.GetLevel() == zerolog.Disabled {
		log = d.logger
	}

	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		log.Warn().Err(ErrDispatcherClosed).Str("task", name).Msg("background task dropped")
		return
	}
	d.wg.Add(1)
	d.mu.Unlock()

	taskCtx := context.WithoutCancel(ctx)
	go func() {
		defer d.wg.Done()

		var cancel context.CancelFunc = func() {}
		if d.timeout > 0 {
			taskCtx, cancel = context.WithTimeout(taskCtx, d.timeout)
		}
		defer cancel()

		start := time.Now()
		if err := d.run(taskCtx, task); err != nil {
			log.Warn().Err(err).Str("task", name).Dur("duration", time.Since(start)).Msg("background task failed")
			return
		}
		log.Debug().Str("task", name).Dur("duration", time.Since(start)).Msg("background task done")
	}()
}

// run converts a panic inside task into an error.
func (d *dispatcher) run(ctx context.Context, task Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return task(ctx)
}

func (d *dispatcher) Shutdown(ctx context.Context) error {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.logger.Info().Msg("background tasks drained")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for background tasks: %w", ctx.Err())
	}
}
