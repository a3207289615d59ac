// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civilci/intake-portal/internal/logger"
)

func TestDispatcher_RunsTasksIndependently(t *testing.T) {
	d := NewDispatcher(time.Second, logger.Nop())

	var ok atomic.Int32
	d.Go(context.Background(), "fails", func(ctx context.Context) error {
		return errors.New("smtp down")
	})
	d.Go(context.Background(), "succeeds", func(ctx context.Context) error {
		ok.Add(1)
		return nil
	})

	require.NoError(t, d.Shutdown(context.Background()))
	assert.Equal(t, int32(1), ok.Load())
}

func TestDispatcher_DetachesFromCallerCancellation(t *testing.T) {
	d := NewDispatcher(time.Second, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	started := make(chan struct{})
	var taskErr atomic.Value

	d.Go(ctx, "detached", func(ctx context.Context) error {
		close(started)
		time.Sleep(20 * time.Millisecond)
		if err := ctx.Err(); err != nil {
			taskErr.Store(err)
		}
		return nil
	})

	<-started
	cancel()

	require.NoError(t, d.Shutdown(context.Background()))
	assert.Nil(t, taskErr.Load())
}

func TestDispatcher_AppliesTimeout(t *testing.T) {
	d := NewDispatcher(10*time.Millisecond, logger.Nop())

	deadline := make(chan bool, 1)
	d.Go(context.Background(), "slow", func(ctx context.Context) error {
		_, ok := ctx.Deadline()
		deadline <- ok
		<-ctx.Done()
		return ctx.Err()
	})

	require.NoError(t, d.Shutdown(context.Background()))
	assert.True(t, <-deadline)
}

func TestDispatcher_RecoversPanics(t *testing.T) {
	d := NewDispatcher(time.Second, logger.Nop())

	d.Go(context.Background(), "panics", func(ctx context.Context) error {
		panic("boom")
	})

	require.NoError(t, d.Shutdown(context.Background()))
}

func TestDispatcher_DropsAfterShutdown(t *testing.T) {
	d := NewDispatcher(time.Second, logger.Nop())
	require.NoError(t, d.Shutdown(context.Background()))

	var ran atomic.Bool
	d.Go(context.Background(), "late", func(ctx context.Context) error {
		ran.Store(true)
		return nil
	})

	require.NoError(t, d.Shutdown(context.Background()))
	assert.False(t, ran.Load())
}

func TestDispatcher_ShutdownHonoursDeadline(t *testing.T) {
	d := NewDispatcher(0, logger.Nop())

	release := make(chan struct{})
	defer close(release)
	d.Go(context.Background(), "blocked", func(ctx context.Context) error {
		<-release
		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := d.Shutdown(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
