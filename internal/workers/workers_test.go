// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/secure-vault/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockingWorker runs until its context is cancelled.
func blockingWorker(stopped *atomic.Int32) Worker {
	return WorkerFunc(func(ctx context.Context) error {
		<-ctx.Done()
		stopped.Add(1)
		return nil
	})
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers(logger.Nop())

	assert.NoError(t, ws.Run(context.Background()))
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	var calls atomic.Int32
	w := WorkerFunc(func(ctx context.Context) error {
		calls.Add(1)
		return nil
	})

	ws := NewWorkers(logger.Nop(), w, w, w)

	require.NoError(t, ws.Run(context.Background()))
	assert.EqualValues(t, 3, calls.Load())
}

func TestWorkers_Run_FirstReturnStopsOthers(t *testing.T) {
	var stopped atomic.Int32
	finisher := WorkerFunc(func(ctx context.Context) error { return nil })

	ws := NewWorkers(logger.Nop(), blockingWorker(&stopped), finisher, blockingWorker(&stopped))

	done := make(chan error, 1)
	go func() { done <- ws.Run(context.Background()) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("workers did not stop")
	}
	assert.EqualValues(t, 2, stopped.Load())
}

func TestWorkers_Run_ReturnsFirstError(t *testing.T) {
	boom := errors.New("boom")
	var stopped atomic.Int32

	ws := NewWorkers(logger.Nop(),
		blockingWorker(&stopped),
		WorkerFunc(func(ctx context.Context) error { return boom }),
	)

	err := ws.Run(context.Background())

	assert.ErrorIs(t, err, boom)
	assert.EqualValues(t, 1, stopped.Load())
}

func TestWorkers_Run_ParentCancel(t *testing.T) {
	var stopped atomic.Int32
	ws := NewWorkers(logger.Nop(), blockingWorker(&stopped), blockingWorker(&stopped))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, ws.Run(ctx))
	assert.EqualValues(t, 2, stopped.Load())
}
