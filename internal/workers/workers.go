// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"github.com/MKhiriev/secure-vault/internal/logger"
	"golang.org/x/sync/errgroup"
)

// Workers runs a fixed set of workers concurrently.
type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

// NewWorkers groups ws.
func NewWorkers(logger *logger.Logger, ws ...Worker) *Workers {
	return &Workers{workers: ws, logger: logger}
}

// Run starts every worker and blocks until all have returned. The first
// worker to return, with or without an error, cancels the others. The first
// non-nil error is returned.
func (w *Workers) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	for i, worker := range w.workers {
		g.Go(func() error {
			defer cancel()
			err := worker.Run(gctx)
			if err != nil {
				w.logger.Err(err).Str("func", "Workers.Run").Int("worker", i).Msg("worker failed")
			}
			return err
		})
	}

	return g.Wait()
}
