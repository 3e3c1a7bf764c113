/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package runner

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"github.com/suparena/sdbsplit/reader"
	"github.com/suparena/sdbsplit/split"
	"github.com/suparena/sdbsplit/store"
)

// ClientFactory builds one store client per split. Clients are never shared:
// each worker owns the client for exactly one split's lifetime.
type ClientFactory func(ctx context.Context) (store.Client, error)

// Handler receives each record of a split in order. Handlers for different
// splits run concurrently; a handler for one split never runs concurrently
// with itself.
type Handler func(sp split.Split, rec *store.Record) error

// Runner drains a sequence of splits concurrently on a bounded worker pool,
// one reader per split. The first failure cancels the remaining work.
type Runner struct {
	concurrency int
	newClient   ClientFactory
	logger      *zap.Logger
}

// New creates a Runner with the given worker-pool size.
func New(concurrency int, newClient ClientFactory, logger *zap.Logger) *Runner {
	if concurrency < 1 {
		concurrency = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{concurrency: concurrency, newClient: newClient, logger: logger}
}

// Run processes every split, invoking handle for each record. It returns the
// first error encountered; splits not yet started when an error occurs are
// skipped.
func (r *Runner) Run(ctx context.Context, splits []split.Split, handle Handler) error {
	pool, err := ants.NewPool(r.concurrency)
	if err != nil {
		return fmt.Errorf("failed to create worker pool: %w", err)
	}
	defer pool.Release()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			cancel()
		})
	}

	for i := range splits {
		sp := splits[i]
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			if ctx.Err() != nil {
				return
			}
			if err := r.drain(ctx, sp, handle); err != nil {
				fail(err)
			}
		}); err != nil {
			wg.Done()
			fail(fmt.Errorf("failed to submit split %v: %w", sp, err))
			break
		}
	}

	wg.Wait()
	return firstErr
}

// drain reads one split end to end with its own client and reader.
func (r *Runner) drain(ctx context.Context, sp split.Split, handle Handler) error {
	client, err := r.newClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create client for split %v: %w", sp, err)
	}

	rd, err := reader.New(ctx, client, sp, r.logger)
	if err != nil {
		client.Close()
		return err
	}
	defer rd.Close()

	r.logger.Info("processing split start", zap.Stringer("split", sp))

	var rec store.Record
	for rd.Next(&rec) {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := handle(sp, &rec); err != nil {
			return fmt.Errorf("handler failed on split %v: %w", sp, err)
		}
	}

	r.logger.Info("processing split end",
		zap.Stringer("split", sp),
		zap.Uint64("records", rd.Pos()))
	return nil
}
