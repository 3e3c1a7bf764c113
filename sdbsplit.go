/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package sdbsplit

import (
	"context"

	"go.uber.org/zap"

	"github.com/suparena/sdbsplit/config"
	"github.com/suparena/sdbsplit/planner"
	"github.com/suparena/sdbsplit/reader"
	"github.com/suparena/sdbsplit/runner"
	"github.com/suparena/sdbsplit/split"
	"github.com/suparena/sdbsplit/store"
	"github.com/suparena/sdbsplit/store/sdb"
)

// PlanSplits partitions the configured domain into an ordered sequence of
// splits covering every row. It runs on the coordinating process; each split
// is then serialized and shipped to a worker.
func PlanSplits(ctx context.Context, cfg *config.Config, logger *zap.Logger) ([]split.Split, error) {
	client, err := sdb.New(cfg, logger)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	return planner.New(client, cfg, logger).Plan(ctx)
}

// OpenReader constructs a reader for one split with its own store client.
// The reader owns the client; callers must Close the reader when done.
func OpenReader(ctx context.Context, cfg *config.Config, sp split.Split, logger *zap.Logger) (*reader.Reader, error) {
	client, err := sdb.New(cfg, logger)
	if err != nil {
		return nil, err
	}

	r, err := reader.New(ctx, client, sp, logger)
	if err != nil {
		client.Close()
		return nil, err
	}
	return r, nil
}

// NewRunner builds a runner that drains splits concurrently, constructing one
// SimpleDB client per split from the configuration.
func NewRunner(cfg *config.Config, concurrency int, logger *zap.Logger) *runner.Runner {
	factory := func(ctx context.Context) (store.Client, error) {
		return sdb.New(cfg, logger)
	}
	return runner.New(concurrency, factory, logger)
}
