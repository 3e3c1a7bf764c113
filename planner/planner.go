/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package planner

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/suparena/sdbsplit/config"
	"github.com/suparena/sdbsplit/split"
	"github.com/suparena/sdbsplit/store"
)

// Planner partitions a domain into an ordered sequence of splits covering
// [0, totalItems). It runs once on a coordinating process; the splits are
// then serialized and shipped to workers.
type Planner struct {
	client    store.Client
	where     string
	splitSize uint64
	logger    *zap.Logger

	// RestartWalkPerSplit restores the original boundary-token behavior of
	// recomputing the full prefix walk from the start of the domain for every
	// split. The default carries the running count and token forward across
	// consecutive boundaries, which costs one walk instead of one per split.
	// Only set this against a store whose tokens cannot be reused across
	// independent query sequences.
	RestartWalkPerSplit bool
}

// New creates a Planner over the given client. The split size and where
// clause come from the configuration; the client must be configured with the
// same where clause so count queries see the same filtered view.
func New(client store.Client, cfg *config.Config, logger *zap.Logger) *Planner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Planner{
		client:    client,
		where:     cfg.WhereClause,
		splitSize: cfg.SplitSize,
		logger:    logger,
	}
}

// Plan computes the splits for the domain. Adjacent splits share a boundary
// row, the first starts at row 0, the last ends at the total item count, and
// no split is longer than the configured split size. Any failed store call
// aborts the whole operation: a partial split list is never returned.
func (p *Planner) Plan(ctx context.Context) ([]split.Split, error) {
	totalItems, err := p.totalItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to determine total rows: %w", err)
	}

	if totalItems == 0 {
		p.logger.Info("domain is empty, emitting a single empty split")
		return []split.Split{split.New(0, 0, nil)}, nil
	}

	totalSplits := (totalItems + p.splitSize - 1) / p.splitSize
	p.logger.Info("planning splits",
		zap.Uint64("total_rows", totalItems),
		zap.Uint64("split_size", p.splitSize),
		zap.Uint64("total_splits", totalSplits))

	walk := &boundaryWalk{client: p.client, limit: p.splitSize}
	splits := make([]split.Split, 0, totalSplits)
	for i := uint64(0); i < totalSplits; i++ {
		startRow := i * p.splitSize
		endRow := startRow + p.splitSize
		if endRow > totalItems {
			endRow = totalItems
		}

		var token *string
		if p.RestartWalkPerSplit {
			token, err = p.boundaryTokenRestart(ctx, i)
		} else {
			token, err = walk.advance(ctx, startRow)
		}
		if err != nil {
			return nil, fmt.Errorf("planning split %d: %w", i, err)
		}

		sp := split.New(startRow, endRow, token)
		splits = append(splits, sp)
		p.logger.Debug("created split", zap.Uint64("index", i), zap.Stringer("split", sp))
	}

	return splits, nil
}

// totalItems determines how many rows the splits must cover: a full count
// walk when a where clause filters the domain, exact domain metadata
// otherwise.
func (p *Planner) totalItems(ctx context.Context) (uint64, error) {
	if p.where != "" {
		return p.countAll(ctx)
	}
	return p.client.TotalItemCount(ctx)
}

// countAll accumulates COUNT(*) pages until the store stops returning tokens.
func (p *Planner) countAll(ctx context.Context) (uint64, error) {
	var (
		total uint64
		token *string
	)
	for {
		res, err := p.client.Count(ctx, 0, token)
		if err != nil {
			return 0, err
		}
		n, ok := res.CountValue()
		if !ok {
			return 0, fmt.Errorf("count query returned no count value")
		}
		total += n
		if res.NextToken == nil {
			return total, nil
		}
		token = res.NextToken
	}
}

// boundaryTokenRestart recomputes the token for split page's first row by
// walking COUNT(*) LIMIT splitSize queries from the start of the domain,
// matching the original planner's per-split restart.
func (p *Planner) boundaryTokenRestart(ctx context.Context, page uint64) (*string, error) {
	var (
		token *string
		total uint64
	)
	target := page * p.splitSize
	for total < target {
		res, err := p.client.Count(ctx, p.splitSize, token)
		if err != nil {
			return nil, err
		}
		n, ok := res.CountValue()
		if !ok {
			return nil, fmt.Errorf("count query returned no count value")
		}
		token = res.NextToken
		total += n
		if token == nil {
			break
		}
	}
	return token, nil
}

// boundaryWalk carries the running count and token forward across consecutive
// boundary computations, so the whole plan costs one walk over the domain.
type boundaryWalk struct {
	client    store.Client
	limit     uint64
	count     uint64
	token     *string
	exhausted bool
}

// advance walks COUNT(*) queries until the running count reaches target,
// returning the token marking that row. Each count is limited to the rows
// remaining to the target so the walk lands exactly on the boundary even when
// the store pages below the requested limit. Targets must not decrease
// between calls.
func (w *boundaryWalk) advance(ctx context.Context, target uint64) (*string, error) {
	for w.count < target && !w.exhausted {
		limit := w.limit
		if remaining := target - w.count; remaining < limit {
			limit = remaining
		}
		res, err := w.client.Count(ctx, limit, w.token)
		if err != nil {
			return nil, err
		}
		n, ok := res.CountValue()
		if !ok {
			return nil, fmt.Errorf("count query returned no count value")
		}
		w.count += n
		w.token = res.NextToken
		if w.token == nil {
			w.exhausted = true
		}
	}
	return w.token, nil
}
