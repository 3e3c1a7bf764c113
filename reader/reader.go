/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package reader

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/suparena/sdbsplit/split"
	"github.com/suparena/sdbsplit/store"
)

// Reader materializes one split's records and hands them out sequentially.
// Construction eagerly pulls the whole split into memory, acceptable because
// splits are bounded by the configured split size; a cursor then walks the
// records one at a time.
type Reader struct {
	sp     split.Split
	client store.Client
	items  []store.Record
	cursor uint64
	closed bool
	logger *zap.Logger
}

// New constructs a Reader for the given split, materializing its records by
// paged selects starting at the split's token. The reader takes ownership of
// the client; Close releases it. If any select fails, construction fails
// outright and no partially materialized reader is exposed.
func New(ctx context.Context, client store.Client, sp split.Split, logger *zap.Logger) (*Reader, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := &Reader{sp: sp, client: client, logger: logger}
	if err := r.materialize(ctx); err != nil {
		return nil, fmt.Errorf("failed to materialize split %v: %w", sp, err)
	}
	return r, nil
}

// materialize accumulates items page by page until the split's declared
// length is collected or the store reports no further token.
func (r *Reader) materialize(ctx context.Context) error {
	want := r.sp.Length()
	token := r.sp.Token

	for uint64(len(r.items)) < want {
		res, err := r.client.Select(ctx, store.MaxSelectLimit, token)
		if err != nil {
			return err
		}

		for _, item := range res.Items {
			if uint64(len(r.items)) == want {
				break
			}
			r.items = append(r.items, item)
		}

		if res.NextToken == nil {
			break
		}
		token = res.NextToken
	}

	r.logger.Debug("materialized split",
		zap.Uint64("start_row", r.sp.StartRow),
		zap.Uint64("end_row", r.sp.EndRow),
		zap.Int("items", len(r.items)))
	return nil
}

// Next fills rec with the record at the cursor and advances it. Returns false
// once the split is exhausted, and keeps returning false on every later call.
func (r *Reader) Next(rec *store.Record) bool {
	if r.cursor >= r.sp.Length() || r.cursor >= uint64(len(r.items)) {
		return false
	}

	item := r.items[r.cursor]
	r.cursor++
	rec.Key = item.Key
	rec.Attributes = item.Attributes
	return true
}

// Pos returns the current cursor position within the split.
func (r *Reader) Pos() uint64 {
	return r.cursor
}

// Progress reports how far the cursor has iterated over the split as a
// fraction in [0, 1]. At full exhaustion it returns 0.0 rather than 1.0,
// matching the behavior downstream consumers have always seen.
func (r *Reader) Progress() float64 {
	if r.cursor == r.sp.Length() {
		return 0.0
	}
	p := float64(r.cursor) / float64(r.sp.Length())
	if p > 1.0 {
		return 1.0
	}
	return p
}

// Close releases the reader's client. Idempotent.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	return r.client.Close()
}
