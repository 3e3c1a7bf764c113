/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package store

import (
	"context"
	"strconv"
)

// MaxSelectLimit is the largest LIMIT SimpleDB accepts on a select query.
// Readers page through a split in chunks of at most this many rows.
const MaxSelectLimit = 2500

// CountAttribute is the synthetic attribute name carrying the aggregate value
// on the single item a COUNT(*) query returns.
const CountAttribute = "Count"

// Record is one item retrieved from the store: its name and its attributes
// collapsed into a map. A store item may carry repeated attribute names; the
// map keeps the last one seen, a documented lossy simplification.
type Record struct {
	Key        string
	Attributes map[string]string
}

// QueryResult is one page of a query. NextToken is nil once the store has no
// further pages for the query.
type QueryResult struct {
	Items     []Record
	NextToken *string
}

// CountValue extracts the aggregate value from a COUNT(*) result page.
// Returns false if the page carries no count item.
func (r *QueryResult) CountValue() (uint64, bool) {
	for _, item := range r.Items {
		if v, ok := item.Attributes[CountAttribute]; ok {
			n, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				return 0, false
			}
			return n, true
		}
	}
	return 0, false
}

// Client issues count and select queries against one domain of the remote
// store. A Client instance is exclusively owned by one planner or one reader;
// it is never shared across splits.
type Client interface {
	// Count executes a SELECT COUNT(*) query, resuming from token if present.
	// A limit of 0 means no LIMIT clause.
	Count(ctx context.Context, limit uint64, token *string) (*QueryResult, error)

	// Select executes a SELECT * query, resuming from token if present.
	// A limit of 0 means no LIMIT clause.
	Select(ctx context.Context, limit uint64, token *string) (*QueryResult, error)

	// TotalItemCount returns the exact item count for the whole domain from
	// store metadata, ignoring any configured where clause.
	TotalItemCount(ctx context.Context) (uint64, error)

	// Close releases the client's connection. Idempotent.
	Close() error
}
