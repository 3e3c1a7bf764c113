/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides a scripted in-memory implementation of store.Client for testing
package mock

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/suparena/sdbsplit/store"
)

// Client is a mock implementation of store.Client backed by a fixed item
// slice. Continuation tokens encode positions in the slice, so count and
// select queries paginate exactly like the real store: each page advances the
// token by the number of rows the query covered.
type Client struct {
	mu        sync.Mutex
	items     []store.Record
	pageSize  uint64
	countErr  error
	selectErr error
	// fail the nth call (1-based) instead of every call; 0 means every call
	failOnCall  int
	countCalls  int
	selectCalls int
	closeCalls  int
}

// New creates a mock Client over the given items.
func New(items []store.Record) *Client {
	return &Client{items: items}
}

// Items generates n records named item-0000..item-n with a couple of
// attributes each, for tests that only care about counts.
func Items(n int) []store.Record {
	items := make([]store.Record, n)
	for i := range items {
		items[i] = store.Record{
			Key: fmt.Sprintf("item-%04d", i),
			Attributes: map[string]string{
				"index":  strconv.Itoa(i),
				"status": "active",
			},
		}
	}
	return items
}

// WithPageSize caps how many rows any single query covers, emulating a store
// that paginates below the requested limit.
func (m *Client) WithPageSize(n uint64) *Client {
	m.pageSize = n
	return m
}

// WithCountErr makes Count calls return an error.
func (m *Client) WithCountErr(err error) *Client {
	m.countErr = err
	return m
}

// WithSelectErr makes Select calls return an error.
func (m *Client) WithSelectErr(err error) *Client {
	m.selectErr = err
	return m
}

// WithFailOnCall restricts the configured errors to the nth call (1-based)
// of the respective method, counting count and select calls separately.
func (m *Client) WithFailOnCall(n int) *Client {
	m.failOnCall = n
	return m
}

// CountCalls reports how many Count calls the client served.
func (m *Client) CountCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.countCalls
}

// SelectCalls reports how many Select calls the client served.
func (m *Client) SelectCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.selectCalls
}

// CloseCalls reports how many times Close was called.
func (m *Client) CloseCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closeCalls
}

func (m *Client) Count(ctx context.Context, limit uint64, token *string) (*store.QueryResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.countCalls++
	if m.countErr != nil && (m.failOnCall == 0 || m.failOnCall == m.countCalls) {
		return nil, m.countErr
	}

	start, err := m.resolve(token)
	if err != nil {
		return nil, err
	}
	covered := m.clip(start, limit)

	res := &store.QueryResult{
		Items: []store.Record{{
			Key:        "Domain",
			Attributes: map[string]string{store.CountAttribute: strconv.FormatUint(covered, 10)},
		}},
		NextToken: m.tokenAfter(start + covered),
	}
	return res, nil
}

func (m *Client) Select(ctx context.Context, limit uint64, token *string) (*store.QueryResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.selectCalls++
	if m.selectErr != nil && (m.failOnCall == 0 || m.failOnCall == m.selectCalls) {
		return nil, m.selectErr
	}

	start, err := m.resolve(token)
	if err != nil {
		return nil, err
	}
	covered := m.clip(start, limit)

	res := &store.QueryResult{
		Items:     append([]store.Record(nil), m.items[start:start+covered]...),
		NextToken: m.tokenAfter(start + covered),
	}
	return res, nil
}

func (m *Client) TotalItemCount(ctx context.Context) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return uint64(len(m.items)), nil
}

func (m *Client) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closeCalls++
	return nil
}

// resolve turns an opaque token back into a slice position.
func (m *Client) resolve(token *string) (uint64, error) {
	if token == nil {
		return 0, nil
	}
	pos, err := strconv.ParseUint(*token, 10, 64)
	if err != nil || pos > uint64(len(m.items)) {
		return 0, fmt.Errorf("bogus continuation token %q", *token)
	}
	return pos, nil
}

// clip bounds how many rows a query starting at pos covers: the requested
// limit, the emulated page size, and the remaining items, whichever is least.
func (m *Client) clip(pos, limit uint64) uint64 {
	covered := uint64(len(m.items)) - pos
	if limit > 0 && limit < covered {
		covered = limit
	}
	if m.pageSize > 0 && m.pageSize < covered {
		covered = m.pageSize
	}
	return covered
}

// tokenAfter returns the continuation token for the given position, or nil
// when the position is at or past the end of the dataset.
func (m *Client) tokenAfter(pos uint64) *string {
	if pos >= uint64(len(m.items)) {
		return nil
	}
	tok := strconv.FormatUint(pos, 10)
	return &tok
}
