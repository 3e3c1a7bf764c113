/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package runner

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/sdbsplit/config"
	"github.com/suparena/sdbsplit/planner"
	"github.com/suparena/sdbsplit/split"
	"github.com/suparena/sdbsplit/store"
	"github.com/suparena/sdbsplit/store/mock"
)

func mockFactory(items []store.Record) ClientFactory {
	return func(ctx context.Context) (store.Client, error) {
		return mock.New(items), nil
	}
}

func TestRunDrainsAllSplits(t *testing.T) {
	ctx := context.Background()
	items := mock.Items(100)

	cfg := &config.Config{Domain: "users", SplitSize: 25}
	p := planner.New(mock.New(items), cfg, nil)
	splits, err := p.Plan(ctx)
	require.NoError(t, err)
	require.Len(t, splits, 4)

	var (
		mu   sync.Mutex
		seen = make(map[string]int)
	)
	r := New(3, mockFactory(items), nil)
	err = r.Run(ctx, splits, func(sp split.Split, rec *store.Record) error {
		mu.Lock()
		defer mu.Unlock()
		seen[rec.Key]++
		return nil
	})
	require.NoError(t, err)

	// Every record exactly once across all splits
	assert.Len(t, seen, 100)
	for key, n := range seen {
		assert.Equal(t, 1, n, "record %s seen %d times", key, n)
	}
}

func TestRunPropagatesHandlerError(t *testing.T) {
	ctx := context.Background()
	items := mock.Items(50)
	splits := []split.Split{
		split.New(0, 25, nil),
		split.New(25, 50, strptr("25")),
	}

	boom := errors.New("boom")
	r := New(2, mockFactory(items), nil)
	err := r.Run(ctx, splits, func(sp split.Split, rec *store.Record) error {
		if rec.Key == "item-0030" {
			return boom
		}
		return nil
	})
	require.ErrorIs(t, err, boom)
}

func TestRunPropagatesClientError(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("no client")
	r := New(2, func(ctx context.Context) (store.Client, error) {
		return nil, boom
	}, nil)

	err := r.Run(ctx, []split.Split{split.New(0, 10, nil)}, func(split.Split, *store.Record) error {
		return nil
	})
	require.ErrorIs(t, err, boom)
}

func TestRunPropagatesMaterializationError(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("select failed")
	r := New(1, func(ctx context.Context) (store.Client, error) {
		return mock.New(mock.Items(10)).WithSelectErr(boom), nil
	}, nil)

	err := r.Run(ctx, []split.Split{split.New(0, 10, nil)}, func(split.Split, *store.Record) error {
		return nil
	})
	require.ErrorIs(t, err, boom)
}

func TestRunNoSplits(t *testing.T) {
	r := New(2, mockFactory(nil), nil)
	err := r.Run(context.Background(), nil, func(split.Split, *store.Record) error {
		return nil
	})
	require.NoError(t, err)
}

func strptr(s string) *string { return &s }
