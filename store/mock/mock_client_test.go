/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package mock

import (
	"context"
	"errors"
	"testing"

	"github.com/suparena/sdbsplit/store"
)

func TestMockPagination(t *testing.T) {
	ctx := context.Background()
	client := New(Items(10)).WithPageSize(4)

	var (
		token *string
		got   []store.Record
	)
	for {
		res, err := client.Select(ctx, 0, token)
		if err != nil {
			t.Fatalf("Select failed: %v", err)
		}
		got = append(got, res.Items...)
		if res.NextToken == nil {
			break
		}
		token = res.NextToken
	}

	if len(got) != 10 {
		t.Fatalf("Expected 10 items across pages, got %d", len(got))
	}
	if got[0].Key != "item-0000" || got[9].Key != "item-0009" {
		t.Errorf("Items out of order: first %q last %q", got[0].Key, got[9].Key)
	}
	if client.SelectCalls() != 3 {
		t.Errorf("Expected 3 pages of 4/4/2, got %d calls", client.SelectCalls())
	}
}

func TestMockCount(t *testing.T) {
	ctx := context.Background()
	client := New(Items(7))

	res, err := client.Count(ctx, 5, nil)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	n, ok := res.CountValue()
	if !ok || n != 5 {
		t.Fatalf("Expected count 5, got (%d, %v)", n, ok)
	}
	if res.NextToken == nil {
		t.Fatal("Expected a continuation token mid-domain")
	}

	res, err = client.Count(ctx, 5, res.NextToken)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	n, _ = res.CountValue()
	if n != 2 {
		t.Errorf("Expected remaining count 2, got %d", n)
	}
	if res.NextToken != nil {
		t.Error("Expected no token at end of domain")
	}
}

func TestMockScriptedErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")

	t.Run("EveryCall", func(t *testing.T) {
		client := New(Items(3)).WithSelectErr(boom)
		if _, err := client.Select(ctx, 0, nil); !errors.Is(err, boom) {
			t.Fatalf("Expected scripted error, got %v", err)
		}
	})

	t.Run("NthCall", func(t *testing.T) {
		client := New(Items(10)).WithPageSize(4).WithCountErr(boom).WithFailOnCall(2)
		res, err := client.Count(ctx, 0, nil)
		if err != nil {
			t.Fatalf("First call should succeed, got %v", err)
		}
		if _, err := client.Count(ctx, 0, res.NextToken); !errors.Is(err, boom) {
			t.Fatalf("Expected second call to fail, got %v", err)
		}
	})
}
