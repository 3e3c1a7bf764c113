/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package sdb

import (
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/simpledb"
)

func TestRecordFromItem(t *testing.T) {
	t.Run("Basic", func(t *testing.T) {
		item := &simpledb.Item{
			Name: aws.String("item-1"),
			Attributes: []*simpledb.Attribute{
				{Name: aws.String("name"), Value: aws.String("alice")},
				{Name: aws.String("status"), Value: aws.String("active")},
			},
		}
		rec := recordFromItem(item)
		if rec.Key != "item-1" {
			t.Errorf("Expected key item-1, got %q", rec.Key)
		}
		if rec.Attributes["name"] != "alice" || rec.Attributes["status"] != "active" {
			t.Errorf("Unexpected attributes %v", rec.Attributes)
		}
	})

	t.Run("DuplicateAttributesLastWins", func(t *testing.T) {
		item := &simpledb.Item{
			Name: aws.String("item-2"),
			Attributes: []*simpledb.Attribute{
				{Name: aws.String("tag"), Value: aws.String("first")},
				{Name: aws.String("tag"), Value: aws.String("second")},
			},
		}
		rec := recordFromItem(item)
		if len(rec.Attributes) != 1 {
			t.Fatalf("Expected duplicates collapsed to one entry, got %v", rec.Attributes)
		}
		if rec.Attributes["tag"] != "second" {
			t.Errorf("Expected last value to win, got %q", rec.Attributes["tag"])
		}
	})
}
