/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package sdb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/simpledb"
	"go.uber.org/zap"

	"github.com/suparena/sdbsplit/config"
	"github.com/suparena/sdbsplit/errors"
	"github.com/suparena/sdbsplit/store"
)

// Client implements store.Client against Amazon SimpleDB.
type Client struct {
	api    *simpledb.SimpleDB
	domain string
	where  string
	logger *zap.Logger
	closed bool
}

// New initializes a SimpleDB client using static AWS credentials and the
// endpoint from the configuration. Each planner or reader constructs its own
// Client; instances are never shared across splits.
func New(cfg *config.Config, logger *zap.Logger) (*Client, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	sess, err := session.NewSession(&aws.Config{
		Region:      aws.String("us-east-1"),
		Endpoint:    aws.String(cfg.Endpoint),
		Credentials: credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, ""),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	logger.Debug("SimpleDB client initialized",
		zap.String("domain", cfg.Domain),
		zap.String("endpoint", cfg.Endpoint))

	return &Client{
		api:    simpledb.New(sess),
		domain: cfg.Domain,
		where:  cfg.WhereClause,
		logger: logger,
	}, nil
}

// Count executes a SELECT COUNT(*) query, resuming from token if present.
func (c *Client) Count(ctx context.Context, limit uint64, token *string) (*store.QueryResult, error) {
	q := store.Query{Domain: c.domain, Where: c.where, Count: true, Limit: limit}
	return c.doQuery(ctx, q, token)
}

// Select executes a SELECT * query, resuming from token if present.
func (c *Client) Select(ctx context.Context, limit uint64, token *string) (*store.QueryResult, error) {
	q := store.Query{Domain: c.domain, Where: c.where, Limit: limit}
	return c.doQuery(ctx, q, token)
}

// TotalItemCount returns the exact item count for the whole domain from
// domain metadata.
func (c *Client) TotalItemCount(ctx context.Context) (uint64, error) {
	out, err := c.api.DomainMetadataWithContext(ctx, &simpledb.DomainMetadataInput{
		DomainName: aws.String(c.domain),
	})
	if err != nil {
		return 0, c.classify("DomainMetadata "+c.domain, err)
	}
	if out.ItemCount == nil {
		return 0, errors.NewTransportError("domain metadata missing item count", nil)
	}
	return uint64(*out.ItemCount), nil
}

// Close releases the client. Idempotent; the underlying session holds no
// sockets of its own, so this only marks the client unusable.
func (c *Client) Close() error {
	c.closed = true
	return nil
}

// doQuery runs one paged select against SimpleDB. A failure is classified
// and returned explicitly; callers must treat it as terminal for the call,
// never as an empty page.
func (c *Client) doQuery(ctx context.Context, q store.Query, token *string) (*store.QueryResult, error) {
	queryText := q.String()
	c.logger.Debug("running query", zap.String("query", queryText))

	in := &simpledb.SelectInput{
		SelectExpression: aws.String(queryText),
	}
	if token != nil {
		in.NextToken = token
	}

	out, err := c.api.SelectWithContext(ctx, in)
	if err != nil {
		return nil, c.classify(queryText, err)
	}

	result := &store.QueryResult{
		Items:     make([]store.Record, 0, len(out.Items)),
		NextToken: out.NextToken,
	}
	for _, item := range out.Items {
		result.Items = append(result.Items, recordFromItem(item))
	}
	return result, nil
}

// classify maps an AWS SDK error to this library's error kinds. A request
// failure means the store received and rejected the request; anything else is
// treated as a transport-level failure.
func (c *Client) classify(query string, err error) error {
	if reqErr, ok := err.(awserr.RequestFailure); ok {
		c.logger.Error("request made it to SimpleDB but was rejected",
			zap.String("query", query),
			zap.String("error_code", reqErr.Code()),
			zap.Int("status_code", reqErr.StatusCode()),
			zap.String("request_id", reqErr.RequestID()),
			zap.String("message", reqErr.Message()))
		return errors.NewRemoteRejectedError(query, reqErr.Code(), reqErr.StatusCode(), reqErr.RequestID(), reqErr.Message())
	}

	if aerr, ok := err.(awserr.Error); ok {
		c.logger.Error("client failed to communicate with SimpleDB",
			zap.String("query", query),
			zap.String("error_code", aerr.Code()),
			zap.Error(aerr))
		return errors.NewTransportError(aerr.Message(), err)
	}

	c.logger.Error("client failed to communicate with SimpleDB",
		zap.String("query", query),
		zap.Error(err))
	return errors.NewTransportError(err.Error(), err)
}

// recordFromItem collapses a SimpleDB item into a Record. Repeated attribute
// names keep the last value seen.
func recordFromItem(item *simpledb.Item) store.Record {
	rec := store.Record{
		Key:        aws.StringValue(item.Name),
		Attributes: make(map[string]string, len(item.Attributes)),
	}
	for _, attr := range item.Attributes {
		rec.Attributes[aws.StringValue(attr.Name)] = aws.StringValue(attr.Value)
	}
	return rec
}
