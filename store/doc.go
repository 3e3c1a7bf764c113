/*
Package store defines the client interface for the token-paginated remote
store, along with the record and query-result models shared by the planner
and the reader.

The main interface is Client, which exposes the three query primitives split
planning and reading are built on:

	type Client interface {
	    Count(ctx context.Context, limit uint64, token *string) (*QueryResult, error)
	    Select(ctx context.Context, limit uint64, token *string) (*QueryResult, error)
	    TotalItemCount(ctx context.Context) (uint64, error)
	    Close() error
	}

Continuation tokens are opaque strings: callers pass back exactly what the
previous page returned and never parse or construct one locally. A nil token
means the start of the dataset.

Implementations:
  - sdb: Amazon SimpleDB implementation on the AWS SDK
  - mock: scripted in-memory implementation for testing
*/
package store
