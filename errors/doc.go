/*
Package errors provides semantic error types for the sdbsplit library.

The package defines the failure kinds a split-planning or split-reading
operation can hit, with specific types that can be checked using the standard
errors.Is() function or the provided helper functions.

Common Errors:

	var (
	    ErrRemoteRejected = errors.New("request rejected by store")
	    ErrTransport      = errors.New("transport failure")
	    ErrNotFound       = errors.New("path not found")
	    ErrNotDirectory   = errors.New("path is not a directory")
	    ErrInvalidConfig  = errors.New("invalid configuration")
	)

Usage:

	// Check error type
	splits, err := planner.Plan(ctx)
	if err != nil {
	    if errors.IsRemoteRejected(err) {
	        // The store rejected a query; the typed error carries the
	        // query text, AWS error code, HTTP status and request id.
	    }
	    return err
	}

	// Create typed errors
	err := errors.NewTransportError("select failed", cause)
	err := errors.NewConfigError("simpledb.domain", "required option missing")

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors
