/*
Package sdbsplit partitions an Amazon SimpleDB domain into bounded-size row
ranges ("splits") that workers can process independently and in parallel, and
reads each split's records back sequentially.

SimpleDB's only navigation primitive is an opaque continuation token, so the
planner walks COUNT(*) queries to discover the token marking each split
boundary, and each reader resumes a SELECT * scan from its split's token.

The library follows a plan → distribute → read workflow:
  - Plan: a coordinating process computes the splits for the whole domain
  - Distribute: each split serializes to a compact binary form and ships to
    one worker
  - Read: the worker materializes its split and drains it record by record

Key Features:
  - Token-boundary split planning with a single incremental walk
  - Bit-exact split serialization for distribution to remote workers
  - One store client per split, never shared across workers
  - Semantic error types distinguishing store rejections from transport
    failures
  - Bounded worker-pool runner for draining many splits in one process
  - Scripted mock client for testing

Basic Usage:

	cfg, _ := config.FromMap(map[string]string{
	    config.KeyDomain:    "events",
	    config.KeySplitSize: "50000",
	})

	splits, err := sdbsplit.PlanSplits(ctx, cfg, logger)

	// On each worker:
	r, err := sdbsplit.OpenReader(ctx, cfg, sp, logger)
	defer r.Close()
	var rec store.Record
	for r.Next(&rec) {
	    // process rec.Key, rec.Attributes
	}

For more information, see the documentation at https://github.com/suparena/sdbsplit
*/
package sdbsplit
