/*
Package planner computes the ordered sequence of splits covering a domain.

The store offers no random-access offsets, only opaque continuation tokens,
so the planner discovers each split boundary by walking COUNT(*) queries:
counting LIMIT split-size rows at a time yields, alongside each count, the
token marking the row where the next split must begin.

The total row count comes from domain metadata, or from a full count walk
when a where clause filters the domain (metadata cannot see the filter).

Planning is all-or-nothing: a failed store call aborts the operation with no
splits emitted, because a silently truncated split list would scan a partial
dataset.
*/
package planner
