/*
Package reader turns one split into a sequential stream of records.

A Reader materializes its whole split up front by paged selects resuming from
the split's continuation token, then hands records out one at a time through
Next. Peak memory is bounded by the configured split size. Construction fails
outright if any page cannot be fetched; a partially materialized reader is
never exposed.
*/
package reader
