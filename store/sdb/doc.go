/*
Package sdb provides the Amazon SimpleDB implementation of store.Client.

The client holds the domain name and the optional where fragment from the
configuration and generates select statements in the grammar

	SELECT [COUNT(*)|*] FROM <domain> [WHERE <where>] [LIMIT <n>]

resuming from the caller's continuation token when one is present.

Error handling distinguishes two failure kinds:

  - the store received the request and rejected it: surfaced as a
    RemoteRejectedError carrying the query text, AWS error code, HTTP status
    and request id, and logged with the same fields
  - the request never reliably reached the store: surfaced as a
    TransportError

Neither is ever collapsed into an empty-but-valid result.
*/
package sdb
