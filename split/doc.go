/*
Package split defines the immutable descriptor of one partition of a domain:
a half-open row range and the continuation token marking its first row.

Splits serialize to a compact binary layout for distribution to remote
workers: 8-byte big-endian start and end rows, then the token as a uint16
length-prefixed UTF-8 string where the literal text "NULL" stands for "no
token". The layout round-trips bit-exactly.
*/
package split
