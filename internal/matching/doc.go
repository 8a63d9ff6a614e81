// Package matching decides whether a live request snapshot is one of the
// recorded requests in a capture.
//
// Two modes exist. Loose matching requires only method and URL equality.
// Strict matching additionally requires header name order identity, header
// value equality, cookie set equality, and body equality against a non-empty
// recorded body. Every comparison produces a Diagnostic describing what
// differed, so a failed candidate can be explained rather than silently
// skipped.
package matching
