// Package replay serves recorded HTTP traffic in place of a live network.
//
// An Engine owns a fixture.Store of captured entries and answers each
// outgoing request with the first recorded entry that matches it, under a
// configurable strictness. Matched entries are consumed one-shot by default,
// so a second identical request falls through to the next recorded
// occurrence. Transport adapts an Engine to http.RoundTripper so it drops
// straight into an http.Client for deterministic tests and bots.
package replay
