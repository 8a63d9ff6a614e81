package replay

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"

	"github.com/getmockd/harreplay/pkg/fixture"
)

type headerOrderKey struct{}

// WithHeaderOrder annotates a request context with the exact order header
// names were (or should be considered) sent in. Go's http.Header is a map
// and forgets wire order, so strict order matching through the Transport
// needs the order stated explicitly. Requests without the annotation fall
// back to sorted header names, which is deterministic but will not reproduce
// a client fingerprint.
func WithHeaderOrder(ctx context.Context, names ...string) context.Context {
	return context.WithValue(ctx, headerOrderKey{}, names)
}

// HeaderOrderFrom returns the header order annotation, if any.
func HeaderOrderFrom(ctx context.Context) ([]string, bool) {
	names, ok := ctx.Value(headerOrderKey{}).([]string)
	return names, ok
}

// Transport adapts an Engine to http.RoundTripper, so recorded traffic
// serves an ordinary http.Client without any network I/O.
type Transport struct {
	engine *Engine
}

// NewTransport wraps an engine for use as an http.Client transport.
func NewTransport(engine *Engine) *Transport {
	return &Transport{engine: engine}
}

// RoundTrip answers the request from the capture. Requests that nothing in
// the capture matches fail with a NoMatchError wrapping ErrNoMatch.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	live, err := SnapshotRequest(req)
	if err != nil {
		return nil, fmt.Errorf("snapshot request: %w", err)
	}
	resp, err := t.engine.Send(live)
	if err != nil {
		return nil, err
	}
	return httpResponse(resp, req), nil
}

// NewClient returns an http.Client that serves every request from the given
// engine's capture.
func NewClient(engine *Engine) *http.Client {
	return &http.Client{Transport: NewTransport(engine)}
}

// SnapshotRequest converts an *http.Request into the snapshot form the
// engine matches on. The request body, if any, is fully read and restored.
// Header order comes from a WithHeaderOrder annotation when present,
// otherwise headers appear in sorted name order.
func SnapshotRequest(req *http.Request) (*fixture.RequestSnapshot, error) {
	var body []byte
	if req.Body != nil && req.Body != http.NoBody {
		var err error
		body, err = io.ReadAll(req.Body)
		req.Body.Close()
		if err != nil {
			return nil, err
		}
		req.Body = io.NopCloser(bytes.NewReader(body))
	}

	var headers []fixture.Header
	for _, name := range requestHeaderOrder(req) {
		for _, value := range req.Header[http.CanonicalHeaderKey(name)] {
			headers = append(headers, fixture.Header{Name: name, Value: value})
		}
	}

	return &fixture.RequestSnapshot{
		Method:  req.Method,
		URL:     req.URL.String(),
		Headers: headers,
		Body:    body,
	}, nil
}

// requestHeaderOrder decides the header name sequence for a snapshot.
func requestHeaderOrder(req *http.Request) []string {
	if names, ok := HeaderOrderFrom(req.Context()); ok {
		return names
	}
	names := make([]string, 0, len(req.Header))
	for name := range req.Header {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// httpResponse builds an *http.Response from a recorded snapshot, in the
// shape the http package produces for real traffic.
func httpResponse(resp *fixture.ResponseSnapshot, req *http.Request) *http.Response {
	header := make(http.Header, len(resp.Headers))
	for _, h := range resp.Headers {
		header.Add(h.Name, h.Value)
	}
	return &http.Response{
		Status:        fmt.Sprintf("%d %s", resp.Status, http.StatusText(resp.Status)),
		StatusCode:    resp.Status,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(resp.Body)),
		ContentLength: int64(len(resp.Body)),
		Request:       req,
	}
}
