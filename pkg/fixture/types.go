// Package fixture defines the domain types for recorded HTTP traffic:
// request and response snapshots, capture entries, and the ordered entry
// store that replay scans.
package fixture

// Header is a single name/value pair. Snapshots carry headers as an ordered
// slice because header order is part of the recorded fingerprint, not an
// accident of the container.
type Header struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// RequestSnapshot is the captured form of an outgoing HTTP request.
type RequestSnapshot struct {
	// Method is the HTTP method, as sent on the wire.
	Method string `json:"method"`

	// URL is the absolute request URL. Matching compares it verbatim, with
	// no normalization.
	URL string `json:"url"`

	// Headers are the request headers in wire order.
	Headers []Header `json:"headers,omitempty"`

	// Body is the request body. Empty for bodyless requests.
	Body []byte `json:"body,omitempty"`
}

// ResponseSnapshot is the captured form of an HTTP response.
type ResponseSnapshot struct {
	// Status is the HTTP status code.
	Status int `json:"status"`

	// Headers are the response headers in wire order.
	Headers []Header `json:"headers,omitempty"`

	// Body is the response body as recorded.
	Body []byte `json:"body,omitempty"`
}

// Entry is one recorded transaction: the request that was sent, the response
// that came back, and the redirect target the response announced, if any.
// Entries are immutable once loaded; the store removes them as whole units.
type Entry struct {
	Request  RequestSnapshot
	Response ResponseSnapshot

	// RedirectTarget is the recorded redirect location. Empty means the
	// response was not a redirect. A path-absolute target ("/next") is
	// resolved against the live request's origin at replay time.
	RedirectTarget string
}

// HeaderNames returns the header names in wire order, duplicates included.
func (r *RequestSnapshot) HeaderNames() []string {
	names := make([]string, len(r.Headers))
	for i, h := range r.Headers {
		names[i] = h.Name
	}
	return names
}

// HeaderValues returns a name-to-value view of the headers. When a name
// repeats, the last occurrence wins.
func (r *RequestSnapshot) HeaderValues() map[string]string {
	values := make(map[string]string, len(r.Headers))
	for _, h := range r.Headers {
		values[h.Name] = h.Value
	}
	return values
}
