package har

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/ohler55/ojg/jp"

	"github.com/getmockd/harreplay/pkg/fixture"
)

// ErrBadSelector is returned for an invalid JSONPath entry selector.
var ErrBadSelector = errors.New("invalid entry selector")

// ConvertOptions controls HAR to fixture conversion.
type ConvertOptions struct {
	// IncludeStatic keeps entries for static assets (scripts, styles,
	// images, fonts). They are filtered out by default since replay fixture
	// sets usually care about API traffic.
	IncludeStatic bool

	// Selector is an optional JSONPath expression evaluated against each
	// entry's JSON form; entries the expression matches nothing in are
	// skipped. Example: $.response.status selects every entry, while
	// $.request.postData selects only entries with a recorded body.
	Selector string
}

// staticExtensions are file extensions treated as static assets.
var staticExtensions = map[string]bool{
	".js":    true,
	".css":   true,
	".png":   true,
	".jpg":   true,
	".jpeg":  true,
	".gif":   true,
	".svg":   true,
	".ico":   true,
	".woff":  true,
	".woff2": true,
	".ttf":   true,
	".eot":   true,
	".map":   true,
}

// staticMimePrefixes are response MIME types treated as static assets.
var staticMimePrefixes = []string{
	"text/javascript",
	"application/javascript",
	"text/css",
	"image/",
	"font/",
	"application/font",
}

// Entries converts a capture into replay fixtures, preserving capture order.
// Capture order is match-priority order, so no reordering ever happens here.
func Entries(h *HAR, opts ConvertOptions) ([]fixture.Entry, error) {
	var selector jp.Expr
	if opts.Selector != "" {
		expr, err := jp.ParseString(opts.Selector)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadSelector, err)
		}
		selector = expr
	}

	entries := make([]fixture.Entry, 0, len(h.Log.Entries))
	for i := range h.Log.Entries {
		e := &h.Log.Entries[i]
		if !opts.IncludeStatic && isStaticAsset(e.Request.URL, e.Response.Content.MimeType) {
			continue
		}
		if selector != nil {
			selected, err := selectEntry(selector, e)
			if err != nil {
				return nil, err
			}
			if !selected {
				continue
			}
		}
		fe, err := convertEntry(e)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		entries = append(entries, fe)
	}
	return entries, nil
}

// convertEntry maps one HAR entry onto the fixture shape.
func convertEntry(e *Entry) (fixture.Entry, error) {
	body, err := decodeContent(&e.Response.Content)
	if err != nil {
		return fixture.Entry{}, err
	}

	var reqBody []byte
	if e.Request.PostData != nil && e.Request.PostData.Text != "" {
		reqBody = []byte(e.Request.PostData.Text)
	}

	return fixture.Entry{
		Request: fixture.RequestSnapshot{
			Method:  e.Request.Method,
			URL:     e.Request.URL,
			Headers: convertHeaders(e.Request.Headers),
			Body:    reqBody,
		},
		Response: fixture.ResponseSnapshot{
			Status:  e.Response.Status,
			Headers: convertHeaders(e.Response.Headers),
			Body:    body,
		},
		RedirectTarget: e.Response.RedirectURL,
	}, nil
}

func convertHeaders(headers []Header) []fixture.Header {
	if len(headers) == 0 {
		return nil
	}
	out := make([]fixture.Header, len(headers))
	for i, h := range headers {
		out[i] = fixture.Header{Name: h.Name, Value: h.Value}
	}
	return out
}

// decodeContent returns the response body bytes, decoding base64 content.
func decodeContent(c *Content) ([]byte, error) {
	if c.Text == "" {
		return nil, nil
	}
	if c.Encoding == "base64" {
		data, err := base64.StdEncoding.DecodeString(c.Text)
		if err != nil {
			return nil, fmt.Errorf("%w: bad base64 content: %v", ErrMalformed, err)
		}
		return data, nil
	}
	return []byte(c.Text), nil
}

// selectEntry evaluates the JSONPath selector against the entry's JSON form.
func selectEntry(selector jp.Expr, e *Entry) (bool, error) {
	raw, err := json.Marshal(e)
	if err != nil {
		return false, err
	}
	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return false, err
	}
	return len(selector.Get(data)) > 0, nil
}

// isStaticAsset reports whether the entry looks like a static asset, by URL
// extension or response MIME type.
func isStaticAsset(rawURL, mimeType string) bool {
	if u, err := url.Parse(rawURL); err == nil {
		if staticExtensions[strings.ToLower(path.Ext(u.Path))] {
			return true
		}
	}
	mimeType = strings.ToLower(mimeType)
	for _, prefix := range staticMimePrefixes {
		if strings.HasPrefix(mimeType, prefix) {
			return true
		}
	}
	return false
}
