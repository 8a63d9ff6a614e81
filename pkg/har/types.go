// Package har reads HAR (HTTP Archive) captures and converts their entries
// into replay fixtures.
package har

// HAR is the root of an HTTP Archive file.
type HAR struct {
	Log Log `json:"log"`
}

// Log contains the archive's creator metadata and recorded entries.
type Log struct {
	Version string  `json:"version"`
	Creator Creator `json:"creator"`
	Entries []Entry `json:"entries"`
}

// Creator identifies the tool that produced the capture.
type Creator struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Entry is a single recorded request/response pair.
type Entry struct {
	StartedDateTime string   `json:"startedDateTime,omitempty"`
	Time            float64  `json:"time,omitempty"`
	Request         Request  `json:"request"`
	Response        Response `json:"response"`
}

// Request is the recorded HTTP request.
type Request struct {
	Method      string    `json:"method"`
	URL         string    `json:"url"`
	HTTPVersion string    `json:"httpVersion,omitempty"`
	Headers     []Header  `json:"headers"`
	QueryString []Query   `json:"queryString,omitempty"`
	Cookies     []Cookie  `json:"cookies,omitempty"`
	PostData    *PostData `json:"postData,omitempty"`
	HeadersSize int       `json:"headersSize,omitempty"`
	BodySize    int       `json:"bodySize,omitempty"`
}

// Response is the recorded HTTP response.
type Response struct {
	Status      int      `json:"status"`
	StatusText  string   `json:"statusText,omitempty"`
	HTTPVersion string   `json:"httpVersion,omitempty"`
	Headers     []Header `json:"headers"`
	Cookies     []Cookie `json:"cookies,omitempty"`
	Content     Content  `json:"content"`

	// RedirectURL is the redirect target the response announced. Empty
	// string means no redirect for this entry.
	RedirectURL string `json:"redirectURL"`

	HeadersSize int `json:"headersSize,omitempty"`
	BodySize    int `json:"bodySize,omitempty"`
}

// Header is a recorded HTTP header. HAR keeps headers as an ordered array,
// which is exactly the order-sensitive contract replay matching needs.
type Header struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Query is a recorded query string parameter.
type Query struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Cookie is a recorded cookie.
type Cookie struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// PostData is the recorded request body.
type PostData struct {
	MimeType string  `json:"mimeType,omitempty"`
	Text     string  `json:"text,omitempty"`
	Params   []Param `json:"params,omitempty"`
}

// Param is one posted form parameter.
type Param struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
}

// Content is the recorded response body.
type Content struct {
	Size     int    `json:"size,omitempty"`
	MimeType string `json:"mimeType,omitempty"`
	Text     string `json:"text,omitempty"`

	// Encoding is "base64" when Text carries binary content.
	Encoding string `json:"encoding,omitempty"`
}
