package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCookieHeader(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Cookie
	}{
		{
			name:  "two cookies",
			input: "a=1; b=2",
			want:  []Cookie{{Name: "a", Value: "1"}, {Name: "b", Value: "2"}},
		},
		{
			name:  "single cookie",
			input: "session=abc123",
			want:  []Cookie{{Name: "session", Value: "abc123"}},
		},
		{
			name:  "order preserved",
			input: "z=26; a=1; m=13",
			want:  []Cookie{{Name: "z", Value: "26"}, {Name: "a", Value: "1"}, {Name: "m", Value: "13"}},
		},
		{
			name:  "value containing equals",
			input: "token=a=b=c",
			want:  []Cookie{{Name: "token", Value: "a=b=c"}},
		},
		{
			name:  "flag without value",
			input: "secure; a=1",
			want:  []Cookie{{Name: "secure", Value: ""}, {Name: "a", Value: "1"}},
		},
		{
			name:  "empty segments skipped",
			input: "a=1; ; b=2;",
			want:  []Cookie{{Name: "a", Value: "1"}, {Name: "b", Value: "2"}},
		},
		{
			name:  "empty string",
			input: "",
			want:  nil,
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "  a=1 ;  b=2  ",
			want:  []Cookie{{Name: "a", Value: "1"}, {Name: "b", Value: "2"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCookieHeader(tt.input))
		})
	}
}

func TestFormatCookieHeader(t *testing.T) {
	cookies := []Cookie{{Name: "a", Value: "1"}, {Name: "b", Value: "2"}}
	assert.Equal(t, "a=1; b=2", FormatCookieHeader(cookies))
	assert.Equal(t, "", FormatCookieHeader(nil))
}

func TestCookieRoundTrip(t *testing.T) {
	in := "a=1; b=2; c=3"
	assert.Equal(t, in, FormatCookieHeader(ParseCookieHeader(in)))
}

func TestCookieValuesLastWins(t *testing.T) {
	values := cookieValues(ParseCookieHeader("a=1; a=2"))
	assert.Equal(t, map[string]string{"a": "2"}, values)
}
