package har

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Loading errors.
var (
	ErrFileNotFound = errors.New("capture file not found")
	ErrMalformed    = errors.New("malformed HAR capture")
)

// Parse decodes a HAR capture from JSON bytes. Captures that do not carry a
// log.version are rejected: the field is mandatory in every HAR revision and
// its absence almost always means the file is not a HAR at all.
func Parse(data []byte) (*HAR, error) {
	var h HAR
	if err := json.Unmarshal(data, &h); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if h.Log.Version == "" {
		return nil, fmt.Errorf("%w: missing log.version", ErrMalformed)
	}
	return &h, nil
}

// Load reads and parses a HAR capture from a file.
func Load(path string) (*HAR, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to read capture: %w", err)
	}
	return Parse(data)
}

// CreatorName returns the recording tool's name, if the capture names one.
func (h *HAR) CreatorName() string {
	return h.Log.Creator.Name
}

// CreatorVersion returns the recording tool's version, if present.
func (h *HAR) CreatorVersion() string {
	return h.Log.Creator.Version
}

// String summarizes the capture for logs: creator, version, entry count.
func (h *HAR) String() string {
	if v := h.CreatorVersion(); v != "" {
		return fmt.Sprintf("%s %s, %d requests", h.CreatorName(), v, len(h.Log.Entries))
	}
	return fmt.Sprintf("%s, %d requests", h.CreatorName(), len(h.Log.Entries))
}
