// Package config loads harreplay configuration from YAML or JSON files.
package config

// Config is the root configuration.
type Config struct {
	// Capture is the path to the HAR file to replay from.
	Capture string `yaml:"capture" json:"capture"`

	Replay  ReplayConfig  `yaml:"replay" json:"replay"`
	Import  ImportConfig  `yaml:"import" json:"import"`
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// ReplayConfig selects the matching and consumption policy.
type ReplayConfig struct {
	// StrictMatching enables header-order/value/cookie/body comparison on
	// top of method and URL equality. Default true.
	StrictMatching bool `yaml:"strict_matching" json:"strict_matching"`

	// DeleteAfterMatch consumes each entry after it serves one request.
	// Default true.
	DeleteAfterMatch bool `yaml:"delete_after_match" json:"delete_after_match"`

	// MaxLogEntries bounds the in-memory request log.
	MaxLogEntries int `yaml:"max_log_entries" json:"max_log_entries"`
}

// ImportConfig controls HAR to fixture conversion.
type ImportConfig struct {
	// IncludeStatic keeps static asset entries (scripts, images, fonts).
	IncludeStatic bool `yaml:"include_static" json:"include_static"`

	// Selector is an optional JSONPath expression that selects which
	// capture entries become fixtures.
	Selector string `yaml:"selector" json:"selector"`
}

// LoggingConfig configures the slog output.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level" json:"level"`

	// Format is text or json.
	Format string `yaml:"format" json:"format"`
}

// Default returns the stock configuration: strict one-shot replay, info-level
// text logging.
func Default() Config {
	return Config{
		Replay: ReplayConfig{
			StrictMatching:   true,
			DeleteAfterMatch: true,
			MaxLogEntries:    1000,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
