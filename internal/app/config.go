package app

import "fmt"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// ManifestPath is the .hcl file or directory with expected declarations.
	// Required by Verify, unused by Inspect.
	ManifestPath string
	// Strict makes Verify reject discovered entries missing from the manifest.
	Strict bool
	// Output selects the Inspect rendering: "text", "json", or "yaml".
	Output string

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and applies defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Output == "" {
		cfg.Output = "text"
	}
	switch cfg.Output {
	case "text", "json", "yaml":
	default:
		return nil, fmt.Errorf("invalid output format %q: must be 'text', 'json', or 'yaml'", cfg.Output)
	}

	return &cfg, nil
}
