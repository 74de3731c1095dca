package types

import "time"

// ConfigFileName is the optional workspace configuration file read from the
// workspace root on initialize.
const ConfigFileName = ".schema-workbench.yaml"

// ServerConfig represents the server configuration. Values come from the
// workspace config file and may be overridden at runtime via
// workspace/didChangeConfiguration.
type ServerConfig struct {
	// SchemaGlobs are the doublestar patterns, relative to the workspace
	// root, that select schema files for the catalog.
	SchemaGlobs []string `json:"schemaGlobs" yaml:"schemaGlobs"`

	// DebounceDelayMs is the quiet interval before a validation pass runs.
	DebounceDelayMs int `json:"debounceDelayMs" yaml:"debounceDelayMs"`

	// HoverPreviewBudget is the character budget for the pretty-printed
	// schema preview in reference hovers.
	HoverPreviewBudget int `json:"hoverPreviewBudget" yaml:"hoverPreviewBudget"`
}

// DefaultConfig returns the default server configuration
func DefaultConfig() ServerConfig {
	return ServerConfig{
		SchemaGlobs:        []string{"**/*.schema.json"},
		DebounceDelayMs:    500,
		HoverPreviewBudget: 500,
	}
}

// Normalize fills missing fields with defaults
func (c ServerConfig) Normalize() ServerConfig {
	defaults := DefaultConfig()
	if len(c.SchemaGlobs) == 0 {
		c.SchemaGlobs = defaults.SchemaGlobs
	}
	if c.DebounceDelayMs <= 0 {
		c.DebounceDelayMs = defaults.DebounceDelayMs
	}
	if c.HoverPreviewBudget <= 0 {
		c.HoverPreviewBudget = defaults.HoverPreviewBudget
	}
	return c
}

// DebounceDelay returns the debounce interval as a duration
func (c ServerConfig) DebounceDelay() time.Duration {
	return time.Duration(c.DebounceDelayMs) * time.Millisecond
}
