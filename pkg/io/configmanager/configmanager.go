// Package configmanager defines the configuration loading contract shared by
// document-specific managers.
package configmanager

import (
	"github.com/provisio-dev/provisio/pkg/utils/timer"
)

// LoadOptions configures how configuration is loaded.
type LoadOptions struct {
	// Timer enables timing output in notifications when provided.
	Timer timer.Timer
	// Silent suppresses all loading notifications when true.
	Silent bool
	// SkipValidation skips document validation when true. Useful for
	// commands that inspect malformed documents (e.g. fmt on a draft).
	SkipValidation bool
}

// ConfigManager provides configuration management functionality.
type ConfigManager[T any] interface {
	// Load loads the configuration with the specified options.
	// Returns the loaded config, either freshly loaded or previously cached.
	Load(opts LoadOptions) (*T, error)
}
