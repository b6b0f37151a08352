// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the beestore
// client. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string and
	// UI behaviour toggles.
	App App `envPrefix:"APP_"`

	// Adapter holds the BeeStore API base URL and outbound request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds configuration for locally persisted state. The client
	// persists nothing but a single credential token.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// SurfaceDeleteFailures controls whether a server-side refusal of a
	// wishlist delete is shown to the user as a notice. When false such
	// refusals are only logged and the wishlist is simply left unchanged.
	// Env: APP_SURFACE_DELETE_FAILURES
	SurfaceDeleteFailures bool `env:"SURFACE_DELETE_FAILURES"`
}

// Adapter holds network settings used by the client transport layer.
type Adapter struct {
	// APIBaseURL is the base URL of the BeeStore API
	// (e.g. "http://localhost:8080").
	// Env: ADAPTER_API_URL
	APIBaseURL string `env:"API_URL"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request (e.g. "15s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for locally persisted client state.
type Storage struct {
	// Credentials holds the credential token store settings.
	Credentials Credentials `envPrefix:"CREDENTIALS_"`
}

// Credentials holds settings for the file-backed credential token store.
type Credentials struct {
	// FilePath is the path of the file holding the session token.
	// Env: STORAGE_CREDENTIALS_FILE
	FilePath string `env:"FILE"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// RefreshInterval defines how often the background wishlist refresher
	// re-syncs the collection (e.g. "5m").
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (the first source to set a field wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
