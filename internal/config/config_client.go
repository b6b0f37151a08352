package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Version is the semantic version string of the running client.
	Version string
	// SurfaceDeleteFailures controls whether server-side delete refusals
	// are shown to the user instead of being logged only.
	SurfaceDeleteFailures bool
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// APIBaseURL is the base URL of the BeeStore API.
	APIBaseURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientCredentials contains credential store settings for the client.
type ClientCredentials struct {
	// FilePath is the path of the file holding the session token.
	FilePath string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// Credentials holds the credential token store settings.
	Credentials ClientCredentials
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the background wishlist refresher
	// should re-sync the collection.
	RefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the API base URL and request timeout.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, fills in defaults for anything left unset,
// and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Version:               cfg.App.Version,
			SurfaceDeleteFailures: cfg.App.SurfaceDeleteFailures,
		},
		Adapter: ClientAdapter{
			APIBaseURL:     cfg.Adapter.APIBaseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			Credentials: ClientCredentials{
				FilePath: cfg.Storage.Credentials.FilePath,
			},
		},
		Workers: ClientWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
	}

	clientCfg.applyDefaults()
	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.APIBaseURL == "" {
		cfg.Adapter.APIBaseURL = "http://localhost:8080"
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = 15 * time.Second
	}
	if cfg.Workers.RefreshInterval == 0 {
		cfg.Workers.RefreshInterval = 5 * time.Minute
	}
	if cfg.Storage.Credentials.FilePath == "" {
		cfg.Storage.Credentials.FilePath = defaultCredentialsPath()
	}
}

func defaultCredentialsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "beestore", "session")
}
