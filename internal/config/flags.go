package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-api-url BeeStore API base URL
//	-request-timeout outbound request timeout (e.g., "15s", "1m")
//	-credentials-file path of the stored session token file
//	-refresh-interval background wishlist refresh interval (e.g., "5m")
//	-surface-delete-failures show server-side delete refusals to the user
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var apiBaseURL string
	var requestTimeout time.Duration
	var credentialsFile string
	var refreshInterval time.Duration
	var surfaceDeleteFailures bool
	var jsonConfigPath string

	flag.StringVar(&apiBaseURL, "api-url", "", "BeeStore API base URL")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	flag.StringVar(&credentialsFile, "credentials-file", "", "Stored session token file path")
	flag.DurationVar(&refreshInterval, "refresh-interval", 0, "Wishlist refresh interval (e.g., 5m)")
	flag.BoolVar(&surfaceDeleteFailures, "surface-delete-failures", false, "Show delete refusals to the user")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			SurfaceDeleteFailures: surfaceDeleteFailures,
		},
		Adapter: Adapter{
			APIBaseURL:     apiBaseURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			Credentials: Credentials{
				FilePath: credentialsFile,
			},
		},
		Workers: Workers{
			RefreshInterval: refreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
