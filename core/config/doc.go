// Package config loads the application configuration.
//
// It utilizes Viper for reading environment variables, with an optional .env file
// loaded first through godotenv. Defaults come from the `default` struct tags of
// each section's Config type.
//
// # Configuration Structure
//
// The Config struct is divided into subsections, each owned by its package:
//   - Server: HTTP server settings (port, API key, shutdown timeout)
//   - Log: Logging level and format
//   - Database: local cache database (sqlite or MySQL)
//   - Remote: REST service base URL, timeout and rate limit
//   - Executor: worker pool sizes
//   - Settings: where the settings document lives
//   - Refresh: background refresh switch and retry interval
//   - Storage: S3/MinIO credentials and bucket settings
//
// Nested keys map to upper-case environment variables joined by underscores,
// e.g. REMOTE_BASE_URL sets remote.base_url.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Remote.BaseURL)
package config
