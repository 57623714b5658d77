package refresh

// Config holds configuration for the background refresh.
type Config struct {
	// Enabled starts the scheduler with the server.
	Enabled bool `mapstructure:"enabled" default:"true"`
	// RetryInitialSeconds is the first backoff interval after a failed sync.
	RetryInitialSeconds int `mapstructure:"retry_initial_seconds" default:"5"`
}
