package remote

// Config holds configuration for the remote REST service.
type Config struct {
	// BaseURL is the root of the REST service.
	BaseURL string `mapstructure:"base_url" default:"https://jsonplaceholder.typicode.com"`
	// TimeoutSeconds bounds every request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// UserAgent is sent with every request.
	UserAgent string `mapstructure:"user_agent" default:"jsonplaceholder-client/1.0"`
	// RateLimit is the sustained request rate per second. Zero disables limiting.
	RateLimit float64 `mapstructure:"rate_limit" default:"10"`
	// RateBurst is the number of requests allowed above the rate.
	RateBurst int `mapstructure:"rate_burst" default:"5"`
}
