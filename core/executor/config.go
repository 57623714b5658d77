package executor

// Config holds configuration for the worker pools.
type Config struct {
	// NetworkWorkers is the number of concurrent remote calls.
	NetworkWorkers int `mapstructure:"network_workers" default:"2"`
}
