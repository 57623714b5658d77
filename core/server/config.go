package server

import (
	"fmt"
	"strconv"
	"time"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables auth.
	ApiKey string `mapstructure:"api_key" default:""`
	// ShutdownTimeoutSeconds bounds graceful shutdown.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" default:"10"`
	// Swagger serves the API documentation under /swagger.
	Swagger bool `mapstructure:"swagger" default:"true"`
}

// Address returns the listen address for the configured port.
func (c Config) Address() (string, error) {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port <= 0 || port > 65535 {
		return "", fmt.Errorf("invalid server port %q", c.Port)
	}
	return ":" + c.Port, nil
}

// ShutdownTimeout returns the graceful shutdown bound.
func (c Config) ShutdownTimeout() time.Duration {
	if c.ShutdownTimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}
