package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"jsonplaceholder/core/database"
	"jsonplaceholder/core/executor"
	"jsonplaceholder/core/logger"
	"jsonplaceholder/core/refresh"
	"jsonplaceholder/core/remote"
	"jsonplaceholder/core/server"
	"jsonplaceholder/core/settings"
	"jsonplaceholder/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the complete application configuration, one section per package.
type Config struct {
	Server   server.Config   `mapstructure:"server"`
	Log      logger.Config   `mapstructure:"log"`
	Database database.Config `mapstructure:"database"`
	// Remote is the REST service the cache mirrors.
	Remote   remote.Config   `mapstructure:"remote"`
	Executor executor.Config `mapstructure:"executor"`
	// Settings selects where the settings document is stored.
	Settings settings.Config `mapstructure:"settings"`
	Refresh  refresh.Config  `mapstructure:"refresh"`
	// Storage is only used by the object settings backend.
	Storage storage.Config `mapstructure:"storage"`
}

// LoadConfig reads dir/.env over the process environment, applies the
// struct tag defaults and validates the result.
func LoadConfig(dir string) (*Config, error) {
	// A missing .env is normal outside development.
	_ = godotenv.Overload(filepath.Join(dir, ".env"))

	v := viper.New()
	bindValues(v, Config{}, "")

	// SERVER_PORT -> server.port
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every invalid value at once.
func (c *Config) Validate() error {
	var errs []error
	if _, err := c.Server.Address(); err != nil {
		errs = append(errs, err)
	}
	switch c.Database.Driver {
	case "sqlite", "mysql":
	default:
		errs = append(errs, fmt.Errorf("unsupported database driver %q", c.Database.Driver))
	}
	switch c.Settings.Backend {
	case "file", "object":
	default:
		errs = append(errs, fmt.Errorf("unsupported settings backend %q", c.Settings.Backend))
	}
	if c.Executor.NetworkWorkers <= 0 {
		errs = append(errs, fmt.Errorf("executor.network_workers must be positive, got %d", c.Executor.NetworkWorkers))
	}
	if c.Remote.BaseURL == "" {
		errs = append(errs, errors.New("remote.base_url is required"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// bindValues registers every mapstructure key of iface under prefix with
// its `default` tag, recursing into nested sections. Registering a key, even
// with an empty default, is what lets AutomaticEnv resolve it on Unmarshal.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for _, field := range reflect.VisibleFields(t) {
		tag := field.Tag.Get("mapstructure")
		if tag == "" || !field.IsExported() {
			continue
		}
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.Zero(field.Type).Interface(), key)
			continue
		}
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
