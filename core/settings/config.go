package settings

// Config holds configuration for the settings document.
type Config struct {
	// Backend selects where the document lives: "file" or "object".
	Backend string `mapstructure:"backend" default:"file"`
	// Path is the document location for the file backend.
	Path string `mapstructure:"path" default:"data/app_settings.pb"`
	// Object is the object name for the object backend.
	Object string `mapstructure:"object" default:"app_settings.pb"`
}
