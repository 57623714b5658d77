package storage

// Config holds the S3 compatible object store used by the object settings
// backend.
type Config struct {
	Endpoint  string `mapstructure:"endpoint" default:"localhost:9000"`
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	UseSSL    bool   `mapstructure:"use_ssl" default:"false"`
	// Bucket is created on first write when missing.
	Bucket string `mapstructure:"bucket" default:"jsonplaceholder"`
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds bounds the dial and TLS handshake.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
