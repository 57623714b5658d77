package logger

import (
	"fmt"

	"jsonplaceholder/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a zap logger from cfg. The debug level uses the development
// preset; every other level the production one.
func New(cfg *Config) (*zap.Logger, error) {
	zc, err := preset(cfg.Level)
	if err != nil {
		return nil, err
	}

	switch cfg.Format {
	case "console":
		zc.Encoding = "console"
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zc.DisableStacktrace = true
	case "json", "":
		zc.Encoding = "json"
	default:
		return nil, fmt.Errorf("invalid log format %q (want json or console)", cfg.Format)
	}

	zc.EncoderConfig.LevelKey = "level"
	zc.EncoderConfig.TimeKey = "time"
	zc.EncoderConfig.MessageKey = "message"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	// stdout carries command output.
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	return zc.Build()
}

func preset(level string) (zap.Config, error) {
	if level == "debug" {
		return zap.NewDevelopmentConfig(), nil
	}
	zc := zap.NewProductionConfig()
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return zc, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zc.Level = lvl
	return zc, nil
}

// WithRayID returns l tagged with the request id set by the rayid middleware.
func WithRayID(l *zap.Logger, c *fiber.Ctx) *zap.Logger {
	if id := rayid.Get(c); id != "" {
		return l.With(zap.String("ray_id", id))
	}
	return l
}
