package observability

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/spec-kit/helpdesk/internal/config"
)

// NewLogger builds the process logger. Format "console" gives colored
// human-readable output for local runs; anything else is JSON.
func NewLogger(cfg config.LoggerConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = zapcore.InfoLevel
	}

	encoding := "json"
	encoderCfg := zapcore.EncoderConfig{
		MessageKey:   "message",
		LevelKey:     "level",
		TimeKey:      "ts",
		CallerKey:    "caller",
		EncodeLevel:  zapcore.LowercaseLevelEncoder,
		EncodeTime:   zapcore.ISO8601TimeEncoder,
		EncodeCaller: zapcore.ShortCallerEncoder,
	}
	if cfg.Format == "console" {
		encoding = "console"
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	return zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Encoding:         encoding,
		EncoderConfig:    encoderCfg,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}.Build()
}
