package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"chain-registry/internal/config"
)

// NewLogger creates a zap logger from the logger section of the config and tags every entry
// with the application name and version. An unknown level falls back to info and an unknown
// encoding to JSON; both are reported as a warning through the new logger.
func NewLogger(cfg config.LoggerConfig, app config.AppConfig) (*zap.Logger, error) {
	return newLogger(cfg, app, zapcore.Lock(os.Stdout))
}

func newLogger(cfg config.LoggerConfig, app config.AppConfig, sink zapcore.WriteSyncer) (*zap.Logger, error) {
	var warnings []zap.Field

	logLevel := zap.NewAtomicLevel()
	if err := logLevel.UnmarshalText([]byte(cfg.Level)); err != nil {
		logLevel.SetLevel(zap.InfoLevel) // Default to info if parsing fails
		warnings = append(warnings, zap.String("configLevel", cfg.Level), zap.NamedError("levelError", err))
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	switch cfg.Encoding {
	case "console":
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	case "json", "":
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	default:
		encoder = zapcore.NewJSONEncoder(encoderCfg) // Default to JSON
		warnings = append(warnings, zap.String("configEncoding", cfg.Encoding))
	}

	logger := zap.New(
		zapcore.NewCore(encoder, sink, logLevel),
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	).With(
		zap.String("app", app.Name),
		zap.String("version", app.Version),
	)

	if len(warnings) > 0 {
		logger.Warn("Invalid logger config, using defaults for the invalid fields", warnings...)
	}

	return logger, nil
}
