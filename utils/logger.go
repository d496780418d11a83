package utils

import (
	"log"
	"os"
	"path/filepath"

	"classalloc/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Global logger instance
var Logger *zap.Logger

// InitializeLogger builds the global logger from config. Development logs are
// colored console lines, production logs are JSON. When LOG_DIR is set the
// output is also written to a rotated file there.
func InitializeLogger() {
	var err error
	Logger, err = NewLogger(config.AppConfig.LogDir, !config.IsProduction(), config.AppConfig.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
}

// NewLogger builds a logger writing to stdout and, when dir is non-empty, to
// dir/classalloc.log rotated by lumberjack.
func NewLogger(dir string, debug bool, level string) (*zap.Logger, error) {
	encoderConfig := zap.NewProductionEncoderConfig()
	if debug {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	lvl := zap.NewAtomicLevelAt(zap.InfoLevel)
	if debug {
		lvl.SetLevel(zap.DebugLevel)
	}
	if level != "" {
		if parsed, err := zapcore.ParseLevel(level); err == nil && !debug {
			lvl.SetLevel(parsed)
		}
	}

	consoleConfig := encoderConfig
	consoleEncoder := zapcore.NewJSONEncoder(consoleConfig)
	if debug {
		consoleConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		consoleEncoder = zapcore.NewConsoleEncoder(consoleConfig)
	}

	cores := []zapcore.Core{
		zapcore.NewCore(consoleEncoder, zapcore.AddSync(os.Stdout), lvl),
	}

	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
		fileWriter := zapcore.AddSync(&lumberjack.Logger{
			Filename:   filepath.Join(dir, "classalloc.log"),
			MaxSize:    10, // MB
			MaxBackups: 7,
			MaxAge:     28, // days
			Compress:   true,
		})
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), fileWriter, lvl))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), nil
}

// GetLogger retrieves the global logger
func GetLogger() *zap.Logger {
	if Logger == nil {
		InitializeLogger()
	}
	return Logger
}
