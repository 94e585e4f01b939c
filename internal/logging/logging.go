package logging

import (
	"fmt"

	"github.com/KirkDiggler/heroactions/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the process logger: development output when asked for,
// JSON at the configured level otherwise
func New(cfg config.Log) (*zap.SugaredLogger, error) {
	logger, err := createLogger(cfg)
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

func createLogger(cfg config.Log) (*zap.Logger, error) {
	if cfg.Development {
		return zap.NewDevelopment()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	return zapCfg.Build()
}
