package logging

import (
	"testing"

	"github.com/KirkDiggler/heroactions/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewProductionLevel(t *testing.T) {
	logger, err := New(config.Log{Level: "warn"})
	require.NoError(t, err)

	assert.False(t, logger.Desugar().Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Desugar().Core().Enabled(zapcore.WarnLevel))
}

func TestNewDevelopmentIgnoresLevel(t *testing.T) {
	logger, err := New(config.Log{Development: true, Level: "error"})
	require.NoError(t, err)

	assert.True(t, logger.Desugar().Core().Enabled(zapcore.DebugLevel))
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(config.Log{Level: "loud"})
	assert.Error(t, err)
}
