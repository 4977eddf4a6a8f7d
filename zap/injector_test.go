//go:build unit

package zap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewRejectsMissingOTelLibraryName(t *testing.T) {
	t.Parallel()

	_, err := New(Config{Environment: EnvironmentProduction})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OTelLibraryName is required")
}

func TestNewRejectsInvalidEnvironment(t *testing.T) {
	t.Parallel()

	_, err := New(Config{Environment: Environment("banana"), OTelLibraryName: "lib-cron"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid environment")
}

func TestNewAppliesEnvironmentDefaultLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		environment Environment
		expected    zapcore.Level
	}{
		{environment: EnvironmentDevelopment, expected: zapcore.DebugLevel},
		{environment: EnvironmentLocal, expected: zapcore.DebugLevel},
		{environment: EnvironmentStaging, expected: zapcore.InfoLevel},
		{environment: EnvironmentProduction, expected: zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(string(tt.environment), func(t *testing.T) {
			t.Parallel()

			logger, err := New(Config{Environment: tt.environment, OTelLibraryName: "lib-cron"})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, logger.Level().Level())
		})
	}
}

func TestNewAppliesCustomLevel(t *testing.T) {
	t.Parallel()

	logger, err := New(Config{Environment: EnvironmentProduction, OTelLibraryName: "lib-cron", Level: "error"})
	require.NoError(t, err)
	assert.Equal(t, zapcore.ErrorLevel, logger.Level().Level())
}

func TestNewRejectsInvalidCustomLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Config{Environment: EnvironmentProduction, OTelLibraryName: "lib-cron", Level: "loud"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid level")
}
