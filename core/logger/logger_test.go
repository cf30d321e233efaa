package logger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nbardi/namada/core/logger"
)

func TestLoggerNotNil(t *testing.T) {
	assert.NotNil(t, logger.Logger())
}

func TestLoggerSingleton(t *testing.T) {
	first := logger.Logger()
	second := logger.Logger()

	assert.Same(t, first, second)
}

func TestLoggerWithFields(t *testing.T) {
	entry := logger.Logger().WithField("component", "test")
	assert.NotNil(t, entry)

	// Must not panic regardless of the configured level.
	entry.Debug("debug message")
	entry.Warn("warn message")
}
