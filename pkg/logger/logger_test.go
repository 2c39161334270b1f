package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	logger := New()
	assert.NotNil(t, logger)
	assert.NotNil(t, logger.info)
	assert.NotNil(t, logger.error)
	assert.NotNil(t, logger.warn)
}

func TestLogger_Levels(t *testing.T) {
	logger := New()

	// None of the levels should panic
	logger.Info("feed assembled in %dms", 12)
	logger.Warn("redis unavailable, skipping count cache")
	logger.Error("failed to upload video: %s", "timeout")
}

func TestLogger_Formatting(t *testing.T) {
	logger := New()

	logger.Info("partner %s uploaded reel %s", "p1", "f1")
	logger.Error("toggle failed for user %s on food %s: %v", "u1", "f1", nil)
}
