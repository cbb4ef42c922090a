package observability

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestInitSentryDisabledWithoutDSN(t *testing.T) {
	flush, enabled, err := InitSentry(SentryOptions{DSN: "  "})
	require.NoError(t, err)
	assert.False(t, enabled)
	assert.False(t, Enabled())
	flush()

	CaptureError(errors.New("ignored"), map[string]string{"component": "test"}, nil)
}

func TestInitSentryRejectsBadDSN(t *testing.T) {
	_, enabled, err := InitSentry(SentryOptions{DSN: "not a dsn"})
	assert.Error(t, err)
	assert.False(t, enabled)
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger("debug", true)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	logger, err = NewLogger("warn", false)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))

	_, err = NewLogger("loud", false)
	assert.Error(t, err)
}
