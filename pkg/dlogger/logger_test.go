package dlogger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestGetLogger(t *testing.T) {
	for _, level := range []string{LogLevelError, LogLevelWarn, LogLevelInfo, LogLevelDebug} {
		l, err := GetLogger(level)
		require.NoError(t, err, level)
		assert.NotNil(t, l)

		c, err := GetConsoleLogger(level)
		require.NoError(t, err, level)
		var want zapcore.Level
		require.NoError(t, want.UnmarshalText([]byte(level)))
		assert.True(t, c.Core().Enabled(want), level)
	}

	l, err := GetConsoleLogger(LogLevelWarn)
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
}

func TestGetLoggerNone(t *testing.T) {
	l, err := GetConsoleLogger(LogLevelNone)
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.ErrorLevel))
}

func TestGetLoggerInvalid(t *testing.T) {
	_, err := GetLogger("chatty")
	require.Error(t, err)
	assert.Panics(t, func() { MustGetLogger("chatty") })
}
