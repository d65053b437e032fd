package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeLogLevel(t *testing.T) {
	require.Equal(t, LogLevelDebug, NormalizeLogLevel("debug"))
	require.Equal(t, LogLevelWarn, NormalizeLogLevel("WARN"))
	require.Equal(t, LogLevelInfo, NormalizeLogLevel("verbose"))
	require.Equal(t, LogLevelInfo, NormalizeLogLevel(""))
}

func TestLogLevel_SlogLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, LogLevelDebug.SlogLevel())
	require.Equal(t, slog.LevelInfo, LogLevelInfo.SlogLevel())
	require.Equal(t, slog.LevelWarn, LogLevelWarn.SlogLevel())
	require.Equal(t, slog.LevelError, LogLevelError.SlogLevel())
}

func TestNormalizeLogFormat(t *testing.T) {
	require.Equal(t, LogFormatJSON, NormalizeLogFormat("json"))
	require.Equal(t, LogFormatText, NormalizeLogFormat("text"))
	require.Equal(t, LogFormatText, NormalizeLogFormat("xml"))
}
