package logger_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"taskboard/pkg/logger"
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, zapcore.DebugLevel, logger.ParseLevel("DEBUG"))
	require.Equal(t, zapcore.WarnLevel, logger.ParseLevel(" warn "))
	require.Equal(t, zapcore.ErrorLevel, logger.ParseLevel("error"))
	require.Equal(t, zapcore.DPanicLevel, logger.ParseLevel("dpanic"))
	require.Equal(t, zapcore.FatalLevel, logger.ParseLevel("Fatal"))
	require.Equal(t, zapcore.InfoLevel, logger.ParseLevel(""))
	require.Equal(t, zapcore.InfoLevel, logger.ParseLevel("verbose"))
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	log := logger.New(logger.Config{Level: "info", Format: "json", Output: path, MaxSizeMB: 1, MaxAgeDays: 1})
	log.Info("hello file")
	_ = log.Sync()

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(content), "hello file")
}
