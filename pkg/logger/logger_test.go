package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewReopenableWriteSyncer(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("successful creation", func(t *testing.T) {
		logFilePath := filepath.Join(tempDir, "app.log")
		ws, err := NewReopenableWriteSyncer(logFilePath)
		require.NoError(t, err)
		require.NotNil(t, ws)
		defer ws.Close()
		_, err = os.Stat(logFilePath)
		assert.NoError(t, err)
	})
	t.Run("creates missing directories", func(t *testing.T) {
		logFilePath := filepath.Join(tempDir, "log", "nested", "app.log")
		ws, err := NewReopenableWriteSyncer(logFilePath)
		require.NoError(t, err)
		defer ws.Close()
		_, err = os.Stat(logFilePath)
		assert.NoError(t, err)
	})
	t.Run("path is a directory", func(t *testing.T) {
		ws, err := NewReopenableWriteSyncer(tempDir)
		assert.Error(t, err)
		assert.Nil(t, ws)
	})
}

func TestReopenableWriteSyncer_WriteAndReload(t *testing.T) {
	tempDir := t.TempDir()

	logFilePath := filepath.Join(tempDir, "app.log")
	reloadedLogFilePath := filepath.Join(tempDir, "app.log.1")

	ws, err := NewReopenableWriteSyncer(logFilePath)
	require.NoError(t, err)
	defer ws.Close()

	_, err = ws.Write([]byte("firstLine\n"))
	require.NoError(t, err)

	err = os.Rename(logFilePath, reloadedLogFilePath)
	require.NoError(t, err)

	err = ws.Reload()
	require.NoError(t, err)

	_, err = ws.Write([]byte("secondLine\n"))
	require.NoError(t, err)
	require.NoError(t, ws.Sync())

	contentOld, err := os.ReadFile(reloadedLogFilePath)
	require.NoError(t, err)
	assert.Equal(t, "firstLine\n", string(contentOld))

	contentNew, err := os.ReadFile(logFilePath)
	require.NoError(t, err)
	assert.Equal(t, "secondLine\n", string(contentNew))
}

func TestNewLogger(t *testing.T) {
	testCases := []struct {
		name          string
		logLevel      string
		expectedLevel zapcore.Level
	}{
		{"debug level", "debug", zap.DebugLevel},
		{"info level", "info", zap.InfoLevel},
		{"warn level", "warn", zap.WarnLevel},
		{"error level", "error", zap.ErrorLevel},
		{"fatal level", "fatal", zap.FatalLevel},
		{"invalid level", "invalid", zap.InfoLevel},
		{"empty level", "", zap.InfoLevel},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			logger := NewLogger(tc.logLevel, zapcore.AddSync(&bytes.Buffer{}), "health-sender")
			require.NotNil(t, logger)

			assert.True(t, logger.Core().Enabled(tc.expectedLevel), "expected level %s should be enabled", tc.expectedLevel)
			if tc.expectedLevel > zap.DebugLevel {
				assert.False(t, logger.Core().Enabled(tc.expectedLevel-1))
			}
		})
	}
}

func TestNewLogger_Output(t *testing.T) {
	var buffer bytes.Buffer
	logger := NewLogger("info", zapcore.AddSync(&buffer), "health-sender")

	logger.Info("sync finished", zap.String("status", "sent"))

	out := buffer.String()
	assert.Contains(t, out, `"level":"INFO"`)
	assert.Contains(t, out, `"service.name":"health-sender"`)
	assert.Contains(t, out, `"status":"sent"`)
	assert.Contains(t, out, `"caller":"logger/logger_test.go`)
}
