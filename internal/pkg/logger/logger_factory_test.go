//go:build unit
// +build unit

package logger

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/cdesjardins/botan/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetLoggerSingleton() {
	loggerInstance = nil
	loggerErr = nil
	loggerOnce = sync.Once{}
}

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name     string
		settings *config.LoggerSettings
		wantErr  bool
		filePath func(t *testing.T) string
	}{
		{
			name: "console logger",
			settings: &config.LoggerSettings{
				LogLevel: config.LogLevelInfo,
				LogType:  config.LogTypeConsole,
			},
			wantErr: false,
		},
		{
			name: "file logger with rotation",
			settings: &config.LoggerSettings{
				LogLevel:   config.LogLevelInfo,
				LogType:    config.LogTypeFile,
				MaxSize:    10,
				MaxBackups: 3,
				MaxAge:     28,
			},
			wantErr: false,
			filePath: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "lib.log")
			},
		},
		{
			name: "invalid log level",
			settings: &config.LoggerSettings{
				LogLevel: "invalid",
				LogType:  config.LogTypeConsole,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetLoggerSingleton()
			t.Cleanup(resetLoggerSingleton)

			if tt.filePath != nil {
				tt.settings.FilePath = tt.filePath(t)
			}

			err := InitLogger(tt.settings)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			log, err := GetLogger()
			require.NoError(t, err)
			assert.NotNil(t, log)
		})
	}
}

func TestGetLogger_BeforeInit(t *testing.T) {
	resetLoggerSingleton()
	t.Cleanup(resetLoggerSingleton)

	_, err := GetLogger()
	assert.Error(t, err)
}

func TestInitLogger_IsIdempotent(t *testing.T) {
	resetLoggerSingleton()
	t.Cleanup(resetLoggerSingleton)

	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
	}

	require.NoError(t, InitLogger(settings))
	first, err := GetLogger()
	require.NoError(t, err)

	require.NoError(t, InitLogger(settings))
	second, err := GetLogger()
	require.NoError(t, err)

	assert.Same(t, first, second)
}
