package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	gormlogger "gorm.io/gorm/logger"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		level       string
		wantLevel   zapcore.Level
		wantErr     bool
	}{
		{name: "development debug", environment: "development", level: "debug", wantLevel: zapcore.DebugLevel},
		{name: "production info", environment: "production", level: "info", wantLevel: zapcore.InfoLevel},
		{name: "level is case insensitive", environment: "production", level: " WARN ", wantLevel: zapcore.WarnLevel},
		{name: "invalid level", environment: "development", level: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(tt.environment, tt.level)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, log.Core().Enabled(tt.wantLevel))
			assert.False(t, log.Core().Enabled(tt.wantLevel-1))
		})
	}
}

func TestGorm_WritesThroughZap(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	gl := Gorm(zap.New(core), gormlogger.Config{LogLevel: gormlogger.Info})

	gl.Info(context.Background(), "migrated %d tables", 3)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "gorm", entry.LoggerName)
	assert.Contains(t, entry.Message, "migrated 3 tables")
}
