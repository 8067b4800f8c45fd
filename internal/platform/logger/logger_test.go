package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/avelis/users-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	log, err := Setup(config.ServerConfig{LogLevel: "debug"})
	require.NoError(t, err)
	require.NotNil(t, log)
	assert.True(t, log.Enabled(context.Background(), slog.LevelDebug))

	log, err = Setup(config.ServerConfig{LogLevel: "error"})
	require.NoError(t, err)
	assert.False(t, log.Enabled(context.Background(), slog.LevelInfo))
}

func TestSetupInvalidLevelFallsBackToInfo(t *testing.T) {
	log, err := Setup(config.ServerConfig{LogLevel: "shouting"})
	require.NoError(t, err)
	assert.True(t, log.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, log.Enabled(context.Background(), slog.LevelDebug))
}

func TestFromContext(t *testing.T) {
	base := slog.Default()
	assert.Equal(t, base, FromContext(context.Background()))

	child := base.With(slog.String("trace_id", "abc"))
	ctx := WithLogger(context.Background(), child)
	assert.Equal(t, child, FromContext(ctx))
	assert.Equal(t, child, FromContextOrDefault(ctx, nil))
	assert.Equal(t, base, FromContextOrDefault(context.Background(), base))
}
