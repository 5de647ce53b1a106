package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFrom(t *testing.T) {
	t.Setenv("ID", "7")

	cfg, err := LoadConfigFrom("config.yaml")
	require.NoError(t, err)

	assert.Equal(t, "bikeshare-query-requests", cfg.InputQueue.Name)
	assert.True(t, cfg.InputQueue.Durable)
	assert.Equal(t, "bikeshare-query-responses", cfg.OutputQueue.Name)
	assert.True(t, cfg.ConsumptionConfig.AutoACK)
	assert.Equal(t, 1, cfg.PrefetchCount)
	assert.Equal(t, 5*time.Second, cfg.PublishTimeout)
	assert.Equal(t, "7", cfg.ID)
}

func TestLoadConfigFromDefaultTimeout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input_queue:\n  name: in\n"), 0o644))

	cfg, err := LoadConfigFrom(path)
	require.NoError(t, err)
	assert.Equal(t, defaultPublishTimeout, cfg.PublishTimeout)
}
