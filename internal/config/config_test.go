package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZA87447/Dashboard-bot/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "Dataset/2024dataset_2countries_3tiresizes.csv", cfg.DatasetPath)
	assert.Empty(t, cfg.SchemaPath)
	assert.Empty(t, cfg.DatabaseURL)
	assert.False(t, cfg.StrictDataset)
	assert.Equal(t, "dev", cfg.Version)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DATASET_PATH", "/data/sales.csv")
	t.Setenv("STRICT_DATASET", "true")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/data/sales.csv", cfg.DatasetPath)
	assert.True(t, cfg.StrictDataset)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	_, err := config.Load()
	require.Error(t, err)
}
