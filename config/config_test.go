package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "mongo", cfg.Store.Driver)
	assert.Equal(t, "waste_management", cfg.Mongo.DBName)
	assert.Equal(t, 5*time.Minute, cfg.Redis.TTL)
	assert.Equal(t, []string{"*"}, cfg.App.CorsOrigins)
	assert.Empty(t, cfg.S3.Bucket)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte("store:\n  driver: memory\napp:\n  timezone: Asia/Colombo\nredis:\n  ttl: 30s\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o600))
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Store.Driver)
	assert.Equal(t, 30*time.Second, cfg.Redis.TTL)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Colombo", loc.String())
}

func TestLocation_DefaultsToLocal(t *testing.T) {
	loc, err := Config{}.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)
}
