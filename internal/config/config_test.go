package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/gunsmith/internal/config"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"DISCORD_TOKEN", "DISCORD_APP_ID", "DISCORD_GUILD_ID",
		"REDIS_URL", "CATALOG_DIR", "CATALOG_GROUP_ORDER",
		"APP_ENV", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_RequiresDiscordCredentials(t *testing.T) {
	clearEnv(t)

	_, err := config.Load()
	assert.ErrorContains(t, err, "DISCORD_TOKEN")

	t.Setenv("DISCORD_TOKEN", "token")
	_, err = config.Load()
	assert.ErrorContains(t, err, "DISCORD_APP_ID")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("DISCORD_APP_ID", "app")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "token", cfg.Discord.Token)
	assert.Empty(t, cfg.Redis.URL)
	assert.Empty(t, cfg.Catalog.Dir)
	assert.Equal(t, "reverse", cfg.Catalog.GroupOrder)
	assert.Equal(t, config.LogConfig{Encoding: "json", Level: "info"}, cfg.Log)
}

func TestLoadCatalog_Development(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "development")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("CATALOG_DIR", t.TempDir())
	t.Setenv("CATALOG_GROUP_ORDER", "discovery")

	cfg, err := config.LoadCatalog()
	require.NoError(t, err)

	assert.True(t, cfg.Log.Development)
	assert.Equal(t, "console", cfg.Log.Encoding)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "discovery", cfg.Catalog.GroupOrder)
}

func TestLoadCatalog_MissingDir(t *testing.T) {
	clearEnv(t)
	t.Setenv("CATALOG_DIR", "/does/not/exist")

	_, err := config.LoadCatalog()
	assert.ErrorContains(t, err, "CATALOG_DIR")
}
