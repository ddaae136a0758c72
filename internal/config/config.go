package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	Discord DiscordConfig
	Redis   RedisConfig
	Catalog CatalogConfig
	Log     LogConfig
}

// DiscordConfig holds Discord-specific configuration
type DiscordConfig struct {
	Token   string
	AppID   string
	GuildID string // Optional: for guild-specific commands
}

// RedisConfig holds Redis-specific configuration.
// When URL is empty the catalog is served from memory.
type RedisConfig struct {
	URL string
}

// CatalogConfig controls where item data comes from and how options are built
type CatalogConfig struct {
	// Dir holds guns.{json,yaml} and mods.{json,yaml}. Empty uses the embedded catalog.
	Dir        string
	GroupOrder string
}

type LogConfig struct {
	Development bool
	Encoding    string
	Level       string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg, err := LoadCatalog()
	if err != nil {
		return nil, err
	}

	cfg.Discord = DiscordConfig{
		Token:   os.Getenv("DISCORD_TOKEN"),
		AppID:   os.Getenv("DISCORD_APP_ID"),
		GuildID: os.Getenv("DISCORD_GUILD_ID"),
	}

	// Validate required fields
	if cfg.Discord.Token == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN is required")
	}
	if cfg.Discord.AppID == "" {
		return nil, fmt.Errorf("DISCORD_APP_ID is required")
	}

	return cfg, nil
}

// LoadCatalog loads everything except the Discord credentials, for tools
// that never connect to Discord
func LoadCatalog() (*Config, error) {
	cfg := &Config{
		Redis: RedisConfig{
			URL: os.Getenv("REDIS_URL"),
		},
		Catalog: CatalogConfig{
			Dir:        os.Getenv("CATALOG_DIR"),
			GroupOrder: getEnvOrDefault("CATALOG_GROUP_ORDER", "reverse"),
		},
		Log: loadLogConfig(),
	}

	if cfg.Catalog.Dir != "" {
		info, err := os.Stat(cfg.Catalog.Dir)
		if err != nil {
			return nil, fmt.Errorf("CATALOG_DIR: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("CATALOG_DIR %s is not a directory", cfg.Catalog.Dir)
		}
	}

	return cfg, nil
}

func loadLogConfig() LogConfig {
	logCfg := LogConfig{
		Encoding: "json",
		Level:    "info",
	}

	if strings.EqualFold(os.Getenv("APP_ENV"), "development") {
		logCfg.Development = true
		logCfg.Encoding = "console"
		logCfg.Level = "debug"
	}

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		logCfg.Level = level
	}

	return logCfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
