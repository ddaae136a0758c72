// seed-catalog loads the catalog from CATALOG_DIR (or the embedded one) and
// replaces whatever catalog Redis currently holds.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/KirkDiggler/gunsmith/internal/bootstrap"
	"github.com/KirkDiggler/gunsmith/internal/config"
	"github.com/KirkDiggler/gunsmith/internal/logging"
	"github.com/KirkDiggler/gunsmith/internal/repositories/items"
)

func main() {
	var (
		redisURL = flag.String("redis", "", "Redis URL (defaults to REDIS_URL)")
		dir      = flag.String("dir", "", "catalog directory (defaults to CATALOG_DIR, then the embedded catalog)")
		dryRun   = flag.Bool("dry-run", false, "validate the catalog without writing")
	)
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.LoadCatalog()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *redisURL != "" {
		cfg.Redis.URL = *redisURL
	}
	if *dir != "" {
		cfg.Catalog.Dir = *dir
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	c, err := bootstrap.LoadCatalog(cfg.Catalog)
	if err != nil {
		logger.Fatal("failed to load catalog", zap.Error(err), zap.String("dir", cfg.Catalog.Dir))
	}
	logger.Info("catalog valid", zap.Int("weapons", len(c.Weapons)), zap.Int("mods", len(c.Mods)))

	if *dryRun {
		return
	}
	if cfg.Redis.URL == "" {
		logger.Fatal("REDIS_URL or -redis is required")
	}

	ctx := context.Background()
	client, err := bootstrap.ConnectRedis(ctx, cfg.Redis.URL)
	if err != nil {
		logger.Fatal("failed to connect to Redis", zap.Error(err))
	}
	defer client.Close()

	if err := items.NewRedis(client).Seed(ctx, c); err != nil {
		logger.Fatal("failed to seed catalog", zap.Error(err))
	}

	fmt.Printf("Seeded %d weapons and %d mods\n", len(c.Weapons), len(c.Mods))
}
