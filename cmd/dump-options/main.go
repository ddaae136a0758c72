// dump-options prints the page data the UI is built from as JSON
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/KirkDiggler/gunsmith/internal/bootstrap"
	"github.com/KirkDiggler/gunsmith/internal/config"
	"github.com/KirkDiggler/gunsmith/internal/logging"
	"github.com/KirkDiggler/gunsmith/internal/services"
)

func main() {
	var (
		order    = flag.String("order", "", "group order: reverse or discovery (defaults to CATALOG_GROUP_ORDER)")
		weaponID = flag.String("weapon", "", "only print the mod options for this weapon")
		noItems  = flag.Bool("no-items", false, "omit the raw item data")
	)
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.LoadCatalog()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *order != "" {
		cfg.Catalog.GroupOrder = *order
	}
	// keep stdout clean for the JSON
	cfg.Log.Level = "warn"

	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	c, err := bootstrap.LoadCatalog(cfg.Catalog)
	if err != nil {
		logger.Fatal("failed to load catalog", zap.Error(err))
	}
	builder, err := bootstrap.NewBuilder(cfg.Catalog)
	if err != nil {
		logger.Fatal("bad group order", zap.Error(err))
	}
	repo, err := bootstrap.OpenRepository(ctx, cfg, c, logger)
	if err != nil {
		logger.Fatal("failed to open repository", zap.Error(err))
	}
	defer repo.Close()

	provider, err := services.NewProvider(&services.ProviderConfig{
		Repository: repo,
		Builder:    builder,
		Logger:     logger,
	})
	if err != nil {
		logger.Fatal("failed to create services", zap.Error(err))
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	if *weaponID != "" {
		mods, err := provider.GunsmithService.ModOptionsForWeapon(ctx, *weaponID)
		if err != nil {
			logger.Fatal("failed to build mod options", zap.Error(err), zap.String("weapon_id", *weaponID))
		}
		if err := enc.Encode(mods); err != nil {
			logger.Fatal("failed to write output", zap.Error(err))
		}
		return
	}

	page, err := provider.GunsmithService.LoadPageData(ctx)
	if err != nil {
		logger.Fatal("failed to build page data", zap.Error(err))
	}
	if *noItems {
		page.ItemData = nil
	}

	if err := enc.Encode(page); err != nil {
		logger.Fatal("failed to write output", zap.Error(err))
	}
}
