package services

import (
	"go.uber.org/zap"

	"github.com/KirkDiggler/gunsmith/internal/catalog"
	"github.com/KirkDiggler/gunsmith/internal/options"
	"github.com/KirkDiggler/gunsmith/internal/repositories/items"
	"github.com/KirkDiggler/gunsmith/internal/services/gunsmith"
)

// Provider holds all service instances
type Provider struct {
	GunsmithService gunsmith.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	Repository items.Repository
	Builder    *options.Builder
	Logger     *zap.Logger
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) (*Provider, error) {
	if cfg == nil {
		cfg = &ProviderConfig{}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	// Fall back to the embedded catalog if no repository provided
	repo := cfg.Repository
	if repo == nil {
		c, err := catalog.LoadEmbedded()
		if err != nil {
			return nil, err
		}
		repo = items.NewInMemoryRepository(c)
		logger.Info("using embedded catalog",
			zap.Int("weapons", len(c.Weapons)),
			zap.Int("mods", len(c.Mods)),
		)
	}

	gunsmithService := gunsmith.NewService(&gunsmith.ServiceConfig{
		Repository: repo,
		Builder:    cfg.Builder,
		Logger:     logger.Named("gunsmith"),
	})

	return &Provider{
		GunsmithService: gunsmithService,
	}, nil
}
