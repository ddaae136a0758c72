// Package bootstrap wires config into the catalog, repository and option
// builder shared by every command.
package bootstrap

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/KirkDiggler/gunsmith/internal/catalog"
	"github.com/KirkDiggler/gunsmith/internal/config"
	"github.com/KirkDiggler/gunsmith/internal/domain/weapons"
	gserr "github.com/KirkDiggler/gunsmith/internal/errors"
	"github.com/KirkDiggler/gunsmith/internal/options"
	"github.com/KirkDiggler/gunsmith/internal/repositories/items"
)

const pingTimeout = 5 * time.Second

// LoadCatalog reads the catalog from cfg.Dir, or the embedded one when unset,
// and validates it
func LoadCatalog(cfg config.CatalogConfig) (*weapons.Catalog, error) {
	var (
		c   *weapons.Catalog
		err error
	)
	if cfg.Dir != "" {
		c, err = catalog.LoadDir(cfg.Dir)
	} else {
		c, err = catalog.LoadEmbedded()
	}
	if err != nil {
		return nil, err
	}

	if err := catalog.Validate(c); err != nil {
		return nil, gserr.Wrap(err, "catalog failed validation")
	}

	return c, nil
}

// NewBuilder creates the option builder from the catalog config
func NewBuilder(cfg config.CatalogConfig) (*options.Builder, error) {
	order, err := options.ParseGroupOrder(cfg.GroupOrder)
	if err != nil {
		return nil, err
	}

	return options.NewBuilder(&options.BuilderConfig{GroupOrder: order}), nil
}

// ConnectRedis parses url and checks the server answers
func ConnectRedis(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, gserr.WrapWithCode(err, gserr.CodeInvalidArgument, "failed to parse Redis URL")
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, gserr.WrapWithCode(err, gserr.CodeUnavailable, "failed to connect to Redis")
	}

	return client, nil
}

// Repository is an opened item store plus whatever needs closing afterwards
type Repository struct {
	items.Store
	client *redis.Client
}

// Close releases the Redis connection, if any
func (r *Repository) Close() error {
	if r.client == nil {
		return nil
	}
	return r.client.Close()
}

// OpenRepository serves the catalog from Redis when cfg.Redis.URL is set and
// reachable, seeding it from c if it is empty. Otherwise c is served from memory.
func OpenRepository(ctx context.Context, cfg *config.Config, c *weapons.Catalog, logger *zap.Logger) (*Repository, error) {
	if cfg.Redis.URL == "" {
		logger.Info("no REDIS_URL found, using in-memory catalog")
		return &Repository{Store: items.NewInMemoryRepository(c)}, nil
	}

	client, err := ConnectRedis(ctx, cfg.Redis.URL)
	if err != nil {
		logger.Warn("falling back to in-memory catalog", zap.Error(err))
		return &Repository{Store: items.NewInMemoryRepository(c)}, nil
	}
	logger.Info("connected to Redis")

	store := items.NewRedis(client)
	if _, err := SeedIfEmpty(ctx, store, c, logger); err != nil {
		_ = client.Close()
		return nil, err
	}

	return &Repository{Store: store, client: client}, nil
}

// SeedIfEmpty writes c into store when store holds no weapons. A store that
// already has a catalog keeps it, so a changed CATALOG_DIR only takes effect
// after running cmd/seed-catalog.
func SeedIfEmpty(ctx context.Context, store items.Store, c *weapons.Catalog, logger *zap.Logger) (bool, error) {
	existing, err := store.ListWeapons(ctx)
	if err != nil {
		return false, err
	}

	if len(existing) > 0 {
		logger.Warn("serving catalog already stored in Redis; the loaded catalog is ignored, run cmd/seed-catalog to replace it",
			zap.Int("stored_weapons", len(existing)),
			zap.Int("loaded_weapons", len(c.Weapons)),
			zap.Int("loaded_mods", len(c.Mods)),
		)
		return false, nil
	}

	if err := store.Seed(ctx, c); err != nil {
		return false, err
	}
	logger.Info("seeded empty Redis catalog",
		zap.Int("weapons", len(c.Weapons)),
		zap.Int("mods", len(c.Mods)),
	)

	return true, nil
}
