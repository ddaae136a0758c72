package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/KirkDiggler/gunsmith/internal/bootstrap"
	"github.com/KirkDiggler/gunsmith/internal/config"
	"github.com/KirkDiggler/gunsmith/internal/handlers/discord"
	"github.com/KirkDiggler/gunsmith/internal/logging"
	"github.com/KirkDiggler/gunsmith/internal/services"
)

func main() {
	// Load .env file
	envErr := godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if envErr != nil {
		logger.Info("no .env file found")
	}

	logger.Info("starting gunsmith bot",
		zap.String("app_id", cfg.Discord.AppID),
		zap.String("guild_id", cfg.Discord.GuildID),
		zap.String("group_order", cfg.Catalog.GroupOrder),
	)

	if err := run(cfg, logger); err != nil {
		logger.Fatal("bot stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx := context.Background()

	c, err := bootstrap.LoadCatalog(cfg.Catalog)
	if err != nil {
		return err
	}

	builder, err := bootstrap.NewBuilder(cfg.Catalog)
	if err != nil {
		return err
	}

	repo, err := bootstrap.OpenRepository(ctx, cfg, c, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Warn("failed to close Redis connection", zap.Error(err))
		}
	}()

	serviceProvider, err := services.NewProvider(&services.ProviderConfig{
		Repository: repo,
		Builder:    builder,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	handler := discord.NewHandler(&discord.HandlerConfig{
		ServiceProvider: serviceProvider,
		Logger:          logger.Named("discord"),
	})

	if err := handler.Warm(ctx); err != nil {
		return err
	}

	// Create Discord session
	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		return fmt.Errorf("failed to create Discord session: %w", err)
	}

	dg.AddHandler(discord.RecoverMiddleware(logger, "interaction", handler.HandleInteraction))

	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}
	defer func() {
		if err := dg.Close(); err != nil {
			logger.Warn("failed to close Discord connection", zap.Error(err))
		}
	}()

	// Use empty string for global commands, or set a specific guild ID for testing
	if err := handler.RegisterCommands(dg, cfg.Discord.GuildID); err != nil {
		return err
	}
	if cfg.Discord.GuildID == "" {
		logger.Info("registered global commands (may take up to 1 hour to propagate)")
	}

	fmt.Println("Bot is now running. Press CTRL-C to exit.")

	// Wait for interrupt signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	fmt.Println("Shutting down...")
	return nil
}
