package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/KirkDiggler/gunsmith/internal/domain/weapons"
	"github.com/KirkDiggler/gunsmith/internal/handlers/discord/gunsmith"
	"github.com/KirkDiggler/gunsmith/internal/handlers/discord/utils"
	"github.com/KirkDiggler/gunsmith/internal/options"
	"github.com/KirkDiggler/gunsmith/internal/services"
	"github.com/KirkDiggler/gunsmith/internal/uuid"
)

// Handler handles all Discord interactions
type Handler struct {
	ServiceProvider *services.Provider
	logger          *zap.Logger
	uuidGenerator   uuid.Generator
	labels          options.CategoryLabels

	weaponsHandler *gunsmith.WeaponsHandler
	modsHandler    *gunsmith.ModsHandler
	summaryHandler *gunsmith.SummaryHandler
}

// HandlerConfig holds configuration for the Discord handler
type HandlerConfig struct {
	ServiceProvider *services.Provider
	Logger          *zap.Logger            // Optional - defaults to a no-op logger
	UUIDGenerator   uuid.Generator         // Optional - defaults to google uuid
	CategoryLabels  options.CategoryLabels // Optional - names for the category choices
}

// NewHandler creates a new Discord handler
func NewHandler(cfg *HandlerConfig) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	gen := cfg.UUIDGenerator
	if gen == nil {
		gen = uuid.NewGoogleUUIDGenerator()
	}
	labels := cfg.CategoryLabels
	if labels == nil {
		labels = options.DefaultCategoryLabels()
	}

	svc := cfg.ServiceProvider.GunsmithService
	return &Handler{
		ServiceProvider: cfg.ServiceProvider,
		logger:          logger,
		uuidGenerator:   gen,
		labels:          labels,
		weaponsHandler: gunsmith.NewWeaponsHandler(&gunsmith.WeaponsHandlerConfig{
			GunsmithService: svc,
			Logger:          logger,
		}),
		modsHandler: gunsmith.NewModsHandler(&gunsmith.ModsHandlerConfig{
			GunsmithService: svc,
			Logger:          logger,
		}),
		summaryHandler: gunsmith.NewSummaryHandler(&gunsmith.SummaryHandlerConfig{
			GunsmithService: svc,
			Logger:          logger,
		}),
	}
}

// Commands returns the slash commands this handler serves
func (h *Handler) Commands() []*discordgo.ApplicationCommand {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(weapons.WeaponTypes))
	for _, t := range weapons.WeaponTypes {
		label, err := h.labels.Label(t)
		if err != nil {
			continue
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  label,
			Value: string(t),
		})
	}

	return []*discordgo.ApplicationCommand{
		{
			Name:        "gunsmith",
			Description: "Browse weapons and fit mods",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        "weapons",
					Description: "Pick a weapon, grouped by category",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "category",
							Description: "Only show one category",
							Required:    false,
							Choices:     choices,
						},
					},
				},
				{
					Name:        "mods",
					Description: "List the mods a weapon accepts",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "weapon",
							Description: "Weapon id, e.g. 10mm-pistol",
							Required:    true,
						},
					},
				},
			},
		},
	}
}

// RegisterCommands registers all slash commands with Discord
func (h *Handler) RegisterCommands(s *discordgo.Session, guildID string) error {
	for _, cmd := range h.Commands() {
		_, err := s.ApplicationCommandCreate(s.State.User.ID, guildID, cmd)
		if err != nil {
			return fmt.Errorf("failed to create command %s: %w", cmd.Name, err)
		}
		h.logger.Info("registered command", zap.String("command", cmd.Name), zap.String("guild_id", guildID))
	}

	return nil
}

// HandleInteraction handles all Discord interactions
func (h *Handler) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		h.handleCommand(s, i)
	case discordgo.InteractionMessageComponent:
		h.handleComponent(s, i)
	}
}

// handleCommand handles slash command interactions
func (h *Handler) handleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	if data.Name != "gunsmith" || len(data.Options) == 0 {
		return
	}

	// every command starts a new build
	buildID := uuid.ShortID(h.uuidGenerator)
	logger := h.logger.With(zap.String("build_id", buildID), zap.String("user_id", interactionUserID(i)))

	var err error
	switch sub := data.Options[0]; sub.Name {
	case "weapons":
		err = h.weaponsHandler.Handle(&gunsmith.WeaponsRequest{
			Session:     s,
			Interaction: i,
			BuildID:     buildID,
			Category:    utils.GetStringOption(i, "category"),
		})
	case "mods":
		err = h.modsHandler.Handle(&gunsmith.ModsRequest{
			Session:     s,
			Interaction: i,
			BuildID:     buildID,
			WeaponID:    utils.GetStringOption(i, "weapon"),
		})
	default:
		logger.Warn("unknown gunsmith subcommand", zap.String("subcommand", sub.Name))
		return
	}

	if err != nil {
		logger.Error("error handling gunsmith command", zap.Error(err))
	}
}

// handleComponent handles button and select menu interactions
func (h *Handler) handleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.MessageComponentData()
	if !gunsmith.IsGunsmithCustomID(data.CustomID) {
		return
	}

	id, err := gunsmith.ParseCustomID(data.CustomID)
	if err != nil {
		h.logger.Warn("bad custom id", zap.String("custom_id", data.CustomID), zap.Error(err))
		return
	}
	logger := h.logger.With(zap.String("build_id", id.BuildID), zap.String("action", id.Action))

	switch id.Action {
	case gunsmith.ActionWeaponSelect:
		if len(data.Values) == 0 {
			return
		}
		err = h.modsHandler.Handle(&gunsmith.ModsRequest{
			Session:     s,
			Interaction: i,
			BuildID:     id.BuildID,
			WeaponID:    data.Values[0],
			Update:      true,
		})
	case gunsmith.ActionModSelect:
		err = h.summaryHandler.Handle(&gunsmith.SummaryRequest{
			Session:     s,
			Interaction: i,
			BuildID:     id.BuildID,
			WeaponID:    id.Arg(0),
			ModIDs:      data.Values,
		})
	default:
		logger.Warn("unknown gunsmith action")
		return
	}

	if err != nil {
		logger.Error("error handling gunsmith component", zap.Error(err))
	}
}

// Warm loads the catalog once so the first interaction isn't the one paying for it
func (h *Handler) Warm(ctx context.Context) error {
	page, err := h.ServiceProvider.GunsmithService.LoadPageData(ctx)
	if err != nil {
		return err
	}

	h.logger.Info("catalog ready",
		zap.Int("weapons", len(page.ItemData.Weapons)),
		zap.Int("mods", len(page.ItemData.Mods)),
		zap.Int("weapon_options", len(page.WeaponOptions)),
	)
	return nil
}

func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}
