package gunsmith

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	gserr "github.com/KirkDiggler/gunsmith/internal/errors"
	gunsmithService "github.com/KirkDiggler/gunsmith/internal/services/gunsmith"
)

// WeaponsHandler shows the grouped weapon menus
type WeaponsHandler struct {
	gunsmithService gunsmithService.Service
	logger          *zap.Logger
}

// WeaponsHandlerConfig holds configuration for the weapons handler
type WeaponsHandlerConfig struct {
	GunsmithService gunsmithService.Service
	Logger          *zap.Logger
}

// NewWeaponsHandler creates a new weapons handler
func NewWeaponsHandler(cfg *WeaponsHandlerConfig) *WeaponsHandler {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WeaponsHandler{
		gunsmithService: cfg.GunsmithService,
		logger:          logger,
	}
}

// WeaponsRequest represents a /gunsmith weapons command
type WeaponsRequest struct {
	Session     *discordgo.Session
	Interaction *discordgo.InteractionCreate
	BuildID     string
	Category    string // Optional - one weapon category key
}

// Handle processes the weapons command
func (h *WeaponsHandler) Handle(req *WeaponsRequest) error {
	data, err := h.response(context.Background(), req.BuildID, req.Category)
	if err != nil {
		return respondWithError(req.Session, req.Interaction, h.logger, err)
	}

	return respond(req.Session, req.Interaction, discordgo.InteractionResponseChannelMessageWithSource, data)
}

func (h *WeaponsHandler) response(ctx context.Context, buildID, category string) (*discordgo.InteractionResponseData, error) {
	groups, err := h.gunsmithService.WeaponGroups(ctx)
	if err != nil {
		return nil, err
	}

	groups = filterGroups(groups, category)
	if len(groups) == 0 {
		if category != "" {
			return nil, gserr.NotFoundf("No weapons in the %s category.", category).
				WithMeta("category", category)
		}
		return nil, gserr.NotFoundf("The armory is empty.")
	}

	menus := buildWeaponMenus(groups, buildID)
	if menus.DroppedGroups > 0 || menus.DroppedOptions > 0 {
		h.logger.Warn("weapon menus truncated",
			zap.String("build_id", buildID),
			zap.Int("dropped_groups", menus.DroppedGroups),
			zap.Int("dropped_options", menus.DroppedOptions),
		)
	}

	weaponCount := 0
	for _, g := range groups {
		weaponCount += len(g.Options)
	}

	return &discordgo.InteractionResponseData{
		Content:    fmt.Sprintf("🔧 **Gunsmith** - %d weapons. Pick one to see what fits it.", weaponCount),
		Components: menus.Rows,
		Flags:      discordgo.MessageFlagsEphemeral,
	}, nil
}
