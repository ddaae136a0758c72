package gunsmith

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	gunsmithService "github.com/KirkDiggler/gunsmith/internal/services/gunsmith"
)

// ModsHandler shows the mods a weapon accepts
type ModsHandler struct {
	gunsmithService gunsmithService.Service
	logger          *zap.Logger
}

// ModsHandlerConfig holds configuration for the mods handler
type ModsHandlerConfig struct {
	GunsmithService gunsmithService.Service
	Logger          *zap.Logger
}

// NewModsHandler creates a new mods handler
func NewModsHandler(cfg *ModsHandlerConfig) *ModsHandler {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ModsHandler{
		gunsmithService: cfg.GunsmithService,
		logger:          logger,
	}
}

// ModsRequest comes from either /gunsmith mods or a weapon menu selection
type ModsRequest struct {
	Session     *discordgo.Session
	Interaction *discordgo.InteractionCreate
	BuildID     string
	WeaponID    string
	// Update edits the message the selection came from instead of replying
	Update bool
}

// Handle processes the mod listing
func (h *ModsHandler) Handle(req *ModsRequest) error {
	data, err := h.response(context.Background(), req.BuildID, req.WeaponID)
	if err != nil {
		return respondWithError(req.Session, req.Interaction, h.logger, err)
	}

	responseType := discordgo.InteractionResponseChannelMessageWithSource
	if req.Update {
		responseType = discordgo.InteractionResponseUpdateMessage
	}

	return respond(req.Session, req.Interaction, responseType, data)
}

func (h *ModsHandler) response(ctx context.Context, buildID, weaponID string) (*discordgo.InteractionResponseData, error) {
	weapon, err := h.gunsmithService.GetWeapon(ctx, weaponID)
	if err != nil {
		return nil, err
	}

	mods, err := h.gunsmithService.ModOptionsForWeapon(ctx, weaponID)
	if err != nil {
		return nil, err
	}

	menu := buildModMenu(weapon.ID, buildID, mods)
	if menu == nil {
		return &discordgo.InteractionResponseData{
			Content:    fmt.Sprintf("**%s** takes no mods.", weapon.Name),
			Components: []discordgo.MessageComponent{},
			Flags:      discordgo.MessageFlagsEphemeral,
		}, nil
	}

	if menu.DroppedOptions > 0 {
		h.logger.Warn("mod menu truncated",
			zap.String("build_id", buildID),
			zap.String("weapon_id", weapon.ID),
			zap.Int("dropped_options", menu.DroppedOptions),
		)
	}

	return &discordgo.InteractionResponseData{
		Content:    fmt.Sprintf("**%s** accepts %d mods. One per slot.", weapon.Name, len(mods)),
		Components: menu.Rows,
		Flags:      discordgo.MessageFlagsEphemeral,
	}, nil
}
