package gunsmith

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/KirkDiggler/gunsmith/internal/domain/weapons"
	gunsmithService "github.com/KirkDiggler/gunsmith/internal/services/gunsmith"
)

// SummaryHandler shows the finished weapon once mods are picked
type SummaryHandler struct {
	gunsmithService gunsmithService.Service
	logger          *zap.Logger
}

// SummaryHandlerConfig holds configuration for the summary handler
type SummaryHandlerConfig struct {
	GunsmithService gunsmithService.Service
	Logger          *zap.Logger
}

// NewSummaryHandler creates a new summary handler
func NewSummaryHandler(cfg *SummaryHandlerConfig) *SummaryHandler {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SummaryHandler{
		gunsmithService: cfg.GunsmithService,
		logger:          logger,
	}
}

// SummaryRequest represents a mod menu selection
type SummaryRequest struct {
	Session     *discordgo.Session
	Interaction *discordgo.InteractionCreate
	BuildID     string
	WeaponID    string
	ModIDs      []string
}

// Handle processes the mod selection
func (h *SummaryHandler) Handle(req *SummaryRequest) error {
	data, err := h.response(context.Background(), req.WeaponID, req.ModIDs)
	if err != nil {
		return respondWithError(req.Session, req.Interaction, h.logger, err)
	}

	h.logger.Info("weapon built",
		zap.String("build_id", req.BuildID),
		zap.String("weapon_id", req.WeaponID),
		zap.Strings("mod_ids", req.ModIDs),
	)

	return respond(req.Session, req.Interaction, discordgo.InteractionResponseUpdateMessage, data)
}

func (h *SummaryHandler) response(ctx context.Context, weaponID string, modIDs []string) (*discordgo.InteractionResponseData, error) {
	loadout, err := h.gunsmithService.FitMods(ctx, weaponID, modIDs)
	if err != nil {
		return nil, err
	}

	return &discordgo.InteractionResponseData{
		Embeds:     []*discordgo.MessageEmbed{buildLoadoutEmbed(loadout)},
		Components: []discordgo.MessageComponent{},
		Flags:      discordgo.MessageFlagsEphemeral,
	}, nil
}

func buildLoadoutEmbed(l *weapons.Loadout) *discordgo.MessageEmbed {
	w := l.Weapon

	fireRate := "-"
	if w.FireRate != nil {
		fireRate = strconv.Itoa(*w.FireRate)
	}
	ammo := w.Ammo
	if ammo == "" {
		ammo = "-"
	}
	rng := "-"
	if w.Range != nil {
		rng = w.Range.String()
	}

	// base weapon numbers; mod effects are listed, not applied
	fields := []*discordgo.MessageEmbedField{
		{Name: "Damage", Value: fmt.Sprintf("%d %s", w.DamageRating, w.DamageType), Inline: true},
		{Name: "Fire Rate", Value: fireRate, Inline: true},
		{Name: "Range", Value: rng, Inline: true},
		{Name: "Ammo", Value: ammo, Inline: true},
		{Name: "Weight", Value: strconv.FormatFloat(w.Weight, 'f', -1, 64), Inline: true},
		{Name: "Cost", Value: strconv.Itoa(w.Cost), Inline: true},
	}

	mods := "None"
	if len(l.Mods) > 0 {
		lines := make([]string, 0, len(l.Mods))
		for _, slot := range weapons.WeaponModSlots {
			if m := l.Mod(slot); m != nil {
				lines = append(lines, fmt.Sprintf("**%s**: %s", slot, m.Name))
			}
		}
		mods = strings.Join(lines, "\n")
	}
	fields = append(fields, &discordgo.MessageEmbedField{Name: "Mods", Value: mods})

	return &discordgo.MessageEmbed{
		Title:  l.Name(),
		Color:  0x8B5A2B,
		Fields: fields,
	}
}
