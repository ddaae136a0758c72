package utils

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func commandInteraction(opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{
				Name:    "gunsmith",
				Options: opts,
			},
		},
	}
}

func TestGetStringOption(t *testing.T) {
	i := commandInteraction(&discordgo.ApplicationCommandInteractionDataOption{
		Name: "weapons",
		Type: discordgo.ApplicationCommandOptionSubCommand,
		Options: []*discordgo.ApplicationCommandInteractionDataOption{
			{Name: "category", Type: discordgo.ApplicationCommandOptionString, Value: "Small Guns"},
		},
	})

	assert.Equal(t, "Small Guns", GetStringOption(i, "category"))
	assert.Equal(t, "", GetStringOption(i, "weapon"))
	assert.NotNil(t, GetCommandOption(i, "weapons"))
}

func TestGetStringOption_NoOptions(t *testing.T) {
	assert.Equal(t, "", GetStringOption(commandInteraction(), "category"))
}
