package gunsmith

import (
	"errors"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	gserr "github.com/KirkDiggler/gunsmith/internal/errors"
)

// userMessage turns a service error into something safe to show in Discord
func userMessage(err error) string {
	switch gserr.GetCode(err) {
	case gserr.CodeNotFound:
		return "❌ " + errorText(err)
	case gserr.CodeValidation, gserr.CodeInvalidArgument:
		return "⚠️ " + errorText(err)
	case gserr.CodeUnavailable:
		return "❌ The armory is unavailable right now. Please try again."
	default:
		return "❌ Something went wrong. Please try again."
	}
}

// errorText returns the innermost gunsmith error message without wrap context
func errorText(err error) string {
	var msg string
	for ; err != nil; err = errors.Unwrap(err) {
		if e, ok := err.(*gserr.Error); ok {
			msg = e.Message
		}
	}
	if msg == "" {
		return "Something went wrong."
	}
	return msg
}

func respond(s *discordgo.Session, i *discordgo.InteractionCreate, responseType discordgo.InteractionResponseType, data *discordgo.InteractionResponseData) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: responseType,
		Data: data,
	})
}

func respondWithError(s *discordgo.Session, i *discordgo.InteractionCreate, logger *zap.Logger, err error) error {
	logger.Warn("gunsmith interaction failed",
		zap.Error(err),
		zap.String("code", string(gserr.GetCode(err))),
		zap.Any("meta", gserr.GetMeta(err)),
	)

	return respond(s, i, discordgo.InteractionResponseChannelMessageWithSource, &discordgo.InteractionResponseData{
		Content: userMessage(err),
		Flags:   discordgo.MessageFlagsEphemeral,
	})
}
