package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// InteractionFunc is the shape discordgo expects for interaction callbacks
type InteractionFunc func(*discordgo.Session, *discordgo.InteractionCreate)

// RecoverMiddleware wraps handler functions to recover from panics
func RecoverMiddleware(logger *zap.Logger, handlerName string, handler InteractionFunc) InteractionFunc {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic in interaction handler",
					zap.String("handler", handlerName),
					zap.Any("panic", r),
					zap.Stack("stack"),
				)

				// Try to respond to the user if possible
				respondWithError(logger, s, i, fmt.Sprintf("An unexpected error occurred: %v", r))
			}
		}()

		handler(s, i)
	}
}

// respondWithError attempts to send an error message to the user
func respondWithError(logger *zap.Logger, s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	// Try different response methods based on interaction state
	responses := []func() error{
		// Try responding if not yet responded
		func() error {
			return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
				Type: discordgo.InteractionResponseChannelMessageWithSource,
				Data: &discordgo.InteractionResponseData{
					Content: fmt.Sprintf("❌ %s", message),
					Flags:   discordgo.MessageFlagsEphemeral,
				},
			})
		},
		// Try editing if already responded
		func() error {
			_, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
				Content: &message,
			})
			return err
		},
		// Try followup if other methods fail
		func() error {
			_, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
				Content: fmt.Sprintf("❌ %s", message),
				Flags:   discordgo.MessageFlagsEphemeral,
			})
			return err
		},
	}

	for _, respond := range responses {
		if err := respond(); err == nil {
			return
		}
	}

	// If all methods fail, at least we logged the error
	logger.Error("failed to send error response to user", zap.String("message", message))
}
