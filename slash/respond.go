package slash

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

const errorEmbedColor = 0xAA0000

// ErrorResponse renders any dispatch failure as the uniform fallback
// envelope: a single ephemeral embed visible only to the invoker. The cause
// is flattened into one message string; no structured detail leaks out.
func ErrorResponse(err error) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
			Embeds: []*discordgo.MessageEmbed{{
				Description: fmt.Sprintf("An error occurred: %v", err),
				Color:       errorEmbedColor,
			}},
		},
	}
}
