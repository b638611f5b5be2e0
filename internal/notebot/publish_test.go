package notebot

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"
)

func TestHashCommand_Deterministic(t *testing.T) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "note",
		Description: "Notes",
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "add",
				Description: "Save a note",
				Options: []*discordgo.ApplicationCommandOption{
					{Type: discordgo.ApplicationCommandOptionString, Name: "text", Description: "Note text", Required: true},
				},
			},
		},
	}
	require.Equal(t, hashCommand(cmd), hashCommand(cmd))
}

func TestHashCommand_ChangesWithDefinition(t *testing.T) {
	a := &discordgo.ApplicationCommand{Name: "ping", Description: "Check latency"}
	b := &discordgo.ApplicationCommand{Name: "ping", Description: "Check latency (v2)"}
	require.NotEqual(t, hashCommand(a), hashCommand(b))

	withChoices := &discordgo.ApplicationCommand{
		Name:        "roll",
		Description: "Roll",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "die",
				Description: "Die",
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "d6", Value: "6"},
				},
			},
		},
	}
	withoutChoices := &discordgo.ApplicationCommand{
		Name:        "roll",
		Description: "Roll",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "die",
				Description: "Die",
			},
		},
	}
	require.NotEqual(t, hashCommand(withChoices), hashCommand(withoutChoices))
}

func TestRegisterAll_ExportsCleanly(t *testing.T) {
	bot, err := NewBot(&Config{DiscordToken: "x"}, nil)
	require.NoError(t, err)

	commands, err := bot.slash.Export()
	require.NoError(t, err)

	names := make(map[string]bool, len(commands))
	for _, c := range commands {
		names[c.Name] = true
	}
	require.True(t, names["ping"])
	require.True(t, names["note"])
	require.True(t, names["roll"])
	require.True(t, names["mod"])

	require.Len(t, bot.menus.Export(), 1)
}
