package menu

import (
	"context"
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"

	"github.com/keshon/slashkit/slash"
)

type testState struct{ quoted string }

func TestDispatch_RegisteredCommand(t *testing.T) {
	c := New[*testState]()
	c.Register("Quote", func(ctx context.Context, inv *slash.Invocation, state *testState) (*discordgo.InteractionResponse, error) {
		state.quoted = "something"
		return &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{Content: "quoted"},
		}, nil
	})

	state := &testState{}
	resp, ok := c.Dispatch(context.Background(), "Quote", &slash.Invocation{}, state)
	require.True(t, ok)
	require.Equal(t, "quoted", resp.Data.Content)
	require.Equal(t, "something", state.quoted)
}

func TestDispatch_UnknownCommand(t *testing.T) {
	c := New[*testState]()
	_, ok := c.Dispatch(context.Background(), "Nope", &slash.Invocation{}, &testState{})
	require.False(t, ok)
}

func TestDispatch_HandlerErrorYieldsEnvelope(t *testing.T) {
	c := New[*testState]()
	c.Register("Quote", func(ctx context.Context, inv *slash.Invocation, state *testState) (*discordgo.InteractionResponse, error) {
		return nil, errors.New("no message")
	})

	resp, ok := c.Dispatch(context.Background(), "Quote", &slash.Invocation{}, &testState{})
	require.True(t, ok)
	require.Equal(t, discordgo.MessageFlagsEphemeral, resp.Data.Flags)
	require.Len(t, resp.Data.Embeds, 1)
	require.Contains(t, resp.Data.Embeds[0].Description, "An error occurred")
}

func TestRegister_LastRegistrationWins(t *testing.T) {
	c := New[*testState]()
	c.Register("Quote", func(ctx context.Context, inv *slash.Invocation, state *testState) (*discordgo.InteractionResponse, error) {
		return &discordgo.InteractionResponse{Data: &discordgo.InteractionResponseData{Content: "first"}}, nil
	})
	c.Register("Quote", func(ctx context.Context, inv *slash.Invocation, state *testState) (*discordgo.InteractionResponse, error) {
		return &discordgo.InteractionResponse{Data: &discordgo.InteractionResponseData{Content: "second"}}, nil
	})

	resp, ok := c.Dispatch(context.Background(), "Quote", &slash.Invocation{}, &testState{})
	require.True(t, ok)
	require.Equal(t, "second", resp.Data.Content)

	require.Len(t, c.Export(), 1)
}

func TestExport_MessageCommands(t *testing.T) {
	c := New[*testState]()
	c.Register("Quote", nil)
	c.Register("Save as Note", nil)

	commands := c.Export()
	require.Len(t, commands, 2)
	require.Equal(t, "Quote", commands[0].Name)
	require.Equal(t, "Save as Note", commands[1].Name)
	for _, cmd := range commands {
		require.Equal(t, discordgo.MessageApplicationCommand, cmd.Type)
	}
}
