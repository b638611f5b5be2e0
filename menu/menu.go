// Package menu dispatches context-menu (message) application commands: the
// flat, schema-less sibling of the slash executor. One level of names, no
// typed options, the same ephemeral error envelope.
package menu

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"github.com/keshon/slashkit/slash"
)

// Handler runs one context-menu invocation. The target message is available
// on the invocation event.
type Handler[S any] func(ctx context.Context, inv *slash.Invocation, state S) (*discordgo.InteractionResponse, error)

// Commands holds registered context-menu commands by display name. Like the
// slash executor it is write-once: register everything at startup, dispatch
// read-only afterwards.
type Commands[S any] struct {
	handlers map[string]Handler[S]
	order    []string
}

// New returns an empty command set.
func New[S any]() *Commands[S] {
	return &Commands[S]{handlers: make(map[string]Handler[S])}
}

// Register binds a handler under a display name. Re-registering a name
// replaces the previous handler.
func (c *Commands[S]) Register(name string, h Handler[S]) {
	if _, exists := c.handlers[name]; !exists {
		c.order = append(c.order, name)
	}
	c.handlers[name] = h
}

// Dispatch invokes the handler registered under name. The bool is false when
// no such command exists. A handler failure becomes the ephemeral error
// envelope and never escapes.
func (c *Commands[S]) Dispatch(ctx context.Context, name string, inv *slash.Invocation, state S) (*discordgo.InteractionResponse, bool) {
	h, ok := c.handlers[name]
	if !ok {
		return nil, false
	}
	resp, err := h(ctx, inv, state)
	if err != nil {
		return slash.ErrorResponse(err), true
	}
	return resp, true
}

// Export returns message-command descriptors for every registered name, in
// registration order, for bulk publication alongside the slash export.
func (c *Commands[S]) Export() []*discordgo.ApplicationCommand {
	commands := make([]*discordgo.ApplicationCommand, 0, len(c.order))
	for _, name := range c.order {
		commands = append(commands, &discordgo.ApplicationCommand{
			Name: name,
			Type: discordgo.MessageApplicationCommand,
		})
	}
	return commands
}
