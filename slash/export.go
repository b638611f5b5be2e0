package slash

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/keshon/slashkit/args"
)

// commandContexts marks every exported command as usable in guilds, bot DMs
// and private channels.
var commandContexts = []discordgo.InteractionContextType{
	discordgo.InteractionContextGuild,
	discordgo.InteractionContextBotDM,
	discordgo.InteractionContextPrivateChannel,
}

// Export realizes the command tree into application commands ready for bulk
// publication: top-level leaves become flat commands, groups of leaves become
// commands with subcommand options, and a third level becomes subcommand
// groups. Registration order is preserved.
//
// A tree the wire format cannot represent — mixed leaf and group siblings, or
// a group nested deeper than three levels — is a configuration error, fatal
// at export rather than at dispatch.
func (ex *Executor[S]) Export() ([]*discordgo.ApplicationCommand, error) {
	commands := make([]*discordgo.ApplicationCommand, 0, len(ex.root.order))
	for _, name := range ex.root.order {
		child := ex.root.children[name]
		if child.leaf() {
			commands = append(commands, &discordgo.ApplicationCommand{
				Name:        name,
				Description: child.entry.description,
				Type:        discordgo.ChatApplicationCommand,
				Contexts:    &commandContexts,
				Options:     schemaOptions(child.entry.options),
			})
			continue
		}
		opts, err := groupOptions(name, child, true)
		if err != nil {
			return nil, err
		}
		commands = append(commands, &discordgo.ApplicationCommand{
			Name:        name,
			Description: args.DefaultDescription,
			Type:        discordgo.ChatApplicationCommand,
			Contexts:    &commandContexts,
			Options:     opts,
		})
	}
	return commands, nil
}

// groupOptions renders a group's children as subcommand or subcommand-group
// options. allowGroups is false one level down, where another group would
// exceed the three-level limit.
func groupOptions[S any](path string, n *node[S], allowGroups bool) ([]*discordgo.ApplicationCommandOption, error) {
	var leaves, groups int
	opts := make([]*discordgo.ApplicationCommandOption, 0, len(n.order))
	for _, name := range n.order {
		child := n.children[name]
		if child.leaf() {
			leaves++
			opts = append(opts, &discordgo.ApplicationCommandOption{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        name,
				Description: child.entry.description,
				Options:     schemaOptions(child.entry.options),
			})
			continue
		}
		groups++
		if !allowGroups {
			return nil, fmt.Errorf("%w: %q nests deeper than three levels", args.ErrSchema, path+" "+name)
		}
		sub, err := groupOptions(path+" "+name, child, false)
		if err != nil {
			return nil, err
		}
		opts = append(opts, &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionSubCommandGroup,
			Name:        name,
			Description: args.DefaultDescription,
			Options:     sub,
		})
	}
	if leaves > 0 && groups > 0 {
		return nil, fmt.Errorf("%w: %q mixes commands and groups", args.ErrSchema, path)
	}
	return opts, nil
}

func schemaOptions(schemas []args.Schema) []*discordgo.ApplicationCommandOption {
	if len(schemas) == 0 {
		return nil
	}
	opts := make([]*discordgo.ApplicationCommandOption, len(schemas))
	for i, s := range schemas {
		opts[i] = s.Option()
	}
	return opts
}
