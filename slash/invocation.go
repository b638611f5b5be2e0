package slash

import (
	"github.com/bwmarrin/discordgo"

	"github.com/keshon/slashkit/args"
)

// Unpack flattens a chat-command interaction payload into the dispatch
// inputs: the full space-joined command path and the leaf's raw option
// values. Discord nests subcommands as options of their parent, so the walk
// descends through subcommand and subcommand-group options, extending the
// path, until it reaches real values.
func Unpack(data discordgo.ApplicationCommandInteractionData) (string, []args.Option) {
	path := data.Name
	opts := data.Options

	for len(opts) == 1 {
		t := opts[0].Type
		if t != discordgo.ApplicationCommandOptionSubCommand &&
			t != discordgo.ApplicationCommandOptionSubCommandGroup {
			break
		}
		path += " " + opts[0].Name
		opts = opts[0].Options
	}

	values := make([]args.Option, 0, len(opts))
	for _, o := range opts {
		v, ok := args.FromInteractionOption(o)
		if !ok {
			continue
		}
		values = append(values, args.Option{Name: o.Name, Value: v})
	}
	return path, values
}
