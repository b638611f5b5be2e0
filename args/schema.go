package args

import (
	"github.com/bwmarrin/discordgo"
)

// Choice is one entry of a closed option enumeration: the display name shown
// in the Discord client and the underlying value sent back on invocation.
type Choice struct {
	Name  string
	Value string
}

// MaxChoices is the most choices Discord accepts on a single option.
const MaxChoices = 25

// Schema describes one command option as exported to Discord: its name,
// description, wire kind and constraints. Constraints are advisory to the
// client; Decode does not enforce min/max values locally.
//
// Choices and Autocomplete are mutually exclusive: choices declare a closed
// enumeration, autocomplete an open one. Describe never sets both; manual
// construction is expected to follow the same rule.
type Schema struct {
	Name         string
	Description  string
	Kind         discordgo.ApplicationCommandOptionType
	Required     bool
	Choices      []Choice
	MinLength    *int
	MaxLength    int
	MinValue     *float64
	MaxValue     float64
	ChannelTypes []discordgo.ChannelType
	Autocomplete bool
}

// NewSchema returns a Schema of the given kind. Options are required unless
// marked otherwise; optionality is normally derived from pointer fields.
func NewSchema(kind discordgo.ApplicationCommandOptionType) Schema {
	return Schema{Kind: kind, Required: true}
}

// Option converts the Schema into discordgo's wire representation.
func (s Schema) Option() *discordgo.ApplicationCommandOption {
	opt := &discordgo.ApplicationCommandOption{
		Type:         s.Kind,
		Name:         s.Name,
		Description:  s.Description,
		Required:     s.Required,
		MinLength:    s.MinLength,
		MaxLength:    s.MaxLength,
		MinValue:     s.MinValue,
		MaxValue:     s.MaxValue,
		ChannelTypes: s.ChannelTypes,
		Autocomplete: s.Autocomplete,
	}
	for _, c := range s.Choices {
		opt.Choices = append(opt.Choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  c.Name,
			Value: c.Value,
		})
	}
	return opt
}

// OptionProvider lets a field type supply its own Schema instead of the
// built-in mapping. Implement on the value receiver; Describe calls it on the
// zero value.
type OptionProvider interface {
	ToOption() Schema
}

// ValueDecoder lets a field type decode itself from a raw Value. Implement on
// the pointer receiver; Decode calls it on the addressed field.
type ValueDecoder interface {
	DecodeValue(v Value) error
}

// ChoiceProvider marks a named string type as a closed enumeration. Describe
// exports a String option carrying the choice list; Decode matches the raw
// string against the choice values in order. Registration fails for more than
// MaxChoices entries or duplicate underlying values.
type ChoiceProvider interface {
	Choices() []Choice
}
