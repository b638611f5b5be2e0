package args

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// DefaultDescription is used when a command or option declares none; Discord
// rejects empty descriptions on chat commands.
const DefaultDescription = "No description provided"

var (
	charType        = reflect.TypeOf(Char(0))
	userIDType      = reflect.TypeOf(UserID(""))
	roleIDType      = reflect.TypeOf(RoleID(""))
	channelIDType   = reflect.TypeOf(ChannelID(""))
	mentionableType = reflect.TypeOf(MentionableID(""))

	choiceProviderType = reflect.TypeOf((*ChoiceProvider)(nil)).Elem()
	optionProviderType = reflect.TypeOf((*OptionProvider)(nil)).Elem()
)

// channelTypeNames maps channel_types tag entries onto discordgo channel
// types. Names follow the ChannelType constant suffixes.
var channelTypeNames = map[string]discordgo.ChannelType{
	"GuildText":          discordgo.ChannelTypeGuildText,
	"DM":                 discordgo.ChannelTypeDM,
	"GuildVoice":         discordgo.ChannelTypeGuildVoice,
	"GroupDM":            discordgo.ChannelTypeGroupDM,
	"GuildCategory":      discordgo.ChannelTypeGuildCategory,
	"GuildNews":          discordgo.ChannelTypeGuildNews,
	"GuildStore":         discordgo.ChannelTypeGuildStore,
	"GuildNewsThread":    discordgo.ChannelTypeGuildNewsThread,
	"GuildPublicThread":  discordgo.ChannelTypeGuildPublicThread,
	"GuildPrivateThread": discordgo.ChannelTypeGuildPrivateThread,
	"GuildStageVoice":    discordgo.ChannelTypeGuildStageVoice,
	"GuildForum":         discordgo.ChannelTypeGuildForum,
}

// Describe derives the ordered option schema list of a command struct from
// its exported fields. Field order is preserved. Pointer fields become
// non-required options of the element type. Fields tagged `option:"-"` are
// skipped. Struct tags:
//
//	option        option name (default: lower-cased field name)
//	description   option description
//	min_length    minimum string length
//	max_length    maximum string length
//	min_value     minimum numeric value
//	max_value     maximum numeric value
//	channel_types comma-separated channel type names, ChannelID fields only
//	autocomplete  "true" to enable autocomplete
//
// Tag mistakes, unsupported field types and malformed choice sets are
// reported as ErrSchema errors; they are programming errors meant to abort
// registration, never to surface at dispatch time.
func Describe(t reflect.Type) ([]Schema, error) {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: command type %s is not a struct", ErrSchema, t)
	}

	var schemas []Schema
	seen := make(map[string]struct{}, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || f.Tag.Get("option") == "-" {
			continue
		}
		s, err := fieldSchema(f)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[s.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate option name %q on %s", ErrSchema, s.Name, t)
		}
		seen[s.Name] = struct{}{}
		schemas = append(schemas, s)
	}
	return schemas, nil
}

func fieldSchema(f reflect.StructField) (Schema, error) {
	ft := f.Type
	required := true
	if ft.Kind() == reflect.Ptr {
		required = false
		ft = ft.Elem()
	}

	s, err := schemaForType(ft)
	if err != nil {
		return Schema{}, fmt.Errorf("field %s: %w", f.Name, err)
	}
	s.Required = required

	s.Name = f.Tag.Get("option")
	if s.Name == "" {
		s.Name = strings.ToLower(f.Name)
	}
	s.Description = f.Tag.Get("description")
	if s.Description == "" {
		s.Description = DefaultDescription
	}

	if err := applyConstraintTags(&s, f); err != nil {
		return Schema{}, fmt.Errorf("field %s: %w", f.Name, err)
	}
	return s, nil
}

func applyConstraintTags(s *Schema, f reflect.StructField) error {
	isString := s.Kind == discordgo.ApplicationCommandOptionString
	isNumeric := s.Kind == discordgo.ApplicationCommandOptionInteger ||
		s.Kind == discordgo.ApplicationCommandOptionNumber

	if tag, ok := f.Tag.Lookup("min_length"); ok {
		if !isString {
			return fmt.Errorf("%w: min_length on non-string option", ErrSchema)
		}
		n, err := strconv.Atoi(tag)
		if err != nil {
			return fmt.Errorf("%w: bad min_length %q", ErrSchema, tag)
		}
		s.MinLength = &n
	}
	if tag, ok := f.Tag.Lookup("max_length"); ok {
		if !isString {
			return fmt.Errorf("%w: max_length on non-string option", ErrSchema)
		}
		n, err := strconv.Atoi(tag)
		if err != nil {
			return fmt.Errorf("%w: bad max_length %q", ErrSchema, tag)
		}
		s.MaxLength = n
	}
	if tag, ok := f.Tag.Lookup("min_value"); ok {
		if !isNumeric {
			return fmt.Errorf("%w: min_value on non-numeric option", ErrSchema)
		}
		v, err := strconv.ParseFloat(tag, 64)
		if err != nil {
			return fmt.Errorf("%w: bad min_value %q", ErrSchema, tag)
		}
		s.MinValue = &v
	}
	if tag, ok := f.Tag.Lookup("max_value"); ok {
		if !isNumeric {
			return fmt.Errorf("%w: max_value on non-numeric option", ErrSchema)
		}
		v, err := strconv.ParseFloat(tag, 64)
		if err != nil {
			return fmt.Errorf("%w: bad max_value %q", ErrSchema, tag)
		}
		s.MaxValue = v
	}
	if tag, ok := f.Tag.Lookup("channel_types"); ok {
		if s.Kind != discordgo.ApplicationCommandOptionChannel {
			return fmt.Errorf("%w: channel_types on non-channel option", ErrSchema)
		}
		for _, name := range strings.Split(tag, ",") {
			ct, known := channelTypeNames[strings.TrimSpace(name)]
			if !known {
				return fmt.Errorf("%w: unknown channel type %q", ErrSchema, name)
			}
			s.ChannelTypes = append(s.ChannelTypes, ct)
		}
	}
	if tag, ok := f.Tag.Lookup("autocomplete"); ok {
		on, err := strconv.ParseBool(tag)
		if err != nil {
			return fmt.Errorf("%w: bad autocomplete %q", ErrSchema, tag)
		}
		if on && len(s.Choices) > 0 {
			return fmt.Errorf("%w: autocomplete and choices are mutually exclusive", ErrSchema)
		}
		s.Autocomplete = on
	}
	return nil
}

// schemaForType maps a field's element type onto its canonical Schema,
// independent of any instance.
func schemaForType(t reflect.Type) (Schema, error) {
	switch t {
	case charType:
		s := NewSchema(discordgo.ApplicationCommandOptionString)
		s.MaxLength = 1
		return s, nil
	case userIDType:
		return NewSchema(discordgo.ApplicationCommandOptionUser), nil
	case roleIDType:
		return NewSchema(discordgo.ApplicationCommandOptionRole), nil
	case channelIDType:
		return NewSchema(discordgo.ApplicationCommandOptionChannel), nil
	case mentionableType:
		return NewSchema(discordgo.ApplicationCommandOptionMentionable), nil
	}

	if t.Implements(choiceProviderType) {
		return choiceSchema(t)
	}
	if t.Implements(optionProviderType) {
		return reflect.Zero(t).Interface().(OptionProvider).ToOption(), nil
	}

	switch t.Kind() {
	case reflect.String:
		return NewSchema(discordgo.ApplicationCommandOptionString), nil
	case reflect.Bool:
		return NewSchema(discordgo.ApplicationCommandOptionBoolean), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return NewSchema(discordgo.ApplicationCommandOptionInteger), nil
	case reflect.Float32, reflect.Float64:
		return NewSchema(discordgo.ApplicationCommandOptionNumber), nil
	}
	return Schema{}, fmt.Errorf("%w: unsupported option type %s", ErrSchema, t)
}

// choiceSchema builds the schema of a ChoiceProvider type and validates the
// choice set: at most MaxChoices entries, underlying values unique, string
// underlying type.
func choiceSchema(t reflect.Type) (Schema, error) {
	if t.Kind() != reflect.String {
		return Schema{}, fmt.Errorf("%w: choice type %s must have a string underlying type", ErrSchema, t)
	}
	choices := reflect.Zero(t).Interface().(ChoiceProvider).Choices()
	if len(choices) > MaxChoices {
		return Schema{}, fmt.Errorf("%w: %s declares %d choices, maximum is %d", ErrSchema, t, len(choices), MaxChoices)
	}
	seen := make(map[string]struct{}, len(choices))
	for _, c := range choices {
		if _, dup := seen[c.Value]; dup {
			return Schema{}, fmt.Errorf("%w: duplicate choice value %q on %s", ErrSchema, c.Value, t)
		}
		seen[c.Value] = struct{}{}
	}
	s := NewSchema(discordgo.ApplicationCommandOptionString)
	s.Choices = choices
	return s, nil
}
