// Package args provides the typed option model for slash commands: the tagged
// Value carried by an interaction, the Schema describing one option on the
// wire, and the reflection-based bridge between command structs and both
// (Describe derives schemas from struct fields, Decode fills struct fields
// from raw values). How commands are registered and dispatched lives in the
// slash package.
package args

import (
	"errors"

	"github.com/bwmarrin/discordgo"
)

// ErrInvalidType is returned when a Value's kind does not match what a field
// expects, or a required value is absent, or a choice value matches no
// declared choice.
var ErrInvalidType = errors.New("invalid type for command option")

// ErrSchema marks a schema configuration mistake detected at registration or
// export time (bad tags, too many choices, malformed command paths). These are
// programming errors and are expected to abort startup.
var ErrSchema = errors.New("invalid command schema")

// ValueKind tags a Value. Exactly one kind is set per Value and it alone
// determines which decoders accept it.
type ValueKind int

const (
	KindNone ValueKind = iota
	KindString
	KindNumber
	KindBoolean
	KindUser
	KindRole
	KindChannel
	KindMentionable
	KindSubcommandGroup
)

func (k ValueKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindUser:
		return "user"
	case KindRole:
		return "role"
	case KindChannel:
		return "channel"
	case KindMentionable:
		return "mentionable"
	case KindSubcommandGroup:
		return "subcommand group"
	}
	return "none"
}

// Value is one raw option value delivered by an interaction. Identifier
// payloads are Discord snowflakes carried as strings, matching discordgo.
type Value struct {
	kind ValueKind
	str  string
	num  float64
	b    bool
}

// Option is one (name, value) pair from an interaction payload.
type Option struct {
	Name  string
	Value Value
}

func String(s string) Value  { return Value{kind: KindString, str: s} }
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }
func Boolean(b bool) Value   { return Value{kind: KindBoolean, b: b} }

func User(id string) Value        { return Value{kind: KindUser, str: id} }
func Role(id string) Value        { return Value{kind: KindRole, str: id} }
func Channel(id string) Value     { return Value{kind: KindChannel, str: id} }
func Mentionable(id string) Value { return Value{kind: KindMentionable, str: id} }

// SubcommandGroup marks a nested path segment in an interaction payload.
// It is never a decodable leaf value.
func SubcommandGroup(name string) Value {
	return Value{kind: KindSubcommandGroup, str: name}
}

// Kind reports which variant this Value holds.
func (v Value) Kind() ValueKind { return v.kind }

// AsString returns the string payload when the Value holds a String.
func (v Value) AsString() (string, bool) {
	return v.str, v.kind == KindString
}

// AsNumber returns the numeric payload when the Value holds a Number.
func (v Value) AsNumber() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// AsBool returns the boolean payload when the Value holds a Boolean.
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBoolean
}

// AsUser returns the user snowflake when the Value holds a User.
func (v Value) AsUser() (string, bool) {
	return v.str, v.kind == KindUser
}

// AsRole returns the role snowflake when the Value holds a Role.
func (v Value) AsRole() (string, bool) {
	return v.str, v.kind == KindRole
}

// AsChannel returns the channel snowflake when the Value holds a Channel.
func (v Value) AsChannel() (string, bool) {
	return v.str, v.kind == KindChannel
}

// AsMentionable returns the snowflake when the Value holds a Mentionable.
// The id may denote either a user or a role; no further disambiguation is done.
func (v Value) AsMentionable() (string, bool) {
	return v.str, v.kind == KindMentionable
}

// FromInteractionOption converts one discordgo interaction option into a
// Value. Integer and Number options both carry the Number kind; Discord
// delivers both as float64. Returns false for option types that carry no
// usable payload.
func FromInteractionOption(opt *discordgo.ApplicationCommandInteractionDataOption) (Value, bool) {
	switch opt.Type {
	case discordgo.ApplicationCommandOptionString:
		if s, ok := opt.Value.(string); ok {
			return String(s), true
		}
	case discordgo.ApplicationCommandOptionInteger, discordgo.ApplicationCommandOptionNumber:
		if f, ok := opt.Value.(float64); ok {
			return Number(f), true
		}
	case discordgo.ApplicationCommandOptionBoolean:
		if b, ok := opt.Value.(bool); ok {
			return Boolean(b), true
		}
	case discordgo.ApplicationCommandOptionUser:
		if s, ok := opt.Value.(string); ok {
			return User(s), true
		}
	case discordgo.ApplicationCommandOptionRole:
		if s, ok := opt.Value.(string); ok {
			return Role(s), true
		}
	case discordgo.ApplicationCommandOptionChannel:
		if s, ok := opt.Value.(string); ok {
			return Channel(s), true
		}
	case discordgo.ApplicationCommandOptionMentionable:
		if s, ok := opt.Value.(string); ok {
			return Mentionable(s), true
		}
	case discordgo.ApplicationCommandOptionSubCommand, discordgo.ApplicationCommandOptionSubCommandGroup:
		return SubcommandGroup(opt.Name), true
	}
	return Value{}, false
}
