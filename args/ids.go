package args

// Char is a single-character option. It is exported as a String option with
// max length 1 and decodes to the first rune of the delivered string; an
// empty string fails with ErrInvalidType.
type Char rune

// UserID is a user snowflake. Decodes only from a User value.
type UserID string

// RoleID is a role snowflake. Decodes only from a Role value.
type RoleID string

// ChannelID is a channel snowflake. Decodes only from a Channel value.
// Channel-type filters are declared with the channel_types struct tag.
type ChannelID string

// MentionableID is a snowflake that may denote either a user or a role.
// Decodes only from a Mentionable value; which of the two it names is for the
// handler to resolve.
type MentionableID string
