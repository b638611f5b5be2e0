package args

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecode_Primitives(t *testing.T) {
	type cmd struct {
		Text  string  `option:"text"`
		Count int     `option:"count"`
		Size  uint16  `option:"size"`
		Ratio float64 `option:"ratio"`
		Loud  bool    `option:"loud"`
	}
	var c cmd
	err := Decode(&c, map[string]Value{
		"text":  String("hello"),
		"count": Number(-3),
		"size":  Number(42),
		"ratio": Number(0.5),
		"loud":  Boolean(true),
	})
	require.NoError(t, err)
	require.Equal(t, "hello", c.Text)
	require.Equal(t, -3, c.Count)
	require.Equal(t, uint16(42), c.Size)
	require.Equal(t, 0.5, c.Ratio)
	require.True(t, c.Loud)
}

func TestDecode_KindMismatch(t *testing.T) {
	cases := []struct {
		name string
		opts map[string]Value
	}{
		{"string gets number", map[string]Value{"text": Number(1)}},
		{"int gets string", map[string]Value{"count": String("1")}},
		{"bool gets string", map[string]Value{"loud": String("true")}},
	}
	type cmd struct {
		Text  *string `option:"text"`
		Count *int    `option:"count"`
		Loud  *bool   `option:"loud"`
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var c cmd
			require.ErrorIs(t, Decode(&c, tc.opts), ErrInvalidType)
		})
	}
}

func TestDecode_RequiredAbsent(t *testing.T) {
	type cmd struct {
		Text string `option:"text"`
	}
	var c cmd
	err := Decode(&c, map[string]Value{})
	require.ErrorIs(t, err, ErrInvalidType)
}

func TestDecode_OptionalAbsentAndPresent(t *testing.T) {
	type cmd struct {
		Count *int `option:"count"`
	}
	var absent cmd
	require.NoError(t, Decode(&absent, map[string]Value{}))
	require.Nil(t, absent.Count)

	var present cmd
	require.NoError(t, Decode(&present, map[string]Value{"count": Number(7)}))
	require.NotNil(t, present.Count)
	require.Equal(t, 7, *present.Count)
}

func TestDecode_Char(t *testing.T) {
	type cmd struct {
		Initial Char `option:"initial"`
	}
	var c cmd
	require.NoError(t, Decode(&c, map[string]Value{"initial": String("ab")}))
	require.Equal(t, Char('a'), c.Initial)

	var empty cmd
	require.ErrorIs(t, Decode(&empty, map[string]Value{"initial": String("")}), ErrInvalidType)

	var wrong cmd
	require.ErrorIs(t, Decode(&wrong, map[string]Value{"initial": Number(1)}), ErrInvalidType)
}

func TestDecode_Identifiers(t *testing.T) {
	type cmd struct {
		User    UserID        `option:"user"`
		Role    RoleID        `option:"role"`
		Channel ChannelID     `option:"channel"`
		Whom    MentionableID `option:"whom"`
	}
	var c cmd
	err := Decode(&c, map[string]Value{
		"user":    User("111"),
		"role":    Role("222"),
		"channel": Channel("333"),
		"whom":    Mentionable("444"),
	})
	require.NoError(t, err)
	require.Equal(t, UserID("111"), c.User)
	require.Equal(t, RoleID("222"), c.Role)
	require.Equal(t, ChannelID("333"), c.Channel)
	require.Equal(t, MentionableID("444"), c.Whom)
}

func TestDecode_IdentifierTagsDoNotCross(t *testing.T) {
	type userCmd struct {
		User UserID `option:"id"`
	}
	var u userCmd
	require.ErrorIs(t, Decode(&u, map[string]Value{"id": Role("222")}), ErrInvalidType)

	// Mentionable accepts neither a plain User nor Role value; only its own tag.
	type whomCmd struct {
		Whom MentionableID `option:"id"`
	}
	var w whomCmd
	require.ErrorIs(t, Decode(&w, map[string]Value{"id": User("111")}), ErrInvalidType)
}

func TestDecode_Choices(t *testing.T) {
	type cmd struct {
		Color color `option:"color"`
	}
	var c cmd
	require.NoError(t, Decode(&c, map[string]Value{"color": String("green")}))
	require.Equal(t, color("green"), c.Color)

	var miss cmd
	require.ErrorIs(t, Decode(&miss, map[string]Value{"color": String("mauve")}), ErrInvalidType)

	var wrong cmd
	require.ErrorIs(t, Decode(&wrong, map[string]Value{"color": Number(2)}), ErrInvalidType)
}

func TestDecode_NumericBoundsNotEnforced(t *testing.T) {
	// Declared min/max values are advisory to Discord, not checked locally.
	type cmd struct {
		Count int `option:"count" min_value:"1" max_value:"10"`
	}
	var c cmd
	require.NoError(t, Decode(&c, map[string]Value{"count": Number(9000)}))
	require.Equal(t, 9000, c.Count)
}

func TestDecode_BadTarget(t *testing.T) {
	type cmd struct{}
	require.ErrorIs(t, Decode(cmd{}, nil), ErrSchema)
	var nilPtr *cmd
	require.ErrorIs(t, Decode(nilPtr, nil), ErrSchema)
}

// --- custom decoder ---

type upperString string

func (u *upperString) DecodeValue(v Value) error {
	s, ok := v.AsString()
	if !ok {
		return fmt.Errorf("expected string: %w", ErrInvalidType)
	}
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		out = append(out, r)
	}
	*u = upperString(out)
	return nil
}

func TestDecode_ValueDecoder(t *testing.T) {
	type cmd struct {
		Shout upperString `option:"shout"`
	}
	var c cmd
	require.NoError(t, Decode(&c, map[string]Value{"shout": String("hey")}))
	require.Equal(t, upperString("HEY"), c.Shout)
}
