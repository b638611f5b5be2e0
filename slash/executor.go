package slash

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/keshon/slashkit/args"
)

// maxDepth is the deepest command path Discord can represent:
// command / subcommand group / subcommand.
const maxDepth = 3

// Command supplies a command struct's identity. The name is the full command
// path with segments joined by spaces ("note add"); implement on the value
// receiver, both methods are called on the zero value at registration.
type Command interface {
	CommandName() string
	CommandDescription() string
}

// Invocation is the per-interaction context passed through to handlers
// unmodified. Handlers answer by returning a response; the session is there
// for followup work.
type Invocation struct {
	Session *discordgo.Session
	Event   *discordgo.InteractionCreate
}

// handlerFunc is the uniform type-erased handler contract every registered
// command is wrapped into.
type handlerFunc[S any] func(ctx context.Context, inv *Invocation, opts map[string]args.Value, state S) (*discordgo.InteractionResponse, error)

// Executor registers typed commands and dispatches interactions to them. It
// is generic over the host's shared state, handed to every handler by value.
//
// Registration is a startup concern: call Register for every command before
// serving, then treat the Executor as read-only. Dispatch never mutates it,
// so concurrent dispatches need no locking.
type Executor[S any] struct {
	root *node[S]
}

// New returns an empty Executor.
func New[S any]() *Executor[S] {
	return &Executor[S]{root: newGroup[S]()}
}

// Register binds a typed handler for command C. The command's name,
// description and option schemas are derived from C's Command methods and its
// struct fields; the handler is wrapped behind the uniform dispatch contract
// (decode the raw values into a fresh C, then invoke).
//
// Errors are schema configuration mistakes — bad tags, bad choice sets, a
// path deeper than three segments — and should abort startup.
func Register[S any, C Command](ex *Executor[S], handler func(ctx context.Context, cmd C, inv *Invocation, state S) (*discordgo.InteractionResponse, error)) error {
	var proto C
	t := reflect.TypeOf(&proto).Elem()
	if t.Kind() != reflect.Struct {
		return fmt.Errorf("%w: command type %s must be a struct", args.ErrSchema, t)
	}

	name := proto.CommandName()
	path := strings.Split(name, " ")
	if name == "" || len(path) > maxDepth {
		return fmt.Errorf("%w: bad command path %q", args.ErrSchema, name)
	}
	for _, seg := range path {
		if seg == "" {
			return fmt.Errorf("%w: bad command path %q", args.ErrSchema, name)
		}
	}

	options, err := args.Describe(t)
	if err != nil {
		return fmt.Errorf("command %q: %w", name, err)
	}

	erased := func(ctx context.Context, inv *Invocation, opts map[string]args.Value, state S) (*discordgo.InteractionResponse, error) {
		var cmd C
		if err := args.Decode(&cmd, opts); err != nil {
			return nil, err
		}
		return handler(ctx, cmd, inv, state)
	}

	return ex.root.insert(path, &entry[S]{
		handler:     erased,
		options:     options,
		description: proto.CommandDescription(),
	})
}

// Dispatch routes one invocation: look up the leaf at path (segments joined
// by spaces), decode options, invoke the handler exactly once. The returned
// bool is false when no command is bound at the path — a normal empty result,
// the caller decides how to surface an unknown command.
//
// Any decode or handler failure is converted into the ephemeral error
// envelope; a failed invocation never partially invokes the handler and never
// escapes Dispatch.
func (ex *Executor[S]) Dispatch(ctx context.Context, path string, inv *Invocation, options []args.Option, state S) (*discordgo.InteractionResponse, bool) {
	e := ex.root.get(strings.Split(path, " "))
	if e == nil {
		return nil, false
	}

	opts := make(map[string]args.Value, len(options))
	for _, o := range options {
		opts[o.Name] = o.Value
	}

	resp, err := e.handler(ctx, inv, opts, state)
	if err != nil {
		return ErrorResponse(err), true
	}
	return resp, true
}
