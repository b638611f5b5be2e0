package notebot

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"

	"github.com/keshon/slashkit/args"
	"github.com/keshon/slashkit/menu"
	"github.com/keshon/slashkit/slash"
)

const EmbedColor = 0x4a90d9

// --- ping ---

type PingCommand struct{}

func (PingCommand) CommandName() string        { return "ping" }
func (PingCommand) CommandDescription() string { return "Check bot latency" }

func runPing(ctx context.Context, cmd PingCommand, inv *slash.Invocation, store *Store) (*discordgo.InteractionResponse, error) {
	latency := inv.Session.HeartbeatLatency().Milliseconds()
	return respond(fmt.Sprintf("🏓 Pong! %dms", latency)), nil
}

// --- note add / list / remove ---

type NoteAddCommand struct {
	Text   string `option:"text" description:"Note text" min_length:"1" max_length:"500"`
	Pinned *bool  `option:"pinned" description:"Pin the note"`
}

func (NoteAddCommand) CommandName() string        { return "note add" }
func (NoteAddCommand) CommandDescription() string { return "Save a note" }

func runNoteAdd(ctx context.Context, cmd NoteAddCommand, inv *slash.Invocation, store *Store) (*discordgo.InteractionResponse, error) {
	n := Note{
		ID:        uuid.NewString(),
		AuthorID:  invokerID(inv.Event),
		Text:      cmd.Text,
		Pinned:    cmd.Pinned != nil && *cmd.Pinned,
		CreatedAt: time.Now().UTC(),
	}
	if err := store.AddNote(inv.Event.GuildID, n); err != nil {
		return nil, fmt.Errorf("failed to save note: %w", err)
	}
	return respond(fmt.Sprintf("📝 Note saved (`%s`)", n.ID)), nil
}

type NoteListCommand struct {
	Limit  *int  `option:"limit" description:"Most recent notes to show" min_value:"1" max_value:"25"`
	Pinned *bool `option:"pinned" description:"Only pinned notes"`
}

func (NoteListCommand) CommandName() string        { return "note list" }
func (NoteListCommand) CommandDescription() string { return "List saved notes" }

func runNoteList(ctx context.Context, cmd NoteListCommand, inv *slash.Invocation, store *Store) (*discordgo.InteractionResponse, error) {
	notes, err := store.Notes(inv.Event.GuildID)
	if err != nil {
		return nil, fmt.Errorf("failed to load notes: %w", err)
	}
	if cmd.Pinned != nil && *cmd.Pinned {
		filtered := notes[:0:0]
		for _, n := range notes {
			if n.Pinned {
				filtered = append(filtered, n)
			}
		}
		notes = filtered
	}
	limit := 10
	if cmd.Limit != nil {
		limit = *cmd.Limit
	}
	if len(notes) > limit {
		notes = notes[len(notes)-limit:]
	}
	if len(notes) == 0 {
		return respond("No notes yet."), nil
	}

	var sb strings.Builder
	for _, n := range notes {
		pin := ""
		if n.Pinned {
			pin = "📌 "
		}
		fmt.Fprintf(&sb, "%s%s — `%s`\n", pin, n.Text, n.ID)
	}
	return respondEmbed(&discordgo.MessageEmbed{
		Title:       "Notes",
		Description: sb.String(),
		Color:       EmbedColor,
	}), nil
}

type NoteRemoveCommand struct {
	ID string `option:"id" description:"Note id"`
}

func (NoteRemoveCommand) CommandName() string        { return "note remove" }
func (NoteRemoveCommand) CommandDescription() string { return "Delete a note" }

func runNoteRemove(ctx context.Context, cmd NoteRemoveCommand, inv *slash.Invocation, store *Store) (*discordgo.InteractionResponse, error) {
	removed, err := store.RemoveNote(inv.Event.GuildID, cmd.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete note: %w", err)
	}
	if !removed {
		return nil, fmt.Errorf("no note with id `%s`", cmd.ID)
	}
	return respond("🗑️ Note deleted."), nil
}

// --- roll ---

// RollDie is the closed set of dice the roll command accepts.
type RollDie string

func (RollDie) Choices() []args.Choice {
	return []args.Choice{
		{Name: "d4", Value: "4"},
		{Name: "d6", Value: "6"},
		{Name: "d8", Value: "8"},
		{Name: "d10", Value: "10"},
		{Name: "d12", Value: "12"},
		{Name: "d20", Value: "20"},
	}
}

// Sides returns the number of faces. The value is one of the declared
// choices by the time a handler sees it.
func (d RollDie) Sides() int {
	n, _ := strconv.Atoi(string(d))
	return n
}

type RollCommand struct {
	Die   RollDie `option:"die" description:"Die to roll"`
	Count *int    `option:"count" description:"Number of dice" min_value:"1" max_value:"10"`
}

func (RollCommand) CommandName() string        { return "roll" }
func (RollCommand) CommandDescription() string { return "Roll some dice" }

func runRoll(ctx context.Context, cmd RollCommand, inv *slash.Invocation, store *Store) (*discordgo.InteractionResponse, error) {
	count := 1
	if cmd.Count != nil {
		count = *cmd.Count
	}
	total := 0
	rolls := make([]string, count)
	for i := range rolls {
		r := rand.IntN(cmd.Die.Sides()) + 1
		total += r
		rolls[i] = fmt.Sprintf("%d", r)
	}
	return respond(fmt.Sprintf("🎲 %dd%d → **%d** (%s)", count, cmd.Die.Sides(), total, strings.Join(rolls, ", "))), nil
}

// --- avatar ---

type AvatarCommand struct {
	User args.UserID `option:"user" description:"Whose avatar to show"`
}

func (AvatarCommand) CommandName() string        { return "avatar" }
func (AvatarCommand) CommandDescription() string { return "Show a user's avatar" }

func runAvatar(ctx context.Context, cmd AvatarCommand, inv *slash.Invocation, store *Store) (*discordgo.InteractionResponse, error) {
	user, err := inv.Session.User(string(cmd.User))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return respondEmbed(&discordgo.MessageEmbed{
		Title: user.Username,
		Image: &discordgo.MessageEmbedImage{URL: user.AvatarURL("512")},
		Color: EmbedColor,
	}), nil
}

// --- whois ---

type WhoisCommand struct {
	Target args.MentionableID `option:"target" description:"User or role to identify"`
}

func (WhoisCommand) CommandName() string        { return "whois" }
func (WhoisCommand) CommandDescription() string { return "Identify a user or role" }

func runWhois(ctx context.Context, cmd WhoisCommand, inv *slash.Invocation, store *Store) (*discordgo.InteractionResponse, error) {
	id := string(cmd.Target)
	if _, err := inv.Session.User(id); err == nil {
		return respond(fmt.Sprintf("<@%s> is a user.", id)), nil
	}
	return respond(fmt.Sprintf("<@&%s> is a role.", id)), nil
}

// --- mod slow set / clear (three-level path) ---

type ModSlowSetCommand struct {
	Channel args.ChannelID `option:"channel" description:"Text channel" channel_types:"GuildText"`
	Seconds int            `option:"seconds" description:"Slowmode delay in seconds" min_value:"1" max_value:"21600"`
}

func (ModSlowSetCommand) CommandName() string        { return "mod slow set" }
func (ModSlowSetCommand) CommandDescription() string { return "Enable slowmode on a channel" }

func runModSlowSet(ctx context.Context, cmd ModSlowSetCommand, inv *slash.Invocation, store *Store) (*discordgo.InteractionResponse, error) {
	if err := editSlowmode(inv.Session, string(cmd.Channel), cmd.Seconds); err != nil {
		return nil, err
	}
	return respond(fmt.Sprintf("🐢 Slowmode set to %ds on <#%s>", cmd.Seconds, cmd.Channel)), nil
}

type ModSlowClearCommand struct {
	Channel args.ChannelID `option:"channel" description:"Text channel" channel_types:"GuildText"`
}

func (ModSlowClearCommand) CommandName() string        { return "mod slow clear" }
func (ModSlowClearCommand) CommandDescription() string { return "Disable slowmode on a channel" }

func runModSlowClear(ctx context.Context, cmd ModSlowClearCommand, inv *slash.Invocation, store *Store) (*discordgo.InteractionResponse, error) {
	if err := editSlowmode(inv.Session, string(cmd.Channel), 0); err != nil {
		return nil, err
	}
	return respond(fmt.Sprintf("🏎️ Slowmode cleared on <#%s>", cmd.Channel)), nil
}

func editSlowmode(s *discordgo.Session, channelID string, seconds int) error {
	_, err := s.ChannelEditComplex(channelID, &discordgo.ChannelEdit{RateLimitPerUser: &seconds})
	if err != nil {
		return fmt.Errorf("failed to edit channel: %w", err)
	}
	return nil
}

// --- context menu: save a message as a note ---

func runSaveAsNote(ctx context.Context, inv *slash.Invocation, store *Store) (*discordgo.InteractionResponse, error) {
	data := inv.Event.ApplicationCommandData()
	msg, ok := data.Resolved.Messages[data.TargetID]
	if !ok || msg.Content == "" {
		return nil, fmt.Errorf("nothing to save from that message")
	}
	n := Note{
		ID:        uuid.NewString(),
		AuthorID:  invokerID(inv.Event),
		Text:      msg.Content,
		CreatedAt: time.Now().UTC(),
	}
	if err := store.AddNote(inv.Event.GuildID, n); err != nil {
		return nil, fmt.Errorf("failed to save note: %w", err)
	}
	return respond(fmt.Sprintf("📝 Message saved as note (`%s`)", n.ID)), nil
}

// RegisterAll binds the full command set. Called once at startup; any error
// is a schema mistake and fatal.
func RegisterAll(ex *slash.Executor[*Store], menus *menu.Commands[*Store]) error {
	if err := slash.Register(ex, runPing); err != nil {
		return err
	}
	if err := slash.Register(ex, runNoteAdd); err != nil {
		return err
	}
	if err := slash.Register(ex, runNoteList); err != nil {
		return err
	}
	if err := slash.Register(ex, runNoteRemove); err != nil {
		return err
	}
	if err := slash.Register(ex, runRoll); err != nil {
		return err
	}
	if err := slash.Register(ex, runAvatar); err != nil {
		return err
	}
	if err := slash.Register(ex, runWhois); err != nil {
		return err
	}
	if err := slash.Register(ex, runModSlowSet); err != nil {
		return err
	}
	if err := slash.Register(ex, runModSlowClear); err != nil {
		return err
	}
	menus.Register("Save as Note", runSaveAsNote)
	return nil
}

// --- response helpers ---

func respond(content string) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: content},
	}
}

func respondEmbed(embed *discordgo.MessageEmbed) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Embeds: []*discordgo.MessageEmbed{embed}},
	}
}

func invokerID(e *discordgo.InteractionCreate) string {
	if e.Member != nil && e.Member.User != nil {
		return e.Member.User.ID
	}
	if e.User != nil {
		return e.User.ID
	}
	return ""
}
