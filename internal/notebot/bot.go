package notebot

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/keshon/slashkit/menu"
	"github.com/keshon/slashkit/slash"
)

// Bot wires the slash executor, the context-menu commands and the note store
// to a Discord session.
type Bot struct {
	dg    *discordgo.Session
	cfg   *Config
	store *Store
	slash *slash.Executor[*Store]
	menus *menu.Commands[*Store]
}

// NewBot builds the bot and registers the full command set. Registration
// errors are schema mistakes and abort startup.
func NewBot(cfg *Config, store *Store) (*Bot, error) {
	b := &Bot{
		cfg:   cfg,
		store: store,
		slash: slash.New[*Store](),
		menus: menu.New[*Store](),
	}
	if err := RegisterAll(b.slash, b.menus); err != nil {
		return nil, fmt.Errorf("command registration failed: %w", err)
	}
	return b, nil
}

// Run connects to Discord and serves until ctx is done.
func (b *Bot) Run(ctx context.Context) error {
	dg, err := discordgo.New("Bot " + b.cfg.DiscordToken)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	b.dg = dg
	dg.Identify.Intents = discordgo.IntentsGuilds

	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onGuildCreate)
	dg.AddHandler(b.onInteractionCreate)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer dg.Close()

	<-ctx.Done()
	log.Println("[INFO] Shutdown signal received. Cleaning up...")
	return nil
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	if !b.cfg.SyncCommands {
		log.Println("[INFO] Command sync skipped")
	} else {
		for _, g := range r.Guilds {
			if err := b.publishCommands(context.Background(), g.ID); err != nil {
				log.Printf("[ERR] Failed to sync commands for guild %s: %v", g.ID, err)
			}
		}
	}
	log.Printf("[INFO] ✅ Bot %v is running.", s.State.User.Username)
}

func (b *Bot) onGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	log.Printf("[INFO] Bot added to guild: %s (%s)", g.Guild.ID, g.Guild.Name)
	if err := b.publishCommands(context.Background(), g.Guild.ID); err != nil {
		log.Printf("[ERR] Failed to sync commands for new guild %s: %v", g.Guild.ID, err)
	}
}

// onInteractionCreate routes application-command interactions through the
// executors. Unknown commands are logged and left unanswered; Discord shows
// its own failure notice for those.
func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	data := i.ApplicationCommandData()
	inv := &slash.Invocation{Session: s, Event: i}
	ctx := context.Background()

	var resp *discordgo.InteractionResponse
	var ok bool
	if data.CommandType == discordgo.MessageApplicationCommand {
		resp, ok = b.menus.Dispatch(ctx, data.Name, inv, b.store)
	} else {
		path, options := slash.Unpack(data)
		resp, ok = b.slash.Dispatch(ctx, path, inv, options, b.store)
	}
	if !ok {
		log.Printf("[WARN] Unknown command: %s", data.Name)
		return
	}
	if err := s.InteractionRespond(i.Interaction, resp); err != nil {
		log.Println("[ERR] Failed to respond to interaction:", err)
	}
}
