package discord

import (
	"context"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	engErr "github.com/KirkDiggler/emberfell/internal/errors"
	"github.com/KirkDiggler/emberfell/internal/services/characters"
	"github.com/KirkDiggler/emberfell/internal/services/spellcast"
)

const defaultPrefix = "!"

// Handler routes Discord messages into the spell engine. A player's
// character ID is their Discord user ID, so commands need no login
// step.
type Handler struct {
	messenger  *Messenger
	characters characters.Service
	engine     spellcast.Service
	prefix     string
}

// HandlerConfig holds configuration for the handler
type HandlerConfig struct {
	Messenger  *Messenger         // Required
	Characters characters.Service // Required
	Engine     spellcast.Service  // Required

	Prefix string // Optional - defaults to "!"
}

// NewHandler creates a new command handler
func NewHandler(cfg *HandlerConfig) *Handler {
	if cfg == nil {
		panic("discord.NewHandler requires a config")
	}
	if cfg.Messenger == nil {
		panic("discord.NewHandler requires a messenger")
	}
	if cfg.Characters == nil {
		panic("discord.NewHandler requires a character service")
	}
	if cfg.Engine == nil {
		panic("discord.NewHandler requires a spellcast service")
	}

	h := &Handler{
		messenger:  cfg.Messenger,
		characters: cfg.Characters,
		engine:     cfg.Engine,
		prefix:     cfg.Prefix,
	}
	if h.prefix == "" {
		h.prefix = defaultPrefix
	}
	return h
}

// Register attaches the handler to a Discord session
func (h *Handler) Register(session *discordgo.Session) {
	session.AddHandler(h.onMessageCreate)
}

func (h *Handler) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	content := strings.TrimSpace(m.Content)
	if !strings.HasPrefix(content, h.prefix) {
		return
	}

	command, args, _ := strings.Cut(strings.TrimPrefix(content, h.prefix), " ")
	h.Dispatch(context.Background(), m.Author.ID, m.ChannelID, strings.ToLower(command), strings.TrimSpace(args))
}

// Dispatch runs a parsed command for a Discord user. Split out from the
// session callback so it can be driven directly in tests.
func (h *Handler) Dispatch(ctx context.Context, userID, channelID, command, args string) {
	ch, err := h.characters.Get(ctx, userID)
	if err != nil {
		if engErr.IsNotFound(err) {
			h.messenger.session.ChannelMessageSend(channelID, "You have no character here yet.")
			return
		}
		log.Printf("Character lookup failed for %s: %v", userID, err)
		return
	}

	h.messenger.BindCharacter(ch.ID, userID, channelID)

	switch command {
	case "cast":
		if err := h.engine.Cast(ctx, ch.ID, args); err != nil {
			log.Printf("Cast failed for %s: %v", ch.ID, err)
		}
	case "spells", "spellbook":
		book, err := h.engine.Spellbook(ctx, ch.ID)
		if err != nil {
			log.Printf("Spellbook failed for %s: %v", ch.ID, err)
			return
		}
		h.messenger.SendToCharacter(ctx, ch.ID, book)
	case "unlearn":
		if err := h.engine.Unlearn(ctx, ch.ID, args); err != nil {
			log.Printf("Unlearn failed for %s: %v", ch.ID, err)
		}
	}
}
