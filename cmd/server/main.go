package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/emberfell/internal/adapters/discord"
	"github.com/KirkDiggler/emberfell/internal/catalog"
	"github.com/KirkDiggler/emberfell/internal/clients/dnd5e"
	"github.com/KirkDiggler/emberfell/internal/config"
	monsterrepo "github.com/KirkDiggler/emberfell/internal/repositories/monsters"
	spellrepo "github.com/KirkDiggler/emberfell/internal/repositories/spells"
	"github.com/KirkDiggler/emberfell/internal/services/characters"
	"github.com/KirkDiggler/emberfell/internal/services/combat"
	"github.com/KirkDiggler/emberfell/internal/services/loot"
	"github.com/KirkDiggler/emberfell/internal/services/party"
	"github.com/KirkDiggler/emberfell/internal/services/room"
	"github.com/KirkDiggler/emberfell/internal/services/spellcast"
	"github.com/KirkDiggler/emberfell/internal/services/upkeep"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	spellRepo := buildSpellRepo(ctx, cfg)
	monsterRepo := buildMonsterRepo(ctx, cfg)

	charSvc := characters.NewService(&characters.ServiceConfig{})
	roomSvc := room.NewService(&room.ServiceConfig{})
	partySvc := party.NewService(&party.ServiceConfig{})
	combatSvc := combat.NewService(&combat.ServiceConfig{})

	roomSvc.CreateRoom(&room.Room{ID: "town_square", Name: "Town Square", Safe: true})
	roomSvc.CreateRoom(&room.Room{ID: "dark_cave", Name: "Dark Cave", MobCapacity: 8})
	roomSvc.CreateRoom(&room.Room{ID: "ashen_vale", Name: "Ashen Vale", MobCapacity: 12})

	var messenger spellcast.Messenger
	var session *discordgo.Session
	var handler *discord.Handler

	if cfg.DiscordToken != "" {
		session, err = discordgo.New("Bot " + cfg.DiscordToken)
		if err != nil {
			log.Fatalf("Failed to create Discord session: %v", err)
		}
		session.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentMessageContent
		messenger = discord.NewMessenger(session)
	} else {
		log.Println("No DISCORD_TOKEN set, messages go to the log")
		messenger = &logMessenger{}
	}

	lootSvc := loot.NewService(&loot.ServiceConfig{
		Rooms:     roomSvc,
		Parties:   partySvc,
		Messenger: messenger,
	})

	engine := spellcast.NewService(&spellcast.ServiceConfig{
		Characters:      charSvc,
		Spells:          spellRepo,
		Monsters:        monsterRepo,
		Rooms:           roomSvc,
		Parties:         partySvc,
		Combat:          combatSvc,
		Deaths:          lootSvc,
		Messenger:       messenger,
		FatiguePerRound: cfg.FatiguePerRound,
	})

	upkeepSvc := upkeep.NewService(&upkeep.ServiceConfig{
		Characters:    charSvc,
		Rooms:         roomSvc,
		Effects:       engine,
		RoundInterval: cfg.RoundInterval,
	})
	upkeepSvc.Start(ctx)

	if session != nil {
		handler = discord.NewHandler(&discord.HandlerConfig{
			Messenger:  messenger.(*discord.Messenger),
			Characters: charSvc,
			Engine:     engine,
		})
		handler.Register(session)

		if err := session.Open(); err != nil {
			log.Fatalf("Failed to open Discord session: %v", err)
		}
		defer session.Close()
		log.Println("Discord session open")
	}

	log.Println("Spell engine running, press Ctrl+C to stop")
	<-ctx.Done()
	log.Println("Shutting down")
}

// buildSpellRepo prefers Redis and falls back to an in-memory catalog
// seeded from the JSON file.
func buildSpellRepo(ctx context.Context, cfg *config.Config) spellrepo.Repository {
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			log.Fatalf("Failed to reach Redis at %s: %v", cfg.RedisAddr, err)
		}
		log.Printf("Spell catalog backed by Redis at %s", cfg.RedisAddr)
		return spellrepo.NewRedis(client)
	}

	repo := spellrepo.NewInMemory()
	loaded, err := catalog.LoadSpells(cfg.SpellDataPath)
	if err != nil {
		log.Fatalf("Failed to load spell catalog: %v", err)
	}
	for _, spell := range loaded {
		if err := repo.Save(ctx, spell); err != nil {
			log.Fatalf("Failed to seed spell %s: %v", spell.ID, err)
		}
	}
	log.Printf("Seeded %d spells from %s", len(loaded), cfg.SpellDataPath)
	return repo
}

// buildMonsterRepo seeds creature templates from a local catalog when
// one is configured, otherwise imports low-CR monsters from the 5e API.
func buildMonsterRepo(ctx context.Context, cfg *config.Config) monsterrepo.Repository {
	repo := monsterrepo.NewInMemory()

	if cfg.MonsterDataPath != "" {
		loaded, err := catalog.LoadTemplates(cfg.MonsterDataPath)
		if err != nil {
			log.Fatalf("Failed to load creature catalog: %v", err)
		}
		for _, tpl := range loaded {
			if err := repo.Save(ctx, tpl); err != nil {
				log.Fatalf("Failed to seed creature %s: %v", tpl.ID, err)
			}
		}
		log.Printf("Seeded %d creatures from %s", len(loaded), cfg.MonsterDataPath)
		return repo
	}

	client, err := dnd5e.New(&dnd5e.Config{})
	if err != nil {
		log.Fatalf("Failed to create 5e API client: %v", err)
	}
	templates, err := client.ListMonstersByCR(0, 5)
	if err != nil {
		log.Printf("5e API import failed, summon catalog starts empty: %v", err)
		return repo
	}
	for _, tpl := range templates {
		if err := repo.Save(ctx, tpl); err != nil {
			log.Printf("Failed to save creature %s: %v", tpl.ID, err)
		}
	}
	log.Printf("Imported %d creatures from the 5e API", len(templates))
	return repo
}

// logMessenger is the no-Discord fallback used in local development
type logMessenger struct{}

func (l *logMessenger) SendToCharacter(_ context.Context, characterID, text string) {
	log.Printf("[to %s] %s", characterID, text)
}

func (l *logMessenger) BroadcastToRoom(_ context.Context, roomID, text string, _ ...string) {
	log.Printf("[room %s] %s", roomID, text)
}
