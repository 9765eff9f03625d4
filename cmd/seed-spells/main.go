package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/emberfell/internal/catalog"
	"github.com/KirkDiggler/emberfell/internal/config"
	spellrepo "github.com/KirkDiggler/emberfell/internal/repositories/spells"
)

// Seeds the Redis spell catalog from the JSON data file. Safe to rerun;
// existing spells are overwritten in place.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.RedisAddr == "" {
		log.Fatal("REDIS_ADDR is required to seed the catalog")
	}

	ctx := context.Background()
	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to reach Redis at %s: %v", cfg.RedisAddr, err)
	}

	loaded, err := catalog.LoadSpells(cfg.SpellDataPath)
	if err != nil {
		log.Fatalf("Failed to load spell catalog: %v", err)
	}

	repo := spellrepo.NewRedis(client)
	for _, spell := range loaded {
		if err := repo.Save(ctx, spell); err != nil {
			log.Fatalf("Failed to seed spell %s: %v", spell.ID, err)
		}
		log.Printf("Seeded %s", spell.ID)
	}
	log.Printf("Done, %d spells in the catalog", len(loaded))
}
