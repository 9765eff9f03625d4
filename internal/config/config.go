package config

import (
	"os"
	"strconv"
	"time"

	engErr "github.com/KirkDiggler/emberfell/internal/errors"
)

// Config holds the runtime settings for the engine
type Config struct {
	// DiscordToken authenticates the bot session
	DiscordToken string

	// RedisAddr is the spell catalog store. Empty means the catalog
	// stays in memory, seeded from SpellDataPath.
	RedisAddr string

	// SpellDataPath points at the JSON spell catalog used for seeding
	SpellDataPath string

	// MonsterDataPath points at the JSON creature template catalog.
	// Empty means templates are pulled from the 5e API instead.
	MonsterDataPath string

	// RoundInterval is how often upkeep rounds fire
	RoundInterval time.Duration

	// FatiguePerRound converts spell cooldown rounds into cast fatigue
	FatiguePerRound time.Duration
}

const (
	defaultSpellDataPath   = "data/spells.json"
	defaultRoundInterval   = 10 * time.Second
	defaultFatiguePerRound = 10 * time.Second
)

// Load reads configuration from the environment
func Load() (*Config, error) {
	cfg := &Config{
		DiscordToken:    os.Getenv("DISCORD_TOKEN"),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		SpellDataPath:   envOr("SPELL_DATA_PATH", defaultSpellDataPath),
		MonsterDataPath: os.Getenv("MONSTER_DATA_PATH"),
		RoundInterval:   defaultRoundInterval,
		FatiguePerRound: defaultFatiguePerRound,
	}

	if v := os.Getenv("ROUND_INTERVAL_SECONDS"); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil || seconds < 1 {
			return nil, engErr.InvalidArgument("ROUND_INTERVAL_SECONDS must be a positive integer")
		}
		cfg.RoundInterval = time.Duration(seconds) * time.Second
	}

	if v := os.Getenv("FATIGUE_SECONDS"); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil || seconds < 1 {
			return nil, engErr.InvalidArgument("FATIGUE_SECONDS must be a positive integer")
		}
		cfg.FatiguePerRound = time.Duration(seconds) * time.Second
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
