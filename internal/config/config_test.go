package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"DISCORD_TOKEN", "REDIS_ADDR", "SPELL_DATA_PATH",
		"ROUND_INTERVAL_SECONDS", "FATIGUE_SECONDS",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "data/spells.json", cfg.SpellDataPath)
	assert.Equal(t, 10*time.Second, cfg.RoundInterval)
	assert.Equal(t, 10*time.Second, cfg.FatiguePerRound)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token-123")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("SPELL_DATA_PATH", "/srv/spells.json")
	t.Setenv("ROUND_INTERVAL_SECONDS", "6")
	t.Setenv("FATIGUE_SECONDS", "4")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "token-123", cfg.DiscordToken)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "/srv/spells.json", cfg.SpellDataPath)
	assert.Equal(t, 6*time.Second, cfg.RoundInterval)
	assert.Equal(t, 4*time.Second, cfg.FatiguePerRound)
}

func TestLoad_BadValues(t *testing.T) {
	t.Setenv("ROUND_INTERVAL_SECONDS", "soon")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("ROUND_INTERVAL_SECONDS", "0")
	_, err = Load()
	assert.Error(t, err)
}
