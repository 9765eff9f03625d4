package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/emberfell/internal/domain/spells"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSpells(t *testing.T) {
	t.Run("parses a valid catalog", func(t *testing.T) {
		path := writeFile(t, "spells.json", `[
			{"id": "fireball", "name": "Fireball", "family": "damage", "mana_cost": 10, "level": 3, "damage": "2d6"}
		]`)

		got, err := LoadSpells(path)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "fireball", got[0].ID)
		assert.Equal(t, spells.FamilyDamage, got[0].Family)
		assert.Equal(t, "2d6", got[0].Damage)
	})

	t.Run("aliases drain_stamina to drain_physique", func(t *testing.T) {
		path := writeFile(t, "spells.json", `[
			{"id": "sap_vigor", "name": "Sap Vigor", "family": "drain", "mana_cost": 8, "level": 2, "effect": "drain_stamina", "effect_amount": "1d4"}
		]`)

		got, err := LoadSpells(path)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "drain_physique", got[0].Effect)
	})

	t.Run("rejects entries missing required fields", func(t *testing.T) {
		path := writeFile(t, "spells.json", `[{"id": "fireball"}]`)
		_, err := LoadSpells(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadSpells(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("bad json", func(t *testing.T) {
		path := writeFile(t, "spells.json", `{not json`)
		_, err := LoadSpells(path)
		assert.Error(t, err)
	})
}

func TestLoadTemplates(t *testing.T) {
	path := writeFile(t, "creatures.json", `[
		{"id": "wolf_pup", "name": "Wolf Pup", "level": 2, "max_hp": 10, "type": "beast"}
	]`)

	got, err := LoadTemplates(path)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Wolf Pup", got[0].Name)
	assert.Equal(t, 2, got[0].Level)
}

func TestLoadSpells_ShippedCatalog(t *testing.T) {
	got, err := LoadSpells(filepath.Join("..", "..", "data", "spells.json"))
	require.NoError(t, err)
	assert.NotEmpty(t, got)

	seen := make(map[string]bool)
	for _, spell := range got {
		assert.False(t, seen[spell.ID], "duplicate spell id %s", spell.ID)
		seen[spell.ID] = true
	}
}
