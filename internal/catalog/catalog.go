package catalog

import (
	"encoding/json"
	"os"

	"github.com/KirkDiggler/emberfell/internal/domain/mobs"
	"github.com/KirkDiggler/emberfell/internal/domain/spells"
	engErr "github.com/KirkDiggler/emberfell/internal/errors"
)

// LoadSpells reads a JSON spell catalog from disk
func LoadSpells(path string) ([]*spells.Spell, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, engErr.Wrapf(err, "failed to read spell catalog %s", path)
	}

	var out []*spells.Spell
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, engErr.Wrapf(err, "failed to parse spell catalog %s", path)
	}

	for _, spell := range out {
		if spell.ID == "" || spell.Name == "" || spell.Family == "" {
			return nil, engErr.Internalf("spell catalog %s has an entry missing id, name, or family", path)
		}
		// Legacy catalogs drain stamina; constitution carries it now
		if spell.Effect == "drain_stamina" {
			spell.Effect = "drain_physique"
		}
	}
	return out, nil
}

// LoadTemplates reads a JSON creature template catalog from disk
func LoadTemplates(path string) ([]*mobs.Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, engErr.Wrapf(err, "failed to read creature catalog %s", path)
	}

	var out []*mobs.Template
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, engErr.Wrapf(err, "failed to parse creature catalog %s", path)
	}

	for _, tpl := range out {
		if tpl.ID == "" || tpl.Name == "" {
			return nil, engErr.Internalf("creature catalog %s has an entry missing id or name", path)
		}
	}
	return out, nil
}
