package dnd5e

import (
	"log"
	"net/http"

	apiEntities "github.com/fadedpez/dnd5e-api/entities"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"

	"github.com/KirkDiggler/emberfell/internal/domain/mobs"
	engErr "github.com/KirkDiggler/emberfell/internal/errors"
)

type client struct {
	client dnd5e.Interface
}

type Config struct {
	HttpClient *http.Client
}

func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, engErr.InvalidArgument("cfg is required")
	}

	dndClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client: cfg.HttpClient,
	})
	if err != nil {
		return nil, err
	}

	return &client{
		client: dndClient,
	}, nil
}

func (c *client) GetMonster(key string) (*mobs.Template, error) {
	if key == "" {
		return nil, engErr.InvalidArgument("GetMonster.key is required")
	}

	monster, err := c.client.GetMonster(key)
	if err != nil {
		return nil, err
	}

	return monsterToTemplate(monster), nil
}

func (c *client) ListMonstersByCR(minCR, maxCR float32) ([]*mobs.Template, error) {
	// The API filters by exact CR only, so walk each CR value in
	// the range
	crValues := getCRValuesInRange(minCR, maxCR)

	templates := make([]*mobs.Template, 0)
	processedKeys := make(map[string]bool)

	for _, cr := range crValues {
		crFloat64 := float64(cr)
		input := &dnd5e.ListMonstersInput{
			ChallengeRating: &crFloat64,
		}

		monsterRefs, err := c.client.ListMonstersWithFilter(input)
		if err != nil {
			log.Printf("Failed to list monsters for CR %f: %v", cr, err)
			continue
		}

		for _, ref := range monsterRefs {
			if ref.Key == "" || processedKeys[ref.Key] {
				continue
			}
			monster, err := c.client.GetMonster(ref.Key)
			if err != nil {
				log.Printf("Failed to get monster %s: %v", ref.Key, err)
				continue
			}
			if tpl := monsterToTemplate(monster); tpl != nil {
				templates = append(templates, tpl)
				processedKeys[ref.Key] = true
			}
		}
	}

	return templates, nil
}

// getCRValuesInRange returns all standard CR values within the given range
func getCRValuesInRange(minCR, maxCR float32) []float32 {
	allCRs := []float32{0, 0.125, 0.25, 0.5, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10,
		11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30}

	var result []float32
	for _, cr := range allCRs {
		if cr >= minCR && cr <= maxCR {
			result = append(result, cr)
		}
	}
	return result
}

func monsterToTemplate(input *apiEntities.Monster) *mobs.Template {
	if input == nil {
		return nil
	}

	return &mobs.Template{
		ID:              input.Key,
		Name:            input.Name,
		Type:            input.Type,
		Level:           levelFromCR(input.ChallengeRating),
		MaxHP:           input.HitPoints,
		Armor:           armorFromAC(input.ArmorClass),
		Hostile:         true,
		ExperienceValue: levelFromCR(input.ChallengeRating) * 10,
	}
}

// levelFromCR maps challenge rating onto the engine's level scale.
// Fractional CRs all land on level 1.
func levelFromCR(cr float32) int {
	if cr < 1 {
		return 1
	}
	return int(cr)
}

// armorFromAC converts D&D armor class to the engine's armor points,
// where each point is a deflect chance step. AC 10 is unarmored.
func armorFromAC(ac int) int {
	if ac <= 10 {
		return 0
	}
	return ac - 10
}
