package dnd5e

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apiEntities "github.com/fadedpez/dnd5e-api/entities"
)

func TestMonsterToTemplate(t *testing.T) {
	t.Run("nil input", func(t *testing.T) {
		assert.Nil(t, monsterToTemplate(nil))
	})

	t.Run("converts fields", func(t *testing.T) {
		tpl := monsterToTemplate(&apiEntities.Monster{
			Key:             "dire-wolf",
			Name:            "Dire Wolf",
			Type:            "beast",
			ArmorClass:      14,
			HitPoints:       37,
			ChallengeRating: 1,
		})

		assert.Equal(t, "dire-wolf", tpl.ID)
		assert.Equal(t, "Dire Wolf", tpl.Name)
		assert.Equal(t, "beast", tpl.Type)
		assert.Equal(t, 1, tpl.Level)
		assert.Equal(t, 37, tpl.MaxHP)
		assert.Equal(t, 4, tpl.Armor)
		assert.True(t, tpl.Hostile)
	})
}

func TestLevelFromCR(t *testing.T) {
	assert.Equal(t, 1, levelFromCR(0))
	assert.Equal(t, 1, levelFromCR(0.25))
	assert.Equal(t, 1, levelFromCR(1))
	assert.Equal(t, 5, levelFromCR(5))
}

func TestArmorFromAC(t *testing.T) {
	assert.Equal(t, 0, armorFromAC(8))
	assert.Equal(t, 0, armorFromAC(10))
	assert.Equal(t, 5, armorFromAC(15))
}

func TestGetCRValuesInRange(t *testing.T) {
	values := getCRValuesInRange(0.5, 2)
	assert.Equal(t, []float32{0.5, 1, 2}, values)
}

func TestNew_RequiresConfig(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)
}
