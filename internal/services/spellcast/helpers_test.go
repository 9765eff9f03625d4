package spellcast_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/emberfell/internal/dice"
	"github.com/KirkDiggler/emberfell/internal/domain/character"
	"github.com/KirkDiggler/emberfell/internal/domain/mobs"
	"github.com/KirkDiggler/emberfell/internal/domain/shared"
	"github.com/KirkDiggler/emberfell/internal/domain/spells"
	monsterrepo "github.com/KirkDiggler/emberfell/internal/repositories/monsters"
	spellrepo "github.com/KirkDiggler/emberfell/internal/repositories/spells"
	"github.com/KirkDiggler/emberfell/internal/services/characters"
	"github.com/KirkDiggler/emberfell/internal/services/combat"
	"github.com/KirkDiggler/emberfell/internal/services/loot"
	"github.com/KirkDiggler/emberfell/internal/services/party"
	"github.com/KirkDiggler/emberfell/internal/services/room"
	"github.com/KirkDiggler/emberfell/internal/services/spellcast"
)

// recordingMessenger captures every message for assertions
type recordingMessenger struct {
	direct     map[string][]string
	broadcasts []string
}

func newRecordingMessenger() *recordingMessenger {
	return &recordingMessenger{direct: make(map[string][]string)}
}

func (r *recordingMessenger) SendToCharacter(_ context.Context, characterID, text string) {
	r.direct[characterID] = append(r.direct[characterID], text)
}

func (r *recordingMessenger) BroadcastToRoom(_ context.Context, _, text string, _ ...string) {
	r.broadcasts = append(r.broadcasts, text)
}

func (r *recordingMessenger) sentTo(characterID string) []string {
	return r.direct[characterID]
}

func (r *recordingMessenger) reset() {
	r.direct = make(map[string][]string)
	r.broadcasts = nil
}

// rngQueue returns queued values, then 0.99 forever so the failure
// roll never fizzles unless a test asks for it
type rngQueue struct {
	values []float64
	i      int
}

func (q *rngQueue) next() float64 {
	if q.i < len(q.values) {
		v := q.values[q.i]
		q.i++
		return v
	}
	return 0.99
}

func (q *rngQueue) queue(values ...float64) {
	q.values = append(q.values, values...)
}

type fixture struct {
	svc       spellcast.Service
	chars     characters.Service
	rooms     room.Service
	parties   party.Service
	spells    spellrepo.Repository
	monsters  monsterrepo.Repository
	roller    *dice.MockRoller
	messenger *recordingMessenger
	castRNG   *rngQueue
	combatRNG *rngQueue
	now       time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		roller:    dice.NewMockRoller(),
		messenger: newRecordingMessenger(),
		castRNG:   &rngQueue{},
		combatRNG: &rngQueue{},
		now:       time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	f.chars = characters.NewService(&characters.ServiceConfig{})
	f.rooms = room.NewService(&room.ServiceConfig{})
	f.parties = party.NewService(&party.ServiceConfig{})
	f.spells = spellrepo.NewInMemory()
	f.monsters = monsterrepo.NewInMemory()

	combatSvc := combat.NewService(&combat.ServiceConfig{RNG: f.combatRNG.next})
	lootSvc := loot.NewService(&loot.ServiceConfig{
		Rooms:     f.rooms,
		Parties:   f.parties,
		Messenger: f.messenger,
	})

	f.svc = spellcast.NewService(&spellcast.ServiceConfig{
		Characters: f.chars,
		Spells:     f.spells,
		Monsters:   f.monsters,
		Rooms:      f.rooms,
		Parties:    f.parties,
		Combat:     combatSvc,
		Deaths:     lootSvc,
		Messenger:  f.messenger,
		Roller:     f.roller,
		RNG:        f.castRNG.next,
		Now:        func() time.Time { return f.now },
	})

	f.rooms.CreateRoom(&room.Room{ID: "dark_cave", Name: "Dark Cave", MobCapacity: 4})
	f.rooms.CreateRoom(&room.Room{ID: "town_square", Name: "Town Square", Safe: true})

	return f
}

// combatWillHit queues rolls that pass the hit, dodge, and deflect
// checks in order
func (f *fixture) combatWillHit() {
	f.combatRNG.queue(0.10, 0.90, 0.90)
}

// combatWillMiss queues a roll above any possible hit chance
func (f *fixture) combatWillMiss() {
	f.combatRNG.queue(0.999)
}

func (f *fixture) addCaster(t *testing.T, spellIDs ...string) *character.Character {
	t.Helper()

	ch := character.New("ch-caster", "Theron")
	ch.Class = "mage"
	ch.Level = 3
	ch.MaxHP = 30
	ch.CurrentHP = 30
	ch.MaxMana = 50
	ch.CurrentMana = 50
	for _, id := range spellIDs {
		ch.Learn(id)
	}
	f.chars.Register(ch)
	require.NoError(t, f.rooms.AddPlayer("dark_cave", ch))
	return ch
}

func (f *fixture) addMob(t *testing.T, name string, hp int) *mobs.Mob {
	t.Helper()

	mob := mobs.NewFromTemplate(&mobs.Template{
		ID:      "tpl_" + name,
		Name:    name,
		Level:   2,
		MaxHP:   hp,
		Hostile: true,
		Attributes: map[shared.Attribute]int{
			shared.AttributeDexterity: 10,
		},
	}, "mob_"+name)
	require.NoError(t, f.rooms.AddMob("dark_cave", mob))
	return mob
}

func (f *fixture) addSpell(t *testing.T, spell *spells.Spell) {
	t.Helper()
	require.NoError(t, f.spells.Save(context.Background(), spell))
}
