package discord

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/emberfell/internal/domain/character"
	"github.com/KirkDiggler/emberfell/internal/domain/mobs"
	"github.com/KirkDiggler/emberfell/internal/effects"
	"github.com/KirkDiggler/emberfell/internal/services/characters"
)

type fakeEngine struct {
	casts    []string
	unlearns []string
	book     string
}

func (f *fakeEngine) Cast(_ context.Context, casterID, input string) error {
	f.casts = append(f.casts, casterID+": "+input)
	return nil
}

func (f *fakeEngine) TickCharacter(context.Context, *character.Character) {}

func (f *fakeEngine) TickMob(context.Context, *mobs.Mob, string) {}

func (f *fakeEngine) Cure(context.Context, *character.Character, ...effects.Kind) int { return 0 }

func (f *fakeEngine) Spellbook(context.Context, string) (string, error) {
	return f.book, nil
}

func (f *fakeEngine) Unlearn(_ context.Context, casterID, spellText string) error {
	f.unlearns = append(f.unlearns, casterID+": "+spellText)
	return nil
}

func TestHandler_Dispatch(t *testing.T) {
	ctx := context.Background()

	newHarness := func() (*Handler, *fakeEngine, *fakeSender) {
		session := &fakeSender{}
		chars := characters.NewService(&characters.ServiceConfig{})
		chars.Register(character.New("user-1", "Theron"))
		engine := &fakeEngine{book: "Your spellbook is empty."}
		h := NewHandler(&HandlerConfig{
			Messenger:  NewMessenger(session),
			Characters: chars,
			Engine:     engine,
		})
		return h, engine, session
	}

	t.Run("cast routes to the engine", func(t *testing.T) {
		h, engine, _ := newHarness()
		h.Dispatch(ctx, "user-1", "chan-1", "cast", "fireball wolf")
		assert.Equal(t, []string{"user-1: fireball wolf"}, engine.casts)
	})

	t.Run("cast binds the reply channel first", func(t *testing.T) {
		h, _, session := newHarness()
		h.Dispatch(ctx, "user-1", "chan-1", "spells", "")
		assert.Len(t, session.sent, 1)
		assert.Equal(t, "chan-1", session.sent[0].channelID)
		assert.Contains(t, session.sent[0].content, "Your spellbook is empty.")
	})

	t.Run("unlearn routes to the engine", func(t *testing.T) {
		h, engine, _ := newHarness()
		h.Dispatch(ctx, "user-1", "chan-1", "unlearn", "fireball")
		assert.Equal(t, []string{"user-1: fireball"}, engine.unlearns)
	})

	t.Run("unknown user gets a hint", func(t *testing.T) {
		h, engine, session := newHarness()
		h.Dispatch(ctx, "user-unknown", "chan-1", "cast", "fireball")
		assert.Empty(t, engine.casts)
		assert.Equal(t, "You have no character here yet.", session.sent[0].content)
	})

	t.Run("unknown command is ignored", func(t *testing.T) {
		h, engine, session := newHarness()
		h.Dispatch(ctx, "user-1", "chan-1", "dance", "")
		assert.Empty(t, engine.casts)
		assert.Empty(t, session.sent)
	})
}
