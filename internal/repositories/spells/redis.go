package spells

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/emberfell/internal/domain/spells"
	engErr "github.com/KirkDiggler/emberfell/internal/errors"
)

type redisRepo struct {
	client redis.UniversalClient
}

// NewRedis creates a Redis-backed spell repository
func NewRedis(client redis.UniversalClient) Repository {
	return &redisRepo{client: client}
}

func spellKey(id string) string {
	return fmt.Sprintf("spell:%s", id)
}

const spellIndexKey = "spells:all"

func (r *redisRepo) Save(ctx context.Context, spell *spells.Spell) error {
	if spell == nil {
		return engErr.InvalidArgument("spell cannot be nil")
	}
	if spell.ID == "" {
		return engErr.InvalidArgument("spell ID is required")
	}

	jsonData, err := json.Marshal(spell)
	if err != nil {
		return fmt.Errorf("failed to marshal spell data: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, spellKey(spell.ID), string(jsonData), 0)
	pipe.SAdd(ctx, spellIndexKey, spell.ID)
	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to set spell in Redis: %w", err)
	}

	return nil
}

func (r *redisRepo) Get(ctx context.Context, id string) (*spells.Spell, error) {
	jsonData, err := r.client.Get(ctx, spellKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, engErr.NotFoundf("spell '%s' not found", id)
		}
		return nil, fmt.Errorf("failed to get spell from Redis: %w", err)
	}

	var spell spells.Spell
	if err := json.Unmarshal(jsonData, &spell); err != nil {
		return nil, fmt.Errorf("failed to unmarshal spell data: %w", err)
	}

	return &spell, nil
}

func (r *redisRepo) List(ctx context.Context) ([]*spells.Spell, error) {
	ids, err := r.client.SMembers(ctx, spellIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get spell index from Redis: %w", err)
	}

	out := make([]*spells.Spell, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			spell, err := r.Get(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to get spell %s: %w", id, err)
			}
			out[i] = spell
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
