package characterstate

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-sheet/internal/redis"
)

const (
	stateKeyPrefix = "character_state:"
	derivedSuffix  = ":derived"
	indexKey       = "character_state:index"

	// Error messages
	errStateNil     = "character state cannot be nil"
	errStateIDEmpty = "character ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis character state repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if cfg.Client == nil {
		vb.RequiredField("Client")
	}
	return vb.Build()
}

// NewRedis creates a new Redis-backed character state repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func stateKey(id string) string {
	return stateKeyPrefix + id
}

func derivedKey(id string) string {
	return stateKeyPrefix + id + derivedSuffix
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateState(input.State); err != nil {
		return nil, err
	}

	key := stateKey(input.State.ID)
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("character with ID %s already exists", input.State.ID)
	}

	state := *input.State
	now := r.clock.Now().Unix()
	if state.CreatedAt == 0 {
		state.CreatedAt = now
	}
	state.UpdatedAt = now

	if err := r.write(ctx, &state, input.Derived); err != nil {
		return nil, errors.Wrapf(err, "failed to create character")
	}

	slog.DebugContext(ctx, "stored character state",
		"character_id", state.ID,
		"with_derived", input.Derived != nil)

	return &CreateOutput{State: &state}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errStateIDEmpty)
	}

	var state dnd5e.CharacterState
	if err := r.read(ctx, stateKey(input.ID), &state); err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NotFoundf("character with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get character")
	}

	return &GetOutput{State: &state}, nil
}

func (r *redisRepository) GetDerived(ctx context.Context, input GetDerivedInput) (*GetDerivedOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errStateIDEmpty)
	}

	var derived dnd5e.DerivedStats
	if err := r.read(ctx, derivedKey(input.ID), &derived); err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NotFoundf("derived stats for character %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get derived stats")
	}

	return &GetDerivedOutput{Derived: &derived}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateState(input.State); err != nil {
		return nil, err
	}

	exists, err := r.client.Exists(ctx, stateKey(input.State.ID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("character with ID %s not found", input.State.ID)
	}

	state := *input.State
	state.UpdatedAt = r.clock.Now().Unix()

	if err := r.write(ctx, &state, input.Derived); err != nil {
		return nil, errors.Wrapf(err, "failed to update character")
	}

	return &UpdateOutput{State: &state}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errStateIDEmpty)
	}

	pipe := r.client.TxPipeline()
	deleted := pipe.Del(ctx, stateKey(input.ID))
	pipe.Del(ctx, derivedKey(input.ID))
	pipe.SRem(ctx, indexKey, input.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete character")
	}
	if deleted.Val() == 0 {
		return nil, errors.NotFoundf("character with ID %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list characters")
	}
	sort.Strings(ids)

	states := make([]*dnd5e.CharacterState, 0, len(ids))
	for _, id := range ids {
		out, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "character not found, cleaning up index",
					"character_id", id)
				if err := r.client.SRem(ctx, indexKey, id).Err(); err != nil {
					slog.WarnContext(ctx, "failed to remove character from index",
						"character_id", id,
						"error", err.Error())
				}
				continue
			}
			return nil, err
		}
		states = append(states, out.State)
	}

	return &ListOutput{States: states}, nil
}

// write stores the state, its snapshot and the index entry atomically. A
// nil snapshot clears any stored one.
func (r *redisRepository) write(ctx context.Context, state *dnd5e.CharacterState, derived *dnd5e.DerivedStats) error {
	stateData, err := json.Marshal(state)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal character state")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, stateKey(state.ID), stateData, 0)
	if derived != nil {
		derivedData, err := json.Marshal(derived)
		if err != nil {
			return errors.Wrapf(err, "failed to marshal derived stats")
		}
		pipe.Set(ctx, derivedKey(state.ID), derivedData, 0)
	} else {
		pipe.Del(ctx, derivedKey(state.ID))
	}
	pipe.SAdd(ctx, indexKey, state.ID)

	_, err = pipe.Exec(ctx)
	return err
}

func (r *redisRepository) read(ctx context.Context, key string, v any) error {
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redisclient.Nil {
			return errors.NotFound(key)
		}
		return err
	}
	if err := json.Unmarshal([]byte(result), v); err != nil {
		return errors.Wrapf(err, "failed to unmarshal %s", key)
	}
	return nil
}

func validateState(state *dnd5e.CharacterState) error {
	if state == nil {
		return errors.InvalidArgument(errStateNil)
	}
	if state.ID == "" {
		return errors.InvalidArgument(errStateIDEmpty)
	}
	return nil
}
