// Package character implements the character orchestrator
package character

import (
	"context"
	"log/slog"
	"maps"
	"slices"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
	characterstate "github.com/KirkDiggler/rpg-sheet/internal/repositories/character_state"
	"github.com/KirkDiggler/rpg-sheet/internal/services/character"
)

// Event types published after successful writes
const (
	EventCharacterRecalculated = "character.recalculated"
	EventCharacterLeveledUp    = "character.leveled_up"
)

// Config holds the dependencies for the character orchestrator
type Config struct {
	Repository  characterstate.Repository
	Engine      engine.Engine
	Catalog     engine.Catalog
	IDGenerator idgen.Generator

	// DiceRoller resolves hit dice for LevelUp with HitPointMethodRoll.
	// Defaults to dice.DefaultRoller.
	DiceRoller dice.Roller

	// EventBus is optional; nil disables publishing
	EventBus events.EventBus
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

// Orchestrator implements the character.Service interface
type Orchestrator struct {
	repo     characterstate.Repository
	engine   engine.Engine
	catalog  engine.Catalog
	idGen    idgen.Generator
	roller   dice.Roller
	eventBus events.EventBus
}

// New creates a new character orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	roller := cfg.DiceRoller
	if roller == nil {
		roller = dice.DefaultRoller
	}

	return &Orchestrator{
		repo:     cfg.Repository,
		engine:   cfg.Engine,
		catalog:  cfg.Catalog,
		idGen:    cfg.IDGenerator,
		roller:   roller,
		eventBus: cfg.EventBus,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ character.Service = (*Orchestrator)(nil)

// CreateCharacter validates the choices, fills catalog defaults, assigns an
// ID and stores the state with its first snapshot
func (o *Orchestrator) CreateCharacter(
	ctx context.Context,
	input *character.CreateCharacterInput,
) (*character.CreateCharacterOutput, error) {
	if input == nil || input.State == nil {
		return nil, errors.InvalidArgument("state is required")
	}

	state := *input.State
	if state.Level == 0 {
		state.Level = 1
	}
	if err := o.validateState(&state); err != nil {
		return nil, err
	}

	o.applyCatalogDefaults(&state)
	state.ID = o.idGen.Generate()
	state.HitPoints = dnd5e.HitPoints{}

	derived := o.recalculate(&state)

	createOutput, err := o.repo.Create(ctx, characterstate.CreateInput{
		State:   &state,
		Derived: derived,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create character")
	}

	slog.InfoContext(ctx, "created character",
		"character_id", state.ID,
		"class_id", state.ClassID,
		"level", state.Level,
		"warnings", len(derived.Warnings))

	o.publish(ctx, EventCharacterRecalculated, state.ID)

	return &character.CreateCharacterOutput{
		State:   createOutput.State,
		Derived: derived,
	}, nil
}

// GetCharacter returns the stored state and snapshot. A missing snapshot is
// recalculated but not written.
func (o *Orchestrator) GetCharacter(
	ctx context.Context,
	input *character.GetCharacterInput,
) (*character.GetCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	state, err := o.getState(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	derivedOutput, err := o.repo.GetDerived(ctx, characterstate.GetDerivedInput{ID: state.ID})
	if err != nil {
		if !errors.IsNotFound(err) {
			return nil, errors.Wrapf(err, "failed to get derived stats")
		}
		slog.DebugContext(ctx, "no stored snapshot, recalculating",
			"character_id", state.ID)
		return &character.GetCharacterOutput{
			State:   state,
			Derived: o.engine.Recalculate(state),
		}, nil
	}

	return &character.GetCharacterOutput{
		State:   state,
		Derived: derivedOutput.Derived,
	}, nil
}

// ListCharacters returns every stored character state
func (o *Orchestrator) ListCharacters(
	ctx context.Context,
	_ *character.ListCharactersInput,
) (*character.ListCharactersOutput, error) {
	listOutput, err := o.repo.List(ctx, characterstate.ListInput{})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list characters")
	}

	return &character.ListCharactersOutput{States: listOutput.States}, nil
}

// UpdateCharacter replaces the stored state. The ID, creation time and hit
// points are kept from the stored copy; current hit points are then
// reconciled against the new maximum.
func (o *Orchestrator) UpdateCharacter(
	ctx context.Context,
	input *character.UpdateCharacterInput,
) (*character.UpdateCharacterOutput, error) {
	if input == nil || input.State == nil {
		return nil, errors.InvalidArgument("state is required")
	}

	existing, err := o.getState(ctx, input.State.ID)
	if err != nil {
		return nil, err
	}

	replacement := *input.State
	if err := o.validateState(&replacement); err != nil {
		return nil, err
	}
	replacement.CreatedAt = existing.CreatedAt
	replacement.HitPoints = existing.HitPoints

	state, derived, err := o.save(ctx, &replacement)
	if err != nil {
		return nil, err
	}

	return &character.UpdateCharacterOutput{
		State:   state,
		Derived: derived,
	}, nil
}

// DeleteCharacter removes a character and its snapshot
func (o *Orchestrator) DeleteCharacter(
	ctx context.Context,
	input *character.DeleteCharacterInput,
) (*character.DeleteCharacterOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}
	id := input.CharacterID

	if _, err := o.repo.Delete(ctx, characterstate.DeleteInput{ID: id}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete character")
	}

	slog.InfoContext(ctx, "deleted character", "character_id", id)

	return &character.DeleteCharacterOutput{}, nil
}

// EquipItems replaces all equipment slots. Unknown item ids are stored as
// given and reported as warnings in the snapshot.
func (o *Orchestrator) EquipItems(
	ctx context.Context,
	input *character.EquipItemsInput,
) (*character.EquipItemsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	state, err := o.getState(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	state.Equipped = dnd5e.EquippedSlots{
		Armor:   input.Equipped.Armor,
		Shield:  input.Equipped.Shield,
		Weapons: slices.Clone(input.Equipped.Weapons),
	}

	state, derived, err := o.save(ctx, state)
	if err != nil {
		return nil, err
	}

	return &character.EquipItemsOutput{
		State:   state,
		Derived: derived,
	}, nil
}

// LevelUp advances the character one level and records the hit die result
// for the new level
func (o *Orchestrator) LevelUp(
	ctx context.Context,
	input *character.LevelUpInput,
) (*character.LevelUpOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	method := input.Method
	if method == "" {
		method = character.HitPointMethodAverage
	}
	if method != character.HitPointMethodAverage && method != character.HitPointMethodRoll {
		return nil, errors.InvalidArgumentf("unknown hit point method %q", method)
	}

	state, err := o.getState(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	if state.Level >= dnd5e.MaxLevel {
		return nil, errors.FailedPreconditionf("character %s is already level %d", state.ID, state.Level)
	}

	newLevel := max(state.Level, 1) + 1
	hitDie := state.EffectiveHitDie()

	var result int
	switch method {
	case character.HitPointMethodRoll:
		result, err = o.roller.Roll(hitDie)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll hit die d%d", hitDie)
		}
	default:
		result = o.engine.AverageHitDieGain(hitDie)
	}

	rolls := maps.Clone(state.HPRolls)
	if rolls == nil {
		rolls = make(map[int]int)
	}
	rolls[newLevel] = result
	state.HPRolls = rolls
	state.Level = newLevel

	state, derived, err := o.save(ctx, state)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "character leveled up",
		"character_id", state.ID,
		"level", state.Level,
		"method", string(method),
		"hit_die_result", result,
		"max_hp", derived.HitPoints.Max)

	o.publish(ctx, EventCharacterLeveledUp, state.ID)

	return &character.LevelUpOutput{
		State:        state,
		Derived:      derived,
		HitDieResult: result,
	}, nil
}

// Recalculate refreshes the stored snapshot, for example after the catalog
// changed
func (o *Orchestrator) Recalculate(
	ctx context.Context,
	input *character.RecalculateInput,
) (*character.RecalculateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	state, err := o.getState(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	_, derived, err := o.save(ctx, state)
	if err != nil {
		return nil, err
	}

	return &character.RecalculateOutput{Derived: derived}, nil
}

func (o *Orchestrator) getState(ctx context.Context, id string) (*dnd5e.CharacterState, error) {
	if id == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	getOutput, err := o.repo.Get(ctx, characterstate.GetInput{ID: id})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character")
	}
	return getOutput.State, nil
}

// save recalculates, writes state and snapshot, and publishes the
// recalculation
func (o *Orchestrator) save(
	ctx context.Context,
	state *dnd5e.CharacterState,
) (*dnd5e.CharacterState, *dnd5e.DerivedStats, error) {
	derived := o.recalculate(state)

	updateOutput, err := o.repo.Update(ctx, characterstate.UpdateInput{
		State:   state,
		Derived: derived,
	})
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to update character")
	}

	slog.DebugContext(ctx, "recalculated character",
		"character_id", state.ID,
		"armor_class", derived.ArmorClass.Total,
		"max_hp", derived.HitPoints.Max,
		"warnings", len(derived.Warnings))

	o.publish(ctx, EventCharacterRecalculated, state.ID)

	return updateOutput.State, derived, nil
}

// recalculate runs the engine and carries the reconciled hit points back
// into the state so the next recalculation starts from them
func (o *Orchestrator) recalculate(state *dnd5e.CharacterState) *dnd5e.DerivedStats {
	derived := o.engine.Recalculate(state)
	state.HitPoints = derived.HitPoints
	return derived
}
