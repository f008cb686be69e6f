package engine

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Config holds the dependencies for the engine
type Config struct {
	Catalog Catalog
}

// Validate ensures all required dependencies are provided
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if cfg.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	return vb.Build()
}

type engine struct {
	catalog Catalog
}

// New creates an Engine bound to one catalog
func New(cfg *Config) (Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &engine{catalog: cfg.Catalog}, nil
}

func (e *engine) Recalculate(state *dnd5e.CharacterState) *dnd5e.DerivedStats {
	return RecalcAll(state, e.catalog)
}

func (e *engine) CalculateAbilityModifier(score int) int {
	return AbilityModifier(score)
}

func (e *engine) CalculateProficiencyBonus(level int) int {
	return ProficiencyBonus(level)
}

func (e *engine) AverageHitDieGain(hitDie int) int {
	return AverageHitDieGain(hitDie)
}
