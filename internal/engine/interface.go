// Package engine resolves a character's derived statistics from its
// declarative state. Every calculation is a pure function of the state and
// the read-only reference catalog passed in.
package engine

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
)

// Engine is the rules entry point used by the service layers
type Engine interface {
	// Recalculate runs the full pipeline and returns a fresh snapshot.
	// It never fails; rule problems are reported as warnings.
	Recalculate(state *dnd5e.CharacterState) *dnd5e.DerivedStats

	// Utility methods
	CalculateAbilityModifier(score int) int
	CalculateProficiencyBonus(level int) int
	AverageHitDieGain(hitDie int) int
}

// ItemLookup resolves equipment ids
type ItemLookup interface {
	Item(id string) (*dnd5e.Item, bool)
}

// Catalog is the reference data the engine reads. Unknown ids report
// false and are treated as absent.
type Catalog interface {
	ItemLookup
	Class(id string) (*dnd5e.ClassData, bool)
	Subclass(classID, subclassID string) (*dnd5e.SubclassData, bool)
	Race(id string) (*dnd5e.RaceData, bool)
	Background(id string) (*dnd5e.BackgroundData, bool)
	Feat(id string) (*dnd5e.FeatData, bool)
}
