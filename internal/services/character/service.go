// Package character defines the interface for character operations
package character

//go:generate mockgen -destination=mock/mock_service.go -package=charactermock github.com/KirkDiggler/rpg-sheet/internal/services/character Service

import (
	"context"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
)

// Service defines the interface for character operations. Every write
// recalculates the derived stats and stores them with the state.
type Service interface {
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)
	UpdateCharacter(ctx context.Context, input *UpdateCharacterInput) (*UpdateCharacterOutput, error)
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)

	// Sheet changes
	EquipItems(ctx context.Context, input *EquipItemsInput) (*EquipItemsOutput, error)
	LevelUp(ctx context.Context, input *LevelUpInput) (*LevelUpOutput, error)
	Recalculate(ctx context.Context, input *RecalculateInput) (*RecalculateOutput, error)
}

// HitPointMethod selects how a level-up hit die is resolved
type HitPointMethod string

// Hit point methods
const (
	HitPointMethodAverage HitPointMethod = "average"
	HitPointMethodRoll    HitPointMethod = "roll"
)

// CreateCharacterInput defines the request for creating a character. Empty
// class, race and background derived fields are filled from the catalog.
type CreateCharacterInput struct {
	State *dnd5e.CharacterState
}

// CreateCharacterOutput defines the response for creating a character
type CreateCharacterOutput struct {
	State   *dnd5e.CharacterState
	Derived *dnd5e.DerivedStats
}

// GetCharacterInput defines the request for getting a character
type GetCharacterInput struct {
	CharacterID string
}

// GetCharacterOutput defines the response for getting a character
type GetCharacterOutput struct {
	State   *dnd5e.CharacterState
	Derived *dnd5e.DerivedStats
}

// ListCharactersInput defines the request for listing characters
type ListCharactersInput struct{}

// ListCharactersOutput defines the response for listing characters
type ListCharactersOutput struct {
	States []*dnd5e.CharacterState
}

// UpdateCharacterInput replaces the stored state of State.ID
type UpdateCharacterInput struct {
	State *dnd5e.CharacterState
}

// UpdateCharacterOutput defines the response for updating a character
type UpdateCharacterOutput struct {
	State   *dnd5e.CharacterState
	Derived *dnd5e.DerivedStats
}

// DeleteCharacterInput defines the request for deleting a character
type DeleteCharacterInput struct {
	CharacterID string
}

// DeleteCharacterOutput defines the response for deleting a character
type DeleteCharacterOutput struct{}

// EquipItemsInput replaces the equipped armor, shield and weapons
type EquipItemsInput struct {
	CharacterID string
	Equipped    dnd5e.EquippedSlots
}

// EquipItemsOutput defines the response for equipping items
type EquipItemsOutput struct {
	State   *dnd5e.CharacterState
	Derived *dnd5e.DerivedStats
}

// LevelUpInput defines the request for advancing a character one level.
// An empty Method means HitPointMethodAverage.
type LevelUpInput struct {
	CharacterID string
	Method      HitPointMethod
}

// LevelUpOutput defines the response for a level up. HitDieResult is the
// value recorded for the new level before the constitution modifier.
type LevelUpOutput struct {
	State        *dnd5e.CharacterState
	Derived      *dnd5e.DerivedStats
	HitDieResult int
}

// RecalculateInput defines the request for refreshing a stored snapshot
type RecalculateInput struct {
	CharacterID string
}

// RecalculateOutput defines the response for a recalculation
type RecalculateOutput struct {
	Derived *dnd5e.DerivedStats
}
