// Package characterstate defines the interface for character state persistence
package characterstate

//go:generate mockgen -destination=mock/mock_repository.go -package=characterstatemock github.com/KirkDiggler/rpg-sheet/internal/repositories/character_state Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
)

// Repository stores character states together with their last derived
// snapshot. A state and its snapshot are always written in one transaction.
type Repository interface {
	// Create stores a new character
	// Returns errors.InvalidArgument for a nil state or empty ID
	// Returns errors.AlreadyExists if a character with the same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a character state by ID
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if the character doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// GetDerived retrieves the snapshot stored with the last write
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if no snapshot is stored
	// Returns errors.Internal for storage failures
	GetDerived(ctx context.Context, input GetDerivedInput) (*GetDerivedOutput, error)

	// Update replaces an existing character state and its snapshot
	// Returns errors.InvalidArgument for a nil state or empty ID
	// Returns errors.NotFound if the character doesn't exist
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a character and its snapshot
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if the character doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List returns every stored character state ordered by ID
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// CreateInput defines the input for creating a character
type CreateInput struct {
	State   *dnd5e.CharacterState
	Derived *dnd5e.DerivedStats
}

// CreateOutput defines the output for creating a character
type CreateOutput struct {
	State *dnd5e.CharacterState
}

// GetInput defines the input for getting a character
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a character
type GetOutput struct {
	State *dnd5e.CharacterState
}

// GetDerivedInput defines the input for getting a stored snapshot
type GetDerivedInput struct {
	ID string
}

// GetDerivedOutput defines the output for getting a stored snapshot
type GetDerivedOutput struct {
	Derived *dnd5e.DerivedStats
}

// UpdateInput defines the input for updating a character
type UpdateInput struct {
	State   *dnd5e.CharacterState
	Derived *dnd5e.DerivedStats
}

// UpdateOutput defines the output for updating a character
type UpdateOutput struct {
	State *dnd5e.CharacterState
}

// DeleteInput defines the input for deleting a character
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a character
type DeleteOutput struct{}

// ListInput defines the input for listing characters
type ListInput struct{}

// ListOutput defines the output for listing characters
type ListOutput struct {
	States []*dnd5e.CharacterState
}
