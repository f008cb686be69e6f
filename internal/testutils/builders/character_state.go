// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
)

// CharacterStateBuilder provides a fluent interface for building test
// CharacterState instances
type CharacterStateBuilder struct {
	state *dnd5e.CharacterState
}

// NewCharacterStateBuilder starts from a level 1 human fighter with all
// base scores at 10 and nothing equipped
func NewCharacterStateBuilder() *CharacterStateBuilder {
	return &CharacterStateBuilder{
		state: &dnd5e.CharacterState{
			ID:      "char-test-123",
			Name:    "Test Hero",
			Level:   1,
			ClassID: "fighter",
			RaceID:  "human",
			HitDie:  10,
			BaseScores: dnd5e.AbilityScores{
				Strength:     10,
				Dexterity:    10,
				Constitution: 10,
				Intelligence: 10,
				Wisdom:       10,
				Charisma:     10,
			},
		},
	}
}

// WithID sets the character ID
func (b *CharacterStateBuilder) WithID(id string) *CharacterStateBuilder {
	b.state.ID = id
	return b
}

// WithName sets the character name
func (b *CharacterStateBuilder) WithName(name string) *CharacterStateBuilder {
	b.state.Name = name
	return b
}

// WithLevel sets the character level
func (b *CharacterStateBuilder) WithLevel(level int) *CharacterStateBuilder {
	b.state.Level = level
	return b
}

// WithClass sets the class and hit die
func (b *CharacterStateBuilder) WithClass(classID string, hitDie int) *CharacterStateBuilder {
	b.state.ClassID = classID
	b.state.HitDie = hitDie
	return b
}

// WithSubclass sets the subclass
func (b *CharacterStateBuilder) WithSubclass(subclassID string) *CharacterStateBuilder {
	b.state.SubclassID = subclassID
	return b
}

// WithRace sets the race
func (b *CharacterStateBuilder) WithRace(raceID string) *CharacterStateBuilder {
	b.state.RaceID = raceID
	return b
}

// WithFeats sets the feat ids
func (b *CharacterStateBuilder) WithFeats(featIDs ...string) *CharacterStateBuilder {
	b.state.FeatIDs = featIDs
	return b
}

// WithScore sets one base ability score
func (b *CharacterStateBuilder) WithScore(ability dnd5e.Ability, score int) *CharacterStateBuilder {
	b.state.BaseScores.Set(ability, score)
	return b
}

// WithModifier sets a base score that yields the given modifier with no
// bonuses applied
func (b *CharacterStateBuilder) WithModifier(ability dnd5e.Ability, mod int) *CharacterStateBuilder {
	return b.WithScore(ability, 10+2*mod)
}

// WithRacialBonus adds a racial bonus
func (b *CharacterStateBuilder) WithRacialBonus(ability dnd5e.Ability, bonus int) *CharacterStateBuilder {
	if b.state.RacialBonuses == nil {
		b.state.RacialBonuses = dnd5e.AbilityBonuses{}
	}
	b.state.RacialBonuses[ability] = bonus
	return b
}

// WithASIBonus adds an ability score improvement bonus
func (b *CharacterStateBuilder) WithASIBonus(ability dnd5e.Ability, bonus int) *CharacterStateBuilder {
	if b.state.ASIBonuses == nil {
		b.state.ASIBonuses = dnd5e.AbilityBonuses{}
	}
	b.state.ASIBonuses[ability] = bonus
	return b
}

// WithHPRoll records the hit die roll for a level
func (b *CharacterStateBuilder) WithHPRoll(level, roll int) *CharacterStateBuilder {
	if b.state.HPRolls == nil {
		b.state.HPRolls = map[int]int{}
	}
	b.state.HPRolls[level] = roll
	return b
}

// WithHitPoints sets the last known hit points
func (b *CharacterStateBuilder) WithHitPoints(maxHP, current int) *CharacterStateBuilder {
	b.state.HitPoints = dnd5e.HitPoints{Max: maxHP, Current: current}
	return b
}

// WithArmorProficiencies sets armor proficiencies
func (b *CharacterStateBuilder) WithArmorProficiencies(profs ...string) *CharacterStateBuilder {
	b.state.Proficiencies.Armor = profs
	return b
}

// WithWeaponProficiencies sets weapon proficiencies
func (b *CharacterStateBuilder) WithWeaponProficiencies(profs ...string) *CharacterStateBuilder {
	b.state.Proficiencies.Weapons = profs
	return b
}

// WithSavingThrows sets saving throw proficiencies
func (b *CharacterStateBuilder) WithSavingThrows(saves ...string) *CharacterStateBuilder {
	b.state.SavingThrows = saves
	return b
}

// WithSkills sets skill proficiencies
func (b *CharacterStateBuilder) WithSkills(skills ...string) *CharacterStateBuilder {
	b.state.Skills = skills
	return b
}

// WithExpertise sets expertise skills
func (b *CharacterStateBuilder) WithExpertise(skills ...string) *CharacterStateBuilder {
	b.state.Expertise = skills
	return b
}

// WithFeatureChoice records a class feature choice
func (b *CharacterStateBuilder) WithFeatureChoice(key, optionID string) *CharacterStateBuilder {
	if b.state.FeatureChoices == nil {
		b.state.FeatureChoices = map[string]string{}
	}
	b.state.FeatureChoices[key] = optionID
	return b
}

// WithArmor equips armor
func (b *CharacterStateBuilder) WithArmor(itemID string) *CharacterStateBuilder {
	b.state.Equipped.Armor = itemID
	return b
}

// WithShield equips a shield
func (b *CharacterStateBuilder) WithShield(itemID string) *CharacterStateBuilder {
	b.state.Equipped.Shield = itemID
	return b
}

// WithWeapons equips weapons
func (b *CharacterStateBuilder) WithWeapons(itemIDs ...string) *CharacterStateBuilder {
	b.state.Equipped.Weapons = itemIDs
	return b
}

// WithSpellcastingAbility sets the casting ability
func (b *CharacterStateBuilder) WithSpellcastingAbility(ability string) *CharacterStateBuilder {
	b.state.Spellcasting.Ability = ability
	return b
}

// Build returns the built CharacterState
func (b *CharacterStateBuilder) Build() *dnd5e.CharacterState {
	return b.state
}
