package engine

import "github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"

// SavingThrows returns exactly six entries in ability order. A save is
// proficient when its long name or short key appears in proficiencies.
func SavingThrows(mods dnd5e.AbilityScores, profBonus int, proficiencies []string) []dnd5e.SaveModifier {
	proficient := make(map[dnd5e.Ability]bool, len(proficiencies))
	for _, p := range proficiencies {
		if ability, ok := dnd5e.ParseAbility(p); ok {
			proficient[ability] = true
		}
	}

	saves := make([]dnd5e.SaveModifier, 0, len(dnd5e.Abilities))
	for _, ability := range dnd5e.Abilities {
		total := mods.Get(ability)
		if proficient[ability] {
			total += profBonus
		}
		saves = append(saves, dnd5e.SaveModifier{
			Ability:    ability,
			Total:      total,
			Proficient: proficient[ability],
		})
	}
	return saves
}
