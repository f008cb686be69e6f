package engine

import "github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"

// ProficiencyBonus returns +2 at levels 1-4, rising by one every four
// levels to +6 at 17-20. Levels outside 1-20 are clamped.
func ProficiencyBonus(level int) int {
	return 2 + (clampLevel(level)-1)/4
}

func clampLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > dnd5e.MaxLevel {
		return dnd5e.MaxLevel
	}
	return level
}
