package engine

import (
	"strings"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
)

const spellSaveDCBase = 8

// SpellStats returns the spell save DC and attack bonus for a casting
// ability given by long name or short key. No ability yields zeros; an
// unrecognised ability contributes a modifier of 0.
func SpellStats(ability string, mods dnd5e.AbilityScores, profBonus int) dnd5e.SpellStats {
	if strings.TrimSpace(ability) == "" {
		return dnd5e.SpellStats{}
	}

	mod := 0
	if a, ok := dnd5e.ParseAbility(ability); ok {
		mod = mods.Get(a)
	}

	return dnd5e.SpellStats{
		SaveDC:      spellSaveDCBase + profBonus + mod,
		AttackBonus: profBonus + mod,
	}
}
