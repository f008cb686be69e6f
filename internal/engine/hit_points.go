package engine

import "github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"

// AverageHitDieGain is the fixed per-level gain, ceil(hitDie/2)+1
func AverageHitDieGain(hitDie int) int {
	if hitDie <= 0 {
		hitDie = dnd5e.DefaultHitDie
	}
	return (hitDie+1)/2 + 1
}

// MaxHitPoints returns maximum hit points. Level 1 gives hitDie+conMod,
// floored at 1. Each later level adds the recorded roll for that level, or
// the average when none is recorded, plus conMod. The result is never
// below 1.
func MaxHitPoints(hitDie, level, conMod int, rolls map[int]int) int {
	if hitDie <= 0 {
		hitDie = dnd5e.DefaultHitDie
	}
	level = clampLevel(level)

	total := max(1, hitDie+conMod)
	for lvl := 2; lvl <= level; lvl++ {
		gain, ok := rolls[lvl]
		if !ok {
			gain = AverageHitDieGain(hitDie)
		}
		total += gain + conMod
	}
	return max(1, total)
}

// AdjustCurrentHP reconciles current hit points after the maximum moves.
// A character at full health stays at full health; otherwise current is
// only lowered when it no longer fits.
func AdjustCurrentHP(oldCurrent, oldMax, newMax int) int {
	if oldCurrent == oldMax {
		return newMax
	}
	return min(oldCurrent, newMax)
}

func hitPointBonus(rules []dnd5e.FeatureRule, level int) int {
	bonus := 0
	for _, rule := range rulesOfKind(rules, dnd5e.RuleHPPerLevel) {
		bonus += rule.Amount * clampLevel(level)
	}
	return bonus
}
