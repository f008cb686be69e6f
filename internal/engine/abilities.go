package engine

import "github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"

// MaxAbilityScore caps a score after all bonuses are applied
const MaxAbilityScore = 20

// AbilityBreakdown holds final scores and their modifiers
type AbilityBreakdown struct {
	Scores    dnd5e.AbilityScores
	Modifiers dnd5e.AbilityScores
}

// AbilityModifier returns floor((score-10)/2)
func AbilityModifier(score int) int {
	return floorDiv(score-10, 2)
}

// ResolveAbilityScores sums base scores with the racial, background, ASI
// and feat bonuses and caps each total at MaxAbilityScore.
func ResolveAbilityScores(state *dnd5e.CharacterState) AbilityBreakdown {
	var out AbilityBreakdown
	for _, ability := range dnd5e.Abilities {
		total := state.BaseScores.Get(ability) +
			state.RacialBonuses[ability] +
			state.BackgroundBonuses[ability] +
			state.ASIBonuses[ability] +
			state.FeatBonuses[ability]
		if total > MaxAbilityScore {
			total = MaxAbilityScore
		}
		out.Scores.Set(ability, total)
		out.Modifiers.Set(ability, AbilityModifier(total))
	}
	return out
}

// floorDiv divides rounding toward negative infinity
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
