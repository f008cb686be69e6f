package engine

import "github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"

// SkillInput is what the skill table is built from
type SkillInput struct {
	Modifiers        dnd5e.AbilityScores
	ProficiencyBonus int
	Proficient       []string
	Expertise        []string
	Rules            []dnd5e.FeatureRule
}

// Skills returns all eighteen skills in canonical order.
//
// Expertise adds twice the proficiency bonus, proficiency adds it once, and
// an active half-proficiency rule adds half (rounded down) to skills with
// neither. Skill-bonus rules add max(ability modifier, 1) on top, reported
// separately as BonusFromFeature.
func Skills(in *SkillInput) []dnd5e.SkillModifier {
	proficient := skillSet(in.Proficient)
	expertise := skillSet(in.Expertise)
	halfProficiency := len(rulesOfKind(in.Rules, dnd5e.RuleHalfProficiency)) > 0

	featureBonus := make(map[dnd5e.Skill]int)
	for _, rule := range rulesOfKind(in.Rules, dnd5e.RuleSkillBonus) {
		bonus := max(in.Modifiers.Get(rule.Ability), 1)
		for _, skill := range rule.Skills {
			featureBonus[skill] += bonus
		}
	}

	skills := make([]dnd5e.SkillModifier, 0, len(dnd5e.SkillDefinitions))
	for _, def := range dnd5e.SkillDefinitions {
		entry := dnd5e.SkillModifier{
			Skill:   def.Skill,
			Name:    def.Name,
			Ability: def.Ability,
			Total:   in.Modifiers.Get(def.Ability),
		}

		switch {
		case expertise[def.Skill]:
			entry.Total += 2 * in.ProficiencyBonus
			entry.Proficient = true
			entry.Expertise = true
		case proficient[def.Skill]:
			entry.Total += in.ProficiencyBonus
			entry.Proficient = true
		case halfProficiency:
			entry.Total += in.ProficiencyBonus / 2
			entry.HalfProficiency = true
		}

		if bonus := featureBonus[def.Skill]; bonus != 0 {
			entry.Total += bonus
			entry.BonusFromFeature = bonus
		}

		skills = append(skills, entry)
	}
	return skills
}

func skillSet(names []string) map[dnd5e.Skill]bool {
	set := make(map[dnd5e.Skill]bool, len(names))
	for _, name := range names {
		if skill, ok := dnd5e.ParseSkill(name); ok {
			set[skill] = true
		}
	}
	return set
}
