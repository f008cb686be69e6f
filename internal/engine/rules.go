package engine

import "github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"

// ActiveRules gathers the feature rules that apply to the character at its
// current level. Sources are read in a fixed order: class, subclass, chosen
// class feature options (in catalog order), race, then feats.
func ActiveRules(state *dnd5e.CharacterState, catalog Catalog) []dnd5e.FeatureRule {
	level := clampLevel(state.Level)
	var rules []dnd5e.FeatureRule
	add := func(candidates []dnd5e.FeatureRule) {
		for _, rule := range candidates {
			if rule.ActiveAt(level) {
				rules = append(rules, rule)
			}
		}
	}

	if class, ok := catalog.Class(state.ClassID); ok {
		add(class.Rules)
		if state.SubclassID != "" {
			if sub, ok := class.Subclass(state.SubclassID); ok {
				add(sub.Rules)
			}
		}
		for _, choice := range class.FeatureChoices {
			picked, ok := state.FeatureChoices[choice.Key]
			if !ok {
				continue
			}
			if option, ok := choice.Option(picked); ok {
				add(option.Rules)
			}
		}
	}

	if race, ok := catalog.Race(state.RaceID); ok {
		add(race.Rules)
	}

	for _, featID := range state.FeatIDs {
		if feat, ok := catalog.Feat(featID); ok {
			add(feat.Rules)
		}
	}

	return rules
}

func rulesOfKind(rules []dnd5e.FeatureRule, kind dnd5e.RuleKind) []dnd5e.FeatureRule {
	var out []dnd5e.FeatureRule
	for _, rule := range rules {
		if rule.Kind == kind {
			out = append(out, rule)
		}
	}
	return out
}

func ruleLabel(rule dnd5e.FeatureRule) string {
	if rule.Label != "" {
		return rule.Label
	}
	return rule.ID
}
