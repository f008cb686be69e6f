package engine

import (
	"fmt"
	"slices"
	"strings"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
)

// WarningFeatPrerequisitePrefix is followed by the feat id
const WarningFeatPrerequisitePrefix = "feat-prereq-"

// FeatEligibilityInput is what feat prerequisites are checked against
type FeatEligibilityInput struct {
	Level   int
	ClassID string
	// Scores are the final scores, after every bonus
	Scores dnd5e.AbilityScores
	// SpellcastingAbility is empty for characters that cannot cast
	SpellcastingAbility string
}

// FeatEligibility returns one reason per unmet prerequisite. An empty
// result means the character may take the feat.
func FeatEligibility(feat *dnd5e.FeatData, in *FeatEligibilityInput) []string {
	var reasons []string
	for _, prereq := range feat.Prerequisites {
		switch prereq.Kind {
		case dnd5e.PrerequisiteLevel:
			if prereq.Min > 0 && in.Level < prereq.Min {
				reasons = append(reasons, fmt.Sprintf("level %d or higher (have %d)", prereq.Min, in.Level))
			}
		case dnd5e.PrerequisiteAbility:
			if prereq.Min > 0 && prereq.Ability != "" {
				if score := in.Scores.Get(prereq.Ability); score < prereq.Min {
					reasons = append(reasons, fmt.Sprintf("%s %d or higher (have %d)",
						strings.ToUpper(prereq.Ability.String()), prereq.Min, score))
				}
			}
		case dnd5e.PrerequisiteClass:
			if len(prereq.ClassIDs) > 0 && !slices.Contains(prereq.ClassIDs, in.ClassID) {
				reasons = append(reasons, "class "+strings.Join(prereq.ClassIDs, " or "))
			}
		case dnd5e.PrerequisiteSpellcasting:
			if strings.TrimSpace(in.SpellcastingAbility) == "" {
				reasons = append(reasons, "the ability to cast spells")
			}
		}
	}
	return reasons
}

// resolveFeats returns the catalog entries for the character's feats in
// state order. Unknown ids are skipped.
func resolveFeats(featIDs []string, catalog Catalog) []*dnd5e.FeatData {
	feats := make([]*dnd5e.FeatData, 0, len(featIDs))
	for _, id := range featIDs {
		if feat, ok := catalog.Feat(id); ok {
			feats = append(feats, feat)
		}
	}
	return feats
}
