package character

import (
	"slices"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// validateState rejects states the engine could compute but that a stored
// character must not have: no name, no class, a level outside 1..20, or
// references the catalog does not know.
func (o *Orchestrator) validateState(state *dnd5e.CharacterState) error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("name", state.Name, vb)
	errors.ValidateRange("level", state.Level, 1, dnd5e.MaxLevel, vb)

	if state.ClassID == "" {
		vb.RequiredField("class_id")
	} else if _, ok := o.catalog.Class(state.ClassID); !ok {
		vb.Fieldf("class_id", "unknown class %q", state.ClassID)
	} else if state.SubclassID != "" {
		if _, ok := o.catalog.Subclass(state.ClassID, state.SubclassID); !ok {
			vb.Fieldf("subclass_id", "unknown subclass %q for class %q", state.SubclassID, state.ClassID)
		}
	}

	if state.RaceID != "" {
		if _, ok := o.catalog.Race(state.RaceID); !ok {
			vb.Fieldf("race_id", "unknown race %q", state.RaceID)
		}
	}
	if state.BackgroundID != "" {
		if _, ok := o.catalog.Background(state.BackgroundID); !ok {
			vb.Fieldf("background_id", "unknown background %q", state.BackgroundID)
		}
	}
	for _, featID := range state.FeatIDs {
		if _, ok := o.catalog.Feat(featID); !ok {
			vb.Fieldf("feat_ids", "unknown feat %q", featID)
		}
	}

	if state.HitDie < 0 {
		vb.Field("hit_die", "must not be negative")
	}

	return vb.Build()
}

// applyCatalogDefaults fills derived choices the caller left empty from the
// class, race and background entries. Values already present are kept.
func (o *Orchestrator) applyCatalogDefaults(state *dnd5e.CharacterState) {
	if class, ok := o.catalog.Class(state.ClassID); ok {
		if state.HitDie == 0 {
			state.HitDie = class.HitDie
		}
		if len(state.SavingThrows) == 0 {
			for _, ability := range class.SavingThrows {
				state.SavingThrows = append(state.SavingThrows, string(ability))
			}
		}
		if len(state.Proficiencies.Armor) == 0 {
			state.Proficiencies.Armor = slices.Clone(class.ArmorProficiencies)
		}
		if len(state.Proficiencies.Weapons) == 0 {
			state.Proficiencies.Weapons = slices.Clone(class.WeaponProficiencies)
		}
		if state.Spellcasting.Ability == "" && class.SpellcastingAbility != "" {
			state.Spellcasting.Ability = string(class.SpellcastingAbility)
		}
	}

	if race, ok := o.catalog.Race(state.RaceID); ok && len(state.RacialBonuses) == 0 && len(race.Bonuses) > 0 {
		bonuses := make(dnd5e.AbilityBonuses, len(race.Bonuses))
		for ability, bonus := range race.Bonuses {
			bonuses[ability] = bonus
		}
		state.RacialBonuses = bonuses
	}

	if background, ok := o.catalog.Background(state.BackgroundID); ok {
		skills := slices.Clone(state.Skills)
		for _, skill := range background.SkillProficiencies {
			if !slices.Contains(skills, string(skill)) {
				skills = append(skills, string(skill))
			}
		}
		state.Skills = skills
		if len(state.Proficiencies.Tools) == 0 {
			state.Proficiencies.Tools = slices.Clone(background.ToolProficiencies)
		}
	}
}
