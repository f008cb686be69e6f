package engine

import "github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"

// RecalcAll derives the full stat block for state. Steps run in a fixed
// order and each reads only the results of earlier steps:
//
//  1. ability scores and modifiers
//  2. proficiency bonus
//  3. active feature rules
//  4. armor class
//  5. hit points, reconciling the state's last known current HP
//  6. attacks
//  7. saving throws and skills
//  8. spellcasting stats
//  9. warnings over everything above, including feat prerequisites
//
// Neither state nor catalog is modified. A nil catalog behaves as an empty
// one.
func RecalcAll(state *dnd5e.CharacterState, catalog Catalog) *dnd5e.DerivedStats {
	if catalog == nil {
		catalog = emptyCatalog{}
	}

	level := clampLevel(state.Level)
	abilities := ResolveAbilityScores(state)
	mods := abilities.Modifiers
	profBonus := ProficiencyBonus(level)
	rules := ActiveRules(state, catalog)

	armorClass := ArmorClass(&ArmorClassInput{
		Modifiers: mods,
		Equipped:  state.Equipped,
		Rules:     rules,
	}, catalog)

	maxHP := MaxHitPoints(state.EffectiveHitDie(), level, mods.Constitution, state.HPRolls) +
		hitPointBonus(rules, level)
	hitPoints := dnd5e.HitPoints{
		Max:     maxHP,
		Current: AdjustCurrentHP(state.HitPoints.Current, state.HitPoints.Max, maxHP),
	}

	attacks := BuildAttacks(&AttackInput{
		Modifiers:           mods,
		ProficiencyBonus:    profBonus,
		Level:               level,
		Weapons:             state.Equipped.Weapons,
		WeaponProficiencies: state.Proficiencies.Weapons,
		Rules:               rules,
	}, catalog)

	saves := SavingThrows(mods, profBonus, state.SavingThrows)
	skills := Skills(&SkillInput{
		Modifiers:        mods,
		ProficiencyBonus: profBonus,
		Proficient:       state.Skills,
		Expertise:        state.Expertise,
		Rules:            rules,
	})

	spellStats := SpellStats(state.Spellcasting.Ability, mods, profBonus)

	warnings := CollectWarnings(&WarningsInput{
		State:      state,
		Scores:     abilities.Scores,
		HitPoints:  hitPoints,
		ArmorClass: armorClass,
		Rules:      rules,
		Level:      level,
		Feats:      resolveFeats(state.FeatIDs, catalog),
	}, catalog)

	return &dnd5e.DerivedStats{
		AbilityScores:    abilities.Scores,
		AbilityModifiers: mods,
		ProficiencyBonus: profBonus,
		ArmorClass:       armorClass,
		HitPoints:        hitPoints,
		Attacks:          attacks,
		SavingThrows:     saves,
		Skills:           skills,
		SpellStats:       spellStats,
		Warnings:         warnings,
	}
}

type emptyCatalog struct{}

func (emptyCatalog) Item(string) (*dnd5e.Item, bool)                     { return nil, false }
func (emptyCatalog) Class(string) (*dnd5e.ClassData, bool)               { return nil, false }
func (emptyCatalog) Subclass(string, string) (*dnd5e.SubclassData, bool) { return nil, false }
func (emptyCatalog) Race(string) (*dnd5e.RaceData, bool)                 { return nil, false }
func (emptyCatalog) Background(string) (*dnd5e.BackgroundData, bool)     { return nil, false }
func (emptyCatalog) Feat(string) (*dnd5e.FeatData, bool)                 { return nil, false }
