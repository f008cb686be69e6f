package engine_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/testutils/builders"
)

type WarningsTestSuite struct {
	EngineTestSuite
}

func TestWarningsSuite(t *testing.T) {
	suite.Run(t, new(WarningsTestSuite))
}

func (s *WarningsTestSuite) warnings(state *dnd5e.CharacterState) []dnd5e.Warning {
	return engine.RecalcAll(state, s.catalog).Warnings
}

func (s *WarningsTestSuite) ids(warnings []dnd5e.Warning) []string {
	ids := make([]string, 0, len(warnings))
	for _, w := range warnings {
		ids = append(ids, w.ID)
	}
	return ids
}

func (s *WarningsTestSuite) TestCleanCharacterHasNoWarnings() {
	state := builders.NewCharacterStateBuilder().
		WithArmorProficiencies("all armor", "shields").
		WithWeaponProficiencies("simple weapons", "martial weapons").
		WithArmor("chain-mail").
		WithShield("shield").
		WithWeapons("longsword").
		WithScore(dnd5e.AbilityStrength, 15).
		Build()

	warnings := s.warnings(state)
	s.Assert().NotNil(warnings)
	s.Assert().Empty(warnings)
}

func (s *WarningsTestSuite) TestArmorNotProficient() {
	state := builders.NewCharacterStateBuilder().
		WithArmorProficiencies("light armor").
		WithArmor("plate").
		Build()

	warnings := s.warnings(state)
	s.Require().Equal([]string{engine.WarningArmorNotProficient}, s.ids(warnings))
	s.Assert().Equal(dnd5e.SeverityWarning, warnings[0].Severity)
	s.Assert().Equal(dnd5e.WarningCategoryEquipment, warnings[0].Category)
	s.Assert().Equal("Not proficient with heavy armor (Plate Armor).", warnings[0].Message)
}

func (s *WarningsTestSuite) TestArmorProficiencySpellings() {
	for _, prof := range []string{"all armor", "Heavy Armor", "heavy"} {
		s.Run(prof, func() {
			state := builders.NewCharacterStateBuilder().
				WithArmorProficiencies(prof).
				WithScore(dnd5e.AbilityStrength, 16).
				WithArmor("plate").
				Build()
			s.Assert().Empty(s.warnings(state))
		})
	}
}

func (s *WarningsTestSuite) TestArmorStrengthRequirement() {
	state := builders.NewCharacterStateBuilder().
		WithArmorProficiencies("heavy armor").
		WithScore(dnd5e.AbilityStrength, 12).
		WithArmor("chain-mail").
		Build()

	warnings := s.warnings(state)
	s.Require().Equal([]string{engine.WarningArmorStrength}, s.ids(warnings))
	s.Assert().Equal(dnd5e.SeverityWarning, warnings[0].Severity)
	s.Assert().Equal("Chain Mail requires Strength 13 (have 12); speed is reduced by 10 ft.", warnings[0].Message)
}

func (s *WarningsTestSuite) TestArmorStrengthUsesFinalScore() {
	state := builders.NewCharacterStateBuilder().
		WithArmorProficiencies("heavy armor").
		WithScore(dnd5e.AbilityStrength, 12).
		WithRacialBonus(dnd5e.AbilityStrength, 1).
		WithArmor("chain-mail").
		Build()

	s.Assert().Empty(s.warnings(state))
}

func (s *WarningsTestSuite) TestStrengthIsOnlyCheckedWhenProficient() {
	state := builders.NewCharacterStateBuilder().
		WithScore(dnd5e.AbilityStrength, 8).
		WithArmor("plate").
		Build()

	s.Assert().Equal([]string{engine.WarningArmorNotProficient}, s.ids(s.warnings(state)))
}

func (s *WarningsTestSuite) TestMissingEquipment() {
	testCases := []struct {
		name     string
		armor    string
		shield   string
		weapons  []string
		expected []string
	}{
		{"unknown armor", "mithril-coat", "", nil, []string{engine.WarningArmorMissing}},
		{"weapon in the armor slot", "longsword", "", nil, []string{engine.WarningArmorMissing}},
		{"unknown shield", "", "tower-shield", nil, []string{engine.WarningShieldMissing}},
		{"armor in the shield slot", "", "leather", nil, []string{engine.WarningShieldMissing}},
		{
			"unknown weapons are reported once each",
			"", "",
			[]string{"longsword", "blaster", "blaster", "leather"},
			[]string{"weapon-missing-blaster", "weapon-missing-leather"},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			state := builders.NewCharacterStateBuilder().
				WithArmorProficiencies("all armor", "shields").
				WithWeaponProficiencies("martial weapons").
				WithArmor(tc.armor).
				WithShield(tc.shield).
				WithWeapons(tc.weapons...).
				Build()

			warnings := s.warnings(state)
			s.Require().Equal(tc.expected, s.ids(warnings))
			for _, w := range warnings {
				s.Assert().Equal(dnd5e.SeverityError, w.Severity)
			}
		})
	}
}

func (s *WarningsTestSuite) TestShieldNotProficient() {
	state := builders.NewCharacterStateBuilder().
		WithArmorProficiencies("light armor").
		WithShield("shield").
		Build()

	warnings := s.warnings(state)
	s.Require().Equal([]string{engine.WarningShieldNotProficient}, s.ids(warnings))
	s.Assert().Equal(dnd5e.SeverityWarning, warnings[0].Severity)
}

func (s *WarningsTestSuite) TestInvalidDerivedStats() {
	state := builders.NewCharacterStateBuilder().Build()

	warnings := engine.CollectWarnings(&engine.WarningsInput{
		State:      state,
		Scores:     state.BaseScores,
		HitPoints:  dnd5e.HitPoints{Max: 0},
		ArmorClass: dnd5e.ArmorClassResult{Total: -1},
	}, s.catalog)

	s.Require().Equal([]string{engine.WarningHitPointsInvalid, engine.WarningArmorClassInvalid}, s.ids(warnings))
	s.Assert().Equal(dnd5e.WarningCategoryStats, warnings[0].Category)
	s.Assert().Equal("Armor class must be positive (got -1).", warnings[1].Message)
}

func (s *WarningsTestSuite) TestAbilityBounds() {
	state := builders.NewCharacterStateBuilder().
		WithScore(dnd5e.AbilityStrength, 0).
		WithScore(dnd5e.AbilityCharisma, 31).
		Build()

	warnings := s.warnings(state)
	s.Require().Equal([]string{engine.WarningAbilityOutOfBounds}, s.ids(warnings))
	s.Assert().Equal(dnd5e.SeverityError, warnings[0].Severity)
	s.Assert().Equal(dnd5e.WarningCategoryAbilities, warnings[0].Category)
	s.Assert().Equal("Ability scores must be between 1 and 30: STR 0, CHA 31.", warnings[0].Message)
}

func (s *WarningsTestSuite) TestUnarmoredDefenseConflicts() {
	testCases := []struct {
		name     string
		classID  string
		armor    string
		shield   string
		expected []string
	}{
		{"barbarian in armor", "barbarian", "breastplate", "", []string{"barbarian-unarmored-defense-armor"}},
		{"barbarian with a shield", "barbarian", "", "shield", []string{}},
		{"monk with a shield", "monk", "", "shield", []string{"monk-unarmored-defense-shield"}},
		{"monk in armor and shield", "monk", "leather", "shield", []string{"monk-unarmored-defense-armor", "monk-unarmored-defense-shield"}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			state := builders.NewCharacterStateBuilder().
				WithClass(tc.classID, 8).
				WithArmorProficiencies("all armor", "shields").
				WithArmor(tc.armor).
				WithShield(tc.shield).
				Build()

			warnings := s.warnings(state)
			s.Require().Equal(tc.expected, s.ids(warnings))
			for _, w := range warnings {
				s.Assert().Equal(dnd5e.SeverityWarning, w.Severity)
				s.Assert().Equal(dnd5e.WarningCategoryClass, w.Category)
			}
		})
	}
}

func (s *WarningsTestSuite) TestRuleConflictMessageNamesArmor() {
	state := builders.NewCharacterStateBuilder().
		WithClass("barbarian", 12).
		WithArmorProficiencies("medium armor").
		WithArmor("breastplate").
		Build()

	warning, ok := engine.RecalcAll(state, s.catalog).Warning("barbarian-unarmored-defense-armor")
	s.Require().True(ok)
	s.Assert().Equal("Unarmored Defense (Barbarian) does not apply while wearing Breastplate.", warning.Message)
}

func (s *WarningsTestSuite) TestOrdering() {
	state := builders.NewCharacterStateBuilder().
		WithClass("monk", 8).
		WithScore(dnd5e.AbilityWisdom, 40).
		WithArmor("plate").
		WithShield("shield").
		WithWeapons("nunchaku").
		Build()

	derived := engine.RecalcAll(state, s.catalog)
	s.Assert().Equal([]string{
		engine.WarningArmorNotProficient,
		engine.WarningShieldNotProficient,
		"weapon-missing-nunchaku",
		engine.WarningAbilityOutOfBounds,
		"monk-unarmored-defense-armor",
		"monk-unarmored-defense-shield",
	}, s.ids(derived.Warnings))
	s.Assert().True(derived.HasErrors())

	again := engine.RecalcAll(state, s.catalog)
	s.Assert().Equal(derived.Warnings, again.Warnings)
}

func (s *WarningsTestSuite) TestFeatPrerequisites() {
	testCases := []struct {
		name     string
		state    *dnd5e.CharacterState
		expected []string
		message  string
	}{
		{
			name:     "ability score too low",
			state:    builders.NewCharacterStateBuilder().WithFeats("grappler").WithScore(dnd5e.AbilityStrength, 12).Build(),
			expected: []string{"feat-prereq-grappler"},
			message:  "Grappler requires STR 13 or higher (have 12).",
		},
		{
			name: "racial bonus counts toward the score",
			state: builders.NewCharacterStateBuilder().
				WithFeats("grappler").
				WithScore(dnd5e.AbilityStrength, 12).
				WithRacialBonus(dnd5e.AbilityStrength, 1).
				Build(),
			expected: []string{},
		},
		{
			name:     "level too low",
			state:    builders.NewCharacterStateBuilder().WithFeats("heavy-armor-master").WithScore(dnd5e.AbilityStrength, 15).Build(),
			expected: []string{"feat-prereq-heavy-armor-master"},
			message:  "Heavy Armor Master requires level 4 or higher (have 1).",
		},
		{
			name: "every unmet prerequisite is listed",
			state: builders.NewCharacterStateBuilder().
				WithFeats("heavy-armor-master").
				WithLevel(0).
				Build(),
			expected: []string{"feat-prereq-heavy-armor-master"},
			message:  "Heavy Armor Master requires level 4 or higher (have 1), STR 13 or higher (have 10).",
		},
		{
			name: "level and ability met",
			state: builders.NewCharacterStateBuilder().
				WithFeats("heavy-armor-master").
				WithLevel(4).
				WithScore(dnd5e.AbilityStrength, 13).
				Build(),
			expected: []string{},
		},
		{
			name:     "not a spellcaster",
			state:    builders.NewCharacterStateBuilder().WithFeats("war-caster").Build(),
			expected: []string{"feat-prereq-war-caster"},
			message:  "War Caster requires the ability to cast spells.",
		},
		{
			name: "spellcaster",
			state: builders.NewCharacterStateBuilder().
				WithClass("cleric", 8).
				WithSpellcastingAbility("wis").
				WithFeats("war-caster").
				Build(),
			expected: []string{},
		},
		{
			name:     "wrong class",
			state:    builders.NewCharacterStateBuilder().WithClass("wizard", 6).WithFeats("fighting-initiate").Build(),
			expected: []string{"feat-prereq-fighting-initiate"},
			message:  "Fighting Initiate requires class fighter or paladin or ranger.",
		},
		{
			name:     "allowed class",
			state:    builders.NewCharacterStateBuilder().WithClass("paladin", 10).WithFeats("fighting-initiate").Build(),
			expected: []string{},
		},
		{
			name:     "feat without prerequisites",
			state:    builders.NewCharacterStateBuilder().WithFeats("alert", "unknown-feat").Build(),
			expected: []string{},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			warnings := s.warnings(tc.state)
			s.Require().Equal(tc.expected, s.ids(warnings))
			if tc.message == "" {
				return
			}
			s.Assert().Equal(dnd5e.SeverityError, warnings[0].Severity)
			s.Assert().Equal(dnd5e.WarningCategoryFeats, warnings[0].Category)
			s.Assert().Equal(tc.message, warnings[0].Message)
		})
	}
}

func (s *WarningsTestSuite) TestFeatEligibility() {
	feat := &dnd5e.FeatData{
		ID:   "heavy-armor-master",
		Name: "Heavy Armor Master",
		Prerequisites: []dnd5e.FeatPrerequisite{
			{Kind: dnd5e.PrerequisiteLevel, Min: 4},
			{Kind: dnd5e.PrerequisiteAbility, Ability: dnd5e.AbilityStrength, Min: 13},
			{Kind: dnd5e.PrerequisiteClass, ClassIDs: []string{"fighter"}},
			{Kind: dnd5e.PrerequisiteSpellcasting},
		},
	}

	s.Assert().Empty(engine.FeatEligibility(feat, &engine.FeatEligibilityInput{
		Level:               4,
		ClassID:             "fighter",
		Scores:              dnd5e.AbilityScores{Strength: 13},
		SpellcastingAbility: "int",
	}))
	s.Assert().Len(engine.FeatEligibility(feat, &engine.FeatEligibilityInput{Level: 1}), 4)
	s.Assert().Empty(engine.FeatEligibility(&dnd5e.FeatData{ID: "alert"}, &engine.FeatEligibilityInput{}))
}
