package dnd5e

// DerivedStats is the full computed stat block for one CharacterState.
// A new value is produced on every recalculation.
type DerivedStats struct {
	AbilityScores    AbilityScores    `json:"ability_scores"`
	AbilityModifiers AbilityScores    `json:"ability_modifiers"`
	ProficiencyBonus int              `json:"proficiency_bonus"`
	ArmorClass       ArmorClassResult `json:"armor_class"`
	HitPoints        HitPoints        `json:"hit_points"`
	Attacks          []AttackEntry    `json:"attacks"`
	SavingThrows     []SaveModifier   `json:"saving_throws"`
	Skills           []SkillModifier  `json:"skills"`
	SpellStats       SpellStats       `json:"spell_stats"`
	Warnings         []Warning        `json:"warnings"`
}

// SavingThrow returns the save entry for an ability
func (d *DerivedStats) SavingThrow(a Ability) (SaveModifier, bool) {
	for _, s := range d.SavingThrows {
		if s.Ability == a {
			return s, true
		}
	}
	return SaveModifier{}, false
}

// Skill returns the entry for a skill
func (d *DerivedStats) Skill(skill Skill) (SkillModifier, bool) {
	for _, s := range d.Skills {
		if s.Skill == skill {
			return s, true
		}
	}
	return SkillModifier{}, false
}

// Warning returns the warning with the given id
func (d *DerivedStats) Warning(id string) (Warning, bool) {
	for _, w := range d.Warnings {
		if w.ID == id {
			return w, true
		}
	}
	return Warning{}, false
}

// HasErrors reports whether any warning carries error severity
func (d *DerivedStats) HasErrors() bool {
	for _, w := range d.Warnings {
		if w.Severity == SeverityError {
			return true
		}
	}
	return false
}

// ArmorClassResult explains how the final AC was reached. OverrideUsed holds
// the label of the winning replace-ac rule, empty when the armor path won.
type ArmorClassResult struct {
	Total        int    `json:"total"`
	Base         int    `json:"base"`
	ArmorName    string `json:"armor_name,omitempty"`
	ShieldBonus  int    `json:"shield_bonus"`
	DexBonus     int    `json:"dex_bonus"`
	OverrideUsed string `json:"override_used,omitempty"`
}

// AttackEntry is one row of the attacks table
type AttackEntry struct {
	WeaponID   string  `json:"weapon_id"`
	Name       string  `json:"name"`
	Ability    Ability `json:"ability"`
	ToHit      int     `json:"to_hit"`
	Damage     string  `json:"damage"`
	Range      string  `json:"range"`
	Proficient bool    `json:"proficient"`
}

// SaveModifier is the total for one saving throw
type SaveModifier struct {
	Ability    Ability `json:"ability"`
	Total      int     `json:"total"`
	Proficient bool    `json:"proficient"`
}

// SkillModifier is the total for one skill
type SkillModifier struct {
	Skill            Skill   `json:"skill"`
	Name             string  `json:"name"`
	Ability          Ability `json:"ability"`
	Total            int     `json:"total"`
	Proficient       bool    `json:"proficient"`
	Expertise        bool    `json:"expertise"`
	HalfProficiency  bool    `json:"half_proficiency"`
	BonusFromFeature int     `json:"bonus_from_feature"`
}

// SpellStats are zero when the character has no casting ability
type SpellStats struct {
	SaveDC      int `json:"save_dc"`
	AttackBonus int `json:"attack_bonus"`
}

// Severity grades a warning
type Severity string

// Severities
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// WarningCategory groups related warnings for display
type WarningCategory string

// Warning categories
const (
	WarningCategoryEquipment WarningCategory = "equipment"
	WarningCategoryStats     WarningCategory = "stats"
	WarningCategoryAbilities WarningCategory = "abilities"
	WarningCategoryClass     WarningCategory = "class"
	WarningCategoryFeats     WarningCategory = "feats"
)

// Warning is an advisory diagnostic. It never blocks a recalculation.
type Warning struct {
	ID       string          `json:"id"`
	Severity Severity        `json:"severity"`
	Category WarningCategory `json:"category"`
	Message  string          `json:"message"`
}
