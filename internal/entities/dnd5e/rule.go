package dnd5e

// RuleKind tags a FeatureRule variant
type RuleKind string

// Rule kinds
const (
	// RuleReplaceAC offers Base plus the listed ability modifiers as an
	// alternative AC while no armor is worn.
	RuleReplaceAC RuleKind = "replace-ac"
	// RuleMartialArts scales the unarmed and monk weapon damage die by level.
	RuleMartialArts RuleKind = "martial-arts"
	// RuleHalfProficiency adds half the proficiency bonus to untrained skills.
	RuleHalfProficiency RuleKind = "half-proficiency"
	// RuleSkillBonus adds max(ability modifier, 1) to the listed skills.
	RuleSkillBonus RuleKind = "skill-bonus"
	// RuleHPPerLevel adds Amount hit points per character level.
	RuleHPPerLevel RuleKind = "hp-per-level"
)

// FeatureRule is a small, data-driven rule attached to a class, subclass,
// race, feat or feature option. Fields are read according to Kind.
type FeatureRule struct {
	ID       string   `json:"id" yaml:"id"`
	Kind     RuleKind `json:"kind" yaml:"kind"`
	Label    string   `json:"label,omitempty" yaml:"label,omitempty"`
	MinLevel int      `json:"min_level,omitempty" yaml:"min_level,omitempty"`

	// replace-ac
	Base             int       `json:"base,omitempty" yaml:"base,omitempty"`
	Abilities        []Ability `json:"abilities,omitempty" yaml:"abilities,omitempty"`
	BreaksWithArmor  bool      `json:"breaks_with_armor,omitempty" yaml:"breaks_with_armor,omitempty"`
	BreaksWithShield bool      `json:"breaks_with_shield,omitempty" yaml:"breaks_with_shield,omitempty"`

	// skill-bonus
	Ability Ability `json:"ability,omitempty" yaml:"ability,omitempty"`
	Skills  []Skill `json:"skills,omitempty" yaml:"skills,omitempty"`

	// martial-arts
	Dice []DieStep `json:"dice,omitempty" yaml:"dice,omitempty"`

	// hp-per-level
	Amount int `json:"amount,omitempty" yaml:"amount,omitempty"`
}

// ActiveAt reports whether the rule applies at the given character level
func (r FeatureRule) ActiveAt(level int) bool {
	return level >= r.MinLevel
}

// DieStep is one entry of a level-scaled die progression
type DieStep struct {
	Level int    `json:"level" yaml:"level"`
	Die   string `json:"die" yaml:"die"`
}

// DieAt returns the die of the highest step at or below level, or "" when
// no step has been reached.
func (r FeatureRule) DieAt(level int) string {
	die := ""
	best := 0
	for _, step := range r.Dice {
		if step.Level <= level && step.Level >= best {
			best = step.Level
			die = step.Die
		}
	}
	return die
}
