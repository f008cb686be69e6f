package dnd5e

// ClassData is the catalog entry for a class
type ClassData struct {
	ID                  string          `json:"id" yaml:"id"`
	Name                string          `json:"name" yaml:"name"`
	HitDie              int             `json:"hit_die" yaml:"hit_die"`
	SavingThrows        []Ability       `json:"saving_throws,omitempty" yaml:"saving_throws,omitempty"`
	ArmorProficiencies  []string        `json:"armor_proficiencies,omitempty" yaml:"armor_proficiencies,omitempty"`
	WeaponProficiencies []string        `json:"weapon_proficiencies,omitempty" yaml:"weapon_proficiencies,omitempty"`
	SpellcastingAbility Ability         `json:"spellcasting_ability,omitempty" yaml:"spellcasting_ability,omitempty"`
	Rules               []FeatureRule   `json:"rules,omitempty" yaml:"rules,omitempty"`
	Subclasses          []SubclassData  `json:"subclasses,omitempty" yaml:"subclasses,omitempty"`
	FeatureChoices      []FeatureChoice `json:"feature_choices,omitempty" yaml:"feature_choices,omitempty"`
}

// Subclass finds a subclass by id
func (c *ClassData) Subclass(id string) (*SubclassData, bool) {
	for i := range c.Subclasses {
		if c.Subclasses[i].ID == id {
			return &c.Subclasses[i], true
		}
	}
	return nil, false
}

// SubclassData is a subclass nested under its class
type SubclassData struct {
	ID    string        `json:"id" yaml:"id"`
	Name  string        `json:"name" yaml:"name"`
	Rules []FeatureRule `json:"rules,omitempty" yaml:"rules,omitempty"`
}

// FeatureChoice is a class feature that asks the player to pick an option
type FeatureChoice struct {
	Key     string          `json:"key" yaml:"key"`
	Name    string          `json:"name" yaml:"name"`
	Options []FeatureOption `json:"options" yaml:"options"`
}

// Option finds an option by id
func (f *FeatureChoice) Option(id string) (*FeatureOption, bool) {
	for i := range f.Options {
		if f.Options[i].ID == id {
			return &f.Options[i], true
		}
	}
	return nil, false
}

// FeatureOption is one selectable answer to a FeatureChoice
type FeatureOption struct {
	ID    string        `json:"id" yaml:"id"`
	Name  string        `json:"name" yaml:"name"`
	Rules []FeatureRule `json:"rules,omitempty" yaml:"rules,omitempty"`
}

// RaceData is the catalog entry for a race or species
type RaceData struct {
	ID      string         `json:"id" yaml:"id"`
	Name    string         `json:"name" yaml:"name"`
	Speed   int            `json:"speed" yaml:"speed"`
	Bonuses AbilityBonuses `json:"bonuses,omitempty" yaml:"bonuses,omitempty"`
	Rules   []FeatureRule  `json:"rules,omitempty" yaml:"rules,omitempty"`
}

// BackgroundData is the catalog entry for a background
type BackgroundData struct {
	ID                 string   `json:"id" yaml:"id"`
	Name               string   `json:"name" yaml:"name"`
	SkillProficiencies []Skill  `json:"skill_proficiencies,omitempty" yaml:"skill_proficiencies,omitempty"`
	ToolProficiencies  []string `json:"tool_proficiencies,omitempty" yaml:"tool_proficiencies,omitempty"`
}

// FeatData is the catalog entry for a feat
type FeatData struct {
	ID            string             `json:"id" yaml:"id"`
	Name          string             `json:"name" yaml:"name"`
	Prerequisites []FeatPrerequisite `json:"prerequisites,omitempty" yaml:"prerequisites,omitempty"`
	Rules         []FeatureRule      `json:"rules,omitempty" yaml:"rules,omitempty"`
}

// PrerequisiteKind selects what a feat prerequisite checks
type PrerequisiteKind string

// Prerequisite kinds
const (
	PrerequisiteLevel        PrerequisiteKind = "level"
	PrerequisiteAbility      PrerequisiteKind = "ability"
	PrerequisiteClass        PrerequisiteKind = "class"
	PrerequisiteSpellcasting PrerequisiteKind = "spellcasting"
)

// FeatPrerequisite is one condition a character must meet to take a feat.
// Min applies to level and ability kinds; Ability to the ability kind;
// ClassIDs to the class kind.
type FeatPrerequisite struct {
	Kind     PrerequisiteKind `json:"kind" yaml:"kind"`
	Min      int              `json:"min,omitempty" yaml:"min,omitempty"`
	Ability  Ability          `json:"ability,omitempty" yaml:"ability,omitempty"`
	ClassIDs []string         `json:"class_ids,omitempty" yaml:"class_ids,omitempty"`
}
