package dnd5e

// DefaultHitDie is used when a state carries no hit die
const DefaultHitDie = 8

// MaxLevel is the highest supported character level
const MaxLevel = 20

// CharacterState is the declarative input to a recalculation. It records
// choices only; every number on the sheet is derived from it.
type CharacterState struct {
	ID           string   `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	Level        int      `json:"level" yaml:"level"`
	ClassID      string   `json:"class_id" yaml:"class_id"`
	SubclassID   string   `json:"subclass_id,omitempty" yaml:"subclass_id,omitempty"`
	RaceID       string   `json:"race_id" yaml:"race_id"`
	BackgroundID string   `json:"background_id,omitempty" yaml:"background_id,omitempty"`
	FeatIDs      []string `json:"feat_ids,omitempty" yaml:"feat_ids,omitempty"`

	BaseScores        AbilityScores  `json:"base_scores" yaml:"base_scores"`
	RacialBonuses     AbilityBonuses `json:"racial_bonuses,omitempty" yaml:"racial_bonuses,omitempty"`
	BackgroundBonuses AbilityBonuses `json:"background_bonuses,omitempty" yaml:"background_bonuses,omitempty"`
	ASIBonuses        AbilityBonuses `json:"asi_bonuses,omitempty" yaml:"asi_bonuses,omitempty"`
	FeatBonuses       AbilityBonuses `json:"feat_bonuses,omitempty" yaml:"feat_bonuses,omitempty"`

	HitDie    int         `json:"hit_die" yaml:"hit_die"`
	HPRolls   map[int]int `json:"hp_rolls,omitempty" yaml:"hp_rolls,omitempty"`
	HitPoints HitPoints   `json:"hit_points" yaml:"hit_points"`

	// FeatureChoices maps a feature choice key (e.g. "cleric:divine-order")
	// to the chosen option id.
	FeatureChoices map[string]string `json:"feature_choices,omitempty" yaml:"feature_choices,omitempty"`

	Proficiencies Proficiencies `json:"proficiencies" yaml:"proficiencies"`
	SavingThrows  []string      `json:"saving_throws,omitempty" yaml:"saving_throws,omitempty"`
	Skills        []string      `json:"skills,omitempty" yaml:"skills,omitempty"`
	Expertise     []string      `json:"expertise,omitempty" yaml:"expertise,omitempty"`

	Equipped     EquippedSlots     `json:"equipped" yaml:"equipped"`
	Inventory    []InventoryEntry  `json:"inventory,omitempty" yaml:"inventory,omitempty"`
	Spellcasting SpellcastingState `json:"spellcasting" yaml:"spellcasting"`

	CreatedAt int64 `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt int64 `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// EffectiveHitDie returns the hit die, falling back to DefaultHitDie
func (c *CharacterState) EffectiveHitDie() int {
	if c.HitDie <= 0 {
		return DefaultHitDie
	}
	return c.HitDie
}

// Proficiencies are free-form strings as granted by class, race and background
type Proficiencies struct {
	Armor     []string `json:"armor,omitempty" yaml:"armor,omitempty"`
	Weapons   []string `json:"weapons,omitempty" yaml:"weapons,omitempty"`
	Tools     []string `json:"tools,omitempty" yaml:"tools,omitempty"`
	Languages []string `json:"languages,omitempty" yaml:"languages,omitempty"`
}

// EquippedSlots references catalog item ids
type EquippedSlots struct {
	Armor   string   `json:"armor,omitempty" yaml:"armor,omitempty"`
	Shield  string   `json:"shield,omitempty" yaml:"shield,omitempty"`
	Weapons []string `json:"weapons,omitempty" yaml:"weapons,omitempty"`
}

// InventoryEntry is a carried item
type InventoryEntry struct {
	ItemID   string `json:"item_id" yaml:"item_id"`
	Quantity int    `json:"quantity" yaml:"quantity"`
	Notes    string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// SpellcastingState holds the casting ability (long name or short key) and
// the selected spells. An empty Ability means the character does not cast.
type SpellcastingState struct {
	Ability  string   `json:"ability,omitempty" yaml:"ability,omitempty"`
	Cantrips []string `json:"cantrips,omitempty" yaml:"cantrips,omitempty"`
	Prepared []string `json:"prepared,omitempty" yaml:"prepared,omitempty"`
}

// HitPoints pairs maximum and current hit points
type HitPoints struct {
	Max     int `json:"max" yaml:"max"`
	Current int `json:"current" yaml:"current"`
}
