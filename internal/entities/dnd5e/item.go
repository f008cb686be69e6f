package dnd5e

// ItemType classifies catalog items
type ItemType string

// Item types
const (
	ItemTypeWeapon ItemType = "weapon"
	ItemTypeArmor  ItemType = "armor"
	ItemTypeShield ItemType = "shield"
	ItemTypeGear   ItemType = "gear"
)

// ArmorCategory is the proficiency class of a suit of armor
type ArmorCategory string

// Armor categories
const (
	ArmorCategoryLight  ArmorCategory = "light"
	ArmorCategoryMedium ArmorCategory = "medium"
	ArmorCategoryHeavy  ArmorCategory = "heavy"
)

// WeaponCategory is the proficiency class of a weapon
type WeaponCategory string

// Weapon categories
const (
	WeaponCategorySimple  WeaponCategory = "simple"
	WeaponCategoryMartial WeaponCategory = "martial"
)

// Item is a read-only catalog entry. Exactly one of Armor, Shield or Weapon
// is set for the matching Type.
type Item struct {
	ID     string            `json:"id" yaml:"id"`
	Name   string            `json:"name" yaml:"name"`
	Type   ItemType          `json:"type" yaml:"type"`
	Weight float64           `json:"weight,omitempty" yaml:"weight,omitempty"`
	Armor  *ArmorProperties  `json:"armor,omitempty" yaml:"armor,omitempty"`
	Shield *ShieldProperties `json:"shield,omitempty" yaml:"shield,omitempty"`
	Weapon *WeaponProperties `json:"weapon,omitempty" yaml:"weapon,omitempty"`
}

// IsArmor reports whether the item is wearable body armor
func (i *Item) IsArmor() bool {
	return i != nil && i.Type == ItemTypeArmor && i.Armor != nil
}

// IsShield reports whether the item is a shield
func (i *Item) IsShield() bool {
	return i != nil && i.Type == ItemTypeShield && i.Shield != nil
}

// IsWeapon reports whether the item can be attacked with
func (i *Item) IsWeapon() bool {
	return i != nil && i.Type == ItemTypeWeapon && i.Weapon != nil
}

// ArmorProperties describe body armor. A nil DexCap means the dexterity
// modifier is added uncapped.
type ArmorProperties struct {
	Category            ArmorCategory `json:"category" yaml:"category"`
	BaseAC              int           `json:"base_ac" yaml:"base_ac"`
	DexCap              *int          `json:"dex_cap" yaml:"dex_cap"`
	StrengthRequirement int           `json:"strength_requirement,omitempty" yaml:"strength_requirement,omitempty"`
	StealthDisadvantage bool          `json:"stealth_disadvantage,omitempty" yaml:"stealth_disadvantage,omitempty"`
}

// ShieldProperties describe a shield
type ShieldProperties struct {
	ACBonus int `json:"ac_bonus" yaml:"ac_bonus"`
}

// WeaponProperties describe a weapon. Range and Thrown are display strings
// such as "80/320 ft"; empty means not applicable.
type WeaponProperties struct {
	Category   WeaponCategory `json:"category" yaml:"category"`
	DamageDice string         `json:"damage_dice" yaml:"damage_dice"`
	DamageType string         `json:"damage_type" yaml:"damage_type"`
	Range      string         `json:"range,omitempty" yaml:"range,omitempty"`
	Thrown     string         `json:"thrown,omitempty" yaml:"thrown,omitempty"`
	Versatile  string         `json:"versatile,omitempty" yaml:"versatile,omitempty"`
	Finesse    bool           `json:"finesse,omitempty" yaml:"finesse,omitempty"`
	Light      bool           `json:"light,omitempty" yaml:"light,omitempty"`
	Heavy      bool           `json:"heavy,omitempty" yaml:"heavy,omitempty"`
	TwoHanded  bool           `json:"two_handed,omitempty" yaml:"two_handed,omitempty"`
	Ammunition bool           `json:"ammunition,omitempty" yaml:"ammunition,omitempty"`
	Reach      bool           `json:"reach,omitempty" yaml:"reach,omitempty"`
}

// IsRanged reports whether attacks are made at range rather than in melee
func (w *WeaponProperties) IsRanged() bool {
	return w.Range != "" || w.Ammunition
}
