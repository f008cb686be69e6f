// Package dnd5e holds the character state, reference data and derived stat
// types shared by the engine, catalog and storage layers.
// NOTE: These are data-only structs. All rule math lives in internal/engine.
package dnd5e

import "strings"

// Ability is the short key of one of the six abilities
type Ability string

// Ability keys
const (
	AbilityStrength     Ability = "str"
	AbilityDexterity    Ability = "dex"
	AbilityConstitution Ability = "con"
	AbilityIntelligence Ability = "int"
	AbilityWisdom       Ability = "wis"
	AbilityCharisma     Ability = "cha"
)

// Abilities lists every ability in sheet order
var Abilities = []Ability{
	AbilityStrength,
	AbilityDexterity,
	AbilityConstitution,
	AbilityIntelligence,
	AbilityWisdom,
	AbilityCharisma,
}

var abilityNames = map[Ability]string{
	AbilityStrength:     "Strength",
	AbilityDexterity:    "Dexterity",
	AbilityConstitution: "Constitution",
	AbilityIntelligence: "Intelligence",
	AbilityWisdom:       "Wisdom",
	AbilityCharisma:     "Charisma",
}

// Name returns the long display name, e.g. "Dexterity"
func (a Ability) Name() string {
	return abilityNames[a]
}

// String returns the short key
func (a Ability) String() string {
	return string(a)
}

// ParseAbility resolves either the short key ("dex") or the long name
// ("Dexterity") to an Ability. Matching ignores case and surrounding space.
func ParseAbility(s string) (Ability, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", false
	}
	for _, a := range Abilities {
		if s == string(a) || s == strings.ToLower(abilityNames[a]) {
			return a, true
		}
	}
	return "", false
}

// AbilityScores holds one integer per ability. It is used both for scores
// and for their modifiers.
type AbilityScores struct {
	Strength     int `json:"str" yaml:"str"`
	Dexterity    int `json:"dex" yaml:"dex"`
	Constitution int `json:"con" yaml:"con"`
	Intelligence int `json:"int" yaml:"int"`
	Wisdom       int `json:"wis" yaml:"wis"`
	Charisma     int `json:"cha" yaml:"cha"`
}

// Get returns the value for an ability, 0 for an unknown key
func (s AbilityScores) Get(a Ability) int {
	switch a {
	case AbilityStrength:
		return s.Strength
	case AbilityDexterity:
		return s.Dexterity
	case AbilityConstitution:
		return s.Constitution
	case AbilityIntelligence:
		return s.Intelligence
	case AbilityWisdom:
		return s.Wisdom
	case AbilityCharisma:
		return s.Charisma
	default:
		return 0
	}
}

// Set stores the value for an ability. Unknown keys are ignored.
func (s *AbilityScores) Set(a Ability, value int) {
	switch a {
	case AbilityStrength:
		s.Strength = value
	case AbilityDexterity:
		s.Dexterity = value
	case AbilityConstitution:
		s.Constitution = value
	case AbilityIntelligence:
		s.Intelligence = value
	case AbilityWisdom:
		s.Wisdom = value
	case AbilityCharisma:
		s.Charisma = value
	}
}

// AbilityBonuses maps an ability to a signed delta
type AbilityBonuses map[Ability]int
