package dnd5e

import "strings"

// Skill is the stable key of a skill
type Skill string

// Skill keys
const (
	SkillAcrobatics     Skill = "acrobatics"
	SkillAnimalHandling Skill = "animal-handling"
	SkillArcana         Skill = "arcana"
	SkillAthletics      Skill = "athletics"
	SkillDeception      Skill = "deception"
	SkillHistory        Skill = "history"
	SkillInsight        Skill = "insight"
	SkillIntimidation   Skill = "intimidation"
	SkillInvestigation  Skill = "investigation"
	SkillMedicine       Skill = "medicine"
	SkillNature         Skill = "nature"
	SkillPerception     Skill = "perception"
	SkillPerformance    Skill = "performance"
	SkillPersuasion     Skill = "persuasion"
	SkillReligion       Skill = "religion"
	SkillSleightOfHand  Skill = "sleight-of-hand"
	SkillStealth        Skill = "stealth"
	SkillSurvival       Skill = "survival"
)

// SkillDefinition ties a skill to its display name and governing ability
type SkillDefinition struct {
	Skill   Skill
	Name    string
	Ability Ability
}

// SkillDefinitions is the canonical, ordered list of all eighteen skills
var SkillDefinitions = []SkillDefinition{
	{SkillAcrobatics, "Acrobatics", AbilityDexterity},
	{SkillAnimalHandling, "Animal Handling", AbilityWisdom},
	{SkillArcana, "Arcana", AbilityIntelligence},
	{SkillAthletics, "Athletics", AbilityStrength},
	{SkillDeception, "Deception", AbilityCharisma},
	{SkillHistory, "History", AbilityIntelligence},
	{SkillInsight, "Insight", AbilityWisdom},
	{SkillIntimidation, "Intimidation", AbilityCharisma},
	{SkillInvestigation, "Investigation", AbilityIntelligence},
	{SkillMedicine, "Medicine", AbilityWisdom},
	{SkillNature, "Nature", AbilityIntelligence},
	{SkillPerception, "Perception", AbilityWisdom},
	{SkillPerformance, "Performance", AbilityCharisma},
	{SkillPersuasion, "Persuasion", AbilityCharisma},
	{SkillReligion, "Religion", AbilityIntelligence},
	{SkillSleightOfHand, "Sleight of Hand", AbilityDexterity},
	{SkillStealth, "Stealth", AbilityDexterity},
	{SkillSurvival, "Survival", AbilityWisdom},
}

// ParseSkill resolves a skill key ("sleight-of-hand") or display name
// ("Sleight of Hand"), ignoring case.
func ParseSkill(s string) (Skill, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, def := range SkillDefinitions {
		if s == string(def.Skill) || s == strings.ToLower(def.Name) {
			return def.Skill, true
		}
	}
	return "", false
}
