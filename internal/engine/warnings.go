package engine

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
)

// Warning ids. Per-weapon and per-rule ids append a suffix.
const (
	WarningArmorMissing        = "armor-missing"
	WarningArmorNotProficient  = "armor-no-prof"
	WarningArmorStrength       = "armor-str-req"
	WarningShieldMissing       = "shield-missing"
	WarningShieldNotProficient = "shield-no-prof"
	WarningWeaponMissingPrefix = "weapon-missing-"
	WarningHitPointsInvalid    = "hp-invalid"
	WarningArmorClassInvalid   = "ac-invalid"
	WarningAbilityOutOfBounds  = "ability-bounds"
	warningRuleArmorSuffix     = "-armor"
	warningRuleShieldSuffix    = "-shield"
)

// Base scores outside this range are flagged
const (
	minBaseAbilityScore = 1
	maxBaseAbilityScore = 30
)

// WarningsInput is the resolved character the warnings are checked against
type WarningsInput struct {
	State      *dnd5e.CharacterState
	Scores     dnd5e.AbilityScores
	HitPoints  dnd5e.HitPoints
	ArmorClass dnd5e.ArmorClassResult
	Rules      []dnd5e.FeatureRule
	// Level is the clamped character level
	Level int
	Feats []*dnd5e.FeatData
}

// CollectWarnings checks a resolved character for rule violations. The
// result is advisory and always in the same order for the same input:
// equipment, derived stats, ability scores, feature rule conflicts, then
// feat prerequisites.
func CollectWarnings(in *WarningsInput, items ItemLookup) []dnd5e.Warning {
	c := &collector{warnings: make([]dnd5e.Warning, 0)}
	state := in.State

	armor := c.checkArmor(state, in.Scores, items)
	shield := c.checkShield(state, items)
	c.checkWeapons(state, items)

	if in.HitPoints.Max <= 0 {
		c.add(WarningHitPointsInvalid, dnd5e.SeverityError, dnd5e.WarningCategoryStats,
			fmt.Sprintf("Maximum hit points must be positive (got %d).", in.HitPoints.Max))
	}
	if in.ArmorClass.Total <= 0 {
		c.add(WarningArmorClassInvalid, dnd5e.SeverityError, dnd5e.WarningCategoryStats,
			fmt.Sprintf("Armor class must be positive (got %d).", in.ArmorClass.Total))
	}

	c.checkAbilityBounds(state.BaseScores)

	for _, rule := range rulesOfKind(in.Rules, dnd5e.RuleReplaceAC) {
		if rule.BreaksWithArmor && armor != nil {
			c.add(rule.ID+warningRuleArmorSuffix, dnd5e.SeverityWarning, dnd5e.WarningCategoryClass,
				fmt.Sprintf("%s does not apply while wearing %s.", ruleLabel(rule), armor.Name))
		}
		if rule.BreaksWithShield && shield != nil {
			c.add(rule.ID+warningRuleShieldSuffix, dnd5e.SeverityWarning, dnd5e.WarningCategoryClass,
				fmt.Sprintf("%s does not allow a shield.", ruleLabel(rule)))
		}
	}

	c.checkFeats(in)

	return c.warnings
}

type collector struct {
	warnings []dnd5e.Warning
}

func (c *collector) add(id string, severity dnd5e.Severity, category dnd5e.WarningCategory, message string) {
	c.warnings = append(c.warnings, dnd5e.Warning{
		ID:       id,
		Severity: severity,
		Category: category,
		Message:  message,
	})
}

// checkArmor returns the worn armor when it resolves to a catalog entry
func (c *collector) checkArmor(state *dnd5e.CharacterState, scores dnd5e.AbilityScores, items ItemLookup) *dnd5e.Item {
	id := state.Equipped.Armor
	if id == "" {
		return nil
	}

	item, ok := items.Item(id)
	if !ok || !item.IsArmor() {
		c.add(WarningArmorMissing, dnd5e.SeverityError, dnd5e.WarningCategoryEquipment,
			fmt.Sprintf("Equipped armor %q is not in the catalog.", id))
		return nil
	}

	switch {
	case !armorProficient(item.Armor.Category, state.Proficiencies.Armor):
		c.add(WarningArmorNotProficient, dnd5e.SeverityWarning, dnd5e.WarningCategoryEquipment,
			fmt.Sprintf("Not proficient with %s armor (%s).", item.Armor.Category, item.Name))
	case item.Armor.StrengthRequirement > 0 && scores.Strength < item.Armor.StrengthRequirement:
		c.add(WarningArmorStrength, dnd5e.SeverityWarning, dnd5e.WarningCategoryEquipment,
			fmt.Sprintf("%s requires Strength %d (have %d); speed is reduced by 10 ft.",
				item.Name, item.Armor.StrengthRequirement, scores.Strength))
	}
	return item
}

func (c *collector) checkShield(state *dnd5e.CharacterState, items ItemLookup) *dnd5e.Item {
	id := state.Equipped.Shield
	if id == "" {
		return nil
	}

	item, ok := items.Item(id)
	if !ok || !item.IsShield() {
		c.add(WarningShieldMissing, dnd5e.SeverityError, dnd5e.WarningCategoryEquipment,
			fmt.Sprintf("Equipped shield %q is not in the catalog.", id))
		return nil
	}

	if !shieldProficient(state.Proficiencies.Armor) {
		c.add(WarningShieldNotProficient, dnd5e.SeverityWarning, dnd5e.WarningCategoryEquipment,
			fmt.Sprintf("Not proficient with shields (%s).", item.Name))
	}
	return item
}

func (c *collector) checkWeapons(state *dnd5e.CharacterState, items ItemLookup) {
	seen := make(map[string]bool, len(state.Equipped.Weapons))
	for _, id := range state.Equipped.Weapons {
		if seen[id] {
			continue
		}
		seen[id] = true

		if item, ok := items.Item(id); ok && item.IsWeapon() {
			continue
		}
		c.add(WarningWeaponMissingPrefix+id, dnd5e.SeverityError, dnd5e.WarningCategoryEquipment,
			fmt.Sprintf("Equipped weapon %q is not in the catalog.", id))
	}
}

func (c *collector) checkAbilityBounds(base dnd5e.AbilityScores) {
	var out []string
	for _, ability := range dnd5e.Abilities {
		score := base.Get(ability)
		if score < minBaseAbilityScore || score > maxBaseAbilityScore {
			out = append(out, fmt.Sprintf("%s %d", strings.ToUpper(ability.String()), score))
		}
	}
	if len(out) == 0 {
		return
	}
	c.add(WarningAbilityOutOfBounds, dnd5e.SeverityError, dnd5e.WarningCategoryAbilities,
		fmt.Sprintf("Ability scores must be between %d and %d: %s.",
			minBaseAbilityScore, maxBaseAbilityScore, strings.Join(out, ", ")))
}

func (c *collector) checkFeats(in *WarningsInput) {
	eligibility := &FeatEligibilityInput{
		Level:               in.Level,
		ClassID:             in.State.ClassID,
		Scores:              in.Scores,
		SpellcastingAbility: in.State.Spellcasting.Ability,
	}
	for _, feat := range in.Feats {
		reasons := FeatEligibility(feat, eligibility)
		if len(reasons) == 0 {
			continue
		}
		c.add(WarningFeatPrerequisitePrefix+feat.ID, dnd5e.SeverityError, dnd5e.WarningCategoryFeats,
			fmt.Sprintf("%s requires %s.", feat.Name, strings.Join(reasons, ", ")))
	}
}

func armorProficient(category dnd5e.ArmorCategory, proficiencies []string) bool {
	want := string(category)
	for _, p := range proficiencies {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "all armor" || p == want || p == want+" armor" {
			return true
		}
	}
	return false
}

func shieldProficient(proficiencies []string) bool {
	for _, p := range proficiencies {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "shields" || p == "shield" {
			return true
		}
	}
	return false
}
