package engine

import "github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"

const unarmoredBaseAC = 10

// ArmorClassInput is what the AC calculation reads
type ArmorClassInput struct {
	Modifiers dnd5e.AbilityScores
	Equipped  dnd5e.EquippedSlots
	Rules     []dnd5e.FeatureRule
}

// ArmorClass computes AC from worn armor, shield and dexterity, then lets
// replace-ac rules compete when no armor is worn. An unknown armor id is
// treated as no armor.
func ArmorClass(in *ArmorClassInput, items ItemLookup) dnd5e.ArmorClassResult {
	dex := in.Modifiers.Dexterity
	result := dnd5e.ArmorClassResult{
		Base:     unarmoredBaseAC + dex,
		DexBonus: dex,
	}

	armor := equippedArmor(in.Equipped, items)
	if armor != nil {
		dexBonus := dex
		if dexCap := armor.Armor.DexCap; dexCap != nil && dexBonus > *dexCap {
			dexBonus = *dexCap
		}
		result.Base = armor.Armor.BaseAC + dexBonus
		result.DexBonus = dexBonus
		result.ArmorName = armor.Name
	}

	if shield := equippedShield(in.Equipped, items); shield != nil {
		result.ShieldBonus = shield.Shield.ACBonus
	}

	result.Total = result.Base + result.ShieldBonus
	if armor != nil {
		return result
	}

	// Strictly greater: the armor path wins ties, and between overrides
	// the first listed rule keeps a tie.
	for _, rule := range rulesOfKind(in.Rules, dnd5e.RuleReplaceAC) {
		candidate := rule.Base + result.ShieldBonus
		for _, ability := range rule.Abilities {
			candidate += in.Modifiers.Get(ability)
		}
		if candidate > result.Total {
			result.Total = candidate
			result.OverrideUsed = ruleLabel(rule)
		}
	}

	return result
}

func equippedArmor(equipped dnd5e.EquippedSlots, items ItemLookup) *dnd5e.Item {
	if equipped.Armor == "" {
		return nil
	}
	item, ok := items.Item(equipped.Armor)
	if !ok || !item.IsArmor() {
		return nil
	}
	return item
}

func equippedShield(equipped dnd5e.EquippedSlots, items ItemLookup) *dnd5e.Item {
	if equipped.Shield == "" {
		return nil
	}
	item, ok := items.Item(equipped.Shield)
	if !ok || !item.IsShield() {
		return nil
	}
	return item
}
