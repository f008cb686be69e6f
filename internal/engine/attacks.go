package engine

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
)

// Unarmed strike entry
const (
	UnarmedStrikeID   = "unarmed-strike"
	UnarmedStrikeName = "Unarmed Strike"
)

const (
	meleeReach    = "5 ft"
	extendedReach = "10 ft"
)

// AttackInput is what the attack table is built from
type AttackInput struct {
	Modifiers           dnd5e.AbilityScores
	ProficiencyBonus    int
	Level               int
	Weapons             []string
	WeaponProficiencies []string
	Rules               []dnd5e.FeatureRule
}

// BuildAttacks returns one entry per equipped weapon found in the catalog,
// in equipped order, followed by the unarmed strike every character has.
// Unknown weapon ids are skipped.
func BuildAttacks(in *AttackInput, items ItemLookup) []dnd5e.AttackEntry {
	martialDie := martialArtsDie(in.Rules, in.Level)

	attacks := make([]dnd5e.AttackEntry, 0, len(in.Weapons)+1)
	for _, id := range in.Weapons {
		item, ok := items.Item(id)
		if !ok || !item.IsWeapon() {
			continue
		}
		attacks = append(attacks, weaponAttack(in, item, martialDie))
	}

	return append(attacks, unarmedStrike(in, martialDie))
}

func weaponAttack(in *AttackInput, item *dnd5e.Item, martialDie string) dnd5e.AttackEntry {
	weapon := item.Weapon
	mods := in.Modifiers

	ability := dnd5e.AbilityStrength
	switch {
	case weapon.Finesse:
		ability = strOrDex(mods)
	case weapon.IsRanged() || weapon.Thrown != "":
		ability = dnd5e.AbilityDexterity
	}

	dice := weapon.DamageDice
	if martialDie != "" && monkWeapon(weapon) {
		ability = strOrDex(mods)
		dice = largerDice(dice, martialDie)
	}

	mod := mods.Get(ability)
	proficient := weaponProficient(item, in.WeaponProficiencies)
	toHit := mod
	if proficient {
		toHit += in.ProficiencyBonus
	}

	damage := fmt.Sprintf("%s%+d %s", dice, mod, weapon.DamageType)
	if weapon.Versatile != "" {
		damage += fmt.Sprintf(" (versatile: %s%+d)", weapon.Versatile, mod)
	}

	return dnd5e.AttackEntry{
		WeaponID:   item.ID,
		Name:       item.Name,
		Ability:    ability,
		ToHit:      toHit,
		Damage:     damage,
		Range:      weaponRange(weapon),
		Proficient: proficient,
	}
}

func unarmedStrike(in *AttackInput, martialDie string) dnd5e.AttackEntry {
	ability := dnd5e.AbilityStrength
	dice := "1"
	if martialDie != "" {
		ability = strOrDex(in.Modifiers)
		dice = martialDie
	}
	mod := in.Modifiers.Get(ability)

	return dnd5e.AttackEntry{
		WeaponID:   UnarmedStrikeID,
		Name:       UnarmedStrikeName,
		Ability:    ability,
		ToHit:      mod + in.ProficiencyBonus,
		Damage:     fmt.Sprintf("%s%+d bludgeoning", dice, mod),
		Range:      meleeReach,
		Proficient: true,
	}
}

// martialArtsDie returns the largest die granted by martial-arts rules at
// this level, or "" when none apply.
func martialArtsDie(rules []dnd5e.FeatureRule, level int) string {
	die := ""
	for _, rule := range rulesOfKind(rules, dnd5e.RuleMartialArts) {
		if candidate := rule.DieAt(level); candidate != "" {
			if die == "" {
				die = candidate
				continue
			}
			die = largerDice(die, candidate)
		}
	}
	return die
}

// monkWeapon: simple melee weapons, and martial melee weapons with the
// light property.
func monkWeapon(weapon *dnd5e.WeaponProperties) bool {
	if weapon.IsRanged() {
		return false
	}
	switch weapon.Category {
	case dnd5e.WeaponCategorySimple:
		return true
	case dnd5e.WeaponCategoryMartial:
		return weapon.Light
	default:
		return false
	}
}

func strOrDex(mods dnd5e.AbilityScores) dnd5e.Ability {
	if mods.Dexterity > mods.Strength {
		return dnd5e.AbilityDexterity
	}
	return dnd5e.AbilityStrength
}

// weaponProficient matches proficiency strings against the weapon category
// ("simple", "martial weapons") or against the weapon's name and id in
// either direction ("longswords" covers "Longsword").
func weaponProficient(item *dnd5e.Item, proficiencies []string) bool {
	category := strings.ToLower(string(item.Weapon.Category))
	name := strings.ToLower(item.Name)
	for _, p := range proficiencies {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		if category != "" && (p == category || p == category+" weapons") {
			return true
		}
		if p == item.ID {
			return true
		}
		if name != "" && (strings.Contains(name, p) || strings.Contains(p, name)) {
			return true
		}
	}
	return false
}

func weaponRange(weapon *dnd5e.WeaponProperties) string {
	switch {
	case weapon.Range != "":
		return weapon.Range
	case weapon.Thrown != "":
		return weapon.Thrown
	case weapon.Reach:
		return extendedReach
	default:
		return meleeReach
	}
}
