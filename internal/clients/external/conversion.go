package external

import (
	"strings"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"

	internalDnd5e "github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
)

// Range used for thrown weapons when no catalog entry supplies one
const defaultThrownRange = "20/60 ft"

// Medium armor adds at most this much dexterity
const mediumArmorDexCap = 2

// API shield category
const armorCategoryShield = "shield"

// versatileSteps maps a one-handed die to its two-handed counterpart
var versatileSteps = map[string]string{
	"1d4":  "1d6",
	"1d6":  "1d8",
	"1d8":  "1d10",
	"1d10": "1d12",
}

// itemID turns an API key into a catalog id. Armor keys drop their
// "-armor" suffix: "leather-armor" becomes "leather".
func itemID(key string) string {
	if trimmed := strings.TrimSuffix(key, "-armor"); trimmed != "" {
		return trimmed
	}
	return key
}

// convertEquipment converts dnd5e-api equipment into a catalog item. Only
// armor, shields and weapons with damage are kept.
func convertEquipment(equipment dnd5e.EquipmentInterface) (*internalDnd5e.Item, bool) {
	switch eq := equipment.(type) {
	case *entities.Weapon:
		return convertWeapon(eq)
	case *entities.Armor:
		return convertArmor(eq)
	default:
		return nil, false
	}
}

func convertWeapon(weapon *entities.Weapon) (*internalDnd5e.Item, bool) {
	if weapon == nil || weapon.Damage == nil || weapon.Damage.DamageDice == "" {
		return nil, false
	}

	props := &internalDnd5e.WeaponProperties{
		Category:   internalDnd5e.WeaponCategory(strings.ToLower(weapon.WeaponCategory)),
		DamageDice: weapon.Damage.DamageDice,
	}
	if weapon.Damage.DamageType != nil {
		props.DamageType = strings.ToLower(weapon.Damage.DamageType.Name)
	}

	for _, prop := range weapon.Properties {
		if prop == nil {
			continue
		}
		switch strings.ToLower(prop.Name) {
		case "finesse":
			props.Finesse = true
		case "light":
			props.Light = true
		case "heavy":
			props.Heavy = true
		case "two-handed":
			props.TwoHanded = true
		case "ammunition":
			props.Ammunition = true
		case "reach":
			props.Reach = true
		case "thrown":
			props.Thrown = defaultThrownRange
		case "versatile":
			props.Versatile = versatileDie(props.DamageDice)
		}
	}

	return &internalDnd5e.Item{
		ID:     itemID(weapon.Key),
		Name:   weapon.Name,
		Type:   internalDnd5e.ItemTypeWeapon,
		Weight: float64(weapon.Weight),
		Weapon: props,
	}, true
}

func convertArmor(armor *entities.Armor) (*internalDnd5e.Item, bool) {
	if armor == nil || armor.ArmorClass == nil {
		return nil, false
	}

	item := &internalDnd5e.Item{
		ID:     itemID(armor.Key),
		Name:   armor.Name,
		Weight: float64(armor.Weight),
	}

	category := strings.ToLower(armor.ArmorCategory)
	if category == armorCategoryShield {
		item.Type = internalDnd5e.ItemTypeShield
		item.Shield = &internalDnd5e.ShieldProperties{ACBonus: int(armor.ArmorClass.Base)}
		return item, true
	}

	props := &internalDnd5e.ArmorProperties{
		Category:            internalDnd5e.ArmorCategory(category),
		BaseAC:              int(armor.ArmorClass.Base),
		StrengthRequirement: int(armor.StrMinimum),
		StealthDisadvantage: armor.StealthDisadvantage,
	}
	switch props.Category {
	case internalDnd5e.ArmorCategoryLight:
		props.DexCap = nil
	case internalDnd5e.ArmorCategoryMedium:
		props.DexCap = intPtr(mediumArmorDexCap)
	case internalDnd5e.ArmorCategoryHeavy:
		props.DexCap = intPtr(0)
	default:
		return nil, false
	}

	item.Type = internalDnd5e.ItemTypeArmor
	item.Armor = props
	return item, true
}

// versatileDie returns the next larger die, or the die itself when there is
// no larger step
func versatileDie(die string) string {
	if next, ok := versatileSteps[die]; ok {
		return next
	}
	return die
}

func intPtr(v int) *int {
	return &v
}
