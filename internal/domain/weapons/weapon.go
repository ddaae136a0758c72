package weapons

import "fmt"

// WeaponType is the category a weapon (or a mod) belongs to
type WeaponType string

const (
	WeaponTypeSmall   WeaponType = "Small Guns"
	WeaponTypeBig     WeaponType = "Big Guns"
	WeaponTypeEnergy  WeaponType = "Energy Weapons"
	WeaponTypeMelee   WeaponType = "Melee Weapons"
	WeaponTypeUnarmed WeaponType = "Unarmed"
)

// WeaponTypes lists every weapon category in catalog order
var WeaponTypes = []WeaponType{
	WeaponTypeSmall,
	WeaponTypeBig,
	WeaponTypeEnergy,
	WeaponTypeMelee,
	WeaponTypeUnarmed,
}

// IsValid reports whether the type is one of the known categories
func (t WeaponType) IsValid() bool {
	for _, known := range WeaponTypes {
		if t == known {
			return true
		}
	}
	return false
}

type DamageType string

const (
	DamageTypePhysical  DamageType = "Physical"
	DamageTypeEnergy    DamageType = "Energy"
	DamageTypeRadiation DamageType = "Radiation"
	DamageTypePoison    DamageType = "Poison"
	DamageTypeSpecial   DamageType = "Special"
)

// GunRange is a weapon's range band. It is serialised as its ordinal.
type GunRange int

const (
	GunRangeClose GunRange = iota
	GunRangeMedium
	GunRangeLong
	GunRangeExtreme
)

// String returns the short band code used on weapon cards
func (r GunRange) String() string {
	switch r {
	case GunRangeClose:
		return "C"
	case GunRangeMedium:
		return "M"
	case GunRangeLong:
		return "L"
	case GunRangeExtreme:
		return "E"
	default:
		return fmt.Sprintf("GunRange(%d)", int(r))
	}
}

type DamageEffect struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// WeaponQuality is a weapon trait. Incompatible names a quality it cannot coexist with.
type WeaponQuality struct {
	ID           string `json:"id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	Description  string `json:"description" yaml:"description"`
	Incompatible string `json:"incompatible,omitempty" yaml:"incompatible,omitempty"`
}

// Weapon is a catalog weapon record
type Weapon struct {
	ID             string           `json:"id" yaml:"id"`
	Name           string           `json:"name" yaml:"name"`
	Ammo           string           `json:"ammo" yaml:"ammo"`
	Type           WeaponType       `json:"type" yaml:"type"`
	DamageRating   int              `json:"damageRating" yaml:"damageRating"`
	DamageEffects  []*DamageEffect  `json:"damageEffects" yaml:"damageEffects"`
	DamageType     DamageType       `json:"damageType" yaml:"damageType"`
	FireRate       *int             `json:"firerate" yaml:"firerate"`
	Range          *GunRange        `json:"range" yaml:"range"`
	Qualities      []*WeaponQuality `json:"qualities" yaml:"qualities"`
	Weight         float64          `json:"weight" yaml:"weight"`
	Cost           int              `json:"cost" yaml:"cost"`
	Rarity         int              `json:"rarity" yaml:"rarity"`
	CompatibleMods CompatibleMods   `json:"compatibleMods" yaml:"compatibleMods"`
}

// IsMelee returns true for weapons that have no range band
func (w *Weapon) IsMelee() bool {
	return w.Range == nil
}

// HasQuality checks if the weapon has a quality with the given id
func (w *Weapon) HasQuality(id string) bool {
	for _, q := range w.Qualities {
		if q != nil && q.ID == id {
			return true
		}
	}

	return false
}

// CompatibleMods maps a mod slot to the ids of the mods a weapon accepts there
type CompatibleMods map[WeaponModSlot][]string

// Slots returns the slots that list at least one mod, in canonical slot order
func (c CompatibleMods) Slots() []WeaponModSlot {
	var slots []WeaponModSlot
	for _, slot := range WeaponModSlots {
		if len(c[slot]) > 0 {
			slots = append(slots, slot)
		}
	}
	return slots
}

// Allows reports whether modID is listed for slot
func (c CompatibleMods) Allows(slot WeaponModSlot, modID string) bool {
	for _, id := range c[slot] {
		if id == modID {
			return true
		}
	}
	return false
}

// Contains reports whether modID is listed under any slot
func (c CompatibleMods) Contains(modID string) bool {
	for _, ids := range c {
		for _, id := range ids {
			if id == modID {
				return true
			}
		}
	}
	return false
}
