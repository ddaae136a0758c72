package weapons

// WeaponModSlot is where a mod attaches on a weapon
type WeaponModSlot string

const (
	WeaponModSlotReceiver WeaponModSlot = "Receiver"
	WeaponModSlotBarrel   WeaponModSlot = "Barrel"
	WeaponModSlotGrip     WeaponModSlot = "Grip"
	WeaponModSlotSights   WeaponModSlot = "Sights"
	WeaponModSlotMagazine WeaponModSlot = "Magazine"
	WeaponModSlotStock    WeaponModSlot = "Stock"
	WeaponModSlotMuzzle   WeaponModSlot = "Muzzle"
)

// WeaponModSlots lists every slot in the order they appear on a weapon card
var WeaponModSlots = []WeaponModSlot{
	WeaponModSlotReceiver,
	WeaponModSlotBarrel,
	WeaponModSlotGrip,
	WeaponModSlotSights,
	WeaponModSlotMagazine,
	WeaponModSlotStock,
	WeaponModSlotMuzzle,
}

type Perk struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Rank        int    `json:"rank" yaml:"rank"`
}

// QualityChanges lists the qualities a mod adds to and removes from a weapon
type QualityChanges struct {
	Added   []*WeaponQuality `json:"added,omitempty" yaml:"added,omitempty"`
	Removed []*WeaponQuality `json:"removed,omitempty" yaml:"removed,omitempty"`
}

// WeaponMod is a catalog modification record.
// Optional modifiers are pointers so an absent value is distinct from zero.
type WeaponMod struct {
	ID          string          `json:"id" yaml:"id"`
	Name        string          `json:"name" yaml:"name"`
	NamePrefix  string          `json:"namePrefix,omitempty" yaml:"namePrefix,omitempty"`
	Type        WeaponType      `json:"type" yaml:"type"`
	Slot        WeaponModSlot   `json:"slot" yaml:"slot"`
	DamageMod   *int            `json:"damageMod,omitempty" yaml:"damageMod,omitempty"`
	DamageSet   *int            `json:"damageSet,omitempty" yaml:"damageSet,omitempty"`
	FireRateMod *int            `json:"firerateMod,omitempty" yaml:"firerateMod,omitempty"`
	FireRateSet *int            `json:"firerateSet,omitempty" yaml:"firerateSet,omitempty"`
	RangeMod    *int            `json:"rangeMod,omitempty" yaml:"rangeMod,omitempty"`
	RangeSet    *int            `json:"rangeSet,omitempty" yaml:"rangeSet,omitempty"`
	WeightMod   *float64        `json:"weightMod,omitempty" yaml:"weightMod,omitempty"`
	CostMod     *int            `json:"costMod,omitempty" yaml:"costMod,omitempty"`
	AmmoSet     string          `json:"ammoSet,omitempty" yaml:"ammoSet,omitempty"`
	Perks       []*Perk         `json:"perks,omitempty" yaml:"perks,omitempty"`
	Qualities   *QualityChanges `json:"qualities,omitempty" yaml:"qualities,omitempty"`
}

// PrefixedName returns the weapon name as it reads with this mod attached,
// e.g. "Hardened 10mm Pistol"
func (m *WeaponMod) PrefixedName(weaponName string) string {
	if m.NamePrefix == "" {
		return weaponName
	}
	return m.NamePrefix + " " + weaponName
}
