package weapons

import "strings"

// Loadout is a weapon with the mods fitted to it
type Loadout struct {
	Weapon *Weapon      `json:"weapon"`
	Mods   []*WeaponMod `json:"mods"`
}

// Name is the weapon name with each fitted mod's prefix in slot order,
// e.g. "Hardened Long 10mm Pistol"
func (l *Loadout) Name() string {
	if l == nil || l.Weapon == nil {
		return ""
	}

	var prefixes []string
	for _, slot := range WeaponModSlots {
		for _, m := range l.Mods {
			if m != nil && m.Slot == slot && m.NamePrefix != "" {
				prefixes = append(prefixes, m.NamePrefix)
			}
		}
	}
	if len(prefixes) == 0 {
		return l.Weapon.Name
	}

	return strings.Join(prefixes, " ") + " " + l.Weapon.Name
}

// Mod returns the mod fitted in slot, if any
func (l *Loadout) Mod(slot WeaponModSlot) *WeaponMod {
	for _, m := range l.Mods {
		if m != nil && m.Slot == slot {
			return m
		}
	}
	return nil
}

