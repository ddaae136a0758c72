package weapons

// Catalog is the full static item data: every weapon and every mod, in source order
type Catalog struct {
	Weapons []*Weapon    `json:"weapons" yaml:"weapons"`
	Mods    []*WeaponMod `json:"mods" yaml:"mods"`
}

// Weapon finds a weapon by id
func (c *Catalog) Weapon(id string) (*Weapon, bool) {
	for _, w := range c.Weapons {
		if w != nil && w.ID == id {
			return w, true
		}
	}
	return nil, false
}

// Mod finds a mod by id
func (c *Catalog) Mod(id string) (*WeaponMod, bool) {
	for _, m := range c.Mods {
		if m != nil && m.ID == id {
			return m, true
		}
	}
	return nil, false
}

// CompatibleMods returns the mods the weapon accepts, keeping catalog order
func (c *Catalog) CompatibleMods(weapon *Weapon) []*WeaponMod {
	return FilterCompatible(weapon, c.Mods)
}

// FilterCompatible keeps the mods listed in the weapon's compatible-mod slots.
// A mod only matches when it is listed under its own slot.
func FilterCompatible(weapon *Weapon, mods []*WeaponMod) []*WeaponMod {
	result := make([]*WeaponMod, 0)
	if weapon == nil {
		return result
	}

	for _, m := range mods {
		if m != nil && weapon.CompatibleMods.Allows(m.Slot, m.ID) {
			result = append(result, m)
		}
	}
	return result
}
