package catalog

import (
	"github.com/KirkDiggler/gunsmith/internal/domain/weapons"
	gserr "github.com/KirkDiggler/gunsmith/internal/errors"
)

// Validate checks the catalog invariants the option lists rely on:
// ids are present and unique, weapon categories are known, and every
// compatible mod id refers to a mod in the matching slot.
func Validate(c *weapons.Catalog) error {
	if c == nil {
		return gserr.InvalidArgument("catalog is required")
	}

	weaponIDs := make(map[string]bool, len(c.Weapons))
	for i, w := range c.Weapons {
		if w == nil || w.ID == "" {
			return gserr.Validationf("weapon at position %d has no id", i)
		}
		if weaponIDs[w.ID] {
			return gserr.Validationf("duplicate weapon id %q", w.ID)
		}
		weaponIDs[w.ID] = true

		if !w.Type.IsValid() {
			return gserr.Validationf("weapon %q has unknown category %q", w.ID, string(w.Type))
		}
	}

	mods := make(map[string]*weapons.WeaponMod, len(c.Mods))
	for i, m := range c.Mods {
		if m == nil || m.ID == "" {
			return gserr.Validationf("mod at position %d has no id", i)
		}
		if _, exists := mods[m.ID]; exists {
			return gserr.Validationf("duplicate mod id %q", m.ID)
		}
		mods[m.ID] = m
	}

	for _, w := range c.Weapons {
		for slot, ids := range w.CompatibleMods {
			for _, id := range ids {
				m, ok := mods[id]
				if !ok {
					return gserr.Validationf("weapon %q lists unknown mod %q", w.ID, id)
				}
				if m.Slot != slot {
					return gserr.Validationf("weapon %q lists mod %q under %s but it fits %s",
						w.ID, id, slot, m.Slot)
				}
			}
		}
	}

	return nil
}
