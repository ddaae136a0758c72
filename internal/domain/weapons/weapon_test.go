package weapons_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/gunsmith/internal/domain/weapons"
)

func TestWeaponType_IsValid(t *testing.T) {
	for _, wt := range weapons.WeaponTypes {
		assert.True(t, wt.IsValid(), string(wt))
	}
	assert.False(t, weapons.WeaponType("Explosives").IsValid())
	assert.False(t, weapons.WeaponType("").IsValid())
}

func TestGunRange_String(t *testing.T) {
	assert.Equal(t, "C", weapons.GunRangeClose.String())
	assert.Equal(t, "M", weapons.GunRangeMedium.String())
	assert.Equal(t, "L", weapons.GunRangeLong.String())
	assert.Equal(t, "E", weapons.GunRangeExtreme.String())
	assert.Equal(t, "GunRange(9)", weapons.GunRange(9).String())
}

func TestWeapon_UnmarshalNullables(t *testing.T) {
	raw := `{
		"id": "combat-knife",
		"name": "Combat Knife",
		"type": "Melee Weapons",
		"firerate": null,
		"range": null,
		"compatibleMods": {}
	}`

	var w weapons.Weapon
	require.NoError(t, json.Unmarshal([]byte(raw), &w))
	assert.Nil(t, w.FireRate)
	assert.Nil(t, w.Range)
	assert.True(t, w.IsMelee())
	assert.Empty(t, w.CompatibleMods.Slots())
}

func TestCompatibleMods(t *testing.T) {
	mods := weapons.CompatibleMods{
		weapons.WeaponModSlotMuzzle:   {"suppressor"},
		weapons.WeaponModSlotReceiver: {"hardened", "powerful"},
		weapons.WeaponModSlotGrip:     {},
	}

	assert.Equal(t, []weapons.WeaponModSlot{weapons.WeaponModSlotReceiver, weapons.WeaponModSlotMuzzle}, mods.Slots())
	assert.True(t, mods.Allows(weapons.WeaponModSlotReceiver, "powerful"))
	assert.False(t, mods.Allows(weapons.WeaponModSlotMuzzle, "powerful"))
	assert.True(t, mods.Contains("suppressor"))
	assert.False(t, mods.Contains("long-scope"))
}

func TestCatalog_Lookups(t *testing.T) {
	c := &weapons.Catalog{
		Weapons: []*weapons.Weapon{
			{
				ID:   "10mm-pistol",
				Name: "10mm Pistol",
				Type: weapons.WeaponTypeSmall,
				CompatibleMods: weapons.CompatibleMods{
					weapons.WeaponModSlotReceiver: {"hardened"},
					weapons.WeaponModSlotMuzzle:   {"suppressor"},
				},
			},
		},
		Mods: []*weapons.WeaponMod{
			{ID: "suppressor", Name: "Suppressor", Slot: weapons.WeaponModSlotMuzzle},
			{ID: "long-scope", Name: "Long Scope", Slot: weapons.WeaponModSlotSights},
			{ID: "hardened", Name: "Hardened Receiver", Slot: weapons.WeaponModSlotReceiver},
			// listed on the pistol, but under a different slot
			{ID: "misfiled", Name: "Misfiled", Slot: weapons.WeaponModSlotGrip},
		},
	}
	c.Weapons[0].CompatibleMods[weapons.WeaponModSlotStock] = []string{"misfiled"}

	pistol, ok := c.Weapon("10mm-pistol")
	require.True(t, ok)

	_, ok = c.Weapon("fat-man")
	assert.False(t, ok)

	mod, ok := c.Mod("long-scope")
	require.True(t, ok)
	assert.Equal(t, "Long Scope", mod.Name)

	compatible := c.CompatibleMods(pistol)
	require.Len(t, compatible, 2)
	assert.Equal(t, "suppressor", compatible[0].ID)
	assert.Equal(t, "hardened", compatible[1].ID)

	assert.Empty(t, weapons.FilterCompatible(nil, c.Mods))
}

func TestWeaponMod_PrefixedName(t *testing.T) {
	hardened := &weapons.WeaponMod{ID: "hardened", Name: "Hardened Receiver", NamePrefix: "Hardened"}
	compensator := &weapons.WeaponMod{ID: "compensator", Name: "Compensator"}

	assert.Equal(t, "Hardened 10mm Pistol", hardened.PrefixedName("10mm Pistol"))
	assert.Equal(t, "10mm Pistol", compensator.PrefixedName("10mm Pistol"))
}

func TestLoadout_Name(t *testing.T) {
	pistol := &weapons.Weapon{ID: "10mm-pistol", Name: "10mm Pistol"}
	barrel := &weapons.WeaponMod{ID: "long-barrel", NamePrefix: "Long", Slot: weapons.WeaponModSlotBarrel}
	receiver := &weapons.WeaponMod{ID: "hardened", NamePrefix: "Hardened", Slot: weapons.WeaponModSlotReceiver}
	grip := &weapons.WeaponMod{ID: "comfort-grip", Slot: weapons.WeaponModSlotGrip}

	l := &weapons.Loadout{Weapon: pistol, Mods: []*weapons.WeaponMod{barrel, grip, receiver}}
	assert.Equal(t, "Hardened Long 10mm Pistol", l.Name())
	assert.Same(t, grip, l.Mod(weapons.WeaponModSlotGrip))
	assert.Nil(t, l.Mod(weapons.WeaponModSlotMuzzle))

	assert.Equal(t, "10mm Pistol", (&weapons.Loadout{Weapon: pistol}).Name())
	assert.Equal(t, "", (*weapons.Loadout)(nil).Name())
}
