package testutils

import (
	"github.com/KirkDiggler/gunsmith/internal/domain/weapons"
)

// CreateTestWeapon creates a minimal weapon of the given category
func CreateTestWeapon(id, name string, weaponType weapons.WeaponType) *weapons.Weapon {
	return &weapons.Weapon{
		ID:             id,
		Name:           name,
		Type:           weaponType,
		DamageType:     weapons.DamageTypePhysical,
		CompatibleMods: weapons.CompatibleMods{},
	}
}

// CreateTestMod creates a minimal mod for the given slot
func CreateTestMod(id, name string, slot weapons.WeaponModSlot) *weapons.WeaponMod {
	return &weapons.WeaponMod{
		ID:   id,
		Name: name,
		Type: weapons.WeaponTypeSmall,
		Slot: slot,
	}
}

// CreateTestCatalog creates a small catalog: two small guns sharing mods
// and a big gun with none
func CreateTestCatalog() *weapons.Catalog {
	pistol := CreateTestWeapon("10mm-pistol", "10mm Pistol", weapons.WeaponTypeSmall)
	pistol.CompatibleMods = weapons.CompatibleMods{
		weapons.WeaponModSlotReceiver: {"hardened-receiver"},
		weapons.WeaponModSlotMuzzle:   {"suppressor"},
	}

	fatMan := CreateTestWeapon("fat-man", "Fat Man", weapons.WeaponTypeBig)

	pipeGun := CreateTestWeapon("pipe-gun", "Pipe Gun", weapons.WeaponTypeSmall)
	pipeGun.CompatibleMods = weapons.CompatibleMods{
		weapons.WeaponModSlotReceiver: {"hardened-receiver"},
		weapons.WeaponModSlotStock:    {"full-stock"},
	}

	return &weapons.Catalog{
		Weapons: []*weapons.Weapon{pistol, fatMan, pipeGun},
		Mods: []*weapons.WeaponMod{
			CreateTestMod("hardened-receiver", "Hardened Receiver", weapons.WeaponModSlotReceiver),
			CreateTestMod("full-stock", "Full Stock", weapons.WeaponModSlotStock),
			CreateTestMod("suppressor", "Suppressor", weapons.WeaponModSlotMuzzle),
		},
	}
}
