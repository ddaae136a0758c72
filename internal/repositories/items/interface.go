package items

//go:generate mockgen -destination=mock/mock.go -package=mockitems -source=interface.go

import (
	"context"

	"github.com/KirkDiggler/gunsmith/internal/domain/weapons"
)

// Repository reads the weapon and mod catalog. List calls return records in
// catalog order.
type Repository interface {
	ListWeapons(ctx context.Context) ([]*weapons.Weapon, error)

	ListMods(ctx context.Context) ([]*weapons.WeaponMod, error)

	// GetWeapon returns a not found error for unknown ids
	GetWeapon(ctx context.Context, id string) (*weapons.Weapon, error)

	// GetMod returns a not found error for unknown ids
	GetMod(ctx context.Context, id string) (*weapons.WeaponMod, error)
}

// Store is a Repository whose contents can be replaced wholesale
type Store interface {
	Repository

	// Seed replaces the stored catalog with c
	Seed(ctx context.Context, c *weapons.Catalog) error
}
