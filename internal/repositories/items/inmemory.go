package items

import (
	"context"
	"sync"

	"github.com/KirkDiggler/gunsmith/internal/domain/weapons"
	gserr "github.com/KirkDiggler/gunsmith/internal/errors"
)

// InMemoryRepository serves a catalog held in memory.
// Useful for the embedded catalog and for tests.
type InMemoryRepository struct {
	mu         sync.RWMutex
	weaponList []*weapons.Weapon
	modList    []*weapons.WeaponMod
}

// NewInMemoryRepository creates a repository over c. A nil catalog starts empty.
func NewInMemoryRepository(c *weapons.Catalog) Store {
	r := &InMemoryRepository{}
	if c != nil {
		r.weaponList = append([]*weapons.Weapon{}, c.Weapons...)
		r.modList = append([]*weapons.WeaponMod{}, c.Mods...)
	}
	return r
}

func (r *InMemoryRepository) ListWeapons(ctx context.Context) ([]*weapons.Weapon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// copy the slice so callers can't reorder the catalog
	return append([]*weapons.Weapon{}, r.weaponList...), nil
}

func (r *InMemoryRepository) ListMods(ctx context.Context) ([]*weapons.WeaponMod, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]*weapons.WeaponMod{}, r.modList...), nil
}

func (r *InMemoryRepository) GetWeapon(ctx context.Context, id string) (*weapons.Weapon, error) {
	if id == "" {
		return nil, gserr.InvalidArgument("weapon ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, w := range r.weaponList {
		if w.ID == id {
			return w, nil
		}
	}

	return nil, gserr.NotFoundf("weapon '%s' not found", id).WithMeta("weapon_id", id)
}

func (r *InMemoryRepository) GetMod(ctx context.Context, id string) (*weapons.WeaponMod, error) {
	if id == "" {
		return nil, gserr.InvalidArgument("mod ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.modList {
		if m.ID == id {
			return m, nil
		}
	}

	return nil, gserr.NotFoundf("mod '%s' not found", id).WithMeta("mod_id", id)
}

func (r *InMemoryRepository) Seed(ctx context.Context, c *weapons.Catalog) error {
	if c == nil {
		return gserr.InvalidArgument("catalog cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.weaponList = append([]*weapons.Weapon{}, c.Weapons...)
	r.modList = append([]*weapons.WeaponMod{}, c.Mods...)

	return nil
}
