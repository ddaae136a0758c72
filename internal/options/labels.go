package options

import (
	"github.com/KirkDiggler/gunsmith/internal/domain/weapons"
	gserr "github.com/KirkDiggler/gunsmith/internal/errors"
)

// CategoryLabels maps a weapon category to the text shown on its group header
type CategoryLabels map[weapons.WeaponType]string

// DefaultCategoryLabels returns the labels for the standard weapon categories
func DefaultCategoryLabels() CategoryLabels {
	return CategoryLabels{
		weapons.WeaponTypeSmall:   "Small Guns",
		weapons.WeaponTypeBig:     "Big Guns",
		weapons.WeaponTypeEnergy:  "Energy Weapons",
		weapons.WeaponTypeMelee:   "Melee Weapons",
		weapons.WeaponTypeUnarmed: "Unarmed",
	}
}

// Label resolves the display text for a category
func (l CategoryLabels) Label(t weapons.WeaponType) (string, error) {
	label, ok := l[t]
	if !ok || label == "" {
		return "", gserr.Validationf("unknown weapon category %q", string(t)).
			WithMeta("category", string(t))
	}
	return label, nil
}

func (l CategoryLabels) clone() CategoryLabels {
	copied := make(CategoryLabels, len(l))
	for k, v := range l {
		copied[k] = v
	}
	return copied
}
