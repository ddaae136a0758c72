package options

import (
	"fmt"
	"slices"
	"strings"

	"github.com/KirkDiggler/gunsmith/internal/domain/weapons"
	gserr "github.com/KirkDiggler/gunsmith/internal/errors"
)

// GroupOrder controls the order of weapon groups in the built list.
// Rows inside a group always keep their input order.
type GroupOrder int

const (
	// GroupOrderReverseDiscovery puts the most recently discovered category first
	GroupOrderReverseDiscovery GroupOrder = iota
	// GroupOrderDiscovery puts categories in the order they first appear
	GroupOrderDiscovery
)

func (o GroupOrder) String() string {
	switch o {
	case GroupOrderReverseDiscovery:
		return "reverse"
	case GroupOrderDiscovery:
		return "discovery"
	default:
		return fmt.Sprintf("GroupOrder(%d)", int(o))
	}
}

// ParseGroupOrder reads "reverse" or "discovery". Empty means reverse.
func ParseGroupOrder(s string) (GroupOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "reverse":
		return GroupOrderReverseDiscovery, nil
	case "discovery":
		return GroupOrderDiscovery, nil
	default:
		return 0, gserr.InvalidArgument(fmt.Sprintf("unknown group order %q", s))
	}
}

// BuilderConfig holds configuration for the option builder
type BuilderConfig struct {
	// Labels resolves group header text. Defaults to DefaultCategoryLabels.
	Labels     CategoryLabels
	GroupOrder GroupOrder
}

// Builder converts weapons and mods into option lists. It holds no mutable
// state and is safe for concurrent use.
type Builder struct {
	labels CategoryLabels
	order  GroupOrder
}

// NewBuilder creates a builder. A nil config uses the defaults.
func NewBuilder(cfg *BuilderConfig) *Builder {
	b := &Builder{
		labels: DefaultCategoryLabels(),
		order:  GroupOrderReverseDiscovery,
	}

	if cfg != nil {
		if cfg.Labels != nil {
			b.labels = cfg.Labels.clone()
		}
		b.order = cfg.GroupOrder
	}

	return b
}

// GroupOrder returns the configured group order
func (b *Builder) GroupOrder() GroupOrder {
	return b.order
}

// WeaponOptions groups weapons by category. Each group is a disabled header
// row followed by one row per weapon of that category in input order.
//
// Every weapon is checked before anything is built: a nil weapon, an empty id
// or a category without a label fails the whole call.
func (b *Builder) WeaponOptions(input []*weapons.Weapon) ([]*Option, error) {
	headers, err := b.headers(input)
	if err != nil {
		return nil, err
	}

	var order []weapons.WeaponType
	members := make(map[weapons.WeaponType][]*Option, len(headers))
	for _, w := range input {
		if _, seen := members[w.Type]; !seen {
			order = append(order, w.Type)
		}
		members[w.Type] = append(members[w.Type], &Option{
			Label: w.Name,
			Value: w.ID,
		})
	}

	if b.order == GroupOrderReverseDiscovery {
		slices.Reverse(order)
	}

	output := make([]*Option, 0, len(input)+len(order))
	for _, t := range order {
		output = append(output, headers[t])
		output = append(output, members[t]...)
	}

	return output, nil
}

// ModOptions projects mods one to one, keeping input order. A nil mod or a
// mod without an id fails the whole call.
func (b *Builder) ModOptions(input []*weapons.WeaponMod) ([]*Option, error) {
	output := make([]*Option, 0, len(input))
	for i, m := range input {
		if m == nil {
			return nil, gserr.Validationf("mod at position %d is nil", i)
		}
		if m.ID == "" {
			return nil, gserr.Validationf("mod at position %d has no id", i).
				WithMeta("mod_name", m.Name)
		}
		output = append(output, &Option{
			Label: m.Name,
			Value: m.ID,
		})
	}
	return output, nil
}

// headers validates the input and returns one header row per category present
func (b *Builder) headers(input []*weapons.Weapon) (map[weapons.WeaponType]*Option, error) {
	headers := make(map[weapons.WeaponType]*Option)
	for i, w := range input {
		if w == nil {
			return nil, gserr.Validationf("weapon at position %d is nil", i)
		}
		if w.ID == "" {
			return nil, gserr.Validationf("weapon at position %d has no id", i).
				WithMeta("weapon_name", w.Name)
		}
		if _, ok := headers[w.Type]; ok {
			continue
		}
		if w.Type == "" {
			return nil, gserr.Validationf("weapon %q has no category", w.ID).
				WithMeta("weapon_id", w.ID)
		}

		label, err := b.labels.Label(w.Type)
		if err != nil {
			return nil, gserr.Wrapf(err, "weapon %q", w.ID).WithMeta("weapon_id", w.ID)
		}

		headers[w.Type] = &Option{
			Label:      label,
			Value:      string(w.Type),
			Disabled:   true,
			GroupLabel: true,
		}
	}
	return headers, nil
}
