// Package options turns catalog records into the ordered option lists that
// drive selection controls.
package options

// Option is one row of a selection control. Group headers are disabled rows
// with GroupLabel set; their Value is the category key rather than an item id.
type Option struct {
	Value      string `json:"value,omitempty"`
	Label      string `json:"label"`
	Disabled   bool   `json:"disabled,omitempty"`
	GroupLabel bool   `json:"groupLabel,omitempty"`
}

// Selectable reports whether the row can be picked
func (o *Option) Selectable() bool {
	return o != nil && !o.Disabled && o.Value != ""
}

// Group is a header together with the rows that follow it
type Group struct {
	Header  *Option
	Options []*Option
}

// SplitGroups cuts a flat list at each group header. Rows that appear before
// the first header are returned in a group with a nil Header.
func SplitGroups(list []*Option) []*Group {
	groups := make([]*Group, 0)

	var current *Group
	for _, opt := range list {
		if opt == nil {
			continue
		}

		if opt.GroupLabel {
			current = &Group{Header: opt, Options: make([]*Option, 0)}
			groups = append(groups, current)
			continue
		}

		if current == nil {
			current = &Group{Options: make([]*Option, 0)}
			groups = append(groups, current)
		}
		current.Options = append(current.Options, opt)
	}

	return groups
}
