package gunsmith

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/gunsmith/internal/options"
)

// Discord message limits
const (
	maxActionRows     = 5
	maxMenuOptions    = 25
	maxOptionLabelLen = 100
)

// menuResult carries the built rows plus what had to be cut to fit
type menuResult struct {
	Rows           []discordgo.MessageComponent
	DroppedGroups  int
	DroppedOptions int
}

// buildWeaponMenus renders one select menu per weapon group. The group header
// becomes the placeholder since Discord has no disabled rows inside a menu.
func buildWeaponMenus(groups []*options.Group, buildID string) *menuResult {
	result := &menuResult{Rows: make([]discordgo.MessageComponent, 0, maxActionRows)}

	for i, g := range groups {
		if len(result.Rows) == maxActionRows {
			result.DroppedGroups = len(groups) - i
			break
		}

		menuOptions := selectOptions(g.Options)
		if len(menuOptions) == 0 {
			continue
		}
		if len(menuOptions) > maxMenuOptions {
			result.DroppedOptions += len(menuOptions) - maxMenuOptions
			menuOptions = menuOptions[:maxMenuOptions]
		}

		placeholder := "Choose a weapon"
		headerValue := fmt.Sprintf("%d", i)
		if g.Header != nil {
			placeholder = g.Header.Label
			if g.Header.Value != "" {
				headerValue = g.Header.Value
			}
		}

		id := &CustomID{
			Action:  ActionWeaponSelect,
			BuildID: buildID,
			Args:    []string{headerValue},
		}

		result.Rows = append(result.Rows, discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					MenuType:    discordgo.StringSelectMenu,
					CustomID:    id.String(),
					Placeholder: placeholder,
					Options:     menuOptions,
				},
			},
		})
	}

	return result
}

// buildModMenu renders a multi-select of the mods a weapon accepts.
// Returns nil when there is nothing to pick.
func buildModMenu(weaponID, buildID string, mods []*options.Option) *menuResult {
	menuOptions := selectOptions(mods)
	if len(menuOptions) == 0 {
		return nil
	}

	result := &menuResult{}
	if len(menuOptions) > maxMenuOptions {
		result.DroppedOptions = len(menuOptions) - maxMenuOptions
		menuOptions = menuOptions[:maxMenuOptions]
	}

	id := &CustomID{
		Action:  ActionModSelect,
		BuildID: buildID,
		Args:    []string{weaponID},
	}

	minValues := 0
	result.Rows = []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					MenuType:    discordgo.StringSelectMenu,
					CustomID:    id.String(),
					Placeholder: "Fit mods",
					MinValues:   &minValues,
					MaxValues:   len(menuOptions),
					Options:     menuOptions,
				},
			},
		},
	}

	return result
}

// selectOptions keeps only rows a user can pick
func selectOptions(list []*options.Option) []discordgo.SelectMenuOption {
	out := make([]discordgo.SelectMenuOption, 0, len(list))
	for _, opt := range list {
		if !opt.Selectable() {
			continue
		}
		out = append(out, discordgo.SelectMenuOption{
			Label: truncate(opt.Label, maxOptionLabelLen),
			Value: opt.Value,
		})
	}
	return out
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// filterGroups keeps the group whose header value matches category.
// An empty category keeps everything.
func filterGroups(groups []*options.Group, category string) []*options.Group {
	if category == "" {
		return groups
	}

	out := make([]*options.Group, 0, 1)
	for _, g := range groups {
		if g.Header != nil && g.Header.Value == category {
			out = append(out, g)
		}
	}
	return out
}
