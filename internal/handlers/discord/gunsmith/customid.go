package gunsmith

import (
	"strings"

	gserr "github.com/KirkDiggler/gunsmith/internal/errors"
)

// CustomIDPrefix routes component interactions to this package
const CustomIDPrefix = "gunsmith"

// Component actions
const (
	ActionWeaponSelect = "weapon_select"
	ActionModSelect    = "mod_select"
)

// CustomID is the parsed form of "gunsmith:<action>:<buildID>[:<args>...]"
type CustomID struct {
	Action  string
	BuildID string
	Args    []string
}

func (c *CustomID) String() string {
	parts := append([]string{CustomIDPrefix, c.Action, c.BuildID}, c.Args...)
	return strings.Join(parts, ":")
}

// Arg returns the nth argument or "" when absent
func (c *CustomID) Arg(n int) string {
	if n < 0 || n >= len(c.Args) {
		return ""
	}
	return c.Args[n]
}

// ParseCustomID reverses CustomID.String
func ParseCustomID(s string) (*CustomID, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 3 || parts[0] != CustomIDPrefix {
		return nil, gserr.Newf(gserr.CodeInvalidArgument, "not a gunsmith custom id: %q", s)
	}
	if parts[1] == "" || parts[2] == "" {
		return nil, gserr.Newf(gserr.CodeInvalidArgument, "custom id %q is missing action or build id", s)
	}

	return &CustomID{
		Action:  parts[1],
		BuildID: parts[2],
		Args:    parts[3:],
	}, nil
}

// IsGunsmithCustomID reports whether the component belongs to this package
func IsGunsmithCustomID(s string) bool {
	return strings.HasPrefix(s, CustomIDPrefix+":")
}
