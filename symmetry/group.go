// Package symmetry provides the 17 planar crystallographic (wallpaper)
// groups and the affine transformations that generate them on a square
// periodic tile.
//
// The catalog is mathematically closed: there are exactly 17 wallpaper
// groups, and the generator lists returned by [Transformations] are fixed
// data. Everything downstream (symmetric canvases, noise synthesis) relies
// on those lists being reproduced exactly.
package symmetry

import "fmt"

// Group identifies one of the 17 wallpaper groups by its crystallographic
// short name.
type Group int

// The 17 wallpaper groups.
const (
	CM Group = iota
	CMM
	P1
	P2
	P3
	P31M
	P3M1
	P4
	P4G
	P4M
	P6
	P6M
	PG
	PGG
	PM
	PMG
	PMM
)

// GroupCount is the number of wallpaper groups.
const GroupCount = 17

var groupNames = [GroupCount]string{
	CM:   "CM",
	CMM:  "CMM",
	P1:   "P1",
	P2:   "P2",
	P3:   "P3",
	P31M: "P31M",
	P3M1: "P3M1",
	P4:   "P4",
	P4G:  "P4G",
	P4M:  "P4M",
	P6:   "P6",
	P6M:  "P6M",
	PG:   "PG",
	PGG:  "PGG",
	PM:   "PM",
	PMG:  "PMG",
	PMM:  "PMM",
}

// Groups returns all 17 wallpaper groups in a fixed order.
func Groups() []Group {
	out := make([]Group, GroupCount)
	for i := range out {
		out[i] = Group(i)
	}
	return out
}

// String returns the crystallographic short name of the group.
func (g Group) String() string {
	if g < 0 || int(g) >= GroupCount {
		return fmt.Sprintf("Group(%d)", int(g))
	}
	return groupNames[g]
}

// ParseGroup converts a crystallographic short name (as produced by
// [Group.String]) back into a Group.
func ParseGroup(s string) (Group, error) {
	for i, name := range groupNames {
		if name == s {
			return Group(i), nil
		}
	}
	return 0, fmt.Errorf("symmetry: unknown group %q", s)
}

// MarshalText implements encoding.TextMarshaler so that groups round-trip
// through JSON as their short names.
func (g Group) MarshalText() ([]byte, error) {
	if g < 0 || int(g) >= GroupCount {
		return nil, fmt.Errorf("symmetry: invalid group %d", int(g))
	}
	return []byte(groupNames[g]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *Group) UnmarshalText(text []byte) error {
	parsed, err := ParseGroup(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// Order returns the number of distinct symmetry operations of the group,
// which is also the length of the generator list returned by
// [Transformations].
func (g Group) Order() int {
	switch g {
	case P1:
		return 1
	case P2, CM, PG, PM:
		return 2
	case P3:
		return 3
	case CMM, P4, PGG, PMG, PMM:
		return 4
	case P31M, P3M1, P6:
		return 6
	case P4G, P4M:
		return 8
	case P6M:
		return 12
	}
	return 0
}
