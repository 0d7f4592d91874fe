// Package symart generates images that are exactly invariant under one of
// the 17 planar wallpaper symmetry groups. The root package holds the
// contract between the core and pattern designs, the layer compositor, and
// shared plumbing; the heavy lifting lives in the canvas, symmetry,
// random, fft and squiggles sub-packages.
package symart

import (
	"errors"
	"fmt"
	"image"

	"github.com/artgrid/symart/random"
	"github.com/artgrid/symart/symmetry"
)

// ErrBadParameter is wrapped by all design parameter validation failures.
// Designs never silently default an invalid parameter.
var ErrBadParameter = errors.New("symart: invalid parameter")

// Design is a pattern generator: a value deserialized from structured
// parameters that can describe those parameters and render itself.
type Design interface {
	// Name is the human-readable display name of the design.
	Name() string

	// Schema returns a JSON-schema description of the design's
	// parameters, suitable for building a UI form.
	Schema() map[string]any

	// Draw renders the design. On success the response carries the
	// finished image and, for symmetry-constrained designs, the group
	// that was actually used.
	Draw() (*DrawResponse, error)
}

// DrawResponse is the result of a successful Draw.
type DrawResponse struct {
	Image *image.RGBA

	// Group is the wallpaper group the image is invariant under, or nil
	// if the design is not symmetry-constrained.
	Group *symmetry.Group
}

// SymmetryChoice is a design parameter that is either a concrete wallpaper
// group or the request to pick one at random per draw. Its JSON form is
// either a group short name or the string "Random".
type SymmetryChoice struct {
	group  symmetry.Group
	random bool
}

// RandomSymmetry returns the choice that resolves to a fresh uniform group
// on every draw.
func RandomSymmetry() SymmetryChoice {
	return SymmetryChoice{random: true}
}

// FixedSymmetry returns the choice pinned to g.
func FixedSymmetry(g symmetry.Group) SymmetryChoice {
	return SymmetryChoice{group: g}
}

// Resolve returns the chosen group, drawing one uniformly from r when the
// choice is Random.
func (sc SymmetryChoice) Resolve(r *random.Rand) symmetry.Group {
	if sc.random {
		return random.Sample(r, random.Symmetry{})
	}
	return sc.group
}

// MarshalText implements encoding.TextMarshaler.
func (sc SymmetryChoice) MarshalText() ([]byte, error) {
	if sc.random {
		return []byte("Random"), nil
	}
	return sc.group.MarshalText()
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting a group
// short name or "Random".
func (sc *SymmetryChoice) UnmarshalText(text []byte) error {
	if string(text) == "Random" {
		*sc = SymmetryChoice{random: true}
		return nil
	}
	g, err := symmetry.ParseGroup(string(text))
	if err != nil {
		return fmt.Errorf("%w: symmetry %q", ErrBadParameter, string(text))
	}
	*sc = SymmetryChoice{group: g}
	return nil
}
