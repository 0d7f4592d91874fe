package canvas

import (
	"errors"
	"fmt"

	"github.com/artgrid/symart/symmetry"
)

// ErrOddSize is returned when a canvas that must split into half-tiles has
// an odd or non-square shape.
var ErrOddSize = errors.New("canvas: symmetric canvas requires an even square size")

// SymmetricCanvas is a square WrapCanvas that is invariant under a
// wallpaper group by construction: every Set replicates the written value
// to all images of the target cell under the group's generator orbit.
//
// Set is the only sanctioned mutation path. Reads are unrestricted.
type SymmetricCanvas[T any] struct {
	canvas     *WrapCanvas[T]
	group      symmetry.Group
	transforms []symmetry.Transformation[int]
}

func fromWrap[T any](c *WrapCanvas[T], g symmetry.Group) *SymmetricCanvas[T] {
	return &SymmetricCanvas[T]{
		canvas:     c,
		group:      g,
		transforms: symmetry.Transformations(g, c.Height()/2),
	}
}

// NewSymmetric creates a symmetric canvas of size 2*hsz × 2*hsz with every
// cell set to the zero value of T. hsz must be positive.
func NewSymmetric[T any](g symmetry.Group, hsz int) *SymmetricCanvas[T] {
	size := 2 * hsz
	return fromWrap(New[T](size, size), g)
}

// SymmetricFromElem creates a symmetric canvas with every cell set to elem.
func SymmetricFromElem[T any](g symmetry.Group, hsz int, elem T) *SymmetricCanvas[T] {
	size := 2 * hsz
	return fromWrap(FromElem(size, size, elem), g)
}

// SymmetricFromFunc creates a symmetric canvas by drawing one value from f
// per cell and writing it through Set, so later draws overwrite the orbit
// images of earlier ones.
func SymmetricFromFunc[T any](g symmetry.Group, hsz int, f func() T) *SymmetricCanvas[T] {
	sc := NewSymmetric[T](g, hsz)
	size := 2 * hsz
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			sc.Set(Coord{X: x, Y: y}, f())
		}
	}
	return sc
}

// SymmetricFromWrap adopts an already group-symmetric canvas without
// re-replicating its cells. The caller is responsible for the symmetry of
// the contents; the canvas must be square with an even size.
func SymmetricFromWrap[T any](c *WrapCanvas[T], g symmetry.Group) (*SymmetricCanvas[T], error) {
	if c.Height() != c.Width() || c.Height()%2 != 0 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrOddSize, c.Height(), c.Width())
	}
	return fromWrap(c, g), nil
}

// SymmetryGroup returns the group the canvas is invariant under.
func (sc *SymmetricCanvas[T]) SymmetryGroup() symmetry.Group { return sc.group }

// Size returns the full tile size (twice the half-size).
func (sc *SymmetricCanvas[T]) Size() int { return sc.canvas.Height() }

// At returns the cell addressed by p, wrapping both axes.
func (sc *SymmetricCanvas[T]) At(p Coord) T { return sc.canvas.At(p) }

// Set writes v to p and to every image of p under the group orbit.
func (sc *SymmetricCanvas[T]) Set(p Coord, v T) {
	for _, tr := range sc.transforms {
		sc.canvas.Set(tr.Apply(p), v)
	}
}

// Wrap returns the underlying plain canvas. Writes through it are no
// longer replicated; callers converting for compositing should only read.
func (sc *SymmetricCanvas[T]) Wrap() *WrapCanvas[T] { return sc.canvas }
