// Package canvas implements toroidal pixel grids: dense 2D buffers whose
// indexing wraps around both axes, plus a symmetry-enforcing variant that
// replicates every write across a wallpaper group's orbit.
package canvas

import (
	"fmt"

	"github.com/artgrid/symart/symmetry"
)

// Coord addresses a cell on a wraparound grid. Any signed coordinate is
// valid; indexing folds it back onto the grid.
type Coord = symmetry.Point[int]

// Modulus performs Euclidean wraparound of a single coordinate axis.
// The result of Apply is always in [0, m), even for negative inputs.
type Modulus struct {
	m int
}

// NewModulus creates a modulus of size m. m must be positive.
func NewModulus(m int) Modulus {
	if m <= 0 {
		panic(fmt.Sprintf("canvas: modulus must be positive, got %d", m))
	}
	return Modulus{m: m}
}

// Apply returns n mod m normalized to [0, m).
func (md Modulus) Apply(n int) int {
	r := n % md.m
	if r < 0 {
		r += md.m
	}
	return r
}

// WrapDimension folds signed coordinates onto a fixed (height, width)
// grid, one modulus per axis.
type WrapDimension struct {
	vert  Modulus
	horiz Modulus
}

// NewWrapDimension creates a WrapDimension for a grid of the given height
// and width.
func NewWrapDimension(height, width int) WrapDimension {
	return WrapDimension{vert: NewModulus(height), horiz: NewModulus(width)}
}

// ComputeIndex maps an arbitrary signed coordinate to an in-bounds
// (row, col) pair.
func (d WrapDimension) ComputeIndex(c Coord) (row, col int) {
	return d.vert.Apply(c.Y), d.horiz.Apply(c.X)
}

// WrapCanvas is a dense height×width grid of T with toroidal indexing.
// At and Set accept any signed coordinate and never fail: out-of-range
// coordinates wrap via the canvas's WrapDimension.
//
// Cells are stored in a flat row-major slice, which keeps conversion to
// image buffers and FFT fields copy-free.
type WrapCanvas[T any] struct {
	data   []T
	width  int
	height int
	dims   WrapDimension
}

// New creates a canvas with every cell set to the zero value of T.
func New[T any](height, width int) *WrapCanvas[T] {
	return &WrapCanvas[T]{
		data:   make([]T, height*width),
		width:  width,
		height: height,
		dims:   NewWrapDimension(height, width),
	}
}

// FromElem creates a canvas with every cell set to elem.
func FromElem[T any](height, width int, elem T) *WrapCanvas[T] {
	c := New[T](height, width)
	for i := range c.data {
		c.data[i] = elem
	}
	return c
}

// FromFunc creates a canvas by calling f(x, y) exactly once per cell, in
// row-major order (y outer).
func FromFunc[T any](height, width int, f func(x, y int) T) *WrapCanvas[T] {
	c := New[T](height, width)
	i := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c.data[i] = f(x, y)
			i++
		}
	}
	return c
}

// FromRaw wraps an existing row-major slice of length height*width as a
// canvas without copying. The canvas takes ownership of the slice.
func FromRaw[T any](height, width int, data []T) (*WrapCanvas[T], error) {
	if len(data) != height*width {
		return nil, fmt.Errorf("canvas: raw slice has %d cells, want %d×%d=%d",
			len(data), height, width, height*width)
	}
	return &WrapCanvas[T]{
		data:   data,
		width:  width,
		height: height,
		dims:   NewWrapDimension(height, width),
	}, nil
}

// Height returns the number of rows.
func (c *WrapCanvas[T]) Height() int { return c.height }

// Width returns the number of columns.
func (c *WrapCanvas[T]) Width() int { return c.width }

// At returns the cell addressed by p, wrapping both axes.
func (c *WrapCanvas[T]) At(p Coord) T {
	row, col := c.dims.ComputeIndex(p)
	return c.data[row*c.width+col]
}

// Set stores v in the cell addressed by p, wrapping both axes.
func (c *WrapCanvas[T]) Set(p Coord, v T) {
	row, col := c.dims.ComputeIndex(p)
	c.data[row*c.width+col] = v
}

// Raw returns the backing row-major slice. Mutating it mutates the canvas.
func (c *WrapCanvas[T]) Raw() []T { return c.data }
