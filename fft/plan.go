// Package fft provides a planned, reusable separable 2D Fourier transform
// over complex fields, assembled from two 1D transform plans and an
// in-buffer transpose.
package fft

import (
	"fmt"
	"sync"

	"gonum.org/v1/gonum/dsp/fourier"
)

// Plan2D transforms width×height complex fields. Both axis transforms run
// in the forward direction; the package deliberately offers no inverse,
// because its one consumer (spectral noise shaping) only needs the power
// spectrum shaped, not the signal reconstructed. A true inverse can be
// obtained externally by conjugation and scaling.
//
// A Plan2D is immutable after construction and safe for concurrent use;
// construct one per distinct shape and retain it. Scratch buffers are
// pooled per plan and reused across calls.
type Plan2D struct {
	width   int
	height  int
	row     *fourier.CmplxFFT
	col     *fourier.CmplxFFT
	scratch sync.Pool
}

// NewPlan2D plans a transform for width×height fields. Both dimensions
// must be positive.
func NewPlan2D(width, height int) *Plan2D {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("fft: invalid plan shape %d×%d", width, height))
	}
	p := &Plan2D{
		width:  width,
		height: height,
		row:    fourier.NewCmplxFFT(width),
		col:    fourier.NewCmplxFFT(height),
	}
	// One buffer covers both the 1D passes (max(width, height)) and the
	// transpose (width*height).
	p.scratch.New = func() any {
		buf := make([]complex128, width*height)
		return &buf
	}
	return p
}

// Width returns the planned field width.
func (p *Plan2D) Width() int { return p.width }

// Height returns the planned field height.
func (p *Plan2D) Height() int { return p.height }

// Apply performs the full 2D forward transform of data in place. data is
// row-major with p.Height() rows of p.Width() columns and must have
// exactly Width*Height elements.
//
// The field is transformed along rows, transposed, transformed along the
// other axis, and transposed back, so both axes see exactly one forward
// 1D pass.
func (p *Plan2D) Apply(data []complex128) {
	w, h := p.width, p.height
	if len(data) != w*h {
		panic(fmt.Sprintf("fft: field has %d samples, plan wants %d×%d=%d",
			len(data), w, h, w*h))
	}

	bufp := p.scratch.Get().(*[]complex128)
	buf := *bufp
	defer p.scratch.Put(bufp)

	for y := 0; y < h; y++ {
		seg := data[y*w : (y+1)*w]
		p.row.Coefficients(buf[:w], seg)
		copy(seg, buf[:w])
	}

	transpose(buf, data, h, w)
	copy(data, buf)

	for x := 0; x < w; x++ {
		seg := data[x*h : (x+1)*h]
		p.col.Coefficients(buf[:h], seg)
		copy(seg, buf[:h])
	}

	transpose(buf, data, w, h)
	copy(data, buf)
}

// transpose writes the transpose of src (rows×cols, row-major) into dst
// (cols×rows, row-major). dst and src must not alias.
func transpose(dst, src []complex128, rows, cols int) {
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			dst[c*rows+r] = src[r*cols+c]
		}
	}
}
