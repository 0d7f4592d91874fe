// Package squiggles synthesizes smooth, textured "squiggle" layers from
// spectrally filtered Lévy noise, optionally symmetrized under a wallpaper
// group before filtering so the rendered pattern is exactly
// group-invariant.
package squiggles

import (
	"fmt"
	"math"

	"github.com/artgrid/symart"
	"github.com/artgrid/symart/canvas"
	"github.com/artgrid/symart/fft"
	"github.com/artgrid/symart/random"
	"github.com/artgrid/symart/symmetry"
)

// Params controls the look of a squiggle layer.
type Params struct {
	// Exponent shapes the power-law spectral filter. Positive values
	// damp high frequencies (smooth, blobby strokes); negative values
	// boost them.
	Exponent float64

	// Alpha is the Lévy stability parameter in (0, 2]. Smaller values
	// make the underlying noise burstier.
	Alpha float64

	// Thickness scales the rendered line width; smaller is thinner.
	Thickness float64

	// Sharpness controls the falloff from ridge to background.
	Sharpness float64
}

func levyCell(r *random.Rand, alpha float64, single bool) complex128 {
	d := random.Levy{Alpha: alpha}
	if single {
		return complex(d.Sample(r), 0)
	}
	return complex(d.Sample(r), d.Sample(r))
}

// generateNoise fills a field with i.i.d. Lévy samples: one real draw per
// cell in single mode, independent real and imaginary draws otherwise.
func generateNoise(r *random.Rand, plan *fft.Plan2D, alpha float64, single bool) *canvas.WrapCanvas[complex128] {
	return canvas.FromFunc(plan.Height(), plan.Width(), func(_, _ int) complex128 {
		return levyCell(r, alpha, single)
	})
}

// generateNoiseSymmetric accumulates every cell's sample into all orbit
// images of that cell, producing an approximately group-symmetric field.
// Spectral filtering is linear and shift-invariant, so the symmetry
// survives to the rendered layer.
func generateNoiseSymmetric(r *random.Rand, plan *fft.Plan2D, alpha float64, single bool, sym symmetry.Group) *canvas.WrapCanvas[complex128] {
	field := canvas.New[complex128](plan.Height(), plan.Width())
	transforms := symmetry.Transformations(sym, plan.Width()/2)
	for y := 0; y < plan.Height(); y++ {
		for x := 0; x < plan.Width(); x++ {
			v := levyCell(r, alpha, single)
			for _, tr := range transforms {
				p := tr.Apply(canvas.Coord{X: x, Y: y})
				field.Set(p, field.At(p)+v)
			}
		}
	}
	return field
}

// convolve applies the power-law spectral filter: one forward 2D pass,
// a per-frequency scale of r^(-exponent/2) with
// r = c - cos(2πkx/W) - cos(2πky/H) and c = 3 - cos(min(2π/W, 2π/H)),
// then a second forward pass.
//
// Two forward passes instead of forward+inverse is deliberate: the
// thresholding step only keeps statistical structure, so only the power
// spectrum matters, and "fixing" this to a textbook inverse would change
// the rendered texture.
func convolve(plan *fft.Plan2D, field *canvas.WrapCanvas[complex128], exponent float64) {
	data := field.Raw()
	plan.Apply(data)
	w, h := plan.Width(), plan.Height()
	ax := 2 * math.Pi / float64(w)
	ay := 2 * math.Pi / float64(h)
	c := 3 - math.Cos(math.Min(ax, ay))
	for y := 0; y < h; y++ {
		cy := math.Cos(ay * float64(y))
		for x := 0; x < w; x++ {
			r := c - math.Cos(ax*float64(x)) - cy
			data[y*w+x] *= complex(math.Pow(r, -exponent/2), 0)
		}
	}
	plan.Apply(data)
}

func projRe(v complex128) float64 { return real(v) }
func projIm(v complex128) float64 { return imag(v) }

// renderLayer thresholds one channel of the filtered field into 8-bit
// intensities. Cells near the channel's zero crossings render bright;
// large amplitudes fade, which traces thin ridges along the field's
// contours. Degenerate inputs (zero RMS, non-finite samples) clamp into
// range rather than producing non-finite output.
func renderLayer(field *canvas.WrapCanvas[complex128], proj func(complex128) float64, thickness, sharpness float64) *canvas.WrapCanvas[uint8] {
	data := field.Raw()
	var n2 float64
	for _, v := range data {
		p := proj(v)
		n2 += p * p
	}
	rms := math.Sqrt(n2 / float64(len(data)))
	norm := 6.4 / (thickness * rms)
	out := make([]uint8, len(data))
	for i, v := range data {
		height := math.Abs(proj(v) * norm)
		if math.IsNaN(height) {
			height = 0
		}
		out[i] = uint8(255.99 / (math.Pow(height, sharpness) + 1))
	}
	layer, err := canvas.FromRaw(field.Height(), field.Width(), out)
	if err != nil {
		// Unreachable: out has exactly one cell per field cell.
		panic(err)
	}
	return layer
}

func projections(single bool) []func(complex128) float64 {
	if single {
		return []func(complex128) float64{projRe}
	}
	return []func(complex128) float64{projRe, projIm}
}

// Generate renders one ("single") or two squiggle layers from a single
// random field and a single filter pass. The two layers of a double
// generation come from the real and imaginary channels and are
// statistically independent.
func Generate(r *random.Rand, plan *fft.Plan2D, p Params, single bool) []*canvas.WrapCanvas[uint8] {
	field := generateNoise(r, plan, p.Alpha, single)
	convolve(plan, field, p.Exponent)
	symart.Logger().Debug("squiggle field filtered",
		"width", plan.Width(), "height", plan.Height(),
		"exponent", p.Exponent, "alpha", p.Alpha, "single", single)
	layers := make([]*canvas.WrapCanvas[uint8], 0, 2)
	for _, proj := range projections(single) {
		layers = append(layers, renderLayer(field, proj, p.Thickness, p.Sharpness))
	}
	return layers
}

// GenerateSymmetric is Generate with the noise field symmetrized under sym
// before filtering, so every returned layer is exactly invariant under the
// group. The plan must describe an even square tile.
func GenerateSymmetric(r *random.Rand, sym symmetry.Group, plan *fft.Plan2D, p Params, single bool) ([]*canvas.SymmetricCanvas[uint8], error) {
	if plan.Width() != plan.Height() || plan.Width()%2 != 0 {
		return nil, fmt.Errorf("%w: symmetric squiggles need an even square plan, got %d×%d",
			symart.ErrBadParameter, plan.Width(), plan.Height())
	}
	field := generateNoiseSymmetric(r, plan, p.Alpha, single, sym)
	convolve(plan, field, p.Exponent)
	symart.Logger().Debug("symmetric squiggle field filtered",
		"group", sym.String(), "size", plan.Width(),
		"exponent", p.Exponent, "alpha", p.Alpha, "single", single)
	layers := make([]*canvas.SymmetricCanvas[uint8], 0, 2)
	for _, proj := range projections(single) {
		// The filtered field is already symmetric; adopt the rendered
		// array directly instead of re-replicating every cell.
		sc, err := canvas.SymmetricFromWrap(renderLayer(field, proj, p.Thickness, p.Sharpness), sym)
		if err != nil {
			return nil, err
		}
		layers = append(layers, sc)
	}
	return layers, nil
}

// Layers produces exactly n squiggle layers, generating the underlying
// fields in parallel. Only ceil(n/2) fields are generated: each field
// yields two layers except the last one when n is odd, which runs in
// single-channel mode.
func Layers(n int, plan *fft.Plan2D, p Params) ([]*canvas.WrapCanvas[uint8], error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: layer count %d", symart.ErrBadParameter, n)
	}
	batches, err := symart.MakeLayersN((n+1)/2, func(i int, r *random.Rand) ([]*canvas.WrapCanvas[uint8], error) {
		return Generate(r, plan, p, 2*i == n-1), nil
	})
	if err != nil {
		return nil, err
	}
	return flatten(batches), nil
}

// LayersSymmetric is Layers for group-invariant layers.
func LayersSymmetric(n int, sym symmetry.Group, plan *fft.Plan2D, p Params) ([]*canvas.SymmetricCanvas[uint8], error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: layer count %d", symart.ErrBadParameter, n)
	}
	batches, err := symart.MakeLayersN((n+1)/2, func(i int, r *random.Rand) ([]*canvas.SymmetricCanvas[uint8], error) {
		return GenerateSymmetric(r, sym, plan, p, 2*i == n-1)
	})
	if err != nil {
		return nil, err
	}
	return flatten(batches), nil
}

func flatten[T any](batches [][]T) []T {
	var out []T
	for _, b := range batches {
		out = append(out, b...)
	}
	return out
}
