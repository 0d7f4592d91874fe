package symart

import (
	"image"
	"image/color"

	"github.com/artgrid/symart/canvas"
	"github.com/artgrid/symart/random"
)

// mergeChannel blends one 8-bit channel with fixed-point alpha
// compositing. The +127 bias rounds the truncating division by 255.
func mergeChannel(old, tint, alpha uint8) uint8 {
	inv := uint16(^alpha)
	tot := uint16(tint)*uint16(alpha) + uint16(old)*inv + 127
	return uint8(tot / 255)
}

// MergeOne alpha-blends a single-channel intensity layer onto img, tinting
// it with the given color. Each cell of the layer acts as the per-pixel
// alpha; the three color channels blend independently.
//
// Blending is not commutative across layers: callers compositing several
// layers must merge them in one fixed order.
func MergeOne(img *image.RGBA, layer *canvas.WrapCanvas[uint8], tint color.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			alpha := layer.At(canvas.Coord{X: x, Y: y})
			i := img.PixOffset(x, y)
			img.Pix[i+0] = mergeChannel(img.Pix[i+0], tint.R, alpha)
			img.Pix[i+1] = mergeChannel(img.Pix[i+1], tint.G, alpha)
			img.Pix[i+2] = mergeChannel(img.Pix[i+2], tint.B, alpha)
			img.Pix[i+3] = 0xff
		}
	}
}

// MergeRandomColor returns a closure that merges each layer it is handed
// onto img with a freshly sampled rainbow tint from r.
func MergeRandomColor(img *image.RGBA, r *random.Rand) func(*canvas.WrapCanvas[uint8]) {
	return func(layer *canvas.WrapCanvas[uint8]) {
		c := random.Sample(r, random.Color{})
		MergeOne(img, layer, color.RGBA{R: c[0], G: c[1], B: c[2], A: 0xff})
	}
}
