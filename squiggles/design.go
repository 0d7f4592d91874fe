package squiggles

import (
	"fmt"
	"image"

	"github.com/artgrid/symart"
	"github.com/artgrid/symart/fft"
	"github.com/artgrid/symart/random"
)

// Design renders a full squiggle image: a stack of independently tinted
// squiggle layers composited onto a square tile that is exactly invariant
// under the chosen (or randomly drawn) wallpaper group.
//
// The zero value is not usable; populate it from JSON or set every field.
type Design struct {
	Symmetry  symart.SymmetryChoice `json:"symmetry"`
	Size      int                   `json:"size"`
	Colors    int                   `json:"colors"`
	Exponent  float64               `json:"exponent"`
	Alpha     float64               `json:"alpha"`
	Thickness float64               `json:"thickness"`
	Sharpness float64               `json:"sharpness"`
}

// Name implements symart.Design.
func (d *Design) Name() string { return "Squiggles" }

// Schema implements symart.Design.
func (d *Design) Schema() map[string]any {
	return map[string]any{
		"title": "Parameters",
		"type":  "object",
		"properties": map[string]any{
			"symmetry": symart.SchemaSymmetries(),
			"size":     symart.SchemaSizeEven(),
			"colors":   symart.SchemaNumColors(),
			"exponent": map[string]any{
				"type":    "number",
				"title":   "Exponent",
				"default": 2,
			},
			"alpha": map[string]any{
				"type":    "number",
				"title":   "Alpha",
				"minimum": 0.01,
				"maximum": 2,
				"default": 2,
			},
			"thickness": map[string]any{
				"type":    "number",
				"title":   "Thickness",
				"default": 1,
			},
			"sharpness": map[string]any{
				"type":    "number",
				"title":   "Sharpness",
				"default": 2,
			},
		},
		"required": []string{
			"symmetry", "size", "colors", "alpha", "thickness", "sharpness",
		},
	}
}

func (d *Design) validate() error {
	switch {
	case d.Size < 2 || d.Size%2 != 0:
		return fmt.Errorf("%w: size must be even and at least 2, got %d", symart.ErrBadParameter, d.Size)
	case d.Colors < 1:
		return fmt.Errorf("%w: colors must be at least 1, got %d", symart.ErrBadParameter, d.Colors)
	case !(d.Alpha > 0 && d.Alpha <= 2):
		return fmt.Errorf("%w: alpha must be in (0, 2], got %v", symart.ErrBadParameter, d.Alpha)
	case !(d.Thickness > 0):
		return fmt.Errorf("%w: thickness must be positive, got %v", symart.ErrBadParameter, d.Thickness)
	}
	return nil
}

// Draw implements symart.Design. Layers are generated in parallel and
// merged sequentially in request order; if any layer fails, the whole draw
// fails.
func (d *Design) Draw() (*symart.DrawResponse, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}

	rng := random.New()
	sym := d.Symmetry.Resolve(rng)
	symart.Logger().Info("drawing squiggles",
		"group", sym.String(), "size", d.Size, "colors", d.Colors)

	plan := fft.NewPlan2D(d.Size, d.Size)
	layers, err := LayersSymmetric(d.Colors, sym, plan, Params{
		Exponent:  d.Exponent,
		Alpha:     d.Alpha,
		Thickness: d.Thickness,
		Sharpness: d.Sharpness,
	})
	if err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, d.Size, d.Size))
	merge := symart.MergeRandomColor(img, rng)
	for _, layer := range layers {
		merge(layer.Wrap())
	}
	return &symart.DrawResponse{Image: img, Group: &sym}, nil
}
