// Command symartgen renders a wallpaper-group symmetric squiggle pattern
// to a PNG file.
package main

import (
	"flag"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"

	"golang.org/x/image/draw"

	"github.com/artgrid/symart"
	"github.com/artgrid/symart/squiggles"
)

func main() {
	var (
		size      = flag.Int("size", 256, "tile size in pixels (even)")
		colors    = flag.Int("colors", 25, "number of tinted layers")
		sym       = flag.String("symmetry", "Random", "wallpaper group name, or Random")
		exponent  = flag.Float64("exponent", 2, "spectral filter exponent")
		alpha     = flag.Float64("alpha", 2, "Lévy stability parameter in (0, 2]")
		thickness = flag.Float64("thickness", 1, "stroke thickness")
		sharpness = flag.Float64("sharpness", 2, "ridge falloff sharpness")
		scale     = flag.Int("scale", 1, "upscale factor for the output image")
		output    = flag.String("output", "squiggles.png", "output file")
		verbose   = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		symart.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	design := &squiggles.Design{
		Size:      *size,
		Colors:    *colors,
		Exponent:  *exponent,
		Alpha:     *alpha,
		Thickness: *thickness,
		Sharpness: *sharpness,
	}
	if err := design.Symmetry.UnmarshalText([]byte(*sym)); err != nil {
		log.Fatalf("Bad -symmetry: %v", err)
	}

	resp, err := design.Draw()
	if err != nil {
		log.Fatalf("Draw failed: %v", err)
	}

	img := resp.Image
	if *scale > 1 {
		w := img.Bounds().Dx() * *scale
		h := img.Bounds().Dy() * *scale
		big := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.CatmullRom.Scale(big, big.Bounds(), img, img.Bounds(), draw.Src, nil)
		img = big
	}

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *output, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Fatalf("Failed to encode: %v", err)
	}

	log.Printf("Saved %s (%dx%d, group %s)\n",
		*output, img.Bounds().Dx(), img.Bounds().Dy(), resp.Group)
}
