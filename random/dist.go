package random

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/artgrid/symart/symmetry"
)

// Symmetry picks one of the 17 wallpaper groups uniformly.
type Symmetry struct{}

func (Symmetry) Sample(r *Rand) symmetry.Group {
	return symmetry.Group(r.Intn(symmetry.GroupCount))
}

// Color picks a fully saturated RGB triple along a 6-arc rainbow hue
// wheel: one arc uniformly, then a byte parameter along the arc. The
// result always has at least one channel at 255 and one at 0, so it is
// never gray.
type Color struct{}

func (Color) Sample(r *Rand) [3]uint8 {
	c := uint8(r.Intn(255))
	switch r.Intn(6) {
	case 0:
		return [3]uint8{255, c, 0}
	case 1:
		return [3]uint8{255 - c, 255, 0}
	case 2:
		return [3]uint8{0, 255, c}
	case 3:
		return [3]uint8{0, 255 - c, 255}
	case 4:
		return [3]uint8{c, 0, 255}
	default:
		return [3]uint8{255, 0, 255 - c}
	}
}

// Levy is the symmetric Lévy-stable distribution with stability parameter
// Alpha in (0, 2], sampled with the Chambers–Mallows–Stuck transform.
// Alpha = 2 gives Gaussian-like tails; smaller Alpha gives heavier tails.
type Levy struct {
	Alpha float64
}

func (l Levy) Sample(r *Rand) float64 {
	u := (r.Float64() - 0.5) * math.Pi
	v := distuv.Exponential{Rate: 1, Src: r.src}.Rand()
	t := math.Sin(l.Alpha*u) / math.Pow(math.Cos(u), 1/l.Alpha)
	s := math.Pow(math.Cos((1-l.Alpha)*u)/v, (1-l.Alpha)/l.Alpha)
	return t * s
}

// Fraction picks uniformly among {0, 1/Denom, ..., (Denom-1)/Denom}.
type Fraction struct {
	Denom int
}

func (f Fraction) Sample(r *Rand) float64 {
	return float64(r.Intn(f.Denom)) / float64(f.Denom)
}

// NormalScaled is a centered normal with standard deviation Sigma.
type NormalScaled struct {
	Sigma float64
}

func (n NormalScaled) Sample(r *Rand) float64 {
	return n.Sigma * distuv.Normal{Mu: 0, Sigma: 1, Src: r.src}.Rand()
}

// ComplexStdNormal draws independent standard-normal real and imaginary
// parts.
type ComplexStdNormal struct{}

func (ComplexStdNormal) Sample(r *Rand) complex128 {
	n := distuv.Normal{Mu: 0, Sigma: 1, Src: r.src}
	return complex(n.Rand(), n.Rand())
}

// Slice picks uniformly from a fixed list, typically a table of
// precomputed transform functions.
type Slice[T any] struct {
	Items []T
}

func (s Slice[T]) Sample(r *Rand) T {
	return s.Items[r.Intn(len(s.Items))]
}

// PointOnCircle picks a uniform direction on the unit circle.
type PointOnCircle struct{}

func (PointOnCircle) Sample(r *Rand) symmetry.Point[float64] {
	n := distuv.Normal{Mu: 0, Sigma: 1, Src: r.src}
	x, y := n.Rand(), n.Rand()
	d := math.Sqrt(x*x + y*y)
	return symmetry.Point[float64]{X: x / d, Y: y / d}
}

// SechSquare is the logistic-like distribution with density proportional
// to sech²(x/2), sampled by inverting the logistic CDF.
type SechSquare struct{}

func (SechSquare) Sample(r *Rand) float64 {
	x := r.Float64()
	return math.Log(x / (1 - x))
}

// Covariance factors that make the bivariate normal isotropic under the
// hexagonal norm x² + xy + y².
const (
	hexSum  = 0.93060485910209959893
	hexDiff = 0.53728496591177095978
)

// NormalVec draws a bivariate normal step vector that is isotropic under
// the given grid norm, so brush motion looks the same on square and
// hexagonal lattices.
type NormalVec struct {
	Norm symmetry.GridNorm
}

func (nv NormalVec) Sample(r *Rand) symmetry.Point[float64] {
	n := distuv.Normal{Mu: 0, Sigma: 1, Src: r.src}
	if nv.Norm == symmetry.Hexagonal {
		s := hexSum * n.Rand()
		d := hexDiff * n.Rand()
		return symmetry.Point[float64]{X: s + d, Y: s - d}
	}
	return symmetry.Point[float64]{X: n.Rand(), Y: n.Rand()}
}
