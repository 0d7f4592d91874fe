package random

import (
	"math"
	"testing"

	"github.com/artgrid/symart/symmetry"
)

func TestNewSeededIsDeterministic(t *testing.T) {
	a := NewSeeded(12345)
	b := NewSeeded(12345)
	for i := 0; i < 100; i++ {
		if av, bv := a.Float64(), b.Float64(); av != bv {
			t.Fatalf("draw %d: %v != %v", i, av, bv)
		}
	}
}

func TestSymmetryDistributionCoverage(t *testing.T) {
	r := NewSeeded(1)
	seen := map[symmetry.Group]bool{}
	for i := 0; i < 5000; i++ {
		g := Sample(r, Symmetry{})
		if g < 0 || int(g) >= symmetry.GroupCount {
			t.Fatalf("Symmetry sample out of range: %d", int(g))
		}
		seen[g] = true
	}
	if len(seen) != symmetry.GroupCount {
		t.Errorf("5000 draws hit %d distinct groups, want %d", len(seen), symmetry.GroupCount)
	}
}

func TestColorIsAlwaysSaturated(t *testing.T) {
	r := NewSeeded(2)
	for i := 0; i < 2000; i++ {
		c := Sample(r, Color{})
		var has255, has0 bool
		for _, ch := range c {
			if ch == 255 {
				has255 = true
			}
			if ch == 0 {
				has0 = true
			}
		}
		if !has255 || !has0 {
			t.Fatalf("draw %d: color %v is not on the rainbow hue wheel", i, c)
		}
	}
}

func TestLevyIsFinite(t *testing.T) {
	for _, alpha := range []float64{0.5, 1.0, 1.5, 2.0} {
		r := NewSeeded(3)
		for i := 0; i < 2000; i++ {
			v := Sample(r, Levy{Alpha: alpha})
			if math.IsNaN(v) {
				t.Fatalf("alpha %v draw %d: NaN", alpha, i)
			}
		}
	}
}

func TestLevyAlpha2HasModerateTails(t *testing.T) {
	// At alpha = 2 the stable distribution degenerates toward Gaussian
	// tails, so thousands of draws should all stay within a modest bound.
	r := NewSeeded(4)
	for i := 0; i < 5000; i++ {
		v := Sample(r, Levy{Alpha: 2})
		if math.Abs(v) > 100 {
			t.Fatalf("draw %d: |%v| implausibly large for alpha=2", i, v)
		}
	}
}

func TestFraction(t *testing.T) {
	r := NewSeeded(5)
	const denom = 8
	for i := 0; i < 1000; i++ {
		v := Sample(r, Fraction{Denom: denom})
		if v < 0 || v >= 1 {
			t.Fatalf("draw %d: %v out of [0, 1)", i, v)
		}
		scaled := v * denom
		if scaled != math.Trunc(scaled) {
			t.Fatalf("draw %d: %v is not a multiple of 1/%d", i, v, denom)
		}
	}
}

func TestSlice(t *testing.T) {
	r := NewSeeded(6)
	items := []string{"a", "b", "c"}
	seen := map[string]bool{}
	for i := 0; i < 300; i++ {
		v := Sample(r, Slice[string]{Items: items})
		seen[v] = true
	}
	if len(seen) != len(items) {
		t.Errorf("300 draws hit %d distinct items, want %d", len(seen), len(items))
	}
}

func TestPointOnCircle(t *testing.T) {
	r := NewSeeded(7)
	for i := 0; i < 500; i++ {
		p := Sample(r, PointOnCircle{})
		n := p.X*p.X + p.Y*p.Y
		if math.Abs(n-1) > 1e-9 {
			t.Fatalf("draw %d: |%+v|² = %v, want 1", i, p, n)
		}
	}
}

func TestSechSquareIsFiniteAndCentered(t *testing.T) {
	r := NewSeeded(8)
	var sum float64
	const n = 20000
	for i := 0; i < n; i++ {
		v := Sample(r, SechSquare{})
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("draw %d: non-finite %v", i, v)
		}
		sum += v
	}
	if mean := sum / n; math.Abs(mean) > 0.1 {
		t.Errorf("mean of %d draws = %v, want near 0", n, mean)
	}
}

func TestNormalVecHexagonalCovariance(t *testing.T) {
	// The hexagonal covariance factors a = 0.9306…, b = 0.5373… satisfy
	// a² = √3/2 and b² = 1/(2√3), giving Var(x) = Var(y) = a²+b² = 2/√3
	// and Cov(x, y) = a²−b² = 1/√3: correlation one half, which is what
	// makes the step vector isotropic on the triangular lattice.
	r := NewSeeded(9)
	var sxx, syy, sxy float64
	const n = 200000
	for i := 0; i < n; i++ {
		p := Sample(r, NormalVec{Norm: symmetry.Hexagonal})
		sxx += p.X * p.X
		syy += p.Y * p.Y
		sxy += p.X * p.Y
	}
	wantVar := 2 / math.Sqrt(3)
	wantCov := 1 / math.Sqrt(3)
	if vx := sxx / n; math.Abs(vx-wantVar) > 0.05 {
		t.Errorf("Var(x) = %v, want near %v", vx, wantVar)
	}
	if vy := syy / n; math.Abs(vy-wantVar) > 0.05 {
		t.Errorf("Var(y) = %v, want near %v", vy, wantVar)
	}
	if cv := sxy / n; math.Abs(cv-wantCov) > 0.05 {
		t.Errorf("Cov(x, y) = %v, want near %v", cv, wantCov)
	}
}

func TestNormalVecSquare(t *testing.T) {
	r := NewSeeded(11)
	var sxy float64
	const n = 100000
	for i := 0; i < n; i++ {
		p := Sample(r, NormalVec{Norm: symmetry.Square})
		sxy += p.X * p.Y
	}
	if cv := sxy / n; math.Abs(cv) > 0.05 {
		t.Errorf("Cov(x, y) = %v, want near 0", cv)
	}
}

func TestSampleFn(t *testing.T) {
	r := NewSeeded(10)
	got := SampleFn(r, func(r *Rand) [2]float64 {
		return [2]float64{r.Float64(), r.Float64()}
	})
	if got[0] == got[1] {
		t.Errorf("composite draw returned identical components %v", got)
	}
}
