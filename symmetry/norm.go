package symmetry

// GridNorm selects the quadratic form matching a group's lattice geometry.
// Drawing helpers use it as the distance metric so that round brush
// strokes look isotropic on both lattices.
type GridNorm int

const (
	// Square is the orthogonal form x² + y².
	Square GridNorm = iota
	// Hexagonal is the form x² + xy + y², the natural metric on the
	// triangular lattice shared by the three- and six-fold groups.
	Hexagonal
)

// NormOrthogonal returns the squared Euclidean norm of v.
func NormOrthogonal[T Num](v Point[T]) T {
	return v.X*v.X + v.Y*v.Y
}

// NormHexagonal returns the squared hexagonal-lattice norm of v.
func NormHexagonal[T Num](v Point[T]) T {
	return v.X*v.X + v.X*v.Y + v.Y*v.Y
}

// NormFor returns the grid norm induced by the group's lattice: hexagonal
// for the three- and six-fold groups, square for everything else.
func NormFor(g Group) GridNorm {
	switch g {
	case P3, P31M, P3M1, P6, P6M:
		return Hexagonal
	default:
		return Square
	}
}

// Norm evaluates the selected quadratic form on v.
func Norm[T Num](n GridNorm, v Point[T]) T {
	if n == Hexagonal {
		return NormHexagonal(v)
	}
	return NormOrthogonal(v)
}
