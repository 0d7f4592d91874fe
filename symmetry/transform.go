package symmetry

// Num constrains the scalar coordinate types a transformation can act on.
// Integer coordinates address canvas cells; floating coordinates are used
// by continuous drawing helpers.
type Num interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Point is a 2D point (or vector) with scalar type T.
type Point[T Num] struct {
	X, Y T
}

// Add returns p + q treated as vectors.
func (p Point[T]) Add(q Point[T]) Point[T] {
	return Point[T]{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q treated as vectors.
func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Point[T]{X: p.X - q.X, Y: p.Y - q.Y}
}

// Transformation is an affine map over 2D points:
//
//	| X' |   | XX  XY | | X |   | X0 |
//	| Y' | = | YX  YY | | Y | + | Y0 |
//
// The linear part is restricted to the signed unit coefficients the
// wallpaper groups need, so integer instantiations stay exact.
type Transformation[T Num] struct {
	XX, XY, YX, YY T
	X0, Y0         T
}

// Apply maps the point p through the transformation.
func (tr Transformation[T]) Apply(p Point[T]) Point[T] {
	return Point[T]{
		X: tr.XX*p.X + tr.XY*p.Y + tr.X0,
		Y: tr.YX*p.X + tr.YY*p.Y + tr.Y0,
	}
}

// NewTransformation builds an affine map from the two matrix rows and the
// translation components interleaved as (xx, xy, x0, yx, yy, y0).
func NewTransformation[T Num](xx, xy, x0, yx, yy, y0 T) Transformation[T] {
	return Transformation[T]{XX: xx, XY: xy, YX: yx, YY: yy, X0: x0, Y0: y0}
}

func linear[T Num](xx, xy, yx, yy T) Transformation[T] {
	return Transformation[T]{XX: xx, XY: xy, YX: yx, YY: yy}
}

// Identity returns the identity transformation.
func Identity[T Num]() Transformation[T] {
	return linear[T](1, 0, 0, 1)
}

// Rotations about the origin. On the hexagonal lattice the six-fold
// rotations are exact integer maps, which is why the matrices below look
// unlike the familiar cos/sin pairs.

func Rot60[T Num]() Transformation[T]  { return linear[T](0, -1, 1, 1) }
func Rot90[T Num]() Transformation[T]  { return linear[T](0, -1, 1, 0) }
func Rot120[T Num]() Transformation[T] { return linear[T](-1, -1, 1, 0) }
func Rot180[T Num]() Transformation[T] { return linear[T](-1, 0, 0, -1) }
func Rot240[T Num]() Transformation[T] { return linear[T](0, 1, -1, -1) }
func Rot270[T Num]() Transformation[T] { return linear[T](0, 1, -1, 0) }
func Rot300[T Num]() Transformation[T] { return linear[T](1, 1, -1, 0) }

// FlipH mirrors across the vertical axis.
func FlipH[T Num]() Transformation[T] { return linear[T](-1, 0, 0, 1) }

// FlipV mirrors across the horizontal axis.
func FlipV[T Num]() Transformation[T] { return linear[T](1, 0, 0, -1) }

// The six diagonal mirrors of the hexagonal point group, numbered in the
// order the P6M generator list uses them.

func FlipD1[T Num]() Transformation[T] { return linear[T](0, 1, 1, 0) }
func FlipD2[T Num]() Transformation[T] { return linear[T](0, -1, -1, 0) }
func FlipD3[T Num]() Transformation[T] { return linear[T](-1, -1, 0, 1) }
func FlipD4[T Num]() Transformation[T] { return linear[T](1, 1, 0, -1) }
func FlipD5[T Num]() Transformation[T] { return linear[T](1, 0, -1, -1) }
func FlipD6[T Num]() Transformation[T] { return linear[T](-1, 0, 1, 1) }

// FlipD1Off is the main-diagonal mirror displaced by offset along both
// axes, used by groups whose mirrors do not pass through the origin.
func FlipD1Off[T Num](offset T) Transformation[T] {
	return NewTransformation(0, 1, offset, 1, 0, offset)
}

// FlipD2Off is the displaced anti-diagonal mirror.
func FlipD2Off[T Num](offset T) Transformation[T] {
	return NewTransformation(0, -1, offset, -1, 0, offset)
}

// GlideX is a glide reflection along the x axis: translate by glide in x,
// mirror across the horizontal line y = offset/2.
func GlideX[T Num](glide, offset T) Transformation[T] {
	return NewTransformation(1, 0, glide, 0, -1, offset)
}

// GlideY is a glide reflection along the y axis.
func GlideY[T Num](glide, offset T) Transformation[T] {
	return NewTransformation(-1, 0, offset, 0, 1, glide)
}

// Transformations returns the generator list of the group on a periodic
// square tile of size 2*hsz. The list always has exactly g.Order()
// elements and always starts with the identity.
//
// hsz parameterizes the glide distances and mirror offsets of the groups
// whose operations are not origin-centered (PG, PGG, PMG, P4G); passing
// anything other than half the tile size breaks seamlessness at the tile
// boundary.
func Transformations[T Num](g Group, hsz T) []Transformation[T] {
	switch g {
	case CM:
		return []Transformation[T]{Identity[T](), FlipD1[T]()}
	case CMM:
		return []Transformation[T]{Identity[T](), Rot180[T](), FlipD1[T](), FlipD2[T]()}
	case P1:
		return []Transformation[T]{Identity[T]()}
	case P2:
		return []Transformation[T]{Identity[T](), Rot180[T]()}
	case P3:
		return []Transformation[T]{Identity[T](), Rot120[T](), Rot240[T]()}
	case P31M:
		return []Transformation[T]{
			Identity[T](), Rot120[T](), Rot240[T](),
			FlipD2[T](), FlipD4[T](), FlipD6[T](),
		}
	case P3M1:
		return []Transformation[T]{
			Identity[T](), Rot120[T](), Rot240[T](),
			FlipD1[T](), FlipD3[T](), FlipD5[T](),
		}
	case P4:
		return []Transformation[T]{Identity[T](), Rot90[T](), Rot180[T](), Rot270[T]()}
	case P4G:
		return []Transformation[T]{
			Identity[T](), Rot90[T](), Rot180[T](), Rot270[T](),
			GlideX(hsz, hsz), GlideY(hsz, hsz),
			FlipD1Off(hsz), FlipD2Off(hsz),
		}
	case P4M:
		return []Transformation[T]{
			Identity[T](), Rot90[T](), Rot180[T](), Rot270[T](),
			FlipV[T](), FlipH[T](), FlipD1[T](), FlipD2[T](),
		}
	case P6:
		return []Transformation[T]{
			Identity[T](), Rot60[T](), Rot120[T](),
			Rot180[T](), Rot240[T](), Rot300[T](),
		}
	case P6M:
		return []Transformation[T]{
			Identity[T](), Rot60[T](), Rot120[T](),
			Rot180[T](), Rot240[T](), Rot300[T](),
			FlipD1[T](), FlipD2[T](), FlipD3[T](),
			FlipD4[T](), FlipD5[T](), FlipD6[T](),
		}
	case PG:
		return []Transformation[T]{Identity[T](), GlideX(hsz, hsz)}
	case PGG:
		return []Transformation[T]{
			Identity[T](), Rot180[T](),
			GlideX(hsz, hsz), GlideY(hsz, hsz),
		}
	case PM:
		return []Transformation[T]{Identity[T](), FlipH[T]()}
	case PMG:
		var zero T
		return []Transformation[T]{
			Identity[T](), Rot180[T](),
			GlideX(hsz, zero), GlideY(zero, hsz),
		}
	case PMM:
		return []Transformation[T]{Identity[T](), Rot180[T](), FlipV[T](), FlipH[T]()}
	}
	return nil
}
