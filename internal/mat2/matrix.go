package mat2

import "math"

// SingularTol is the determinant magnitude below which a matrix is
// treated as singular. The same tolerance gates the eigenvector branch
// selection on the off-diagonal entries.
const SingularTol = 1e-10

// Matrix is an immutable 2x2 real matrix:
//
//	[A B]
//	[C D]
//
// The zero value is the zero matrix. All methods are value receivers and
// never mutate.
type Matrix struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
	C float64 `json:"c"`
	D float64 `json:"d"`
}

// New constructs a matrix from its four entries in row-major order.
// No validation is performed; callers are expected to pass finite reals
// (see IsValid).
func New(a, b, c, d float64) Matrix {
	return Matrix{A: a, B: b, C: c, D: d}
}

// Identity returns the 2x2 identity matrix.
func Identity() Matrix {
	return Matrix{A: 1, B: 0, C: 0, D: 1}
}

// IsValid reports whether all four entries are finite (no NaN, no Inf).
func (m Matrix) IsValid() bool {
	return isFinite(m.A) && isFinite(m.B) && isFinite(m.C) && isFinite(m.D)
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Det returns the determinant a*d - b*c.
func (m Matrix) Det() float64 {
	return m.A*m.D - m.B*m.C
}

// Trace returns the trace a + d.
func (m Matrix) Trace() float64 {
	return m.A + m.D
}

// Transform applies the matrix to the point (x, y) and returns the
// transformed coordinates (a*x + b*y, c*x + d*y).
func (m Matrix) Transform(x, y float64) (float64, float64) {
	return m.A*x + m.B*y, m.C*x + m.D*y
}

// TransformVec applies the matrix to a vector.
func (m Matrix) TransformVec(v Vec2) Vec2 {
	x, y := m.Transform(v.X, v.Y)
	return Vec2{X: x, Y: y}
}

// Mul returns the matrix product m * n. Matrix multiplication is not
// commutative; call sites must preserve operand order.
func (m Matrix) Mul(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.B*n.C,
		B: m.A*n.B + m.B*n.D,
		C: m.C*n.A + m.D*n.C,
		D: m.C*n.B + m.D*n.D,
	}
}

// Inverse returns the inverse matrix. ok is false when |det| < SingularTol,
// in which case the returned matrix is the zero value. Absence is the only
// failure signal; no NaN ever propagates out of a singular inversion.
func (m Matrix) Inverse() (Matrix, bool) {
	det := m.Det()
	if math.Abs(det) < SingularTol {
		return Matrix{}, false
	}
	// The +0 folds IEEE negative zero (from -0/det) into positive zero so
	// inverses of diagonal matrices serialize cleanly.
	return Matrix{
		A: m.D/det + 0,
		B: -m.B/det + 0,
		C: -m.C/det + 0,
		D: m.A/det + 0,
	}, true
}

// Lerp interpolates component-wise between m1 and m2. t is not clamped;
// t=0 yields m1 exactly and t=1 yields m2 exactly. Lerp(m, m, t) == m for
// every t, which the staged animation relies on.
func Lerp(m1, m2 Matrix, t float64) Matrix {
	return Matrix{
		A: m1.A + (m2.A-m1.A)*t,
		B: m1.B + (m2.B-m1.B)*t,
		C: m1.C + (m2.C-m1.C)*t,
		D: m1.D + (m2.D-m1.D)*t,
	}
}

// Vec2 is a plain 2D vector.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// IsValid reports whether both components are finite.
func (v Vec2) IsValid() bool {
	return isFinite(v.X) && isFinite(v.Y)
}

// Length returns the Euclidean norm.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Scale returns the vector scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// normalize returns the unit vector in the direction (x, y). The caller
// guarantees the input is non-zero; the eigenvector branch policy only
// ever normalizes vectors with at least one entry above SingularTol.
func normalize(x, y float64) Vec2 {
	l := math.Hypot(x, y)
	return Vec2{X: x / l, Y: y / l}
}
