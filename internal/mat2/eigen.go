package mat2

import "math"

// Complex is a complex scalar as plain serializable data. Imag is exactly
// zero for real eigenvalues.
type Complex struct {
	Real float64 `json:"real"`
	Imag float64 `json:"imag"`
}

// EigenResult holds both roots of the characteristic equation.
//
// When IsComplex is false the roots are ordered so that
// Lambda1.Real >= Lambda2.Real and both Imag fields are exactly zero.
// When IsComplex is true the roots are a conjugate pair with
// Lambda1.Imag > 0.
type EigenResult struct {
	Lambda1   Complex `json:"lambda1"`
	Lambda2   Complex `json:"lambda2"`
	IsComplex bool    `json:"is_complex"`
}

// EigenvectorPair holds unit eigenvectors and their real eigenvalues.
// V1 corresponds to Lambda1 and V2 to Lambda2, matching the EigenResult
// ordering.
type EigenvectorPair struct {
	V1      Vec2    `json:"v1"`
	V2      Vec2    `json:"v2"`
	Lambda1 float64 `json:"lambda1"`
	Lambda2 float64 `json:"lambda2"`
}

// Eigenvalues solves lambda^2 - trace*lambda + det = 0 in closed form.
//
// Discriminant delta = trace^2 - 4*det. Negative delta produces a complex
// conjugate pair {trace/2, +-sqrt(-delta)/2}; otherwise the real roots
// (trace +- sqrt(delta))/2, with the + root first so that
// Lambda1.Real >= Lambda2.Real always holds in the real case.
func (m Matrix) Eigenvalues() EigenResult {
	tr := m.Trace()
	det := m.Det()
	delta := tr*tr - 4*det

	if delta < 0 {
		re := tr / 2
		im := math.Sqrt(-delta) / 2
		return EigenResult{
			Lambda1:   Complex{Real: re, Imag: im},
			Lambda2:   Complex{Real: re, Imag: -im},
			IsComplex: true,
		}
	}

	root := math.Sqrt(delta)
	return EigenResult{
		Lambda1: Complex{Real: (tr + root) / 2},
		Lambda2: Complex{Real: (tr - root) / 2},
	}
}

// eigenvector solves (A - lambda*I)v = 0 for a unit vector.
//
// Branch policy, in priority order:
//  1. |b| > SingularTol: v = normalize(-b, a-lambda), from the first row.
//  2. |c| > SingularTol: v = normalize(-(d-lambda), c), from the second row.
//  3. both off-diagonals ~0, so the matrix is diagonal: (1, 0) when lambda
//     matches the top-left entry, (0, 1) otherwise.
//
// The fallback axes are deterministic, so repeated calls and golden tests
// agree.
func (m Matrix) eigenvector(lambda float64) Vec2 {
	if math.Abs(m.B) > SingularTol {
		return normalize(-m.B, m.A-lambda)
	}
	if math.Abs(m.C) > SingularTol {
		return normalize(-(m.D - lambda), m.C)
	}
	if math.Abs(m.A-lambda) < SingularTol {
		return Vec2{X: 1, Y: 0}
	}
	return Vec2{X: 0, Y: 1}
}

// Eigenvectors computes unit eigenvectors for both eigenvalues. ok is
// false when the eigenvalues are complex, in which case the matrix has no
// real eigenvectors and the zero pair is returned.
func (m Matrix) Eigenvectors() (EigenvectorPair, bool) {
	ev := m.Eigenvalues()
	if ev.IsComplex {
		return EigenvectorPair{}, false
	}
	v1 := m.eigenvector(ev.Lambda1.Real)
	v2 := m.eigenvector(ev.Lambda2.Real)
	// Scalar matrices (b = c = 0, a = d) hit the same fallback axis for
	// both roots; take the complementary axis so the eigenvector basis
	// stays invertible. Defective matrices like a shear keep the repeated
	// direction and are caught downstream by the singular-P check.
	if v1 == v2 && math.Abs(m.B) < SingularTol && math.Abs(m.C) < SingularTol {
		v2 = Vec2{X: 0, Y: 1}
	}
	return EigenvectorPair{
		V1:      v1,
		V2:      v2,
		Lambda1: ev.Lambda1.Real,
		Lambda2: ev.Lambda2.Real,
	}, true
}
