// Package diag builds the eigendecomposition A = P*D*Pinv and stages it
// as a continuous animation from the identity to A.
//
// The staging reads the factorization right to left, the order the
// factors act on a vector: first the basis change Pinv, then the scaling
// D, then the change back through P. A progress value in [0, 1] sweeps
// three equal-width stages of cumulative products:
//
//	identity -> Pinv -> D*Pinv -> P*D*Pinv = A
//
// so the grid visibly aligns to the eigenbasis, stretches along the axes,
// and rotates back into the original frame.
package diag

import "github.com/ArkAung/interactive-eigenvector/internal/mat2"

// Stage boundaries of the three-phase animation. The middle stage is one
// hundredth wider so the three local-t denominators cover [0, 1] exactly.
const (
	stage1End = 0.33
	stage2End = 0.67
)

// Phases are the canonical rest points of the staged animation, in order.
var Phases = [4]float64{0, stage1End, stage2End, 1.0}

// Decomposition holds the factorization of a source matrix. When
// Diagonalizable is false (complex eigenvalues, or a defective matrix
// whose eigenvector basis is singular) P, D, and Pinv are zero values and
// must not be used; At returns the identity for every progress.
type Decomposition struct {
	P              mat2.Matrix `json:"p"`
	D              mat2.Matrix `json:"d"`
	Pinv           mat2.Matrix `json:"p_inv"`
	Diagonalizable bool        `json:"diagonalizable"`
}

// Decompose computes P (eigenvectors as columns), D (eigenvalues on the
// diagonal), and Pinv from the eigendecomposition of a. Absence of real
// eigenvectors or a singular eigenvector basis yields a zero Decomposition
// with Diagonalizable false.
func Decompose(a mat2.Matrix) Decomposition {
	pair, ok := a.Eigenvectors()
	if !ok {
		return Decomposition{}
	}

	p := mat2.New(pair.V1.X, pair.V2.X, pair.V1.Y, pair.V2.Y)
	pinv, ok := p.Inverse()
	if !ok {
		// Repeated eigenvector direction: defective matrix.
		return Decomposition{}
	}

	return Decomposition{
		P:              p,
		D:              mat2.New(pair.Lambda1, 0, 0, pair.Lambda2),
		Pinv:           pinv,
		Diagonalizable: true,
	}
}

// At maps progress in [0, 1] to the staged matrix. Within each stage the
// result is a component-wise interpolation between the stage endpoints:
//
//	[0.00, 0.33): identity -> Pinv
//	[0.33, 0.67): Pinv     -> D*Pinv
//	[0.67, 1.00]: D*Pinv   -> P*D*Pinv
//
// At(0) is the identity and At(1) reconstructs the source matrix up to
// floating tolerance. Progress outside [0, 1] extrapolates linearly, as
// Lerp does not clamp; callers drive At with clamped progress.
func (d Decomposition) At(progress float64) mat2.Matrix {
	if !d.Diagonalizable {
		return mat2.Identity()
	}

	switch {
	case progress < stage1End:
		t := progress / stage1End
		return mat2.Lerp(mat2.Identity(), d.Pinv, t)
	case progress < stage2End:
		t := (progress - stage1End) / (stage2End - stage1End)
		return mat2.Lerp(d.Pinv, d.D.Mul(d.Pinv), t)
	default:
		t := (progress - stage2End) / (1 - stage2End)
		scaled := d.D.Mul(d.Pinv)
		return mat2.Lerp(scaled, d.P.Mul(scaled), t)
	}
}

// NextPhase returns the first canonical phase point strictly greater than
// progress+0.01, wrapping to 0 once progress is at or past the final
// phase. The epsilon keeps a progress value resting exactly on a phase
// from being returned again.
func NextPhase(progress float64) float64 {
	for _, p := range Phases {
		if p > progress+0.01 {
			return p
		}
	}
	return 0
}
