// Package mat2 implements the 2x2 matrix engine behind the eigenvector
// visualization.
//
// The package is deliberately small and pure: every type is an immutable
// value, every function is deterministic, and nothing here touches I/O,
// clocks, or global state. Consumers (the CLI, the viewer) hold whatever
// mutable state they need and pass matrices in by value.
//
// ARCHITECTURE:
//
// Value-Type Engine:
// Matrix, Vec2, Complex, and the eigen result types are plain structs.
// Replacing a matrix means constructing a new one; operations never
// mutate their receivers. This makes concurrent use trivially safe.
//
// Failure Semantics:
// The only operation that can fail is Inverse, and it fails by returning
// (Matrix{}, false) when the determinant is within SingularTol of zero.
// Complex eigenvalues are not an error: Eigenvalues tags the result with
// IsComplex and Eigenvectors reports the absence of real eigenvectors
// through its ok return. Nothing in this package panics on finite input.
//
// Numerical Policy:
// Eigenvalues come from the closed-form characteristic equation
// lambda^2 - trace*lambda + det = 0, ordered so Lambda1.Real >= Lambda2.Real.
// Eigenvector extraction uses a fixed branch order on the off-diagonal
// entries with a deterministic (1, 0) fallback for diagonal/degenerate
// matrices. This is an educational engine for well-conditioned demo
// matrices, not a general eigensolver.
package mat2
