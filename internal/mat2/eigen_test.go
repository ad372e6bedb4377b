package mat2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEigenvalues_Rotation90_Complex(t *testing.T) {
	// 90 degree rotation: trace 0, det 1, discriminant -4.
	m := New(0, -1, 1, 0)
	require.Equal(t, 0.0, m.Trace())
	require.Equal(t, 1.0, m.Det())

	ev := m.Eigenvalues()
	assert.True(t, ev.IsComplex)
	assert.Equal(t, 0.0, ev.Lambda1.Real)
	assert.Equal(t, 1.0, ev.Lambda1.Imag)
	assert.Equal(t, 0.0, ev.Lambda2.Real)
	assert.Equal(t, -1.0, ev.Lambda2.Imag, "conjugate pair")
}

func TestEigenvalues_RealOrdering(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
	}{
		{"symmetric", New(2, 1, 1, 2)},
		{"reflection", New(1, 0, 0, -1)},
		{"projection", New(1, 0, 0, 0)},
		{"shear", New(1, 1, 0, 1)},
		{"generic", New(4, -2, 1, 1)},
		{"negative trace", New(-3, 1, 2, -5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := tt.m.Eigenvalues()
			require.False(t, ev.IsComplex)
			assert.GreaterOrEqual(t, ev.Lambda1.Real, ev.Lambda2.Real)
			assert.Zero(t, ev.Lambda1.Imag)
			assert.Zero(t, ev.Lambda2.Imag)
		})
	}
}

func TestEigenvalues_Symmetric(t *testing.T) {
	ev := New(2, 1, 1, 2).Eigenvalues()
	require.False(t, ev.IsComplex)
	assert.InDelta(t, 3, ev.Lambda1.Real, 1e-12)
	assert.InDelta(t, 1, ev.Lambda2.Real, 1e-12)
}

func TestEigenvectors_ComplexAbsent(t *testing.T) {
	_, ok := New(0, -1, 1, 0).Eigenvectors()
	assert.False(t, ok, "rotation has no real eigenvectors")
}

func TestEigenvectors_Reflection(t *testing.T) {
	// x-axis reflection: lambda1=1 along x, lambda2=-1 along y.
	pair, ok := New(1, 0, 0, -1).Eigenvectors()
	require.True(t, ok)
	assert.Equal(t, 1.0, pair.Lambda1)
	assert.Equal(t, -1.0, pair.Lambda2)
	assert.Equal(t, Vec2{X: 1, Y: 0}, pair.V1)
	assert.Equal(t, Vec2{X: 0, Y: 1}, pair.V2)
}

func TestEigenvectors_ScalarMatrixFallback(t *testing.T) {
	// Uniform scaling has a repeated eigenvalue and every direction is an
	// eigenvector; the pinned fallback picks the two coordinate axes.
	pair, ok := New(2, 0, 0, 2).Eigenvectors()
	require.True(t, ok)
	assert.Equal(t, 2.0, pair.Lambda1)
	assert.Equal(t, 2.0, pair.Lambda2)
	assert.Equal(t, Vec2{X: 1, Y: 0}, pair.V1)
	assert.Equal(t, Vec2{X: 0, Y: 1}, pair.V2)
}

func TestEigenvectors_DefectiveShearRepeatsDirection(t *testing.T) {
	// Shear has eigenvalue 1 twice but only one eigenvector direction.
	// The engine reports both as the same unit vector; diagnosing the
	// defect is the decomposition's job.
	pair, ok := New(1, 1, 0, 1).Eigenvectors()
	require.True(t, ok)
	assert.Equal(t, pair.V1, pair.V2)
}

func TestEigenvectors_Projection(t *testing.T) {
	pair, ok := New(1, 0, 0, 0).Eigenvectors()
	require.True(t, ok)
	assert.Equal(t, 1.0, pair.Lambda1)
	assert.Equal(t, 0.0, pair.Lambda2)
	assert.Equal(t, Vec2{X: 1, Y: 0}, pair.V1)
	assert.Equal(t, Vec2{X: 0, Y: 1}, pair.V2)
}

// TestEigenvectors_RoundTrip pins the defining property A*v = lambda*v.
func TestEigenvectors_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
	}{
		{"symmetric", New(2, 1, 1, 2)},
		{"reflection", New(1, 0, 0, -1)},
		{"projection", New(1, 0, 0, 0)},
		{"generic distinct", New(4, 1, 2, 3)},
		{"asymmetric", New(3, 2, 0, -1)},
		{"lower triangular", New(-2, 0, 5, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pair, ok := tt.m.Eigenvectors()
			require.True(t, ok)

			checkPair := func(v Vec2, lambda float64) {
				got := tt.m.TransformVec(v)
				assert.InDelta(t, lambda*v.X, got.X, 1e-6)
				assert.InDelta(t, lambda*v.Y, got.Y, 1e-6)
			}
			checkPair(pair.V1, pair.Lambda1)
			checkPair(pair.V2, pair.Lambda2)
		})
	}
}

// TestEigenvectors_UnitLength pins the normalization contract.
func TestEigenvectors_UnitLength(t *testing.T) {
	tests := []Matrix{
		New(2, 1, 1, 2),
		New(4, 1, 2, 3),
		New(1, 0, 0, -1),
		New(3, 2, 0, -1),
	}

	for _, m := range tests {
		pair, ok := m.Eigenvectors()
		require.True(t, ok)
		assert.InDelta(t, 1, pair.V1.Length(), 1e-9)
		assert.InDelta(t, 1, pair.V2.Length(), 1e-9)
	}
}
