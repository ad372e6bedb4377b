package anim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProgressAt_Endpoints(t *testing.T) {
	d := 900 * time.Millisecond

	assert.Equal(t, 0.25, ProgressAt(0, d, 0.25, 1), "zero elapsed holds the start")
	assert.Equal(t, 1.0, ProgressAt(d, d, 0.25, 1), "full elapsed lands on the target")
	assert.Equal(t, 1.0, ProgressAt(2*d, d, 0.25, 1), "past the end stays on the target")
	assert.Equal(t, 0.25, ProgressAt(-time.Second, d, 0.25, 1), "negative elapsed holds the start")
}

func TestProgressAt_ZeroDurationSnaps(t *testing.T) {
	assert.Equal(t, 0.67, ProgressAt(0, 0, 0, 0.67))
	assert.Equal(t, 0.67, ProgressAt(time.Second, -time.Second, 0, 0.67))
}

func TestProgressAt_Midpoint(t *testing.T) {
	// Ease-in-out passes through the linear midpoint at half time.
	got := ProgressAt(450*time.Millisecond, 900*time.Millisecond, 0, 1)
	assert.InDelta(t, 0.5, got, 1e-9)
}

func TestProgressAt_Monotone(t *testing.T) {
	d := 900 * time.Millisecond
	prev := -1.0
	for e := time.Duration(0); e <= d; e += 10 * time.Millisecond {
		got := ProgressAt(e, d, 0, 1)
		assert.GreaterOrEqual(t, got, prev, "progress must not move backwards at %v", e)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.LessOrEqual(t, got, 1.0)
		prev = got
	}
}

func TestProgressAt_Descending(t *testing.T) {
	// Stepping backwards (wrap from 1.0 to 0) eases downward.
	d := 900 * time.Millisecond
	assert.Equal(t, 1.0, ProgressAt(0, d, 1, 0))
	assert.Equal(t, 0.0, ProgressAt(d, d, 1, 0))
	mid := ProgressAt(450*time.Millisecond, d, 1, 0)
	assert.InDelta(t, 0.5, mid, 1e-9)
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, Clamp01(-0.5))
	assert.Equal(t, 0.0, Clamp01(0))
	assert.Equal(t, 0.42, Clamp01(0.42))
	assert.Equal(t, 1.0, Clamp01(1))
	assert.Equal(t, 1.0, Clamp01(1.7))
}
