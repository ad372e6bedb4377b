// Package viewer is the interactive front end: an ebiten window that
// animates the staged factorization of the current matrix. It owns the
// only mutable state in the program (current matrix, progress, tween);
// all math is delegated to the pure engine packages.
package viewer

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/ArkAung/interactive-eigenvector/internal/anim"
	"github.com/ArkAung/interactive-eigenvector/internal/diag"
	"github.com/ArkAung/interactive-eigenvector/internal/mat2"
	"github.com/ArkAung/interactive-eigenvector/internal/preset"
)

const (
	screenWidth  = 800
	screenHeight = 600
	tps          = 60
)

// Run opens the viewer window on the given matrix and preset catalog.
// It blocks until the window closes.
func Run(m mat2.Matrix, catalog []preset.Preset) error {
	g := newGame(m, catalog)
	ebiten.SetWindowTitle("eigenview")
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetTPS(tps)
	return ebiten.RunGame(g)
}

// tween is an in-flight eased transition between two progress values.
// Elapsed advances by one tick per Update, so the animation is
// deterministic for a given tick count.
type tween struct {
	active  bool
	elapsed time.Duration
	start   float64
	target  float64
}

type game struct {
	matrix   mat2.Matrix
	dec      diag.Decomposition
	catalog  []preset.Preset
	presetIx int // -1 when the matrix did not come from the catalog

	progress float64
	tw       tween
}

func newGame(m mat2.Matrix, catalog []preset.Preset) *game {
	g := &game{matrix: m, catalog: catalog, presetIx: -1}
	g.dec = diag.Decompose(m)
	for i, p := range catalog {
		if p.Matrix() == m {
			g.presetIx = i
			break
		}
	}
	return g
}

// setMatrix replaces the source matrix wholesale and recomputes the
// decomposition; progress restarts from 0.
func (g *game) setMatrix(m mat2.Matrix) {
	g.matrix = m
	g.dec = diag.Decompose(m)
	g.progress = 0
	g.tw = tween{}
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.tw = tween{
			active: true,
			start:  g.progress,
			target: diag.NextPhase(g.progress),
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.progress = 0
		g.tw = tween{}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) && len(g.catalog) > 0 {
		g.presetIx = (g.presetIx + 1) % len(g.catalog)
		g.setMatrix(g.catalog[g.presetIx].Matrix())
	}

	if g.tw.active {
		g.tw.elapsed += time.Second / tps
		g.progress = anim.ProgressAt(g.tw.elapsed, anim.DefaultDuration, g.tw.start, g.tw.target)
		if g.tw.elapsed >= anim.DefaultDuration {
			g.progress = g.tw.target
			g.tw = tween{}
		}
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.render(screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
