package viewer

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/ArkAung/interactive-eigenvector/internal/mat2"
)

const (
	pixelsPerUnit = 60.0
	gridExtent    = 6 // grid lines drawn from -gridExtent to +gridExtent
)

var (
	colorBackground = color.RGBA{0x12, 0x12, 0x18, 0xff}
	colorGrid       = color.RGBA{0x3a, 0x3f, 0x55, 0xff}
	colorAxis       = color.RGBA{0x8a, 0x90, 0xb0, 0xff}
	colorSquare     = color.RGBA{0x4f, 0xc3, 0xf7, 0xff}
	colorEigen1     = color.RGBA{0xff, 0x8a, 0x65, 0xff}
	colorEigen2     = color.RGBA{0xae, 0xd5, 0x81, 0xff}
)

// worldToScreen maps math coordinates (y up, origin center) to screen
// pixels (y down, origin top-left).
func worldToScreen(x, y float64) (float32, float32) {
	sx := screenWidth/2 + x*pixelsPerUnit
	sy := screenHeight/2 - y*pixelsPerUnit
	return float32(sx), float32(sy)
}

// render draws the grid, unit square, and eigenvector arrows under the
// current staged matrix.
func (g *game) render(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	m := g.dec.At(g.progress)
	if !g.dec.Diagonalizable {
		// Non-diagonalizable matrices hold at the identity; show the raw
		// transform at full progress instead so there is still something
		// to look at.
		m = mat2.Lerp(mat2.Identity(), g.matrix, g.progress)
	}

	g.drawGrid(screen, m)
	g.drawUnitSquare(screen, m)
	g.drawEigenvectors(screen, m)
	g.drawHUD(screen)
}

// strokeWorldLine draws a line between two world-space points after
// transforming them by m.
func strokeWorldLine(screen *ebiten.Image, m mat2.Matrix, x0, y0, x1, y1 float64, width float32, c color.Color) {
	tx0, ty0 := m.Transform(x0, y0)
	tx1, ty1 := m.Transform(x1, y1)
	sx0, sy0 := worldToScreen(tx0, ty0)
	sx1, sy1 := worldToScreen(tx1, ty1)
	vector.StrokeLine(screen, sx0, sy0, sx1, sy1, width, c, true)
}

func (g *game) drawGrid(screen *ebiten.Image, m mat2.Matrix) {
	for i := -gridExtent; i <= gridExtent; i++ {
		c := colorGrid
		if i == 0 {
			c = colorAxis
		}
		f := float64(i)
		strokeWorldLine(screen, m, f, -gridExtent, f, gridExtent, 1, c)
		strokeWorldLine(screen, m, -gridExtent, f, gridExtent, f, 1, c)
	}
}

func (g *game) drawUnitSquare(screen *ebiten.Image, m mat2.Matrix) {
	strokeWorldLine(screen, m, 0, 0, 1, 0, 2, colorSquare)
	strokeWorldLine(screen, m, 1, 0, 1, 1, 2, colorSquare)
	strokeWorldLine(screen, m, 1, 1, 0, 1, 2, colorSquare)
	strokeWorldLine(screen, m, 0, 1, 0, 0, 2, colorSquare)
}

// drawEigenvectors draws the eigenvector directions of the source matrix,
// scaled by their eigenvalues, transformed along with the grid.
func (g *game) drawEigenvectors(screen *ebiten.Image, m mat2.Matrix) {
	pair, ok := g.matrix.Eigenvectors()
	if !ok {
		return
	}
	drawArrow(screen, m, pair.V1.Scale(pair.Lambda1), colorEigen1)
	drawArrow(screen, m, pair.V2.Scale(pair.Lambda2), colorEigen2)
}

func drawArrow(screen *ebiten.Image, m mat2.Matrix, v mat2.Vec2, c color.Color) {
	strokeWorldLine(screen, m, 0, 0, v.X, v.Y, 3, c)
	// Arrowhead: two short strokes back from the tip, perpendicular offsets.
	const head = 0.15
	hx, hy := -v.Y, v.X
	l := v.Length()
	if l < 1e-9 {
		return
	}
	bx := v.X - v.X/l*2*head
	by := v.Y - v.Y/l*2*head
	strokeWorldLine(screen, m, v.X, v.Y, bx+hx/l*head, by+hy/l*head, 3, c)
	strokeWorldLine(screen, m, v.X, v.Y, bx-hx/l*head, by-hy/l*head, 3, c)
}

func (g *game) drawHUD(screen *ebiten.Image) {
	src := g.matrix
	name := "custom"
	if g.presetIx >= 0 && g.presetIx < len(g.catalog) {
		name = g.catalog[g.presetIx].Name
	}
	status := fmt.Sprintf("A = [%g %g; %g %g]  (%s)\nprogress %.2f  %s",
		src.A, src.B, src.C, src.D, name, g.progress, g.stageLabel())
	ebitenutil.DebugPrintAt(screen, status, 8, 8)
	ebitenutil.DebugPrintAt(screen, "space: next phase   r: reset   tab: preset", 8, screenHeight-20)
}

// stageLabel names the part of the factorization currently animating.
func (g *game) stageLabel() string {
	if !g.dec.Diagonalizable {
		return "not diagonalizable: direct transform"
	}
	switch {
	case g.progress < 0.33:
		return "stage 1/3: change to eigenbasis (Pinv)"
	case g.progress < 0.67:
		return "stage 2/3: scale along eigenvectors (D)"
	default:
		return "stage 3/3: change back (P), landing on A"
	}
}
