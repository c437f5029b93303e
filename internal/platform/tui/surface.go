package tui

import (
	"image/color"
	"math"

	"github.com/vovakirdan/rocket-kid/internal/core"
	"github.com/vovakirdan/rocket-kid/internal/render"
)

// CellSurface rasterizes the logical canvas onto a cell screen. A cell is
// painted when its center lies inside a shape; shapes too small to cover any
// cell center leave a glyph in the cell under their center instead.
type CellSurface struct {
	screen         *core.Screen
	logicalW       float64
	logicalH       float64
	scaleX, scaleY float64 // cells per logical unit
}

// NewCellSurface maps a logicalW x logicalH canvas onto screen.
func NewCellSurface(screen *core.Screen, logicalW, logicalH float64) *CellSurface {
	cs := &CellSurface{screen: screen, logicalW: logicalW, logicalH: logicalH}
	cs.Rescale()
	return cs
}

// Rescale picks up a new screen size.
func (cs *CellSurface) Rescale() {
	cs.scaleX = float64(cs.screen.Width()) / cs.logicalW
	cs.scaleY = float64(cs.screen.Height()) / cs.logicalH
}

// center returns the logical coordinates of the middle of cell (cx, cy).
func (cs *CellSurface) center(cx, cy int) (float64, float64) {
	return (float64(cx) + 0.5) / cs.scaleX, (float64(cy) + 0.5) / cs.scaleY
}

func (cs *CellSurface) cellOf(x, y float64) (int, int) {
	return int(math.Floor(x * cs.scaleX)), int(math.Floor(y * cs.scaleY))
}

// span returns the cell range that may hold centers inside [x0, x1) x [y0, y1).
func (cs *CellSurface) span(x0, y0, x1, y1 float64) (cx0, cy0, cx1, cy1 int) {
	cx0 = max(0, int(math.Floor(x0*cs.scaleX)))
	cy0 = max(0, int(math.Floor(y0*cs.scaleY)))
	cx1 = min(cs.screen.Width()-1, int(math.Ceil(x1*cs.scaleX)))
	cy1 = min(cs.screen.Height()-1, int(math.Ceil(y1*cs.scaleY)))
	return cx0, cy0, cx1, cy1
}

// paint blends c over the background of every cell whose center passes
// inside, and reports whether any did.
func (cs *CellSurface) paint(x0, y0, x1, y1 float64, c color.NRGBA, inside func(px, py float64) bool) bool {
	if c.A == 0 {
		return true
	}
	hit := false
	cx0, cy0, cx1, cy1 := cs.span(x0, y0, x1, y1)
	for cy := cy0; cy <= cy1; cy++ {
		for cx := cx0; cx <= cx1; cx++ {
			px, py := cs.center(cx, cy)
			if !inside(px, py) {
				continue
			}
			cs.blendBG(cx, cy, c)
			hit = true
		}
	}
	return hit
}

func (cs *CellSurface) blendBG(cx, cy int, c color.NRGBA) {
	cell := cs.screen.CellAt(cx, cy)
	cs.screen.SetBG(cx, cy, toRGB(render.Over(fromRGB(cell.BG), c)))
}

// glyph marks a sub-cell shape at logical (x, y).
func (cs *CellSurface) glyph(x, y float64, r rune, c color.NRGBA) {
	if c.A == 0 {
		return
	}
	cx, cy := cs.cellOf(x, y)
	cell := cs.screen.CellAt(cx, cy)
	cs.screen.SetGlyph(cx, cy, r, toRGB(render.Over(fromRGB(cell.BG), c)))
}

// FillRect implements render.Surface.
func (cs *CellSurface) FillRect(x, y, w, h float64, c color.NRGBA) {
	hit := cs.paint(x, y, x+w, y+h, c, func(px, py float64) bool {
		return px >= x && px < x+w && py >= y && py < y+h
	})
	if !hit {
		cs.glyph(x+w/2, y+h/2, rectGlyph(w*cs.scaleX, h*cs.scaleY), c)
	}
}

// FillGradient implements render.Surface.
func (cs *CellSurface) FillGradient(x, y, w, h float64, top, bottom color.NRGBA) {
	if h <= 0 {
		return
	}
	cx0, cy0, cx1, cy1 := cs.span(x, y, x+w, y+h)
	for cy := cy0; cy <= cy1; cy++ {
		_, py := cs.center(0, cy)
		if py < y || py >= y+h {
			continue
		}
		c := render.Blend(top, bottom, (py-y)/h)
		for cx := cx0; cx <= cx1; cx++ {
			px, _ := cs.center(cx, cy)
			if px >= x && px < x+w {
				cs.blendBG(cx, cy, c)
			}
		}
	}
}

// FillCircle implements render.Surface.
func (cs *CellSurface) FillCircle(cx, cy, r float64, c color.NRGBA) {
	hit := cs.paint(cx-r, cy-r, cx+r, cy+r, c, func(px, py float64) bool {
		return core.Dist(px, py, cx, cy) <= r
	})
	if !hit {
		g := '•'
		if r*cs.scaleX < 0.25 {
			g = '·'
		}
		cs.glyph(cx, cy, g, c)
	}
}

// StrokeCircle implements render.Surface. The ring is at least one cell thick.
func (cs *CellSurface) StrokeCircle(cx, cy, r, width float64, c color.NRGBA) {
	half := math.Max(width, 1/cs.scaleX) / 2
	cs.paint(cx-r-half, cy-r-half, cx+r+half, cy+r+half, c, func(px, py float64) bool {
		return math.Abs(core.Dist(px, py, cx, cy)-r) <= half
	})
}

// FillTriangle implements render.Surface.
func (cs *CellSurface) FillTriangle(x1, y1, x2, y2, x3, y3 float64, c color.NRGBA) {
	minX, maxX := math.Min(x1, math.Min(x2, x3)), math.Max(x1, math.Max(x2, x3))
	minY, maxY := math.Min(y1, math.Min(y2, y3)), math.Max(y1, math.Max(y2, y3))
	hit := cs.paint(minX, minY, maxX, maxY, c, func(px, py float64) bool {
		d1 := edge(px, py, x1, y1, x2, y2)
		d2 := edge(px, py, x2, y2, x3, y3)
		d3 := edge(px, py, x3, y3, x1, y1)
		neg := d1 < 0 || d2 < 0 || d3 < 0
		pos := d1 > 0 || d2 > 0 || d3 > 0
		return !(neg && pos)
	})
	if !hit {
		cs.glyph((x1+x2+x3)/3, (y1+y2+y3)/3, '▲', c)
	}
}

// StrokeLine implements render.Surface. Lines thinner than a cell become a
// run of glyphs that follow the slope.
func (cs *CellSurface) StrokeLine(x1, y1, x2, y2, width float64, c color.NRGBA) {
	dx, dy := (x2-x1)*cs.scaleX, (y2-y1)*cs.scaleY
	steps := max(1, int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))*2)))
	g := lineGlyph(dx, dy)

	thick := width*cs.scaleX >= 1
	lastX, lastY := math.MinInt, math.MinInt
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x, y := x1+(x2-x1)*t, y1+(y2-y1)*t
		cx, cy := cs.cellOf(x, y)
		if cx == lastX && cy == lastY {
			continue
		}
		lastX, lastY = cx, cy
		if thick {
			cs.blendBG(cx, cy, c)
		} else {
			cs.glyph(x, y, g, c)
		}
	}
}

// Text implements render.Surface. Size is ignored; cells have one font size.
func (cs *CellSurface) Text(cx, cy, _ float64, s string, c color.NRGBA) {
	runes := []rune(s)
	x, y := cs.cellOf(cx, cy)
	x -= len(runes) / 2
	for i, r := range runes {
		cell := cs.screen.CellAt(x+i, y)
		cs.screen.SetGlyph(x+i, y, r, toRGB(render.Over(fromRGB(cell.BG), c)))
	}
}

func edge(px, py, ax, ay, bx, by float64) float64 {
	return (px-bx)*(ay-by) - (ax-bx)*(py-by)
}

func rectGlyph(w, h float64) rune {
	switch {
	case h > w*2:
		return '│'
	case w > h*2:
		return '─'
	default:
		return '▪'
	}
}

func lineGlyph(dx, dy float64) rune {
	switch {
	case math.Abs(dx) < math.Abs(dy)/2:
		return '│'
	case math.Abs(dy) < math.Abs(dx)/2:
		return '─'
	case (dx > 0) == (dy > 0):
		return '╲'
	default:
		return '╱'
	}
}

func toRGB(c color.NRGBA) core.RGB {
	return core.RGB{R: c.R, G: c.G, B: c.B}
}

func fromRGB(c core.RGB) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}

var _ render.Surface = (*CellSurface)(nil)
