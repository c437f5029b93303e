// Package render paints a flight onto an abstract 2D surface in the logical
// coordinates of the simulation. It never mutates the state it draws.
package render

import "image/color"

// Surface is a 2D target in logical canvas coordinates, y growing downward.
// Colors use straight (non-premultiplied) alpha.
type Surface interface {
	FillRect(x, y, w, h float64, c color.NRGBA)
	// FillGradient fills a rectangle blending vertically from top to bottom.
	FillGradient(x, y, w, h float64, top, bottom color.NRGBA)
	FillCircle(cx, cy, r float64, c color.NRGBA)
	StrokeCircle(cx, cy, r, width float64, c color.NRGBA)
	FillTriangle(x1, y1, x2, y2, x3, y3 float64, c color.NRGBA)
	StrokeLine(x1, y1, x2, y2, width float64, c color.NRGBA)
	// Text draws s centered on (cx, cy) at roughly size pixels tall.
	Text(cx, cy, size float64, s string, c color.NRGBA)
}
