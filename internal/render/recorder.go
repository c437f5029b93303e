package render

import "image/color"

// Op is one recorded draw call.
type Op struct {
	Kind  string
	Args  []float64
	Color color.NRGBA
	To    color.NRGBA // gradient end
	Text  string
}

// Recorder is a Surface that remembers every call, for tests and debugging.
type Recorder struct {
	Ops []Op
}

func (r *Recorder) add(op Op) { r.Ops = append(r.Ops, op) }

func (r *Recorder) FillRect(x, y, w, h float64, c color.NRGBA) {
	r.add(Op{Kind: "rect", Args: []float64{x, y, w, h}, Color: c})
}

func (r *Recorder) FillGradient(x, y, w, h float64, top, bottom color.NRGBA) {
	r.add(Op{Kind: "gradient", Args: []float64{x, y, w, h}, Color: top, To: bottom})
}

func (r *Recorder) FillCircle(cx, cy, rad float64, c color.NRGBA) {
	r.add(Op{Kind: "circle", Args: []float64{cx, cy, rad}, Color: c})
}

func (r *Recorder) StrokeCircle(cx, cy, rad, width float64, c color.NRGBA) {
	r.add(Op{Kind: "ring", Args: []float64{cx, cy, rad, width}, Color: c})
}

func (r *Recorder) FillTriangle(x1, y1, x2, y2, x3, y3 float64, c color.NRGBA) {
	r.add(Op{Kind: "triangle", Args: []float64{x1, y1, x2, y2, x3, y3}, Color: c})
}

func (r *Recorder) StrokeLine(x1, y1, x2, y2, width float64, c color.NRGBA) {
	r.add(Op{Kind: "line", Args: []float64{x1, y1, x2, y2, width}, Color: c})
}

func (r *Recorder) Text(cx, cy, size float64, s string, c color.NRGBA) {
	r.add(Op{Kind: "text", Args: []float64{cx, cy, size}, Color: c, Text: s})
}

// Count returns how many ops of the given kind were recorded.
func (r *Recorder) Count(kind string) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Reset drops all recorded ops.
func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }
