package window

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/rocket-kid/internal/render"
)

// Debug font cell size of ebitenutil.DebugPrint.
const (
	glyphW = 6
	glyphH = 16
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// ImageSurface draws the logical canvas straight onto an ebiten image; the
// game's Layout makes logical and image coordinates the same.
type ImageSurface struct {
	dst   *ebiten.Image
	texts map[string]*ebiten.Image
}

// NewImageSurface creates a surface with an empty text cache.
func NewImageSurface() *ImageSurface {
	return &ImageSurface{texts: make(map[string]*ebiten.Image)}
}

// Target sets the image the next draw calls paint on.
func (s *ImageSurface) Target(dst *ebiten.Image) {
	s.dst = dst
}

// FillRect implements render.Surface.
func (s *ImageSurface) FillRect(x, y, w, h float64, c color.NRGBA) {
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

// FillGradient implements render.Surface.
func (s *ImageSurface) FillGradient(x, y, w, h float64, top, bottom color.NRGBA) {
	x0, y0, x1, y1 := float32(x), float32(y), float32(x+w), float32(y+h)
	vs := []ebiten.Vertex{
		vertex(x0, y0, top), vertex(x1, y0, top),
		vertex(x0, y1, bottom), vertex(x1, y1, bottom),
	}
	s.dst.DrawTriangles(vs, []uint16{0, 1, 2, 1, 3, 2}, whiteSubImage, &ebiten.DrawTrianglesOptions{})
}

// FillCircle implements render.Surface.
func (s *ImageSurface) FillCircle(cx, cy, r float64, c color.NRGBA) {
	vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(r), c, true)
}

// StrokeCircle implements render.Surface.
func (s *ImageSurface) StrokeCircle(cx, cy, r, width float64, c color.NRGBA) {
	vector.StrokeCircle(s.dst, float32(cx), float32(cy), float32(r), float32(width), c, true)
}

// FillTriangle implements render.Surface.
func (s *ImageSurface) FillTriangle(x1, y1, x2, y2, x3, y3 float64, c color.NRGBA) {
	var p vector.Path
	p.MoveTo(float32(x1), float32(y1))
	p.LineTo(float32(x2), float32(y2))
	p.LineTo(float32(x3), float32(y3))
	p.Close()

	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		setColor(&vs[i], c)
	}
	s.dst.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// StrokeLine implements render.Surface.
func (s *ImageSurface) StrokeLine(x1, y1, x2, y2, width float64, c color.NRGBA) {
	vector.StrokeLine(s.dst, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), c, true)
}

// Text implements render.Surface by scaling the debug font to size.
func (s *ImageSurface) Text(cx, cy, size float64, str string, c color.NRGBA) {
	img := s.textImage(str)
	scale := size / glyphH
	w, h := img.Bounds().Dx(), img.Bounds().Dy()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx-float64(w)*scale/2, cy-float64(h)*scale/2)
	op.ColorScale.ScaleWithColor(c)
	op.Filter = ebiten.FilterLinear
	s.dst.DrawImage(img, op)
}

func (s *ImageSurface) textImage(str string) *ebiten.Image {
	if img, ok := s.texts[str]; ok {
		return img
	}
	img := ebiten.NewImage(max(1, len([]rune(str)))*glyphW, glyphH)
	ebitenutil.DebugPrint(img, str)
	s.texts[str] = img
	return img
}

func vertex(x, y float32, c color.NRGBA) ebiten.Vertex {
	v := ebiten.Vertex{DstX: x, DstY: y, SrcX: 1, SrcY: 1}
	setColor(&v, c)
	return v
}

// setColor stores c as straight alpha, the default color scale mode.
func setColor(v *ebiten.Vertex, c color.NRGBA) {
	v.ColorR = float32(c.R) / 0xFF
	v.ColorG = float32(c.G) / 0xFF
	v.ColorB = float32(c.B) / 0xFF
	v.ColorA = float32(c.A) / 0xFF
}

var _ render.Surface = (*ImageSurface)(nil)
