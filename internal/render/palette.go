package render

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/rocket-kid/internal/entity"
)

var (
	SkyTop      = Hex("#1E90FF")
	SkyBottom   = Hex("#87CEEB")
	Ground      = Hex("#228B22")
	LaunchPad   = Hex("#708090")
	Space       = Hex("#000000")
	Star        = Hex("#FFFFFF")
	Bullet      = Hex("#FFFF00")
	RocketBody  = Hex("#FF0000")
	RocketGlass = Hex("#ADD8E6")
	RocketFin   = Hex("#FFFFFF")
	Countdown   = WithAlpha(Hex("#FFFFFF"), 0.8)
	Outline     = WithAlpha(Hex("#000000"), 0.2)
)

var obstacleColors = map[entity.ObstacleKind]color.NRGBA{
	entity.KindRock:     Hex("#8B4513"),
	entity.KindMeteor:   Hex("#FF4500"),
	entity.KindAsteroid: Hex("#4B0082"),
}

// ObstacleColor returns the fill for an obstacle kind.
func ObstacleColor(k entity.ObstacleKind) color.NRGBA {
	if c, ok := obstacleColors[k]; ok {
		return c
	}
	return obstacleColors[entity.KindRock]
}

// Hex parses a #rrggbb literal. It panics on malformed input, so use it only
// for constants.
func Hex(s string) color.NRGBA {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("render: bad color literal " + s)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xFF}
}

// WithAlpha scales the alpha of c by a, clamped to [0, 1].
func WithAlpha(c color.NRGBA, a float64) color.NRGBA {
	a = min(1, max(0, a))
	c.A = uint8(float64(c.A)*a + 0.5)
	return c
}

// Blend mixes two colors in RGB space, t=0 giving a and t=1 giving b.
func Blend(a, b color.NRGBA, t float64) color.NRGBA {
	t = min(1, max(0, t))
	ca, _ := colorful.MakeColor(opaque(a))
	cb, _ := colorful.MakeColor(opaque(b))
	r, g, bl := ca.BlendRgb(cb, t).Clamped().RGB255()
	alpha := float64(a.A) + (float64(b.A)-float64(a.A))*t
	return color.NRGBA{R: r, G: g, B: bl, A: uint8(alpha + 0.5)}
}

// Over composites src onto an opaque dst and returns the opaque result.
func Over(dst, src color.NRGBA) color.NRGBA {
	out := Blend(opaque(dst), opaque(src), float64(src.A)/0xFF)
	out.A = 0xFF
	return out
}

func opaque(c color.NRGBA) color.NRGBA {
	c.A = 0xFF
	return c
}
